// Package intermediary implements the line-shaping stage of the formatter.
// It consumes the flat token stream produced by the emitter and applies the
// blank-line policy: blank lines are inserted around structural boundaries
// (class/module openers, do-blocks, fresh conditionals after a closed block,
// trailing comments after 'end', the end of a require block) and runs of
// newlines are capped so at most one blank line ever separates content.
//
// The whole pass is a single forward scan with limited lookback: the facts
// of the line being accumulated, the frozen facts of the line before it,
// and the index of the newline that ends the most recently closed line.
package intermediary

import (
	"slices"

	"github.com/shkm/rubyfmt/internal/logging"
	"github.com/shkm/rubyfmt/pkg/linetoken"
)

// Intermediary owns the growing output token buffer and drives all
// blank-line policy decisions. It is exclusively owned by the single pass
// that constructs it and is consumed once via Tokens at the end.
type Intermediary struct {
	tokens []linetoken.Token

	// indexOfLastHardNewline addresses the newline that terminates the
	// most recently closed line; 0 before any line has closed. It is the
	// sole write target for blank-line insertion and must keep addressing
	// a hard newline after every mutation.
	indexOfLastHardNewline int

	current  LineMetadata
	previous *LineMetadata
}

// New returns an empty Intermediary.
func New() *Intermediary {
	return &Intermediary{}
}

// Len returns the number of tokens currently buffered.
func (i *Intermediary) Len() int {
	return len(i.tokens)
}

// Last4 returns the four most recently appended tokens, oldest first.
// ok is false while the buffer holds fewer than four tokens.
func (i *Intermediary) Last4() (last [4]linetoken.Token, ok bool) {
	n := len(i.tokens)
	if n < 4 {
		return last, false
	}
	copy(last[:], i.tokens[n-4:])
	return last, true
}

// Tokens consumes the Intermediary and returns the finished token sequence
// for handoff to the renderer. The Intermediary must not be used afterward.
func (i *Intermediary) Tokens() []linetoken.Token {
	tokens := i.tokens
	i.tokens = nil
	return tokens
}

// Push consumes one token, updates line metadata, conditionally splices in
// a synthetic blank line before it, and appends it to the buffer unless it
// is a duplicate newline to be suppressed. Push never fails.
func (i *Intermediary) Push(tok linetoken.Token) {
	i.assertNewlines()
	doPush := true

	switch tok.Kind {
	case linetoken.KindHardNewLine:
		// The require-block rule must see the pre-swap current/previous
		// pair: the line about to close versus the line before it.
		if i.previous != nil && !i.current.HasRequire() && i.previous.HasRequire() {
			i.InsertTrailingBlankline(ReasonEndOfRequireBlock)
		}

		frozen := i.current
		i.previous = &frozen
		i.current = LineMetadata{}
		i.indexOfLastHardNewline = len(i.tokens)

		// If the buffer already ends in two consecutive newlines a blank
		// line exists; suppress this one and repoint at the last slot.
		if len(i.tokens) >= 2 &&
			i.tokens[i.indexOfLastHardNewline-2].IsHardNewLine() &&
			i.tokens[i.indexOfLastHardNewline-1].IsHardNewLine() {
			doPush = false
			i.indexOfLastHardNewline = len(i.tokens) - 1
		}
	case linetoken.KindModuleKeyword, linetoken.KindClassKeyword:
		i.handleClassOrModule()
	case linetoken.KindDoKeyword:
		i.handleDoKeyword()
	case linetoken.KindConditionalKeyword:
		i.handleConditional(tok.Text)
	case linetoken.KindEnd:
		i.current.SetHasEnd()
	case linetoken.KindDefKeyword:
		i.current.SetHasDef()
	case linetoken.KindIndent:
		i.current.ObserveIndentLevel(tok.Depth)
		if i.previous != nil && IndentLevelIncreasesBetween(i.previous, &i.current) {
			i.previous.SetGetsIndented()
		}
	case linetoken.KindDirectPart:
		// A line-initial 'require' directly follows the indent marker; a
		// require embedded mid-expression does not.
		if tok.Text == "require" && len(i.tokens) > 0 && i.tokens[len(i.tokens)-1].IsIndent() {
			i.current.SetHasRequire()
		}
	case linetoken.KindComment:
		if last, ok := i.Last4(); ok &&
			last[2].Kind == linetoken.KindEnd && last[3].IsHardNewLine() {
			i.InsertTrailingBlankline(ReasonCommentAfterEnd)
		}
	}

	if doPush {
		i.tokens = append(i.tokens, tok)
	}
	i.assertNewlines()
}

func (i *Intermediary) handleClassOrModule() {
	// A class/module opener that is not the first statement of a freshly
	// opened block gets a blank line above it.
	if i.previous != nil && !i.previous.GetsIndented() {
		i.InsertTrailingBlankline(ReasonClassOrModule)
	}
}

func (i *Intermediary) handleDoKeyword() {
	i.current.SetHasDoKeyword()
	if i.previous != nil && i.previous.WantsSpacerForConditional() {
		i.InsertTrailingBlankline(ReasonDoKeyword)
	}
}

func (i *Intermediary) handleConditional(contents string) {
	i.current.SetHasConditional()
	// Only a fresh 'if' is separated from a just-closed block; 'elsif',
	// 'unless' and friends continue an existing construct.
	if i.previous != nil && i.previous.WantsSpacerForConditional() && contents == "if" {
		i.InsertTrailingBlankline(ReasonConditional)
	}
}

// InsertTrailingBlankline inserts a synthetic hard newline at the index of
// the last hard newline, unless a blank line is already present there. The
// guard recognizes two "already blank" shapes against the three slots at
// index-2, index-1, index:
//
//	(HardNewLine, Indent, HardNewLine)  a blank indented line
//	(_, HardNewLine, HardNewLine)       two consecutive newlines
//
// The reason is diagnostic only and never affects behavior.
func (i *Intermediary) InsertTrailingBlankline(reason BlanklineReason) {
	idx := i.indexOfLastHardNewline
	back2, ok2 := i.tokenAt(idx - 2)
	back1, ok1 := i.tokenAt(idx - 1)
	at, okAt := i.tokenAt(idx)

	switch {
	case ok2 && back2.IsHardNewLine() && back1.IsIndent() && okAt && at.IsHardNewLine():
	case ok1 && back1.IsHardNewLine() && okAt && at.IsHardNewLine():
	default:
		if debugChecks {
			logging.Default().Debug("inserting blank line", "reason", reason)
		}
		i.tokens = slices.Insert(i.tokens, idx, linetoken.HardNewLine())
		i.indexOfLastHardNewline++
		i.assertNewlines()
	}
}

// ClearBreakableGarbage removes filler tokens (trailing comma, spacing,
// empty fragments) sitting immediately before a closing delimiter, after a
// breakable construct has collapsed onto a single line. The buffer must
// hold at least two tokens.
func (i *Intermediary) ClearBreakableGarbage() {
	// The buffer tail looks like [.., Comma, Space, DirectPart{""}, close]
	// or some variant, so tokens are removed at length-2 until that slot
	// no longer holds garbage.
	for i.tokens[len(i.tokens)-2].IsSingleLineBreakableGarbage() {
		i.tokens = slices.Delete(i.tokens, len(i.tokens)-2, len(i.tokens)-1)
	}
}

func (i *Intermediary) tokenAt(idx int) (linetoken.Token, bool) {
	if idx < 0 || idx >= len(i.tokens) {
		return linetoken.Token{}, false
	}
	return i.tokens[idx], true
}

// assertNewlines checks the core invariant: whenever nonzero, the index of
// the last hard newline addresses a hard newline token. Compiled out unless
// the rubyfmt_debug build tag is set.
func (i *Intermediary) assertNewlines() {
	if !debugChecks || i.indexOfLastHardNewline == 0 {
		return
	}
	if tok, ok := i.tokenAt(i.indexOfLastHardNewline); !ok || !tok.IsHardNewLine() {
		panic("intermediary: index of last hard newline does not address a hard newline")
	}
}
