// Package emitter turns Ruby source text into the formatting-primitive
// token stream consumed by the intermediary. It is a line lexer, not a
// parser: each physical line becomes an Indent token, a run of word and
// punctuation tokens, and a closing HardNewLine. Structural words get
// their dedicated token kinds so the intermediary can dispatch on them;
// string literals are kept intact (including newlines inside multi-line
// strings) so rendering reproduces the input byte for byte outside of the
// blank-line corrections.
package emitter

import (
	"strings"

	"github.com/shkm/rubyfmt/pkg/linetoken"
)

// Emit tokenizes src into the formatting-primitive stream. The stream
// always ends with a hard newline, so sources missing a final newline gain
// one; whitespace-only lines collapse to a bare newline.
func Emit(src string) []linetoken.Token {
	e := emitter{src: src}
	e.run()
	return e.tokens
}

type emitter struct {
	src    string
	pos    int
	tokens []linetoken.Token
	word   strings.Builder
	state  stringState
}

func (e *emitter) run() {
	atLineStart := true

	for e.pos < len(e.src) {
		if atLineStart {
			if e.startLine() {
				continue
			}
			atLineStart = false
		}

		ch := e.src[e.pos]
		if e.state.Observe(ch) {
			e.word.WriteByte(ch)
			e.pos++
			continue
		}

		switch ch {
		case '\n':
			e.flushWord()
			e.push(linetoken.HardNewLine())
			atLineStart = true
		case '\r':
			// CRLF collapses to a plain newline; a stray CR stays content.
			if e.pos+1 >= len(e.src) || e.src[e.pos+1] != '\n' {
				e.word.WriteByte(ch)
			}
		case '#':
			e.flushWord()
			e.scanComment()
			continue
		case ' ':
			e.flushWord()
			e.push(linetoken.Space())
		case ',':
			e.flushWord()
			e.push(linetoken.Comma())
		case '(':
			e.flushWord()
			e.push(linetoken.OpenParen())
		case ')':
			e.flushWord()
			e.push(linetoken.CloseParen())
		case '[':
			e.flushWord()
			e.push(linetoken.OpenSquareBracket())
		case ']':
			e.flushWord()
			e.push(linetoken.CloseSquareBracket())
		case '{':
			e.flushWord()
			e.push(linetoken.OpenCurlyBracket())
		case '}':
			e.flushWord()
			e.push(linetoken.CloseCurlyBracket())
		default:
			e.word.WriteByte(ch)
		}
		e.pos++
	}

	e.flushWord()

	// Normalize a missing final newline.
	if n := len(e.tokens); n > 0 && !e.tokens[n-1].IsHardNewLine() {
		e.push(linetoken.HardNewLine())
	}
}

// startLine measures the leading indentation of a fresh line. It reports
// true when the whole line was consumed (blank or whitespace-only lines
// collapse to a bare newline, trailing spaces at EOF are dropped).
//
// Comment-only lines are special: the comment token absorbs the leading
// spaces instead of a separate indent token, so a comment directly follows
// the newline of the line above it in the stream.
func (e *emitter) startLine() bool {
	j := e.pos
	for j < len(e.src) && e.src[j] == ' ' {
		j++
	}

	switch {
	case j >= len(e.src):
		e.pos = j
		return true
	case e.src[j] == '\n':
		e.push(linetoken.HardNewLine())
		e.pos = j + 1
		return true
	case e.src[j] == '\r' && j+1 < len(e.src) && e.src[j+1] == '\n':
		e.push(linetoken.HardNewLine())
		e.pos = j + 2
		return true
	case e.src[j] == '#':
		e.scanComment()
		return true
	}

	e.push(linetoken.Indent(j - e.pos))
	e.pos = j
	return false
}

// scanComment consumes from the current position through end of line and
// emits a Comment token. The newline itself is left for the main loop.
func (e *emitter) scanComment() {
	end := strings.IndexByte(e.src[e.pos:], '\n')
	if end < 0 {
		end = len(e.src) - e.pos
	}
	text := strings.TrimRight(e.src[e.pos:e.pos+end], "\r")
	e.push(linetoken.Comment(text))
	e.pos += end
}

func (e *emitter) push(tok linetoken.Token) {
	e.tokens = append(e.tokens, tok)
}

func (e *emitter) flushWord() {
	if e.word.Len() == 0 {
		return
	}
	e.push(classifyWord(e.word.String()))
	e.word.Reset()
}

// classifyWord maps structural Ruby words to their dedicated token kinds.
// Everything else travels as an opaque literal fragment. Words are only
// classified when they stand alone between separators, so 'x.class' or
// ':end' never read as keywords.
func classifyWord(word string) linetoken.Token {
	switch word {
	case "module":
		return linetoken.ModuleKeyword()
	case "class":
		return linetoken.ClassKeyword()
	case "def":
		return linetoken.DefKeyword()
	case "do":
		return linetoken.DoKeyword()
	case "end":
		return linetoken.End()
	case "if", "elsif", "unless", "until", "case":
		return linetoken.ConditionalKeyword(word)
	case "else", "begin", "rescue", "ensure", "when", "then", "while":
		return linetoken.Keyword(word)
	default:
		return linetoken.DirectPart(word)
	}
}
