// Package linetoken defines the formatting primitives that flow between the
// Ruby line emitter, the intermediary buffer, and the renderer. Tokens are
// small value types; a slice of them represents a fully ordered output
// stream that renders to literal Ruby source.
package linetoken

import "strings"

//go:generate stringer -type=Kind -trimprefix=Kind

// Kind classifies the type of a formatting primitive.
type Kind uint16

// Token kinds cover every primitive the emitter produces. Structural
// keywords get their own kinds so the intermediary can dispatch on them;
// everything else travels as DirectPart or one of the punctuation kinds.
const (
	KindHardNewLine Kind = iota // ends a logical line
	KindIndent                  // leading indentation, Depth spaces
	KindSpace                   // single inter-token space
	KindComma                   // ','
	KindDirectPart              // literal text fragment
	KindComment                 // '#' comment through end of line

	KindModuleKeyword      // 'module'
	KindClassKeyword       // 'class'
	KindDefKeyword         // 'def'
	KindDoKeyword          // 'do'
	KindEnd                // 'end'
	KindConditionalKeyword // 'if', 'elsif', 'unless', 'until', 'case'
	KindKeyword            // other structural words: 'else', 'begin', ...

	KindOpenParen          // '('
	KindCloseParen         // ')'
	KindOpenSquareBracket  // '['
	KindCloseSquareBracket // ']'
	KindOpenCurlyBracket   // '{'
	KindCloseCurlyBracket  // '}'
)

// Token is one formatting primitive. Text is set for the textual kinds
// (DirectPart, Comment, ConditionalKeyword, Keyword); Depth is set only for
// Indent and counts spaces.
type Token struct {
	Kind  Kind
	Text  string
	Depth int
}

// HardNewLine returns a line-ending token.
func HardNewLine() Token { return Token{Kind: KindHardNewLine} }

// Indent returns an indentation token of depth spaces.
func Indent(depth int) Token { return Token{Kind: KindIndent, Depth: depth} }

// Space returns a single space token.
func Space() Token { return Token{Kind: KindSpace} }

// Comma returns a comma token.
func Comma() Token { return Token{Kind: KindComma} }

// DirectPart returns a literal text fragment token.
func DirectPart(text string) Token { return Token{Kind: KindDirectPart, Text: text} }

// Comment returns a comment token. Text includes the leading '#'.
func Comment(text string) Token { return Token{Kind: KindComment, Text: text} }

// ModuleKeyword returns a 'module' keyword token.
func ModuleKeyword() Token { return Token{Kind: KindModuleKeyword} }

// ClassKeyword returns a 'class' keyword token.
func ClassKeyword() Token { return Token{Kind: KindClassKeyword} }

// DefKeyword returns a 'def' keyword token.
func DefKeyword() Token { return Token{Kind: KindDefKeyword} }

// DoKeyword returns a 'do' keyword token.
func DoKeyword() Token { return Token{Kind: KindDoKeyword} }

// End returns an 'end' keyword token.
func End() Token { return Token{Kind: KindEnd} }

// ConditionalKeyword returns a conditional keyword token. The contents
// distinguish a fresh 'if' from 'elsif', 'unless', 'until' and 'case'.
func ConditionalKeyword(contents string) Token {
	return Token{Kind: KindConditionalKeyword, Text: contents}
}

// Keyword returns a structural keyword token with no special blank-line
// handling ('else', 'begin', 'when', ...).
func Keyword(text string) Token { return Token{Kind: KindKeyword, Text: text} }

// OpenParen returns a '(' token.
func OpenParen() Token { return Token{Kind: KindOpenParen} }

// CloseParen returns a ')' token.
func CloseParen() Token { return Token{Kind: KindCloseParen} }

// OpenSquareBracket returns a '[' token.
func OpenSquareBracket() Token { return Token{Kind: KindOpenSquareBracket} }

// CloseSquareBracket returns a ']' token.
func CloseSquareBracket() Token { return Token{Kind: KindCloseSquareBracket} }

// OpenCurlyBracket returns a '{' token.
func OpenCurlyBracket() Token { return Token{Kind: KindOpenCurlyBracket} }

// CloseCurlyBracket returns a '}' token.
func CloseCurlyBracket() Token { return Token{Kind: KindCloseCurlyBracket} }

// IsHardNewLine reports whether this token ends a logical line.
func (t Token) IsHardNewLine() bool {
	return t.Kind == KindHardNewLine
}

// IsIndent reports whether this token is an indentation marker.
func (t Token) IsIndent() bool {
	return t.Kind == KindIndent
}

// IsSingleLineBreakableGarbage reports whether this token is disposable
// filler left behind when a multi-line bracketed construct collapses onto
// one line: a trailing comma, spacing, or an empty literal fragment.
func (t Token) IsSingleLineBreakableGarbage() bool {
	switch t.Kind {
	case KindComma, KindSpace:
		return true
	case KindDirectPart:
		return t.Text == ""
	default:
		return false
	}
}

// IsCloseDelimiter reports whether this token closes a bracketed construct.
func (t Token) IsCloseDelimiter() bool {
	switch t.Kind {
	case KindCloseParen, KindCloseSquareBracket, KindCloseCurlyBracket:
		return true
	default:
		return false
	}
}

// Source returns the literal Ruby text this token renders to.
func (t Token) Source() string {
	switch t.Kind {
	case KindHardNewLine:
		return "\n"
	case KindIndent:
		return strings.Repeat(" ", t.Depth)
	case KindSpace:
		return " "
	case KindComma:
		return ","
	case KindDirectPart, KindComment, KindConditionalKeyword, KindKeyword:
		return t.Text
	case KindModuleKeyword:
		return "module"
	case KindClassKeyword:
		return "class"
	case KindDefKeyword:
		return "def"
	case KindDoKeyword:
		return "do"
	case KindEnd:
		return "end"
	case KindOpenParen:
		return "("
	case KindCloseParen:
		return ")"
	case KindOpenSquareBracket:
		return "["
	case KindCloseSquareBracket:
		return "]"
	case KindOpenCurlyBracket:
		return "{"
	case KindCloseCurlyBracket:
		return "}"
	default:
		return ""
	}
}
