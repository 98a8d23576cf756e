package linetoken_test

import (
	"testing"

	"github.com/shkm/rubyfmt/pkg/linetoken"
)

func TestSource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tok  linetoken.Token
		want string
	}{
		{"hard newline", linetoken.HardNewLine(), "\n"},
		{"indent depth 0", linetoken.Indent(0), ""},
		{"indent depth 4", linetoken.Indent(4), "    "},
		{"space", linetoken.Space(), " "},
		{"comma", linetoken.Comma(), ","},
		{"direct part", linetoken.DirectPart("foo.bar"), "foo.bar"},
		{"comment", linetoken.Comment("# hi"), "# hi"},
		{"module", linetoken.ModuleKeyword(), "module"},
		{"class", linetoken.ClassKeyword(), "class"},
		{"def", linetoken.DefKeyword(), "def"},
		{"do", linetoken.DoKeyword(), "do"},
		{"end", linetoken.End(), "end"},
		{"conditional carries contents", linetoken.ConditionalKeyword("elsif"), "elsif"},
		{"keyword carries contents", linetoken.Keyword("begin"), "begin"},
		{"open paren", linetoken.OpenParen(), "("},
		{"close paren", linetoken.CloseParen(), ")"},
		{"open square", linetoken.OpenSquareBracket(), "["},
		{"close square", linetoken.CloseSquareBracket(), "]"},
		{"open curly", linetoken.OpenCurlyBracket(), "{"},
		{"close curly", linetoken.CloseCurlyBracket(), "}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.tok.Source(); got != tt.want {
				t.Errorf("Source() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsSingleLineBreakableGarbage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tok  linetoken.Token
		want bool
	}{
		{"comma", linetoken.Comma(), true},
		{"space", linetoken.Space(), true},
		{"empty direct part", linetoken.DirectPart(""), true},
		{"non-empty direct part", linetoken.DirectPart("x"), false},
		{"hard newline", linetoken.HardNewLine(), false},
		{"indent", linetoken.Indent(2), false},
		{"close paren", linetoken.CloseParen(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.tok.IsSingleLineBreakableGarbage(); got != tt.want {
				t.Errorf("IsSingleLineBreakableGarbage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsCloseDelimiter(t *testing.T) {
	t.Parallel()

	closers := []linetoken.Token{
		linetoken.CloseParen(),
		linetoken.CloseSquareBracket(),
		linetoken.CloseCurlyBracket(),
	}
	for _, tok := range closers {
		if !tok.IsCloseDelimiter() {
			t.Errorf("%v should be a close delimiter", tok.Kind)
		}
	}

	openers := []linetoken.Token{
		linetoken.OpenParen(),
		linetoken.OpenSquareBracket(),
		linetoken.OpenCurlyBracket(),
		linetoken.DirectPart(")"),
	}
	for _, tok := range openers {
		if tok.IsCloseDelimiter() {
			t.Errorf("%v should not be a close delimiter", tok.Kind)
		}
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	if got := linetoken.KindHardNewLine.String(); got != "HardNewLine" {
		t.Errorf("KindHardNewLine.String() = %q", got)
	}
	if got := linetoken.KindConditionalKeyword.String(); got != "ConditionalKeyword" {
		t.Errorf("KindConditionalKeyword.String() = %q", got)
	}
	if got := linetoken.KindCloseCurlyBracket.String(); got != "CloseCurlyBracket" {
		t.Errorf("KindCloseCurlyBracket.String() = %q", got)
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	toks := []linetoken.Token{
		linetoken.Indent(2),
		linetoken.DirectPart("foo"),
		linetoken.OpenParen(),
		linetoken.DirectPart("a"),
		linetoken.Comma(),
		linetoken.Space(),
		linetoken.DirectPart("b"),
		linetoken.CloseParen(),
		linetoken.HardNewLine(),
	}

	want := "  foo(a, b)\n"
	if got := linetoken.Render(toks); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
