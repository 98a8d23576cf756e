package linetoken

import "strings"

// Render joins a finished token sequence into literal Ruby source text.
// This is the downstream boundary: the intermediary hands its buffer here
// once the whole stream has been pushed.
func Render(tokens []Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(tok.Source())
	}
	return sb.String()
}
