package intermediary

// LineMetadata is the fact sheet for exactly one logical line: the span of
// tokens between two hard newlines. A fresh one is created at stream start
// and after every hard newline; facts accumulate as the line's tokens are
// pushed. When the closing newline arrives the current metadata is frozen
// into the "previous" slot and queried to decide blank-line insertion for
// the next line. Only one line of lookback is ever kept.
type LineMetadata struct {
	hasRequire     bool
	hasEnd         bool
	hasDef         bool
	hasConditional bool
	hasDoKeyword   bool

	// indentLevel is the depth observed via an Indent token belonging to
	// this line. indentObserved distinguishes "depth 0" from "no indent
	// token seen yet".
	indentLevel    int
	indentObserved bool

	// getsIndented is set retroactively by the next line's Indent token
	// when that line is strictly deeper, marking this line as a block
	// opener.
	getsIndented bool
}

// HasRequire reports whether this line begins with a require statement.
func (m *LineMetadata) HasRequire() bool { return m.hasRequire }

// SetHasRequire records that this line begins with a require statement.
func (m *LineMetadata) SetHasRequire() { m.hasRequire = true }

// HasEnd reports whether this line contains an 'end' keyword.
func (m *LineMetadata) HasEnd() bool { return m.hasEnd }

// SetHasEnd records that this line contains an 'end' keyword.
func (m *LineMetadata) SetHasEnd() { m.hasEnd = true }

// HasDef reports whether this line contains a 'def' keyword.
func (m *LineMetadata) HasDef() bool { return m.hasDef }

// SetHasDef records that this line contains a 'def' keyword.
func (m *LineMetadata) SetHasDef() { m.hasDef = true }

// HasConditional reports whether this line contains a conditional keyword.
func (m *LineMetadata) HasConditional() bool { return m.hasConditional }

// SetHasConditional records that this line contains a conditional keyword.
func (m *LineMetadata) SetHasConditional() { m.hasConditional = true }

// HasDoKeyword reports whether this line contains a 'do' keyword.
func (m *LineMetadata) HasDoKeyword() bool { return m.hasDoKeyword }

// SetHasDoKeyword records that this line contains a 'do' keyword.
func (m *LineMetadata) SetHasDoKeyword() { m.hasDoKeyword = true }

// ObserveIndentLevel records the indentation depth of this line.
func (m *LineMetadata) ObserveIndentLevel(depth int) {
	m.indentLevel = depth
	m.indentObserved = true
}

// IndentLevel returns the observed indentation depth of this line, and
// whether an indent token has been observed at all.
func (m *LineMetadata) IndentLevel() (int, bool) {
	return m.indentLevel, m.indentObserved
}

// GetsIndented reports whether the following line begins a strictly deeper
// indentation level, i.e. this line opens a block.
func (m *LineMetadata) GetsIndented() bool { return m.getsIndented }

// SetGetsIndented marks this line as a block opener.
func (m *LineMetadata) SetGetsIndented() { m.getsIndented = true }

// WantsSpacerForConditional reports whether this line represents a
// just-closed conditional or do-block whose 'end' should be visually
// separated from a conditional or do-block that follows.
func (m *LineMetadata) WantsSpacerForConditional() bool {
	return m.hasEnd && (m.hasConditional || m.hasDoKeyword)
}

// IndentLevelIncreasesBetween reports whether cur sits at a strictly
// deeper indentation level than prev. Lines with no observed indent are
// never considered part of an increase.
func IndentLevelIncreasesBetween(prev, cur *LineMetadata) bool {
	if !prev.indentObserved || !cur.indentObserved {
		return false
	}
	return cur.indentLevel > prev.indentLevel
}
