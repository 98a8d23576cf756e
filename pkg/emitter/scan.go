package emitter

// stringState tracks Ruby string-literal boundaries (double-quoted,
// single-quoted, backtick) and escape sequences while the emitter walks
// source bytes. Callers ask Observe instead of maintaining their own
// inDouble/inSingle/escaped flags.
type stringState struct {
	inDouble   bool
	inSingle   bool
	inBacktick bool
	escaped    bool
}

// Observe consumes one byte, updating string/escape state, and reports
// whether the byte belongs to a string literal span. Both opening and
// closing delimiters count as part of the span.
func (s *stringState) Observe(ch byte) bool {
	if s.escaped {
		s.escaped = false
		return true
	}
	if ch == '\\' && (s.inDouble || s.inSingle) {
		s.escaped = true
		return true
	}

	switch {
	case ch == '"' && !s.inSingle && !s.inBacktick:
		s.inDouble = !s.inDouble
		return true
	case ch == '\'' && !s.inDouble && !s.inBacktick:
		s.inSingle = !s.inSingle
		return true
	case ch == '`' && !s.inDouble && !s.inSingle:
		s.inBacktick = !s.inBacktick
		return true
	}

	return s.inDouble || s.inSingle || s.inBacktick
}

// InString reports whether the current position is inside a string literal.
func (s *stringState) InString() bool {
	return s.inDouble || s.inSingle || s.inBacktick
}
