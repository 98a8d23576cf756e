//go:build rubyfmt_debug

package intermediary

// debugChecks enables the newline-index invariant check and debug logging
// of blank-line insertions. Enabled via the rubyfmt_debug build tag; tests
// exercise the invariant directly so regular test runs stay strict too.
const debugChecks = true
