//go:build !rubyfmt_debug

package intermediary

// debugChecks is compiled out of regular builds; the newline-index
// invariant is trusted once the debug-tagged test suite has passed.
const debugChecks = false
