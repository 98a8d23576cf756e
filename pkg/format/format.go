// Package format wires the emitter, the intermediary, and the renderer
// into the per-source formatting pipeline.
package format

import (
	"context"
	"fmt"
	"os"

	"github.com/shkm/rubyfmt/pkg/emitter"
	"github.com/shkm/rubyfmt/pkg/intermediary"
	"github.com/shkm/rubyfmt/pkg/linetoken"
)

// Result holds the outcome of formatting one source.
type Result struct {
	// Path is the origin of the source; empty for stdin or raw input.
	Path string

	// Original is the input exactly as read.
	Original []byte

	// Formatted is the corrected output.
	Formatted []byte

	// Changed reports whether Formatted differs from Original.
	Changed bool
}

// Source runs the full pipeline over raw Ruby source: tokenize, push every
// token through the intermediary's blank-line policy, render the finished
// sequence back to text.
func Source(src []byte) []byte {
	buf := intermediary.New()
	for _, tok := range emitter.Emit(string(src)) {
		buf.Push(tok)
	}
	return []byte(linetoken.Render(buf.Tokens()))
}

// Bytes formats src and reports the result against the original.
func Bytes(src []byte, path string) Result {
	formatted := Source(src)
	return Result{
		Path:      path,
		Original:  src,
		Formatted: formatted,
		Changed:   string(formatted) != string(src),
	}
}

// File reads and formats the file at path. The file is not modified.
func File(ctx context.Context, path string) (Result, error) {
	select {
	case <-ctx.Done():
		return Result{}, fmt.Errorf("format %s: %w", path, ctx.Err())
	default:
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Bytes(src, path), nil
}
