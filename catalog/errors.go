package catalog

import (
	"errors"
	"fmt"
)

// ErrNoInputFiles is returned by merge when the input list is empty. It
// is reported before any file is read or written.
var ErrNoInputFiles = errors.New("catalog: no input files")

// MalformedError reports a catalog file the parser could not make sense
// of. It is fatal to the operation that triggered the parse; there is no
// partial or best-effort result.
type MalformedError struct {
	File   string // path of the offending file; empty when parsing a stream
	Line   int    // 1-based line number
	Reason string
}

func (e *MalformedError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Reason)
}

func malformed(line int, format string, args ...interface{}) error {
	return &MalformedError{Line: line, Reason: fmt.Sprintf(format, args...)}
}
