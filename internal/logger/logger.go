// Package logger provides conditional console output for debug traces and
// opt-in warnings.
package logger

import (
	"fmt"
	"io"
)

// Logger prints only when enabled. The zero value is silent.
type Logger struct {
	enabled bool
	w       io.Writer
}

// New creates a Logger writing to w when enabled is true.
func New(enabled bool, w io.Writer) Logger {
	return Logger{enabled: enabled, w: w}
}

// Enabled reports whether output is produced.
func (l Logger) Enabled() bool {
	return l.enabled && l.w != nil
}

// Printf prints formatted output if logging is enabled.
func (l Logger) Printf(format string, args ...any) {
	if !l.Enabled() {
		return
	}

	fmt.Fprintf(l.w, format, args...)
}
