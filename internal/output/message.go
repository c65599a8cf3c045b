package output

import (
	"fmt"
	"io"
)

// Messenger prints short status lines. Info and success go to out,
// warnings to errOut. Plain drops the emoji prefixes (NO_COLOR).
type Messenger struct {
	out    io.Writer
	errOut io.Writer
	plain  bool
}

// NewMessenger creates a Messenger.
func NewMessenger(out, errOut io.Writer, plain bool) *Messenger {
	return &Messenger{out: out, errOut: errOut, plain: plain}
}

func (m *Messenger) line(w io.Writer, prefix, plainPrefix, msg string) {
	if m.plain {
		prefix = plainPrefix
	}
	_, _ = fmt.Fprintln(w, prefix+msg)
}

// Infof prints an informational message.
func (m *Messenger) Infof(format string, args ...any) {
	m.line(m.out, "ℹ️  ", "info: ", fmt.Sprintf(format, args...))
}

// Warnf prints a warning.
func (m *Messenger) Warnf(format string, args ...any) {
	m.line(m.errOut, "⚠️  ", "warning: ", fmt.Sprintf(format, args...))
}

// Successf prints a success message.
func (m *Messenger) Successf(format string, args ...any) {
	m.line(m.out, "✅ ", "", fmt.Sprintf(format, args...))
}
