package screen

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/mrz1836/rolodex/internal/handoff"
	"github.com/mrz1836/rolodex/internal/output"
)

// QR shows a value as a QR code.
type QR struct {
	req handoff.QRRequest
	cfg output.QRConfig

	// Draw renders the code. It defaults to output.RenderQR, which draws
	// nothing when the writer is not a terminal.
	Draw func(w io.Writer, data string, cfg output.QRConfig) error
}

// NewQR opens the QR screen for req.
func NewQR(req handoff.QRRequest, cfg output.QRConfig) *QR {
	return &QR{req: req, cfg: cfg, Draw: output.RenderQR}
}

// Request returns the request the screen was opened with.
func (q *QR) Request() handoff.QRRequest {
	return q.req
}

// Render writes the jumbo label when requested, then the code, then the
// value under the code unless HideText is set.
func (q *QR) Render(w io.Writer) error {
	if q.req.JumboLabel {
		rule := strings.Repeat("=", min(utf8.RuneCountInString(q.req.Value), 64))
		if _, err := fmt.Fprintf(w, "%s\n%s\n%s\n\n", rule, q.req.Value, rule); err != nil {
			return err
		}
	}

	if err := q.Draw(w, q.req.Value, q.cfg); err != nil {
		return err
	}

	if !q.req.HideText {
		if _, err := fmt.Fprintln(w, q.req.Value); err != nil {
			return err
		}
	}
	return nil
}
