package handoff

import (
	"context"
	"fmt"
	"io"

	"github.com/mrz1836/rolodex/internal/output"
)

// Printer is the terminal Navigator: instead of opening another screen it
// writes the request so the user, or a calling program, can act on it.
type Printer struct {
	w      io.Writer
	format output.Format

	// QR, when set, renders QR requests instead of printing them.
	QR func(ctx context.Context, req QRRequest) error
}

// NewPrinter creates a Printer writing to w in format.
func NewPrinter(w io.Writer, format output.Format) *Printer {
	return &Printer{w: w, format: format}
}

type printedRoute struct {
	Route   RouteName `json:"route"`
	Request Route     `json:"request"`
}

// Navigate writes r.
func (p *Printer) Navigate(ctx context.Context, r Route) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if req, ok := r.(QRRequest); ok && p.QR != nil {
		return p.QR(ctx, req)
	}

	if p.format == output.FormatJSON {
		return output.WriteJSON(p.w, printedRoute{Route: r.Route(), Request: r})
	}

	var err error
	switch req := r.(type) {
	case SendRequest:
		_, err = fmt.Fprintf(p.w, "Send to %s\n  destination: %s\n", req.ContactName, req.Destination)
	case EditRequest:
		_, err = fmt.Fprintf(p.w, "Edit contact %s (%s)\n  apply changes with: rolodex contact update --file <record.json>\n",
			req.Prefill.Name, req.Prefill.ID)
	case QRRequest:
		_, err = fmt.Fprintln(p.w, req.Value)
	default:
		_, err = fmt.Fprintf(p.w, "%s\n", r.Route())
	}
	return err
}
