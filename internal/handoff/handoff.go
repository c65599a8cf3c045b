// Package handoff defines the requests one screen passes to another and the
// navigators that carry them out.
//
// Navigation is fire-and-forget: a screen hands a request over and does not
// wait for, or receive, a result from the target.
package handoff

import (
	"context"

	"github.com/mrz1836/rolodex/internal/contact"
)

// RouteName identifies a navigation target.
type RouteName string

// Known navigation targets.
const (
	RouteSend RouteName = "send"
	RouteEdit RouteName = "edit"
	RouteQR   RouteName = "qr"
)

// Route is a request bound for a named target.
type Route interface {
	Route() RouteName
}

// SendRequest opens the send flow. Destination is never truncated.
type SendRequest struct {
	Destination string `json:"destination"`
	ContactName string `json:"contactName"`
}

// Route implements Route.
func (SendRequest) Route() RouteName { return RouteSend }

// EditRequest opens the add/edit contact flow prefilled with a record.
type EditRequest struct {
	Prefill contact.Record `json:"prefillContact"`
	IsEdit  bool           `json:"isEdit"`
}

// Route implements Route.
func (EditRequest) Route() RouteName { return RouteEdit }

// QRRequest opens the QR screen for a value.
type QRRequest struct {
	Value      string `json:"value"`
	HideText   bool   `json:"hideText"`
	JumboLabel bool   `json:"jumboLabel"`
}

// Route implements Route.
func (QRRequest) Route() RouteName { return RouteQR }

// Navigator carries a request to its target.
type Navigator interface {
	Navigate(ctx context.Context, r Route) error
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(ctx context.Context, r Route) error

// Navigate calls f.
func (f NavigatorFunc) Navigate(ctx context.Context, r Route) error {
	return f(ctx, r)
}
