// Package present turns a contact's addresses into what the detail screen
// shows: shortened values, per-kind icons and the action a tap triggers.
package present

// Truncator shortens long values to their first Head and last Tail
// characters around Ellipsis. Values of at most Threshold characters are
// returned unchanged. Lengths count runes, not bytes.
type Truncator struct {
	Threshold int
	Head      int
	Tail      int
	Ellipsis  string
}

// DefaultTruncator keeps 10 leading and 5 trailing characters of values
// longer than 15.
var DefaultTruncator = Truncator{Threshold: 15, Head: 10, Tail: 5, Ellipsis: "..."}

// Truncate shortens value with DefaultTruncator.
func Truncate(value string) string {
	return DefaultTruncator.Truncate(value)
}

// Truncate shortens value.
func (t Truncator) Truncate(value string) string {
	runes := []rune(value)
	if len(runes) <= t.Threshold {
		return value
	}

	head, tail := max(t.Head, 0), max(t.Tail, 0)
	if head+tail >= len(runes) {
		return value
	}
	return string(runes[:head]) + t.Ellipsis + string(runes[len(runes)-tail:])
}
