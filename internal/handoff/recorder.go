package handoff

import (
	"context"
	"sync"
)

// Recorder is a Navigator that keeps every request it receives.
type Recorder struct {
	mu     sync.Mutex
	routes []Route

	// Fail, when set, is returned instead of recording.
	Fail error
}

// Navigate records r.
func (rec *Recorder) Navigate(ctx context.Context, r Route) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.Fail != nil {
		return rec.Fail
	}
	rec.routes = append(rec.routes, r)
	return nil
}

// Routes returns the recorded requests in arrival order.
func (rec *Recorder) Routes() []Route {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	out := make([]Route, len(rec.routes))
	copy(out, rec.routes)
	return out
}

// Last returns the most recent request, if any.
func (rec *Recorder) Last() (Route, bool) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if len(rec.routes) == 0 {
		return nil, false
	}
	return rec.routes[len(rec.routes)-1], true
}

// Len returns the number of recorded requests.
func (rec *Recorder) Len() int {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return len(rec.routes)
}
