package kvstore

import (
	"context"
	"time"

	"github.com/mrz1836/rolodex/internal/metrics"
)

// Instrumented wraps a Store and records every call in Metrics.
type Instrumented struct {
	next    Store
	metrics *metrics.Metrics
	now     func() time.Time
}

// Instrument wraps s so its traffic is counted in m.
func Instrument(s Store, m *metrics.Metrics) *Instrumented {
	return &Instrumented{next: s, metrics: m, now: time.Now}
}

// Get implements Store.
func (i *Instrumented) Get(ctx context.Context, key string) (string, bool, error) {
	start := i.now()
	v, found, err := i.next.Get(ctx, key)
	i.metrics.RecordRead(i.now().Sub(start), found, err)
	return v, found, err
}

// Set implements Store.
func (i *Instrumented) Set(ctx context.Context, key, value string) error {
	start := i.now()
	err := i.next.Set(ctx, key, value)
	i.metrics.RecordWrite(i.now().Sub(start), err)
	return err
}
