package pricefeed

import (
	"context"
	"sync"
	"time"

	"lavo-client/pkg/lavo"
)

// DefaultInterval is the fixed polling cadence of the price feed.
const DefaultInterval = 10 * time.Second

// Source supplies price tables. Satisfied by *lavo.Client.
type Source interface {
	Prices(ctx context.Context) (lavo.PriceTable, error)
}

// Feed polls a Source on a fixed interval and exposes the latest snapshot.
// Price display is best-effort: a failed fetch keeps the previous table in
// place and is not surfaced anywhere.
type Feed struct {
	source   Source
	interval time.Duration

	mu     sync.RWMutex
	latest lavo.PriceTable
	ready  bool
}

// New creates a feed. A non-positive interval falls back to DefaultInterval.
func New(source Source, interval time.Duration) *Feed {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Feed{source: source, interval: interval}
}

// Run polls once immediately, then on every tick until ctx is cancelled.
// Each poll replaces the snapshot wholesale; previous tables are discarded.
func (f *Feed) Run(ctx context.Context) {
	f.poll(ctx)
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			f.poll(ctx)
		}
	}
}

func (f *Feed) poll(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	table, err := f.source.Prices(ctx)
	if err != nil {
		return
	}
	// The feed may have been torn down while the fetch was in flight; a
	// late result must not update state.
	if ctx.Err() != nil {
		return
	}
	f.mu.Lock()
	f.latest = table
	f.ready = true
	f.mu.Unlock()
}

// Latest returns the most recent snapshot. The second return is false until
// the first successful fetch completes.
func (f *Feed) Latest() (lavo.PriceTable, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.latest, f.ready
}
