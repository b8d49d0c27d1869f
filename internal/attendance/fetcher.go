package attendance

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/noah-isme/matricula-dashboard-api/internal/models"
)

// ErrSuperseded is returned to a fetch replaced by a newer one for the same key.
var ErrSuperseded = errors.New("attendance fetch superseded by a newer request")

// LoadFunc produces a snapshot once the simulated latency has elapsed.
type LoadFunc func(ctx context.Context, filters models.AttendanceFilters) (models.AttendanceSnapshot, error)

type flight struct {
	id     uint64
	cancel context.CancelCauseFunc
}

// Fetcher delays loads and keeps at most one in-flight load per key. A new
// fetch for a key cancels the previous one.
type Fetcher struct {
	delay        time.Duration
	load         LoadFunc
	onSuperseded func()

	mu       sync.Mutex
	seq      uint64
	inflight map[string]flight
}

// FetcherOption customises a Fetcher.
type FetcherOption func(*Fetcher)

// WithSupersededHook registers a callback run whenever a fetch is superseded.
func WithSupersededHook(fn func()) FetcherOption {
	return func(f *Fetcher) { f.onSuperseded = fn }
}

// NewFetcher builds a fetcher waiting delay before calling load.
func NewFetcher(delay time.Duration, load LoadFunc, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{delay: delay, load: load, inflight: make(map[string]flight)}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch waits the configured delay and loads a snapshot. An empty key never
// supersedes other fetches.
func (f *Fetcher) Fetch(ctx context.Context, key string, filters models.AttendanceFilters) (models.AttendanceSnapshot, error) {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	id := f.register(key, cancel)
	defer f.release(key, id)

	timer := time.NewTimer(f.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return models.AttendanceSnapshot{}, f.cause(ctx)
	case <-timer.C:
	}

	snap, err := f.load(ctx, filters)
	if err != nil {
		if ctx.Err() != nil {
			return models.AttendanceSnapshot{}, f.cause(ctx)
		}
		return models.AttendanceSnapshot{}, err
	}
	if !f.current(key, id) {
		f.superseded()
		return models.AttendanceSnapshot{}, ErrSuperseded
	}
	return snap, nil
}

func (f *Fetcher) register(key string, cancel context.CancelCauseFunc) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	if key == "" {
		return f.seq
	}
	if prev, ok := f.inflight[key]; ok {
		prev.cancel(ErrSuperseded)
	}
	f.inflight[key] = flight{id: f.seq, cancel: cancel}
	return f.seq
}

func (f *Fetcher) release(key string, id uint64) {
	if key == "" {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if cur, ok := f.inflight[key]; ok && cur.id == id {
		delete(f.inflight, key)
	}
}

func (f *Fetcher) current(key string, id uint64) bool {
	if key == "" {
		return true
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	cur, ok := f.inflight[key]
	return ok && cur.id == id
}

func (f *Fetcher) cause(ctx context.Context) error {
	cause := context.Cause(ctx)
	if errors.Is(cause, ErrSuperseded) {
		f.superseded()
		return ErrSuperseded
	}
	return ctx.Err()
}

func (f *Fetcher) superseded() {
	if f.onSuperseded != nil {
		f.onSuperseded()
	}
}
