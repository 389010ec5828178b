package collector

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"BacBoSentinel/internal/model"
)

// ErrFetch wraps every feed failure: unreachable source, bad status, nothing parsable.
var ErrFetch = errors.New("fetch failed")

// MockFetcher returns scripted sequences for development and testing. Each call
// returns the next script entry; the last one repeats. Err, when set, is returned instead.
type MockFetcher struct {
	mu     sync.Mutex
	Script [][]model.Outcome
	Err    error
	calls  int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchLatestOutcomes(_ context.Context) ([]model.Outcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.Err != nil {
		return nil, m.Err
	}
	if len(m.Script) == 0 {
		return nil, nil
	}
	i := m.calls - 1
	if i >= len(m.Script) {
		i = len(m.Script) - 1
	}
	out := make([]model.Outcome, len(m.Script[i]))
	copy(out, m.Script[i])
	return out, nil
}

// Calls returns how many times the fetcher was invoked.
func (m *MockFetcher) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Collector wraps a Fetcher, caps the window and normalises errors.
type Collector struct {
	Fetcher Fetcher
	Window  int
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, window int) *Collector {
	return &Collector{Fetcher: fetcher, Window: window}
}

// Collect fetches the latest outcomes, oldest first, at most Window entries.
// Every failure is wrapped with ErrFetch.
func (c *Collector) Collect(ctx context.Context) ([]model.Outcome, error) {
	seq, err := c.Fetcher.FetchLatestOutcomes(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFetch, c.Fetcher.Name(), err)
	}
	if len(seq) == 0 {
		return nil, fmt.Errorf("%w: %s: no outcomes parsed", ErrFetch, c.Fetcher.Name())
	}
	for _, o := range seq {
		if err := o.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrFetch, c.Fetcher.Name(), err)
		}
	}
	if c.Window > 0 && len(seq) > c.Window {
		seq = seq[len(seq)-c.Window:]
	}
	return seq, nil
}
