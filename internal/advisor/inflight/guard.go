// Package inflight rejects overlapping requests for the same key.
// Each operation class (plan generation, chat send) owns one Guard so
// a rapid double submission from the same client session fails
// deterministically instead of racing.
package inflight

import "sync"

type Guard struct {
	mu   sync.Mutex
	busy map[string]struct{}
}

func New() *Guard {
	return &Guard{busy: make(map[string]struct{})}
}

// TryAcquire reserves key. It returns a release func and true, or nil
// and false when a request for key is already running.
func (g *Guard) TryAcquire(key string) (func(), bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.busy[key]; ok {
		return nil, false
	}
	g.busy[key] = struct{}{}

	return func() {
		g.mu.Lock()
		delete(g.busy, key)
		g.mu.Unlock()
	}, true
}
