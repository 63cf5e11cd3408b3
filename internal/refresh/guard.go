// Package refresh serializes reloads of shared view data. Beginning a
// new load cancels the previous one, and a load that finishes after it
// has been superseded is rejected by generation number, so a slow fetch
// can never overwrite a newer one.
package refresh

import (
	"context"
	"sync"
)

type Guard struct {
	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

// Begin cancels any in-flight load and opens a new one. The returned
// context is canceled by the next Begin or by Stop; the generation
// identifies this load when its result arrives.
func (g *Guard) Begin(parent context.Context) (context.Context, uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.cancel != nil {
		g.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	g.cancel = cancel
	g.gen++
	return ctx, g.gen
}

// Accept reports whether the load that produced gen is still the
// current one.
func (g *Guard) Accept(gen uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return gen == g.gen
}

// Stop cancels the in-flight load without opening a new one. Safe to
// call repeatedly, and before any Begin.
func (g *Guard) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
}
