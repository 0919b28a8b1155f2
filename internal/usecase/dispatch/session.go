package dispatch

import (
	"sync"
	"time"
)

// gate enforces the two entry rules of the dispatcher: at most one attempt
// in flight process-wide, and no new attempt within the debounce window of
// the previous attempt's start. OS-level key repeat fires the hotkey
// callback several times for one physical press; both rules drop those.
type gate struct {
	mu        sync.Mutex
	active    bool
	lastStart time.Time
}

// tryAcquire marks a session active if none is and the debounce window has
// passed. The caller must release() on every exit path.
func (g *gate) tryAcquire(now time.Time, debounce time.Duration) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.active {
		return false
	}
	if !g.lastStart.IsZero() && now.Sub(g.lastStart) < debounce {
		return false
	}
	g.active = true
	g.lastStart = now
	return true
}

func (g *gate) release() {
	g.mu.Lock()
	g.active = false
	g.mu.Unlock()
}

func (g *gate) isActive() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active
}
