package cascade

import "sync"

// Closer is implemented by every *Listener.
type Closer interface {
	Close() bool
}

// Group owns a set of listener handles, possibly from different dispatchers.
// Holding the Group keeps its listeners registered; Close removes them all.
// It is the usual place to keep handles that would otherwise have no owner.
type Group struct {
	listeners []Closer
	closed    bool
	mu        sync.Mutex
}

// Add keeps the given listeners registered until the group is closed.
// Listeners added after Close are closed immediately. Nil entries are ignored.
func (g *Group) Add(listeners ...Closer) {
	g.mu.Lock()
	if !g.closed {
		for _, l := range listeners {
			if l != nil {
				g.listeners = append(g.listeners, l)
			}
		}
		g.mu.Unlock()
		return
	}
	g.mu.Unlock()

	for _, l := range listeners {
		if l != nil {
			l.Close()
		}
	}
}

// Len returns the number of listeners held by the group.
func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.listeners)
}

// Close removes every listener in the group from its dispatcher and returns
// how many were still registered. Safe to call multiple times.
func (g *Group) Close() int {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return 0
	}
	g.closed = true
	listeners := g.listeners
	g.listeners = nil
	g.mu.Unlock()

	// Close outside the group lock; Close takes each dispatcher's own lock.
	removed := 0
	for _, l := range listeners {
		if l.Close() {
			removed++
		}
	}
	return removed
}

