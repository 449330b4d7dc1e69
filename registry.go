package cascade

import (
	"sort"
	"sync"
	"weak"
)

// entry is one registration. The registry observes the Listener weakly so
// that the caller's handle alone controls how long it stays registered.
type entry[F any] struct {
	priority int32
	seq      uint64
	ref      weak.Pointer[Listener[F]]
}

// after reports whether e sorts after o: higher priority value, or the same
// priority registered later.
func (e entry[F]) after(o entry[F]) bool {
	if e.priority != o.priority {
		return e.priority > o.priority
	}
	return e.seq > o.seq
}

// registry holds entries sorted by (priority, seq).
type registry[F any] struct {
	entries []entry[F]
	seq     uint64 // last registration sequence number
	mu      sync.Mutex
	buffers sync.Pool // *[]*Listener[F], see snapshot.go
}

// insert stores a weak observation of l at its sorted position.
func (r *registry[F]) insert(l *Listener[F]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	e := entry[F]{priority: l.priority, seq: r.seq, ref: weak.Make(l)}

	idx := sort.Search(len(r.entries), func(i int) bool {
		return r.entries[i].after(e)
	})

	r.entries = append(r.entries, entry[F]{})
	copy(r.entries[idx+1:], r.entries[idx:])
	r.entries[idx] = e
}

// remove erases the entry observing l, pruning stale entries on the way.
// Reports whether l was found and the number of stale entries erased.
func (r *registry[F]) remove(l *Listener[F]) (found bool, pruned int) {
	if l == nil {
		return false, 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.entries[:0]
	for _, e := range r.entries {
		live := e.ref.Value()
		switch {
		case live == nil:
			pruned++
		case live == l && !found:
			found = true
		default:
			kept = append(kept, e)
		}
	}
	r.truncate(kept)

	return found, pruned
}

// snapshot appends every live listener to buf in dispatch order and erases
// stale entries in place. The returned listeners are strong references, so
// later pruning or removal cannot affect a pass that is already running.
func (r *registry[F]) snapshot(buf []*Listener[F]) ([]*Listener[F], int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pruned := 0
	kept := r.entries[:0]
	for _, e := range r.entries {
		if live := e.ref.Value(); live != nil {
			buf = append(buf, live)
			kept = append(kept, e)
			continue
		}
		pruned++
	}
	r.truncate(kept)

	return buf, pruned
}

// len returns the number of stored entries, stale or not.
func (r *registry[F]) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// truncate shrinks entries to kept, which must alias its prefix.
// Must be called while holding r.mu.
func (r *registry[F]) truncate(kept []entry[F]) {
	clear(r.entries[len(kept):])
	r.entries = kept
}
