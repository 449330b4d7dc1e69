package cascade

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// core is the arity-independent part of every dispatcher.
type core[F any] struct {
	registry registry[F]
	cfg      config
	tel      telemetry

	dispatches  atomic.Uint64
	invocations atomic.Uint64
	consumed    atomic.Uint64
	filtered    atomic.Uint64
	pruned      atomic.Uint64
	panics      atomic.Uint64
}

func newCore[F any](opts []Option) *core[F] {
	cfg := newConfig(opts)
	return &core[F]{
		cfg: cfg,
		tel: newTelemetry(cfg),
	}
}

// register creates a handle for fn and stores a weak observation of it.
func (c *core[F]) register(fn F, priority int32) *Listener[F] {
	l := &Listener[F]{fn: fn, priority: priority, owner: c}
	c.registry.insert(l)
	return l
}

// remove revokes l. Reports whether it was still registered.
func (c *core[F]) remove(l *Listener[F]) bool {
	if l == nil || l.owner != c {
		return false
	}
	found, pruned := c.registry.remove(l)
	c.prunedStale(pruned)
	return found
}

func (c *core[F]) prunedStale(n int) {
	if n == 0 {
		return
	}
	c.pruned.Add(uint64(n))
	c.cfg.logger.Debug("pruned stale listeners",
		slog.String("dispatcher", c.cfg.name),
		slog.Int("count", n),
	)
}

// run performs one dispatch pass. invoke calls a listener with the pass
// arguments; it is supplied by the arity-specific dispatcher.
func (c *core[F]) run(ctx context.Context, invoke func(F) Status) {
	start := time.Now()

	buf := c.registry.acquire()
	listeners, pruned := c.registry.snapshot(buf)
	c.prunedStale(pruned)

	// The registry lock is released; listeners may re-enter freely from here.
	ctx, span := c.tel.start(ctx)
	p := pass{listeners: len(listeners), pruned: pruned}
	completed := false
	defer func() {
		// A listener panic without a PanicHandler unwinds through here.
		p.aborted = !completed
		c.registry.release(listeners)
		c.record(p)
		c.tel.finish(ctx, span, p, time.Since(start))
	}()

loop:
	for _, l := range listeners {
		p.invoked++
		status, recovered := c.call(l, invoke)
		if recovered {
			p.panics++
		}
		c.tel.invoked(ctx, status)

		switch status {
		case Filtered:
			p.filtered++
		case Consumed:
			p.consumed = true
			c.cfg.logger.Debug("event consumed",
				slog.String("dispatcher", c.cfg.name),
				slog.Int("priority", int(l.priority)),
			)
			break loop
		}
	}
	completed = true
}

// call invokes a single listener, recovering a panic when a PanicHandler is
// configured.
func (c *core[F]) call(l *Listener[F], invoke func(F) Status) (status Status, recovered bool) {
	if c.cfg.panicHandler != nil {
		defer func() {
			if r := recover(); r != nil {
				c.cfg.logger.Error("listener panicked",
					slog.String("dispatcher", c.cfg.name),
					slog.Int("priority", int(l.priority)),
					slog.Any("panic", r),
				)
				c.cfg.panicHandler(l.priority, r)
				status, recovered = Continue, true
			}
		}()
	}
	return invoke(l.fn), false
}

// record folds a finished pass into the cumulative counters.
func (c *core[F]) record(p pass) {
	c.dispatches.Add(1)
	c.invocations.Add(uint64(p.invoked))
	c.filtered.Add(uint64(p.filtered))
	c.panics.Add(uint64(p.panics))
	if p.consumed {
		c.consumed.Add(1)
	}
}

// stats returns a point-in-time copy of the counters.
func (c *core[F]) stats() Stats {
	return Stats{
		Entries:     c.registry.len(),
		Dispatches:  c.dispatches.Load(),
		Invocations: c.invocations.Load(),
		Consumed:    c.consumed.Load(),
		Filtered:    c.filtered.Load(),
		Pruned:      c.pruned.Load(),
		Panics:      c.panics.Load(),
	}
}
