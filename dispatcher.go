package cascade

import "context"

// Dispatcher0 dispatches events that carry no arguments.
type Dispatcher0 struct {
	core *core[Func0]
}

// New0 creates a Dispatcher0 with optional configuration.
func New0(opts ...Option) *Dispatcher0 {
	return &Dispatcher0{core: newCore[Func0](opts)}
}

// Register adds fn at priority 0.
// The returned Listener must be kept reachable for fn to keep firing.
func (d *Dispatcher0) Register(fn Func0) *Listener[Func0] {
	return d.core.register(fn, 0)
}

// RegisterAt adds fn at the given priority. Lower priorities run first;
// equal priorities run in registration order.
func (d *Dispatcher0) RegisterAt(fn Func0, priority int32) *Listener[Func0] {
	return d.core.register(fn, priority)
}

// Remove unregisters l. Reports whether it was still registered.
func (d *Dispatcher0) Remove(l *Listener[Func0]) bool {
	return d.core.remove(l)
}

// Dispatch invokes every live listener in priority order until one returns
// Consumed.
func (d *Dispatcher0) Dispatch() {
	d.DispatchContext(context.Background())
}

// DispatchContext is Dispatch with a context for telemetry.
// The context is not passed to listeners and does not stop the dispatch.
func (d *Dispatcher0) DispatchContext(ctx context.Context) {
	d.core.run(ctx, func(fn Func0) Status {
		if fn == nil {
			return Continue
		}
		return fn()
	})
}

// Stats returns runtime metrics for the dispatcher.
func (d *Dispatcher0) Stats() Stats {
	return d.core.stats()
}

// Dispatcher dispatches events that carry one argument.
type Dispatcher[A any] struct {
	core *core[Func[A]]
}

// New creates a Dispatcher with optional configuration.
func New[A any](opts ...Option) *Dispatcher[A] {
	return &Dispatcher[A]{core: newCore[Func[A]](opts)}
}

// Register adds fn at priority 0.
// The returned Listener must be kept reachable for fn to keep firing.
func (d *Dispatcher[A]) Register(fn Func[A]) *Listener[Func[A]] {
	return d.core.register(fn, 0)
}

// RegisterAt adds fn at the given priority. Lower priorities run first;
// equal priorities run in registration order.
func (d *Dispatcher[A]) RegisterAt(fn Func[A], priority int32) *Listener[Func[A]] {
	return d.core.register(fn, priority)
}

// Remove unregisters l. Reports whether it was still registered.
func (d *Dispatcher[A]) Remove(l *Listener[Func[A]]) bool {
	return d.core.remove(l)
}

// Dispatch invokes every live listener with a in priority order until one
// returns Consumed.
func (d *Dispatcher[A]) Dispatch(a A) {
	d.DispatchContext(context.Background(), a)
}

// DispatchContext is Dispatch with a context for telemetry.
// The context is not passed to listeners and does not stop the dispatch.
func (d *Dispatcher[A]) DispatchContext(ctx context.Context, a A) {
	d.core.run(ctx, func(fn Func[A]) Status {
		if fn == nil {
			return Continue
		}
		return fn(a)
	})
}

// Stats returns runtime metrics for the dispatcher.
func (d *Dispatcher[A]) Stats() Stats {
	return d.core.stats()
}

// Dispatcher2 dispatches events that carry two arguments.
type Dispatcher2[A, B any] struct {
	core *core[Func2[A, B]]
}

// New2 creates a Dispatcher2 with optional configuration.
func New2[A, B any](opts ...Option) *Dispatcher2[A, B] {
	return &Dispatcher2[A, B]{core: newCore[Func2[A, B]](opts)}
}

// Register adds fn at priority 0.
func (d *Dispatcher2[A, B]) Register(fn Func2[A, B]) *Listener[Func2[A, B]] {
	return d.core.register(fn, 0)
}

// RegisterAt adds fn at the given priority.
func (d *Dispatcher2[A, B]) RegisterAt(fn Func2[A, B], priority int32) *Listener[Func2[A, B]] {
	return d.core.register(fn, priority)
}

// Remove unregisters l. Reports whether it was still registered.
func (d *Dispatcher2[A, B]) Remove(l *Listener[Func2[A, B]]) bool {
	return d.core.remove(l)
}

// Dispatch invokes every live listener with a and b.
func (d *Dispatcher2[A, B]) Dispatch(a A, b B) {
	d.DispatchContext(context.Background(), a, b)
}

// DispatchContext is Dispatch with a context for telemetry.
func (d *Dispatcher2[A, B]) DispatchContext(ctx context.Context, a A, b B) {
	d.core.run(ctx, func(fn Func2[A, B]) Status {
		if fn == nil {
			return Continue
		}
		return fn(a, b)
	})
}

// Stats returns runtime metrics for the dispatcher.
func (d *Dispatcher2[A, B]) Stats() Stats {
	return d.core.stats()
}

// Dispatcher3 dispatches events that carry three arguments.
type Dispatcher3[A, B, C any] struct {
	core *core[Func3[A, B, C]]
}

// New3 creates a Dispatcher3 with optional configuration.
func New3[A, B, C any](opts ...Option) *Dispatcher3[A, B, C] {
	return &Dispatcher3[A, B, C]{core: newCore[Func3[A, B, C]](opts)}
}

// Register adds fn at priority 0.
func (d *Dispatcher3[A, B, C]) Register(fn Func3[A, B, C]) *Listener[Func3[A, B, C]] {
	return d.core.register(fn, 0)
}

// RegisterAt adds fn at the given priority.
func (d *Dispatcher3[A, B, C]) RegisterAt(fn Func3[A, B, C], priority int32) *Listener[Func3[A, B, C]] {
	return d.core.register(fn, priority)
}

// Remove unregisters l. Reports whether it was still registered.
func (d *Dispatcher3[A, B, C]) Remove(l *Listener[Func3[A, B, C]]) bool {
	return d.core.remove(l)
}

// Dispatch invokes every live listener with a, b and c.
func (d *Dispatcher3[A, B, C]) Dispatch(a A, b B, c C) {
	d.DispatchContext(context.Background(), a, b, c)
}

// DispatchContext is Dispatch with a context for telemetry.
func (d *Dispatcher3[A, B, C]) DispatchContext(ctx context.Context, a A, b B, c C) {
	d.core.run(ctx, func(fn Func3[A, B, C]) Status {
		if fn == nil {
			return Continue
		}
		return fn(a, b, c)
	})
}

// Stats returns runtime metrics for the dispatcher.
func (d *Dispatcher3[A, B, C]) Stats() Stats {
	return d.core.stats()
}
