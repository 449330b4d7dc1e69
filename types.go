// Package cascade provides synchronous, priority-ordered event dispatch for Go.
//
// A dispatcher holds listeners sorted by a signed priority. Dispatch invokes
// them in ascending priority order on the calling goroutine, forwarding the
// same arguments to each one. Any listener may return Consumed to stop the
// remaining, lower-priority listeners from running.
//
// Registration is owned by the caller: Register returns a Listener handle and
// the dispatcher keeps only a weak reference to it. Keep the handle reachable
// for as long as the listener should fire; once it is dropped and collected,
// the entry is pruned on the next Dispatch or Remove.
//
// Quick example:
//
//	d := cascade.New[float64]()
//
//	positive := d.Register(func(v float64) cascade.Status {
//	    if v > 0 {
//	        return cascade.Consumed
//	    }
//	    return cascade.Continue
//	})
//	fallback := d.RegisterAt(func(v float64) cascade.Status {
//	    fmt.Println("not positive:", v)
//	    return cascade.Continue
//	}, 10)
//
//	d.Dispatch(9) // fallback does not run
//	d.Dispatch(0) // fallback runs
//
//	runtime.KeepAlive(positive)
//	runtime.KeepAlive(fallback)
//
// Filters compose a predicate with a listener and can be registered anywhere
// a plain listener is expected:
//
//	d.Register(cascade.Filter(isError, report))
//
// Go has no variadic generics, so dispatchers come in a fixed-arity family:
// Dispatcher0, Dispatcher, Dispatcher2 and Dispatcher3. Pass a struct for
// anything wider.
package cascade

// Status is a listener's directive to the dispatch loop.
type Status uint8

const (
	// Continue keeps dispatching to lower-priority listeners.
	Continue Status = iota

	// Consumed stops the dispatch; no lower-priority listener runs.
	Consumed

	// Filtered reports that the listener declined to run.
	// It has the same effect on the loop as Continue.
	Filtered
)

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case Continue:
		return "continue"
	case Consumed:
		return "consumed"
	case Filtered:
		return "filtered"
	default:
		return "unknown"
	}
}

// Func0 is a listener for a Dispatcher0.
type Func0 func() Status

// Func is a listener for a Dispatcher.
type Func[A any] func(A) Status

// Func2 is a listener for a Dispatcher2.
type Func2[A, B any] func(A, B) Status

// Func3 is a listener for a Dispatcher3.
type Func3[A, B, C any] func(A, B, C) Status

// Stats provides runtime metrics for a dispatcher.
// Counters are cumulative since the dispatcher was created.
type Stats struct {
	// Entries is the number of stored registrations, including stale
	// entries that have not been pruned yet.
	Entries int

	// Dispatches is the number of dispatch passes started, including
	// passes cut short by a listener panic.
	Dispatches uint64

	// Invocations is the number of listener calls across all passes.
	Invocations uint64

	// Consumed is the number of passes stopped early by a listener.
	Consumed uint64

	// Filtered is the number of listener calls that returned Filtered.
	Filtered uint64

	// Pruned is the number of stale entries erased from the registry.
	Pruned uint64

	// Panics is the number of listener panics recovered by a PanicHandler.
	Panics uint64
}
