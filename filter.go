package cascade

// Predicate0 decides whether a Func0 listener should run.
type Predicate0 func() bool

// Predicate decides whether a Func listener should run for a.
type Predicate[A any] func(A) bool

// Predicate2 decides whether a Func2 listener should run.
type Predicate2[A, B any] func(A, B) bool

// Predicate3 decides whether a Func3 listener should run.
type Predicate3[A, B, C any] func(A, B, C) bool

// Filter returns a listener that calls fn only when pred reports true for
// the dispatched argument, and returns Filtered otherwise. If pred or fn is
// nil, the listener always returns Filtered.
//
// The result is an ordinary Func and can be registered at any priority.
func Filter[A any](pred Predicate[A], fn Func[A]) Func[A] {
	return func(a A) Status {
		if pred == nil || fn == nil || !pred(a) {
			return Filtered
		}
		return fn(a)
	}
}

// Filter0 is Filter for argument-less listeners.
func Filter0(pred Predicate0, fn Func0) Func0 {
	return func() Status {
		if pred == nil || fn == nil || !pred() {
			return Filtered
		}
		return fn()
	}
}

// Filter2 is Filter for two-argument listeners.
func Filter2[A, B any](pred Predicate2[A, B], fn Func2[A, B]) Func2[A, B] {
	return func(a A, b B) Status {
		if pred == nil || fn == nil || !pred(a, b) {
			return Filtered
		}
		return fn(a, b)
	}
}

// Filter3 is Filter for three-argument listeners.
func Filter3[A, B, C any](pred Predicate3[A, B, C], fn Func3[A, B, C]) Func3[A, B, C] {
	return func(a A, b B, c C) Status {
		if pred == nil || fn == nil || !pred(a, b, c) {
			return Filtered
		}
		return fn(a, b, c)
	}
}
