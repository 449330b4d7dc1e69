package cascade

// Listener represents an active registration on a dispatcher.
// The dispatcher does not keep the Listener alive: the registration lasts
// while the caller holds a reference to it, or until Close is called.
type Listener[F any] struct {
	fn       F
	priority int32
	owner    *core[F]
}

// Priority returns the priority the listener was registered at.
func (l *Listener[F]) Priority() int32 {
	return l.priority
}

// Close removes this listener from its dispatcher, preventing future calls.
// Reports whether the listener was still registered.
func (l *Listener[F]) Close() bool {
	if l == nil || l.owner == nil {
		return false
	}
	return l.owner.remove(l)
}
