package cascade

// defaultSnapshotSize is the initial capacity of a fresh snapshot buffer.
const defaultSnapshotSize = 8

// acquire returns an empty snapshot buffer.
// Buffers are pooled per registry to avoid an allocation on every dispatch.
func (r *registry[F]) acquire() []*Listener[F] {
	if p, ok := r.buffers.Get().(*[]*Listener[F]); ok {
		return (*p)[:0]
	}
	return make([]*Listener[F], 0, defaultSnapshotSize)
}

// release clears buf and returns it to the pool.
// Pooled buffers must not hold listeners, or they would never be collected.
func (r *registry[F]) release(buf []*Listener[F]) {
	buf = buf[:cap(buf)]
	clear(buf)
	buf = buf[:0]
	r.buffers.Put(&buf)
}
