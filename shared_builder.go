package tween

// SharedBuilder is a preserved builder used as a template. Every New call
// copies the template into a fresh, single-use Builder; the template itself
// can also be committed any number of times.
type SharedBuilder[T, O any, A Adapter[T, O]] struct {
	b Builder[T, O, A]
}

// New returns a single-use copy of the template.
func (s SharedBuilder[T, O, A]) New() Builder[T, O, A] {
	src := s.b.buffer("SharedBuilder.New")
	tmpl := *src
	i, rev := s.b.pool.acquire()
	dst := &s.b.pool.buffers[i]
	*dst = tmpl
	dst.preserve = false
	dst.revision = rev
	dst.inUse = true
	return Builder[T, O, A]{reg: s.b.reg, pool: s.b.pool, index: i, revision: rev}
}

// NewTo returns a copy of the template tweening to `to`.
func (s SharedBuilder[T, O, A]) NewTo(to T) Builder[T, O, A] {
	return s.New().To(to)
}

// NewFromTo returns a copy of the template tweening from -> to.
func (s SharedBuilder[T, O, A]) NewFromTo(from, to T) Builder[T, O, A] {
	return s.New().From(from).To(to)
}

// NewFromToDuration returns a copy of the template tweening from -> to over
// d seconds.
func (s SharedBuilder[T, O, A]) NewFromToDuration(from, to T, d float32) Builder[T, O, A] {
	return s.New().From(from).To(to).WithDuration(d)
}

// NewDuration returns a copy of the template lasting d seconds.
func (s SharedBuilder[T, O, A]) NewDuration(d float32) Builder[T, O, A] {
	return s.New().WithDuration(d)
}

// ToBuilder returns the preserved template builder for further
// configuration.
func (s SharedBuilder[T, O, A]) ToBuilder() Builder[T, O, A] {
	s.b.buffer("SharedBuilder.ToBuilder")
	return s.b
}

// Run commits the template without a value sink.
func (s SharedBuilder[T, O, A]) Run() Handle { return s.b.Run() }

// Bind commits the template and delivers every value to fn.
func (s SharedBuilder[T, O, A]) Bind(fn func(T)) Handle { return s.b.Bind(fn) }

// BindWithState commits the template with one state value.
func (s SharedBuilder[T, O, A]) BindWithState(state any, fn func(v T, state any)) Handle {
	return s.b.BindWithState(state, fn)
}

// BindWithState2 commits the template with two state values.
func (s SharedBuilder[T, O, A]) BindWithState2(s1, s2 any, fn func(v T, s1, s2 any)) Handle {
	return s.b.BindWithState2(s1, s2, fn)
}

// BindWithState3 commits the template with three state values.
func (s SharedBuilder[T, O, A]) BindWithState3(s1, s2, s3 any, fn func(v T, s1, s2, s3 any)) Handle {
	return s.b.BindWithState3(s1, s2, s3, fn)
}

// Dispose releases the template.
func (s SharedBuilder[T, O, A]) Dispose() { s.b.Dispose() }
