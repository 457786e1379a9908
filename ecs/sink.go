package ecs

// connectionState is the heap-allocated record every copy of a
// Connection points to, so releasing through any copy marks all of them
// done. The issuing Sink keeps no reference to it. It exists separately
// from Connection so Connection can stay a small value type, the way
// wecs/signal/sink.hpp's connection wraps a release callback by value.
type connectionState struct {
	release func()
	done    bool
}

// Connection is a release token for one connected delegate. Release is
// idempotent: calling it twice, or after the owning Sink/Sigh has been
// cleared, is a no-op.
type Connection struct {
	state *connectionState
}

// Release disconnects the delegate this connection was issued for.
func (c Connection) Release() {
	if c.state == nil || c.state.done {
		return
	}
	c.state.done = true
	c.state.release()
}

// Connected reports whether Release has not yet been called on this
// connection, letting a caller check before calling Release a second
// time without relying on idempotence alone. A disconnect made through
// the Sink or Sigh instead (DisconnectAll, DisconnectInstance, Clear) is
// not reflected here.
func (c Connection) Connected() bool {
	return c.state != nil && !c.state.done
}

// Sink is the subscription-side handle onto a Sigh, the counterpart of
// wecs/signal/sink.hpp's sink<Ret(Args...)>. A Registry hands one out
// per (component type, notification kind) pair so callers never touch
// the Sigh driving Trigger directly.
type Sink[A any] struct {
	sigh *Sigh[A]
}

// NewSink wraps sigh for external subscription.
func NewSink[A any](sigh *Sigh[A]) Sink[A] {
	return Sink[A]{sigh: sigh}
}

// Connect subscribes fn, returning a release Connection and whether the
// delegate was newly added (false if an equal delegate was already
// connected, the dedup semantics sink.hpp's test suite exercises).
func (s Sink[A]) Connect(fn func(A)) (Connection, bool) {
	return s.connect(NewDelegate(fn))
}

// ConnectBound subscribes a method-expression-style listener bound to
// instance, so it can later be torn down in bulk with DisconnectInstance
// (e.g. when instance itself is destroyed).
func ConnectBound[A, T any](s Sink[A], instance *T, fn func(*T, A)) (Connection, bool) {
	return s.connect(NewBoundDelegate(instance, fn))
}

func (s Sink[A]) connect(d Delegate[A]) (Connection, bool) {
	isNew := s.sigh.connect(d)
	state := &connectionState{release: func() { s.sigh.disconnectEqual(d) }}
	return Connection{state: state}, isNew
}

// DisconnectInstance tears down every delegate bound to instance.
func (s Sink[A]) DisconnectInstance(instance any) {
	s.sigh.disconnectInstance(instance)
}

// DisconnectAll tears down every connected delegate.
func (s Sink[A]) DisconnectAll() {
	s.sigh.Clear()
}

// Sink2 is the two-argument sibling of Sink.
type Sink2[A, B any] struct {
	sigh *Sigh2[A, B]
}

// NewSink2 wraps sigh for external subscription.
func NewSink2[A, B any](sigh *Sigh2[A, B]) Sink2[A, B] {
	return Sink2[A, B]{sigh: sigh}
}

// Connect subscribes fn.
func (s Sink2[A, B]) Connect(fn func(A, B)) (Connection, bool) {
	return s.connect(NewDelegate2(fn))
}

// ConnectDropFirst subscribes a listener that only wants the second
// argument (typically the component payload, dropping the entity).
func ConnectDropFirst[A, B any](s Sink2[A, B], fn func(B)) (Connection, bool) {
	return s.connect(NewDelegate2DropFirst[A](fn))
}

// ConnectBound2 subscribes a method-expression-style listener bound to
// instance.
func ConnectBound2[A, B, T any](s Sink2[A, B], instance *T, fn func(*T, A, B)) (Connection, bool) {
	return s.connect(NewBoundDelegate2(instance, fn))
}

func (s Sink2[A, B]) connect(d Delegate2[A, B]) (Connection, bool) {
	isNew := s.sigh.connect(d)
	state := &connectionState{release: func() { s.sigh.disconnectEqual(d) }}
	return Connection{state: state}, isNew
}

// DisconnectInstance tears down every delegate bound to instance.
func (s Sink2[A, B]) DisconnectInstance(instance any) {
	s.sigh.disconnectInstance(instance)
}

// DisconnectAll tears down every connected delegate.
func (s Sink2[A, B]) DisconnectAll() {
	s.sigh.Clear()
}
