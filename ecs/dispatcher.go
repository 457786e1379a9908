package ecs

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// queueEraser lets Dispatcher hold one FIFO queue per event kind without
// knowing each kind's payload type, the type-erasure shape
// wecs/signal/dispatcher.hpp gets for free from its type_info-keyed
// pool-of-signal_handler map.
type queueEraser interface {
	drain()
	len() int
}

// typedQueue pairs an event kind's Sigh with its pending FIFO queue for
// deferred delivery.
type typedQueue[E any] struct {
	sigh  Sigh[E]
	queue []E
}

func (q *typedQueue[E]) drain() {
	pending := q.queue
	q.queue = nil
	for _, e := range pending {
		q.sigh.Trigger(e)
	}
}

func (q *typedQueue[E]) len() int { return len(q.queue) }

// Dispatcher is the event bus layered on top of Sigh: Trigger delivers
// synchronously like a direct signal, Enqueue defers delivery until the
// next Update drains that event kind's queue (§4.9). Each event kind
// gets its own Sigh and queue, so reentrancy across different kinds is
// automatically safe — triggering kind B from inside a kind A listener
// never touches kind A's queue or listener list.
type Dispatcher struct {
	queues map[componentKind]queueEraser
	order  []componentKind
}

// NewDispatcher returns an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{queues: make(map[componentKind]queueEraser)}
}

func assureQueue[E any](d *Dispatcher) *typedQueue[E] {
	kind := kindOf[E]()
	q, ok := d.queues[kind]
	if !ok {
		tq := &typedQueue[E]{}
		d.queues[kind] = tq
		d.order = append(d.order, kind)
		return tq
	}
	return q.(*typedQueue[E])
}

// DispatcherSink returns a sink for event kind E, letting a host
// subscribe independently of whether that kind is ever triggered.
func DispatcherSink[E any](d *Dispatcher) Sink[E] {
	return NewSink(&assureQueue[E](d).sigh)
}

// Trigger delivers e synchronously to every connected listener of its
// kind, in reverse-subscription order.
func Trigger[E any](d *Dispatcher, e E) {
	id := uuid.New()
	logger.Debug("ecs: dispatcher trigger", zap.String("event_id", id.String()))
	assureQueue[E](d).sigh.Trigger(e)
}

// Enqueue defers e for delivery on the next Update call for its kind (or
// the next Update() call that drains every kind).
func Enqueue[E any](d *Dispatcher, e E) {
	id := uuid.New()
	logger.Debug("ecs: dispatcher enqueue", zap.String("event_id", id.String()))
	q := assureQueue[E](d)
	q.queue = append(q.queue, e)
}

// Update drains event kind E's pending queue, delivering each queued
// event synchronously in the order it was enqueued (FIFO, not the
// signal's own reverse-listener order — that reversal applies to
// listeners, not to queued events).
func Update[E any](d *Dispatcher) {
	assureQueue[E](d).drain()
}

// UpdateAll drains every event kind's pending queue, in reverse of the
// order each kind was first touched.
func (d *Dispatcher) UpdateAll() {
	for i := len(d.order) - 1; i >= 0; i-- {
		q := d.queues[d.order[i]]
		logger.Debug("ecs: dispatcher drain", zap.Int("pending", q.len()))
		q.drain()
	}
}

// ClearKind drops every pending event and connected listener for event
// kind E.
func ClearKind[E any](d *Dispatcher) {
	tq := assureQueue[E](d)
	tq.queue = nil
	tq.sigh.Clear()
}

// Clear drops every pending event and connected listener for every
// event kind.
func (d *Dispatcher) Clear() {
	d.queues = make(map[componentKind]queueEraser)
	d.order = nil
}
