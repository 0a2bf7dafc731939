// Package store provides a small observable state container with derived,
// equality-memoized views over it.
//
// The store is deliberately unsynchronized: all reads and writes are expected
// to happen on the host event loop, and subscribers are invoked synchronously
// on that same goroutine after each update, in subscription order.
package store

import "slices"

type subscriber[V any] struct {
	id int
	fn func(V)
}

type subscribers[V any] struct {
	list   []subscriber[V]
	nextID int
}

func (s *subscribers[V]) add(fn func(V)) func() {
	id := s.nextID
	s.nextID++
	s.list = append(s.list, subscriber[V]{id: id, fn: fn})
	return func() {
		s.list = slices.DeleteFunc(s.list, func(sub subscriber[V]) bool {
			return sub.id == id
		})
	}
}

func (s *subscribers[V]) notify(v V) {
	// Copy so a subscriber can unsubscribe itself without corrupting the walk.
	for _, sub := range slices.Clone(s.list) {
		sub.fn(v)
	}
}

// Store owns a single state value and notifies subscribers when it changes.
type Store[S any] struct {
	state S
	subs  subscribers[S]
}

// New creates a store holding the given initial state.
func New[S any](initial S) *Store[S] {
	return &Store[S]{state: initial}
}

// Get returns the current state.
func (s *Store[S]) Get() S {
	return s.state
}

// Set replaces the state and notifies all subscribers.
func (s *Store[S]) Set(next S) {
	s.state = next
	s.subs.notify(next)
}

// Update applies fn to the current state and stores the result.
func (s *Store[S]) Update(fn func(S) S) {
	s.Set(fn(s.state))
}

// Subscribe registers fn to be called after every state change. The returned
// function removes the subscription.
func (s *Store[S]) Subscribe(fn func(S)) func() {
	return s.subs.add(fn)
}

// Derived is a read-only projection over a store's state. Its subscribers are
// only notified when the projected value actually changes, as decided by the
// equality function.
type Derived[S, V any] struct {
	src     *Store[S]
	project func(S) V
	eq      func(V, V) bool
	last    V
	subs    subscribers[V]
}

// Derive creates a derived view over src. project computes the view from the
// state; eq reports whether two view values are equal.
func Derive[S, V any](src *Store[S], project func(S) V, eq func(V, V) bool) *Derived[S, V] {
	d := &Derived[S, V]{
		src:     src,
		project: project,
		eq:      eq,
		last:    project(src.Get()),
	}
	src.Subscribe(d.onChange)
	return d
}

// DeriveComparable is Derive for view types that support ==.
func DeriveComparable[S any, V comparable](src *Store[S], project func(S) V) *Derived[S, V] {
	return Derive(src, project, func(a, b V) bool { return a == b })
}

// Get returns the projected value for the current source state.
func (d *Derived[S, V]) Get() V {
	return d.project(d.src.Get())
}

// Subscribe registers fn to be called when the projected value changes. The
// returned function removes the subscription.
func (d *Derived[S, V]) Subscribe(fn func(V)) func() {
	return d.subs.add(fn)
}

func (d *Derived[S, V]) onChange(state S) {
	next := d.project(state)
	if d.eq(d.last, next) {
		return
	}
	d.last = next
	d.subs.notify(next)
}
