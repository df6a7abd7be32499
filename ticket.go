package silo

import "sync/atomic"

// Ticket is a small reference-counted cell holding a pointer to one
// component instance. Storages hand them out on push and null them on
// element destruction; the pointer is rewritten in place whenever the
// pointee is relocated by a swap-compaction.
//
// Grounded on original_source/src/storage/ticket.hpp. The refcount there is
// an std::atomic<uint32_t> managed by boost::intrusive_ptr; in Go the same
// shape is an atomic.Int32 plus an atomic.Pointer[T] for the pointee, since
// sharing is explicit (callers hold *Ticket[T] directly, there is no
// implicit ownership to model) and the GC reclaims the cell once nothing
// references it, so Release never needs to free anything itself.
type Ticket[T any] struct {
	ptr  atomic.Pointer[T]
	refs atomic.Int32
}

// NewTicket creates a ticket pointing at ptr with a refcount of zero.
func NewTicket[T any](ptr *T) *Ticket[T] {
	t := &Ticket[T]{}
	t.ptr.Store(ptr)
	return t
}

// AddRef increments the reference count. Storages and orchestrators call
// this when they retain a strong reference; user code should call it too
// when caching a ticket across calls that might relocate or destroy it.
func (t *Ticket[T]) AddRef() {
	t.refs.Add(1)
}

// Release decrements the reference count. There is nothing to free: the Go
// garbage collector reclaims the ticket once the last reference drops.
func (t *Ticket[T]) Release() {
	t.refs.Add(-1)
}

// Valid reports whether the ticket still resolves to a live component.
func (t *Ticket[T]) Valid() bool {
	return t.ptr.Load() != nil
}

// Get returns the live pointer. It is undefined to call this on an invalid
// ticket; callers must guard with Valid() first, same as the original.
func (t *Ticket[T]) Get() *T {
	return t.ptr.Load()
}

func (t *Ticket[T]) refresh(ptr *T) {
	t.ptr.Store(ptr)
}

func (t *Ticket[T]) invalidate() {
	t.ptr.Store(nil)
}

// defaultTicket returns a permanently invalid sentinel ticket, used to back
// freshly zero-valued components that have never been pushed through a
// storage — same role as pool_item.hpp's _default_ticket. Go has no way to
// key a single package-level singleton by a type parameter, so this
// allocates a fresh sentinel on every call rather than sharing one across
// all T; each call on a component without a ticket costs one small
// *Ticket[T] allocation.
func defaultTicket[T any]() *Ticket[T] {
	return &Ticket[T]{}
}
