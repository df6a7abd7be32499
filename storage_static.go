package silo

import "iter"

// Static is a fixed-capacity, contiguous storage. Capacity N is set once at
// construction; pushing past it is a programmer error (asserted in debug,
// undefined otherwise). Removal is swap-with-last then shrink.
//
// Grounded on original_source/src/storage/static_storage.hpp.
type Static[T any, PT Component[T]] struct {
	data []T
	size int
}

// NewStatic allocates a static storage with the given fixed capacity.
func NewStatic[T any, PT Component[T]](capacity int) *Static[T, PT] {
	return &Static[T, PT]{data: make([]T, capacity)}
}

// Push default-constructs a new slot, recreates its ticket, and invokes the
// component's Construct hook (if defined) with args.
func (s *Static[T, PT]) Push(id uint64, args ...any) PT {
	assertf(s.size < len(s.data), "static storage: writing out of bounds")
	var zero T
	s.data[s.size] = zero
	obj := PT(&s.data[s.size])
	obj.recreateTicket(&s.data[s.size])
	obj.setID(id)
	callConstruct(obj, args...)
	s.size++
	return obj
}

// PushPtr moves an already-constructed component into the storage (used by
// Orchestrator.Move to transfer a live element between storages).
func (s *Static[T, PT]) PushPtr(object PT) PT {
	assertf(s.size < len(s.data), "static storage: writing out of bounds")
	s.data[s.size] = *(*T)(object)
	obj := PT(&s.data[s.size])
	obj.refreshTicket(&s.data[s.size])
	s.size++
	return obj
}

// Pop invokes the component's Destroy hook (if defined), invalidates its
// ticket, and applies the continuous relocation rule: move the last live
// element into obj's slot (refreshing its ticket) unless obj was already
// last.
func (s *Static[T, PT]) Pop(obj PT, args ...any) {
	callDestroy(obj, args...)
	obj.invalidateTicket()
	s.release(obj)
}

func (s *Static[T, PT]) release(obj PT) {
	assertf(s.size > 0, "static storage: pop from empty storage")
	ptr := (*T)(obj)
	last := &s.data[s.size-1]
	if ptr != last {
		*ptr = *last
		movedObj := PT(ptr)
		movedObj.refreshTicket(ptr)
	}
	s.size--
}

// Clear destroys and invalidates every live element, resetting size to 0.
func (s *Static[T, PT]) Clear() {
	for i := 0; i < s.size; i++ {
		obj := PT(&s.data[i])
		callDestroy(obj)
		obj.invalidateTicket()
	}
	s.size = 0
}

// Range lazily iterates live pointers in storage-index order.
func (s *Static[T, PT]) Range() iter.Seq[PT] {
	return func(yield func(PT) bool) {
		for i := 0; i < s.size; i++ {
			if !yield(PT(&s.data[i])) {
				return
			}
		}
	}
}

func (s *Static[T, PT]) Size() int   { return s.size }
func (s *Static[T, PT]) Empty() bool { return s.size == 0 }
func (s *Static[T, PT]) Full() bool  { return s.size == len(s.data) }
