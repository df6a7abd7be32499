package silo

import "iter"

// Growable is a dynamically-sized, contiguous storage: it starts with a
// reserved capacity but grows past it like a plain slice. Relocation rule
// on removal is identical to Static's (swap-with-last then shrink).
//
// Grounded on original_source/src/storage/growable_storage.hpp. The C++
// std::vector backing there keeps outstanding tickets valid across growth
// because a reallocating push move-constructs every existing element into
// the new buffer, and pool_item's move constructor refreshes the ticket as
// a side effect. Go's append has no such hook — growing the backing array
// is a raw memmove — so growTo below explicitly refreshes every live
// ticket whenever append actually reallocates, which is the direct
// translation of that side effect rather than a new behavior.
type Growable[T any, PT Component[T]] struct {
	data []T
}

// NewGrowable allocates a growable storage reserving the given initial
// capacity.
func NewGrowable[T any, PT Component[T]](initialReserve int) *Growable[T, PT] {
	return &Growable[T, PT]{data: make([]T, 0, initialReserve)}
}

// growTo appends n zero-valued elements, re-pointing every outstanding
// ticket at its new address if the backing array was reallocated.
func (s *Growable[T, PT]) growTo(n int) {
	oldCap := cap(s.data)
	var zero T
	for i := 0; i < n; i++ {
		s.data = append(s.data, zero)
	}
	if cap(s.data) != oldCap {
		for i := range s.data[:len(s.data)-n] {
			PT(&s.data[i]).refreshTicket(&s.data[i])
		}
	}
}

func (s *Growable[T, PT]) Push(id uint64, args ...any) PT {
	s.growTo(1)
	obj := PT(&s.data[len(s.data)-1])
	obj.recreateTicket(&s.data[len(s.data)-1])
	obj.setID(id)
	callConstruct(obj, args...)
	return obj
}

func (s *Growable[T, PT]) PushPtr(object PT) PT {
	moved := *(*T)(object)
	s.growTo(1)
	s.data[len(s.data)-1] = moved
	obj := PT(&s.data[len(s.data)-1])
	obj.refreshTicket(&s.data[len(s.data)-1])
	return obj
}

func (s *Growable[T, PT]) Pop(obj PT, args ...any) {
	callDestroy(obj, args...)
	obj.invalidateTicket()
	s.release(obj)
}

func (s *Growable[T, PT]) release(obj PT) {
	assertf(len(s.data) > 0, "growable storage: pop from empty storage")
	ptr := (*T)(obj)
	last := &s.data[len(s.data)-1]
	if ptr != last {
		*ptr = *last
		movedObj := PT(ptr)
		movedObj.refreshTicket(ptr)
	}
	s.data = s.data[:len(s.data)-1]
}

func (s *Growable[T, PT]) Clear() {
	for i := range s.data {
		obj := PT(&s.data[i])
		callDestroy(obj)
		obj.invalidateTicket()
	}
	s.data = s.data[:0]
}

func (s *Growable[T, PT]) Range() iter.Seq[PT] {
	return func(yield func(PT) bool) {
		for i := range s.data {
			if !yield(PT(&s.data[i])) {
				return
			}
		}
	}
}

func (s *Growable[T, PT]) Size() int   { return len(s.data) }
func (s *Growable[T, PT]) Empty() bool { return len(s.data) == 0 }
func (s *Growable[T, PT]) Full() bool  { return false }
