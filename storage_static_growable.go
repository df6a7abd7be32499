package silo

import (
	"iter"
	"unsafe"
)

// StaticGrowable keeps its first N slots static (fixed address, never
// reallocated) and spills overflow into a growable tail. Removal preserves
// the static/tail separation: a tail removal compacts within the tail only,
// a static removal compacts within the static region only — neither region
// ever moves an element into the other.
//
// Grounded on original_source's static/growable storage variants combined
// per the distilled spec's static_growable_storage description (the
// original C++ library does not itself define this fifth variant as a
// single file; it is the natural composition of static_storage.hpp's fixed
// region and growable_storage.hpp's tail, which is how this port builds
// it).
type StaticGrowable[T any, PT Component[T]] struct {
	static     []T
	staticSize int
	tail       []T
}

// NewStaticGrowable allocates a storage whose first staticCapacity slots
// never relocate due to growth; overflow spills into a growable tail
// reserving tailReserve initial slots.
func NewStaticGrowable[T any, PT Component[T]](staticCapacity, tailReserve int) *StaticGrowable[T, PT] {
	return &StaticGrowable[T, PT]{
		static: make([]T, staticCapacity),
		tail:   make([]T, 0, tailReserve),
	}
}

func (s *StaticGrowable[T, PT]) inStatic(ptr *T) bool {
	if len(s.static) == 0 {
		return false
	}
	start := uintptr(unsafe.Pointer(&s.static[0]))
	end := start + uintptr(len(s.static))*unsafe.Sizeof(s.static[0])
	addr := uintptr(unsafe.Pointer(ptr))
	return addr >= start && addr < end
}

func (s *StaticGrowable[T, PT]) growTail(n int) {
	oldCap := cap(s.tail)
	var zero T
	for i := 0; i < n; i++ {
		s.tail = append(s.tail, zero)
	}
	if cap(s.tail) != oldCap {
		for i := range s.tail[:len(s.tail)-n] {
			PT(&s.tail[i]).refreshTicket(&s.tail[i])
		}
	}
}

func (s *StaticGrowable[T, PT]) Push(id uint64, args ...any) PT {
	var obj PT
	if s.staticSize < len(s.static) {
		obj = PT(&s.static[s.staticSize])
		*(*T)(obj) = *new(T)
		obj.recreateTicket(&s.static[s.staticSize])
		s.staticSize++
	} else {
		s.growTail(1)
		obj = PT(&s.tail[len(s.tail)-1])
		obj.recreateTicket(&s.tail[len(s.tail)-1])
	}
	obj.setID(id)
	callConstruct(obj, args...)
	return obj
}

func (s *StaticGrowable[T, PT]) PushPtr(object PT) PT {
	moved := *(*T)(object)
	var obj PT
	if s.staticSize < len(s.static) {
		obj = PT(&s.static[s.staticSize])
		*(*T)(obj) = moved
		obj.refreshTicket(&s.static[s.staticSize])
		s.staticSize++
	} else {
		s.growTail(1)
		s.tail[len(s.tail)-1] = moved
		obj = PT(&s.tail[len(s.tail)-1])
		obj.refreshTicket(&s.tail[len(s.tail)-1])
	}
	return obj
}

func (s *StaticGrowable[T, PT]) Pop(obj PT, args ...any) {
	callDestroy(obj, args...)
	obj.invalidateTicket()
	s.release(obj)
}

func (s *StaticGrowable[T, PT]) release(obj PT) {
	ptr := (*T)(obj)
	if s.inStatic(ptr) {
		assertf(s.staticSize > 0, "static_growable storage: pop from empty static region")
		last := &s.static[s.staticSize-1]
		if ptr != last {
			*ptr = *last
			PT(ptr).refreshTicket(ptr)
		}
		s.staticSize--
		return
	}
	assertf(len(s.tail) > 0, "static_growable storage: pop from empty tail region")
	last := &s.tail[len(s.tail)-1]
	if ptr != last {
		*ptr = *last
		PT(ptr).refreshTicket(ptr)
	}
	s.tail = s.tail[:len(s.tail)-1]
}

func (s *StaticGrowable[T, PT]) Clear() {
	for i := 0; i < s.staticSize; i++ {
		obj := PT(&s.static[i])
		callDestroy(obj)
		obj.invalidateTicket()
	}
	for i := range s.tail {
		obj := PT(&s.tail[i])
		callDestroy(obj)
		obj.invalidateTicket()
	}
	s.staticSize = 0
	s.tail = s.tail[:0]
}

func (s *StaticGrowable[T, PT]) Range() iter.Seq[PT] {
	return func(yield func(PT) bool) {
		for i := 0; i < s.staticSize; i++ {
			if !yield(PT(&s.static[i])) {
				return
			}
		}
		for i := range s.tail {
			if !yield(PT(&s.tail[i])) {
				return
			}
		}
	}
}

func (s *StaticGrowable[T, PT]) Size() int   { return s.staticSize + len(s.tail) }
func (s *StaticGrowable[T, PT]) Empty() bool { return s.Size() == 0 }
func (s *StaticGrowable[T, PT]) Full() bool  { return false }
