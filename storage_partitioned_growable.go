package silo

import (
	"iter"
	"unsafe"
)

// PartitionedGrowable combines PartitionedStatic's two-region partition
// invariant with Growable's unbounded tail: the live region (indices
// [0,len(data))) is split at partition the same way, but len(data) grows
// past any initial reserve instead of asserting a fixed bound.
//
// Grounded on original_source/src/storage/partitioned_static_storage.hpp
// for the partition mechanics and growable_storage.hpp for the growth
// discipline; growTo below carries the same reallocation-refresh fix
// documented on Growable.
type PartitionedGrowable[T any, PT Component[T]] struct {
	data      []T
	partition int
}

// NewPartitionedGrowable allocates a partitioned growable storage reserving
// the given initial capacity.
func NewPartitionedGrowable[T any, PT Component[T]](initialReserve int) *PartitionedGrowable[T, PT] {
	return &PartitionedGrowable[T, PT]{data: make([]T, 0, initialReserve)}
}

func (s *PartitionedGrowable[T, PT]) indexOf(ptr *T) int {
	var zero T
	return int((uintptr(unsafe.Pointer(ptr)) - uintptr(unsafe.Pointer(&s.data[0]))) / unsafe.Sizeof(zero))
}

func (s *PartitionedGrowable[T, PT]) refreshAt(i int) {
	PT(&s.data[i]).refreshTicket(&s.data[i])
}

func (s *PartitionedGrowable[T, PT]) growTo(n int) {
	oldCap := cap(s.data)
	var zero T
	for i := 0; i < n; i++ {
		s.data = append(s.data, zero)
	}
	if cap(s.data) != oldCap {
		for i := range s.data[:len(s.data)-n] {
			s.refreshAt(i)
		}
	}
}

func (s *PartitionedGrowable[T, PT]) Push(predicate bool, id uint64, args ...any) PT {
	appendIdx := len(s.data)
	s.growTo(1)

	objIdx := appendIdx
	if predicate {
		if appendIdx != s.partition {
			s.data[appendIdx] = s.data[s.partition]
			s.refreshAt(appendIdx)
		}
		objIdx = s.partition
		s.partition++
	}

	var zero T
	s.data[objIdx] = zero
	obj := PT(&s.data[objIdx])
	obj.recreateTicket(&s.data[objIdx])
	obj.setID(id)
	callConstruct(obj, args...)
	return obj
}

func (s *PartitionedGrowable[T, PT]) PushPtr(predicate bool, object PT) PT {
	appendIdx := len(s.data)
	s.growTo(1)

	objIdx := appendIdx
	if predicate {
		if appendIdx != s.partition {
			s.data[appendIdx] = s.data[s.partition]
			s.refreshAt(appendIdx)
		}
		objIdx = s.partition
		s.partition++
	}

	src := (*T)(object)
	if &s.data[objIdx] != src {
		s.data[objIdx] = *src
	}
	obj := PT(&s.data[objIdx])
	obj.refreshTicket(&s.data[objIdx])
	return obj
}

func (s *PartitionedGrowable[T, PT]) Pop(obj PT, args ...any) {
	callDestroy(obj, args...)
	obj.invalidateTicket()
	s.release(obj)
}

func (s *PartitionedGrowable[T, PT]) release(obj PT) {
	idx := s.indexOf((*T)(obj))
	assertf(idx >= 0 && idx < len(s.data), "partitioned growable storage: releasing an object from another storage")

	if idx < s.partition {
		candidate := s.partition - 1
		if idx != candidate {
			s.data[idx] = s.data[candidate]
			s.refreshAt(idx)
		}
		s.partition--

		last := len(s.data) - 1
		if s.partition != last {
			s.data[s.partition] = s.data[last]
			s.refreshAt(s.partition)
		}
		s.data = s.data[:len(s.data)-1]
		return
	}

	last := len(s.data) - 1
	if idx != last {
		s.data[idx] = s.data[last]
		s.refreshAt(idx)
	}
	s.data = s.data[:len(s.data)-1]
}

// ChangePartition mirrors PartitionedStatic.ChangePartition: it swaps the
// pointees (never just the pointers) on both sides of the move and
// refreshes both tickets.
func (s *PartitionedGrowable[T, PT]) ChangePartition(predicate bool, obj PT) PT {
	idx := s.indexOf((*T)(obj))
	assertf(predicate != (idx < s.partition), "partitioned growable storage: object already on requested side of partition")

	var destIdx int
	if predicate {
		destIdx = s.partition
		if idx != destIdx {
			s.data[idx], s.data[destIdx] = s.data[destIdx], s.data[idx]
			s.refreshAt(idx)
			s.refreshAt(destIdx)
		}
		s.partition++
	} else {
		destIdx = s.partition - 1
		if idx != destIdx {
			s.data[idx], s.data[destIdx] = s.data[destIdx], s.data[idx]
			s.refreshAt(idx)
			s.refreshAt(destIdx)
		}
		s.partition--
	}

	return PT(&s.data[destIdx])
}

func (s *PartitionedGrowable[T, PT]) Clear() {
	for i := range s.data {
		obj := PT(&s.data[i])
		callDestroy(obj)
		obj.invalidateTicket()
	}
	s.data = s.data[:0]
	s.partition = 0
}

func (s *PartitionedGrowable[T, PT]) Range() iter.Seq[PT] {
	return func(yield func(PT) bool) {
		for i := range s.data {
			if !yield(PT(&s.data[i])) {
				return
			}
		}
	}
}

func (s *PartitionedGrowable[T, PT]) RangeUntilPartition() iter.Seq[PT] {
	return func(yield func(PT) bool) {
		for i := 0; i < s.partition; i++ {
			if !yield(PT(&s.data[i])) {
				return
			}
		}
	}
}

func (s *PartitionedGrowable[T, PT]) RangeFromPartition() iter.Seq[PT] {
	return func(yield func(PT) bool) {
		for i := s.partition; i < len(s.data); i++ {
			if !yield(PT(&s.data[i])) {
				return
			}
		}
	}
}

func (s *PartitionedGrowable[T, PT]) Size() int             { return len(s.data) }
func (s *PartitionedGrowable[T, PT]) SizeUntilPartition() int { return s.partition }
func (s *PartitionedGrowable[T, PT]) SizeFromPartition() int { return len(s.data) - s.partition }
func (s *PartitionedGrowable[T, PT]) Empty() bool            { return len(s.data) == 0 }
func (s *PartitionedGrowable[T, PT]) Full() bool             { return false }

func (s *PartitionedGrowable[T, PT]) Partition(obj PT) bool {
	return s.indexOf((*T)(obj)) < s.partition
}
