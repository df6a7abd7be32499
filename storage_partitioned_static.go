package silo

import (
	"iter"
	"unsafe"
)

// PartitionedStatic is a fixed-capacity storage split by a caller-chosen
// boolean predicate into two contiguous regions: indices below the
// partition satisfy the predicate, indices at or above it (but below the
// live end) do not. Both regions stay packed on removal; the partition
// boundary moves down by one when the predicate-true region loses an
// element and stays put when the predicate-false region does.
//
// Grounded on original_source/src/storage/partitioned_static_storage.hpp.
// That source computes positions via raw pointer arithmetic against the
// backing std::array (obj - &_data[0]); indexOf below is the direct
// translation using unsafe.Pointer rather than a parallel bookkeeping
// scheme, since the storage's entire contract is defined in terms of those
// offsets.
type PartitionedStatic[T any, PT Component[T]] struct {
	data      []T
	current   int
	partition int
}

// NewPartitionedStatic allocates a partitioned storage with the given
// fixed capacity.
func NewPartitionedStatic[T any, PT Component[T]](capacity int) *PartitionedStatic[T, PT] {
	return &PartitionedStatic[T, PT]{data: make([]T, capacity)}
}

func (s *PartitionedStatic[T, PT]) indexOf(ptr *T) int {
	var zero T
	return int((uintptr(unsafe.Pointer(ptr)) - uintptr(unsafe.Pointer(&s.data[0]))) / unsafe.Sizeof(zero))
}

func (s *PartitionedStatic[T, PT]) refreshAt(i int) {
	PT(&s.data[i]).refreshTicket(&s.data[i])
}

// Push default-constructs a new element; predicate true places it below the
// partition, predicate false places it at the live end above the
// partition.
func (s *PartitionedStatic[T, PT]) Push(predicate bool, id uint64, args ...any) PT {
	assertf(s.current < len(s.data), "partitioned static storage: writing out of bounds")
	objIdx := s.current
	if predicate {
		if s.current != s.partition {
			s.data[s.current] = s.data[s.partition]
			s.refreshAt(s.current)
		}
		objIdx = s.partition
		s.partition++
	}
	s.current++

	var zero T
	s.data[objIdx] = zero
	obj := PT(&s.data[objIdx])
	obj.recreateTicket(&s.data[objIdx])
	obj.setID(id)
	callConstruct(obj, args...)
	return obj
}

// PushPtr moves an already-constructed component into the storage,
// observing the same predicate placement rule as Push.
func (s *PartitionedStatic[T, PT]) PushPtr(predicate bool, object PT) PT {
	assertf(s.current < len(s.data), "partitioned static storage: writing out of bounds")
	objIdx := s.current
	if predicate {
		if s.current != s.partition {
			s.data[s.current] = s.data[s.partition]
			s.refreshAt(s.current)
		}
		objIdx = s.partition
		s.partition++
	}
	s.current++

	src := (*T)(object)
	if &s.data[objIdx] != src {
		s.data[objIdx] = *src
	}
	obj := PT(&s.data[objIdx])
	obj.refreshTicket(&s.data[objIdx])
	return obj
}

func (s *PartitionedStatic[T, PT]) Pop(obj PT, args ...any) {
	callDestroy(obj, args...)
	obj.invalidateTicket()
	s.release(obj)
}

func (s *PartitionedStatic[T, PT]) release(obj PT) {
	idx := s.indexOf((*T)(obj))
	assertf(idx >= 0 && idx < s.current, "partitioned static storage: releasing an object from another storage")

	if idx < s.partition {
		candidate := s.partition - 1
		if idx != candidate {
			s.data[idx] = s.data[candidate]
			s.refreshAt(idx)
		}
		s.partition--

		candidate2 := s.current - 1
		if s.partition != candidate2 {
			s.data[s.partition] = s.data[candidate2]
			s.refreshAt(s.partition)
		}
		s.current--
		return
	}

	candidate := s.current - 1
	if idx != candidate {
		s.data[idx] = s.data[candidate]
		s.refreshAt(idx)
	}
	s.current--
}

// ChangePartition moves obj across the partition boundary to the side
// matching predicate, swapping it with the element next to the boundary on
// obj's current side, moving the boundary past that slot, and returning
// obj's new address.
//
// Both branches swap the pointees at the two indices and refresh both
// tickets: moving an element across the boundary always displaces whatever
// currently sits at the boundary, and that displaced element's ticket must
// follow it to its new slot exactly like obj's does.
func (s *PartitionedStatic[T, PT]) ChangePartition(predicate bool, obj PT) PT {
	idx := s.indexOf((*T)(obj))
	assertf(predicate != (idx < s.partition), "partitioned static storage: object already on requested side of partition")

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

func (s *PartitionedStatic[T, PT]) Clear() {
	for i := 0; i < s.current; i++ {
		obj := PT(&s.data[i])
		callDestroy(obj)
		obj.invalidateTicket()
	}
	s.current = 0
	s.partition = 0
}

func (s *PartitionedStatic[T, PT]) Range() iter.Seq[PT] {
	return func(yield func(PT) bool) {
		for i := 0; i < s.current; i++ {
			if !yield(PT(&s.data[i])) {
				return
			}
		}
	}
}

func (s *PartitionedStatic[T, PT]) RangeUntilPartition() iter.Seq[PT] {
	return func(yield func(PT) bool) {
		for i := 0; i < s.partition; i++ {
			if !yield(PT(&s.data[i])) {
				return
			}
		}
	}
}

func (s *PartitionedStatic[T, PT]) RangeFromPartition() iter.Seq[PT] {
	return func(yield func(PT) bool) {
		for i := s.partition; i < s.current; i++ {
			if !yield(PT(&s.data[i])) {
				return
			}
		}
	}
}

func (s *PartitionedStatic[T, PT]) Size() int             { return s.current }
func (s *PartitionedStatic[T, PT]) SizeUntilPartition() int { return s.partition }

// SizeFromPartition returns the live element count at or past the
// partition. Computed as current-partition (the original's pointer
// subtraction ran the other way round, underflowing to a large unsigned
// value; this corrects it to match what range_from_partition actually
// yields).
func (s *PartitionedStatic[T, PT]) SizeFromPartition() int { return s.current - s.partition }

func (s *PartitionedStatic[T, PT]) Empty() bool { return s.current == 0 }
func (s *PartitionedStatic[T, PT]) Full() bool  { return s.current == len(s.data) }

// Partition reports which side of the boundary obj currently sits on.
func (s *PartitionedStatic[T, PT]) Partition(obj PT) bool {
	return s.indexOf((*T)(obj)) < s.partition
}
