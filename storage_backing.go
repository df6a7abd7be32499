package silo

import "iter"

// backingStorage is the capability interface Orchestrator programs
// against, letting one Orchestrator[T,PT] type sit in front of any of the
// five storage variants. Go has no template-template parameter to let a
// single generic type take "which storage template" as a parameter the way
// the original's orchestrator<storage, T, N> does; this interface plus the
// five adapters below is the stand-in, chosen over duplicating
// Orchestrator five times because every operation it exposes (other than
// the partition-only ones, which assert partitioned() first) is identical
// across variants.
//
// Partition-only members are always present on the interface but only
// ever called after partitioned() is confirmed true; the non-partitioned
// adapters implement them as unreachable assertion failures, matching a
// debug build of the original rejecting the same call at compile time via
// enable_if.
type backingStorage[T any, PT Component[T]] interface {
	push(predicate bool, id uint64, args ...any) PT
	pushPtr(predicate bool, object PT) PT
	release(obj PT)
	Pop(obj PT, args ...any)
	Clear()
	Range() iter.Seq[PT]
	Size() int
	Empty() bool
	Full() bool

	partitioned() bool
	changePartition(predicate bool, obj PT) PT
	rangeUntilPartition() iter.Seq[PT]
	rangeFromPartition() iter.Seq[PT]
	sizeUntilPartition() int
	sizeFromPartition() int
	partitionOf(obj PT) bool
}

func notPartitioned() {
	assertf(false, "orchestrator: storage is not partitioned")
}

type staticBacking[T any, PT Component[T]] struct{ *Static[T, PT] }

func (s staticBacking[T, PT]) push(_ bool, id uint64, args ...any) PT { return s.Static.Push(id, args...) }
func (s staticBacking[T, PT]) pushPtr(_ bool, object PT) PT           { return s.Static.PushPtr(object) }
func (s staticBacking[T, PT]) partitioned() bool                     { return false }
func (s staticBacking[T, PT]) changePartition(bool, PT) PT            { notPartitioned(); return nil }
func (s staticBacking[T, PT]) rangeUntilPartition() iter.Seq[PT]      { notPartitioned(); return nil }
func (s staticBacking[T, PT]) rangeFromPartition() iter.Seq[PT]       { notPartitioned(); return nil }
func (s staticBacking[T, PT]) sizeUntilPartition() int                { notPartitioned(); return 0 }
func (s staticBacking[T, PT]) sizeFromPartition() int                 { notPartitioned(); return 0 }
func (s staticBacking[T, PT]) partitionOf(PT) bool                    { notPartitioned(); return false }

type growableBacking[T any, PT Component[T]] struct{ *Growable[T, PT] }

func (s growableBacking[T, PT]) push(_ bool, id uint64, args ...any) PT {
	return s.Growable.Push(id, args...)
}
func (s growableBacking[T, PT]) pushPtr(_ bool, object PT) PT      { return s.Growable.PushPtr(object) }
func (s growableBacking[T, PT]) partitioned() bool                { return false }
func (s growableBacking[T, PT]) changePartition(bool, PT) PT       { notPartitioned(); return nil }
func (s growableBacking[T, PT]) rangeUntilPartition() iter.Seq[PT] { notPartitioned(); return nil }
func (s growableBacking[T, PT]) rangeFromPartition() iter.Seq[PT]  { notPartitioned(); return nil }
func (s growableBacking[T, PT]) sizeUntilPartition() int           { notPartitioned(); return 0 }
func (s growableBacking[T, PT]) sizeFromPartition() int            { notPartitioned(); return 0 }
func (s growableBacking[T, PT]) partitionOf(PT) bool               { notPartitioned(); return false }

type staticGrowableBacking[T any, PT Component[T]] struct{ *StaticGrowable[T, PT] }

func (s staticGrowableBacking[T, PT]) push(_ bool, id uint64, args ...any) PT {
	return s.StaticGrowable.Push(id, args...)
}
func (s staticGrowableBacking[T, PT]) pushPtr(_ bool, object PT) PT {
	return s.StaticGrowable.PushPtr(object)
}
func (s staticGrowableBacking[T, PT]) partitioned() bool                { return false }
func (s staticGrowableBacking[T, PT]) changePartition(bool, PT) PT      { notPartitioned(); return nil }
func (s staticGrowableBacking[T, PT]) rangeUntilPartition() iter.Seq[PT] { notPartitioned(); return nil }
func (s staticGrowableBacking[T, PT]) rangeFromPartition() iter.Seq[PT]  { notPartitioned(); return nil }
func (s staticGrowableBacking[T, PT]) sizeUntilPartition() int          { notPartitioned(); return 0 }
func (s staticGrowableBacking[T, PT]) sizeFromPartition() int           { notPartitioned(); return 0 }
func (s staticGrowableBacking[T, PT]) partitionOf(PT) bool              { notPartitioned(); return false }

type partitionedStaticBacking[T any, PT Component[T]] struct{ *PartitionedStatic[T, PT] }

func (s partitionedStaticBacking[T, PT]) push(predicate bool, id uint64, args ...any) PT {
	return s.PartitionedStatic.Push(predicate, id, args...)
}
func (s partitionedStaticBacking[T, PT]) pushPtr(predicate bool, object PT) PT {
	return s.PartitionedStatic.PushPtr(predicate, object)
}
func (s partitionedStaticBacking[T, PT]) partitioned() bool { return true }
func (s partitionedStaticBacking[T, PT]) changePartition(predicate bool, obj PT) PT {
	return s.PartitionedStatic.ChangePartition(predicate, obj)
}
func (s partitionedStaticBacking[T, PT]) rangeUntilPartition() iter.Seq[PT] {
	return s.PartitionedStatic.RangeUntilPartition()
}
func (s partitionedStaticBacking[T, PT]) rangeFromPartition() iter.Seq[PT] {
	return s.PartitionedStatic.RangeFromPartition()
}
func (s partitionedStaticBacking[T, PT]) sizeUntilPartition() int { return s.PartitionedStatic.SizeUntilPartition() }
func (s partitionedStaticBacking[T, PT]) sizeFromPartition() int  { return s.PartitionedStatic.SizeFromPartition() }
func (s partitionedStaticBacking[T, PT]) partitionOf(obj PT) bool { return s.PartitionedStatic.Partition(obj) }

type partitionedGrowableBacking[T any, PT Component[T]] struct{ *PartitionedGrowable[T, PT] }

func (s partitionedGrowableBacking[T, PT]) push(predicate bool, id uint64, args ...any) PT {
	return s.PartitionedGrowable.Push(predicate, id, args...)
}
func (s partitionedGrowableBacking[T, PT]) pushPtr(predicate bool, object PT) PT {
	return s.PartitionedGrowable.PushPtr(predicate, object)
}
func (s partitionedGrowableBacking[T, PT]) partitioned() bool { return true }
func (s partitionedGrowableBacking[T, PT]) changePartition(predicate bool, obj PT) PT {
	return s.PartitionedGrowable.ChangePartition(predicate, obj)
}
func (s partitionedGrowableBacking[T, PT]) rangeUntilPartition() iter.Seq[PT] {
	return s.PartitionedGrowable.RangeUntilPartition()
}
func (s partitionedGrowableBacking[T, PT]) rangeFromPartition() iter.Seq[PT] {
	return s.PartitionedGrowable.RangeFromPartition()
}
func (s partitionedGrowableBacking[T, PT]) sizeUntilPartition() int {
	return s.PartitionedGrowable.SizeUntilPartition()
}
func (s partitionedGrowableBacking[T, PT]) sizeFromPartition() int {
	return s.PartitionedGrowable.SizeFromPartition()
}
func (s partitionedGrowableBacking[T, PT]) partitionOf(obj PT) bool {
	return s.PartitionedGrowable.Partition(obj)
}
