package silo

import "iter"

// Orchestrator binds one storage variant to an id-to-ticket index,
// letting peers be looked up by entity id in addition to iterated
// directly. One Orchestrator instance owns exactly one component type's
// population for one scheme.
//
// Grounded on original_source/src/storage/storage.hpp's orchestrator
// template. Go's generics can't parameterize a type by "which storage
// template to use" the way the original does (no template-template
// parameters), so every storage variant is wrapped in a backingStorage
// adapter (storage_backing.go) and Orchestrator itself is written once
// against that interface instead of being re-derived per variant.
type Orchestrator[T any, PT Component[T]] struct {
	storage     backingStorage[T, PT]
	tickets     map[uint64]*Ticket[T]
	writeLocked bool
}

func newOrchestrator[T any, PT Component[T]](s backingStorage[T, PT]) *Orchestrator[T, PT] {
	return &Orchestrator[T, PT]{storage: s, tickets: make(map[uint64]*Ticket[T])}
}

// NewStaticOrchestrator backs an Orchestrator with a fixed-capacity
// contiguous storage.
func NewStaticOrchestrator[T any, PT Component[T]](capacity int) *Orchestrator[T, PT] {
	return newOrchestrator[T, PT](staticBacking[T, PT]{NewStatic[T, PT](capacity)})
}

// NewGrowableOrchestrator backs an Orchestrator with an unbounded
// contiguous storage.
func NewGrowableOrchestrator[T any, PT Component[T]](initialReserve int) *Orchestrator[T, PT] {
	return newOrchestrator[T, PT](growableBacking[T, PT]{NewGrowable[T, PT](initialReserve)})
}

// NewStaticGrowableOrchestrator backs an Orchestrator with a static head
// plus growable tail.
func NewStaticGrowableOrchestrator[T any, PT Component[T]](staticCapacity, tailReserve int) *Orchestrator[T, PT] {
	return newOrchestrator[T, PT](staticGrowableBacking[T, PT]{NewStaticGrowable[T, PT](staticCapacity, tailReserve)})
}

// NewPartitionedStaticOrchestrator backs an Orchestrator with a
// fixed-capacity, partitioned storage.
func NewPartitionedStaticOrchestrator[T any, PT Component[T]](capacity int) *Orchestrator[T, PT] {
	return newOrchestrator[T, PT](partitionedStaticBacking[T, PT]{NewPartitionedStatic[T, PT](capacity)})
}

// NewPartitionedGrowableOrchestrator backs an Orchestrator with an
// unbounded, partitioned storage.
func NewPartitionedGrowableOrchestrator[T any, PT Component[T]](initialReserve int) *Orchestrator[T, PT] {
	return newOrchestrator[T, PT](partitionedGrowableBacking[T, PT]{NewPartitionedGrowable[T, PT](initialReserve)})
}

// Get returns the live component for id, or nil if no such id is tracked.
func (o *Orchestrator[T, PT]) Get(id uint64) PT {
	tix, ok := o.tickets[id]
	if !ok {
		return nil
	}
	assertf(tix.Valid(), "orchestrator has an invalid ticket")
	return PT(tix.Get())
}

// TryGet is Get's checked counterpart, returning UnknownEntityError instead
// of nil for callers that want an explicit error rather than a nil check.
func (o *Orchestrator[T, PT]) TryGet(id uint64) (PT, error) {
	obj := o.Get(id)
	if obj == nil {
		return nil, UnknownEntityError{ID: id}
	}
	return obj, nil
}

// TryPush is Push's checked counterpart: instead of asserting, it reports
// WriteLockedError or StorageFullError so callers at a service boundary can
// handle a full pool without crashing a debug build.
func (o *Orchestrator[T, PT]) TryPush(id uint64, args ...any) (PT, error) {
	if o.writeLocked {
		return nil, WriteLockedError{}
	}
	if o.storage.Full() {
		return nil, StorageFullError{Capacity: o.storage.Size()}
	}
	return o.Push(id, args...), nil
}

// TryChangePartition is ChangePartition's checked counterpart.
func (o *Orchestrator[T, PT]) TryChangePartition(predicate bool, obj PT) (PT, error) {
	if !o.storage.partitioned() {
		return nil, NotPartitionedError{}
	}
	if o.storage.partitionOf(obj) == predicate {
		return nil, SamePartitionError{}
	}
	return o.ChangePartition(predicate, obj), nil
}

// Push constructs a new component under id on a non-partitioned storage.
func (o *Orchestrator[T, PT]) Push(id uint64, args ...any) PT {
	assertf(!o.writeLocked, "orchestrator: push while iterating")
	obj := o.storage.push(false, id, args...)
	o.tickets[id] = obj.ticketRef()
	Config.Logger().Trace("orchestrator: push", "id", id)
	return obj
}

// PushPartitioned constructs a new component under id on a partitioned
// storage, placing it on the side predicate selects.
func (o *Orchestrator[T, PT]) PushPartitioned(predicate bool, id uint64, args ...any) PT {
	assertf(!o.writeLocked, "orchestrator: push while iterating")
	assertf(o.storage.partitioned(), "orchestrator: PushPartitioned on a non-partitioned storage")
	obj := o.storage.push(predicate, id, args...)
	o.tickets[id] = obj.ticketRef()
	return obj
}

// Pop destroys and removes obj.
func (o *Orchestrator[T, PT]) Pop(obj PT) {
	assertf(!o.writeLocked, "orchestrator: pop while iterating")
	id := obj.ID()
	delete(o.tickets, id)
	o.storage.Pop(obj)
	Config.Logger().Trace("orchestrator: pop", "id", id)
}

// TryPop is Pop's checked counterpart, reporting EmptyStorageError instead of
// popping into an already-drained storage.
func (o *Orchestrator[T, PT]) TryPop(obj PT) error {
	if o.storage.Empty() {
		return EmptyStorageError{}
	}
	o.Pop(obj)
	return nil
}

// Clear destroys and removes every live component.
func (o *Orchestrator[T, PT]) Clear() {
	assertf(!o.writeLocked, "orchestrator: clear while iterating")
	clear(o.tickets)
	o.storage.Clear()
}

// Move relocates obj out of this orchestrator and into other, preserving
// its id and ticket identity, and returns its new address. args carries
// the destination partition predicate when moving into a partitioned
// storage from a non-partitioned one (the source has no partition side to
// infer it from); it is ignored otherwise.
//
// Grounded on storage.hpp's orchestrator::move. That source erases
// new_ptr->id() from the wrong ticket map; here the id is erased from this
// orchestrator's own map and inserted into other's, as two distinct map
// operations on two distinct maps.
func (o *Orchestrator[T, PT]) Move(other *Orchestrator[T, PT], obj PT, args ...any) PT {
	id := obj.ID()

	var newPtr PT
	if other.storage.partitioned() {
		var predicate bool
		if o.storage.partitioned() {
			predicate = o.storage.partitionOf(obj)
		} else {
			assertf(len(args) == 1, "orchestrator: move into partitioned storage needs a bool partition argument")
			predicate, _ = args[0].(bool)
		}
		newPtr = other.storage.pushPtr(predicate, obj)
	} else {
		newPtr = other.storage.pushPtr(false, obj)
	}
	o.storage.release(obj)

	delete(o.tickets, id)
	other.tickets[id] = newPtr.ticketRef()
	Config.Logger().Debug("orchestrator: move", "id", id)
	return newPtr
}

// TryMove is Move's checked counterpart: moving into a partitioned storage
// from a non-partitioned one needs exactly one bool partition argument, and
// TryMove reports IncompleteSchemeError instead of asserting when it is
// missing.
func (o *Orchestrator[T, PT]) TryMove(other *Orchestrator[T, PT], obj PT, args ...any) (PT, error) {
	if other.storage.partitioned() && !o.storage.partitioned() && len(args) != 1 {
		return nil, IncompleteSchemeError{}
	}
	return o.Move(other, obj, args...), nil
}

// ChangePartition moves obj across the partition boundary of a partitioned
// storage.
func (o *Orchestrator[T, PT]) ChangePartition(predicate bool, obj PT) PT {
	assertf(!o.writeLocked, "orchestrator: change partition while iterating")
	assertf(o.storage.partitioned(), "orchestrator: ChangePartition on a non-partitioned storage")
	return o.storage.changePartition(predicate, obj)
}

// Partitioned reports whether this orchestrator's storage maintains a
// partition.
func (o *Orchestrator[T, PT]) Partitioned() bool { return o.storage.partitioned() }

// Partition reports which side of the partition obj is on.
func (o *Orchestrator[T, PT]) Partition(obj PT) bool {
	assertf(o.storage.partitioned(), "orchestrator: Partition on a non-partitioned storage")
	return o.storage.partitionOf(obj)
}

// Range iterates every live component. In debug mode it write-locks the
// orchestrator until UnlockWrites is called.
func (o *Orchestrator[T, PT]) Range() iter.Seq[PT] {
	if Config.Debug() {
		o.writeLocked = true
	}
	return o.storage.Range()
}

// RangeUntilPartition iterates the predicate-true side of a partitioned
// storage.
func (o *Orchestrator[T, PT]) RangeUntilPartition() iter.Seq[PT] {
	assertf(o.storage.partitioned(), "orchestrator: RangeUntilPartition on a non-partitioned storage")
	if Config.Debug() {
		o.writeLocked = true
	}
	return o.storage.rangeUntilPartition()
}

// RangeFromPartition iterates the predicate-false side of a partitioned
// storage.
func (o *Orchestrator[T, PT]) RangeFromPartition() iter.Seq[PT] {
	assertf(o.storage.partitioned(), "orchestrator: RangeFromPartition on a non-partitioned storage")
	if Config.Debug() {
		o.writeLocked = true
	}
	return o.storage.rangeFromPartition()
}

// UnlockWrites clears the debug-mode write lock Range* sets, allowing
// mutation again once a view has finished iterating.
func (o *Orchestrator[T, PT]) UnlockWrites() {
	o.writeLocked = false
}

func (o *Orchestrator[T, PT]) Size() int   { return o.storage.Size() }
func (o *Orchestrator[T, PT]) Empty() bool { return o.storage.Empty() }
func (o *Orchestrator[T, PT]) Full() bool  { return o.storage.Full() }

// SizeUntilPartition returns the predicate-true side's live count.
func (o *Orchestrator[T, PT]) SizeUntilPartition() int {
	assertf(o.storage.partitioned(), "orchestrator: SizeUntilPartition on a non-partitioned storage")
	return o.storage.sizeUntilPartition()
}

// SizeFromPartition returns the predicate-false side's live count.
func (o *Orchestrator[T, PT]) SizeFromPartition() int {
	assertf(o.storage.partitioned(), "orchestrator: SizeFromPartition on a non-partitioned storage")
	return o.storage.sizeFromPartition()
}
