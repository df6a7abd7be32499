package silo

import "fmt"

// StorageFullError is returned when pushing into a fixed-capacity storage
// that has no room left.
type StorageFullError struct {
	Capacity int
}

func (e StorageFullError) Error() string {
	return fmt.Sprintf("storage is at capacity (%d)", e.Capacity)
}

// EmptyStorageError is returned when popping from a storage with no live
// elements.
type EmptyStorageError struct{}

func (e EmptyStorageError) Error() string {
	return "storage is empty"
}

// UnknownEntityError is returned by Orchestrator.TryGet when asked to look
// up an id it has no handle for.
type UnknownEntityError struct {
	ID uint64
}

func (e UnknownEntityError) Error() string {
	return fmt.Sprintf("no entity found for id %d", e.ID)
}

// SamePartitionError is returned by Orchestrator.TryChangePartition when the
// requested side already matches the element's current side.
type SamePartitionError struct{}

func (e SamePartitionError) Error() string {
	return "element already belongs to the requested partition"
}

// WriteLockedError is returned when a mutating call is attempted on an
// orchestrator whose range is currently being iterated.
type WriteLockedError struct{}

func (e WriteLockedError) Error() string {
	return "orchestrator is write-locked by an in-flight view"
}

// IncompleteSchemeError is returned by Orchestrator.TryMove when a move from
// a non-partitioned storage into a partitioned one is not given exactly one
// partition argument.
type IncompleteSchemeError struct{}

func (e IncompleteSchemeError) Error() string {
	return "incomplete scheme allocation: one argument pack is required per component"
}

// NotPartitionedError is returned when a partition-only operation is invoked
// against a storage or orchestrator backed by a continuous (non-partitioned)
// layout.
type NotPartitionedError struct{}

func (e NotPartitionedError) Error() string {
	return "storage does not support partition operations"
}
