package silo

import "testing"

func TestPartitionedStaticPushPlacesOnRequestedSide(t *testing.T) {
	s := NewPartitionedStatic[testVec, *testVec](4)

	trueSide := s.Push(true, 1, 0, 0)
	falseSide := s.Push(false, 2, 0, 0)

	if !s.Partition(trueSide) {
		t.Fatal("predicate-true push should land before the partition")
	}
	if s.Partition(falseSide) {
		t.Fatal("predicate-false push should land at or after the partition")
	}
	if s.SizeUntilPartition() != 1 || s.SizeFromPartition() != 1 {
		t.Fatalf("SizeUntilPartition/SizeFromPartition = %d/%d, want 1/1",
			s.SizeUntilPartition(), s.SizeFromPartition())
	}
}

func TestPartitionedStaticChangePartitionSwapsPointees(t *testing.T) {
	s := NewPartitionedStatic[testVec, *testVec](4)
	_ = s.Push(false, 2, 22.0, 22.0)
	a := s.Push(false, 1, 11.0, 11.0)

	moved := s.ChangePartition(true, a)

	if moved.ID() != 1 || moved.X != 11 {
		t.Fatalf("ChangePartition should preserve the moved element's own data, got %+v", moved)
	}
	if !s.Partition(moved) {
		t.Fatal("moved element should now be on the predicate-true side")
	}

	// b was displaced by the swap and must keep its own identity and data,
	// just relocated — this is the pointer-vs-pointee swap bug's regression
	// check: swapping pointers instead of pointees would silently alias a
	// and b's data instead of exchanging it.
	found := false
	for obj := range s.Range() {
		if obj.ID() == 2 {
			found = true
			if obj.X != 22 {
				t.Fatalf("displaced element's data should be preserved, got X=%v", obj.X)
			}
		}
	}
	if !found {
		t.Fatal("displaced element should still be present after ChangePartition")
	}
}

func TestPartitionedStaticSizeFromPartitionDoesNotUnderflow(t *testing.T) {
	s := NewPartitionedStatic[testVec, *testVec](4)
	s.Push(true, 1, 0, 0)
	s.Push(true, 2, 0, 0)
	s.Push(false, 3, 0, 0)

	if got := s.SizeFromPartition(); got != 1 {
		t.Fatalf("SizeFromPartition() = %d, want 1", got)
	}
}

func TestPartitionedStaticReleaseMaintainsPartitionInvariant(t *testing.T) {
	s := NewPartitionedStatic[testVec, *testVec](4)
	a := s.Push(true, 1, 0, 0)
	s.Push(true, 2, 0, 0)
	c := s.Push(false, 3, 0, 0)

	s.Pop(a)

	if s.SizeUntilPartition() != 1 {
		t.Fatalf("SizeUntilPartition() = %d, want 1 after popping a predicate-true element", s.SizeUntilPartition())
	}
	if s.SizeFromPartition() != 1 {
		t.Fatalf("SizeFromPartition() = %d, want 1", s.SizeFromPartition())
	}
	if !c.ticketRef().Valid() {
		t.Fatal("popping from the true side should not disturb the false side's live element")
	}

	for obj := range s.RangeFromPartition() {
		if obj.ID() != 3 {
			t.Fatalf("unexpected id %d on the false side", obj.ID())
		}
	}
}

func TestPartitionedStaticFullAndEmpty(t *testing.T) {
	s := NewPartitionedStatic[testVec, *testVec](1)
	if !s.Empty() {
		t.Fatal("fresh storage should be empty")
	}
	obj := s.Push(true, 1, 0, 0)
	if !s.Full() {
		t.Fatal("storage at capacity should report Full")
	}
	s.Pop(obj)
	if !s.Empty() {
		t.Fatal("storage should be empty again after popping its only element")
	}
}
