package silo

import "testing"

func TestPartitionedGrowablePushBeyondReserve(t *testing.T) {
	s := NewPartitionedGrowable[testVec, *testVec](2)

	var trueTickets, falseTickets []*Ticket[testVec]
	for i := uint64(1); i <= 20; i++ {
		if i%2 == 0 {
			obj := s.Push(true, i, 0, 0)
			trueTickets = append(trueTickets, obj.ticketRef())
		} else {
			obj := s.Push(false, i, 0, 0)
			falseTickets = append(falseTickets, obj.ticketRef())
		}
	}

	if s.Size() != 20 {
		t.Fatalf("Size() = %d, want 20", s.Size())
	}
	if s.SizeUntilPartition() != len(trueTickets) {
		t.Fatalf("SizeUntilPartition() = %d, want %d", s.SizeUntilPartition(), len(trueTickets))
	}

	for i, tix := range trueTickets {
		if !tix.Valid() {
			t.Fatalf("true-side ticket %d should remain valid across growth", i)
		}
	}
	for i, tix := range falseTickets {
		if !tix.Valid() {
			t.Fatalf("false-side ticket %d should remain valid across growth", i)
		}
	}
}

func TestPartitionedGrowableChangePartitionSwapsPointees(t *testing.T) {
	s := NewPartitionedGrowable[testVec, *testVec](4)
	_ = s.Push(false, 2, 22.0, 22.0)
	a := s.Push(false, 1, 11.0, 11.0)

	moved := s.ChangePartition(true, a)
	if moved.X != 11 || moved.ID() != 1 {
		t.Fatalf("ChangePartition should preserve the moved element's data, got %+v", moved)
	}

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
		t.Fatal("displaced element should still be present")
	}
}

func TestPartitionedGrowableSizeFromPartition(t *testing.T) {
	s := NewPartitionedGrowable[testVec, *testVec](4)
	s.Push(true, 1, 0, 0)
	s.Push(false, 2, 0, 0)
	s.Push(false, 3, 0, 0)

	if got := s.SizeFromPartition(); got != 2 {
		t.Fatalf("SizeFromPartition() = %d, want 2", got)
	}
}

func TestPartitionedGrowableReleaseFromTrueSideShrinksCorrectly(t *testing.T) {
	s := NewPartitionedGrowable[testVec, *testVec](4)
	a := s.Push(true, 1, 0, 0)
	s.Push(true, 2, 0, 0)
	c := s.Push(false, 3, 0, 0)

	s.Pop(a)

	if s.SizeUntilPartition() != 1 {
		t.Fatalf("SizeUntilPartition() = %d, want 1", s.SizeUntilPartition())
	}
	if !c.ticketRef().Valid() {
		t.Fatal("popping from the true side must not disturb the false side")
	}
}
