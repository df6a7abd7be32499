package silo

import "testing"

func TestGrowablePushBeyondReserve(t *testing.T) {
	s := NewGrowable[testVec, *testVec](2)

	var tickets []*Ticket[testVec]
	for i := uint64(1); i <= 10; i++ {
		obj := s.Push(i, float64(i), float64(i))
		tickets = append(tickets, obj.ticketRef())
	}

	if s.Size() != 10 {
		t.Fatalf("Size() = %d, want 10", s.Size())
	}

	// Every previously-issued ticket must still resolve correctly after
	// growth past the initial reserve forced at least one reallocation.
	for i, tix := range tickets {
		if !tix.Valid() {
			t.Fatalf("ticket %d should still be valid after growth", i)
		}
		if tix.Get().ID() != uint64(i+1) {
			t.Fatalf("ticket %d resolves to id %d, want %d", i, tix.Get().ID(), i+1)
		}
	}
}

func TestGrowableNeverFull(t *testing.T) {
	s := NewGrowable[testVec, *testVec](0)
	if s.Full() {
		t.Fatal("Growable should never report Full")
	}
	s.Push(1, 0, 0)
	if s.Full() {
		t.Fatal("Growable should never report Full, even after pushing")
	}
}

func TestGrowableSwapCompaction(t *testing.T) {
	s := NewGrowable[testVec, *testVec](4)
	a := s.Push(1, 0, 0)
	b := s.Push(2, 0, 0)
	s.Push(3, 0, 0)

	aTix := a.ticketRef()
	s.Pop(b)

	if s.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", s.Size())
	}
	if !aTix.Valid() || aTix.Get().ID() != 1 {
		t.Fatal("untouched element should survive the removal unchanged")
	}
}
