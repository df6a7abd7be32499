package silo

import "testing"

func TestTaskManagerScheduleAndExecute(t *testing.T) {
	pool := NewWorkerPool(1)
	defer pool.End()
	tm := NewTaskManager(pool)

	ran := false
	tm.Schedule(0, func() { ran = true })
	if ran {
		t.Fatal("Schedule should defer, not run immediately")
	}

	tm.Execute()
	if !ran {
		t.Fatal("Execute should run every scheduled task")
	}
}

func TestTaskManagerExecuteOnlyRunsPendingBatchOnce(t *testing.T) {
	pool := NewWorkerPool(1)
	defer pool.End()
	tm := NewTaskManager(pool)

	runs := 0
	tm.Schedule(0, func() { runs++ })
	tm.Execute()
	tm.Execute() // nothing new scheduled; should be a no-op

	if runs != 1 {
		t.Fatalf("runs = %d, want 1", runs)
	}
}

func TestScheduleIfSkipsInvalidatedTickets(t *testing.T) {
	pool := NewWorkerPool(1)
	defer pool.End()
	tm := NewTaskManager(pool)

	var v testVec
	v.recreateTicket(&v)
	tix := v.ticketRef()

	called := false
	ScheduleIf(tm, 0, []*Ticket[testVec]{tix}, func(objs []*testVec) { called = true })

	v.invalidateTicket()
	tm.Execute()

	if called {
		t.Fatal("ScheduleIf should not invoke fn when a ticket was invalidated before Execute")
	}
}

func TestScheduleIfRunsWithLiveTickets(t *testing.T) {
	pool := NewWorkerPool(1)
	defer pool.End()
	tm := NewTaskManager(pool)

	var v testVec
	v.setID(5)
	v.recreateTicket(&v)
	tix := v.ticketRef()

	var got []*testVec
	ScheduleIf(tm, 0, []*Ticket[testVec]{tix}, func(objs []*testVec) { got = objs })
	tm.Execute()

	if len(got) != 1 || got[0].ID() != 5 {
		t.Fatalf("ScheduleIf should pass the resolved objects through, got %v", got)
	}
}
