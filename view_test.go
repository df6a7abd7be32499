package silo

import (
	"sync"
	"testing"
)

func newViewStore(n int) (*SchemeStore, *Scheme2[testVec, *testVec, testTag, *testTag]) {
	store := NewSchemeStore()
	RegisterGrowable[testVec, *testVec](store, n)
	RegisterGrowable[testTag, *testTag](store, n)
	scheme := SchemeOf2[testVec, *testVec, testTag, *testTag](store)
	for i := uint64(1); i <= uint64(n); i++ {
		scheme.Create(i, Args(float64(i), float64(i)), Args("tag"))
	}
	return store, scheme
}

func TestSchemeContinuousVisitsEveryEntity(t *testing.T) {
	_, scheme := newViewStore(5)
	pool := NewWorkerPool(2)
	defer pool.End()

	var mu sync.Mutex
	seen := map[uint64]bool{}

	scheme.Continuous(pool, func(a *testVec, b *testTag) {
		mu.Lock()
		seen[a.ID()] = true
		mu.Unlock()
	}).Wait()

	if len(seen) != 5 {
		t.Fatalf("Continuous visited %d entities, want 5", len(seen))
	}
}

func TestSchemeParallelVisitsEveryEntity(t *testing.T) {
	_, scheme := newViewStore(20)
	pool := NewWorkerPool(4)
	defer pool.End()

	var mu sync.Mutex
	seen := map[uint64]bool{}

	scheme.Parallel(pool, func(a *testVec, b *testTag) {
		mu.Lock()
		seen[a.ID()] = true
		mu.Unlock()
	}).Wait()

	if len(seen) != 20 {
		t.Fatalf("Parallel visited %d entities, want 20", len(seen))
	}
}

func TestSchemeContinuousByMatchesSearch(t *testing.T) {
	_, scheme := newViewStore(3)
	pool := NewWorkerPool(1)
	defer pool.End()

	var mu sync.Mutex
	pairs := 0

	scheme.ContinuousBy(pool, func(e Entity2[testVec, *testVec, testTag, *testTag]) {
		mu.Lock()
		if e.A != nil && e.B != nil {
			pairs++
		}
		mu.Unlock()
	}).Wait()

	if pairs != 3 {
		t.Fatalf("ContinuousBy paired %d entities, want 3", pairs)
	}
}

func TestSchemeViewUnlocksWritesAfterWait(t *testing.T) {
	Config.SetDebug(true)
	defer Config.SetDebug(false)

	_, scheme := newViewStore(2)
	pool := NewWorkerPool(1)
	defer pool.End()

	scheme.Continuous(pool, func(a *testVec, b *testTag) {}).Wait()

	// A write after the view has fully drained should not panic; the
	// OnWaitDone callback must have unlocked both orchestrators.
	scheme.Create(100, Args(0, 0), Args(""))
}

func TestSchemeEmptySchemeViewReturnsImmediately(t *testing.T) {
	store := NewSchemeStore()
	RegisterGrowable[testVec, *testVec](store, 1)
	RegisterGrowable[testTag, *testTag](store, 1)
	scheme := SchemeOf2[testVec, *testVec, testTag, *testTag](store)

	pool := NewWorkerPool(1)
	defer pool.End()

	called := false
	scheme.Continuous(pool, func(a *testVec, b *testTag) { called = true }).Wait()

	if called {
		t.Fatal("Continuous over an empty scheme should never invoke the callback")
	}
}

func TestSchemeViewPartitionRanges(t *testing.T) {
	store := NewSchemeStore()
	RegisterPartitionedGrowable[testVec, *testVec](store, 4)
	RegisterPartitionedGrowable[testTag, *testTag](store, 4)
	scheme := SchemeOf2[testVec, *testVec, testTag, *testTag](store)

	scheme.Create(1, ArgsPartitioned(true, 1.0, 1.0), ArgsPartitioned(true, "t"))
	scheme.Create(2, ArgsPartitioned(false, 2.0, 2.0), ArgsPartitioned(false, "f"))

	pool := NewWorkerPool(1)
	defer pool.End()

	var mu sync.Mutex
	untilIDs := map[uint64]bool{}
	scheme.ContinuousUntilPartition(pool, func(a *testVec, b *testTag) {
		mu.Lock()
		untilIDs[a.ID()] = true
		mu.Unlock()
	}).Wait()

	if len(untilIDs) != 1 || !untilIDs[1] {
		t.Fatalf("ContinuousUntilPartition should see only id 1, got %v", untilIDs)
	}

	fromIDs := map[uint64]bool{}
	scheme.ContinuousFromPartition(pool, func(a *testVec, b *testTag) {
		mu.Lock()
		fromIDs[a.ID()] = true
		mu.Unlock()
	}).Wait()

	if len(fromIDs) != 1 || !fromIDs[2] {
		t.Fatalf("ContinuousFromPartition should see only id 2, got %v", fromIDs)
	}
}
