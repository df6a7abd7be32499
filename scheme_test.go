package silo

import "testing"

func newMoverStore() (*SchemeStore, *Scheme2[testVec, *testVec, testTag, *testTag]) {
	store := NewSchemeStore()
	RegisterGrowable[testVec, *testVec](store, 8)
	RegisterGrowable[testTag, *testTag](store, 8)
	return store, SchemeOf2[testVec, *testVec, testTag, *testTag](store)
}

func TestSchemeCreateBuildsSharedComponentsMap(t *testing.T) {
	_, scheme := newMoverStore()

	e := scheme.Create(1, Args(1.0, 2.0), Args("tag"))
	if e.A.X != 1.0 || e.A.Y != 2.0 {
		t.Fatalf("unexpected A component: %+v", e.A)
	}
	if e.B.Label != "tag" {
		t.Fatalf("unexpected B component: %+v", e.B)
	}

	if e.A.Components() != e.B.Components() {
		t.Fatal("peers created together should share one ComponentsMap")
	}
	if ComponentsMapGet[testTag](e.A.Components()) != e.B {
		t.Fatal("A's shared map should resolve to B")
	}
}

func TestSchemeDestroyRemovesAllPeers(t *testing.T) {
	_, scheme := newMoverStore()
	e := scheme.Create(1, Args(0, 0), Args(""))

	scheme.Destroy(e)

	if scheme.Search(1).A != nil || scheme.Search(1).B != nil {
		t.Fatal("Destroy should remove every peer from its orchestrator")
	}
}

func TestSchemeSearchReconstructsEntity(t *testing.T) {
	_, scheme := newMoverStore()
	scheme.Create(1, Args(5.0, 6.0), Args("first"))

	found := scheme.Search(1)
	if found.A == nil || found.A.X != 5.0 {
		t.Fatal("Search should find the A peer by id")
	}
	if found.B == nil || found.B.Label != "first" {
		t.Fatal("Search should find the B peer by id")
	}
}

func TestSchemeMoveRelocatesEveryPeer(t *testing.T) {
	store := NewSchemeStore()
	RegisterGrowable[testVec, *testVec](store, 8)
	RegisterGrowable[testTag, *testTag](store, 8)

	src := SchemeOf2[testVec, *testVec, testTag, *testTag](store)

	dstStore := NewSchemeStore()
	RegisterGrowable[testVec, *testVec](dstStore, 8)
	RegisterGrowable[testTag, *testTag](dstStore, 8)
	dst := SchemeOf2[testVec, *testVec, testTag, *testTag](dstStore)

	e := src.Create(9, Args(1, 1), Args("moved"))
	moved := src.Move(dst, e)

	if src.Search(9).A != nil {
		t.Fatal("Move should remove the entity from the source scheme")
	}
	if dst.Search(9).A == nil {
		t.Fatal("Move should install the entity in the destination scheme")
	}
	if moved.B.Label != "moved" {
		t.Fatalf("moved entity should keep its data, got %+v", moved.B)
	}
}

func TestSchemeChangePartitionAppliesToEveryOrchestrator(t *testing.T) {
	store := NewSchemeStore()
	RegisterPartitionedGrowable[testVec, *testVec](store, 8)
	RegisterPartitionedGrowable[testTag, *testTag](store, 8)
	scheme := SchemeOf2[testVec, *testVec, testTag, *testTag](store)

	e := scheme.Create(1, ArgsPartitioned(false, 0, 0), ArgsPartitioned(false, "x"))
	moved := scheme.ChangePartition(true, e)

	if !scheme.OrchA.Partition(moved.A) || !scheme.OrchB.Partition(moved.B) {
		t.Fatal("ChangePartition should move every component to the requested side")
	}
}

func TestSchemeAllocPushesOnlyTheRequestedComponent(t *testing.T) {
	_, scheme := newMoverStore()

	a := scheme.AllocA(1, Args(3.0, 4.0))
	if a.X != 3.0 || a.Y != 4.0 {
		t.Fatalf("unexpected A component: %+v", a)
	}
	if scheme.OrchB.Get(1) != nil {
		t.Fatal("AllocA should not push a B sibling")
	}

	b := scheme.AllocB(2, Args("solo"))
	if b.Label != "solo" {
		t.Fatalf("unexpected B component: %+v", b)
	}
	if scheme.OrchA.Get(2) != nil {
		t.Fatal("AllocB should not push an A sibling")
	}
}

func TestSchemeDestroyFromResolvesSiblingViaComponentsMap(t *testing.T) {
	_, scheme := newMoverStore()
	e := scheme.Create(1, Args(1, 1), Args("pair"))

	scheme.DestroyFromA(e.A)

	if scheme.Search(1).A != nil || scheme.Search(1).B != nil {
		t.Fatal("DestroyFromA should remove both peers")
	}
}

func TestSchemeDestroyFromBResolvesSiblingViaComponentsMap(t *testing.T) {
	_, scheme := newMoverStore()
	e := scheme.Create(2, Args(1, 1), Args("pair"))

	scheme.DestroyFromB(e.B)

	if scheme.Search(2).A != nil || scheme.Search(2).B != nil {
		t.Fatal("DestroyFromB should remove both peers")
	}
}

func TestEntityTicketsReturnsEveryPeerHandle(t *testing.T) {
	_, scheme := newMoverStore()
	e := scheme.Create(1, Args(1.0, 2.0), Args("tag"))

	tickets := e.Tickets()
	if len(tickets) != 2 {
		t.Fatalf("Tickets() returned %d handles, want 2", len(tickets))
	}
	aTix, ok := tickets[0].(*Ticket[testVec])
	if !ok || aTix.Get() != e.A {
		t.Fatal("first ticket should resolve back to the A peer")
	}
	bTix, ok := tickets[1].(*Ticket[testTag])
	if !ok || bTix.Get() != e.B {
		t.Fatal("second ticket should resolve back to the B peer")
	}
}

func TestEntityGetResolvesByComponentType(t *testing.T) {
	_, scheme := newMoverStore()
	e := scheme.Create(1, Args(1.0, 2.0), Args("tag"))

	if got := EntityGet2[testVec](e); got == nil || got != e.A {
		t.Fatal("EntityGet2[testVec] should return the A peer")
	}
	if got := EntityGet2[testTag](e); got == nil || got != e.B {
		t.Fatal("EntityGet2[testTag] should return the B peer")
	}
	if got := EntityGet2[testHooked](e); got != nil {
		t.Fatal("EntityGet2 should return nil for a type not in the tuple")
	}
}

func TestSchemeHooksFireOnCreateAndDestroy(t *testing.T) {
	store := NewSchemeStore()
	RegisterGrowable[testHooked, *testHooked](store, 4)
	scheme := SchemeOf1[testHooked, *testHooked](store)

	e := scheme.Create(1, Args())
	if !e.A.schemeCreated {
		t.Fatal("SchemeCreated hook should fire on Create")
	}
	if e.A.schemeInfo == nil {
		t.Fatal("SchemeInformation hook should fire on Create")
	}

	scheme.Destroy(e)
	if !e.A.destroyed {
		t.Fatal("Destroy hook should fire on scheme Destroy")
	}
	if e.A.entityPeers != 1 {
		t.Fatalf("EntityDestroy should see 1 peer for a one-component scheme, got %d", e.A.entityPeers)
	}
}
