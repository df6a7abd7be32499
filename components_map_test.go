package silo

import "testing"

func TestTypeHashIsStableAndDistinct(t *testing.T) {
	a1 := TypeHash[testVec]()
	a2 := TypeHash[testVec]()
	b := TypeHash[testTag]()

	if a1 != a2 {
		t.Fatal("TypeHash should be stable across calls for the same type")
	}
	if a1 == b {
		t.Fatal("TypeHash should differ for distinct types")
	}
}

func TestComponentsMapPushAndGet(t *testing.T) {
	var v testVec
	v.recreateTicket(&v)

	m := newComponentsMap()
	ComponentsMapPush[testVec, *testVec](m, &v)

	got := ComponentsMapGet[testVec](m)
	if got != &v {
		t.Fatal("ComponentsMapGet should return the pushed component")
	}

	if ComponentsMapGet[testTag](m) != nil {
		t.Fatal("ComponentsMapGet should return nil for an unregistered type")
	}
}

func TestComponentsMapGetAfterInvalidate(t *testing.T) {
	var v testVec
	v.recreateTicket(&v)

	m := newComponentsMap()
	ComponentsMapPush[testVec, *testVec](m, &v)

	v.invalidateTicket()
	if ComponentsMapGet[testVec](m) != nil {
		t.Fatal("ComponentsMapGet should return nil once the peer's ticket is invalidated")
	}
}

func TestComponentsMapGetOnNilMap(t *testing.T) {
	if ComponentsMapGet[testVec](nil) != nil {
		t.Fatal("ComponentsMapGet on a nil map should return nil, not panic")
	}
}
