package silo

import (
	"hash/fnv"
	"reflect"
)

// TypeHash returns a deterministic 32-bit FNV-1a hash over T's textual
// compile-time name. Distinct types are expected to produce distinct
// hashes in practice; collisions are not defended against, same as the
// contract in the external interfaces section.
func TypeHash[T any]() uint32 {
	var zero T
	h := fnv.New32a()
	h.Write([]byte(reflect.TypeOf(zero).String()))
	return h.Sum32()
}

// ComponentsMap is a per-entity dictionary mapping a component type hash to
// a thunk that resolves to the current pointer of that peer component.
// Shared across every peer of an entity so each can reach its siblings by
// type without the entity itself owning them (storages own components; the
// map only owns strong ticket references).
//
// Grounded on original_source/src/entity/components_map.hpp. The C++
// version keys a std::function<void*()> capturing a ticket; this realizes
// the same shape without unsafe.Pointer by keeping the closures boxed as
// func() any and leaving the type assertion to ComponentsMapGet.
type ComponentsMap struct {
	entries map[uint32]func() any
}

func newComponentsMap() *ComponentsMap {
	return &ComponentsMap{entries: make(map[uint32]func() any)}
}

// ComponentsMapPush inserts an additional entry for component c, keyed by
// T's type hash. Used both to build the initial map at scheme-create time
// and to support later pushes of new component types onto an already-live
// entity (e.g. AddComponent-style flows layered on top of a scheme).
func ComponentsMapPush[T any, PT Component[T]](m *ComponentsMap, c PT) {
	tix := c.ticketRef()
	tix.AddRef()
	m.entries[TypeHash[T]()] = func() any {
		if !tix.Valid() {
			return nil
		}
		return tix.Get()
	}
}

// ComponentsMapGet looks up the peer component of type T, returning nil if
// the entity's scheme never registered that type or the peer has since
// been destroyed.
func ComponentsMapGet[T any](m *ComponentsMap) *T {
	if m == nil {
		return nil
	}
	fn, ok := m.entries[TypeHash[T]()]
	if !ok {
		return nil
	}
	v := fn()
	if v == nil {
		return nil
	}
	p, _ := v.(*T)
	return p
}
