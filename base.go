package silo

// Base is the pool-item mixin every component embeds, generic over the
// component's own concrete type — the Go realization of the original's CRTP
// base (component<T> : pool_item<component<T>>). Embedding Base[T] in a
// struct T gives that struct the unexported recreateTicket/refreshTicket/
// invalidateTicket/hasTicket/ticketRef/setID/setComponentsMap methods (plus
// the exported ID/Ticket/Components), which is what the Component[T]
// constraint below requires. Because some of those methods are unexported,
// a type in any package can satisfy Component[T] only by embedding Base[T];
// it cannot implement the constraint on its own.
//
// Grounded on original_source/src/storage/pool_item.hpp and
// entity/component.hpp.
type Base[T any] struct {
	id     uint64
	tix    *Ticket[T]
	cmap   *ComponentsMap
	hasTix bool
}

// ID returns the entity identifier this component was created with.
func (b *Base[T]) ID() uint64 {
	return b.id
}

func (b *Base[T]) setID(id uint64) {
	b.id = id
}

func (b *Base[T]) hasTicket() bool {
	return b.hasTix
}

func (b *Base[T]) ticketRef() *Ticket[T] {
	if !b.hasTix {
		return defaultTicket[T]()
	}
	return b.tix
}

func (b *Base[T]) recreateTicket(self *T) {
	b.tix = NewTicket(self)
	b.hasTix = true
}

func (b *Base[T]) refreshTicket(self *T) {
	if b.hasTix {
		b.tix.refresh(self)
	}
}

func (b *Base[T]) invalidateTicket() {
	if b.hasTix {
		b.tix.invalidate()
		b.tix = nil
		b.hasTix = false
	}
}

// Ticket returns the component's current handle, creating a non-owning
// invalid sentinel if the component has never been pushed through a
// storage. Callers outside this package cache the returned *Ticket[T] across
// relocations instead of holding the component pointer directly, exactly the
// handle-caching pattern described in §4.1's invariants.
func (b *Base[T]) Ticket() *Ticket[T] {
	return b.ticketRef()
}

// Components returns the entity's shared components-map, set by a scheme's
// Create once every peer component of the entity exists (just before the
// SchemeCreated hooks run). Nil until then, and nil for components pushed
// through an Alloc method.
func (b *Base[T]) Components() *ComponentsMap {
	return b.cmap
}

func (b *Base[T]) setComponentsMap(m *ComponentsMap) {
	b.cmap = m
}

// Component is the constraint every storage, orchestrator and scheme is
// parameterized over: PT must be a pointer to T, and T must carry the
// Base[T] mixin's method set. Equivalent to pool_item_derived in
// storage.hpp.
type Component[T any] interface {
	*T

	ID() uint64
	setID(id uint64)
	hasTicket() bool
	ticketRef() *Ticket[T]
	Ticket() *Ticket[T]
	recreateTicket(self *T)
	refreshTicket(self *T)
	invalidateTicket()
	Components() *ComponentsMap
	setComponentsMap(m *ComponentsMap)
}

// The following are the optional lifecycle hooks a component may define.
// They are checked with a type assertion at the lifecycle call site rather
// than resolved at compile time — the Go stand-in for the capability-trait
// monomorphization described in the design notes.

// Constructor is implemented by components that want post-placement
// initialization from the arguments passed to Push/Create.
type Constructor interface {
	Construct(args ...any)
}

// Destroyer is implemented by components that want pre-release teardown.
type Destroyer interface {
	Destroy(args ...any)
}

// EntityDestroyer is implemented by components that want to observe their
// peers immediately before a scheme-wide destroy releases every one of
// them.
type EntityDestroyer interface {
	EntityDestroy(peers ...any)
}

// SchemeCreatedHook is implemented by components that want to know once
// every peer of their entity exists and the shared components-map is
// populated.
type SchemeCreatedHook interface {
	SchemeCreated(m *ComponentsMap)
}

// SchemeInformationHook is implemented by components that want a
// back-reference to the scheme they are (re)bound to, refreshed after a
// cross-scheme move.
type SchemeInformationHook interface {
	SchemeInformation(scheme any)
}

func callConstruct(obj any, args ...any) {
	if c, ok := obj.(Constructor); ok {
		c.Construct(args...)
	}
}

func callDestroy(obj any, args ...any) {
	if d, ok := obj.(Destroyer); ok {
		d.Destroy(args...)
	}
}

func callEntityDestroy(obj any, peers ...any) {
	if d, ok := obj.(EntityDestroyer); ok {
		d.EntityDestroy(peers...)
	}
}

func callSchemeCreated(obj any, m *ComponentsMap) {
	if h, ok := obj.(SchemeCreatedHook); ok {
		h.SchemeCreated(m)
	}
}

func callSchemeInformation(obj any, scheme any) {
	if h, ok := obj.(SchemeInformationHook); ok {
		h.SchemeInformation(scheme)
	}
}
