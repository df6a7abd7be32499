package silo

// Scheme1..Scheme4 are the hand-expanded stand-ins for the original's
// variadic scheme<comps...>. Go generics have no variadic type parameter
// list, so each arity this program needs is spelled out explicitly rather
// than generated from one variadic definition — the same approach
// edwinsyarief-lazyecs takes in its own *_generated.go files for its
// component-set combinations, which is the precedent followed here. Four
// components is enough for every entity shape this package's tests build;
// a fifth arity would be a mechanical repeat of Scheme4's pattern.
//
// Grounded on original_source/src/entity/scheme.hpp.

// Entity1..Entity4 are the fixed-arity entity tuples returned by Create
// and consumed by Destroy/Move/ChangePartition.

type Entity1[A any, PA Component[A]] struct {
	A PA
}

func (e Entity1[A, PA]) ID() uint64 { return e.A.ID() }

// Tickets returns the handle for every peer, in declaration order, boxed as
// any since each peer's *Ticket[X] is a distinct instantiation.
func (e Entity1[A, PA]) Tickets() []any {
	return []any{e.A.Ticket()}
}

// EntityGet1 returns e's component if it is of type T, or nil if T isn't
// the entity's component type. The distilled spec's get<T>() is a method
// generic over T; Go cannot add a type parameter to a method beyond the
// receiver's own, so it is realized as a package-level generic function
// instead, the same translation EntityGet2..4 and ComponentsMapGet use.
func EntityGet1[T any, A any, PA Component[A]](e Entity1[A, PA]) *T {
	if v, ok := any(e.A).(*T); ok {
		return v
	}
	return nil
}

type Entity2[A any, PA Component[A], B any, PB Component[B]] struct {
	A PA
	B PB
}

func (e Entity2[A, PA, B, PB]) ID() uint64 { return e.A.ID() }

// Tickets returns the handle for every peer, in declaration order.
func (e Entity2[A, PA, B, PB]) Tickets() []any {
	return []any{e.A.Ticket(), e.B.Ticket()}
}

// EntityGet2 is EntityGet1 over a two-component entity tuple.
func EntityGet2[T any, A any, PA Component[A], B any, PB Component[B]](e Entity2[A, PA, B, PB]) *T {
	if v, ok := any(e.A).(*T); ok {
		return v
	}
	if v, ok := any(e.B).(*T); ok {
		return v
	}
	return nil
}

type Entity3[A any, PA Component[A], B any, PB Component[B], C any, PC Component[C]] struct {
	A PA
	B PB
	C PC
}

func (e Entity3[A, PA, B, PB, C, PC]) ID() uint64 { return e.A.ID() }

// Tickets returns the handle for every peer, in declaration order.
func (e Entity3[A, PA, B, PB, C, PC]) Tickets() []any {
	return []any{e.A.Ticket(), e.B.Ticket(), e.C.Ticket()}
}

// EntityGet3 is EntityGet1 over a three-component entity tuple.
func EntityGet3[T any, A any, PA Component[A], B any, PB Component[B], C any, PC Component[C]](e Entity3[A, PA, B, PB, C, PC]) *T {
	if v, ok := any(e.A).(*T); ok {
		return v
	}
	if v, ok := any(e.B).(*T); ok {
		return v
	}
	if v, ok := any(e.C).(*T); ok {
		return v
	}
	return nil
}

type Entity4[A any, PA Component[A], B any, PB Component[B], C any, PC Component[C], D any, PD Component[D]] struct {
	A PA
	B PB
	C PC
	D PD
}

func (e Entity4[A, PA, B, PB, C, PC, D, PD]) ID() uint64 { return e.A.ID() }

// Tickets returns the handle for every peer, in declaration order.
func (e Entity4[A, PA, B, PB, C, PC, D, PD]) Tickets() []any {
	return []any{e.A.Ticket(), e.B.Ticket(), e.C.Ticket(), e.D.Ticket()}
}

// EntityGet4 is EntityGet1 over a four-component entity tuple.
func EntityGet4[T any, A any, PA Component[A], B any, PB Component[B], C any, PC Component[C], D any, PD Component[D]](e Entity4[A, PA, B, PB, C, PC, D, PD]) *T {
	if v, ok := any(e.A).(*T); ok {
		return v
	}
	if v, ok := any(e.B).(*T); ok {
		return v
	}
	if v, ok := any(e.C).(*T); ok {
		return v
	}
	if v, ok := any(e.D).(*T); ok {
		return v
	}
	return nil
}

// Scheme1 is a one-component entity template.
type Scheme1[A any, PA Component[A]] struct {
	Store *SchemeStore
	OrchA *Orchestrator[A, PA]
}

// SchemeOf1 builds a one-component scheme over an already-populated store.
func SchemeOf1[A any, PA Component[A]](store *SchemeStore) *Scheme1[A, PA] {
	return &Scheme1[A, PA]{Store: store, OrchA: storeGet[A, PA](store)}
}

// AllocA pushes a lone A component under id, without creating siblings or a
// shared components-map, and invokes its SchemeInformation hook. Use Create
// to build a full entity tuple in one step; Alloc is for building one up a
// component at a time.
//
// Grounded on scheme.hpp's alloc<T>(id, args_pack); Go cannot add a type
// parameter to a method beyond the receiver's own, so one Alloc method per
// component letter stands in for the original's single generic alloc<T>,
// the same tradeoff view.go documents for ContinuousBy/ParallelBy.
func (s *Scheme1[A, PA]) AllocA(id uint64, a ComponentArgs) PA {
	objA := pushComponent(s.OrchA, id, a)
	callSchemeInformation(objA, s)
	return objA
}

func (s *Scheme1[A, PA]) Create(id uint64, a ComponentArgs) Entity1[A, PA] {
	objA := pushComponent(s.OrchA, id, a)
	m := newComponentsMap()
	ComponentsMapPush[A, PA](m, objA)
	objA.setComponentsMap(m)
	callSchemeCreated(objA, m)
	callSchemeInformation(objA, s)
	Config.Logger().Trace("scheme: create", "id", id)
	return Entity1[A, PA]{A: objA}
}

func (s *Scheme1[A, PA]) Destroy(e Entity1[A, PA]) {
	id := e.ID()
	callEntityDestroy(e.A, e.A)
	s.OrchA.Pop(e.A)
	Config.Logger().Debug("scheme: destroy", "id", id)
}

// DestroyFromA is Destroy's single-pointer overload: since a one-component
// scheme has no siblings to resolve, it is a thin wrapper kept for symmetry
// with the larger arities' components-map resolution.
func (s *Scheme1[A, PA]) DestroyFromA(c PA) {
	s.Destroy(Entity1[A, PA]{A: c})
}

func (s *Scheme1[A, PA]) Move(to *Scheme1[A, PA], e Entity1[A, PA], partitionArgs ...any) Entity1[A, PA] {
	newA := s.OrchA.Move(to.OrchA, e.A, partitionArgs...)
	callSchemeInformation(newA, to)
	return Entity1[A, PA]{A: newA}
}

func (s *Scheme1[A, PA]) ChangePartition(p bool, e Entity1[A, PA]) Entity1[A, PA] {
	return Entity1[A, PA]{A: s.OrchA.ChangePartition(p, e.A)}
}

func (s *Scheme1[A, PA]) Search(id uint64) Entity1[A, PA] {
	return Entity1[A, PA]{A: s.OrchA.Get(id)}
}

func (s *Scheme1[A, PA]) Size() int                  { return s.OrchA.Size() }
func (s *Scheme1[A, PA]) SizeUntilPartition() int    { return s.OrchA.SizeUntilPartition() }
func (s *Scheme1[A, PA]) SizeFromPartition() int     { return s.OrchA.SizeFromPartition() }

// Scheme2 is a two-component entity template.
type Scheme2[A any, PA Component[A], B any, PB Component[B]] struct {
	Store *SchemeStore
	OrchA *Orchestrator[A, PA]
	OrchB *Orchestrator[B, PB]
}

// SchemeOf2 builds a two-component scheme over an already-populated store.
func SchemeOf2[A any, PA Component[A], B any, PB Component[B]](store *SchemeStore) *Scheme2[A, PA, B, PB] {
	return &Scheme2[A, PA, B, PB]{Store: store, OrchA: storeGet[A, PA](store), OrchB: storeGet[B, PB](store)}
}

// AllocA pushes a lone A component under id, without creating its B sibling
// or a shared components-map, and invokes its SchemeInformation hook.
func (s *Scheme2[A, PA, B, PB]) AllocA(id uint64, a ComponentArgs) PA {
	objA := pushComponent(s.OrchA, id, a)
	callSchemeInformation(objA, s)
	return objA
}

// AllocB is AllocA for the B orchestrator.
func (s *Scheme2[A, PA, B, PB]) AllocB(id uint64, b ComponentArgs) PB {
	objB := pushComponent(s.OrchB, id, b)
	callSchemeInformation(objB, s)
	return objB
}

func (s *Scheme2[A, PA, B, PB]) Create(id uint64, a, b ComponentArgs) Entity2[A, PA, B, PB] {
	objA := pushComponent(s.OrchA, id, a)
	objB := pushComponent(s.OrchB, id, b)

	m := newComponentsMap()
	ComponentsMapPush[A, PA](m, objA)
	ComponentsMapPush[B, PB](m, objB)
	objA.setComponentsMap(m)
	objB.setComponentsMap(m)

	callSchemeCreated(objA, m)
	callSchemeCreated(objB, m)
	callSchemeInformation(objA, s)
	callSchemeInformation(objB, s)

	Config.Logger().Trace("scheme: create", "id", id)
	return Entity2[A, PA, B, PB]{A: objA, B: objB}
}

func (s *Scheme2[A, PA, B, PB]) Destroy(e Entity2[A, PA, B, PB]) {
	id := e.ID()
	callEntityDestroy(e.A, e.A, e.B)
	callEntityDestroy(e.B, e.A, e.B)
	s.OrchA.Pop(e.A)
	s.OrchB.Pop(e.B)
	Config.Logger().Debug("scheme: destroy", "id", id)
}

// DestroyFromA is Destroy's single-pointer overload: it resolves B through
// c's stored components-map, then proceeds like Destroy.
func (s *Scheme2[A, PA, B, PB]) DestroyFromA(c PA) {
	b := ComponentsMapGet[B](c.Components())
	s.Destroy(Entity2[A, PA, B, PB]{A: c, B: b})
}

// DestroyFromB is DestroyFromA resolving through B's components-map instead.
func (s *Scheme2[A, PA, B, PB]) DestroyFromB(c PB) {
	a := ComponentsMapGet[A](c.Components())
	s.Destroy(Entity2[A, PA, B, PB]{A: a, B: c})
}

func (s *Scheme2[A, PA, B, PB]) Move(to *Scheme2[A, PA, B, PB], e Entity2[A, PA, B, PB], partitionArgs ...any) Entity2[A, PA, B, PB] {
	newA := s.OrchA.Move(to.OrchA, e.A, partitionArgs...)
	newB := s.OrchB.Move(to.OrchB, e.B, partitionArgs...)
	callSchemeInformation(newA, to)
	callSchemeInformation(newB, to)
	return Entity2[A, PA, B, PB]{A: newA, B: newB}
}

func (s *Scheme2[A, PA, B, PB]) ChangePartition(p bool, e Entity2[A, PA, B, PB]) Entity2[A, PA, B, PB] {
	return Entity2[A, PA, B, PB]{A: s.OrchA.ChangePartition(p, e.A), B: s.OrchB.ChangePartition(p, e.B)}
}

func (s *Scheme2[A, PA, B, PB]) Search(id uint64) Entity2[A, PA, B, PB] {
	return Entity2[A, PA, B, PB]{A: s.OrchA.Get(id), B: s.OrchB.Get(id)}
}

func (s *Scheme2[A, PA, B, PB]) Size() int               { return s.OrchA.Size() }
func (s *Scheme2[A, PA, B, PB]) SizeUntilPartition() int { return s.OrchA.SizeUntilPartition() }
func (s *Scheme2[A, PA, B, PB]) SizeFromPartition() int  { return s.OrchA.SizeFromPartition() }

// Scheme3 is a three-component entity template.
type Scheme3[A any, PA Component[A], B any, PB Component[B], C any, PC Component[C]] struct {
	Store *SchemeStore
	OrchA *Orchestrator[A, PA]
	OrchB *Orchestrator[B, PB]
	OrchC *Orchestrator[C, PC]
}

// SchemeOf3 builds a three-component scheme over an already-populated
// store.
func SchemeOf3[A any, PA Component[A], B any, PB Component[B], C any, PC Component[C]](store *SchemeStore) *Scheme3[A, PA, B, PB, C, PC] {
	return &Scheme3[A, PA, B, PB, C, PC]{
		Store: store,
		OrchA: storeGet[A, PA](store),
		OrchB: storeGet[B, PB](store),
		OrchC: storeGet[C, PC](store),
	}
}

// AllocA pushes a lone A component under id, without creating its siblings
// or a shared components-map, and invokes its SchemeInformation hook.
func (s *Scheme3[A, PA, B, PB, C, PC]) AllocA(id uint64, a ComponentArgs) PA {
	objA := pushComponent(s.OrchA, id, a)
	callSchemeInformation(objA, s)
	return objA
}

// AllocB is AllocA for the B orchestrator.
func (s *Scheme3[A, PA, B, PB, C, PC]) AllocB(id uint64, b ComponentArgs) PB {
	objB := pushComponent(s.OrchB, id, b)
	callSchemeInformation(objB, s)
	return objB
}

// AllocC is AllocA for the C orchestrator.
func (s *Scheme3[A, PA, B, PB, C, PC]) AllocC(id uint64, c ComponentArgs) PC {
	objC := pushComponent(s.OrchC, id, c)
	callSchemeInformation(objC, s)
	return objC
}

func (s *Scheme3[A, PA, B, PB, C, PC]) Create(id uint64, a, b, c ComponentArgs) Entity3[A, PA, B, PB, C, PC] {
	objA := pushComponent(s.OrchA, id, a)
	objB := pushComponent(s.OrchB, id, b)
	objC := pushComponent(s.OrchC, id, c)

	m := newComponentsMap()
	ComponentsMapPush[A, PA](m, objA)
	ComponentsMapPush[B, PB](m, objB)
	ComponentsMapPush[C, PC](m, objC)
	objA.setComponentsMap(m)
	objB.setComponentsMap(m)
	objC.setComponentsMap(m)

	callSchemeCreated(objA, m)
	callSchemeCreated(objB, m)
	callSchemeCreated(objC, m)
	callSchemeInformation(objA, s)
	callSchemeInformation(objB, s)
	callSchemeInformation(objC, s)

	Config.Logger().Trace("scheme: create", "id", id)
	return Entity3[A, PA, B, PB, C, PC]{A: objA, B: objB, C: objC}
}

func (s *Scheme3[A, PA, B, PB, C, PC]) Destroy(e Entity3[A, PA, B, PB, C, PC]) {
	id := e.ID()
	callEntityDestroy(e.A, e.A, e.B, e.C)
	callEntityDestroy(e.B, e.A, e.B, e.C)
	callEntityDestroy(e.C, e.A, e.B, e.C)
	s.OrchA.Pop(e.A)
	s.OrchB.Pop(e.B)
	s.OrchC.Pop(e.C)
	Config.Logger().Debug("scheme: destroy", "id", id)
}

// DestroyFromA is Destroy's single-pointer overload: it resolves B and C
// through c's stored components-map, then proceeds like Destroy.
func (s *Scheme3[A, PA, B, PB, C, PC]) DestroyFromA(c PA) {
	b := ComponentsMapGet[B](c.Components())
	cc := ComponentsMapGet[C](c.Components())
	s.Destroy(Entity3[A, PA, B, PB, C, PC]{A: c, B: b, C: cc})
}

// DestroyFromB is DestroyFromA resolving through B's components-map instead.
func (s *Scheme3[A, PA, B, PB, C, PC]) DestroyFromB(c PB) {
	a := ComponentsMapGet[A](c.Components())
	cc := ComponentsMapGet[C](c.Components())
	s.Destroy(Entity3[A, PA, B, PB, C, PC]{A: a, B: c, C: cc})
}

// DestroyFromC is DestroyFromA resolving through C's components-map instead.
func (s *Scheme3[A, PA, B, PB, C, PC]) DestroyFromC(c PC) {
	a := ComponentsMapGet[A](c.Components())
	b := ComponentsMapGet[B](c.Components())
	s.Destroy(Entity3[A, PA, B, PB, C, PC]{A: a, B: b, C: c})
}

func (s *Scheme3[A, PA, B, PB, C, PC]) Move(to *Scheme3[A, PA, B, PB, C, PC], e Entity3[A, PA, B, PB, C, PC], partitionArgs ...any) Entity3[A, PA, B, PB, C, PC] {
	newA := s.OrchA.Move(to.OrchA, e.A, partitionArgs...)
	newB := s.OrchB.Move(to.OrchB, e.B, partitionArgs...)
	newC := s.OrchC.Move(to.OrchC, e.C, partitionArgs...)
	callSchemeInformation(newA, to)
	callSchemeInformation(newB, to)
	callSchemeInformation(newC, to)
	return Entity3[A, PA, B, PB, C, PC]{A: newA, B: newB, C: newC}
}

func (s *Scheme3[A, PA, B, PB, C, PC]) ChangePartition(p bool, e Entity3[A, PA, B, PB, C, PC]) Entity3[A, PA, B, PB, C, PC] {
	return Entity3[A, PA, B, PB, C, PC]{
		A: s.OrchA.ChangePartition(p, e.A),
		B: s.OrchB.ChangePartition(p, e.B),
		C: s.OrchC.ChangePartition(p, e.C),
	}
}

func (s *Scheme3[A, PA, B, PB, C, PC]) Search(id uint64) Entity3[A, PA, B, PB, C, PC] {
	return Entity3[A, PA, B, PB, C, PC]{A: s.OrchA.Get(id), B: s.OrchB.Get(id), C: s.OrchC.Get(id)}
}

func (s *Scheme3[A, PA, B, PB, C, PC]) Size() int               { return s.OrchA.Size() }
func (s *Scheme3[A, PA, B, PB, C, PC]) SizeUntilPartition() int { return s.OrchA.SizeUntilPartition() }
func (s *Scheme3[A, PA, B, PB, C, PC]) SizeFromPartition() int  { return s.OrchA.SizeFromPartition() }

// Scheme4 is a four-component entity template.
type Scheme4[A any, PA Component[A], B any, PB Component[B], C any, PC Component[C], D any, PD Component[D]] struct {
	Store *SchemeStore
	OrchA *Orchestrator[A, PA]
	OrchB *Orchestrator[B, PB]
	OrchC *Orchestrator[C, PC]
	OrchD *Orchestrator[D, PD]
}

// SchemeOf4 builds a four-component scheme over an already-populated
// store.
func SchemeOf4[A any, PA Component[A], B any, PB Component[B], C any, PC Component[C], D any, PD Component[D]](store *SchemeStore) *Scheme4[A, PA, B, PB, C, PC, D, PD] {
	return &Scheme4[A, PA, B, PB, C, PC, D, PD]{
		Store: store,
		OrchA: storeGet[A, PA](store),
		OrchB: storeGet[B, PB](store),
		OrchC: storeGet[C, PC](store),
		OrchD: storeGet[D, PD](store),
	}
}

// AllocA pushes a lone A component under id, without creating its siblings
// or a shared components-map, and invokes its SchemeInformation hook.
func (s *Scheme4[A, PA, B, PB, C, PC, D, PD]) AllocA(id uint64, a ComponentArgs) PA {
	objA := pushComponent(s.OrchA, id, a)
	callSchemeInformation(objA, s)
	return objA
}

// AllocB is AllocA for the B orchestrator.
func (s *Scheme4[A, PA, B, PB, C, PC, D, PD]) AllocB(id uint64, b ComponentArgs) PB {
	objB := pushComponent(s.OrchB, id, b)
	callSchemeInformation(objB, s)
	return objB
}

// AllocC is AllocA for the C orchestrator.
func (s *Scheme4[A, PA, B, PB, C, PC, D, PD]) AllocC(id uint64, c ComponentArgs) PC {
	objC := pushComponent(s.OrchC, id, c)
	callSchemeInformation(objC, s)
	return objC
}

// AllocD is AllocA for the D orchestrator.
func (s *Scheme4[A, PA, B, PB, C, PC, D, PD]) AllocD(id uint64, d ComponentArgs) PD {
	objD := pushComponent(s.OrchD, id, d)
	callSchemeInformation(objD, s)
	return objD
}

func (s *Scheme4[A, PA, B, PB, C, PC, D, PD]) Create(id uint64, a, b, c, d ComponentArgs) Entity4[A, PA, B, PB, C, PC, D, PD] {
	objA := pushComponent(s.OrchA, id, a)
	objB := pushComponent(s.OrchB, id, b)
	objC := pushComponent(s.OrchC, id, c)
	objD := pushComponent(s.OrchD, id, d)

	m := newComponentsMap()
	ComponentsMapPush[A, PA](m, objA)
	ComponentsMapPush[B, PB](m, objB)
	ComponentsMapPush[C, PC](m, objC)
	ComponentsMapPush[D, PD](m, objD)
	objA.setComponentsMap(m)
	objB.setComponentsMap(m)
	objC.setComponentsMap(m)
	objD.setComponentsMap(m)

	callSchemeCreated(objA, m)
	callSchemeCreated(objB, m)
	callSchemeCreated(objC, m)
	callSchemeCreated(objD, m)
	callSchemeInformation(objA, s)
	callSchemeInformation(objB, s)
	callSchemeInformation(objC, s)
	callSchemeInformation(objD, s)

	Config.Logger().Trace("scheme: create", "id", id)
	return Entity4[A, PA, B, PB, C, PC, D, PD]{A: objA, B: objB, C: objC, D: objD}
}

func (s *Scheme4[A, PA, B, PB, C, PC, D, PD]) Destroy(e Entity4[A, PA, B, PB, C, PC, D, PD]) {
	id := e.ID()
	callEntityDestroy(e.A, e.A, e.B, e.C, e.D)
	callEntityDestroy(e.B, e.A, e.B, e.C, e.D)
	callEntityDestroy(e.C, e.A, e.B, e.C, e.D)
	callEntityDestroy(e.D, e.A, e.B, e.C, e.D)
	s.OrchA.Pop(e.A)
	s.OrchB.Pop(e.B)
	s.OrchC.Pop(e.C)
	s.OrchD.Pop(e.D)
	Config.Logger().Debug("scheme: destroy", "id", id)
}

// DestroyFromA is Destroy's single-pointer overload: it resolves B, C and D
// through c's stored components-map, then proceeds like Destroy.
func (s *Scheme4[A, PA, B, PB, C, PC, D, PD]) DestroyFromA(c PA) {
	b := ComponentsMapGet[B](c.Components())
	cc := ComponentsMapGet[C](c.Components())
	d := ComponentsMapGet[D](c.Components())
	s.Destroy(Entity4[A, PA, B, PB, C, PC, D, PD]{A: c, B: b, C: cc, D: d})
}

// DestroyFromB is DestroyFromA resolving through B's components-map instead.
func (s *Scheme4[A, PA, B, PB, C, PC, D, PD]) DestroyFromB(c PB) {
	a := ComponentsMapGet[A](c.Components())
	cc := ComponentsMapGet[C](c.Components())
	d := ComponentsMapGet[D](c.Components())
	s.Destroy(Entity4[A, PA, B, PB, C, PC, D, PD]{A: a, B: c, C: cc, D: d})
}

// DestroyFromC is DestroyFromA resolving through C's components-map instead.
func (s *Scheme4[A, PA, B, PB, C, PC, D, PD]) DestroyFromC(c PC) {
	a := ComponentsMapGet[A](c.Components())
	b := ComponentsMapGet[B](c.Components())
	d := ComponentsMapGet[D](c.Components())
	s.Destroy(Entity4[A, PA, B, PB, C, PC, D, PD]{A: a, B: b, C: c, D: d})
}

// DestroyFromD is DestroyFromA resolving through D's components-map instead.
func (s *Scheme4[A, PA, B, PB, C, PC, D, PD]) DestroyFromD(c PD) {
	a := ComponentsMapGet[A](c.Components())
	b := ComponentsMapGet[B](c.Components())
	cc := ComponentsMapGet[C](c.Components())
	s.Destroy(Entity4[A, PA, B, PB, C, PC, D, PD]{A: a, B: b, C: cc, D: c})
}

func (s *Scheme4[A, PA, B, PB, C, PC, D, PD]) Move(to *Scheme4[A, PA, B, PB, C, PC, D, PD], e Entity4[A, PA, B, PB, C, PC, D, PD], partitionArgs ...any) Entity4[A, PA, B, PB, C, PC, D, PD] {
	newA := s.OrchA.Move(to.OrchA, e.A, partitionArgs...)
	newB := s.OrchB.Move(to.OrchB, e.B, partitionArgs...)
	newC := s.OrchC.Move(to.OrchC, e.C, partitionArgs...)
	newD := s.OrchD.Move(to.OrchD, e.D, partitionArgs...)
	callSchemeInformation(newA, to)
	callSchemeInformation(newB, to)
	callSchemeInformation(newC, to)
	callSchemeInformation(newD, to)
	return Entity4[A, PA, B, PB, C, PC, D, PD]{A: newA, B: newB, C: newC, D: newD}
}

func (s *Scheme4[A, PA, B, PB, C, PC, D, PD]) ChangePartition(p bool, e Entity4[A, PA, B, PB, C, PC, D, PD]) Entity4[A, PA, B, PB, C, PC, D, PD] {
	return Entity4[A, PA, B, PB, C, PC, D, PD]{
		A: s.OrchA.ChangePartition(p, e.A),
		B: s.OrchB.ChangePartition(p, e.B),
		C: s.OrchC.ChangePartition(p, e.C),
		D: s.OrchD.ChangePartition(p, e.D),
	}
}

func (s *Scheme4[A, PA, B, PB, C, PC, D, PD]) Search(id uint64) Entity4[A, PA, B, PB, C, PC, D, PD] {
	return Entity4[A, PA, B, PB, C, PC, D, PD]{
		A: s.OrchA.Get(id),
		B: s.OrchB.Get(id),
		C: s.OrchC.Get(id),
		D: s.OrchD.Get(id),
	}
}

func (s *Scheme4[A, PA, B, PB, C, PC, D, PD]) Size() int { return s.OrchA.Size() }
func (s *Scheme4[A, PA, B, PB, C, PC, D, PD]) SizeUntilPartition() int {
	return s.OrchA.SizeUntilPartition()
}
func (s *Scheme4[A, PA, B, PB, C, PC, D, PD]) SizeFromPartition() int {
	return s.OrchA.SizeFromPartition()
}

// Overlap2 composes two disjoint one-component schemes into a
// two-component scheme over the same store.
//
// Grounded on scheme.hpp's overlap(store, a, b, ...); the original
// resolves the union's de-duplication at compile time via
// without_duplicates. Go generics cannot compute a type-set union, so each
// arity-sum combination this package needs is provided as its own
// function instead of one generic union operation — callers are expected
// to combine genuinely disjoint schemes, same as every call site in
// practice already does.
func Overlap2[A any, PA Component[A], B any, PB Component[B]](store *SchemeStore, a *Scheme1[A, PA], b *Scheme1[B, PB]) *Scheme2[A, PA, B, PB] {
	return SchemeOf2[A, PA, B, PB](store)
}

// Overlap3From1And2 composes a one-component scheme with a two-component
// scheme into a three-component scheme.
func Overlap3From1And2[A any, PA Component[A], B any, PB Component[B], C any, PC Component[C]](store *SchemeStore, a *Scheme1[A, PA], b *Scheme2[B, PB, C, PC]) *Scheme3[A, PA, B, PB, C, PC] {
	return SchemeOf3[A, PA, B, PB, C, PC](store)
}

// Overlap4From2And2 composes two two-component schemes into a
// four-component scheme.
func Overlap4From2And2[A any, PA Component[A], B any, PB Component[B], C any, PC Component[C], D any, PD Component[D]](store *SchemeStore, a *Scheme2[A, PA, B, PB], b *Scheme2[C, PC, D, PD]) *Scheme4[A, PA, B, PB, C, PC, D, PD] {
	return SchemeOf4[A, PA, B, PB, C, PC, D, PD](store)
}

// Overlap4From1And3 composes a one-component scheme with a
// three-component scheme into a four-component scheme.
func Overlap4From1And3[A any, PA Component[A], B any, PB Component[B], C any, PC Component[C], D any, PD Component[D]](store *SchemeStore, a *Scheme1[A, PA], b *Scheme3[B, PB, C, PC, D, PD]) *Scheme4[A, PA, B, PB, C, PC, D, PD] {
	return SchemeOf4[A, PA, B, PB, C, PC, D, PD](store)
}
