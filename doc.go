/*
Package silo provides a handle-stable, archetype-free entity-component
storage engine for games and simulations.

Components live in one of five storage families (fixed-capacity, unbounded,
fixed-head-with-unbounded-tail, and the partitioned variant of the fixed and
unbounded layouts), each owned by an Orchestrator that maps entity ids to
components and keeps handles valid across the swap-on-remove compaction
those storages use internally. A Scheme binds a fixed set of component
types together: creating an entity through a scheme creates one peer per
component, atomically from the caller's perspective, and Destroy/Move/
ChangePartition apply to every peer in one call.

Core Concepts:

  - Ticket: a stable handle to a component that survives storage compaction.
  - Orchestrator: owns one component type's population and its id index.
  - SchemeStore: owns every registered Orchestrator for a program.
  - Scheme: a typed view over a fixed subset of a store's orchestrators.

Basic Usage:

	store := Factory.NewStore()
	RegisterGrowable[Position, *Position](store, 64)
	RegisterGrowable[Velocity, *Velocity](store, 64)

	movers := SchemeOf2[Position, *Position, Velocity, *Velocity](store)
	movers.Create(1, Args(1.0, 2.0), Args(0.5, 0.5))

	pool := Factory.NewWorkerPool(4)
	defer pool.End()

	movers.Continuous(pool, func(pos *Position, vel *Velocity) {
		pos.X += vel.X
		pos.Y += vel.Y
	}).Wait()

Silo is a standalone engine; it does not prescribe a rendering or physics
layer on top of it.
*/
package silo
