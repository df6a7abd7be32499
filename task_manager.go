package silo

// dualBuffer is a worker's own pair of task slices, one being appended to
// while the other (from the previous Execute) is assumed drained. Swapping
// them on Execute rather than clearing-in-place is what lets Schedule keep
// appending from the same worker while a prior batch is still being run
// elsewhere.
type dualBuffer struct {
	buffers [2][]func()
	current int
}

func (d *dualBuffer) push(fn func()) {
	d.buffers[d.current] = append(d.buffers[d.current], fn)
}

func (d *dualBuffer) swap() []func() {
	old := d.current
	d.current = 1 - d.current
	out := d.buffers[old]
	d.buffers[old] = d.buffers[old][:0]
	return out
}

// TaskManager defers work onto per-worker buffers for later batch
// execution, instead of running it immediately. Built for the
// ScheduleIf pattern: capture a ticket now, re-validate it only once the
// batch actually runs.
//
// Grounded on original_source/src/updater/tasks_manager.hpp's
// task_manager, including its double-buffered per-worker vector_t
// scheduler.
type TaskManager struct {
	pool *WorkerPool
}

// NewTaskManager binds a task manager to pool, using one dual-buffer slot
// per worker.
func NewTaskManager(pool *WorkerPool) *TaskManager {
	return &TaskManager{pool: pool}
}

// Schedule appends fn to worker workerID's current buffer. workerID
// identifies the pool worker the caller is running on (e.g. as received
// from WorkerPool.PushCounted); there is no implicit "current worker" in
// Go the way a fiber-local lookup gives the original.
func (tm *TaskManager) Schedule(workerID int, fn func()) {
	buf := ThreadLocal[dualBuffer](tm.pool, workerID)
	buf.push(fn)
}

// ScheduleIf schedules fn to run at the next Execute only if every ticket
// in tickets is still valid at that point.
//
// The validity check and the subsequent Get() are two separate steps, not
// one atomic operation: a ticket can be invalidated between them if
// something concurrently pops the component off its storage while Execute
// is iterating. This mirrors the original's own behavior (schedule_if
// checks tickets->valid() and then calls tickets->get() as two
// unsynchronized steps) rather than adding locking the source never had;
// callers that need a hard guarantee must arrange not to invalidate a
// ticket while a ScheduleIf task referencing it is pending.
func ScheduleIf[T any](tm *TaskManager, workerID int, tickets []*Ticket[T], fn func(objs []*T)) {
	tm.Schedule(workerID, func() {
		objs := make([]*T, len(tickets))
		for i, t := range tickets {
			if !t.Valid() {
				return
			}
			objs[i] = t.Get()
		}
		fn(objs)
	})
}

// Execute swaps and runs every worker's pending buffer, in worker-id
// order.
func (tm *TaskManager) Execute() {
	for w := 0; w < tm.pool.MaximumWorkerID(); w++ {
		buf := ThreadLocal[dualBuffer](tm.pool, w)
		for _, task := range buf.swap() {
			task()
		}
	}
}
