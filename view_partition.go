package silo

// ContinuousUntilPartition, ContinuousByUntilPartition, ParallelUntilPartition
// and ParallelByUntilPartition iterate only the predicate-true side of a
// partitioned scheme; the FromPartition family iterates the
// predicate-false side. Otherwise these mirror view.go's full-range
// operations exactly, including the write-lock/unlock-on-drain discipline
// and the By variants being pinned to the first component.
//
// Grounded on original_source/src/view/scheme_view.hpp's
// scheme_view_until_partition and scheme_view_from_partition.

func (s *Scheme1[A, PA]) ContinuousUntilPartition(pool *WorkerPool, callback func(PA)) *Counter {
	counter := NewCounter()
	if s.SizeUntilPartition() == 0 {
		return counter
	}
	pool.Push(func() {
		for _, a := range collect(s.OrchA.RangeUntilPartition()) {
			callback(a)
		}
	}, counter)
	counter.OnWaitDone(func() { s.OrchA.UnlockWrites() })
	return counter
}

func (s *Scheme1[A, PA]) ParallelUntilPartition(pool *WorkerPool, callback func(PA)) *Counter {
	counter := NewCounter()
	if s.SizeUntilPartition() == 0 {
		return counter
	}
	for _, a := range collect(s.OrchA.RangeUntilPartition()) {
		a := a
		pool.Push(func() { callback(a) }, counter)
	}
	counter.OnWaitDone(func() { s.OrchA.UnlockWrites() })
	return counter
}

func (s *Scheme1[A, PA]) ContinuousFromPartition(pool *WorkerPool, callback func(PA)) *Counter {
	counter := NewCounter()
	if s.SizeFromPartition() == 0 {
		return counter
	}
	pool.Push(func() {
		for _, a := range collect(s.OrchA.RangeFromPartition()) {
			callback(a)
		}
	}, counter)
	counter.OnWaitDone(func() { s.OrchA.UnlockWrites() })
	return counter
}

func (s *Scheme1[A, PA]) ParallelFromPartition(pool *WorkerPool, callback func(PA)) *Counter {
	counter := NewCounter()
	if s.SizeFromPartition() == 0 {
		return counter
	}
	for _, a := range collect(s.OrchA.RangeFromPartition()) {
		a := a
		pool.Push(func() { callback(a) }, counter)
	}
	counter.OnWaitDone(func() { s.OrchA.UnlockWrites() })
	return counter
}

func (s *Scheme2[A, PA, B, PB]) ContinuousUntilPartition(pool *WorkerPool, callback func(PA, PB)) *Counter {
	counter := NewCounter()
	if s.SizeUntilPartition() == 0 {
		return counter
	}
	pool.Push(func() {
		as := collect(s.OrchA.RangeUntilPartition())
		bs := collect(s.OrchB.RangeUntilPartition())
		for i := range as {
			callback(as[i], bs[i])
		}
	}, counter)
	counter.OnWaitDone(func() {
		s.OrchA.UnlockWrites()
		s.OrchB.UnlockWrites()
	})
	return counter
}

func (s *Scheme2[A, PA, B, PB]) ContinuousByUntilPartition(pool *WorkerPool, callback func(Entity2[A, PA, B, PB])) *Counter {
	counter := NewCounter()
	if s.SizeUntilPartition() == 0 {
		return counter
	}
	pool.Push(func() {
		for _, a := range collect(s.OrchA.RangeUntilPartition()) {
			callback(s.Search(a.ID()))
		}
	}, counter)
	counter.OnWaitDone(func() {
		s.OrchA.UnlockWrites()
		s.OrchB.UnlockWrites()
	})
	return counter
}

func (s *Scheme2[A, PA, B, PB]) ParallelUntilPartition(pool *WorkerPool, callback func(PA, PB)) *Counter {
	counter := NewCounter()
	if s.SizeUntilPartition() == 0 {
		return counter
	}
	as := collect(s.OrchA.RangeUntilPartition())
	bs := collect(s.OrchB.RangeUntilPartition())
	for i := range as {
		a, b := as[i], bs[i]
		pool.Push(func() { callback(a, b) }, counter)
	}
	counter.OnWaitDone(func() {
		s.OrchA.UnlockWrites()
		s.OrchB.UnlockWrites()
	})
	return counter
}

func (s *Scheme2[A, PA, B, PB]) ParallelByUntilPartition(pool *WorkerPool, callback func(Entity2[A, PA, B, PB])) *Counter {
	counter := NewCounter()
	if s.SizeUntilPartition() == 0 {
		return counter
	}
	for _, a := range collect(s.OrchA.RangeUntilPartition()) {
		id := a.ID()
		pool.Push(func() { callback(s.Search(id)) }, counter)
	}
	counter.OnWaitDone(func() {
		s.OrchA.UnlockWrites()
		s.OrchB.UnlockWrites()
	})
	return counter
}

func (s *Scheme2[A, PA, B, PB]) ContinuousFromPartition(pool *WorkerPool, callback func(PA, PB)) *Counter {
	counter := NewCounter()
	if s.SizeFromPartition() == 0 {
		return counter
	}
	pool.Push(func() {
		as := collect(s.OrchA.RangeFromPartition())
		bs := collect(s.OrchB.RangeFromPartition())
		for i := range as {
			callback(as[i], bs[i])
		}
	}, counter)
	counter.OnWaitDone(func() {
		s.OrchA.UnlockWrites()
		s.OrchB.UnlockWrites()
	})
	return counter
}

func (s *Scheme2[A, PA, B, PB]) ContinuousByFromPartition(pool *WorkerPool, callback func(Entity2[A, PA, B, PB])) *Counter {
	counter := NewCounter()
	if s.SizeFromPartition() == 0 {
		return counter
	}
	pool.Push(func() {
		for _, a := range collect(s.OrchA.RangeFromPartition()) {
			callback(s.Search(a.ID()))
		}
	}, counter)
	counter.OnWaitDone(func() {
		s.OrchA.UnlockWrites()
		s.OrchB.UnlockWrites()
	})
	return counter
}

func (s *Scheme2[A, PA, B, PB]) ParallelFromPartition(pool *WorkerPool, callback func(PA, PB)) *Counter {
	counter := NewCounter()
	if s.SizeFromPartition() == 0 {
		return counter
	}
	as := collect(s.OrchA.RangeFromPartition())
	bs := collect(s.OrchB.RangeFromPartition())
	for i := range as {
		a, b := as[i], bs[i]
		pool.Push(func() { callback(a, b) }, counter)
	}
	counter.OnWaitDone(func() {
		s.OrchA.UnlockWrites()
		s.OrchB.UnlockWrites()
	})
	return counter
}

func (s *Scheme2[A, PA, B, PB]) ParallelByFromPartition(pool *WorkerPool, callback func(Entity2[A, PA, B, PB])) *Counter {
	counter := NewCounter()
	if s.SizeFromPartition() == 0 {
		return counter
	}
	for _, a := range collect(s.OrchA.RangeFromPartition()) {
		id := a.ID()
		pool.Push(func() { callback(s.Search(id)) }, counter)
	}
	counter.OnWaitDone(func() {
		s.OrchA.UnlockWrites()
		s.OrchB.UnlockWrites()
	})
	return counter
}

func (s *Scheme3[A, PA, B, PB, C, PC]) ContinuousUntilPartition(pool *WorkerPool, callback func(PA, PB, PC)) *Counter {
	counter := NewCounter()
	if s.SizeUntilPartition() == 0 {
		return counter
	}
	pool.Push(func() {
		as := collect(s.OrchA.RangeUntilPartition())
		bs := collect(s.OrchB.RangeUntilPartition())
		cs := collect(s.OrchC.RangeUntilPartition())
		for i := range as {
			callback(as[i], bs[i], cs[i])
		}
	}, counter)
	counter.OnWaitDone(func() {
		s.OrchA.UnlockWrites()
		s.OrchB.UnlockWrites()
		s.OrchC.UnlockWrites()
	})
	return counter
}

func (s *Scheme3[A, PA, B, PB, C, PC]) ParallelUntilPartition(pool *WorkerPool, callback func(PA, PB, PC)) *Counter {
	counter := NewCounter()
	if s.SizeUntilPartition() == 0 {
		return counter
	}
	as := collect(s.OrchA.RangeUntilPartition())
	bs := collect(s.OrchB.RangeUntilPartition())
	cs := collect(s.OrchC.RangeUntilPartition())
	for i := range as {
		a, b, c := as[i], bs[i], cs[i]
		pool.Push(func() { callback(a, b, c) }, counter)
	}
	counter.OnWaitDone(func() {
		s.OrchA.UnlockWrites()
		s.OrchB.UnlockWrites()
		s.OrchC.UnlockWrites()
	})
	return counter
}

func (s *Scheme3[A, PA, B, PB, C, PC]) ContinuousByUntilPartition(pool *WorkerPool, callback func(Entity3[A, PA, B, PB, C, PC])) *Counter {
	counter := NewCounter()
	if s.SizeUntilPartition() == 0 {
		return counter
	}
	pool.Push(func() {
		for _, a := range collect(s.OrchA.RangeUntilPartition()) {
			callback(s.Search(a.ID()))
		}
	}, counter)
	counter.OnWaitDone(func() {
		s.OrchA.UnlockWrites()
		s.OrchB.UnlockWrites()
		s.OrchC.UnlockWrites()
	})
	return counter
}

func (s *Scheme3[A, PA, B, PB, C, PC]) ParallelByUntilPartition(pool *WorkerPool, callback func(Entity3[A, PA, B, PB, C, PC])) *Counter {
	counter := NewCounter()
	if s.SizeUntilPartition() == 0 {
		return counter
	}
	for _, a := range collect(s.OrchA.RangeUntilPartition()) {
		id := a.ID()
		pool.Push(func() { callback(s.Search(id)) }, counter)
	}
	counter.OnWaitDone(func() {
		s.OrchA.UnlockWrites()
		s.OrchB.UnlockWrites()
		s.OrchC.UnlockWrites()
	})
	return counter
}

func (s *Scheme3[A, PA, B, PB, C, PC]) ContinuousFromPartition(pool *WorkerPool, callback func(PA, PB, PC)) *Counter {
	counter := NewCounter()
	if s.SizeFromPartition() == 0 {
		return counter
	}
	pool.Push(func() {
		as := collect(s.OrchA.RangeFromPartition())
		bs := collect(s.OrchB.RangeFromPartition())
		cs := collect(s.OrchC.RangeFromPartition())
		for i := range as {
			callback(as[i], bs[i], cs[i])
		}
	}, counter)
	counter.OnWaitDone(func() {
		s.OrchA.UnlockWrites()
		s.OrchB.UnlockWrites()
		s.OrchC.UnlockWrites()
	})
	return counter
}

func (s *Scheme3[A, PA, B, PB, C, PC]) ContinuousByFromPartition(pool *WorkerPool, callback func(Entity3[A, PA, B, PB, C, PC])) *Counter {
	counter := NewCounter()
	if s.SizeFromPartition() == 0 {
		return counter
	}
	pool.Push(func() {
		for _, a := range collect(s.OrchA.RangeFromPartition()) {
			callback(s.Search(a.ID()))
		}
	}, counter)
	counter.OnWaitDone(func() {
		s.OrchA.UnlockWrites()
		s.OrchB.UnlockWrites()
		s.OrchC.UnlockWrites()
	})
	return counter
}

func (s *Scheme3[A, PA, B, PB, C, PC]) ParallelFromPartition(pool *WorkerPool, callback func(PA, PB, PC)) *Counter {
	counter := NewCounter()
	if s.SizeFromPartition() == 0 {
		return counter
	}
	as := collect(s.OrchA.RangeFromPartition())
	bs := collect(s.OrchB.RangeFromPartition())
	cs := collect(s.OrchC.RangeFromPartition())
	for i := range as {
		a, b, c := as[i], bs[i], cs[i]
		pool.Push(func() { callback(a, b, c) }, counter)
	}
	counter.OnWaitDone(func() {
		s.OrchA.UnlockWrites()
		s.OrchB.UnlockWrites()
		s.OrchC.UnlockWrites()
	})
	return counter
}

func (s *Scheme3[A, PA, B, PB, C, PC]) ParallelByFromPartition(pool *WorkerPool, callback func(Entity3[A, PA, B, PB, C, PC])) *Counter {
	counter := NewCounter()
	if s.SizeFromPartition() == 0 {
		return counter
	}
	for _, a := range collect(s.OrchA.RangeFromPartition()) {
		id := a.ID()
		pool.Push(func() { callback(s.Search(id)) }, counter)
	}
	counter.OnWaitDone(func() {
		s.OrchA.UnlockWrites()
		s.OrchB.UnlockWrites()
		s.OrchC.UnlockWrites()
	})
	return counter
}

func (s *Scheme4[A, PA, B, PB, C, PC, D, PD]) ContinuousUntilPartition(pool *WorkerPool, callback func(PA, PB, PC, PD)) *Counter {
	counter := NewCounter()
	if s.SizeUntilPartition() == 0 {
		return counter
	}
	pool.Push(func() {
		as := collect(s.OrchA.RangeUntilPartition())
		bs := collect(s.OrchB.RangeUntilPartition())
		cs := collect(s.OrchC.RangeUntilPartition())
		ds := collect(s.OrchD.RangeUntilPartition())
		for i := range as {
			callback(as[i], bs[i], cs[i], ds[i])
		}
	}, counter)
	counter.OnWaitDone(func() {
		s.OrchA.UnlockWrites()
		s.OrchB.UnlockWrites()
		s.OrchC.UnlockWrites()
		s.OrchD.UnlockWrites()
	})
	return counter
}

func (s *Scheme4[A, PA, B, PB, C, PC, D, PD]) ParallelUntilPartition(pool *WorkerPool, callback func(PA, PB, PC, PD)) *Counter {
	counter := NewCounter()
	if s.SizeUntilPartition() == 0 {
		return counter
	}
	as := collect(s.OrchA.RangeUntilPartition())
	bs := collect(s.OrchB.RangeUntilPartition())
	cs := collect(s.OrchC.RangeUntilPartition())
	ds := collect(s.OrchD.RangeUntilPartition())
	for i := range as {
		a, b, c, d := as[i], bs[i], cs[i], ds[i]
		pool.Push(func() { callback(a, b, c, d) }, counter)
	}
	counter.OnWaitDone(func() {
		s.OrchA.UnlockWrites()
		s.OrchB.UnlockWrites()
		s.OrchC.UnlockWrites()
		s.OrchD.UnlockWrites()
	})
	return counter
}

func (s *Scheme4[A, PA, B, PB, C, PC, D, PD]) ContinuousByUntilPartition(pool *WorkerPool, callback func(Entity4[A, PA, B, PB, C, PC, D, PD])) *Counter {
	counter := NewCounter()
	if s.SizeUntilPartition() == 0 {
		return counter
	}
	pool.Push(func() {
		for _, a := range collect(s.OrchA.RangeUntilPartition()) {
			callback(s.Search(a.ID()))
		}
	}, counter)
	counter.OnWaitDone(func() {
		s.OrchA.UnlockWrites()
		s.OrchB.UnlockWrites()
		s.OrchC.UnlockWrites()
		s.OrchD.UnlockWrites()
	})
	return counter
}

func (s *Scheme4[A, PA, B, PB, C, PC, D, PD]) ParallelByUntilPartition(pool *WorkerPool, callback func(Entity4[A, PA, B, PB, C, PC, D, PD])) *Counter {
	counter := NewCounter()
	if s.SizeUntilPartition() == 0 {
		return counter
	}
	for _, a := range collect(s.OrchA.RangeUntilPartition()) {
		id := a.ID()
		pool.Push(func() { callback(s.Search(id)) }, counter)
	}
	counter.OnWaitDone(func() {
		s.OrchA.UnlockWrites()
		s.OrchB.UnlockWrites()
		s.OrchC.UnlockWrites()
		s.OrchD.UnlockWrites()
	})
	return counter
}

func (s *Scheme4[A, PA, B, PB, C, PC, D, PD]) ContinuousFromPartition(pool *WorkerPool, callback func(PA, PB, PC, PD)) *Counter {
	counter := NewCounter()
	if s.SizeFromPartition() == 0 {
		return counter
	}
	pool.Push(func() {
		as := collect(s.OrchA.RangeFromPartition())
		bs := collect(s.OrchB.RangeFromPartition())
		cs := collect(s.OrchC.RangeFromPartition())
		ds := collect(s.OrchD.RangeFromPartition())
		for i := range as {
			callback(as[i], bs[i], cs[i], ds[i])
		}
	}, counter)
	counter.OnWaitDone(func() {
		s.OrchA.UnlockWrites()
		s.OrchB.UnlockWrites()
		s.OrchC.UnlockWrites()
		s.OrchD.UnlockWrites()
	})
	return counter
}

func (s *Scheme4[A, PA, B, PB, C, PC, D, PD]) ContinuousByFromPartition(pool *WorkerPool, callback func(Entity4[A, PA, B, PB, C, PC, D, PD])) *Counter {
	counter := NewCounter()
	if s.SizeFromPartition() == 0 {
		return counter
	}
	pool.Push(func() {
		for _, a := range collect(s.OrchA.RangeFromPartition()) {
			callback(s.Search(a.ID()))
		}
	}, counter)
	counter.OnWaitDone(func() {
		s.OrchA.UnlockWrites()
		s.OrchB.UnlockWrites()
		s.OrchC.UnlockWrites()
		s.OrchD.UnlockWrites()
	})
	return counter
}

func (s *Scheme4[A, PA, B, PB, C, PC, D, PD]) ParallelFromPartition(pool *WorkerPool, callback func(PA, PB, PC, PD)) *Counter {
	counter := NewCounter()
	if s.SizeFromPartition() == 0 {
		return counter
	}
	as := collect(s.OrchA.RangeFromPartition())
	bs := collect(s.OrchB.RangeFromPartition())
	cs := collect(s.OrchC.RangeFromPartition())
	ds := collect(s.OrchD.RangeFromPartition())
	for i := range as {
		a, b, c, d := as[i], bs[i], cs[i], ds[i]
		pool.Push(func() { callback(a, b, c, d) }, counter)
	}
	counter.OnWaitDone(func() {
		s.OrchA.UnlockWrites()
		s.OrchB.UnlockWrites()
		s.OrchC.UnlockWrites()
		s.OrchD.UnlockWrites()
	})
	return counter
}

func (s *Scheme4[A, PA, B, PB, C, PC, D, PD]) ParallelByFromPartition(pool *WorkerPool, callback func(Entity4[A, PA, B, PB, C, PC, D, PD])) *Counter {
	counter := NewCounter()
	if s.SizeFromPartition() == 0 {
		return counter
	}
	for _, a := range collect(s.OrchA.RangeFromPartition()) {
		id := a.ID()
		pool.Push(func() { callback(s.Search(id)) }, counter)
	}
	counter.OnWaitDone(func() {
		s.OrchA.UnlockWrites()
		s.OrchB.UnlockWrites()
		s.OrchC.UnlockWrites()
		s.OrchD.UnlockWrites()
	})
	return counter
}
