package silo

// Continuous, ContinuousBy, Parallel and ParallelBy are the four
// full-range iteration operations Scheme2 through Scheme4 expose; Scheme1
// exposes only Continuous and Parallel. Continuous
// and Parallel zip every component's range by index, relying on the
// scheme invariant that peers created together stay aligned across their
// independent storages. ContinuousBy and ParallelBy instead drive
// iteration off the scheme's first component and reconstruct each peer
// set via Search, useful when only one component's storage layout matters
// for iteration order.
//
// Each returns a *Counter; callers Wait() it to block for completion, or
// hand it off to further pipeline stages. In debug mode the ranged
// orchestrators are write-locked until the counter drains.
//
// Grounded on original_source/src/view/scheme_view.hpp's scheme_view.
// ContinuousBy/ParallelBy there are generic over "By", any component type
// in the scheme; here they are pinned to the first component (A) rather
// than parameterized per call, since Go generics can't add an extra type
// parameter to a method beyond the receiver's own — this is documented as
// a deliberate scope cut in the design notes, not an oversight.

func (s *Scheme1[A, PA]) Continuous(pool *WorkerPool, callback func(PA)) *Counter {
	counter := NewCounter()
	if s.Size() == 0 {
		return counter
	}
	pool.Push(func() {
		for _, a := range collect(s.OrchA.Range()) {
			callback(a)
		}
	}, counter)
	counter.OnWaitDone(func() { s.OrchA.UnlockWrites() })
	return counter
}

func (s *Scheme1[A, PA]) Parallel(pool *WorkerPool, callback func(PA)) *Counter {
	counter := NewCounter()
	if s.Size() == 0 {
		return counter
	}
	for _, a := range collect(s.OrchA.Range()) {
		a := a
		pool.Push(func() { callback(a) }, counter)
	}
	counter.OnWaitDone(func() { s.OrchA.UnlockWrites() })
	return counter
}

func (s *Scheme2[A, PA, B, PB]) Continuous(pool *WorkerPool, callback func(PA, PB)) *Counter {
	counter := NewCounter()
	if s.Size() == 0 {
		return counter
	}
	pool.Push(func() {
		as := collect(s.OrchA.Range())
		bs := collect(s.OrchB.Range())
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

func (s *Scheme2[A, PA, B, PB]) ContinuousBy(pool *WorkerPool, callback func(Entity2[A, PA, B, PB])) *Counter {
	counter := NewCounter()
	if s.Size() == 0 {
		return counter
	}
	pool.Push(func() {
		for _, a := range collect(s.OrchA.Range()) {
			callback(s.Search(a.ID()))
		}
	}, counter)
	counter.OnWaitDone(func() {
		s.OrchA.UnlockWrites()
		s.OrchB.UnlockWrites()
	})
	return counter
}

func (s *Scheme2[A, PA, B, PB]) Parallel(pool *WorkerPool, callback func(PA, PB)) *Counter {
	counter := NewCounter()
	if s.Size() == 0 {
		return counter
	}
	as := collect(s.OrchA.Range())
	bs := collect(s.OrchB.Range())
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

func (s *Scheme2[A, PA, B, PB]) ParallelBy(pool *WorkerPool, callback func(Entity2[A, PA, B, PB])) *Counter {
	counter := NewCounter()
	if s.Size() == 0 {
		return counter
	}
	for _, a := range collect(s.OrchA.Range()) {
		id := a.ID()
		pool.Push(func() { callback(s.Search(id)) }, counter)
	}
	counter.OnWaitDone(func() {
		s.OrchA.UnlockWrites()
		s.OrchB.UnlockWrites()
	})
	return counter
}

func (s *Scheme3[A, PA, B, PB, C, PC]) Continuous(pool *WorkerPool, callback func(PA, PB, PC)) *Counter {
	counter := NewCounter()
	if s.Size() == 0 {
		return counter
	}
	pool.Push(func() {
		as := collect(s.OrchA.Range())
		bs := collect(s.OrchB.Range())
		cs := collect(s.OrchC.Range())
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

func (s *Scheme3[A, PA, B, PB, C, PC]) ContinuousBy(pool *WorkerPool, callback func(Entity3[A, PA, B, PB, C, PC])) *Counter {
	counter := NewCounter()
	if s.Size() == 0 {
		return counter
	}
	pool.Push(func() {
		for _, a := range collect(s.OrchA.Range()) {
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

func (s *Scheme3[A, PA, B, PB, C, PC]) Parallel(pool *WorkerPool, callback func(PA, PB, PC)) *Counter {
	counter := NewCounter()
	if s.Size() == 0 {
		return counter
	}
	as := collect(s.OrchA.Range())
	bs := collect(s.OrchB.Range())
	cs := collect(s.OrchC.Range())
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

func (s *Scheme3[A, PA, B, PB, C, PC]) ParallelBy(pool *WorkerPool, callback func(Entity3[A, PA, B, PB, C, PC])) *Counter {
	counter := NewCounter()
	if s.Size() == 0 {
		return counter
	}
	for _, a := range collect(s.OrchA.Range()) {
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

func (s *Scheme4[A, PA, B, PB, C, PC, D, PD]) Continuous(pool *WorkerPool, callback func(PA, PB, PC, PD)) *Counter {
	counter := NewCounter()
	if s.Size() == 0 {
		return counter
	}
	pool.Push(func() {
		as := collect(s.OrchA.Range())
		bs := collect(s.OrchB.Range())
		cs := collect(s.OrchC.Range())
		ds := collect(s.OrchD.Range())
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

func (s *Scheme4[A, PA, B, PB, C, PC, D, PD]) ContinuousBy(pool *WorkerPool, callback func(Entity4[A, PA, B, PB, C, PC, D, PD])) *Counter {
	counter := NewCounter()
	if s.Size() == 0 {
		return counter
	}
	pool.Push(func() {
		for _, a := range collect(s.OrchA.Range()) {
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

func (s *Scheme4[A, PA, B, PB, C, PC, D, PD]) Parallel(pool *WorkerPool, callback func(PA, PB, PC, PD)) *Counter {
	counter := NewCounter()
	if s.Size() == 0 {
		return counter
	}
	as := collect(s.OrchA.Range())
	bs := collect(s.OrchB.Range())
	cs := collect(s.OrchC.Range())
	ds := collect(s.OrchD.Range())
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

func (s *Scheme4[A, PA, B, PB, C, PC, D, PD]) ParallelBy(pool *WorkerPool, callback func(Entity4[A, PA, B, PB, C, PC, D, PD])) *Counter {
	counter := NewCounter()
	if s.Size() == 0 {
		return counter
	}
	for _, a := range collect(s.OrchA.Range()) {
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
