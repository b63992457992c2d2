package observe

import "sync"

// Observable is a fan-out notification source. Observers register interest
// with AddObserver; Notify enqueues every currently registered observer for
// one asynchronous invocation on the scheduler's designated goroutine.
type Observable[T any] struct {
	sched     *Scheduler
	mu        sync.Mutex
	observers map[*Observer[T]]struct{}
}

// NewObservable creates an observable that delivers through sched.
func NewObservable[T any](sched *Scheduler) *Observable[T] {
	return &Observable[T]{
		sched:     sched,
		observers: make(map[*Observer[T]]struct{}),
	}
}

// AddObserver registers obs. Registering a handle that is already registered
// is a no-op; the handle is stored once.
func (o *Observable[T]) AddObserver(obs *Observer[T]) {
	if obs == nil {
		return
	}
	o.mu.Lock()
	o.observers[obs] = struct{}{}
	o.mu.Unlock()
}

// RemoveObserver unregisters obs. Removing a handle that is not registered
// is a no-op. A removed observer may still receive one notification that was
// enqueued before the removal; consumers must tolerate that (see the binding
// package, which treats lookups for gone nodes as no-ops).
func (o *Observable[T]) RemoveObserver(obs *Observer[T]) {
	o.mu.Lock()
	delete(o.observers, obs)
	o.mu.Unlock()
}

// ObserverCount returns the number of registered observers.
func (o *Observable[T]) ObserverCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.observers)
}

// Notify enqueues every currently registered observer with payload. It never
// invokes a callback synchronously and returns immediately; delivery happens
// in the scheduler's next drain, at most once per observer even when the
// observer was enqueued by several sources. Safe from any goroutine. No
// effect if there are no observers.
func (o *Observable[T]) Notify(payload T) {
	o.mu.Lock()
	if len(o.observers) == 0 {
		o.mu.Unlock()
		return
	}
	calls := make(map[any]func(), len(o.observers))
	for obs := range o.observers {
		fn := obs.fn
		calls[obs] = func() { fn(payload) }
	}
	o.mu.Unlock()
	o.sched.enqueue(calls)
}
