package observe

import "sync"

// Value is a single-value cell that notifies observers when the value
// changes. Get and Set are safe from any goroutine; observers run later on
// the scheduler's designated goroutine with the value that was current when
// the notification was enqueued. Handlers that need the freshest value
// should re-read Get rather than rely on the payload.
type Value[T comparable] struct {
	mu      sync.Mutex
	value   T
	changed *Observable[T]
}

// NewValue creates a value cell holding initial.
func NewValue[T comparable](sched *Scheduler, initial T) *Value[T] {
	return &Value[T]{
		value:   initial,
		changed: NewObservable[T](sched),
	}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.value
}

// Set stores val and notifies observers. Setting a value equal to the
// current one stores nothing and notifies no one. Get reflects the new value
// as soon as Set returns; observers are informed asynchronously.
func (v *Value[T]) Set(val T) {
	v.mu.Lock()
	if val == v.value {
		v.mu.Unlock()
		return
	}
	v.value = val
	v.mu.Unlock()
	v.changed.Notify(val)
}

// AddObserver registers obs for change notifications.
func (v *Value[T]) AddObserver(obs *Observer[T]) {
	v.changed.AddObserver(obs)
}

// RemoveObserver unregisters obs.
func (v *Value[T]) RemoveObserver(obs *Observer[T]) {
	v.changed.RemoveObserver(obs)
}

// ObserverCount returns the number of registered observers.
func (v *Value[T]) ObserverCount() int {
	return v.changed.ObserverCount()
}
