package observe

// Observer is a registration handle for a callback. Handles compare by
// identity: create one with NewObserver, register it, and keep it for
// removal. The same handle may be registered with any number of sources;
// the Scheduler coalesces on the handle, so it runs at most once per drain
// no matter how many sources notified it.
type Observer[T any] struct {
	fn func(T)
}

// NewObserver wraps fn in a handle. fn receives the payload of the latest
// notification that enqueued the handle.
func NewObserver[T any](fn func(T)) *Observer[T] {
	return &Observer[T]{fn: fn}
}
