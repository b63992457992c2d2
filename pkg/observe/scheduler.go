package observe

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-drift/treeview/pkg/errors"
)

// Scheduler holds notifications that have been requested but not yet
// delivered and hands them to the host's designated goroutine in batches.
//
// A Scheduler is constructed once per binding context and shared by every
// Observable and Value in it. The post hook is called with the drain
// function whenever the pending set goes from empty to non-empty; the host
// must arrange for that function to run on the goroutine that owns the
// visual tree. At most one post is outstanding at a time: further enqueues
// before the drain starts, and enqueues made by callbacks while the drain is
// running, are folded into the drain already underway.
type Scheduler struct {
	mu        sync.Mutex
	pending   map[any]func()
	scheduled bool
	draining  bool
	post      func(drain func())
}

// NewScheduler creates a scheduler that requests drains through post.
// post may be nil; install it later with SetPost. Notifications enqueued
// while no hook is installed are held until one is.
func NewScheduler(post func(drain func())) *Scheduler {
	return &Scheduler{
		pending: make(map[any]func()),
		post:    post,
	}
}

// SetPost installs or replaces the drain request hook. If notifications are
// already pending and no drain has been requested, the new hook is invoked
// immediately. Pass nil to detach the scheduler from its host; pending
// notifications are then held until a hook is installed again.
func (s *Scheduler) SetPost(post func(drain func())) {
	s.mu.Lock()
	s.post = post
	request := post != nil && len(s.pending) > 0 && !s.scheduled && !s.draining
	if request {
		s.scheduled = true
	}
	s.mu.Unlock()
	if request {
		post(s.Drain)
	}
}

// enqueue unions calls into the pending set, keyed by observer handle so a
// handle already pending is replaced rather than queued twice. Requests one
// drain when the set transitions from idle to pending.
func (s *Scheduler) enqueue(calls map[any]func()) {
	if len(calls) == 0 {
		return
	}
	s.mu.Lock()
	for key, call := range calls {
		s.pending[key] = call
	}
	request := !s.scheduled && !s.draining && s.post != nil
	if request {
		s.scheduled = true
	}
	post := s.post
	s.mu.Unlock()
	if request {
		post(s.Drain)
	}
}

// Drain invokes every pending callback until the pending set is empty,
// including callbacks enqueued while the drain itself is running. A callback
// that panics is reported to the errors handler and does not stop the drain.
//
// Drain must only be called on the designated goroutine. A nested call from
// within a callback is a no-op; the outer drain picks up whatever the
// callback enqueued.
func (s *Scheduler) Drain() {
	s.mu.Lock()
	if s.draining {
		s.mu.Unlock()
		return
	}
	s.draining = true
	s.scheduled = false
	for len(s.pending) > 0 {
		var key any
		var call func()
		for k, c := range s.pending {
			key, call = k, c
			break
		}
		delete(s.pending, key)
		s.mu.Unlock()
		invoke(call)
		s.mu.Lock()
	}
	s.draining = false
	s.mu.Unlock()
}

// PendingCount returns the number of callbacks waiting for the next drain.
func (s *Scheduler) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// invoke runs one callback with panic isolation.
func invoke(call func()) {
	defer func() {
		if r := recover(); r != nil {
			errors.Report(&errors.Error{
				Op:         "observe.Scheduler.Drain",
				Kind:       errors.KindCallback,
				Err:        fmt.Errorf("callback panic: %v", r),
				StackTrace: errors.CaptureStack(),
				Timestamp:  time.Now(),
			})
		}
	}()
	call()
}
