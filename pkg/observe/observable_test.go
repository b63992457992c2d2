package observe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservableAddObserverIdempotent(t *testing.T) {
	sched := NewScheduler(nil)
	src := NewObservable[int](sched)

	obs := NewObserver(func(int) {})
	src.AddObserver(obs)
	src.AddObserver(obs)

	assert.Equal(t, 1, src.ObserverCount(), "handle stored once")
}

func TestObservableRemoveObserverIdempotent(t *testing.T) {
	sched := NewScheduler(nil)
	src := NewObservable[int](sched)

	obs := NewObserver(func(int) {})
	src.RemoveObserver(obs) // never added; no error
	src.AddObserver(obs)
	src.RemoveObserver(obs)
	src.RemoveObserver(obs)

	assert.Equal(t, 0, src.ObserverCount())
}

func TestObservableAddNilObserver(t *testing.T) {
	sched := NewScheduler(nil)
	src := NewObservable[int](sched)
	src.AddObserver(nil)
	assert.Equal(t, 0, src.ObserverCount())
}

func TestObservableNotifyWithoutObservers(t *testing.T) {
	host := &manualHost{}
	sched := NewScheduler(host.post)
	src := NewObservable[int](sched)

	src.Notify(1)

	assert.Empty(t, host.drains, "no observers, no post")
	assert.Equal(t, 0, sched.PendingCount())
}

func TestObservableCoalescesAcrossSources(t *testing.T) {
	host := &manualHost{}
	sched := NewScheduler(host.post)
	a := NewObservable[int](sched)
	b := NewObservable[int](sched)

	calls := 0
	shared := NewObserver(func(int) { calls++ })
	a.AddObserver(shared)
	b.AddObserver(shared)

	a.Notify(1)
	b.Notify(2)
	host.runAll()

	assert.Equal(t, 1, calls,
		"one handle enqueued by two sources runs once per drain")
}

func TestObservableRemovedObserverSkipsFutureNotifies(t *testing.T) {
	host := &manualHost{}
	sched := NewScheduler(host.post)
	src := NewObservable[int](sched)

	calls := 0
	obs := NewObserver(func(int) { calls++ })
	src.AddObserver(obs)

	src.Notify(1)
	host.runAll()
	require.Equal(t, 1, calls)

	src.RemoveObserver(obs)
	src.Notify(2)
	host.runAll()

	assert.Equal(t, 1, calls, "removed before notify, never enqueued")
}
