package observe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueGetReturnsLatestSet(t *testing.T) {
	sched := NewScheduler(nil)
	cell := NewValue(sched, "initial")

	assert.Equal(t, "initial", cell.Get())
	cell.Set("updated")
	assert.Equal(t, "updated", cell.Get(), "Get is synchronous")
}

func TestValueSetEqualValueNotifiesNothing(t *testing.T) {
	host := &manualHost{}
	sched := NewScheduler(host.post)
	cell := NewValue(sched, 42)

	calls := 0
	cell.AddObserver(NewObserver(func(int) { calls++ }))

	cell.Set(42)
	host.runAll()

	assert.Equal(t, 0, calls)
	assert.Empty(t, host.drains)
}

func TestValueSetNotifiesEachObserverOnce(t *testing.T) {
	host := &manualHost{}
	sched := NewScheduler(host.post)
	cell := NewValue(sched, 0)

	first, second := 0, 0
	cell.AddObserver(NewObserver(func(int) { first++ }))
	cell.AddObserver(NewObserver(func(int) { second++ }))

	cell.Set(1)
	host.runAll()

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}

func TestValueRapidSetsCoalesce(t *testing.T) {
	host := &manualHost{}
	sched := NewScheduler(host.post)
	cell := NewValue(sched, 0)

	var got []int
	cell.AddObserver(NewObserver(func(n int) { got = append(got, n) }))

	for i := 1; i <= 10; i++ {
		cell.Set(i)
	}
	host.runAll()

	require.Len(t, got, 1, "ten sets in one tick, one invocation")
	assert.Equal(t, 10, got[0])
	assert.Equal(t, 10, cell.Get())
}

func TestValueRapidSetsAcrossCellsCoalescePerObserver(t *testing.T) {
	host := &manualHost{}
	sched := NewScheduler(host.post)
	a := NewValue(sched, 0)
	b := NewValue(sched, 0)

	aCalls, bCalls := 0, 0
	a.AddObserver(NewObserver(func(int) { aCalls++ }))
	b.AddObserver(NewObserver(func(int) { bCalls++ }))

	a.Set(1)
	b.Set(1)
	a.Set(2)
	b.Set(2)
	host.runAll()

	assert.Equal(t, 1, aCalls, "one invocation per distinct affected observer")
	assert.Equal(t, 1, bCalls)
}

func TestValueObserverCount(t *testing.T) {
	sched := NewScheduler(nil)
	cell := NewValue(sched, "")

	obs := NewObserver(func(string) {})
	cell.AddObserver(obs)
	cell.AddObserver(obs)
	assert.Equal(t, 1, cell.ObserverCount())

	cell.RemoveObserver(obs)
	assert.Equal(t, 0, cell.ObserverCount())
}
