// Package observe provides the notification primitives the treeview library
// is built on: Observable fan-out sources, Value cells that notify on change,
// and a Scheduler that delivers every notification asynchronously, coalesced,
// on one designated goroutine.
//
// # Delivery model
//
// Nothing in this package ever invokes an observer synchronously. Notifying
// an Observable enqueues its observers into the Scheduler; the Scheduler asks
// the host, once per idle-to-pending transition, to run a drain on the
// goroutine that owns the visual tree, and the drain invokes each distinct
// pending observer exactly once. An observer enqueued several times before
// the drain runs, whether by one source or by many, is still invoked once,
// with the payload from the latest enqueue.
//
// # Threads
//
// Observable.Notify and Value.Set are safe from any goroutine. Drain must
// only run on the designated goroutine; the post hook given to NewScheduler
// is responsible for getting it there, typically by posting a message to the
// host's event loop.
//
// # Observer handles
//
// Observers are registered through *Observer handles rather than bare funcs
// so that registration is idempotent and removal needs no bookkeeping beyond
// keeping the handle:
//
//	obs := observe.NewObserver(func(n int) { fmt.Println("now", n) })
//	cell.AddObserver(obs)
//	defer cell.RemoveObserver(obs)
package observe
