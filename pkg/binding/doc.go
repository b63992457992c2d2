// Package binding keeps a visual tree synchronized with a tree-shaped
// domain model without materializing more of the model than the user has
// expanded.
//
// A Binding owns a bidirectional mapping between domain nodes and the
// visual items of a View. The root node is materialized when the binding is
// created; children are materialized when their parent's item is expanded
// and torn down (items destroyed, map entries removed, observers
// unregistered) when it is collapsed. Label changes update item text in
// place; a children change on an expanded item rebuilds that item's
// children wholesale from a fresh Children query. The rebuild deliberately
// trades incremental patching for an invariant that is trivial to trust:
// materialized children always exactly match what Children currently
// returns. Expansion state deeper in the rebuilt subtree is lost.
//
// All handlers run on the goroutine that drains the observe.Scheduler, the
// same goroutine that must deliver the view's expand and collapse events.
// Domain mutations may originate anywhere; they reach the binding only
// through the scheduler.
package binding
