package tree

import "github.com/go-drift/treeview/pkg/observe"

// Node is a node in the tree-shaped domain model.
//
// Implementations may be mutated from any goroutine; the observe layer
// defers delivery of the resulting notifications to the goroutine that owns
// the visual tree. A node must appear under at most one parent: the binding
// layer maps each node to exactly one visual item and rejects a second
// materialization of the same node.
type Node interface {
	// Label is the node's display label cell. The binding layer observes it
	// and keeps the visual item's text in sync.
	Label() *observe.Value[string]

	// Leaf reports whether the node can never have children. The result
	// must be constant for the lifetime of the node instance.
	Leaf() bool

	// Children returns the node's current children. It is queried only on
	// demand, when the node's item is expanded or rebuilt, and the result
	// is never cached by the caller, so each call must reflect the current
	// state of the model. An error leaves the node's item collapsed.
	Children() ([]Node, error)

	// ChildrenChanged notifies, with the node itself as payload, when the
	// result of Children may have changed.
	ChildrenChanged() *observe.Observable[Node]
}
