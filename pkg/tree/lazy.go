package tree

import "github.com/go-drift/treeview/pkg/observe"

// Lazy is a Node that obtains its children from a fetch function each time
// they are requested. Use it to front children that are expensive to
// enumerate, such as directory listings or remote collections, so the cost is paid
// only when the user expands the item.
type Lazy struct {
	label   *observe.Value[string]
	changed *observe.Observable[Node]
	fetch   func() ([]Node, error)
}

var _ Node = (*Lazy)(nil)

// NewLazy creates a node backed by fetch. A nil fetch makes the node a leaf.
func NewLazy(sched *observe.Scheduler, label string, fetch func() ([]Node, error)) *Lazy {
	return &Lazy{
		label:   observe.NewValue(sched, label),
		changed: observe.NewObservable[Node](sched),
		fetch:   fetch,
	}
}

// Label returns the node's label cell.
func (l *Lazy) Label() *observe.Value[string] {
	return l.label
}

// Leaf reports whether the node was created without a fetch function.
func (l *Lazy) Leaf() bool {
	return l.fetch == nil
}

// Children invokes the fetch function. Never called for leaves by the
// binding layer, but tolerates it.
func (l *Lazy) Children() ([]Node, error) {
	if l.fetch == nil {
		return nil, nil
	}
	return l.fetch()
}

// ChildrenChanged returns the node's children-change source.
func (l *Lazy) ChildrenChanged() *observe.Observable[Node] {
	return l.changed
}

// Invalidate notifies observers that the fetch function's result may have
// changed. Call it after the backing data mutates; if the node's item is
// expanded, its children are rebuilt from a fresh fetch.
func (l *Lazy) Invalidate() {
	l.changed.Notify(l)
}
