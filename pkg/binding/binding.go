package binding

import (
	"sync"

	"github.com/go-drift/treeview/pkg/errors"
	"github.com/go-drift/treeview/pkg/observe"
	"github.com/go-drift/treeview/pkg/tree"
)

// record is the bookkeeping for one materialized node: its observer handles,
// so they can be unregistered when the node is torn down, and the items of
// its materialized children, in creation order.
type record[I comparable] struct {
	node        tree.Node
	expanded    bool
	childItems  []I
	labelObs    *observe.Observer[string]
	childrenObs *observe.Observer[tree.Node]
}

// Binding synchronizes a View with a domain tree. Create one with Bind;
// tear it down with Close. See the package documentation for the lifecycle
// and threading rules.
type Binding[I comparable] struct {
	view View[I]

	// mu guards the two maps and every read-modify-write against the view.
	// Handlers are never invoked while it is held: notifications only ever
	// arrive through a scheduler drain.
	mu     sync.Mutex
	items  map[I]*record[I]
	nodes  map[tree.Node]I
	root   I
	closed bool
}

var _ Handler[int] = (*Binding[int])(nil)

// Bind creates the root item for root on view and starts keeping the two
// trees synchronized. The root item starts collapsed unless the view reports
// it pre-expanded, in which case its children are materialized immediately.
func Bind[I comparable](view View[I], root tree.Node) *Binding[I] {
	b := &Binding[I]{
		view:  view,
		items: make(map[I]*record[I]),
		nodes: make(map[tree.Node]I),
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	item := view.CreateRoot(root.Label().Get())
	b.root = item
	b.materializeLocked(root, item)
	if view.IsExpanded(item) {
		b.expandLocked(item)
	}
	return b
}

// Root returns the root item handle.
func (b *Binding[I]) Root() I {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.root
}

// Node returns the domain node bound to item.
func (b *Binding[I]) Node(item I) (tree.Node, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	rec, ok := b.items[item]
	if !ok {
		return nil, false
	}
	return rec.node, true
}

// Item returns the item bound to node. A node has an item exactly while it
// is materialized: attached as root, or a child of an expanded parent.
func (b *Binding[I]) Item(node tree.Node) (I, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	item, ok := b.nodes[node]
	return item, ok
}

// Expanded reports whether item is currently expanded. An item whose
// Children query failed stays collapsed; views can consult this after
// HandleExpand to keep their own expansion markers in step.
func (b *Binding[I]) Expanded(item I) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	rec := b.items[item]
	return rec != nil && rec.expanded
}

// ItemCount returns the number of materialized nodes, root included.
func (b *Binding[I]) ItemCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}

// HandleExpand materializes item's children. Call it from the view when the
// user expands item. No-op for leaves, already-expanded items, and unmapped
// items. If the node's Children query fails, the error is reported and the
// item is left collapsed with no partial child list.
func (b *Binding[I]) HandleExpand(item I) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.expandLocked(item)
}

// HandleCollapse tears down item's materialized descendants. Call it from
// the view when the user collapses item. No-op for unmapped or collapsed
// items.
func (b *Binding[I]) HandleCollapse(item I) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.collapseLocked(item)
}

// Close tears down the whole binding: every observer is unregistered, both
// maps are emptied and every item, root included, is destroyed. The binding
// must not be used afterwards; late notifications for its nodes fall through
// as unmapped no-ops.
func (b *Binding[I]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	b.destroyLocked(b.root)
}

// materializeLocked maps node to item, sets the expansion indicator from the
// leaf predicate and registers the node's change observers.
func (b *Binding[I]) materializeLocked(node tree.Node, item I) {
	rec := &record[I]{node: node}
	b.items[item] = rec
	b.nodes[node] = item
	b.view.SetHasChildren(item, !node.Leaf())

	rec.labelObs = observe.NewObserver(func(string) { b.onLabelChanged(node) })
	node.Label().AddObserver(rec.labelObs)
	rec.childrenObs = observe.NewObserver(b.onChildrenChanged)
	node.ChildrenChanged().AddObserver(rec.childrenObs)
}

func (b *Binding[I]) expandLocked(item I) {
	rec := b.items[item]
	if rec == nil || rec.expanded || rec.node.Leaf() {
		return
	}
	children, err := rec.node.Children()
	if err != nil {
		errors.Report(&errors.Error{
			Op:   "binding.Binding.expand",
			Kind: errors.KindQuery,
			Err:  err,
		})
		return
	}
	for _, child := range children {
		if child == nil {
			continue
		}
		if _, dup := b.nodes[child]; dup {
			errors.Report(&errors.Error{
				Op:   "binding.Binding.expand",
				Kind: errors.KindBinding,
				Err:  &errors.SharedNodeError{Label: child.Label().Get()},
			})
			continue
		}
		childItem := b.view.AppendChild(item, child.Label().Get())
		b.materializeLocked(child, childItem)
		rec.childItems = append(rec.childItems, childItem)
	}
	rec.expanded = true
}

func (b *Binding[I]) collapseLocked(item I) {
	rec := b.items[item]
	if rec == nil || !rec.expanded {
		return
	}
	for _, childItem := range rec.childItems {
		b.destroyLocked(childItem)
	}
	rec.childItems = nil
	rec.expanded = false
}

// destroyLocked tears down item and its materialized descendants: observers
// unregistered and map entries removed together, children destroyed before
// their parent.
func (b *Binding[I]) destroyLocked(item I) {
	rec := b.items[item]
	if rec == nil {
		return
	}
	for _, childItem := range rec.childItems {
		b.destroyLocked(childItem)
	}
	rec.node.Label().RemoveObserver(rec.labelObs)
	rec.node.ChildrenChanged().RemoveObserver(rec.childrenObs)
	delete(b.items, item)
	delete(b.nodes, rec.node)
	b.view.DestroyItem(item)
}

// onLabelChanged runs on the drain goroutine when a materialized node's
// label cell changes. A node that was collapsed away between the enqueue and
// the drain is simply no longer mapped; that is the expected race, not an
// error.
func (b *Binding[I]) onLabelChanged(node tree.Node) {
	b.mu.Lock()
	defer b.mu.Unlock()
	item, ok := b.nodes[node]
	if !ok {
		return
	}
	b.view.SetText(item, node.Label().Get())
}

// onChildrenChanged runs on the drain goroutine when a materialized node
// reports that its children may have changed. An expanded item is rebuilt
// wholesale: children torn down, then materialized again from a fresh query.
// A collapsed item needs nothing; the next expand queries fresh anyway.
func (b *Binding[I]) onChildrenChanged(node tree.Node) {
	b.mu.Lock()
	defer b.mu.Unlock()
	item, ok := b.nodes[node]
	if !ok {
		return
	}
	rec := b.items[item]
	if rec == nil || !rec.expanded {
		return
	}
	b.collapseLocked(item)
	b.expandLocked(item)
}
