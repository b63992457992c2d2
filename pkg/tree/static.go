package tree

import (
	"fmt"
	"sync"

	"github.com/go-drift/treeview/pkg/observe"
)

// Static is an in-memory Node whose children are held directly. A Static is
// either a leaf, which never has children, or a branch, whose children can
// be replaced at runtime with SetChildren. Safe for use from any goroutine.
type Static struct {
	label   *observe.Value[string]
	changed *observe.Observable[Node]
	leaf    bool

	mu       sync.Mutex
	children []Node
}

var _ Node = (*Static)(nil)

// NewLeaf creates a leaf node. Its Children are always empty and
// SetChildren on it fails.
func NewLeaf(sched *observe.Scheduler, label string) *Static {
	return &Static{
		label:   observe.NewValue(sched, label),
		changed: observe.NewObservable[Node](sched),
		leaf:    true,
	}
}

// NewBranch creates a branch node with the given initial children. A branch
// with no children is still a branch: it shows an expansion indicator and
// may gain children later.
func NewBranch(sched *observe.Scheduler, label string, children ...Node) *Static {
	return &Static{
		label:    observe.NewValue(sched, label),
		changed:  observe.NewObservable[Node](sched),
		children: append([]Node(nil), children...),
	}
}

// Label returns the node's label cell.
func (s *Static) Label() *observe.Value[string] {
	return s.label
}

// Leaf reports whether the node was created with NewLeaf.
func (s *Static) Leaf() bool {
	return s.leaf
}

// Children returns a snapshot of the current children.
func (s *Static) Children() ([]Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Node(nil), s.children...), nil
}

// ChildrenChanged returns the node's children-change source.
func (s *Static) ChildrenChanged() *observe.Observable[Node] {
	return s.changed
}

// SetChildren replaces the node's children and notifies observers. Fails on
// a leaf node, whose leaf-ness is fixed at construction.
func (s *Static) SetChildren(children ...Node) error {
	if s.leaf {
		return fmt.Errorf("tree: leaf node %q cannot take children", s.label.Get())
	}
	s.mu.Lock()
	s.children = append([]Node(nil), children...)
	s.mu.Unlock()
	s.changed.Notify(s)
	return nil
}
