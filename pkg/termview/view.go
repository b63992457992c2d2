package termview

import "fmt"

// Item is the handle type for rows in a terminal tree. Handles are never
// reused within one Model.
type Item int

// row is the terminal-side state of one visual item.
type row struct {
	parent      Item
	children    []Item
	depth       int
	text        string
	hasChildren bool
	expanded    bool
}

// CreateRoot implements binding.View.
func (m *Model) CreateRoot(text string) Item {
	if m.hasRoot {
		panic("termview: CreateRoot called twice")
	}
	m.nextID++
	m.rootItem = m.nextID
	m.hasRoot = true
	m.rows[m.rootItem] = &row{parent: -1, text: text}
	return m.rootItem
}

// AppendChild implements binding.View.
func (m *Model) AppendChild(parent Item, text string) Item {
	p := m.rows[parent]
	if p == nil {
		panic(fmt.Sprintf("termview: AppendChild under unknown item %d", parent))
	}
	m.nextID++
	item := m.nextID
	m.rows[item] = &row{parent: parent, depth: p.depth + 1, text: text}
	p.children = append(p.children, item)
	return item
}

// DestroyItem implements binding.View. The binding destroys children before
// parents, so r.children is already empty here.
func (m *Model) DestroyItem(item Item) {
	r := m.rows[item]
	if r == nil {
		return
	}
	if p := m.rows[r.parent]; p != nil {
		for i, id := range p.children {
			if id == item {
				p.children = append(p.children[:i], p.children[i+1:]...)
				break
			}
		}
	}
	delete(m.rows, item)
}

// SetText implements binding.View.
func (m *Model) SetText(item Item, text string) {
	if r := m.rows[item]; r != nil {
		r.text = text
	}
}

// SetHasChildren implements binding.View.
func (m *Model) SetHasChildren(item Item, has bool) {
	if r := m.rows[item]; r != nil {
		r.hasChildren = has
	}
}

// IsExpanded implements binding.View.
func (m *Model) IsExpanded(item Item) bool {
	r := m.rows[item]
	return r != nil && r.expanded
}

// refreshVisible recomputes the flattened list of rows to draw: a depth-first
// walk from the root that descends only into expanded rows. The cursor is
// clamped so collapses and rebuilds can never leave it on a dead row.
func (m *Model) refreshVisible() {
	m.visible = m.visible[:0]
	if m.hasRoot {
		m.appendVisible(m.rootItem)
	}
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) appendVisible(item Item) {
	r := m.rows[item]
	if r == nil {
		return
	}
	m.visible = append(m.visible, item)
	if !r.expanded {
		return
	}
	for _, child := range r.children {
		m.appendVisible(child)
	}
}
