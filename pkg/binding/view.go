package binding

// View is the minimal surface a visual tree widget exposes to a Binding.
// I is the widget's item handle type; handles must be valid map keys.
//
// Every method is called on the designated goroutine, under the binding's
// lock. In return, the widget must deliver user expand and collapse events
// by calling Binding.HandleExpand and Binding.HandleCollapse on that same
// goroutine, and must never destroy items on its own: item lifecycle belongs
// to the Binding.
type View[I comparable] interface {
	// CreateRoot creates the root item with the given text. Called exactly
	// once per binding.
	CreateRoot(text string) I

	// AppendChild creates a new item with the given text as the last child
	// of parent.
	AppendChild(parent I, text string) I

	// DestroyItem removes item from the widget. The binding destroys
	// children before their parent, so item has no live children when this
	// is called.
	DestroyItem(item I)

	// SetText updates item's displayed text.
	SetText(item I, text string)

	// SetHasChildren controls item's expansion indicator. Set from the
	// node's Leaf result, never from the current child count, so an empty
	// branch stays expandable.
	SetHasChildren(item I, has bool)

	// IsExpanded reports whether item is currently shown expanded.
	IsExpanded(item I) bool
}

// Handler is the event surface a Binding exposes to its View. The concrete
// Binding[I] satisfies it; views hold this interface so they can be wired to
// a binding after construction.
type Handler[I comparable] interface {
	HandleExpand(item I)
	HandleCollapse(item I)
}
