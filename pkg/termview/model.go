package termview

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/treeview/pkg/binding"
	"github.com/go-drift/treeview/pkg/observe"
	"github.com/go-drift/treeview/pkg/tree"
)

// drainMsg carries a scheduler drain into the event loop. Handling it in
// Update is what makes the bubbletea goroutine the designated execution
// context for model notifications.
type drainMsg struct {
	drain func()
}

// Styles configures the rendered output.
type Styles struct {
	Title    lipgloss.Style
	Selected lipgloss.Style
	Marker   lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the styles used when none are supplied.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Selected: lipgloss.NewStyle().Reverse(true),
		Marker:   lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true).Padding(0, 1),
	}
}

// Option configures a Model.
type Option func(*Model)

// WithTitle sets the line rendered above the tree.
func WithTitle(title string) Option {
	return func(m *Model) { m.title = title }
}

// WithStyles overrides the default styles.
func WithStyles(styles Styles) Option {
	return func(m *Model) { m.styles = styles }
}

// Model is a terminal tree widget bound to a domain tree. Create one with
// New and either hand it to your own tea.Program or call Run. All methods
// except Run must be called on the event loop goroutine.
type Model struct {
	sched  *observe.Scheduler
	events binding.Handler[Item]
	bd     *binding.Binding[Item]

	rows     map[Item]*row
	rootItem Item
	hasRoot  bool
	nextID   Item

	visible []Item
	cursor  int

	vp     viewport.Model
	ready  bool
	width  int
	height int

	title  string
	styles Styles
}

// New binds root to a fresh terminal tree. The scheduler must be the one the
// tree's nodes were built with; Run (or a manual SetPost) connects it to the
// event loop.
func New(sched *observe.Scheduler, root tree.Node, opts ...Option) *Model {
	m := &Model{
		sched:  sched,
		rows:   make(map[Item]*row),
		styles: DefaultStyles(),
		title:  "treeview",
	}
	for _, opt := range opts {
		opt(m)
	}
	m.bd = binding.Bind[Item](m, root)
	m.events = m.bd
	m.refreshVisible()
	return m
}

// Binding returns the underlying binding, for callers that want to inspect
// the node mapped to a row.
func (m *Model) Binding() *binding.Binding[Item] {
	return m.bd
}

// Run starts a bubbletea program for the model, wiring the scheduler's
// drains into its event loop, and blocks until the user quits. Mutations
// that landed between New and Run are delivered once the loop starts. The
// binding is closed and the scheduler detached before Run returns.
func (m *Model) Run() error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	m.sched.SetPost(asyncPost(p.Send))
	defer func() {
		m.sched.SetPost(nil)
		m.bd.Close()
	}()
	_, err := p.Run()
	return err
}

// asyncPost adapts a program's Send into a scheduler post hook. The send
// runs on its own goroutine: Program.Send blocks until the event loop is
// running, and SetPost flushes held notifications the moment the hook is
// installed, before Run has started the loop. The scheduler posts at most
// once per idle-to-pending transition, so sends never reorder.
func asyncPost(send func(tea.Msg)) func(drain func()) {
	return func(drain func()) {
		go send(drainMsg{drain: drain})
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case drainMsg:
		msg.drain()
		m.refreshVisible()
		m.syncViewport()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		body := msg.Height - 2 // title and help lines
		if body < 1 {
			body = 1
		}
		if !m.ready {
			m.vp = viewport.New(msg.Width, body)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = body
		}
		m.syncViewport()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			m.moveCursor(-1)
		case "down", "j":
			m.moveCursor(1)
		case "right", "l", "enter", " ":
			m.expandSelected()
		case "left", "h":
			m.collapseSelected()
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = len(m.visible) - 1
			if m.cursor < 0 {
				m.cursor = 0
			}
		}
		m.syncViewport()
		return m, nil
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return m.styles.Title.Render(m.title)
	}
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("↑/↓ move · →/enter expand · ← collapse · q quit"))
	return b.String()
}

func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= len(m.visible) {
		return
	}
	m.cursor = next
}

// expandSelected asks the binding to materialize the selected row's
// children. Toggles on a row that is already expanded. The row's expansion
// marker follows the binding's state, so a failed Children query leaves the
// row collapsed.
func (m *Model) expandSelected() {
	item, r := m.selected()
	if r == nil || !r.hasChildren {
		return
	}
	if r.expanded {
		m.collapseSelected()
		return
	}
	m.events.HandleExpand(item)
	r.expanded = m.bd.Expanded(item)
	m.refreshVisible()
}

// collapseSelected collapses the selected row, or moves the cursor to the
// parent when the row has nothing to collapse.
func (m *Model) collapseSelected() {
	item, r := m.selected()
	if r == nil {
		return
	}
	if !r.expanded {
		m.cursorToParent(r)
		return
	}
	m.events.HandleCollapse(item)
	r.expanded = false
	m.refreshVisible()
}

func (m *Model) cursorToParent(r *row) {
	if r.parent < 0 {
		return
	}
	for i, item := range m.visible {
		if item == r.parent {
			m.cursor = i
			return
		}
	}
}

func (m *Model) selected() (Item, *row) {
	if m.cursor >= len(m.visible) {
		return 0, nil
	}
	item := m.visible[m.cursor]
	return item, m.rows[item]
}

// syncViewport re-renders the visible rows and keeps the cursor in view.
func (m *Model) syncViewport() {
	if !m.ready {
		return
	}
	m.vp.SetContent(m.renderRows())
	if m.cursor < m.vp.YOffset {
		m.vp.SetYOffset(m.cursor)
	} else if m.cursor >= m.vp.YOffset+m.vp.Height {
		m.vp.SetYOffset(m.cursor - m.vp.Height + 1)
	}
}

func (m *Model) renderRows() string {
	lines := make([]string, 0, len(m.visible))
	for i, item := range m.visible {
		lines = append(lines, m.renderRow(item, i == m.cursor))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderRow(item Item, selected bool) string {
	r := m.rows[item]
	if r == nil {
		return ""
	}
	marker := "  "
	switch {
	case r.hasChildren && r.expanded:
		marker = "▾ "
	case r.hasChildren:
		marker = "▸ "
	}
	line := strings.Repeat("  ", r.depth) + m.styles.Marker.Render(marker) + r.text
	if selected {
		return m.styles.Selected.Render(line)
	}
	return line
}
