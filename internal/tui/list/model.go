package listview

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc renders one row. selected is true for the cursor row.
type RenderFunc[T any] func(item T, selected bool) string

// KeyMap holds the cursor bindings a Viewport handles itself.
type KeyMap struct {
	Up   key.Binding
	Down key.Binding
}

// DefaultKeyMap binds arrows and vim-style j/k.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k")),
		Down: key.NewBinding(key.WithKeys("down", "j")),
	}
}

// Viewport is a Bubble Tea component: a cursor over a slice of items that
// renders at most height rows around the cursor.
type Viewport[T any] struct {
	items      []T
	renderFunc RenderFunc[T]
	keys       KeyMap

	cursor int

	// offset is the first rendered item index.
	offset int

	height int
}

// New creates a viewport over items. A height below 1 is treated as 1.
func New[T any](items []T, height int, renderFunc RenderFunc[T]) *Viewport[T] {
	v := &Viewport[T]{
		items:      items,
		renderFunc: renderFunc,
		keys:       DefaultKeyMap(),
	}
	v.SetHeight(height)
	return v
}

// Init implements tea.Model.
func (v *Viewport[T]) Init() tea.Cmd {
	return nil
}

// Update moves the cursor on its key bindings and takes its height from
// window size messages. The parent sends the height left for rows.
func (v *Viewport[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Up):
			v.MoveBy(-1)
		case key.Matches(msg, v.keys.Down):
			v.MoveBy(1)
		}
	case tea.WindowSizeMsg:
		v.SetHeight(msg.Height)
	}
	return v, nil
}

// SetItems replaces the items, clamping the cursor into range.
func (v *Viewport[T]) SetItems(items []T) {
	v.items = items
	v.SetCursor(v.cursor)
}

// SetHeight changes how many rows fit.
func (v *Viewport[T]) SetHeight(height int) {
	if height < 1 {
		height = 1
	}
	v.height = height
	v.scroll()
}

// SetCursor moves the cursor to index, clamped to the items.
func (v *Viewport[T]) SetCursor(index int) {
	switch {
	case len(v.items) == 0, index < 0:
		v.cursor = 0
	case index >= len(v.items):
		v.cursor = len(v.items) - 1
	default:
		v.cursor = index
	}
	v.scroll()
}

// MoveBy moves the cursor by delta rows.
func (v *Viewport[T]) MoveBy(delta int) {
	v.SetCursor(v.cursor + delta)
}

// scroll adjusts offset so the cursor row is inside the window.
func (v *Viewport[T]) scroll() {
	if v.cursor < v.offset {
		v.offset = v.cursor
	}
	if v.cursor >= v.offset+v.height {
		v.offset = v.cursor - v.height + 1
	}
	maxOffset := len(v.items) - v.height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.offset > maxOffset {
		v.offset = maxOffset
	}
	if v.offset < 0 {
		v.offset = 0
	}
}

// View renders the rows inside the window, one per line.
func (v *Viewport[T]) View() string {
	from, to := v.Window()
	if from == to {
		return ""
	}

	var b strings.Builder
	for i := from; i < to; i++ {
		if i > from {
			b.WriteByte('\n')
		}
		b.WriteString(v.renderFunc(v.items[i], i == v.cursor))
	}
	return b.String()
}

// Window returns the rendered item range [from, to).
func (v *Viewport[T]) Window() (int, int) {
	to := v.offset + v.height
	if to > len(v.items) {
		to = len(v.items)
	}
	return v.offset, to
}

// Len returns the number of items.
func (v *Viewport[T]) Len() int {
	return len(v.items)
}

// Cursor returns the cursor index.
func (v *Viewport[T]) Cursor() int {
	return v.cursor
}

// Height returns the viewport height.
func (v *Viewport[T]) Height() int {
	return v.height
}

// Selected returns the item under the cursor, or nil when empty.
func (v *Viewport[T]) Selected() *T {
	if len(v.items) == 0 {
		return nil
	}
	return &v.items[v.cursor]
}
