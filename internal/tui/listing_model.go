package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/listctl/internal/listing"
	"github.com/rshade/listctl/internal/logging"
	listview "github.com/rshade/listctl/internal/tui/list"
)

const (
	defaultWidth  = 100
	defaultHeight = 24

	// chromeHeight is the number of lines around the row viewport: title,
	// search, header, summary, pagination strip, help and spacing.
	chromeHeight = 8

	searchCharLimit  = 256
	searchInputWidth = 40
)

// HostLoader loads the host shown by a loading model.
type HostLoader func(ctx context.Context) (*listing.Host, error)

type hostLoadedMsg struct {
	host *listing.Host
	err  error
}

// ListingModel is the Bubble Tea model over a listing.Controller.
type ListingModel struct {
	ctx   context.Context
	state ViewState

	ctrl *listing.Controller
	cfg  listing.Config
	view listing.View

	rows      *listview.Viewport[listing.Entry]
	layout    *rowLayout
	search    textinput.Model
	searching bool
	focusCol  int

	keys KeyMap
	help help.Model

	loading *LoadingState
	loadCmd tea.Cmd

	width  int
	height int

	err error
}

// NewListingModel wraps an attached controller.
func NewListingModel(ctx context.Context, ctrl *listing.Controller) ListingModel {
	m := newListingModel(ctx)
	m.attach(ctrl)
	return m
}

// NewListingModelWithLoading returns a model that shows a spinner until load
// returns, then attaches a controller built from cfg.
func NewListingModelWithLoading(ctx context.Context, load HostLoader, cfg listing.Config) ListingModel {
	m := newListingModel(ctx)
	m.state = ViewStateLoading
	m.cfg = cfg
	m.loading = NewLoadingState("Loading listing...")
	m.loadCmd = func() tea.Msg {
		host, err := load(ctx)
		return hostLoadedMsg{host: host, err: err}
	}
	return m
}

func newListingModel(ctx context.Context) ListingModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "type to filter..."
	ti.CharLimit = searchCharLimit
	ti.Width = searchInputWidth

	m := ListingModel{
		ctx:    ctx,
		state:  ViewStateList,
		search: ti,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		width:  defaultWidth,
		height: defaultHeight,
	}
	m.layout = &rowLayout{}
	m.rows = listview.New[listing.Entry](nil, m.rowsHeight(), m.layout.render)
	return m
}

func (m *ListingModel) attach(ctrl *listing.Controller) {
	m.ctrl = ctrl
	m.view = ctrl.View()
	m.search.SetValue(m.view.Term)
	m.layout.update(m.view)
	m.rows.SetItems(m.view.Rows)
	m.rows.SetCursor(0)
	m.state = ViewStateList
}

func (m ListingModel) rowsHeight() int {
	return m.height - chromeHeight
}

// Init starts loading when needed.
func (m ListingModel) Init() tea.Cmd {
	if m.state == ViewStateLoading {
		return tea.Batch(m.loading.Init(), m.loadCmd)
	}
	return nil
}

// Update handles messages and updates the model state.
func (m ListingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if winMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = winMsg.Width
		m.height = winMsg.Height
		m.help.Width = winMsg.Width
		_, cmd := m.rows.Update(tea.WindowSizeMsg{Width: winMsg.Width, Height: m.rowsHeight()})
		return m, cmd
	}

	if loaded, ok := msg.(hostLoadedMsg); ok {
		return m.handleLoaded(loaded)
	}

	switch m.state {
	case ViewStateLoading:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Quit) {
			m.state = ViewStateQuitting
			return m, tea.Quit
		}
		return m, m.loading.Update(msg)
	case ViewStateList:
		if m.searching {
			return m.handleSearchInput(msg)
		}
		return m.handleListUpdate(msg)
	case ViewStateQuitting, ViewStateError:
		return m, nil
	default:
		return m, nil
	}
}

func (m ListingModel) handleLoaded(msg hostLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.err = msg.err
		m.state = ViewStateError
		return m, tea.Quit
	}
	m.attach(listing.New(m.ctx, msg.host, m.cfg))
	return m, nil
}

func (m ListingModel) handleSearchInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			m.state = ViewStateQuitting
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Blur):
			m.searching = false
			m.search.Blur()
			return m, nil
		}
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if term := m.search.Value(); term != before {
		m.apply(m.ctrl.Filter(term))
	}
	return m, cmd
}

//nolint:gocyclo,cyclop // One case per binding.
func (m ListingModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.ctrl.Inert() {
		if ok && key.Matches(keyMsg, m.keys.Quit) {
			m.state = ViewStateQuitting
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.state = ViewStateQuitting
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Search):
		if !m.view.Searchable {
			return m, nil
		}
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(keyMsg, m.keys.Clear):
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.apply(m.ctrl.Filter(""))
		}
	case key.Matches(keyMsg, m.keys.Left):
		m.moveFocus(-1)
	case key.Matches(keyMsg, m.keys.Right):
		m.moveFocus(1)
	case key.Matches(keyMsg, m.keys.Sort):
		if m.view.Sortable {
			m.apply(m.ctrl.Sort(m.focusCol))
		}
	case key.Matches(keyMsg, m.keys.Up), key.Matches(keyMsg, m.keys.Down):
		_, cmd := m.rows.Update(keyMsg)
		return m, cmd
	case key.Matches(keyMsg, m.keys.NextPage):
		m.apply(m.ctrl.NextPage())
	case key.Matches(keyMsg, m.keys.PrevPage):
		m.apply(m.ctrl.PreviousPage())
	case key.Matches(keyMsg, m.keys.FirstPage):
		m.apply(m.ctrl.FirstPage())
	case key.Matches(keyMsg, m.keys.LastPage):
		m.apply(m.ctrl.LastPage())
	case key.Matches(keyMsg, m.keys.LargerPage):
		m.apply(m.ctrl.CyclePageSize(1))
	case key.Matches(keyMsg, m.keys.SmallerPage):
		m.apply(m.ctrl.CyclePageSize(-1))
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// apply reconciles the model against a new projection. The cursor returns
// to the top whenever the visible page changes.
func (m *ListingModel) apply(v listing.View) {
	pageChanged := v.Meta.CurrentPage != m.view.Meta.CurrentPage ||
		v.Meta.PageSize != m.view.Meta.PageSize ||
		v.Term != m.view.Term ||
		v.Sort != m.view.Sort
	m.view = v
	m.layout.update(v)
	m.rows.SetItems(v.Rows)
	if pageChanged {
		m.rows.SetCursor(0)
	}

	logging.FromContext(m.ctx).Debug().
		Str("component", "tui").
		Str("operation", "reconcile").
		Int("rows", len(v.Rows)).
		Int("page", v.Meta.CurrentPage).
		Msg("view updated")
}

func (m *ListingModel) moveFocus(delta int) {
	n := len(m.view.Columns)
	if n == 0 {
		return
	}
	m.focusCol += delta
	if m.focusCol < 0 {
		m.focusCol = 0
	}
	if m.focusCol >= n {
		m.focusCol = n - 1
	}
}

// State returns the current view state.
func (m ListingModel) State() ViewState {
	return m.state
}

// Err returns the load error, if any.
func (m ListingModel) Err() error {
	return m.err
}

// Listing returns the current projection.
func (m ListingModel) Listing() listing.View {
	return m.view
}

// FocusedColumn returns the column the sort key acts on.
func (m ListingModel) FocusedColumn() int {
	return m.focusCol
}

// Searching reports whether the search input has focus.
func (m ListingModel) Searching() bool {
	return m.searching
}

// Cursor returns the row cursor within the current page.
func (m ListingModel) Cursor() int {
	return m.rows.Cursor()
}
