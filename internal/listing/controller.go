package listing

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/message"

	"github.com/rshade/listctl/internal/logging"
	"github.com/rshade/listctl/internal/pagination"
)

// Controller drives one listing display. Every mutating method applies an
// intent and returns the re-projected View.
//
// A Controller built without a host is inert: it logs once at construction
// and afterwards every method is a no-op returning the zero View.
type Controller struct {
	host    *Host
	cfg     Config
	reducer *Reducer
	printer *message.Printer
	logger  zerolog.Logger

	state State
	view  View
	inert bool
}

// New attaches a controller to host. A nil host (the host element was not
// found) yields an inert controller rather than an error.
func New(ctx context.Context, host *Host, cfg Config) *Controller {
	logger := logging.ComponentLogger(*logging.FromContext(ctx), "listing")

	if host == nil {
		logger.Error().Ctx(ctx).
			Str("operation", "attach").
			Msg("host element not found, listing controller disabled")
		return &Controller{logger: logger, inert: true}
	}

	cfg, replaced := cfg.normalized()
	if len(replaced) > 0 {
		logger.Warn().Ctx(ctx).
			Str("operation", "attach").
			Strs("replaced", replaced).
			Msg("invalid listing settings replaced with defaults")
	}

	// normalized guarantees a parseable locale.
	tag, _ := cfg.LanguageTag()

	c := &Controller{
		host:    host,
		cfg:     cfg,
		reducer: NewReducer(host, cfg),
		printer: message.NewPrinter(tag),
		logger:  logger.With().Str("host", host.ID).Logger(),
	}
	c.state = c.reducer.Initial(cfg.PageSize)
	c.view = c.project()

	c.logger.Debug().Ctx(ctx).
		Str("operation", "attach").
		Int("entries", host.Len()).
		Int("columns", len(host.Columns)).
		Msg("listing controller attached")

	return c
}

// Inert reports whether the controller has no host.
func (c *Controller) Inert() bool {
	return c.inert
}

// Host returns the captured listing, or nil when inert.
func (c *Controller) Host() *Host {
	return c.host
}

// Config returns the effective configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state.clone()
}

// View returns the most recent projection.
func (c *Controller) View() View {
	return c.view
}

// Dispatch applies in and re-projects. Disallowed intents are logged at
// debug level and leave the view unchanged.
func (c *Controller) Dispatch(in Intent) View {
	if c.inert {
		return View{}
	}
	if !c.reducer.Allowed(in) {
		c.logger.Debug().
			Str("operation", in.Kind.String()).
			Str("intent", in.String()).
			Msg("intent ignored")
		return c.view
	}

	c.state = c.reducer.Reduce(c.state, in)
	c.view = c.project()

	c.logger.Debug().
		Str("operation", in.Kind.String()).
		Str("intent", in.String()).
		Int("matches", len(c.state.View)).
		Int("page", c.view.Meta.CurrentPage).
		Int("pages", c.view.Meta.TotalPages).
		Msg("intent applied")

	return c.view
}

// Filter keeps entries containing term.
func (c *Controller) Filter(term string) View {
	return c.Dispatch(Filter(term))
}

// Sort orders by column, toggling direction when it is already active.
func (c *Controller) Sort(column int) View {
	return c.Dispatch(Sort(column))
}

// SetPageSize changes the page size.
func (c *Controller) SetPageSize(size pagination.PageSize) View {
	return c.Dispatch(SetPageSize(size))
}

// GoToPage moves to page n, clamped to the available pages.
func (c *Controller) GoToPage(n int) View {
	return c.Dispatch(GoToPage(n))
}

// NextPage moves forward one page.
func (c *Controller) NextPage() View {
	return c.GoToPage(c.view.Meta.CurrentPage + 1)
}

// PreviousPage moves back one page.
func (c *Controller) PreviousPage() View {
	return c.GoToPage(c.view.Meta.CurrentPage - 1)
}

// FirstPage moves to page 1.
func (c *Controller) FirstPage() View {
	return c.GoToPage(pagination.MinPage)
}

// LastPage moves to the final page.
func (c *Controller) LastPage() View {
	return c.GoToPage(c.view.Meta.TotalPages)
}

// Activate performs the navigation a pagination control stands for.
// Ellipses, the active page and disabled controls do nothing.
func (c *Controller) Activate(ctl pagination.Control) View {
	if !ctl.Clickable() {
		return c.view
	}
	return c.GoToPage(ctl.Page)
}

// CyclePageSize steps through the configured page-size options by delta,
// wrapping at either end. A current size that is not among the options
// starts from the first (delta > 0) or last (delta < 0) option.
func (c *Controller) CyclePageSize(delta int) View {
	if c.inert || delta == 0 {
		return c.view
	}
	options := c.cfg.PageSizeOptions
	n := len(options)
	pos := pagination.IndexOf(options, c.state.PageSize)

	var next int
	switch {
	case pos < 0 && delta > 0:
		next = 0
	case pos < 0:
		next = n - 1
	default:
		next = ((pos+delta)%n + n) % n
	}
	return c.SetPageSize(options[next])
}

// ColumnIndex returns the index of the column titled title (ignoring case),
// or -1.
func (c *Controller) ColumnIndex(title string) int {
	if c.inert {
		return -1
	}
	for i, col := range c.host.Columns {
		if strings.EqualFold(col.Title, strings.TrimSpace(title)) {
			return i
		}
	}
	return -1
}

func (c *Controller) project() View {
	return Project(c.host, c.state, c.cfg, c.printer)
}
