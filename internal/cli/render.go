package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/listctl/internal/listing"
	"github.com/rshade/listctl/internal/pagination"
	"github.com/rshade/listctl/internal/tui"
)

// Output formats accepted by --output.
const (
	OutputTable  = "table"
	OutputJSON   = "json"
	OutputNDJSON = "ndjson"
)

const defaultTerminalWidth = 100

var (
	// ErrUnknownColumn is returned when --sort names no column.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrUnsupportedOutput is returned for an --output value that is not
	// table, json or ndjson.
	ErrUnsupportedOutput = errors.New("unsupported output format")
)

// renderOptions are the one-shot projection flags.
type renderOptions struct {
	source   sourceFlags
	filter   string
	sort     string
	desc     bool
	page     int
	pageSize string
	output   string
	plain    bool
	noColor  bool
}

// NewRenderCmd creates the render command, which applies a filter, sort and
// page to a host and prints the resulting view once.
func NewRenderCmd() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render <source>",
		Short: "Print one page of a listing",
		Long: `Loads a table from an HTML, CSV or SQLite file, applies the requested
filter, sort and page, and prints the visible rows with the summary and
pagination strip.`,
		Example: `  # First page, default page size
  listctl render people.csv

  # Rows matching "smith", sorted by Age descending, third page of 5
  listctl render people.csv --filter smith --sort Age:desc --page 3 --page-size 5

  # The whole view as JSON
  listctl render report.html --host users --page-size All --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], opts)
		},
	}

	opts.source.register(cmd)
	opts.registerProjection(cmd)

	return cmd
}

func (o *renderOptions) registerProjection(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&o.filter, "filter", "", "search term; rows containing it in any column are kept")
	fl.StringVar(&o.sort, "sort", "", "column to sort by: title or zero-based index, optionally suffixed with :asc or :desc")
	fl.BoolVar(&o.desc, "desc", false, "sort descending")
	fl.IntVar(&o.page, "page", 1, "page to show (clamped to the last page)")
	fl.StringVar(&o.pageSize, "page-size", "", "rows per page, or All")
	fl.StringVarP(&o.output, "output", "o", OutputTable, "output format: table, json or ndjson")
	fl.BoolVar(&o.plain, "plain", false, "plain text output without styling")
	fl.BoolVar(&o.noColor, "no-color", false, "disable colors")
}

func runRender(cmd *cobra.Command, path string, opts renderOptions) error {
	ctx := cmd.Context()

	if err := validateOutput(opts.output); err != nil {
		return err
	}

	ctrl, err := opts.source.open(ctx, path)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	intents, err := opts.intents(ctrl)
	if err != nil {
		return err
	}

	v := ctrl.View()
	for _, in := range intents {
		v = ctrl.Dispatch(in)
	}

	logger.Debug().Ctx(ctx).
		Str("operation", "render").
		Str("host", v.HostID).
		Int("total_items", v.Meta.TotalItems).
		Int("page", v.Meta.CurrentPage).
		Msg("view projected")

	return writeView(cmd.OutOrStdout(), v, opts)
}

// intents translates the flags into the actions a user would have taken.
func (o renderOptions) intents(ctrl *listing.Controller) ([]listing.Intent, error) {
	var intents []listing.Intent

	if o.filter != "" {
		intents = append(intents, listing.Filter(o.filter))
	}

	if o.sort != "" {
		field, desc, err := parseSort(o.sort)
		if err != nil {
			return nil, err
		}
		col, err := resolveColumn(ctrl, field)
		if err != nil {
			return nil, err
		}
		intents = append(intents, listing.Sort(col))
		if desc || o.desc {
			intents = append(intents, listing.Sort(col))
		}
	}

	if o.pageSize != "" {
		size, err := pagination.ParsePageSize(o.pageSize)
		if err != nil {
			return nil, fmt.Errorf("--page-size: %w", err)
		}
		intents = append(intents, listing.SetPageSize(size))
	}

	if o.page > 1 {
		intents = append(intents, listing.GoToPage(o.page))
	}

	return intents, nil
}

// resolveColumn accepts a column title or a zero-based index.
func resolveColumn(ctrl *listing.Controller, s string) (int, error) {
	if i := ctrl.ColumnIndex(s); i >= 0 {
		return i, nil
	}
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && n >= 0 && n < len(ctrl.Host().Columns) {
		return n, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColumn, s)
}

func validateOutput(format string) error {
	switch format {
	case OutputTable, OutputJSON, OutputNDJSON:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedOutput, format)
	}
}

// writeView renders v in the requested format. Table output is styled only
// when the terminal supports it.
func writeView(w io.Writer, v listing.View, opts renderOptions) error {
	switch opts.output {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case OutputNDJSON:
		return writeNDJSON(w, v)
	}

	mode := tui.DetectOutputMode(false, opts.noColor, opts.plain)
	if mode == tui.OutputModePlain {
		return tui.RenderPlain(w, v)
	}
	return tui.RenderStyled(w, v, tui.TerminalWidth(defaultTerminalWidth))
}

// writeNDJSON emits one object per visible row keyed by column title.
func writeNDJSON(w io.Writer, v listing.View) error {
	enc := json.NewEncoder(w)
	for _, row := range v.Rows {
		obj := make(map[string]string, len(v.Columns))
		for _, col := range v.Columns {
			obj[col.Title] = row.Field(col.Index)
		}
		if err := enc.Encode(obj); err != nil {
			return fmt.Errorf("encoding row %d: %w", row.Index, err)
		}
	}
	return nil
}
