package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/listctl/internal/listing"
	"github.com/rshade/listctl/internal/source"
	"github.com/rshade/listctl/internal/tui"
)

// NewViewCmd creates the view command, the interactive listing browser.
// When stdout or stdin is not a terminal it prints the first page instead.
func NewViewCmd() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "view <source>",
		Short: "Browse a listing interactively",
		Long: `Opens a table from an HTML, CSV or SQLite file in an interactive terminal
view with search, column sorting and pagination.

Press / to search, left/right to pick a column, s to sort it, n/p to change
page and +/- to change the page size. Press ? for all key bindings.`,
		Example: `  # Browse the users table of a saved page
  listctl view report.html --host users

  # Browse a SQLite query result without search
  listctl view app.db --query "select * from orders where total > 100" --no-search`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, args[0], opts)
		},
	}

	opts.source.register(cmd)
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print the first page as plain text instead of opening the browser")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colors")

	return cmd
}

func runView(cmd *cobra.Command, path string, opts renderOptions) error {
	ctx := cmd.Context()

	mode := tui.DetectOutputMode(false, opts.noColor, opts.plain)
	if mode != tui.OutputModeInteractive {
		logger.Debug().Ctx(ctx).
			Str("operation", "view").
			Str("mode", mode.String()).
			Msg("not a terminal, rendering once")
		opts.output = OutputTable
		return runRender(cmd, path, opts)
	}

	cfg := configFromContext(ctx)
	spec := opts.source.spec(cfg, path)
	load := func(ctx context.Context) (*listing.Host, error) {
		return source.Open(ctx, spec)
	}

	return runInteractiveTUI(ctx, tui.NewListingModelWithLoading(ctx, load, opts.source.listingConfig(cfg)))
}

func runInteractiveTUI(ctx context.Context, model tui.ListingModel) error {
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}
	if m, ok := final.(tui.ListingModel); ok && m.Err() != nil {
		return fmt.Errorf("loading listing: %w", m.Err())
	}
	return nil
}
