package cli

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/listctl/internal/config"
	"github.com/rshade/listctl/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

type (
	configKey     struct{}
	projectDirKey struct{}
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	projectDir string
	debug      bool
	logLevel   string
}

const rootCmdExample = `  # Browse a table interactively
  listctl view report.html --host users

  # Print the second page of a CSV file sorted by the Name column
  listctl render people.csv --sort Name --page 2

  # Emit the matching rows of a SQLite table as NDJSON
  listctl render app.db --host orders --filter pending --output ndjson

  # Serve a listing over HTTP
  listctl serve report.html --addr :9000`

// NewRootCmd creates the root Cobra command for the listctl CLI.
// Configuration is loaded and logging is set up before any subcommand runs;
// both are carried to subcommands through the command context.
func NewRootCmd(ver string) *cobra.Command {
	var (
		opts      rootOptions
		logResult *logging.LogPathResult
	)

	cmd := &cobra.Command{
		Use:     "listctl",
		Short:   "Sort, filter and paginate tabular listings",
		Long:    "listctl attaches search, column sorting and pagination to an existing table (HTML, CSV or SQLite)",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			wd, _ := os.Getwd()
			projectDir := config.ResolveProjectDir(ctx, opts.projectDir, wd)

			cfg, err := config.Load(ctx, opts.configPath, projectDir)
			if err != nil {
				return err
			}

			ctx = context.WithValue(ctx, configKey{}, cfg)
			ctx = context.WithValue(ctx, projectDirKey{}, projectDir)
			cmd.SetContext(ctx)

			logResult = setupLogging(cmd, cfg, opts)
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			cleanupLogging(logResult)
			return nil
		},
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file (default $HOME/.listctl/config.yaml)")
	pf.StringVar(&opts.projectDir, "project-dir", "", "project .listctl directory holding a config overlay")
	pf.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")

	cmd.AddCommand(
		NewViewCmd(),
		NewRenderCmd(),
		NewServeCmd(),
		newConfigCmd(),
	)

	return cmd
}

// configFromContext returns the configuration loaded by the root command, or
// defaults when a subcommand is run without it.
func configFromContext(ctx context.Context) *config.Config {
	if ctx != nil {
		if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok && cfg != nil {
			return cfg
		}
	}
	return config.New()
}

func projectDirFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	dir, _ := ctx.Value(projectDirKey{}).(string)
	return dir
}
