package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/listctl/internal/config"
)

// ErrConfigExists is returned by config init when the target file exists and
// --force was not given.
var ErrConfigExists = errors.New("configuration file already exists, use --force to overwrite")

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd(),
	)
	return cmd
}

// NewConfigInitCmd creates the config init command. Inside a project (a
// directory tree holding .listctl/, or --project) it writes the project
// overlay and a .gitignore; otherwise it writes ~/.listctl/config.yaml.
func NewConfigInitCmd() *cobra.Command {
	var (
		force   bool
		global  bool
		project bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values.

Inside a project that already has a .listctl directory, or with --project,
creates $PROJECT/.listctl/config.yaml with a .gitignore. Use --global to
write ~/.listctl/config.yaml even inside a project.`,
		Example: `  # Create the global configuration
  listctl config init

  # Start a project overlay in the current directory
  listctl config init --project

  # Overwrite an existing file
  listctl config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			projectDir := projectDirFromContext(cmd.Context())
			if project {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("resolving working directory: %w", err)
				}
				projectDir = filepath.Join(wd, config.DirName)
			}

			if projectDir != "" && !global {
				return initProjectConfig(cmd, projectDir, force)
			}
			return initGlobalConfig(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	cmd.Flags().BoolVar(&global, "global", false, "write the global configuration even inside a project")
	cmd.Flags().BoolVar(&project, "project", false, "create a project overlay in the current directory")
	cmd.MarkFlagsMutuallyExclusive("global", "project")

	return cmd
}

// initProjectConfig writes projectDir/config.yaml and a .gitignore beside it.
func initProjectConfig(cmd *cobra.Command, projectDir string, force bool) error {
	configPath := filepath.Join(projectDir, config.FileName)
	if err := checkWritable(configPath, force); err != nil {
		return err
	}

	if err := config.Save(config.New(), configPath); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	// Never overwrites an existing .gitignore.
	created, err := config.EnsureGitignore(projectDir, config.ProjectIgnores(configFromContext(cmd.Context()), projectDir)...)
	if err != nil {
		return fmt.Errorf("failed to create .gitignore: %w", err)
	}

	cmd.Printf("Configuration initialized at %s\n", configPath)
	if created {
		cmd.Printf("Created .gitignore to keep local logs out of version control\n")
	}
	return nil
}

// initGlobalConfig writes ~/.listctl/config.yaml.
func initGlobalConfig(cmd *cobra.Command, force bool) error {
	configPath, err := config.DefaultPath()
	if err != nil {
		return err
	}
	if err := checkWritable(configPath, force); err != nil {
		return err
	}

	if err := config.Save(config.New(), configPath); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", configPath)
	return nil
}

func checkWritable(path string, force bool) error {
	if force {
		return nil
	}
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return ErrConfigExists
	case os.IsNotExist(err):
		return nil
	default:
		return fmt.Errorf("cannot access config path %s: %w", path, err)
	}
}

// NewConfigShowCmd creates the config show command, which prints the
// effective configuration after file, project overlay and env are applied.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := yaml.Marshal(configFromContext(cmd.Context()))
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

// NewConfigValidateCmd creates the config validate command.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the effective configuration: the schema version, the listing
defaults (page size and its options, locale), logging and server settings.`,
		Example: `  # Validate current configuration
  listctl config validate

  # Validate and show detailed information
  listctl config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := configFromContext(cmd.Context())
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid\n")
	if verbose {
		printVerboseDetails(cmd, cfg)
	}
	return nil
}

func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Schema version: %s\n", cfg.SchemaVersion)
	cmd.Printf("  Page size: %s\n", cfg.Listing.PageSize)
	cmd.Printf("  Page size options: %v\n", cfg.Listing.PageSizeOptions)
	cmd.Printf("  Searchable: %t\n", cfg.Listing.Searchable)
	cmd.Printf("  Sortable: %t\n", cfg.Listing.Sortable)
	if len(cfg.Listing.UnsortableColumns) > 0 {
		cmd.Printf("  Unsortable columns: %v\n", cfg.Listing.UnsortableColumns)
	}
	cmd.Printf("  Locale: %s\n", cfg.Listing.Locale)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	if cfg.Logging.File != "" {
		cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	}
	cmd.Printf("  Server address: %s\n", cfg.Server.Addr)
}
