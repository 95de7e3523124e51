// Package config loads listctl settings: a YAML file in the user's home
// directory, an optional project overlay, then environment overrides.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/rshade/listctl/internal/listing"
	"github.com/rshade/listctl/internal/logging"
	"github.com/rshade/listctl/internal/pagination"
)

// Directory and file names.
const (
	DirName  = ".listctl"
	FileName = "config.yaml"

	// CurrentSchemaVersion is written by Save.
	CurrentSchemaVersion = "1.0.0"

	// SupportedSchemaVersions is the semver constraint schema_version must meet.
	SupportedSchemaVersions = ">= 1.0.0, < 2.0.0"

	// DefaultAddr is the serve command's listen address.
	DefaultAddr = ":8080"
)

// Environment variables.
const (
	EnvConfig     = "LISTCTL_CONFIG"
	EnvLogLevel   = "LISTCTL_LOG_LEVEL"
	EnvLogFormat  = "LISTCTL_LOG_FORMAT"
	EnvProjectDir = "LISTCTL_PROJECT_DIR"
)

var (
	// ErrInvalidConfig is returned when a setting is unusable.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrUnsupportedSchema is returned when schema_version is outside
	// SupportedSchemaVersions.
	ErrUnsupportedSchema = errors.New("unsupported config schema version")
)

// Config is the whole settings file.
type Config struct {
	SchemaVersion string        `yaml:"schema_version"`
	Listing       ListingConfig `yaml:"listing"`
	Logging       LoggingConfig `yaml:"logging"`
	Server        ServerConfig  `yaml:"server"`
}

// ListingConfig holds controller defaults.
type ListingConfig struct {
	PageSize          pagination.PageSize   `yaml:"page_size"`
	PageSizeOptions   []pagination.PageSize `yaml:"page_size_options"`
	Searchable        bool                  `yaml:"searchable"`
	Sortable          bool                  `yaml:"sortable"`
	UnsortableColumns []string              `yaml:"unsortable_columns,omitempty"`
	Locale            string                `yaml:"locale"`
}

// ServerConfig holds the serve command's settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// New returns the built-in defaults.
func New() *Config {
	return &Config{
		SchemaVersion: CurrentSchemaVersion,
		Listing:       defaultListing(),
		Logging:       defaultLogging(),
		Server:        ServerConfig{Addr: DefaultAddr},
	}
}

func defaultListing() ListingConfig {
	def := listing.DefaultConfig()
	return ListingConfig{
		PageSize:        def.PageSize,
		PageSizeOptions: def.PageSizeOptions,
		Searchable:      def.Searchable,
		Sortable:        def.Sortable,
		Locale:          def.Locale,
	}
}

// DefaultPath returns ~/.listctl/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, DirName, FileName), nil
}

// Load builds the effective configuration.
//
// The base file is path when set, else $LISTCTL_CONFIG, else DefaultPath. An
// explicitly named file must exist; a missing default file means defaults.
// When projectDir is non-empty its config.yaml is shallow-merged on top.
// Environment overrides are applied last and the result is validated.
func Load(ctx context.Context, path, projectDir string) (*Config, error) {
	log := logging.FromContext(ctx)
	cfg := New()

	explicit := path != ""
	if !explicit {
		if env := os.Getenv(EnvConfig); env != "" {
			path, explicit = env, true
		}
	}
	if !explicit {
		def, err := DefaultPath()
		if err != nil {
			log.Debug().Ctx(ctx).
				Str("component", "config").
				Err(err).
				Msg("no home directory, using defaults")
		}
		path = def
	}

	if path != "" {
		err := loadFile(cfg, path)
		switch {
		case err == nil:
			log.Debug().Ctx(ctx).
				Str("component", "config").
				Str("operation", "load").
				Str("path", path).
				Msg("config file loaded")
		case errors.Is(err, os.ErrNotExist) && !explicit:
			log.Debug().Ctx(ctx).
				Str("component", "config").
				Str("path", path).
				Msg("no config file, using defaults")
		default:
			return nil, err
		}
	}

	if projectDir != "" {
		overlay := filepath.Join(projectDir, FileName)
		if _, err := os.Stat(overlay); err == nil {
			if err := ShallowMergeYAML(cfg, overlay); err != nil {
				return nil, err
			}
			log.Debug().Ctx(ctx).
				Str("component", "config").
				Str("operation", "merge_project_config").
				Str("overlay_path", overlay).
				Msg("project config merged")
		}
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv applies LISTCTL_LOG_LEVEL and LISTCTL_LOG_FORMAT.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
}

// Validate checks the schema version and every section.
func (c *Config) Validate() error {
	if err := checkSchemaVersion(c.SchemaVersion); err != nil {
		return err
	}
	if err := c.ToListingConfig().Validate(); err != nil {
		return fmt.Errorf("%w: listing: %w", ErrInvalidConfig, err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("%w: logging: %w", ErrInvalidConfig, err)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: server: empty addr", ErrInvalidConfig)
	}
	return nil
}

func checkSchemaVersion(raw string) error {
	if raw == "" {
		return nil
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedSchema, raw, err)
	}
	constraint, err := semver.NewConstraint(SupportedSchemaVersions)
	if err != nil {
		return fmt.Errorf("parsing schema constraint: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedSchema, v, SupportedSchemaVersions)
	}
	return nil
}

// ToListingConfig converts the listing section to a controller config.
func (c *Config) ToListingConfig() listing.Config {
	return listing.Config{
		PageSize:        c.Listing.PageSize,
		PageSizeOptions: append([]pagination.PageSize(nil), c.Listing.PageSizeOptions...),
		Searchable:      c.Listing.Searchable,
		Sortable:        c.Listing.Sortable,
		Locale:          c.Listing.Locale,
	}
}

// Save writes cfg to path as YAML, creating the directory.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}
