package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rshade/listctl/internal/config"
	"github.com/rshade/listctl/internal/listing"
	"github.com/rshade/listctl/internal/source"
)

// sourceFlags are the flags every command that opens a host accepts.
type sourceFlags struct {
	host      string
	query     string
	noSort    []string
	noSearch  bool
	noSorting bool
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.host, "host", "", "host identifier: HTML table id or SQLite table name")
	fl.StringVar(&f.query, "query", "", "SQL query to run instead of reading a whole SQLite table")
	fl.StringSliceVar(&f.noSort, "no-sort", nil, "column titles that cannot be sorted (repeatable)")
	fl.BoolVar(&f.noSearch, "no-search", false, "disable the search box")
	fl.BoolVar(&f.noSorting, "no-sorting", false, "disable column sorting")
}

// spec describes the host at path, merging configured and flagged
// unsortable columns.
func (f *sourceFlags) spec(cfg *config.Config, path string) source.Spec {
	unsortable := make([]string, 0, len(cfg.Listing.UnsortableColumns)+len(f.noSort))
	unsortable = append(unsortable, cfg.Listing.UnsortableColumns...)
	unsortable = append(unsortable, f.noSort...)

	return source.Spec{
		Path:       path,
		HostID:     f.host,
		Query:      f.query,
		Unsortable: unsortable,
	}
}

// listingConfig is the controller configuration with flag overrides applied.
func (f *sourceFlags) listingConfig(cfg *config.Config) listing.Config {
	lc := cfg.ToListingConfig()
	if f.noSearch {
		lc.Searchable = false
	}
	if f.noSorting {
		lc.Sortable = false
	}
	return lc
}

// open loads the host and builds a controller over it.
func (f *sourceFlags) open(ctx context.Context, path string) (*listing.Controller, error) {
	cfg := configFromContext(ctx)
	host, err := source.Open(ctx, f.spec(cfg, path))
	if err != nil {
		return nil, err
	}
	return listing.New(ctx, host, f.listingConfig(cfg)), nil
}
