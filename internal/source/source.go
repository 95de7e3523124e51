package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rshade/listctl/internal/listing"
	"github.com/rshade/listctl/internal/logging"
)

var (
	// ErrHostNotFound is returned when the requested host element does not exist.
	ErrHostNotFound = errors.New("host element not found")

	// ErrUnsupportedSource is returned for a file type no loader handles.
	ErrUnsupportedSource = errors.New("unsupported source")
)

// Kind identifies a loader.
type Kind string

// Supported source kinds.
const (
	KindHTML   Kind = "html"
	KindCSV    Kind = "csv"
	KindSQLite Kind = "sqlite"
)

// Spec describes where a host lives.
type Spec struct {
	// Path is the file to read.
	Path string

	// HostID is the table id for HTML, the table name for SQLite, and the
	// host id reported for CSV. Optional for HTML (first table) and CSV (file
	// base name).
	HostID string

	// Query overrides HostID for SQLite sources.
	Query string

	// Unsortable lists column titles to mark unsortable after loading.
	Unsortable []string
}

// DetectKind maps a file extension to a loader.
func DetectKind(path string) (Kind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return KindHTML, nil
	case ".csv":
		return KindCSV, nil
	case ".db", ".sqlite", ".sqlite3":
		return KindSQLite, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedSource, filepath.Base(path))
	}
}

// Open loads the host described by spec, choosing a loader by extension.
func Open(ctx context.Context, spec Spec) (*listing.Host, error) {
	log := logging.FromContext(ctx)

	kind, err := DetectKind(spec.Path)
	if err != nil {
		return nil, err
	}

	log.Debug().Ctx(ctx).
		Str("component", "source").
		Str("operation", "open").
		Str("kind", string(kind)).
		Str("path", spec.Path).
		Str("host", spec.HostID).
		Msg("loading host")

	var host *listing.Host
	switch kind {
	case KindHTML:
		host, err = openFile(spec.Path, func(f *os.File) (*listing.Host, error) {
			return LoadHTML(f, spec.HostID)
		})
	case KindCSV:
		id := spec.HostID
		if id == "" {
			id = strings.TrimSuffix(filepath.Base(spec.Path), filepath.Ext(spec.Path))
		}
		host, err = openFile(spec.Path, func(f *os.File) (*listing.Host, error) {
			return LoadCSV(f, id)
		})
	case KindSQLite:
		host, err = LoadSQLite(ctx, spec.Path, spec.HostID, spec.Query)
	}
	if err != nil {
		log.Error().Ctx(ctx).
			Str("component", "source").
			Str("operation", "open").
			Str("path", spec.Path).
			Err(err).
			Msg("failed to load host")
		return nil, err
	}

	if n := ApplyUnsortable(host, spec.Unsortable); n > 0 {
		log.Debug().Ctx(ctx).
			Str("component", "source").
			Int("columns", n).
			Msg("columns marked unsortable")
	}

	log.Debug().Ctx(ctx).
		Str("component", "source").
		Str("operation", "open").
		Int("entries", host.Len()).
		Int("columns", len(host.Columns)).
		Msg("host loaded")

	return host, nil
}

// ApplyUnsortable marks the columns titled in titles as unsortable and
// returns how many changed.
func ApplyUnsortable(host *listing.Host, titles []string) int {
	return host.MarkUnsortable(titles)
}

func openFile(path string, load func(*os.File) (*listing.Host, error)) (*listing.Host, error) {
	if err := checkExists(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening source: %w", err)
	}
	defer f.Close()
	return load(f)
}

// checkExists reports a missing source file as ErrHostNotFound, keeping the
// underlying fs.ErrNotExist in the chain.
func checkExists(path string) error {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrHostNotFound, err)
	default:
		return fmt.Errorf("opening source: %w", err)
	}
}
