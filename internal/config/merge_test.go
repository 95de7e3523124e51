package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/listctl/internal/config"
	"github.com/rshade/listctl/internal/pagination"
)

// newTarget returns a Config with non-default values so tests can verify
// that absent overlay keys leave the original values intact.
func newTarget() *config.Config {
	cfg := config.New()
	cfg.Listing.PageSize = pagination.Size(50)
	cfg.Listing.UnsortableColumns = []string{"Actions"}
	cfg.Logging.Level = "warn"
	cfg.Server.Addr = "127.0.0.1:9000"
	return cfg
}

// writeOverlay is a test helper that writes YAML content to a temp file
// and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestShallowMergeYAML_SingleKeyOverride(t *testing.T) {
	target := newTarget()
	overlay := writeOverlay(t, `
server:
  addr: ":7000"
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, ":7000", target.Server.Addr)
	assert.Equal(t, pagination.Size(50), target.Listing.PageSize, "listing untouched")
	assert.Equal(t, "warn", target.Logging.Level, "logging untouched")
}

func TestShallowMergeYAML_SectionReplacedWholesale(t *testing.T) {
	target := newTarget()
	overlay := writeOverlay(t, `
listing:
  page_size: All
  sortable: false
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, pagination.Unbounded, target.Listing.PageSize)
	assert.False(t, target.Listing.Sortable)
	assert.True(t, target.Listing.Searchable, "omitted field takes the default")
	assert.Empty(t, target.Listing.UnsortableColumns, "base value not carried over")
	assert.Equal(t, pagination.DefaultPageSizeOptions(), target.Listing.PageSizeOptions)
}

func TestShallowMergeYAML_EmptyAndCommentOnly(t *testing.T) {
	for _, content := range []string{"", "# nothing here\n"} {
		target := newTarget()
		require.NoError(t, config.ShallowMergeYAML(target, writeOverlay(t, content)))
		assert.Equal(t, newTarget(), target)
	}
}

func TestShallowMergeYAML_UnknownKeysIgnored(t *testing.T) {
	target := newTarget()
	overlay := writeOverlay(t, `
plugins:
  aws: {}
logging:
  level: debug
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, "debug", target.Logging.Level)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	t.Run("corrupted yaml", func(t *testing.T) {
		err := config.ShallowMergeYAML(newTarget(), writeOverlay(t, "listing: [unclosed"))
		require.Error(t, err)
	})

	t.Run("bad section type", func(t *testing.T) {
		err := config.ShallowMergeYAML(newTarget(), writeOverlay(t, "listing:\n  page_size: lots\n"))
		require.ErrorIs(t, err, pagination.ErrInvalidPageSize)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.ShallowMergeYAML(newTarget(), filepath.Join(t.TempDir(), "gone.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("nil target", func(t *testing.T) {
		require.Error(t, config.ShallowMergeYAML(nil, "x"))
	})
}
