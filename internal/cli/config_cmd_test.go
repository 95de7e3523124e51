package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rshade/listctl/internal/cli"
	"github.com/rshade/listctl/internal/config"
)

func TestConfigInit_Global(t *testing.T) {
	home := setupCLITest(t)

	out, err := executeCmd(t, "config", "init", "--global")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized successfully")

	configPath := filepath.Join(home, config.DirName, config.FileName)
	data, err := os.ReadFile(configPath)
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, config.CurrentSchemaVersion, cfg.SchemaVersion)
	assert.Equal(t, 10, cfg.Listing.PageSize.Int())

	_, err = executeCmd(t, "config", "init", "--global")
	require.ErrorIs(t, err, cli.ErrConfigExists)

	_, err = executeCmd(t, "config", "init", "--global", "--force")
	require.NoError(t, err)
}

func TestConfigInit_Project(t *testing.T) {
	setupCLITest(t)
	projectDir := filepath.Join(t.TempDir(), config.DirName)
	t.Setenv(config.EnvProjectDir, projectDir)

	out, err := executeCmd(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized at")
	assert.Contains(t, out, "Created .gitignore")

	_, err = os.Stat(filepath.Join(projectDir, config.FileName))
	require.NoError(t, err)

	gitignore, err := os.ReadFile(filepath.Join(projectDir, ".gitignore"))
	require.NoError(t, err)
	assert.Equal(t, config.GitignoreContent(), string(gitignore))
}

func TestConfigInit_ExistingGitignorePreserved(t *testing.T) {
	setupCLITest(t)
	projectDir := filepath.Join(t.TempDir(), config.DirName)
	require.NoError(t, os.MkdirAll(projectDir, 0o750))
	custom := "# mine\n"
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, ".gitignore"), []byte(custom), 0o600))

	out, err := executeCmd(t, "--project-dir", projectDir, "config", "init", "--force")
	require.NoError(t, err)
	assert.NotContains(t, out, "Created .gitignore")

	gitignore, err := os.ReadFile(filepath.Join(projectDir, ".gitignore"))
	require.NoError(t, err)
	assert.Equal(t, custom, string(gitignore))
}

func TestConfigInit_GlobalAndProjectExclusive(t *testing.T) {
	setupCLITest(t)

	_, err := executeCmd(t, "config", "init", "--global", "--project")
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	setupCLITest(t)

	out, err := executeCmd(t, "config", "validate", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
	assert.Contains(t, out, "Page size: 10")
	assert.Contains(t, out, "Server address: :8080")
}

func TestConfigValidate_BadFile(t *testing.T) {
	setupCLITest(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("schema_version: 2.0.0\n"), 0o600))

	_, err := executeCmd(t, "--config", path, "config", "validate")
	require.ErrorIs(t, err, config.ErrUnsupportedSchema)
}

func TestConfigShow_ProjectOverlay(t *testing.T) {
	setupCLITest(t)
	projectDir := filepath.Join(t.TempDir(), config.DirName)
	require.NoError(t, os.MkdirAll(projectDir, 0o750))
	overlay := "listing:\n  page_size: 50\n  locale: de\n"
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, config.FileName), []byte(overlay), 0o600))

	out, err := executeCmd(t, "--project-dir", projectDir, "config", "show")
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, 50, cfg.Listing.PageSize.Int())
	assert.Equal(t, "de", cfg.Listing.Locale)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestRender_UsesConfiguredPageSize(t *testing.T) {
	setupCLITest(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfgYAML := "listing:\n  page_size: 5\n  page_size_options: [5, 10]\n  unsortable_columns: [City]\n"
	require.NoError(t, os.WriteFile(path, []byte(cfgYAML), 0o600))

	out, err := executeCmd(t, "--config", path, "render", writePeopleCSV(t, 12), "--plain")
	require.NoError(t, err)

	lines := outputLines(out)
	assert.Contains(t, out, "Showing 1 to 5 of 12 entries")
	assert.Contains(t, lines[0], "Age ⇅")
	assert.NotContains(t, lines[0], "City ⇅")
}
