package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/listctl/internal/cli"
	"github.com/rshade/listctl/internal/source"
)

func TestMainComponents(t *testing.T) {
	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version)
		if root == nil {
			t.Fatal("expected root command to be non-nil")
		}
		assert.Equal(t, "listctl", root.Use)
		assert.Equal(t, version, root.Version)
	})
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: 0},
		{name: "generic error", err: errors.New("boom"), want: 1},
		{name: "host not found", err: fmt.Errorf("loading a.html: %w", source.ErrHostNotFound), want: exitHostError},
		{name: "unsupported source", err: fmt.Errorf("loading a.txt: %w", source.ErrUnsupportedSource), want: exitHostError},
		{name: "unknown column", err: cli.ErrUnknownColumn, want: 1},
		{name: "missing source file", err: missingFileErr(), want: exitHostError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func missingFileErr() error {
	_, err := source.Open(context.Background(), source.Spec{Path: filepath.Join(os.TempDir(), "listctl-absent", "gone.csv")})
	return err
}

func TestRun_MissingSource(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LISTCTL_CONFIG", "")
	t.Setenv("LISTCTL_PROJECT_DIR", "")
	t.Setenv("LISTCTL_LOG_LEVEL", "error")

	missing := filepath.Join(t.TempDir(), "gone.csv")
	err := run([]string{"render", missing})
	require.ErrorIs(t, err, source.ErrHostNotFound)
	assert.Equal(t, exitHostError, exitCode(err))

	_, statErr := os.Stat(missing)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}
