package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rshade/listctl/internal/logging"
)

// ResolveProjectDir determines the project-local .listctl directory path.
// It checks (in order):
//  1. flagValue (--project-dir CLI flag)
//  2. LISTCTL_PROJECT_DIR env var
//  3. walking up from startDir to the first directory containing .listctl/
//
// Returns the path to the .listctl directory or empty string if none is
// found. Does NOT create the directory. Returned path is always absolute
// (or empty).
func ResolveProjectDir(ctx context.Context, flagValue, startDir string) string {
	if flagValue != "" {
		return toAbsProjectDir(ctx, flagValue)
	}

	if envDir := os.Getenv(EnvProjectDir); envDir != "" {
		return toAbsProjectDir(ctx, envDir)
	}

	if startDir == "" {
		return ""
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}

	home, _ := os.UserHomeDir()
	for {
		candidate := filepath.Join(dir, DirName)
		// The home directory's .listctl is the global config, not a project.
		if dir != home {
			if info, statErr := os.Stat(candidate); statErr == nil && info.IsDir() {
				return candidate
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// toAbsProjectDir converts dir to an absolute path and appends ".listctl".
// If the path already ends with ".listctl", it is returned as-is (after
// resolving to an absolute path) to prevent double-append.
func toAbsProjectDir(ctx context.Context, dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		logger := logging.FromContext(ctx)
		logger.Warn().
			Str("component", "config").
			Err(err).
			Str("dir", dir).
			Msg("failed to resolve absolute path for project directory")
		abs = dir
	}

	if filepath.Base(abs) == DirName {
		return abs
	}

	return filepath.Join(abs, DirName)
}
