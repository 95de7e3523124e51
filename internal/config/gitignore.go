package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const gitignoreHeader = `# listctl project-local data (auto-generated)
# config.yaml is tracked; logs are not.
`

// defaultIgnores are written to every project .gitignore.
var defaultIgnores = []string{"*.log"} //nolint:gochecknoglobals // Read-only pattern list.

// GitignoreContent renders a project .gitignore: the default patterns
// followed by extra, with blanks and duplicates dropped.
func GitignoreContent(extra ...string) string {
	var b strings.Builder
	b.WriteString(gitignoreHeader)

	seen := make(map[string]bool, len(defaultIgnores)+len(extra))
	for _, p := range append(append([]string(nil), defaultIgnores...), extra...) {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		b.WriteString(p)
		b.WriteByte('\n')
	}
	return b.String()
}

// ProjectIgnores returns ignore patterns for files cfg writes inside
// projectDir, relative to it. Today that is only a log file.
func ProjectIgnores(cfg *Config, projectDir string) []string {
	if cfg == nil || cfg.Logging.File == "" || projectDir == "" {
		return nil
	}
	logFile := cfg.Logging.File
	if !filepath.IsAbs(logFile) {
		logFile = filepath.Join(projectDir, logFile)
	}
	rel, err := filepath.Rel(projectDir, logFile)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil
	}
	return []string{filepath.ToSlash(rel)}
}

// EnsureGitignore writes GitignoreContent(extra...) to dir/.gitignore,
// creating dir as needed. It reports whether a file was written; an existing
// .gitignore is left untouched.
func EnsureGitignore(dir string, extra ...string) (bool, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return false, fmt.Errorf("creating directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, ".gitignore")
	//nolint:gosec // .gitignore must be world-readable (0644).
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("creating .gitignore at %s: %w", path, err)
	}

	if _, err := f.WriteString(GitignoreContent(extra...)); err != nil {
		_ = f.Close()
		return false, fmt.Errorf("writing .gitignore at %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("closing .gitignore at %s: %w", path, err)
	}
	return true, nil
}
