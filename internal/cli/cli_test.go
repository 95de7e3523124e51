package cli_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rshade/listctl/internal/cli"
)

// setupCLITest isolates a test from the user's configuration and silences
// logging.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("LISTCTL_CONFIG", "")
	t.Setenv("LISTCTL_PROJECT_DIR", "")
	t.Setenv("LISTCTL_LOG_LEVEL", "error")
	t.Setenv("LISTCTL_LOG_FORMAT", "")
	return home
}

// executeCmd runs the root command with args and returns combined output.
func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// writePeopleCSV writes n rows of Name,Age,City. Even rows live in Rome, odd
// rows in Oslo; ages are 20+i.
func writePeopleCSV(t *testing.T, n int) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("Name,Age,City,Actions\n")
	for i := 1; i <= n; i++ {
		city := "Oslo"
		if i%2 == 0 {
			city = "Rome"
		}
		fmt.Fprintf(&b, "user-%02d,%d,%s,edit\n", i, 20+i, city)
	}
	path := filepath.Join(t.TempDir(), "people.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o600))
	return path
}

func outputLines(out string) []string {
	return strings.Split(strings.TrimRight(out, "\n"), "\n")
}

const usersPage = `<!DOCTYPE html>
<html><body>
<table id="users">
  <thead><tr><th>Name</th><th>Role</th><th class="no-sort">Edit</th></tr></thead>
  <tbody>
    <tr><td>Grace</td><td>Admiral</td><td><a href="#">edit</a></td></tr>
    <tr><td>Ada</td><td>Analyst</td><td><a href="#">edit</a></td></tr>
    <tr><td>Linus</td><td>Maintainer</td><td><a href="#">edit</a></td></tr>
  </tbody>
</table>
</body></html>`

func writeUsersPage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.html")
	require.NoError(t, os.WriteFile(path, []byte(usersPage), 0o600))
	return path
}
