// Command listctl sorts, filters and paginates tables from HTML, CSV and
// SQLite sources in the terminal, as one-shot output, or over HTTP.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/rshade/listctl/internal/cli"
	"github.com/rshade/listctl/internal/source"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev" //nolint:gochecknoglobals // Set by the linker.

// exitHostError is the exit code used when the source or its host element
// cannot be found.
const exitHostError = 2

func main() {
	os.Exit(exitCode(run(os.Args[1:])))
}

func run(args []string) error {
	cmd := cli.NewRootCmd(version)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

// exitCode maps a command error to the process exit status. The error itself
// has already been printed by cobra.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, source.ErrHostNotFound), errors.Is(err, source.ErrUnsupportedSource):
		return exitHostError
	default:
		return 1
	}
}
