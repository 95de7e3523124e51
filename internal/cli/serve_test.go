package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/listctl/internal/source"
)

func TestServe_InvalidAddress(t *testing.T) {
	setupCLITest(t)

	_, err := executeCmd(t, "serve", writePeopleCSV(t, 2), "--addr", "256.0.0.1:bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listening on")
}

func TestServe_UnsupportedSource(t *testing.T) {
	setupCLITest(t)

	_, err := executeCmd(t, "serve", "notes.md")
	require.ErrorIs(t, err, source.ErrUnsupportedSource)
}
