package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/listctl/internal/listing"
)

func TestRenderPlain(t *testing.T) {
	ctrl := listing.New(context.Background(), peopleHost(25), listing.DefaultConfig())
	v := ctrl.Sort(0)

	var buf bytes.Buffer
	require.NoError(t, RenderPlain(&buf, v))
	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.True(t, strings.HasPrefix(lines[0], "Name ▲"))
	assert.Contains(t, lines[0], "Age ⇅")
	assert.Contains(t, lines[1], "person-00")
	assert.Len(t, lines, 1+10+2)
	assert.Equal(t, "Showing 1 to 10 of 25 entries", lines[11])
	assert.Equal(t, "Previous [1] 2 3 Next", lines[12])
}

func TestRenderPlain_Empty(t *testing.T) {
	ctrl := listing.New(context.Background(), peopleHost(5), listing.DefaultConfig())
	v := ctrl.Filter("nobody")

	var buf bytes.Buffer
	require.NoError(t, RenderPlain(&buf, v))
	out := buf.String()

	assert.Contains(t, out, listing.PlaceholderText)
	assert.Contains(t, out, "Showing 0 entries")
	assert.NotContains(t, out, "Previous")
}

func TestRenderStyled(t *testing.T) {
	ctrl := listing.New(context.Background(), peopleHost(7), listing.DefaultConfig())
	v := ctrl.SetPageSize(ctrl.Config().PageSizeOptions[0])

	var buf bytes.Buffer
	require.NoError(t, RenderStyled(&buf, v, 0))
	out := buf.String()

	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "person-04")
	assert.NotContains(t, out, "person-05")
	assert.Contains(t, out, "Showing 1 to 5 of 7 entries")
	assert.Contains(t, out, "Next")
}

func TestRenderControls(t *testing.T) {
	ctrl := listing.New(context.Background(), peopleHost(100), listing.DefaultConfig())
	v := ctrl.GoToPage(5)

	assert.Equal(t, "Previous 1 ... 3 4 [5] 6 7 ... 10 Next", renderControls(v.Controls, false))
	assert.Empty(t, renderControls(nil, false))
}
