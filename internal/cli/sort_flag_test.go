package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSort(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantField string
		wantDesc  bool
		wantErr   error
	}{
		{name: "field only", input: "Name", wantField: "Name"},
		{name: "explicit ascending", input: "Name:asc", wantField: "Name"},
		{name: "descending", input: "Age:desc", wantField: "Age", wantDesc: true},
		{name: "order is case insensitive", input: "Age:DESC", wantField: "Age", wantDesc: true},
		{name: "index with order", input: "2:desc", wantField: "2", wantDesc: true},
		{name: "colon inside title", input: "Time: UTC", wantField: "Time: UTC"},
		{name: "colon title with order", input: "Time: UTC:desc", wantField: "Time: UTC", wantDesc: true},
		{name: "whitespace trimmed", input: "  City : asc ", wantField: "City"},
		{name: "order without field", input: ":desc", wantErr: ErrEmptySortField},
		{name: "blank", input: "   ", wantErr: ErrEmptySortField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, desc, err := parseSort(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantDesc, desc)
		})
	}
}
