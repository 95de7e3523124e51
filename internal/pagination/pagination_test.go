package pagination

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParsePageSize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    PageSize
		wantErr bool
	}{
		{name: "integer", input: "25", want: Size(25)},
		{name: "padded integer", input: " 5 ", want: Size(5)},
		{name: "All", input: "All", want: Unbounded},
		{name: "lowercase all", input: "all", want: Unbounded},
		{name: "unbounded keyword", input: "UNBOUNDED", want: Unbounded},
		{name: "zero", input: "0", wantErr: true},
		{name: "negative", input: "-3", wantErr: true},
		{name: "garbage", input: "ten", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePageSize(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidPageSize)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPageSize_Resolve(t *testing.T) {
	assert.Equal(t, 10, Size(10).Resolve(3))
	assert.Equal(t, 37, Unbounded.Resolve(37))
	assert.Equal(t, 1, Unbounded.Resolve(0), "unbounded never resolves below one")
	assert.False(t, Size(0).Valid())
	assert.True(t, Unbounded.Valid())
	assert.Equal(t, "All", Unbounded.String())
	assert.Equal(t, "50", Size(50).String())
}

func TestPageSize_JSONAndYAML(t *testing.T) {
	type wrapper struct {
		Sizes []PageSize `json:"sizes" yaml:"sizes"`
	}

	var fromYAML wrapper
	require.NoError(t, yaml.Unmarshal([]byte("sizes: [5, 10, All]\n"), &fromYAML))
	assert.Equal(t, []PageSize{Size(5), Size(10), Unbounded}, fromYAML.Sizes)

	out, err := json.Marshal(fromYAML)
	require.NoError(t, err)
	assert.JSONEq(t, `{"sizes":[5,10,"All"]}`, string(out))

	var fromJSON wrapper
	require.NoError(t, json.Unmarshal(out, &fromJSON))
	assert.Equal(t, fromYAML.Sizes, fromJSON.Sizes)

	var bad wrapper
	err = yaml.Unmarshal([]byte("sizes: [0]\n"), &bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPageSize)
}

func TestValidateOptions(t *testing.T) {
	require.NoError(t, ValidateOptions(DefaultPageSizeOptions()))
	assert.ErrorIs(t, ValidateOptions(nil), ErrEmptyOptions)
	assert.ErrorIs(t, ValidateOptions([]PageSize{Size(5), Size(-1)}), ErrInvalidPageSize)
	assert.Equal(t, 4, IndexOf(DefaultPageSizeOptions(), Unbounded))
	assert.Equal(t, -1, IndexOf(DefaultPageSizeOptions(), Size(7)))
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		items int
		size  PageSize
		want  int
	}{
		{name: "empty view", items: 0, size: Size(10), want: 1},
		{name: "exact fit", items: 20, size: Size(10), want: 2},
		{name: "remainder", items: 5, size: Size(2), want: 3},
		{name: "fewer than a page", items: 3, size: Size(10), want: 1},
		{name: "unbounded", items: 37, size: Unbounded, want: 1},
		{name: "page size one", items: 4, size: Size(1), want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.items, tt.size))
		})
	}
}

func TestTotalPages_AlwaysCoversItems(t *testing.T) {
	for p := 1; p <= 12; p++ {
		for n := 0; n <= 60; n++ {
			total := TotalPages(n, Size(p))
			want := (n + p - 1) / p
			if want < 1 {
				want = 1
			}
			require.Equal(t, want, total, "n=%d p=%d", n, p)

			for page := -2; page <= total+3; page++ {
				meta := NewMeta(Size(p), page, n)
				require.GreaterOrEqual(t, meta.CurrentPage, 1)
				require.LessOrEqual(t, meta.CurrentPage, total)
				require.LessOrEqual(t, meta.Start, meta.End)
				require.LessOrEqual(t, meta.End, n)
			}
		}
	}
}

func TestNewMeta(t *testing.T) {
	t.Run("clamps past last page", func(t *testing.T) {
		meta := NewMeta(Size(2), 5, 5)
		assert.Equal(t, 3, meta.CurrentPage)
		assert.Equal(t, 3, meta.TotalPages)
		assert.Equal(t, 4, meta.Start)
		assert.Equal(t, 5, meta.End)
		assert.True(t, meta.HasPrevious)
		assert.False(t, meta.HasNext)
	})

	t.Run("unbounded shows everything", func(t *testing.T) {
		meta := NewMeta(Unbounded, 1, 37)
		assert.Equal(t, 1, meta.TotalPages)
		assert.Equal(t, 0, meta.Start)
		assert.Equal(t, 37, meta.End)
		assert.Equal(t, 37, meta.PageSize)
	})

	t.Run("empty view", func(t *testing.T) {
		meta := NewMeta(Size(10), 4, 0)
		assert.Equal(t, 1, meta.CurrentPage)
		assert.Equal(t, 0, meta.Start)
		assert.Equal(t, 0, meta.End)
		assert.False(t, meta.HasPrevious)
		assert.False(t, meta.HasNext)
	})
}

// labels flattens a strip to its labels, marking the active page with brackets.
func labels(controls []Control) []string {
	out := make([]string, 0, len(controls))
	for _, c := range controls {
		if c.Active {
			out = append(out, "["+c.Label+"]")
			continue
		}
		out = append(out, c.Label)
	}
	return out
}

func TestControls_Layout(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		want    []string
	}{
		{
			name:    "single page renders nothing",
			current: 1,
			total:   1,
			want:    []string{},
		},
		{
			name:    "few pages",
			current: 2,
			total:   3,
			want:    []string{"Previous", "1", "[2]", "3", "Next"},
		},
		{
			name:    "start of long range",
			current: 1,
			total:   10,
			want:    []string{"Previous", "[1]", "2", "3", "4", "5", "...", "10", "Next"},
		},
		{
			name:    "middle of long range",
			current: 5,
			total:   10,
			want:    []string{"Previous", "1", "...", "3", "4", "[5]", "6", "7", "...", "10", "Next"},
		},
		{
			name:    "end of long range",
			current: 10,
			total:   10,
			want:    []string{"Previous", "1", "...", "6", "7", "8", "9", "[10]", "Next"},
		},
		{
			name:    "no ellipsis when gap is one page",
			current: 4,
			total:   7,
			want:    []string{"Previous", "1", "2", "3", "[4]", "5", "6", "7", "Next"},
		},
		{
			name:    "six pages from the start",
			current: 3,
			total:   6,
			want:    []string{"Previous", "1", "2", "[3]", "4", "5", "6", "Next"},
		},
		{
			name:    "out of range current is clamped",
			current: 99,
			total:   3,
			want:    []string{"Previous", "1", "2", "[3]", "Next"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, labels(Controls(tt.current, tt.total)))
		})
	}
}

func TestControls_PreviousNext(t *testing.T) {
	first := Controls(1, 4)
	require.NotEmpty(t, first)
	assert.Equal(t, ControlPrevious, first[0].Kind)
	assert.True(t, first[0].Disabled)
	assert.False(t, first[0].Clickable())
	assert.Equal(t, ControlNext, first[len(first)-1].Kind)
	assert.False(t, first[len(first)-1].Disabled)
	assert.Equal(t, 2, first[len(first)-1].Page)

	last := Controls(4, 4)
	assert.False(t, last[0].Disabled)
	assert.Equal(t, 3, last[0].Page)
	assert.True(t, last[len(last)-1].Disabled)
}

func TestControlKind_MarshalText(t *testing.T) {
	out, err := json.Marshal(Control{Kind: ControlEllipsis, Label: LabelEllipsis, Disabled: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"ellipsis","label":"...","disabled":true}`, string(out))
}
