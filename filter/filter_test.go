package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/popcorn/yts"
)

func ptr[T any](v T) *T { return &v }

func testMovies() []yts.Movie {
	return []yts.Movie{
		{
			Title:   ptr("The Matrix (1999)"),
			Year:    ptr(1999),
			Rating:  ptr(8.7),
			Runtime: ptr(136),
			Genres:  []string{"Action", "Sci-Fi"},
			Files: []yts.MovieFile{
				{Quality: ptr("720p"), Seeds: ptr(100)},
				{Quality: ptr("1080p"), Seeds: ptr(250)},
			},
		},
		{
			Title:  ptr("Matrix Fan Edit (2019)"),
			Year:   ptr(2019),
			Rating: ptr(3.1),
			Files:  []yts.MovieFile{{Quality: ptr("720p"), Seeds: ptr(2)}},
		},
		{
			// Everything missing
		},
	}
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantNil     bool
		wantErr     bool
		errContains string
	}{
		{
			name:       "valid expression",
			expression: `Rating >= 6`,
		},
		{
			name:       "helper call",
			expression: `hasQuality("1080p") and hasGenre("action")`,
		},
		{
			name:       "empty expression keeps everything",
			expression: "   ",
			wantNil:    true,
		},
		{
			name:        "invalid syntax",
			expression:  `hasQuality("unclosed`,
			wantErr:     true,
			errContains: "compilation error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				var compErr *CompilationError
				assert.ErrorAs(t, err, &compErr)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, f)
				return
			}
			require.NotNil(t, f)
			assert.Equal(t, tt.expression, f.Expression())
		})
	}
}

func TestCompileUsesCache(t *testing.T) {
	first, err := Compile(`Year > 2000`)
	require.NoError(t, err)
	second, err := Compile(`Year > 2000`)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestApply(t *testing.T) {
	movies := testMovies()

	tests := []struct {
		name       string
		expression string
		want       []int
	}{
		{"rating threshold", `Rating >= 6`, []int{0}},
		{"quality helper", `hasQuality("720P")`, []int{0, 1}},
		{"genre helper", `hasGenre("sci-fi")`, []int{0}},
		{"title contains", `contains(Title, "matrix")`, []int{0, 1}},
		{"seeds", `MaxSeeds > 10`, []int{0}},
		{"file count", `FileCount == 0`, []int{2}},
		{"missing values are zero", `Year == 0 and Title == ""`, []int{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)

			got := Apply(f, movies)
			require.Len(t, got, len(tt.want))
			for i, idx := range tt.want {
				assert.Equal(t, movies[idx].Title, got[i].Title)
			}
		})
	}
}

func TestApplyNilFilter(t *testing.T) {
	movies := testMovies()
	assert.Equal(t, movies, Apply(nil, movies))
}

func TestLRUCache(t *testing.T) {
	c := newLRUCache[int](2)
	c.Put("a", 1)
	c.Put("b", 2)

	// Touch "a" so "b" becomes the oldest
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	c.Put("c", 3)
	assert.Equal(t, 2, c.Len())

	_, ok = c.Get("b")
	assert.False(t, ok)

	c.Put("a", 10)
	v, _ = c.Get("a")
	assert.Equal(t, 10, v)
}
