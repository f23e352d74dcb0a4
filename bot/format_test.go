package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/popcorn/yts"
)

func TestMovieEmbed(t *testing.T) {
	movie := yts.Movie{
		Title:     ptr("The Matrix (1999)"),
		URL:       ptr("https://yts.mx/movies/the-matrix-1999"),
		PosterURL: ptr("https://yts.mx/poster.jpg"),
		Rating:    ptr(8.7),
		Runtime:   ptr(136),
		Year:      ptr(1999),
		Genres:    []string{"Action", "Sci-Fi"},
		Files: []yts.MovieFile{
			{URL: ptr("https://yts.mx/torrent/download/A"), Quality: ptr("720p"), Type: ptr("bluray"), Size: ptr("700.00 MB")},
			{URL: ptr("https://yts.mx/torrent/download/B"), Quality: ptr("1080p"), Type: ptr("web"), Size: ptr("1.40 GB")},
		},
	}

	embed := movieEmbed(movie)
	assert.Equal(t, "THE MATRIX (1999)", embed.Title)
	assert.Equal(t, "https://yts.mx/movies/the-matrix-1999", embed.URL)
	assert.Equal(t, colorMovie, embed.Color)
	require.NotNil(t, embed.Thumbnail)
	assert.Equal(t, "https://yts.mx/poster.jpg", embed.Thumbnail.URL)
	assert.Equal(t, "1999 | :star: 8.7 | 136min | Action, Sci-Fi", embed.Description)

	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "BLURAY 720p (700.00 MB)", embed.Fields[0].Name)
	assert.Equal(t, ":link: [Download](https://yts.mx/torrent/download/A)", embed.Fields[0].Value)
	assert.False(t, embed.Fields[0].Inline)
	assert.Equal(t, "WEB 1080p (1.40 GB)", embed.Fields[1].Name)
}

func TestMovieEmbedMissingValues(t *testing.T) {
	embed := movieEmbed(yts.Movie{Files: []yts.MovieFile{{Quality: ptr("2160p")}, {}}})

	assert.Empty(t, embed.Title)
	assert.Empty(t, embed.URL)
	assert.Empty(t, embed.Description)
	assert.Nil(t, embed.Thumbnail)
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "2160p", embed.Fields[0].Name)
	assert.Equal(t, "No download link", embed.Fields[0].Value)
	assert.Equal(t, "File", embed.Fields[1].Name)
}

func TestMovieEmbedFieldLimit(t *testing.T) {
	files := make([]yts.MovieFile, 30)
	embed := movieEmbed(yts.Movie{Files: files})
	assert.Len(t, embed.Fields, maxEmbedFields)
}
