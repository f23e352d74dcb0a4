package yts

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/valyala/fastjson"
)

// payload is the part of a list_movies.json envelope the client acts on
type payload struct {
	status        string
	statusMessage string
	movieCount    int
	movies        []Movie
}

// ParseMovies maps a raw list_movies.json body into movies. It only fails
// when the body is not a JSON document; shape problems inside the document
// degrade to nil fields.
func ParseMovies(body []byte) ([]Movie, error) {
	v, err := fastjson.ParseBytes(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return MapMovies(v), nil
}

// MapMovies converts data.movies into movies, preserving order. The result
// always has one entry per element of data.movies.
func MapMovies(v *fastjson.Value) []Movie {
	items := arrayAt(v, "data", "movies")
	movies := make([]Movie, 0, len(items))
	for _, item := range items {
		movies = append(movies, mapMovie(item))
	}
	return movies
}

func parsePayload(body []byte) (payload, error) {
	v, err := fastjson.ParseBytes(body)
	if err != nil {
		return payload{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	p := payload{
		status:        deref(optString(v, "status")),
		statusMessage: deref(optString(v, "status_message")),
		movies:        MapMovies(v),
	}

	// movie_count went missing in some revisions; fall back to the array
	if count := optInt(v, "data", "movie_count"); count != nil {
		p.movieCount = *count
	} else {
		p.movieCount = len(p.movies)
	}

	return p, nil
}

func mapMovie(item *fastjson.Value) Movie {
	torrents := arrayAt(item, "torrents")
	files := make([]MovieFile, 0, len(torrents))
	for _, t := range torrents {
		files = append(files, mapFile(t))
	}

	return Movie{
		Title:     optString(item, "title_long"),
		URL:       optString(item, "url"),
		PosterURL: optString(item, "medium_cover_image"),
		Rating:    optFloat(item, "rating"),
		Runtime:   optInt(item, "runtime"),
		Year:      optInt(item, "year"),
		IMDbCode:  optString(item, "imdb_code"),
		Genres:    optStrings(item, "genres"),
		Files:     files,
	}
}

func mapFile(t *fastjson.Value) MovieFile {
	return MovieFile{
		URL:     optString(t, "url"),
		Quality: optString(t, "quality"),
		Type:    optString(t, "type"),
		Seeds:   optInt(t, "seeds"),
		Peers:   optInt(t, "peers"),
		Size:    optString(t, "size"),
	}
}

func arrayAt(v *fastjson.Value, keys ...string) []*fastjson.Value {
	f := v.Get(keys...)
	if f == nil || f.Type() != fastjson.TypeArray {
		return nil
	}
	arr, err := f.Array()
	if err != nil {
		return nil
	}
	return arr
}

func optString(v *fastjson.Value, keys ...string) *string {
	f := v.Get(keys...)
	if f == nil || f.Type() != fastjson.TypeString {
		return nil
	}
	b, err := f.StringBytes()
	if err != nil {
		return nil
	}
	s := string(b)
	return &s
}

func optStrings(v *fastjson.Value, keys ...string) []string {
	items := arrayAt(v, keys...)
	if items == nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item.Type() != fastjson.TypeString {
			continue
		}
		b, err := item.StringBytes()
		if err != nil {
			continue
		}
		out = append(out, string(b))
	}
	return out
}

// optInt accepts integers, integral floats ("96.0") and numeric strings
func optInt(v *fastjson.Value, keys ...string) *int {
	f := v.Get(keys...)
	if f == nil {
		return nil
	}

	var x float64
	switch f.Type() {
	case fastjson.TypeNumber:
		if n, err := f.Int(); err == nil {
			return &n
		}
		fl, err := f.Float64()
		if err != nil {
			return nil
		}
		x = fl
	case fastjson.TypeString:
		b, _ := f.StringBytes()
		s := strings.TrimSpace(string(b))
		if n, err := strconv.Atoi(s); err == nil {
			return &n
		}
		fl, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		x = fl
	default:
		return nil
	}

	if x != math.Trunc(x) || x > math.MaxInt32 || x < math.MinInt32 {
		return nil
	}
	n := int(x)
	return &n
}

func optFloat(v *fastjson.Value, keys ...string) *float64 {
	f := v.Get(keys...)
	if f == nil {
		return nil
	}

	var x float64
	switch f.Type() {
	case fastjson.TypeNumber:
		fl, err := f.Float64()
		if err != nil {
			return nil
		}
		x = fl
	case fastjson.TypeString:
		b, _ := f.StringBytes()
		fl, err := strconv.ParseFloat(strings.TrimSpace(string(b)), 64)
		if err != nil {
			return nil
		}
		x = fl
	default:
		return nil
	}

	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil
	}
	return &x
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
