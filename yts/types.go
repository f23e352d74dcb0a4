package yts

import (
	"net/http"
	"strconv"
)

// Movie represents one catalog entry. Every mapped field is optional and nil
// when the payload did not carry it in a usable shape.
type Movie struct {
	Title     *string     `json:"title"`
	URL       *string     `json:"url"`
	PosterURL *string     `json:"poster_url"`
	Rating    *float64    `json:"rating"`
	Runtime   *int        `json:"runtime"`
	Year      *int        `json:"year"`
	IMDbCode  *string     `json:"imdb_code"`
	Genres    []string    `json:"genres,omitempty"`
	Files     []MovieFile `json:"files"`
}

// RuntimeLabel renders the runtime as "96min", or "" when runtime is absent.
func (m Movie) RuntimeLabel() string {
	if m.Runtime == nil {
		return ""
	}
	return strconv.Itoa(*m.Runtime) + "min"
}

// MaxSeeds returns the highest seed count across the movie's files
func (m Movie) MaxSeeds() int {
	var maxSeeds int
	for _, f := range m.Files {
		if f.Seeds != nil && *f.Seeds > maxSeeds {
			maxSeeds = *f.Seeds
		}
	}
	return maxSeeds
}

// MovieFile represents one downloadable variant of a movie
type MovieFile struct {
	URL     *string `json:"url"`
	Quality *string `json:"quality"`
	Type    *string `json:"type"`
	Seeds   *int    `json:"seeds"`
	Peers   *int    `json:"peers"`
	Size    *string `json:"size"`
}

// ResultKind classifies a SearchResult
type ResultKind int

const (
	// ResultFound is a successful search with at least one movie
	ResultFound ResultKind = iota
	// ResultNoResults is a successful search that matched nothing
	ResultNoResults
	// ResultUpstreamError is a failed search
	ResultUpstreamError
	// ResultTimeout is a search that exceeded the configured timeout
	ResultTimeout
)

// String returns the string representation of a ResultKind
func (k ResultKind) String() string {
	switch k {
	case ResultFound:
		return "FOUND"
	case ResultNoResults:
		return "NO_RESULTS"
	case ResultUpstreamError:
		return "UPSTREAM_ERROR"
	case ResultTimeout:
		return "TIMEOUT"
	default:
		return "UNKNOWN"
	}
}

// SearchResult is the outcome of one search. Either StatusCode is 2xx and
// Movies is set (possibly empty), or StatusCode is not 2xx and ErrorMessage
// is set. Values are built once and never modified.
type SearchResult struct {
	StatusCode   int     `json:"status_code"`
	Movies       []Movie `json:"movies"`
	ErrorMessage string  `json:"error_message,omitempty"`
}

func newSuccessResult(movies []Movie) SearchResult {
	if movies == nil {
		movies = []Movie{}
	}
	return SearchResult{
		StatusCode: http.StatusOK,
		Movies:     movies,
	}
}

func newErrorResult(statusCode int, message string) SearchResult {
	if statusCode >= 200 && statusCode < 300 {
		statusCode = http.StatusBadGateway
	}
	return SearchResult{
		StatusCode:   statusCode,
		ErrorMessage: message,
	}
}

func newTimeoutResult() SearchResult {
	return newErrorResult(http.StatusRequestTimeout, MessageTimeout)
}

// OK reports whether the search succeeded, with or without matches
func (r SearchResult) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Kind classifies the result
func (r SearchResult) Kind() ResultKind {
	switch {
	case r.OK() && len(r.Movies) > 0:
		return ResultFound
	case r.OK():
		return ResultNoResults
	case r.StatusCode == http.StatusRequestTimeout:
		return ResultTimeout
	default:
		return ResultUpstreamError
	}
}

// Err returns nil for successful results and an *APIError otherwise
func (r SearchResult) Err() error {
	switch r.Kind() {
	case ResultFound, ResultNoResults:
		return nil
	case ResultTimeout:
		return &APIError{StatusCode: r.StatusCode, Message: r.ErrorMessage, Err: ErrTimeout}
	default:
		return &APIError{StatusCode: r.StatusCode, Message: r.ErrorMessage, Err: ErrUpstream}
	}
}
