package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/popcorn/yts"
)

type fakeSearcher struct {
	result yts.SearchResult
	terms  []string
}

func (f *fakeSearcher) Search(_ context.Context, term string) yts.SearchResult {
	f.terms = append(f.terms, term)
	return f.result
}

func ptr[T any](v T) *T { return &v }

func TestHealth(t *testing.T) {
	s := NewServer(":0", &fakeSearcher{}, 4, zerolog.Nop())

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		result     yts.SearchResult
		wantStatus int
		wantCalls  int
		check      func(t *testing.T, body []byte)
	}{
		{
			name:       "missing term",
			query:      "",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "short term",
			query:      "?term=abc",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "found",
			query: "?term=The+Matrix",
			result: yts.SearchResult{
				StatusCode: http.StatusOK,
				Movies:     []yts.Movie{{Title: ptr("The Matrix (1999)"), Runtime: ptr(136)}},
			},
			wantStatus: http.StatusOK,
			wantCalls:  1,
			check: func(t *testing.T, body []byte) {
				var got yts.SearchResult
				require.NoError(t, json.Unmarshal(body, &got))
				require.Len(t, got.Movies, 1)
				assert.Equal(t, "The Matrix (1999)", *got.Movies[0].Title)
				assert.Empty(t, got.ErrorMessage)
			},
		},
		{
			name:       "no results keeps empty list",
			query:      "?term=zzzzzz",
			result:     yts.SearchResult{StatusCode: http.StatusOK, Movies: []yts.Movie{}},
			wantStatus: http.StatusOK,
			wantCalls:  1,
			check: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"status_code":200,"movies":[]}`, string(body))
			},
		},
		{
			name:       "timeout status is passed through",
			query:      "?term=matrix",
			result:     yts.SearchResult{StatusCode: http.StatusRequestTimeout, ErrorMessage: yts.MessageTimeout},
			wantStatus: http.StatusRequestTimeout,
			wantCalls:  1,
			check: func(t *testing.T, body []byte) {
				var got yts.SearchResult
				require.NoError(t, json.Unmarshal(body, &got))
				assert.Equal(t, yts.MessageTimeout, got.ErrorMessage)
				assert.Nil(t, got.Movies)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			searcher := &fakeSearcher{result: tt.result}
			s := NewServer(":0", searcher, 4, zerolog.Nop())

			rec := httptest.NewRecorder()
			s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/search"+tt.query, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Len(t, searcher.terms, tt.wantCalls)
			if tt.check != nil {
				tt.check(t, rec.Body.Bytes())
			}
		})
	}
}

func TestSearchLowercasesTerm(t *testing.T) {
	searcher := &fakeSearcher{result: yts.SearchResult{StatusCode: http.StatusOK, Movies: []yts.Movie{}}}
	s := NewServer(":0", searcher, 4, zerolog.Nop())

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/search?term=%20The%20MATRIX%20", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"the matrix"}, searcher.terms)
}

func TestStartStopsOnCancel(t *testing.T) {
	s := NewServer("127.0.0.1:0", &fakeSearcher{}, 4, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	cancel()
	assert.NoError(t, <-done)
}
