package yts

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(n int) *int { return &n }

func TestRuntimeLabel(t *testing.T) {
	assert.Equal(t, "96min", Movie{Runtime: intPtr(96)}.RuntimeLabel())
	assert.Equal(t, "0min", Movie{Runtime: intPtr(0)}.RuntimeLabel())
	assert.Equal(t, "", Movie{}.RuntimeLabel())
}

func TestMaxSeeds(t *testing.T) {
	m := Movie{Files: []MovieFile{{Seeds: intPtr(3)}, {}, {Seeds: intPtr(41)}, {Seeds: intPtr(-2)}}}
	assert.Equal(t, 41, m.MaxSeeds())
	assert.Equal(t, 0, Movie{}.MaxSeeds())
}

func TestResultKind(t *testing.T) {
	tests := []struct {
		kind     ResultKind
		expected string
	}{
		{ResultFound, "FOUND"},
		{ResultNoResults, "NO_RESULTS"},
		{ResultUpstreamError, "UPSTREAM_ERROR"},
		{ResultTimeout, "TIMEOUT"},
		{ResultKind(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestSearchResultConstructors(t *testing.T) {
	t.Run("success never carries a message", func(t *testing.T) {
		r := newSuccessResult(nil)
		assert.True(t, r.OK())
		assert.NotNil(t, r.Movies)
		assert.Empty(t, r.ErrorMessage)
	})

	t.Run("error never carries movies", func(t *testing.T) {
		r := newErrorResult(http.StatusInternalServerError, MessageUpstreamError)
		assert.False(t, r.OK())
		assert.Nil(t, r.Movies)
		assert.Equal(t, MessageUpstreamError, r.ErrorMessage)
	})

	t.Run("2xx error status is coerced", func(t *testing.T) {
		r := newErrorResult(http.StatusNoContent, MessageUpstreamError)
		assert.Equal(t, http.StatusBadGateway, r.StatusCode)
		assert.False(t, r.OK())
	})

	t.Run("timeout", func(t *testing.T) {
		r := newTimeoutResult()
		assert.Equal(t, http.StatusRequestTimeout, r.StatusCode)
		assert.Equal(t, ResultTimeout, r.Kind())
	})
}

func TestAPIError(t *testing.T) {
	err := &APIError{StatusCode: 404, Message: "Not Found", Err: ErrUpstream}
	assert.Equal(t, "yts API error: status 404: Not Found", err.Error())
	assert.True(t, err.IsNotFound())
	assert.False(t, err.IsTimeout())
	assert.ErrorIs(t, err, ErrUpstream)
}
