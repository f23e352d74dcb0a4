package yts

import "context"

// Searcher is the caller-facing search operation.
type Searcher interface {
	// Search looks up movies matching a title, cast/crew name or IMDb code
	Search(ctx context.Context, term string) SearchResult
}

var _ Searcher = (*Client)(nil)
