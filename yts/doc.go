// Package yts provides a client for searching the YTS movie catalog.
//
// The package is organized into two parts:
//
//   - Client: performs a single GET against list_movies.json and classifies
//     the outcome into a SearchResult
//   - Mapper: converts a raw list_movies.json payload into Movie records,
//     tolerating missing keys and the type drift seen across API revisions
//
// # Usage
//
//	logger := zerolog.New(os.Stdout)
//	client, err := yts.NewClient(
//		"https://yts.mx/api/v2",
//		logger,
//		yts.WithTimeout(60*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result := client.Search(ctx, "the matrix")
//	switch result.Kind() {
//	case yts.ResultFound:
//		// render result.Movies
//	case yts.ResultNoResults:
//		// nothing matched
//	default:
//		// show result.ErrorMessage
//	}
//
// # Error Handling
//
// Search never returns a Go error. Transport and API failures are folded into
// the SearchResult status code and message:
//
//   - 200 with movies, or 200 with an empty slice when nothing matched
//   - 408 with MessageTimeout when the configured timeout elapses
//   - the upstream status (or 502 for transport and payload failures) with
//     MessageUpstreamError otherwise
//
// SearchResult.Err converts a failed result into an *APIError that wraps
// ErrTimeout or ErrUpstream for callers that prefer errors.Is.
package yts
