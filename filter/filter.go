// Package filter narrows search results with expr-language expressions such
// as `Rating >= 6 and hasQuality("1080p")`.
package filter

import (
	"slices"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/popcorn/yts"
)

const defaultCacheSize = 32

// Filter decides whether a movie should be shown
type Filter interface {
	Evaluate(movie yts.Movie) bool
	Expression() string
}

// exprFilter implements Filter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
}

var (
	cacheOnce sync.Once
	cache     *lruCache[*exprFilter]
)

func compiledCache() *lruCache[*exprFilter] {
	cacheOnce.Do(func() {
		cache = newLRUCache[*exprFilter](defaultCacheSize)
	})
	return cache
}

// Compile parses and compiles an expression. An empty expression yields a
// nil Filter, meaning every movie is kept.
func Compile(expression string) (Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, nil
	}

	if cached, ok := compiledCache().Get(expression); ok {
		return cached, nil
	}

	program, err := expr.Compile(expression,
		expr.Env(compileEnvironment()),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	f := &exprFilter{
		expression: expression,
		program:    program,
	}
	compiledCache().Put(expression, f)

	return f, nil
}

// Apply returns the movies matching f in their original order. A nil filter
// keeps every movie.
func Apply(f Filter, movies []yts.Movie) []yts.Movie {
	if f == nil {
		return movies
	}

	matched := make([]yts.Movie, 0, len(movies))
	for _, movie := range movies {
		if f.Evaluate(movie) {
			matched = append(matched, movie)
		}
	}
	return matched
}

// Evaluate runs the filter against a movie. Movies whose evaluation fails
// are treated as non-matching.
func (f *exprFilter) Evaluate(movie yts.Movie) bool {
	result, err := expr.Run(f.program, runtimeEnvironment(movie))
	if err != nil {
		return false
	}
	matched, ok := result.(bool)
	return ok && matched
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// compileEnvironment declares the helpers so calls type-check at compile time
func compileEnvironment() map[string]any {
	env := make(map[string]any, 16)
	addHelperFunctions(env)
	env["hasQuality"] = func(string) bool { return false }
	env["hasGenre"] = func(string) bool { return false }
	return env
}

func addHelperFunctions(env map[string]any) {
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
}

// runtimeEnvironment exposes a movie to expressions. Absent values are zero.
func runtimeEnvironment(movie yts.Movie) map[string]any {
	env := make(map[string]any, 24)
	addHelperFunctions(env)

	qualities := make([]string, 0, len(movie.Files))
	for _, f := range movie.Files {
		if f.Quality != nil {
			qualities = append(qualities, strings.ToLower(*f.Quality))
		}
	}
	genres := make([]string, 0, len(movie.Genres))
	for _, g := range movie.Genres {
		genres = append(genres, strings.ToLower(g))
	}

	env["hasQuality"] = func(q string) bool {
		return slices.Contains(qualities, strings.ToLower(q))
	}
	env["hasGenre"] = func(g string) bool {
		return slices.Contains(genres, strings.ToLower(g))
	}

	env["Title"] = valueOr(movie.Title, "")
	env["IMDbCode"] = valueOr(movie.IMDbCode, "")
	env["Year"] = valueOr(movie.Year, 0)
	env["Rating"] = valueOr(movie.Rating, 0.0)
	env["Runtime"] = valueOr(movie.Runtime, 0)
	env["Genres"] = movie.Genres
	env["Qualities"] = qualities
	env["FileCount"] = len(movie.Files)
	env["MaxSeeds"] = movie.MaxSeeds()

	return env
}

func valueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
