package cmd

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/s0up4200/popcorn/filter"
	"github.com/s0up4200/popcorn/yts"
)

var (
	searchJSON   bool
	searchFilter string
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <title or IMDb code>",
	Short: "Search the catalog once and print the results",
	Long: `Run a single catalog search and print the matching movies as a table,
or as JSON with --json. The command exits non-zero when the search fails.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "print the search result as JSON")
	searchCmd.Flags().StringVarP(&searchFilter, "filter", "f", "", "filter expression (default is search.filter)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	term := strings.ToLower(strings.Join(args, " "))
	if utf8.RuneCountInString(term) < cfg.Search.MinTermLength {
		return fmt.Errorf("search term %q is too short (minimum %d characters)", term, cfg.Search.MinTermLength)
	}

	expression := cfg.Search.Filter
	if cmd.Flags().Changed("filter") {
		expression = searchFilter
	}
	resultFilter, err := filter.Compile(expression)
	if err != nil {
		return fmt.Errorf("invalid filter expression: %w", err)
	}

	client, err := newYTSClient()
	if err != nil {
		return err
	}

	result := client.Search(cmd.Context(), term)
	if result.OK() {
		movies := filter.Apply(resultFilter, result.Movies)
		if len(movies) > cfg.Search.MaxResults {
			movies = movies[:cfg.Search.MaxResults]
		}
		result = yts.SearchResult{StatusCode: result.StatusCode, Movies: movies}
	}

	out := cmd.OutOrStdout()
	switch {
	case searchJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
	case !result.OK():
		fmt.Fprintln(cmd.ErrOrStderr(), result.ErrorMessage)
	case len(result.Movies) == 0:
		fmt.Fprintln(out, "No movies found matching that title or IMDb code.")
	default:
		fmt.Fprintln(out, renderMovies(result.Movies))
	}

	return result.Err()
}
