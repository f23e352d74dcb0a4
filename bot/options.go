package bot

import (
	"time"

	"github.com/s0up4200/popcorn/filter"
)

// Defaults applied when an option is not given.
const (
	DefaultPrefix        = "?"
	DefaultMinTermLength = 4
	DefaultMaxResults    = 10
	DefaultMessageDelay  = time.Second
	DefaultWorkers       = 4
)

// Option configures the command layer.
type Option func(*options)

// options holds configuration for a Handler and its Bot.
type options struct {
	prefix        string
	minTermLength int
	maxResults    int
	messageDelay  time.Duration
	workers       int
	filter        filter.Filter
	adder         TorrentAdder
	category      string
}

func defaultOptions() options {
	return options{
		prefix:        DefaultPrefix,
		minTermLength: DefaultMinTermLength,
		maxResults:    DefaultMaxResults,
		messageDelay:  DefaultMessageDelay,
		workers:       DefaultWorkers,
	}
}

// WithPrefix sets the command prefix.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		if prefix != "" {
			o.prefix = prefix
		}
	}
}

// WithMinTermLength sets the shortest accepted search term, in characters.
func WithMinTermLength(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.minTermLength = n
		}
	}
}

// WithMaxResults sets how many movies a search replies with. Values above
// DefaultMaxResults are clamped.
func WithMaxResults(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxResults = min(n, DefaultMaxResults)
		}
	}
}

// WithMessageDelay sets the pause between result messages. Zero disables
// pacing.
func WithMessageDelay(d time.Duration) Option {
	return func(o *options) {
		if d >= 0 {
			o.messageDelay = d
		}
	}
}

// WithWorkers sets how many commands may run at the same time.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithFilter narrows search results before they are sent.
func WithFilter(f filter.Filter) Option {
	return func(o *options) {
		o.filter = f
	}
}

// WithTorrentAdder enables the add command.
func WithTorrentAdder(adder TorrentAdder, category string) Option {
	return func(o *options) {
		o.adder = adder
		o.category = category
	}
}
