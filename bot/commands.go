package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/s0up4200/popcorn/filter"
	"github.com/s0up4200/popcorn/qbittorrent"
	"github.com/s0up4200/popcorn/yts"
)

// Messenger sends replies to a channel
type Messenger interface {
	SendText(ctx context.Context, channelID, content string) error
	SendEmbed(ctx context.Context, channelID string, embed *discordgo.MessageEmbed) error
}

// TorrentAdder hands a torrent link to a download client
type TorrentAdder interface {
	AddTorrentURL(ctx context.Context, link, category string) error
}

// Handler executes commands. It knows nothing about the Discord gateway and
// can be driven directly in tests.
type Handler struct {
	searcher  yts.Searcher
	messenger Messenger
	latency   func() time.Duration
	opts      options
	logger    zerolog.Logger
}

// NewHandler creates a command handler
func NewHandler(searcher yts.Searcher, messenger Messenger, logger zerolog.Logger, opts ...Option) *Handler {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Handler{
		searcher:  searcher,
		messenger: messenger,
		latency:   func() time.Duration { return 0 },
		opts:      o,
		logger:    logger.With().Str("component", "bot").Logger(),
	}
}

// Command is a parsed prefix command
type Command struct {
	Name string
	Args []string
}

// Parse extracts a command from message content. It reports false when the
// content does not start with the prefix or names no command.
func (h *Handler) Parse(content string) (Command, bool) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(content), h.opts.prefix)
	if !ok {
		return Command{}, false
	}

	fields := strings.Fields(rest)
	if len(fields) == 0 || rest[0] == ' ' {
		return Command{}, false
	}

	return Command{
		Name: strings.ToLower(fields[0]),
		Args: fields[1:],
	}, true
}

// Accepts reports whether a message should be handled. Messages written by
// bots, this one included, are ignored.
func (h *Handler) Accepts(m *discordgo.Message) bool {
	if m == nil || m.Author == nil || m.Author.Bot {
		return false
	}
	cmd, ok := h.Parse(m.Content)
	return ok && h.known(cmd.Name)
}

func (h *Handler) known(name string) bool {
	switch name {
	case "ping", "info", "search":
		return true
	case "add":
		return h.opts.adder != nil
	default:
		return false
	}
}

// Handle runs the command contained in content, replying to channelID
func (h *Handler) Handle(ctx context.Context, channelID, content string) error {
	cmd, ok := h.Parse(content)
	if !ok {
		return nil
	}

	switch cmd.Name {
	case "ping":
		return h.ping(ctx, channelID)
	case "info":
		return h.messenger.SendEmbed(ctx, channelID, infoEmbed(h.opts.prefix, h.opts.adder != nil))
	case "search":
		return h.Search(ctx, channelID, cmd.Args)
	case "add":
		if h.opts.adder == nil {
			return nil
		}
		return h.add(ctx, channelID, cmd.Args)
	default:
		h.logger.Debug().Str("command", cmd.Name).Msg("Unknown command")
		return nil
	}
}

func (h *Handler) ping(ctx context.Context, channelID string) error {
	return h.messenger.SendText(ctx, channelID, fmt.Sprintf(messagePong, h.latency().Milliseconds()))
}

// Search runs one catalog search and replies with the outcome
func (h *Handler) Search(ctx context.Context, channelID string, args []string) error {
	term := strings.ToLower(strings.Join(args, " "))

	if utf8.RuneCountInString(term) < h.opts.minTermLength {
		return h.messenger.SendText(ctx, channelID, MessageTooShort)
	}

	result := h.searcher.Search(ctx, term)

	log := h.logger.With().
		Str("term", term).
		Str("kind", result.Kind().String()).
		Int("status", result.StatusCode).
		Logger()

	if !result.OK() {
		log.Info().Msg("Search failed")
		return h.messenger.SendText(ctx, channelID, result.ErrorMessage)
	}

	movies := filter.Apply(h.opts.filter, result.Movies)
	if len(movies) == 0 {
		log.Info().Int("found", len(result.Movies)).Msg("No movies to show")
		return h.messenger.SendText(ctx, channelID, MessageNoResults)
	}

	if len(movies) > h.opts.maxResults {
		movies = movies[:h.opts.maxResults]
	}

	log.Info().
		Int("found", len(result.Movies)).
		Int("shown", len(movies)).
		Msg("Sending search results")

	limiter := newPacer(h.opts.messageDelay)
	for _, movie := range movies {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}
		if err := h.messenger.SendEmbed(ctx, channelID, movieEmbed(movie)); err != nil {
			return fmt.Errorf("failed to send movie embed: %w", err)
		}
	}

	if err := limiter.Wait(ctx); err != nil {
		return err
	}
	return h.messenger.SendText(ctx, channelID, MessageDone)
}

func (h *Handler) add(ctx context.Context, channelID string, args []string) error {
	if len(args) != 1 {
		return h.messenger.SendText(ctx, channelID, fmt.Sprintf(MessageAddUsage, h.opts.prefix))
	}

	err := h.opts.adder.AddTorrentURL(ctx, args[0], h.opts.category)
	switch {
	case err == nil:
		h.logger.Info().Str("category", h.opts.category).Msg("Torrent added")
		return h.messenger.SendText(ctx, channelID, MessageAdded)
	case errors.Is(err, qbittorrent.ErrInvalidLink):
		return h.messenger.SendText(ctx, channelID, MessageBadLink)
	default:
		h.logger.Error().Err(err).Msg("Failed to add torrent")
		return h.messenger.SendText(ctx, channelID, MessageAddFailed)
	}
}

// newPacer allows one message immediately and one per delay afterwards
func newPacer(delay time.Duration) *rate.Limiter {
	if delay <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(delay), 1)
}
