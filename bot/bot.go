package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/s0up4200/popcorn/yts"
)

const intents = discordgo.IntentsGuildMessages |
	discordgo.IntentsDirectMessages |
	discordgo.IntentsMessageContent

// Bot connects the command handler to a Discord gateway session
type Bot struct {
	session *discordgo.Session
	handler *Handler
	workers int
	logger  zerolog.Logger
}

// New creates a Discord bot. The session is not opened until Run.
func New(token string, searcher yts.Searcher, logger zerolog.Logger, opts ...Option) (*Bot, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrMissingToken
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	session.Identify.Intents = intents

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	handler := NewHandler(searcher, &sessionMessenger{session: session}, logger, opts...)
	handler.latency = session.HeartbeatLatency

	return &Bot{
		session: session,
		handler: handler,
		workers: o.workers,
		logger:  logger.With().Str("component", "discord").Logger(),
	}, nil
}

// Run opens the gateway connection and serves commands until ctx is done.
// In-flight commands are awaited before the session closes.
func (b *Bot) Run(ctx context.Context) error {
	dispatcher := NewDispatcher(ctx, b.workers, b.logger)

	removeReady := b.session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		b.logger.Info().
			Str("user", r.User.String()).
			Int("guilds", len(r.Guilds)).
			Msg("Bot is running")
	})
	defer removeReady()

	removeMessage := b.session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		b.onMessage(ctx, dispatcher, m.Message)
	})
	defer removeMessage()

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord session: %w", err)
	}

	<-ctx.Done()
	b.logger.Info().Msg("Shutting down, waiting for running commands")

	if err := dispatcher.Close(); err != nil {
		b.logger.Error().Err(err).Msg("Dispatcher stopped with error")
	}
	if err := b.session.Close(); err != nil {
		return fmt.Errorf("failed to close discord session: %w", err)
	}
	return nil
}

func (b *Bot) onMessage(ctx context.Context, dispatcher *Dispatcher, m *discordgo.Message) {
	if !b.handler.Accepts(m) {
		return
	}

	channelID, content := m.ChannelID, m.Content
	started, err := dispatcher.TryDispatch(func(ctx context.Context) error {
		return b.handler.Handle(ctx, channelID, content)
	})
	if err != nil {
		return
	}
	if !started {
		b.logger.Warn().Str("channel", channelID).Msg("All workers busy")
		if err := b.handler.messenger.SendText(ctx, channelID, MessageBusy); err != nil {
			b.logger.Error().Err(err).Msg("Failed to send busy reply")
		}
	}
}

// sessionMessenger sends replies through the Discord REST API
type sessionMessenger struct {
	session *discordgo.Session
}

func (m *sessionMessenger) SendText(ctx context.Context, channelID, content string) error {
	_, err := m.session.ChannelMessageSend(channelID, content, discordgo.WithContext(ctx))
	return err
}

func (m *sessionMessenger) SendEmbed(ctx context.Context, channelID string, embed *discordgo.MessageEmbed) error {
	_, err := m.session.ChannelMessageSendEmbed(channelID, embed, discordgo.WithContext(ctx))
	return err
}
