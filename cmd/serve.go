package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/popcorn/api"
	"github.com/s0up4200/popcorn/bot"
	"github.com/s0up4200/popcorn/filter"
	"github.com/s0up4200/popcorn/qbittorrent"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Discord bot",
	Long: `Connect to Discord and answer search commands until interrupted.

When api.enabled is set the HTTP search API is served alongside the bot, and
when qbittorrent.enabled is set the add command hands torrents to qBittorrent.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := cfg.ValidateDiscord(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := newYTSClient()
	if err != nil {
		return err
	}

	resultFilter, err := filter.Compile(cfg.Search.Filter)
	if err != nil {
		return fmt.Errorf("invalid search.filter: %w", err)
	}

	opts := []bot.Option{
		bot.WithPrefix(cfg.Discord.Prefix),
		bot.WithMinTermLength(cfg.Search.MinTermLength),
		bot.WithMaxResults(cfg.Search.MaxResults),
		bot.WithMessageDelay(cfg.Search.MessageDelay),
		bot.WithWorkers(cfg.Search.Workers),
		bot.WithFilter(resultFilter),
	}

	if cfg.QBittorrent.Enabled {
		qb, err := qbittorrent.NewClient(ctx, cfg.QBittorrent.URL, cfg.QBittorrent.Username, cfg.QBittorrent.Password, logger)
		if err != nil {
			return err
		}
		if v, err := qb.Version(ctx); err == nil {
			logger.Info().Str("version", v).Msg("qBittorrent integration enabled")
		}
		opts = append(opts, bot.WithTorrentAdder(qb, cfg.QBittorrent.Category))
	}

	b, err := bot.New(cfg.Discord.Token, client, logger, opts...)
	if err != nil {
		return err
	}

	logger.Info().
		Str("version", version).
		Str("catalog", cfg.YTS.BaseURL).
		Str("prefix", cfg.Discord.Prefix).
		Msg("Starting popcorn")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return b.Run(gctx)
	})

	if cfg.API.Enabled {
		srv := api.NewServer(cfg.API.Addr, client, cfg.Search.MinTermLength, logger)
		g.Go(func() error {
			return srv.Start(gctx)
		})
	}

	return g.Wait()
}
