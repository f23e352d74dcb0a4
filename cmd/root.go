package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/s0up4200/popcorn/config"
	"github.com/s0up4200/popcorn/yts"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger

	version   = "dev"
	buildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "popcorn",
	Short: "A Discord bot that searches the YTS movie catalog",
	Long: `popcorn is a Discord bot that looks movies up in the YTS catalog by title
or IMDb code and replies with their torrent files. It can also run a single
search from the command line or expose the search over HTTP.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion records build information reported by --version and update
func SetVersion(v, built string) {
	version = v
	buildTime = built
	rootCmd.Version = fmt.Sprintf("%s (built %s)", v, built)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(updateCmd)
}

// initializeApp loads the configuration and sets up logging
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging, os.Stderr)
	return nil
}

// setupLogger configures the zerolog logger. Colour is only used on a
// terminal, and a rotating file sink is added when logging.file is set.
func setupLogger(cfg config.LoggingConfig, out *os.File) zerolog.Logger {
	zerolog.SetGlobalLevel(parseLevel(cfg.Level))

	writers := []io.Writer{consoleWriter(cfg, out, cfg.Color && isTerminal(out))}

	if cfg.File != "" {
		rotating := &lumberjack.Logger{
			Filename: cfg.File,
			MaxSize:  10,
			MaxAge:   15,
			Compress: true,
		}
		writers = append(writers, consoleWriter(cfg, rotating, false))
	}

	return zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
}

func consoleWriter(cfg config.LoggingConfig, out io.Writer, color bool) io.Writer {
	if cfg.Format == "json" {
		return out
	}
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !color,
	}
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// newYTSClient builds the catalog client from the loaded configuration
func newYTSClient() (*yts.Client, error) {
	client, err := yts.NewClient(cfg.YTS.BaseURL, logger,
		yts.WithTimeout(cfg.YTS.Timeout),
		yts.WithUserAgent("popcorn/"+version),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create YTS client: %w", err)
	}
	return client, nil
}
