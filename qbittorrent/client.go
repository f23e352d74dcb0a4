package qbittorrent

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/autobrr/go-qbittorrent"
	"github.com/rs/zerolog"
)

// Client wraps the qBittorrent API client
type Client struct {
	client *qbittorrent.Client
	logger zerolog.Logger
}

// NewClient creates a new qBittorrent client and logs in
func NewClient(ctx context.Context, host, username, password string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if strings.TrimSpace(host) == "" {
		return nil, fmt.Errorf("%w: URL is required", ErrInvalidConfig)
	}

	o := clientOptions{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	client := qbittorrent.NewClient(qbittorrent.Config{
		Host:          host,
		Username:      username,
		Password:      password,
		TLSSkipVerify: o.skipTLSVerify,
		BasicUser:     o.basicUser,
		BasicPass:     o.basicPass,
		Timeout:       int(o.timeout.Seconds()),
	})

	// Test connection by logging in
	if err := client.LoginCtx(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	c := &Client{
		client: client,
		logger: logger.With().Str("component", "qbittorrent").Logger(),
	}
	c.logger.Debug().Str("host", host).Msg("Successfully connected to qBittorrent")

	return c, nil
}

// Version returns the qBittorrent application version
func (c *Client) Version(ctx context.Context) (string, error) {
	version, err := c.client.GetAppVersionCtx(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get qBittorrent version: %w", err)
	}
	return version, nil
}

// AddTorrentURL adds a torrent by download URL or magnet link. An empty
// category leaves the torrent uncategorised.
func (c *Client) AddTorrentURL(ctx context.Context, link, category string) error {
	if err := ValidateLink(link); err != nil {
		return err
	}

	options := map[string]string{}
	if category != "" {
		options["category"] = category
	}

	if err := c.client.AddTorrentFromUrlCtx(ctx, link, options); err != nil {
		return fmt.Errorf("failed to add torrent: %w", err)
	}

	c.logger.Info().Str("category", category).Bool("magnet", isMagnet(link)).Msg("Added torrent")
	return nil
}

// ValidateLink accepts http(s) URLs with a host and magnet links carrying an
// exact topic
func ValidateLink(link string) error {
	link = strings.TrimSpace(link)
	if link == "" {
		return fmt.Errorf("%w: empty link", ErrInvalidLink)
	}

	if isMagnet(link) {
		u, err := url.Parse(link)
		if err != nil || u.Query().Get("xt") == "" {
			return fmt.Errorf("%w: magnet link without xt parameter", ErrInvalidLink)
		}
		return nil
	}

	u, err := url.Parse(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidLink, link)
	}
	return nil
}

func isMagnet(link string) bool {
	return strings.HasPrefix(strings.ToLower(link), "magnet:")
}
