package qbittorrent

import "errors"

// Common errors returned by the qBittorrent client.
var (
	// ErrInvalidLink is returned when a link is neither http(s) nor magnet.
	ErrInvalidLink = errors.New("invalid torrent link")

	// ErrConnectionFailed is returned when connection to qBittorrent fails.
	ErrConnectionFailed = errors.New("connection to qBittorrent failed")

	// ErrInvalidConfig is returned when the client is misconfigured.
	ErrInvalidConfig = errors.New("invalid qBittorrent configuration")
)
