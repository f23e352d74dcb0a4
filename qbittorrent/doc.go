// Package qbittorrent hands torrent links to a qBittorrent instance.
//
// This package wraps the autobrr/go-qbittorrent library and exposes the one
// operation the bot needs: adding a torrent by URL or magnet link into a
// category.
//
// # Usage
//
//	client, err := qbittorrent.NewClient(ctx, url, username, password, logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = client.AddTorrentURL(ctx, "magnet:?xt=urn:btih:...", "popcorn")
package qbittorrent
