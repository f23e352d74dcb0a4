// Package bot implements the Discord command layer.
//
// Incoming messages are matched against the configured prefix and handed to
// a bounded worker group, so a slow catalog never stalls the gateway event
// loop. Each command replies in the channel it came from.
//
// # Commands
//
//   - ping: reports the gateway heartbeat latency
//   - info: lists the available commands
//   - search <term>: looks a movie up by title or IMDb code
//   - add <link>: hands a torrent link to qBittorrent (when enabled)
//
// # Usage
//
//	b, err := bot.New(token, ytsClient, logger,
//	    bot.WithPrefix("?"),
//	    bot.WithWorkers(4),
//	)
//	if err != nil {
//	    return err
//	}
//	return b.Run(ctx)
package bot
