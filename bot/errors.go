package bot

import "errors"

// Replies sent back to users.
const (
	MessageTooShort  = "This term seems too short :thinking:\nHow about searching using an IMDb code or a longer movie title?"
	MessageNoResults = "Sorry. I couldn't find any movie with that title or IMDb code :confused:"
	MessageDone      = "That's all :popcorn:"
	MessageBusy      = "I'm busy with other searches right now :hourglass: Try again in a moment."
	MessageAddUsage  = "Usage: `%sadd <torrent url or magnet link>`"
	MessageAdded     = "Sent to qBittorrent :inbox_tray:"
	MessageAddFailed = "Couldn't hand that torrent to qBittorrent :warning:"
	MessageBadLink   = "That doesn't look like a torrent link or magnet :face_with_raised_eyebrow:"
	messagePong      = "Pong! :ping_pong:\nThe current latency is %dms"
)

// Common errors
var (
	// ErrMissingToken is returned when no Discord token is configured
	ErrMissingToken = errors.New("discord token is required")

	// ErrDispatcherClosed is returned when work is submitted after shutdown
	ErrDispatcherClosed = errors.New("dispatcher is closed")
)
