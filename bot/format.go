package bot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/s0up4200/popcorn/yts"
)

// Embed colours
const (
	colorMovie = 0x008000 // green
	colorInfo  = 0xFF7F50 // coral
)

// Discord rejects embeds with more fields than this
const maxEmbedFields = 25

// movieEmbed renders one search result. Absent values are left out.
func movieEmbed(movie yts.Movie) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       strings.ToUpper(deref(movie.Title)),
		URL:         deref(movie.URL),
		Description: movieDescription(movie),
		Color:       colorMovie,
	}

	if movie.PosterURL != nil && *movie.PosterURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: *movie.PosterURL}
	}

	for i, file := range movie.Files {
		if i == maxEmbedFields {
			break
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   fileFieldName(file),
			Value:  fileFieldValue(file),
			Inline: false,
		})
	}

	return embed
}

func movieDescription(movie yts.Movie) string {
	var parts []string
	if movie.Year != nil {
		parts = append(parts, strconv.Itoa(*movie.Year))
	}
	if movie.Rating != nil {
		parts = append(parts, fmt.Sprintf(":star: %.1f", *movie.Rating))
	}
	if label := movie.RuntimeLabel(); label != "" {
		parts = append(parts, label)
	}
	if len(movie.Genres) > 0 {
		parts = append(parts, strings.Join(movie.Genres, ", "))
	}
	return strings.Join(parts, " | ")
}

// fileFieldName renders "{TYPE} {quality} ({size})"
func fileFieldName(file yts.MovieFile) string {
	var parts []string
	if file.Type != nil && *file.Type != "" {
		parts = append(parts, strings.ToUpper(*file.Type))
	}
	if file.Quality != nil && *file.Quality != "" {
		parts = append(parts, *file.Quality)
	}
	if file.Size != nil && *file.Size != "" {
		parts = append(parts, "("+*file.Size+")")
	}
	if len(parts) == 0 {
		return "File"
	}
	return strings.Join(parts, " ")
}

func fileFieldValue(file yts.MovieFile) string {
	if file.URL == nil || *file.URL == "" {
		return "No download link"
	}
	return fmt.Sprintf(":link: [Download](%s)", *file.URL)
}

// infoEmbed lists the available commands
func infoEmbed(prefix string, withAdd bool) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "Commands",
		Description: "These are all the commands I can run :point_down:",
		Color:       colorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  prefix + "ping",
				Value: "Shows the current latency of the BOT.",
			},
			{
				Name:  prefix + "search <movie_title> | <imdb_code>",
				Value: fmt.Sprintf("Searches for movie occurrences (max %d) based on the given title or IMDb code.", DefaultMaxResults),
			},
		},
	}

	if withAdd {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  prefix + "add <torrent_url> | <magnet>",
			Value: "Sends a torrent to qBittorrent.",
		})
	}

	return embed
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
