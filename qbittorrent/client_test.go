package qbittorrent

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLink(t *testing.T) {
	tests := []struct {
		name    string
		link    string
		wantErr bool
	}{
		{"https torrent", "https://yts.mx/torrent/download/ABC", false},
		{"http torrent", "http://tracker.local/file.torrent", false},
		{"magnet", "magnet:?xt=urn:btih:c9e15763f722f23e98a29decdfae341b98d53056&dn=Movie", false},
		{"upper-case magnet scheme", "MAGNET:?xt=urn:btih:abc", false},
		{"empty", "   ", true},
		{"magnet without topic", "magnet:?dn=Movie", true},
		{"ftp", "ftp://example.com/file.torrent", true},
		{"no scheme", "yts.mx/torrent/download/ABC", true},
		{"no host", "https:///file.torrent", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLink(tt.link)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidLink)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewClientRequiresURL(t *testing.T) {
	_, err := NewClient(context.Background(), "", "admin", "secret", zerolog.Nop())
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

type fakeWebUI struct {
	mu       sync.Mutex
	urls     string
	category string
	adds     int
}

func (f *fakeWebUI) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v2/auth/login":
			http.SetCookie(w, &http.Cookie{Name: "SID", Value: "session"})
			_, _ = w.Write([]byte("Ok."))
		case "/api/v2/torrents/add":
			f.mu.Lock()
			f.urls = r.FormValue("urls")
			f.category = r.FormValue("category")
			f.adds++
			f.mu.Unlock()
			_, _ = w.Write([]byte("Ok."))
		case "/api/v2/app/version":
			_, _ = w.Write([]byte("v4.6.5"))
		case "/api/v2/app/webapiVersion":
			_, _ = w.Write([]byte("2.9.3"))
		default:
			_, _ = w.Write([]byte("Ok."))
		}
	}
}

func TestAddTorrentURL(t *testing.T) {
	webUI := &fakeWebUI{}
	server := httptest.NewServer(webUI.handler())
	t.Cleanup(server.Close)

	client, err := NewClient(context.Background(), server.URL, "admin", "secret", zerolog.Nop())
	require.NoError(t, err)

	link := "magnet:?xt=urn:btih:c9e15763f722f23e98a29decdfae341b98d53056"
	require.NoError(t, client.AddTorrentURL(context.Background(), link, "popcorn"))

	webUI.mu.Lock()
	defer webUI.mu.Unlock()
	assert.Equal(t, 1, webUI.adds)
	assert.Equal(t, link, webUI.urls)
	assert.Equal(t, "popcorn", webUI.category)
}

func TestAddTorrentURLRejectsInvalidLink(t *testing.T) {
	webUI := &fakeWebUI{}
	server := httptest.NewServer(webUI.handler())
	t.Cleanup(server.Close)

	client, err := NewClient(context.Background(), server.URL, "admin", "secret", zerolog.Nop())
	require.NoError(t, err)

	err = client.AddTorrentURL(context.Background(), "not a link", "popcorn")
	assert.ErrorIs(t, err, ErrInvalidLink)

	webUI.mu.Lock()
	defer webUI.mu.Unlock()
	assert.Zero(t, webUI.adds, "invalid links must not reach qBittorrent")
}
