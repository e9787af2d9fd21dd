package platform

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ytget/yt-batch/internal/model"
	"github.com/ytget/ytdlp/v2"
)

// Timeout constants
const (
	DefaultParseTimeout = 60 * time.Second
)

// URL parameters and separators
const (
	PlaylistParam  = "list="
	ParamSeparator = "&"
)

// URL templates
const (
	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// Default values
const (
	DefaultPlaylistName = "Unknown Playlist"
	PlaylistSuffix      = " Playlist"
	MinPrefixLength     = 10
)

// PlaylistItem is one entry returned by a playlist fetcher.
type PlaylistItem struct {
	VideoID string
	Title   string
}

// PlaylistFetcher lists the items of a playlist by ID.
type PlaylistFetcher interface {
	FetchPlaylist(ctx context.Context, playlistID string) ([]PlaylistItem, error)
}

// ytdlpFetcher fetches playlist items through the ytdlp library.
type ytdlpFetcher struct{}

func (ytdlpFetcher) FetchPlaylist(ctx context.Context, playlistID string) ([]PlaylistItem, error) {
	items, err := ytdlp.New().GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, err
	}
	out := make([]PlaylistItem, 0, len(items))
	for _, it := range items {
		out = append(out, PlaylistItem{VideoID: it.VideoID, Title: it.Title})
	}
	return out, nil
}

// PlaylistExpander turns playlist URLs into per-video watch URLs.
type PlaylistExpander struct {
	fetcher PlaylistFetcher
	timeout time.Duration
}

// NewPlaylistExpander creates an expander backed by the ytdlp library.
func NewPlaylistExpander() *PlaylistExpander {
	return NewPlaylistExpanderWithFetcher(ytdlpFetcher{})
}

// NewPlaylistExpanderWithFetcher creates an expander over a custom fetcher.
func NewPlaylistExpanderWithFetcher(fetcher PlaylistFetcher) *PlaylistExpander {
	return &PlaylistExpander{
		fetcher: fetcher,
		timeout: DefaultParseTimeout,
	}
}

// SetTimeout sets the timeout for a single playlist fetch
func (p *PlaylistExpander) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

// IsPlaylistURL reports whether url carries a playlist ID.
func IsPlaylistURL(url string) bool {
	return ExtractPlaylistID(url) != ""
}

// ExtractPlaylistID extracts the playlist ID from various URL formats
func ExtractPlaylistID(url string) string {
	if !strings.Contains(url, PlaylistParam) {
		return ""
	}
	parts := strings.SplitN(url, PlaylistParam, 2)
	id, _, _ := strings.Cut(parts[1], ParamSeparator)
	return id
}

// ParsePlaylist fetches the playlist behind url.
func (p *PlaylistExpander) ParsePlaylist(ctx context.Context, url string) (*model.Playlist, error) {
	if !strings.Contains(url, PlaylistParam) {
		return nil, fmt.Errorf("invalid playlist URL: %s", url)
	}

	playlistID := ExtractPlaylistID(url)
	if playlistID == "" {
		return nil, fmt.Errorf("could not extract playlist ID from URL: %s", url)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	items, err := p.fetcher.FetchPlaylist(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	playlist := model.NewPlaylist(url)
	playlist.ID = playlistID
	for _, it := range items {
		if it.VideoID == "" {
			continue
		}
		playlist.AddVideo(&model.PlaylistVideo{
			ID:    it.VideoID,
			Title: it.Title,
			URL:   fmt.Sprintf(YouTubeVideoURLTemplate, it.VideoID),
		})
	}
	playlist.Title = playlistTitle(playlist.Videos)

	return playlist, nil
}

// Expand fetches the playlist behind url. A playlist without videos is an
// error.
func (p *PlaylistExpander) Expand(ctx context.Context, url string) (*model.Playlist, error) {
	playlist, err := p.ParsePlaylist(ctx, url)
	if err != nil {
		return nil, err
	}
	if len(playlist.Videos) == 0 {
		return nil, fmt.Errorf("playlist %s is empty", playlist.ID)
	}
	return playlist, nil
}

// playlistTitle derives a name from the common prefix of the video titles.
func playlistTitle(videos []*model.PlaylistVideo) string {
	if len(videos) == 0 {
		return DefaultPlaylistName
	}
	prefix := videos[0].Title
	for _, v := range videos[1:] {
		for !strings.HasPrefix(v.Title, prefix) {
			prefix = prefix[:len(prefix)-1]
			if prefix == "" {
				return DefaultPlaylistName
			}
		}
	}
	prefix = strings.TrimSpace(strings.TrimRight(prefix, " -|:"))
	if len(prefix) < MinPrefixLength {
		return DefaultPlaylistName
	}
	return prefix + PlaylistSuffix
}
