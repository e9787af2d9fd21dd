package download

import (
	"context"

	"github.com/ytget/yt-batch/internal/model"
)

// Extractor is the download and metadata capability the runner drives.
type Extractor interface {
	// Download fetches url with opts, calling onFile once for every
	// finished file.
	Download(ctx context.Context, url string, opts model.Options, onFile func(model.DownloadedFile)) error

	// Extract returns the metadata of url without downloading it.
	Extract(ctx context.Context, url string, opts model.Options) (*model.VideoInfo, error)
}
