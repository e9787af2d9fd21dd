package download

import (
	"context"
	"fmt"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/yt-batch/internal/logger"
)

// InstallTools downloads the yt-dlp, ffmpeg and ffprobe binaries into the
// go-ytdlp cache when they are not already available.
func InstallTools(ctx context.Context, log *logger.Logger) error {
	log.Infof("Installing yt-dlp...")
	if _, err := ytdlp.Install(ctx, nil); err != nil {
		return fmt.Errorf("install yt-dlp: %w", err)
	}
	log.Infof("Installing ffmpeg...")
	if _, err := ytdlp.InstallFFmpeg(ctx, nil); err != nil {
		return fmt.Errorf("install ffmpeg: %w", err)
	}
	log.Infof("Installing ffprobe...")
	if _, err := ytdlp.InstallFFprobe(ctx, nil); err != nil {
		return fmt.Errorf("install ffprobe: %w", err)
	}
	log.Infof("Tools installed successfully")
	return nil
}
