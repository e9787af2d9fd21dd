package download

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/yt-batch/internal/logger"
	"github.com/ytget/yt-batch/internal/model"
)

// DefaultProgressInterval is how often download progress is logged.
const DefaultProgressInterval = 5 * time.Second

// YTDLP is an Extractor backed by the yt-dlp binary.
type YTDLP struct {
	log              *logger.Logger
	progressInterval time.Duration
}

// NewYTDLP creates an extractor logging progress to log.
func NewYTDLP(log *logger.Logger) *YTDLP {
	return &YTDLP{log: log, progressInterval: DefaultProgressInterval}
}

// command translates opts into yt-dlp flags.
func command(opts model.Options) *ytdlp.Command {
	dl := ytdlp.New()

	if opts.Format != "" {
		dl = dl.Format(opts.Format)
	}
	if opts.MergeOutputFormat != "" {
		dl = dl.MergeOutputFormat(opts.MergeOutputFormat)
	}
	if pattern := opts.OutputPattern(); pattern != "" {
		dl = dl.Output(pattern)
	}
	if len(opts.SubtitleLangs) > 0 {
		dl = dl.SubLangs(strings.Join(opts.SubtitleLangs, ","))
	}
	if opts.WriteSubtitles {
		dl = dl.WriteSubs()
	}
	if opts.WriteAutoSubs {
		dl = dl.WriteAutoSubs()
	}
	if opts.EmbedSubs {
		dl = dl.EmbedSubs()
	}
	if opts.WriteThumbnail {
		dl = dl.WriteThumbnail()
	}
	if opts.EmbedThumbnail {
		dl = dl.EmbedThumbnail()
	}
	if opts.WriteInfoJSON {
		dl = dl.WriteInfoJSON()
	}
	if opts.WriteDescription {
		dl = dl.WriteDescription()
	}
	if opts.IgnoreErrors {
		dl = dl.IgnoreErrors()
	}
	if opts.NoWarnings {
		dl = dl.NoWarnings()
	}
	if opts.ExtractAudio {
		dl = dl.ExtractAudio()
		if opts.AudioFormat != "" {
			dl = dl.AudioFormat(opts.AudioFormat)
		}
	}
	if opts.CookieFile != "" {
		dl = dl.Cookies(opts.CookieFile)
	}
	if opts.FFmpegLocation != "" {
		dl = dl.FFmpegLocation(opts.FFmpegLocation)
	}
	return dl
}

// Download runs yt-dlp for url and reports every file it produced.
func (y *YTDLP) Download(ctx context.Context, url string, opts model.Options, onFile func(model.DownloadedFile)) error {
	dl := command(opts).PrintJSON()

	dl.ProgressFunc(y.progressInterval, func(update ytdlp.ProgressUpdate) {
		if update.TotalBytes > 0 {
			percent := float64(update.DownloadedBytes) / float64(update.TotalBytes) * 100
			y.log.Debugf("%s: %.1f%%", url, percent)
		}
	})

	result, err := dl.Run(ctx, url)
	if err != nil {
		return err
	}
	if onFile == nil || result == nil {
		return nil
	}

	infos, err := result.GetExtractedInfo()
	if err != nil {
		y.log.Debugf("No file metadata for %s: %v", url, err)
		return nil
	}
	for _, info := range infos {
		if info == nil || info.Filename == nil || *info.Filename == "" {
			continue
		}
		path := *info.Filename
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		title := ""
		if info.Title != nil {
			title = *info.Title
		}
		onFile(model.DownloadedFile{URL: url, FilePath: path, Title: title})
	}
	return nil
}

// Extract asks yt-dlp for the metadata of url without downloading it.
func (y *YTDLP) Extract(ctx context.Context, url string, opts model.Options) (*model.VideoInfo, error) {
	dl := ytdlp.New().SkipDownload().DumpJSON().NoWarnings()
	if opts.CookieFile != "" {
		dl = dl.Cookies(opts.CookieFile)
	}
	if opts.FFmpegLocation != "" {
		dl = dl.FFmpegLocation(opts.FFmpegLocation)
	}

	result, err := dl.Run(ctx, url)
	if err != nil {
		return nil, err
	}
	return parseInfo(result.Stdout)
}

// parseInfo decodes the first JSON object line of yt-dlp output.
func parseInfo(stdout string) (*model.VideoInfo, error) {
	scanner := bufio.NewScanner(strings.NewReader(stdout))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "{") {
			continue
		}
		var info model.VideoInfo
		if err := json.Unmarshal([]byte(line), &info); err != nil {
			return nil, fmt.Errorf("decode video info: %w", err)
		}
		return &info, nil
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read video info: %w", err)
	}
	return nil, fmt.Errorf("no video info in yt-dlp output")
}
