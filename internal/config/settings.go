package config

import "github.com/ytget/yt-batch/internal/model"

// Default values
const (
	DefaultOutputDir         = "./downloads"
	DefaultFilenameTemplate  = "%(uploader)s - %(title)s [%(id)s].%(ext)s"
	DefaultFormat            = "bestvideo[height>=720]+bestaudio/best[acodec!=none]"
	DefaultMergeOutputFormat = "mp4"
	DefaultAudioFormat       = "mp3"
	DefaultDelayMin          = 5
	DefaultDelayMax          = 10
)

// DefaultSubtitleLangs are the subtitle languages requested by default.
var DefaultSubtitleLangs = []string{"zh-CN", "zh-TW", "en"}

// Reserved top-level keys of an option file. They belong to the category
// loader and never reach the option set.
const (
	KeyCategories     = "categories"
	KeyGlobalSettings = "global_settings"
)

// Keys read from the global_settings block.
const (
	KeyCookiesFile       = "cookies_file"
	KeyDefaultOutputPath = "default_output_path"
)

// DefaultConfigPaths are probed in order when no option file is named.
var DefaultConfigPaths = []string{
	"yt-batch.yaml",
	"yt-batch.yml",
	"yt-batch.json",
	"yt-batch.toml",
	"config/config.yaml",
	"config/config.json",
	"config.json",
}

// Defaults returns the built-in option set.
func Defaults() model.Options {
	return model.Options{
		Format:            DefaultFormat,
		MergeOutputFormat: DefaultMergeOutputFormat,
		OutputDir:         DefaultOutputDir,
		OutputTemplate:    DefaultFilenameTemplate,
		SubtitleLangs:     append([]string(nil), DefaultSubtitleLangs...),
		WriteSubtitles:    true,
		WriteAutoSubs:     true,
		EmbedSubs:         true,
		WriteThumbnail:    true,
		EmbedThumbnail:    true,
		WriteInfoJSON:     true,
		WriteDescription:  true,
		IgnoreErrors:      true,
		AudioFormat:       DefaultAudioFormat,
	}
}

// DefaultDelay returns the built-in delay range.
func DefaultDelay() model.DelayRange {
	return model.DelayRange{Min: DefaultDelayMin, Max: DefaultDelayMax}
}
