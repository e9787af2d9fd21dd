// Package download drives the sequential batch: it hands each work item to
// an Extractor built on top of yt-dlp (via github.com/lrstanley/go-ytdlp),
// records every outcome in a RunResult, and pauses a random number of
// seconds between items.
package download
