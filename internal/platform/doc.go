// Package platform contains OS and external tooling glue for the batch
// downloader: filesystem helpers, cookie and FFmpeg discovery, and playlist
// expansion through the ytdlp library.
package platform
