package model

import "fmt"

// VideoInfo is the metadata returned by the extractor without downloading.
type VideoInfo struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Duration       float64 `json:"duration"`
	Uploader       string  `json:"uploader"`
	ViewCount      int64   `json:"view_count"`
	Season         string  `json:"season"`
	Series         string  `json:"series"`
	Filesize       int64   `json:"filesize"`
	FilesizeApprox float64 `json:"filesize_approx"` // estimate, often set when filesize is null
	Ext            string  `json:"ext"`
}

// Size returns the exact file size, or the approximate one when yt-dlp did
// not report it. Zero means unknown.
func (v *VideoInfo) Size() int64 {
	if v.Filesize > 0 {
		return v.Filesize
	}
	if v.FilesizeApprox > 0 {
		return int64(v.FilesizeApprox)
	}
	return 0
}

// Time formatting constants
const (
	SecondsPerHour   = 3600
	SecondsPerMinute = 60
)

// DurationString formats the duration as m:ss or h:mm:ss, or "N/A" when it
// is unknown.
func (v *VideoInfo) DurationString() string {
	seconds := int(v.Duration)
	if seconds <= 0 {
		return "N/A"
	}
	hours := seconds / SecondsPerHour
	minutes := (seconds % SecondsPerHour) / SecondsPerMinute
	secs := seconds % SecondsPerMinute
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}
