package model

import (
	"path/filepath"
	"reflect"
	"slices"
)

// Options is the effective option set handed to the extractor for one item.
// Values are copied per item, never shared.
type Options struct {
	Format            string
	MergeOutputFormat string
	OutputDir         string
	OutputTemplate    string // file name template, joined with OutputDir
	SubtitleLangs     []string
	WriteSubtitles    bool
	WriteAutoSubs     bool
	EmbedSubs         bool
	WriteThumbnail    bool
	EmbedThumbnail    bool
	WriteInfoJSON     bool
	WriteDescription  bool
	IgnoreErrors      bool
	NoWarnings        bool
	ExtractAudio      bool
	AudioFormat       string
	CookieFile        string
	FFmpegLocation    string // directory containing the ffmpeg binary
}

// Clone returns a deep copy of o.
func (o Options) Clone() Options {
	c := o
	if o.SubtitleLangs != nil {
		c.SubtitleLangs = append([]string(nil), o.SubtitleLangs...)
	}
	return c
}

// OutputPattern is the full output template passed to the extractor.
func (o Options) OutputPattern() string {
	if o.OutputTemplate == "" || filepath.IsAbs(o.OutputTemplate) {
		return o.OutputTemplate
	}
	return filepath.Join(o.OutputDir, o.OutputTemplate)
}

// FileExtension is the extension the finished file is expected to carry.
func (o Options) FileExtension() string {
	if o.ExtractAudio && o.AudioFormat != "" {
		return o.AudioFormat
	}
	if o.MergeOutputFormat != "" {
		return o.MergeOutputFormat
	}
	return "mp4"
}

// Fragment is a partial option set. A nil field leaves the value below it
// untouched when merged.
type Fragment struct {
	Format            *string
	MergeOutputFormat *string
	OutputDir         *string
	OutputTemplate    *string
	SubtitleLangs     []string
	WriteSubtitles    *bool
	WriteAutoSubs     *bool
	EmbedSubs         *bool
	WriteThumbnail    *bool
	EmbedThumbnail    *bool
	WriteInfoJSON     *bool
	WriteDescription  *bool
	IgnoreErrors      *bool
	NoWarnings        *bool
	ExtractAudio      *bool
	AudioFormat       *string
	CookieFile        *string
	FFmpegLocation    *string
}

// IsEmpty reports whether f sets nothing.
func (f Fragment) IsEmpty() bool {
	return f.SubtitleLangs == nil &&
		f.Format == nil && f.MergeOutputFormat == nil &&
		f.OutputDir == nil && f.OutputTemplate == nil &&
		f.WriteSubtitles == nil && f.WriteAutoSubs == nil && f.EmbedSubs == nil &&
		f.WriteThumbnail == nil && f.EmbedThumbnail == nil &&
		f.WriteInfoJSON == nil && f.WriteDescription == nil &&
		f.IgnoreErrors == nil && f.NoWarnings == nil &&
		f.ExtractAudio == nil && f.AudioFormat == nil &&
		f.CookieFile == nil && f.FFmpegLocation == nil
}

// ApplyTo overwrites every field of o that f sets.
func (f Fragment) ApplyTo(o *Options) {
	setString(&o.Format, f.Format)
	setString(&o.MergeOutputFormat, f.MergeOutputFormat)
	setString(&o.OutputDir, f.OutputDir)
	setString(&o.OutputTemplate, f.OutputTemplate)
	if f.SubtitleLangs != nil {
		o.SubtitleLangs = append([]string(nil), f.SubtitleLangs...)
	}
	setBool(&o.WriteSubtitles, f.WriteSubtitles)
	setBool(&o.WriteAutoSubs, f.WriteAutoSubs)
	setBool(&o.EmbedSubs, f.EmbedSubs)
	setBool(&o.WriteThumbnail, f.WriteThumbnail)
	setBool(&o.EmbedThumbnail, f.EmbedThumbnail)
	setBool(&o.WriteInfoJSON, f.WriteInfoJSON)
	setBool(&o.WriteDescription, f.WriteDescription)
	setBool(&o.IgnoreErrors, f.IgnoreErrors)
	setBool(&o.NoWarnings, f.NoWarnings)
	setBool(&o.ExtractAudio, f.ExtractAudio)
	setString(&o.AudioFormat, f.AudioFormat)
	setString(&o.CookieFile, f.CookieFile)
	setString(&o.FFmpegLocation, f.FFmpegLocation)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func optionsEqual(a, b Options) bool {
	if !slices.Equal(a.SubtitleLangs, b.SubtitleLangs) {
		return false
	}
	a.SubtitleLangs, b.SubtitleLangs = nil, nil
	return reflect.DeepEqual(a, b)
}

// Equal reports whether o and other hold the same values.
func (o Options) Equal(other Options) bool {
	return optionsEqual(o, other)
}
