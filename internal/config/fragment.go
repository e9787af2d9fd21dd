package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ytget/yt-batch/internal/model"
)

type fieldSetter func(f *model.Fragment, v any) error

func stringField(get func(f *model.Fragment) **string) fieldSetter {
	return func(f *model.Fragment, v any) error {
		s, ok := asString(v)
		if !ok {
			return fmt.Errorf("expected a string, got %T", v)
		}
		*get(f) = &s
		return nil
	}
}

func boolField(get func(f *model.Fragment) **bool) fieldSetter {
	return func(f *model.Fragment, v any) error {
		b, ok := asBool(v)
		if !ok {
			return fmt.Errorf("expected a boolean, got %T", v)
		}
		*get(f) = &b
		return nil
	}
}

func langsField(f *model.Fragment, v any) error {
	langs, ok := asStringSlice(v)
	if !ok {
		return fmt.Errorf("expected a list of strings, got %T", v)
	}
	f.SubtitleLangs = langs
	return nil
}

// optionKeys maps option-file keys to fragment fields. Both the extractor's
// option names and the category spellings are accepted.
var optionKeys = map[string]fieldSetter{
	"format":              stringField(func(f *model.Fragment) **string { return &f.Format }),
	"merge_output_format": stringField(func(f *model.Fragment) **string { return &f.MergeOutputFormat }),
	"outtmpl":             stringField(func(f *model.Fragment) **string { return &f.OutputTemplate }),
	"output_path":         stringField(func(f *model.Fragment) **string { return &f.OutputDir }),
	"subtitleslangs":      langsField,
	"subtitle_langs":      langsField,
	"writesubtitles":      boolField(func(f *model.Fragment) **bool { return &f.WriteSubtitles }),
	"writeautomaticsub":   boolField(func(f *model.Fragment) **bool { return &f.WriteAutoSubs }),
	"embed_subs":          boolField(func(f *model.Fragment) **bool { return &f.EmbedSubs }),
	"embedsubtitles":      boolField(func(f *model.Fragment) **bool { return &f.EmbedSubs }),
	"writethumbnail":      boolField(func(f *model.Fragment) **bool { return &f.WriteThumbnail }),
	"embed_thumbnail":     boolField(func(f *model.Fragment) **bool { return &f.EmbedThumbnail }),
	"embedthumbnail":      boolField(func(f *model.Fragment) **bool { return &f.EmbedThumbnail }),
	"writeinfojson":       boolField(func(f *model.Fragment) **bool { return &f.WriteInfoJSON }),
	"writedescription":    boolField(func(f *model.Fragment) **bool { return &f.WriteDescription }),
	"ignoreerrors":        boolField(func(f *model.Fragment) **bool { return &f.IgnoreErrors }),
	"no_warnings":         boolField(func(f *model.Fragment) **bool { return &f.NoWarnings }),
	"extractaudio":        boolField(func(f *model.Fragment) **bool { return &f.ExtractAudio }),
	"extract_audio":       boolField(func(f *model.Fragment) **bool { return &f.ExtractAudio }),
	"audioformat":         stringField(func(f *model.Fragment) **string { return &f.AudioFormat }),
	"audio_format":        stringField(func(f *model.Fragment) **string { return &f.AudioFormat }),
	"cookiefile":          stringField(func(f *model.Fragment) **string { return &f.CookieFile }),
	"ffmpeg_location":     stringField(func(f *model.Fragment) **string { return &f.FFmpegLocation }),
}

// FragmentFromMap converts a decoded option mapping into a Fragment. Keys
// that are not options are returned in sorted order as unknown; values of
// the wrong type are returned as errors, one per key, and skipped.
func FragmentFromMap(m map[string]any) (model.Fragment, []string, []error) {
	var (
		f       model.Fragment
		unknown []string
		errs    []error
	)

	for key, value := range m {
		setter, ok := optionKeys[key]
		if !ok {
			unknown = append(unknown, key)
			continue
		}
		if err := setter(&f, value); err != nil {
			errs = append(errs, fmt.Errorf("option %q: %w", key, err))
		}
	}

	sort.Strings(unknown)
	sort.Slice(errs, func(i, j int) bool { return errs[i].Error() < errs[j].Error() })
	return f, unknown, errs
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asBool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "yes", "on", "1":
			return true, true
		case "false", "no", "off", "0":
			return false, true
		}
	}
	return false, false
}

// asStringSlice accepts a list of strings or a comma separated string.
func asStringSlice(v any) ([]string, bool) {
	switch s := v.(type) {
	case []string:
		return append([]string{}, s...), true
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			str, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, str)
		}
		return out, true
	case string:
		out := []string{}
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out, true
	}
	return nil, false
}

// AsInt converts a decoded numeric value to int.
func AsInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

// AsString is the exported form of the string coercion used for options.
func AsString(v any) (string, bool) {
	return asString(v)
}

// AsStringSlice is the exported form of the list coercion used for options.
func AsStringSlice(v any) ([]string, bool) {
	return asStringSlice(v)
}
