package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFragmentFromMap(t *testing.T) {
	f, unknown, errs := FragmentFromMap(map[string]any{
		"extract_audio":   true,
		"audio_format":    "flac",
		"subtitle_langs":  "en, ja",
		"embed_thumbnail": "no",
		"quality":         "high",
		"bogus":           1,
	})

	if len(errs) != 0 {
		t.Fatalf("Expected no errors, got %v", errs)
	}
	if !reflect.DeepEqual(unknown, []string{"bogus", "quality"}) {
		t.Errorf("Expected sorted unknown keys, got %v", unknown)
	}
	if f.ExtractAudio == nil || !*f.ExtractAudio {
		t.Error("Expected extract_audio=true")
	}
	if f.AudioFormat == nil || *f.AudioFormat != "flac" {
		t.Errorf("Expected flac, got %v", f.AudioFormat)
	}
	if !reflect.DeepEqual(f.SubtitleLangs, []string{"en", "ja"}) {
		t.Errorf("Expected [en ja], got %v", f.SubtitleLangs)
	}
	if f.EmbedThumbnail == nil || *f.EmbedThumbnail {
		t.Error("Expected embed_thumbnail=false")
	}
}

func TestFragmentFromMapTypeErrors(t *testing.T) {
	_, _, errs := FragmentFromMap(map[string]any{
		"writesubtitles": "maybe",
		"subtitleslangs": []any{"en", 3},
	})
	if len(errs) != 2 {
		t.Errorf("Expected 2 errors, got %d: %v", len(errs), errs)
	}
}

func TestAsInt(t *testing.T) {
	tests := []struct {
		in   any
		want int
		ok   bool
	}{
		{3, 3, true},
		{int64(7), 7, true},
		{float64(5), 5, true},
		{float64(5.5), 0, false},
		{"5", 0, false},
	}
	for _, tt := range tests {
		got, ok := AsInt(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("AsInt(%v) = %d,%v expected %d,%v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLoadFileFormats(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
		wantErr bool
		wantLen int
	}{
		{"a.json", `{"format": "best", "ignoreerrors": true}`, false, 2},
		{"b.json", `{"format": `, true, 0},
		{"c.yaml", "format: best\n", false, 1},
		{"d.yml", "", false, 0},
		{"e.toml", "format = \"best\"\n[global_settings]\ncookies_file = \"c.txt\"\n", false, 2},
		{"f.toml", "format = ", true, 0},
		{"g.json", "  \n", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.name, tt.content)
			m, err := LoadFile(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadFile error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var fe *FileError
				if !errors.As(err, &fe) || fe.Path != path {
					t.Errorf("Expected *FileError for %s, got %T", path, err)
				}
				return
			}
			if len(m) != tt.wantLen {
				t.Errorf("Expected %d keys, got %d (%v)", tt.wantLen, len(m), m)
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}
