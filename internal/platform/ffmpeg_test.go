package platform

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
)

func TestFFmpegBinary(t *testing.T) {
	got := FFmpegBinary("/opt/bin")
	if filepath.Dir(got) != "/opt/bin" {
		t.Errorf("Expected binary inside /opt/bin, got %q", got)
	}
	if !strings.HasPrefix(filepath.Base(got), FFmpegCommand) {
		t.Errorf("Expected ffmpeg binary name, got %q", filepath.Base(got))
	}
}

func TestVerifyFFmpeg_Missing(t *testing.T) {
	_, err := VerifyFFmpeg(context.Background(), filepath.Join(t.TempDir(), "ffmpeg"))
	if err == nil {
		t.Fatal("Expected error for missing binary, got nil")
	}
	if !strings.Contains(err.Error(), "ffmpeg not found") {
		t.Errorf("Expected 'ffmpeg not found' error, got %q", err.Error())
	}
}
