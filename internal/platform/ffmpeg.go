package platform

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// FFmpeg probe constants
const (
	FFmpegVersionFlag    = "-version"
	FFmpegVersionPrefix  = "ffmpeg version"
	FFmpegVersionTimeout = 3 * time.Second
)

// FFmpegBinary returns the ffmpeg executable inside dir.
func FFmpegBinary(dir string) string {
	name := FFmpegCommand
	if runtime.GOOS == OSWindows {
		name += ".exe"
	}
	return filepath.Join(dir, name)
}

// VerifyFFmpeg runs "ffmpeg -version" and returns the first output line.
// bin may be a bare command name, which is resolved on PATH.
func VerifyFFmpeg(ctx context.Context, bin string) (string, error) {
	if bin == "" {
		bin = FFmpegCommand
	}
	if _, err := exec.LookPath(bin); err != nil {
		return "", fmt.Errorf("ffmpeg not found at %q: %w", bin, err)
	}

	ctx, cancel := context.WithTimeout(ctx, FFmpegVersionTimeout)
	defer cancel()

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, FFmpegVersionFlag)
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to run %s %s: %w", bin, FFmpegVersionFlag, err)
	}

	line, _, _ := strings.Cut(out.String(), "\n")
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, FFmpegVersionPrefix) {
		return "", fmt.Errorf("unexpected ffmpeg version output: %q", line)
	}
	return line, nil
}
