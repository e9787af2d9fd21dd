package platform

import (
	"os"
	"os/exec"
	"path/filepath"
)

// Environment variables probed before the fixed candidate lists.
const (
	EnvCookiesFile = "YT_BATCH_COOKIES"
	EnvFFmpeg      = "YT_BATCH_FFMPEG"
)

// FFmpegCommand is the binary name looked up on PATH.
const FFmpegCommand = "ffmpeg"

// DefaultCookieCandidates are probed in order after $YT_BATCH_COOKIES.
var DefaultCookieCandidates = []string{
	"cookies.txt",
	filepath.Join("config", "cookies.txt"),
	"www.bilibili.com_cookies.txt",
	filepath.Join("~", "cookies.txt"),
	filepath.Join("~", "Downloads", "cookies.txt"),
}

// DefaultFFmpegCandidates are probed after $YT_BATCH_FFMPEG and PATH.
var DefaultFFmpegCandidates = []string{
	"/usr/local/bin/ffmpeg",
	"/opt/homebrew/bin/ffmpeg",
	`C:\ffmpeg\bin\ffmpeg.exe`,
	`D:\tools\ffmpeg\bin\ffmpeg.exe`,
}

// Discovery finds a cookie file and an ffmpeg binary on the local machine.
type Discovery struct {
	CookieCandidates []string
	FFmpegCandidates []string

	// LookPath resolves a command on PATH. Nil disables the PATH lookup.
	LookPath func(file string) (string, error)
	// Getenv reads environment variables. Nil disables the env probes.
	Getenv func(key string) string
}

// NewDiscovery returns a Discovery over the default candidate lists.
func NewDiscovery() *Discovery {
	return &Discovery{
		CookieCandidates: DefaultCookieCandidates,
		FFmpegCandidates: DefaultFFmpegCandidates,
		LookPath:         exec.LookPath,
		Getenv:           os.Getenv,
	}
}

// FindCookiesFile returns the first existing cookie file.
func (d *Discovery) FindCookiesFile() (string, bool) {
	candidates := make([]string, 0, len(d.CookieCandidates)+1)
	if v := d.env(EnvCookiesFile); v != "" {
		candidates = append(candidates, v)
	}
	candidates = append(candidates, d.CookieCandidates...)

	for _, c := range candidates {
		path := ExpandHome(c)
		if IsRegularFile(path) {
			return path, true
		}
	}
	return "", false
}

// FindFFmpegDir returns the directory holding the first ffmpeg binary found.
func (d *Discovery) FindFFmpegDir() (string, bool) {
	if v := d.env(EnvFFmpeg); v != "" {
		if dir, ok := ffmpegDir(ExpandHome(v)); ok {
			return dir, true
		}
	}

	if d.LookPath != nil {
		if path, err := d.LookPath(FFmpegCommand); err == nil {
			return filepath.Dir(path), true
		}
	}

	for _, c := range d.FFmpegCandidates {
		if IsRegularFile(c) {
			return filepath.Dir(c), true
		}
	}
	return "", false
}

func (d *Discovery) env(key string) string {
	if d.Getenv == nil {
		return ""
	}
	return d.Getenv(key)
}

// ffmpegDir accepts either the binary itself or a directory containing it.
func ffmpegDir(path string) (string, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return "", false
	}
	if !info.IsDir() {
		return filepath.Dir(path), true
	}
	for _, name := range []string{FFmpegCommand, FFmpegCommand + ".exe"} {
		if IsRegularFile(filepath.Join(path, name)) {
			return path, true
		}
	}
	return "", false
}
