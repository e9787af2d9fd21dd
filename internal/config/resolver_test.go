package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ytget/yt-batch/internal/logger"
	"github.com/ytget/yt-batch/internal/model"
)

type stubDiscoverer struct {
	cookies string
	ffmpeg  string
	calls   int
}

func (s *stubDiscoverer) FindCookiesFile() (string, bool) {
	s.calls++
	return s.cookies, s.cookies != ""
}

func (s *stubDiscoverer) FindFFmpegDir() (string, bool) {
	s.calls++
	return s.ffmpeg, s.ffmpeg != ""
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestResolver(d Discoverer) *Resolver {
	r := NewResolver(logger.Discard(), d)
	r.SetSearchPaths(nil)
	return r
}

func TestResolveDefaults(t *testing.T) {
	opts := newTestResolver(nil).Resolve(CLIOptions{}, "")

	if !opts.Equal(Defaults()) {
		t.Errorf("Expected defaults, got %+v", opts)
	}
	if opts.Format != DefaultFormat {
		t.Errorf("Expected format %q, got %q", DefaultFormat, opts.Format)
	}
	if len(opts.SubtitleLangs) != 3 || opts.SubtitleLangs[0] != "zh-CN" {
		t.Errorf("Expected default subtitle langs, got %v", opts.SubtitleLangs)
	}
	if !opts.WriteAutoSubs || !opts.EmbedThumbnail || !opts.IgnoreErrors {
		t.Error("Expected auto subs, thumbnail embedding and error tolerance enabled")
	}
}

func TestResolveFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "opts.json", `{
		"format": "bestvideo+bestaudio/best",
		"merge_output_format": "mkv",
		"subtitleslangs": ["en"],
		"writethumbnail": false,
		"categories": {"News": {"urls": ["u1"]}},
		"global_settings": {"quality": "medium"}
	}`)

	opts := newTestResolver(nil).Resolve(CLIOptions{}, path)

	if opts.Format != "bestvideo+bestaudio/best" {
		t.Errorf("Expected file format, got %q", opts.Format)
	}
	if opts.MergeOutputFormat != "mkv" {
		t.Errorf("Expected mkv, got %q", opts.MergeOutputFormat)
	}
	if len(opts.SubtitleLangs) != 1 || opts.SubtitleLangs[0] != "en" {
		t.Errorf("Expected [en], got %v", opts.SubtitleLangs)
	}
	if opts.WriteThumbnail {
		t.Error("Expected writethumbnail=false from file")
	}
	if !opts.EmbedSubs {
		t.Error("Expected untouched defaults to remain")
	}
}

func TestResolveYAMLAndTOML(t *testing.T) {
	dir := t.TempDir()
	yamlPath := writeFile(t, dir, "opts.yaml", "audioformat: m4a\nextractaudio: true\n")
	tomlPath := writeFile(t, dir, "opts.toml", "audioformat = \"opus\"\nextractaudio = true\n")

	r := newTestResolver(nil)
	for path, want := range map[string]string{yamlPath: "m4a", tomlPath: "opus"} {
		opts := r.Resolve(CLIOptions{}, path)
		if opts.AudioFormat != want || !opts.ExtractAudio {
			t.Errorf("%s: expected audio %s with extraction, got %q/%v", filepath.Base(path), want, opts.AudioFormat, opts.ExtractAudio)
		}
	}
}

func TestResolveGlobalCookies(t *testing.T) {
	dir := t.TempDir()
	r := newTestResolver(&stubDiscoverer{cookies: "discovered.txt"})

	withGlobal := writeFile(t, dir, "a.yaml", "global_settings:\n  cookies_file: global.txt\n")
	if opts := r.Resolve(CLIOptions{}, withGlobal); opts.CookieFile != "global.txt" {
		t.Errorf("Expected global cookies file, got %q", opts.CookieFile)
	}

	explicit := writeFile(t, dir, "b.yaml", "cookiefile: explicit.txt\nglobal_settings:\n  cookies_file: global.txt\n")
	if opts := r.Resolve(CLIOptions{}, explicit); opts.CookieFile != "explicit.txt" {
		t.Errorf("Expected explicit cookiefile to win, got %q", opts.CookieFile)
	}

	none := writeFile(t, dir, "c.yaml", "format: best\n")
	if opts := r.Resolve(CLIOptions{}, none); opts.CookieFile != "discovered.txt" {
		t.Errorf("Expected discovered cookies file, got %q", opts.CookieFile)
	}
}

func TestResolveDiscovery(t *testing.T) {
	d := &stubDiscoverer{cookies: "cookies.txt", ffmpeg: "/usr/local/bin"}
	opts := newTestResolver(d).Resolve(CLIOptions{}, "")

	if opts.CookieFile != "cookies.txt" {
		t.Errorf("Expected cookies.txt, got %q", opts.CookieFile)
	}
	if opts.FFmpegLocation != "/usr/local/bin" {
		t.Errorf("Expected /usr/local/bin, got %q", opts.FFmpegLocation)
	}

	missing := newTestResolver(&stubDiscoverer{}).Resolve(CLIOptions{}, "")
	if missing.CookieFile != "" || missing.FFmpegLocation != "" {
		t.Errorf("Expected no cookie/ffmpeg when nothing found, got %q/%q", missing.CookieFile, missing.FFmpegLocation)
	}
}

func TestResolveBrokenFileIsEmpty(t *testing.T) {
	dir := t.TempDir()
	broken := writeFile(t, dir, "broken.yaml", "format: [unterminated\n")

	r := newTestResolver(nil)
	if opts := r.Resolve(CLIOptions{}, broken); !opts.Equal(Defaults()) {
		t.Errorf("Expected defaults for malformed file, got %+v", opts)
	}
	if opts := r.Resolve(CLIOptions{}, filepath.Join(dir, "missing.json")); !opts.Equal(Defaults()) {
		t.Errorf("Expected defaults for missing file, got %+v", opts)
	}
}

func TestResolveWrongTypeIsSkipped(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "opts.yaml", "format: 42\nmerge_output_format: webm\n")

	opts := newTestResolver(nil).Resolve(CLIOptions{}, path)
	if opts.Format != DefaultFormat {
		t.Errorf("Expected default format when file value has wrong type, got %q", opts.Format)
	}
	if opts.MergeOutputFormat != "webm" {
		t.Errorf("Expected webm, got %q", opts.MergeOutputFormat)
	}
}

func TestResolveProbesDefaultPaths(t *testing.T) {
	dir := t.TempDir()
	second := writeFile(t, dir, "second.yaml", "merge_output_format: second\n")
	third := writeFile(t, dir, "third.yaml", "merge_output_format: third\n")

	r := newTestResolver(nil)
	r.SetSearchPaths([]string{filepath.Join(dir, "first.yaml"), second, third})

	if opts := r.Resolve(CLIOptions{}, ""); opts.MergeOutputFormat != "second" {
		t.Errorf("Expected first existing file to win, got %q", opts.MergeOutputFormat)
	}
}

func TestResolveCLIFlags(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "opts.yaml", "format: from-file\n")
	r := newTestResolver(nil)

	unset := r.Resolve(CLIOptions{Quality: model.QualityHigh, OutputDir: "x"}, path)
	if unset.Format != "from-file" || unset.OutputDir != DefaultOutputDir {
		t.Errorf("Expected unset flags to leave file values, got %q/%q", unset.Format, unset.OutputDir)
	}

	set := r.Resolve(CLIOptions{Quality: model.QualityHigh, QualitySet: true, OutputDir: "out", OutputSet: true}, path)
	if set.Format != model.FormatHigh {
		t.Errorf("Expected high quality selector, got %q", set.Format)
	}
	if set.OutputDir != "out" {
		t.Errorf("Expected output dir 'out', got %q", set.OutputDir)
	}

	best := r.Resolve(CLIOptions{Quality: model.QualityBest, QualitySet: true}, path)
	if best.Format != "from-file" {
		t.Errorf("Expected best quality to keep the merged format, got %q", best.Format)
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "opts.yaml", "subtitleslangs: [en, ja]\nglobal_settings:\n  cookies_file: c.txt\n")
	d := &stubDiscoverer{ffmpeg: "/opt/bin"}
	r := newTestResolver(d)
	cli := CLIOptions{Quality: model.QualityLow, QualitySet: true}

	first := r.Resolve(cli, path)
	second := r.Resolve(cli, path)
	if !first.Equal(second) {
		t.Errorf("Expected identical options, got %+v and %+v", first, second)
	}
}

func TestMergeOrder(t *testing.T) {
	a, b := "a", "b"
	opts := Merge(model.Options{Format: "base"}, model.Fragment{Format: &a}, model.Fragment{Format: &b})
	if opts.Format != "b" {
		t.Errorf("Expected later fragment to win, got %q", opts.Format)
	}

	base := model.Options{SubtitleLangs: []string{"en"}}
	merged := Merge(base)
	merged.SubtitleLangs[0] = "fr"
	if base.SubtitleLangs[0] != "en" {
		t.Error("Expected Merge not to alias the base options")
	}
}
