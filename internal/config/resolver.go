package config

import (
	"github.com/ytget/yt-batch/internal/logger"
	"github.com/ytget/yt-batch/internal/model"
)

// CLIOptions carries the run-level flags that influence download options.
// The *Set fields record whether a flag was given explicitly, so that an
// unset flag never overrides a lower layer.
type CLIOptions struct {
	Quality    model.Quality
	QualitySet bool

	OutputDir string
	OutputSet bool
}

// Fragment returns the run-level option fragment for the explicitly set flags.
func (c CLIOptions) Fragment() model.Fragment {
	var f model.Fragment
	if c.QualitySet {
		f = c.Quality.Fragment()
	}
	if c.OutputSet && c.OutputDir != "" {
		dir := c.OutputDir
		f.OutputDir = &dir
	}
	return f
}

// Discoverer locates auxiliary resources on the local machine.
type Discoverer interface {
	// FindCookiesFile returns the first cookie file found.
	FindCookiesFile() (string, bool)
	// FindFFmpegDir returns the directory of the first ffmpeg binary found.
	FindFFmpegDir() (string, bool)
}

// Resolver builds the effective option set for a run.
type Resolver struct {
	log         *logger.Logger
	discoverer  Discoverer
	searchPaths []string
}

// NewResolver creates a resolver. discoverer may be nil to skip discovery.
func NewResolver(log *logger.Logger, discoverer Discoverer) *Resolver {
	return &Resolver{
		log:         log,
		discoverer:  discoverer,
		searchPaths: DefaultConfigPaths,
	}
}

// SetSearchPaths replaces the option file locations probed when no file is
// named explicitly.
func (r *Resolver) SetSearchPaths(paths []string) {
	r.searchPaths = paths
}

// Merge applies fragments over base in order; later fragments win.
//
// A run merges, lowest to highest: built-in defaults, the option file,
// global_settings.cookies_file, discovered cookie file and ffmpeg location,
// run-level CLI flags, and finally the per-category fragment.
func Merge(base model.Options, fragments ...model.Fragment) model.Options {
	out := base.Clone()
	for _, f := range fragments {
		f.ApplyTo(&out)
	}
	return out
}

// Resolve returns the effective options for the run. configPath may be empty,
// in which case the default locations are probed. Problems with the option
// file are logged and the file is treated as empty.
func (r *Resolver) Resolve(cli CLIOptions, configPath string) model.Options {
	fileFragment := r.fileFragment(configPath)
	opts := Merge(Defaults(), fileFragment)

	var discovered model.Fragment
	if opts.CookieFile == "" && r.discoverer != nil {
		if path, ok := r.discoverer.FindCookiesFile(); ok {
			r.log.Infof("Found cookies file: %s", path)
			discovered.CookieFile = &path
		} else {
			r.log.Warnf("No cookies file found. Some videos may not be accessible.")
		}
	}
	if opts.FFmpegLocation == "" && r.discoverer != nil {
		if dir, ok := r.discoverer.FindFFmpegDir(); ok {
			r.log.Debugf("Using ffmpeg from %s", dir)
			discovered.FFmpegLocation = &dir
		} else {
			r.log.Warnf("FFmpeg not found. Video processing may be limited.")
		}
	}

	return Merge(opts, discovered, cli.Fragment())
}

// fileFragment loads the option file and converts it, stripping the reserved
// keys and applying global_settings.cookies_file.
func (r *Resolver) fileFragment(configPath string) model.Fragment {
	path := configPath
	if path == "" {
		found, ok := FirstExisting(r.searchPaths)
		if !ok {
			return model.Fragment{}
		}
		path = found
	}

	m, err := LoadFile(path)
	if err != nil {
		r.log.Errorf("Error loading config file: %v", err)
		return model.Fragment{}
	}
	r.log.Infof("Loaded options from %s", path)

	global, _ := m[KeyGlobalSettings].(map[string]any)
	options := make(map[string]any, len(m))
	for k, v := range m {
		if k == KeyCategories || k == KeyGlobalSettings {
			continue
		}
		options[k] = v
	}

	f, unknown, errs := FragmentFromMap(options)
	for _, key := range unknown {
		r.log.Debugf("Ignoring unsupported option %q in %s", key, path)
	}
	for _, err := range errs {
		r.log.Warnf("Ignoring option in %s: %v", path, err)
	}

	if f.CookieFile == nil && global != nil {
		if cookies, ok := asString(global[KeyCookiesFile]); ok && cookies != "" {
			f.CookieFile = &cookies
		}
	}
	return f
}
