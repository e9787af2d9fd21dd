// Package source decides which URLs a run processes: positional URLs, an
// explicit URL or category file, or the first default file found on disk.
package source

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/ytget/yt-batch/internal/categories"
	"github.com/ytget/yt-batch/internal/config"
	"github.com/ytget/yt-batch/internal/logger"
	"github.com/ytget/yt-batch/internal/model"
	"github.com/ytget/yt-batch/internal/platform"
)

// ErrNoWork is returned when no source yields a URL.
var ErrNoWork = errors.New("no URLs provided")

// DefaultFiles are probed in order when auto-discovery is on.
var DefaultFiles = []string{
	"urls.yaml",
	"urls.yml",
	filepath.Join("config", "urls.yaml"),
	filepath.Join("config", "urls.yml"),
	"urls.txt",
	filepath.Join("config", "urls.txt"),
}

// Origin labels for a plan
const (
	OriginCommandLine = "command line"
)

// Plan is the resolved work for a run. At most one of URLs and Categories
// is non-empty.
type Plan struct {
	URLs       []string
	Categories categories.List
	Origin     string
}

// Categorized reports whether the plan runs in categorized mode.
func (p Plan) Categorized() bool {
	return len(p.Categories) > 0
}

// Empty reports whether the plan has nothing to process.
func (p Plan) Empty() bool {
	return len(p.URLs) == 0 && p.Categories.URLCount() == 0
}

// Len returns the number of URLs in the plan.
func (p Plan) Len() int {
	return len(p.URLs) + p.Categories.URLCount()
}

// Expander turns a playlist URL into its videos.
type Expander interface {
	Expand(ctx context.Context, url string) (*model.Playlist, error)
}

// Source resolves a Plan from the command line and the filesystem.
type Source struct {
	log          *logger.Logger
	loader       *categories.Loader
	autoDiscover bool
	defaultFiles []string
	expander     Expander
}

// New creates a Source with auto-discovery enabled.
func New(log *logger.Logger, loader *categories.Loader) *Source {
	return &Source{
		log:          log,
		loader:       loader,
		autoDiscover: true,
		defaultFiles: DefaultFiles,
	}
}

// SetAutoDiscover turns probing of the default files on or off.
func (s *Source) SetAutoDiscover(enabled bool) {
	s.autoDiscover = enabled
}

// SetDefaultFiles replaces the probed default file list.
func (s *Source) SetDefaultFiles(paths []string) {
	s.defaultFiles = paths
}

// SetExpander enables playlist expansion. Nil disables it.
func (s *Source) SetExpander(e Expander) {
	s.expander = e
}

// Resolve picks the work for the run. Positional URLs select flat mode and
// are extended with the lines of a flat file; a categorized file given
// alongside positional URLs is ignored. Without positional URLs the named
// file is used, then the first default file found. Duplicate URLs keep
// their first position. ErrNoWork is returned when nothing remains.
func (s *Source) Resolve(ctx context.Context, cliURLs []string, filePath string) (Plan, error) {
	var plan Plan

	if len(cliURLs) > 0 {
		plan.URLs = append(plan.URLs, cliURLs...)
		plan.Origin = OriginCommandLine
	}

	if filePath != "" {
		filePlan := s.loadFile(filePath)
		switch {
		case filePlan.Categorized() && len(plan.URLs) > 0:
			s.log.Warnf("Ignoring categories in %s because URLs were given on the command line", filePath)
		case filePlan.Categorized():
			plan = filePlan
		default:
			plan.URLs = append(plan.URLs, filePlan.URLs...)
			if plan.Origin == "" {
				plan.Origin = filePath
			}
		}
	}

	if plan.Empty() && s.autoDiscover {
		if path, ok := config.FirstExisting(s.defaultFiles); ok {
			s.log.Infof("Using URL file %s", path)
			plan = s.loadFile(path)
		}
	}

	if s.expander != nil {
		plan = s.expand(ctx, plan)
	}
	plan = dedupe(s.log, plan)

	if plan.Empty() {
		s.log.Warnf("No URLs provided")
		return Plan{}, ErrNoWork
	}
	s.checkURLs(plan)
	return plan, nil
}

// ValidateURL reports whether raw looks like an http(s) URL.
func ValidateURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}
	return nil
}

// checkURLs warns about entries that are unlikely to be accepted by the
// extractor. They stay in the plan and fail on their own.
func (s *Source) checkURLs(plan Plan) {
	check := func(urls []string) {
		for _, u := range urls {
			if err := ValidateURL(u); err != nil {
				s.log.Warnf("Suspicious URL %q: %v", u, err)
			}
		}
	}
	check(plan.URLs)
	for _, c := range plan.Categories {
		check(c.URLs)
	}
}

// loadFile reads a URL file. YAML files and text files with category
// headers yield categories; other text files yield a flat list.
func (s *Source) loadFile(path string) Plan {
	if !platform.PathExists(path) {
		s.log.Warnf("URL file %s not found", path)
		return Plan{Origin: path}
	}
	if categories.IsYAMLPath(path) {
		return Plan{Categories: s.loader.Load(path), Origin: path}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		s.log.Errorf("Error reading URL file %s: %v", path, err)
		return Plan{Origin: path}
	}
	if categories.HasHeaders(data) {
		return Plan{Categories: s.loader.Load(path), Origin: path}
	}

	urls, err := categories.ParseURLList(data)
	if err != nil {
		s.log.Errorf("Error reading URL file %s: %v", path, err)
		return Plan{Origin: path}
	}
	s.log.Infof("Loaded %d URLs from %s", len(urls), path)
	return Plan{URLs: urls, Origin: path}
}

func (s *Source) expand(ctx context.Context, plan Plan) Plan {
	plan.URLs = s.expandURLs(ctx, plan.URLs)
	if len(plan.Categories) > 0 {
		expanded := make(categories.List, len(plan.Categories))
		for i, c := range plan.Categories {
			c.URLs = s.expandURLs(ctx, c.URLs)
			expanded[i] = c
		}
		plan.Categories = expanded
	}
	return plan
}

func (s *Source) expandURLs(ctx context.Context, urls []string) []string {
	if len(urls) == 0 {
		return urls
	}
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if !platform.IsPlaylistURL(u) {
			out = append(out, u)
			continue
		}
		playlist, err := s.expander.Expand(ctx, u)
		if err != nil {
			s.log.Warnf("Could not expand playlist %s: %v", u, err)
			out = append(out, u)
			continue
		}
		videos := playlist.URLs()
		s.log.Infof("Expanded playlist %q (%s) into %d videos", playlist.Title, u, len(videos))
		out = append(out, videos...)
	}
	return out
}

func dedupe(log *logger.Logger, plan Plan) Plan {
	seen := map[string]bool{}
	keep := func(urls []string) []string {
		if urls == nil {
			return nil
		}
		out := make([]string, 0, len(urls))
		for _, u := range urls {
			if seen[u] {
				log.Debugf("Skipping duplicate URL %s", u)
				continue
			}
			seen[u] = true
			out = append(out, u)
		}
		return out
	}

	plan.URLs = keep(plan.URLs)
	if len(plan.Categories) > 0 {
		list := make(categories.List, len(plan.Categories))
		for i, c := range plan.Categories {
			c.URLs = keep(c.URLs)
			list[i] = c
		}
		plan.Categories = list
	}
	return plan
}

// Items builds the work items for plan. Flat URLs use base and delay as
// given. Category URLs merge the category quality, output path and extra
// options over base and use the category delay.
func Items(plan Plan, base model.Options, delay model.DelayRange) []*model.WorkItem {
	items := make([]*model.WorkItem, 0, plan.Len())
	for _, u := range plan.URLs {
		items = append(items, model.NewWorkItem("", u, base, delay))
	}
	for _, c := range plan.Categories {
		opts := CategoryOptions(base, c)
		for _, u := range c.URLs {
			items = append(items, model.NewWorkItem(c.Name, u, opts, c.Delay))
		}
	}
	return items
}

// CategoryOptions returns the options for the URLs of c.
func CategoryOptions(base model.Options, c model.Category) model.Options {
	var fragments []model.Fragment
	if c.HasQuality() {
		fragments = append(fragments, c.Quality.Fragment())
	}
	if c.OutputPath != "" {
		dir := c.OutputPath
		fragments = append(fragments, model.Fragment{OutputDir: &dir})
	}
	fragments = append(fragments, c.Extra)
	return config.Merge(base, fragments...)
}
