package categories

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ytget/yt-batch/internal/config"
	"github.com/ytget/yt-batch/internal/logger"
	"github.com/ytget/yt-batch/internal/model"
)

// Category block keys
const (
	KeyURLs       = "urls"
	KeyOutputPath = "output_path"
	KeyQuality    = "quality"
	KeyDelayRange = "delay_range"
)

// FileError reports a category file that could not be read or parsed.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("category file %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// Defaults are the values a category falls back to when it does not set them.
type Defaults struct {
	// OutputBase is the parent of derived category directories, used when
	// global_settings.default_output_path is absent.
	OutputBase string
	Delay      model.DelayRange
}

// DefaultDefaults returns the built-in category defaults.
func DefaultDefaults() Defaults {
	return Defaults{
		OutputBase: config.DefaultOutputDir,
		Delay:      config.DefaultDelay(),
	}
}

// List is an ordered set of categories with unique names.
type List []model.Category

// Get returns the category called name.
func (l List) Get(name string) (model.Category, bool) {
	for _, c := range l {
		if c.Name == name {
			return c, true
		}
	}
	return model.Category{}, false
}

// Names returns the category names in order.
func (l List) Names() []string {
	names := make([]string, 0, len(l))
	for _, c := range l {
		names = append(names, c.Name)
	}
	return names
}

// URLCount returns the number of URLs across all categories.
func (l List) URLCount() int {
	n := 0
	for _, c := range l {
		n += len(c.URLs)
	}
	return n
}

// Loader reads category files.
type Loader struct {
	log      *logger.Logger
	defaults Defaults
}

// NewLoader creates a loader with the given fallbacks.
func NewLoader(log *logger.Logger, defaults Defaults) *Loader {
	if defaults.OutputBase == "" {
		defaults.OutputBase = config.DefaultOutputDir
	}
	return &Loader{log: log, defaults: defaults}
}

// IsYAMLPath reports whether path names a YAML document.
func IsYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Load reads the category file at path. YAML files are parsed as category
// documents, anything else as the legacy text format. A missing or empty
// file yields no categories. A file that cannot be parsed is logged and
// yields a single empty Default category.
func (l *Loader) Load(path string) List {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			l.log.Warnf("Category file not found: %s", path)
			return List{}
		}
		l.log.Errorf("Error reading categories: %v", &FileError{Path: path, Err: err})
		return l.fallback()
	}
	if len(bytes.TrimSpace(data)) == 0 {
		l.log.Warnf("Category file is empty: %s", path)
		return List{}
	}

	var list List
	if IsYAMLPath(path) {
		list, err = l.ParseYAML(data)
	} else {
		list, err = l.ParseText(data)
	}
	if err != nil {
		l.log.Errorf("Error parsing categories: %v", &FileError{Path: path, Err: err})
		return l.fallback()
	}

	l.log.Infof("Loaded %d categories with %d URLs from %s", len(list), list.URLCount(), path)
	return list
}

func (l *Loader) fallback() List {
	return List{l.newCategory(model.DefaultCategoryName, l.defaults.OutputBase)}
}

// newCategory returns an empty category with its output path set or derived.
func (l *Loader) newCategory(name, outputPath string) model.Category {
	if outputPath == "" {
		outputPath = DeriveOutputPath(l.defaults.OutputBase, name)
	}
	return model.Category{
		Name:       name,
		URLs:       []string{},
		OutputPath: outputPath,
		Delay:      l.defaults.Delay,
	}
}

// DeriveOutputPath returns base/name. base keeps its own form so that
// "./downloads" yields "./downloads/News".
func DeriveOutputPath(base, name string) string {
	if base == "" {
		base = config.DefaultOutputDir
	}
	return strings.TrimRight(base, `/\`) + "/" + name
}
