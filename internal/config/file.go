package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FileError reports an option file that is missing or cannot be parsed.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("option file %q: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// LoadFile reads an option file into a mapping. The format follows the
// extension: .json and .toml, anything else is read as YAML. An empty
// document yields an empty mapping.
func LoadFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}

	m, err := decode(path, data)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, nil
}

func decode(path string, data []byte) (map[string]any, error) {
	var m map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
		return m, nil
	case ".json":
		if len(strings.TrimSpace(string(data))) == 0 {
			return nil, nil
		}
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
		return m, nil
	}

	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return m, nil
}

// FirstExisting returns the first path in candidates that exists.
func FirstExisting(candidates []string) (string, bool) {
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}
