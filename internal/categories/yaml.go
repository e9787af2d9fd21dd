package categories

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ytget/yt-batch/internal/config"
	"github.com/ytget/yt-batch/internal/model"
)

// document is the top level of a categorized YAML file.
type document struct {
	GlobalSettings map[string]any `yaml:"global_settings"`
	Categories     yaml.Node      `yaml:"categories"`
}

// ParseYAML parses a categorized YAML document. Categories keep their
// document order. An empty document, or one without categories, yields no
// categories.
func (l *Loader) ParseYAML(data []byte) (List, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if len(root.Content) == 0 {
		return List{}, nil
	}
	top := root.Content[0]
	if isNull(top) {
		return List{}, nil
	}
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("top level must be a mapping, got %s", kindName(top))
	}

	var doc document
	if err := top.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	cats := &doc.Categories
	if cats.Kind == 0 || isNull(cats) {
		return List{}, nil
	}
	if cats.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("categories must be a mapping, got %s", kindName(cats))
	}

	global := doc.GlobalSettings
	base := l.defaults.OutputBase
	if v, ok := config.AsString(global[config.KeyDefaultOutputPath]); ok && v != "" {
		base = v
	}

	list := make(List, 0, len(cats.Content)/2)
	for i := 0; i+1 < len(cats.Content); i += 2 {
		name := strings.TrimSpace(cats.Content[i].Value)
		if name == "" {
			return nil, fmt.Errorf("line %d: category name is empty", cats.Content[i].Line)
		}

		local := map[string]any{}
		if body := cats.Content[i+1]; !isNull(body) {
			if body.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("category %q must be a mapping, got %s", name, kindName(body))
			}
			if err := body.Decode(&local); err != nil {
				return nil, fmt.Errorf("category %q: %w", name, err)
			}
		}

		cat, err := l.buildCategory(name, Propagate(global, local), base)
		if err != nil {
			return nil, err
		}
		list = append(list, cat)
	}
	return list, nil
}

// Propagate returns local with every key of global it lacks copied in,
// except default_output_path.
func Propagate(global, local map[string]any) map[string]any {
	out := make(map[string]any, len(local)+len(global))
	for k, v := range local {
		out[k] = v
	}
	for k, v := range global {
		if k == config.KeyDefaultOutputPath {
			continue
		}
		if _, ok := out[k]; !ok {
			out[k] = v
		}
	}
	return out
}

func (l *Loader) buildCategory(name string, raw map[string]any, base string) (model.Category, error) {
	cat := l.newCategory(name, DeriveOutputPath(base, name))

	if v, ok := raw[KeyURLs]; ok && v != nil {
		urls, ok := config.AsStringSlice(v)
		if !ok {
			return model.Category{}, fmt.Errorf("category %q: urls must be a list of strings", name)
		}
		for _, u := range urls {
			if u = strings.TrimSpace(u); u != "" {
				cat.URLs = append(cat.URLs, u)
			}
		}
	}

	if v, ok := config.AsString(raw[KeyOutputPath]); ok && strings.TrimSpace(v) != "" {
		cat.OutputPath = strings.TrimSpace(v)
	}

	if v, ok := raw[KeyQuality]; ok && v != nil {
		s, _ := config.AsString(v)
		q, err := model.ParseQuality(s)
		if err != nil {
			l.log.Warnf("Category %q: %v, using %s", name, err, model.DefaultQuality)
			q = model.DefaultQuality
		}
		cat.Quality = q
	}

	if v, ok := raw[KeyDelayRange]; ok && v != nil {
		cat.Delay = l.parseDelay(name, v)
	}

	extra := make(map[string]any, len(raw))
	for k, v := range raw {
		switch k {
		case KeyURLs, KeyOutputPath, KeyQuality, KeyDelayRange, config.KeyCookiesFile:
			continue
		}
		extra[k] = v
	}
	f, unknown, errs := config.FragmentFromMap(extra)
	for _, key := range unknown {
		l.log.Debugf("Category %q: ignoring unsupported option %q", name, key)
	}
	for _, err := range errs {
		l.log.Warnf("Category %q: ignoring option: %v", name, err)
	}
	if f.CookieFile == nil {
		if v, ok := config.AsString(raw[config.KeyCookiesFile]); ok && strings.TrimSpace(v) != "" {
			cookies := strings.TrimSpace(v)
			f.CookieFile = &cookies
		}
	}
	cat.Extra = f

	return cat, nil
}

// parseDelay reads a [min, max] pair. Malformed values fall back to the
// default range; a reversed pair is swapped.
func (l *Loader) parseDelay(name string, v any) model.DelayRange {
	pair, ok := v.([]any)
	if !ok || len(pair) != 2 {
		l.log.Warnf("Category %q: delay_range must be a [min, max] pair, using %s", name, l.defaults.Delay)
		return l.defaults.Delay
	}
	lo, okLo := config.AsInt(pair[0])
	hi, okHi := config.AsInt(pair[1])
	if !okLo || !okHi || lo < 0 || hi < 0 {
		l.log.Warnf("Category %q: delay_range must hold two non-negative integers, using %s", name, l.defaults.Delay)
		return l.defaults.Delay
	}
	if lo > hi {
		l.log.Warnf("Category %q: delay_range [%d, %d] is reversed, swapping", name, lo, hi)
		lo, hi = hi, lo
	}
	return model.DelayRange{Min: lo, Max: hi}
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}

func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "document"
}
