package categories

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/ytget/yt-batch/internal/model"
)

// CommentPrefix starts a comment line in text URL files.
const CommentPrefix = "#"

// headerPattern matches "# [Name]" with an optional "output_path=..." suffix.
var headerPattern = regexp.MustCompile(`^#\s*\[([^\]]+)\]\s*(?:output_path\s*=\s*(.+?))?\s*$`)

// HasHeaders reports whether data contains at least one category header.
func HasHeaders(data []byte) bool {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if headerPattern.MatchString(strings.TrimSpace(scanner.Text())) {
			return true
		}
	}
	return false
}

// ParseText parses the legacy text format. URLs before the first header,
// or in a file without headers, go to the Default category, which writes to
// the output base itself. A repeated header reopens the earlier category.
func (l *Loader) ParseText(data []byte) (List, error) {
	var list List
	index := map[string]int{}
	current := -1

	open := func(name, outputPath string) int {
		if i, ok := index[name]; ok {
			if outputPath != "" {
				list[i].OutputPath = outputPath
			}
			return i
		}
		list = append(list, l.newCategory(name, outputPath))
		index[name] = len(list) - 1
		return len(list) - 1
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if m := headerPattern.FindStringSubmatch(line); m != nil {
			name := strings.TrimSpace(m[1])
			if name == "" {
				return nil, fmt.Errorf("line %d: category name is empty", lineNo)
			}
			current = open(name, strings.TrimSpace(m[2]))
			continue
		}
		if strings.HasPrefix(line, CommentPrefix) {
			continue
		}
		if current < 0 {
			current = open(model.DefaultCategoryName, l.defaults.OutputBase)
		}
		list[current].URLs = append(list[current].URLs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read text: %w", err)
	}

	if list == nil {
		list = List{}
	}
	return list, nil
}

// ParseURLList reads a flat URL list, skipping blank and comment lines.
func ParseURLList(data []byte) ([]string, error) {
	urls := []string{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, CommentPrefix) {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read url list: %w", err)
	}
	return urls, nil
}
