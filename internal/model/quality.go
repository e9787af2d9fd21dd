package model

import (
	"fmt"
	"strings"
)

// Quality is the closed set of quality keywords accepted on the command line
// and in category blocks.
type Quality string

const (
	QualityLow    Quality = "low"
	QualityMedium Quality = "medium"
	QualityHigh   Quality = "high"
	QualityBest   Quality = "best"
)

// DefaultQuality is used when neither flags nor categories name a quality.
const DefaultQuality = QualityBest

// Format selectors passed to the extractor.
const (
	FormatLow    = "worst[height>=480]/worst"
	FormatMedium = "bestvideo[height>=720]+bestaudio/best"
	FormatHigh   = "bestvideo[height>=1080]+bestaudio/best"
)

// Qualities returns every quality level, lowest first.
func Qualities() []Quality {
	return []Quality{QualityLow, QualityMedium, QualityHigh, QualityBest}
}

// QualityList joins the quality keywords for help and error text.
func QualityList() string {
	names := make([]string, 0, 4)
	for _, q := range Qualities() {
		names = append(names, string(q))
	}
	return strings.Join(names, ", ")
}

// ParseQuality converts a keyword into a Quality. Matching ignores case and
// surrounding whitespace.
func ParseQuality(s string) (Quality, error) {
	q := Quality(strings.ToLower(strings.TrimSpace(s)))
	if !q.Valid() {
		return "", fmt.Errorf("invalid quality %q (want one of %s)", s, QualityList())
	}
	return q, nil
}

// Valid reports whether q is one of the known levels.
func (q Quality) Valid() bool {
	_, ok := q.FormatSelector()
	return ok
}

// FormatSelector maps q to a format selector. QualityBest maps to an empty
// selector, which keeps the format already present in the merged options.
// The second return value is false for unknown levels.
func (q Quality) FormatSelector() (string, bool) {
	switch q {
	case QualityLow:
		return FormatLow, true
	case QualityMedium:
		return FormatMedium, true
	case QualityHigh:
		return FormatHigh, true
	case QualityBest:
		return "", true
	default:
		return "", false
	}
}

// Fragment returns the option fragment that applies q.
func (q Quality) Fragment() Fragment {
	selector, ok := q.FormatSelector()
	if !ok || selector == "" {
		return Fragment{}
	}
	return Fragment{Format: &selector}
}
