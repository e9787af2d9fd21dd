package model

import "fmt"

// DefaultCategoryName names the category created when a file has no
// category headers, or when a category file could not be parsed.
const DefaultCategoryName = "Default"

// DelayRange is the inclusive range, in seconds, of the pause between items.
type DelayRange struct {
	Min int
	Max int
}

// Validate checks that 0 <= Min <= Max.
func (d DelayRange) Validate() error {
	if d.Min < 0 || d.Max < 0 {
		return fmt.Errorf("delay range must not be negative: [%d, %d]", d.Min, d.Max)
	}
	if d.Min > d.Max {
		return fmt.Errorf("delay min %d is greater than max %d", d.Min, d.Max)
	}
	return nil
}

func (d DelayRange) String() string {
	return fmt.Sprintf("%d-%ds", d.Min, d.Max)
}

// Category is a named group of URLs sharing an output path, quality, delay
// range and extra options. An empty Quality inherits the run-level quality.
type Category struct {
	Name       string
	URLs       []string
	OutputPath string
	Quality    Quality
	Delay      DelayRange
	Extra      Fragment
}

// HasQuality reports whether the category names its own quality.
func (c Category) HasQuality() bool {
	return c.Quality != ""
}
