package model

// DownloadedFile is one finished (or, in a dry run, expected) file.
type DownloadedFile struct {
	URL      string
	FilePath string
	Title    string
}

// RunResult accumulates the outcome of a batch. Every processed URL is
// recorded in exactly one of Successful or Failed.
type RunResult struct {
	Successful      []string
	Failed          []string
	DownloadedFiles []DownloadedFile

	// PerCategory holds the same records split by category name; it is
	// empty in flat mode.
	PerCategory map[string]*RunResult

	// CategoryOrder lists PerCategory keys in first-seen order.
	CategoryOrder []string
}

// NewRunResult returns an empty result
func NewRunResult() *RunResult {
	return &RunResult{PerCategory: make(map[string]*RunResult)}
}

// RecordSuccess appends url to the successful list.
func (r *RunResult) RecordSuccess(category, url string) {
	r.Successful = append(r.Successful, url)
	if c := r.category(category); c != nil {
		c.Successful = append(c.Successful, url)
	}
}

// RecordFailure appends url to the failed list.
func (r *RunResult) RecordFailure(category, url string) {
	r.Failed = append(r.Failed, url)
	if c := r.category(category); c != nil {
		c.Failed = append(c.Failed, url)
	}
}

// RecordFile appends a downloaded file entry.
func (r *RunResult) RecordFile(category string, f DownloadedFile) {
	r.DownloadedFiles = append(r.DownloadedFiles, f)
	if c := r.category(category); c != nil {
		c.DownloadedFiles = append(c.DownloadedFiles, f)
	}
}

// Total returns the number of recorded URLs.
func (r *RunResult) Total() int {
	return len(r.Successful) + len(r.Failed)
}

// Categorized reports whether the result carries per-category records.
func (r *RunResult) Categorized() bool {
	return len(r.CategoryOrder) > 0
}

func (r *RunResult) category(name string) *RunResult {
	if name == "" {
		return nil
	}
	if r.PerCategory == nil {
		r.PerCategory = make(map[string]*RunResult)
	}
	c, ok := r.PerCategory[name]
	if !ok {
		c = &RunResult{}
		r.PerCategory[name] = c
		r.CategoryOrder = append(r.CategoryOrder, name)
	}
	return c
}

// EnsureCategory registers a category so it is reported even when it ends
// up with no items.
func (r *RunResult) EnsureCategory(name string) {
	r.category(name)
}
