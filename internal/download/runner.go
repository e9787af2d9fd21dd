package download

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/ytget/yt-batch/internal/logger"
	"github.com/ytget/yt-batch/internal/model"
	"github.com/ytget/yt-batch/internal/platform"
)

// ItemError is the failure of a single work item.
type ItemError struct {
	URL string
	Err error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("%s: %v", e.URL, e.Err)
}

func (e *ItemError) Unwrap() error { return e.Err }

var errNoMetadata = errors.New("no metadata returned")

// SleepFunc blocks for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the default SleepFunc.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Runner processes work items one at a time.
type Runner struct {
	extractor Extractor
	log       *logger.Logger
	sleep     SleepFunc
	intn      func(n int) int
	mkdir     func(dir string) error
}

// NewRunner creates a runner over extractor.
func NewRunner(extractor Extractor, log *logger.Logger) *Runner {
	return &Runner{
		extractor: extractor,
		log:       log,
		sleep:     Sleep,
		intn:      rand.Intn,
		mkdir:     platform.CreateDirectoryIfNotExists,
	}
}

// SetSleep replaces the function used to pause between items.
func (r *Runner) SetSleep(fn SleepFunc) {
	r.sleep = fn
}

// SetRand replaces the source of random delays. fn must return a value in
// [0, n).
func (r *Runner) SetRand(fn func(n int) int) {
	r.intn = fn
}

// Run processes items in order. Each item is tried exactly once; a failure
// is logged and recorded, and the batch moves on. In a dry run metadata is
// extracted instead of downloading, the expected file path is recorded, and
// delays are logged but not slept.
func (r *Runner) Run(ctx context.Context, items []*model.WorkItem, dryRun bool) *model.RunResult {
	result := model.NewRunResult()
	for _, item := range items {
		if item.Category != "" {
			result.EnsureCategory(item.Category)
		}
	}

	for i, item := range items {
		r.log.Infof("Processing video %d/%d: %s", i+1, len(items), item.URL)

		var err error
		switch {
		case ctx.Err() != nil:
			err = ctx.Err()
			r.transition(item, model.ItemStatusDownloading)
		case dryRun:
			r.transition(item, model.ItemStatusSimulating)
			err = r.simulate(ctx, item, result)
		default:
			r.transition(item, model.ItemStatusDownloading)
			err = r.download(ctx, item, result)
		}

		if err != nil {
			itemErr := &ItemError{URL: item.URL, Err: err}
			item.LastError = err.Error()
			r.transition(item, model.ItemStatusFailed)
			result.RecordFailure(item.Category, item.URL)
			r.log.Errorf("Error processing %v", itemErr)
		} else {
			r.transition(item, model.ItemStatusSucceeded)
			result.RecordSuccess(item.Category, item.URL)
			if dryRun {
				r.log.Infof("Would download: %s", item.GetDisplayTitle())
			} else {
				r.log.Infof("Successfully downloaded: %s", item.URL)
			}
		}

		if i < len(items)-1 {
			r.pause(ctx, item.Delay, dryRun)
		}
	}
	return result
}

func (r *Runner) download(ctx context.Context, item *model.WorkItem, result *model.RunResult) error {
	if dir := item.Options.OutputDir; dir != "" {
		if err := r.mkdir(dir); err != nil {
			return fmt.Errorf("create output directory %s: %w", dir, err)
		}
	}

	return r.extractor.Download(ctx, item.URL, item.Options, func(f model.DownloadedFile) {
		if f.URL == "" {
			f.URL = item.URL
		}
		if f.Title != "" && item.Title == "" {
			item.Title = f.Title
		}
		result.RecordFile(item.Category, f)
	})
}

func (r *Runner) simulate(ctx context.Context, item *model.WorkItem, result *model.RunResult) error {
	info, err := r.extractor.Extract(ctx, item.URL, item.Options)
	if err != nil {
		return err
	}
	if info == nil {
		return errNoMetadata
	}

	item.Title = info.Title
	result.RecordFile(item.Category, model.DownloadedFile{
		URL:      item.URL,
		FilePath: ExpectedPath(item.Options, info.Title),
		Title:    info.Title,
	})
	return nil
}

// ExpectedPath is the path a dry run reports for a video titled title.
func ExpectedPath(opts model.Options, title string) string {
	return filepath.Join(opts.OutputDir, platform.SanitizeFileName(title)+"."+opts.FileExtension())
}

// pause waits a uniformly random whole number of seconds in delay.
func (r *Runner) pause(ctx context.Context, delay model.DelayRange, dryRun bool) {
	seconds := r.pick(delay)
	if dryRun {
		r.log.Infof("Would wait %d seconds before next download", seconds)
		return
	}
	r.log.Infof("Waiting %d seconds before next download...", seconds)
	if err := r.sleep(ctx, time.Duration(seconds)*time.Second); err != nil {
		r.log.Warnf("Delay interrupted: %v", err)
	}
}

func (r *Runner) pick(delay model.DelayRange) int {
	lo, hi := delay.Min, delay.Max
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo < 0 {
		lo = 0
	}
	if hi <= lo {
		return lo
	}
	return lo + r.intn(hi-lo+1)
}

func (r *Runner) transition(item *model.WorkItem, next model.ItemStatus) {
	if err := item.SetStatus(next); err != nil {
		r.log.Debugf("%v", err)
	}
}
