package download

import (
	"context"

	"github.com/ytget/yt-batch/internal/model"
)

// InfoFunc receives the metadata of each inspected item.
type InfoFunc func(item *model.WorkItem, info *model.VideoInfo)

// Inspect extracts metadata for every item without downloading or pausing.
// Items whose metadata could not be read are recorded as failed.
func (r *Runner) Inspect(ctx context.Context, items []*model.WorkItem, fn InfoFunc) *model.RunResult {
	result := model.NewRunResult()
	for i, item := range items {
		r.log.Infof("Getting info for %d/%d: %s", i+1, len(items), item.URL)
		r.transition(item, model.ItemStatusSimulating)

		info, err := r.extractor.Extract(ctx, item.URL, item.Options)
		if err == nil && info == nil {
			err = errNoMetadata
		}
		if err != nil {
			item.LastError = err.Error()
			r.transition(item, model.ItemStatusFailed)
			result.RecordFailure(item.Category, item.URL)
			r.log.Errorf("Error extracting info for %v", &ItemError{URL: item.URL, Err: err})
			continue
		}

		item.Title = info.Title
		r.transition(item, model.ItemStatusSucceeded)
		result.RecordSuccess(item.Category, item.URL)
		if fn != nil {
			fn(item, info)
		}
	}
	return result
}
