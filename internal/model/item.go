package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ItemIDPrefix prefixes every work item ID.
const ItemIDPrefix = "item-"

// WorkItem is one URL to process together with its resolved options.
type WorkItem struct {
	ID         string
	Category   string // empty in flat mode
	URL        string
	Options    Options
	Delay      DelayRange
	Status     ItemStatus
	Title      string
	LastError  string
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewWorkItem creates a pending work item. The options are copied.
func NewWorkItem(category, url string, opts Options, delay DelayRange) *WorkItem {
	return &WorkItem{
		ID:       GenerateItemID(),
		Category: category,
		URL:      url,
		Options:  opts.Clone(),
		Delay:    delay,
		Status:   ItemStatusPending,
	}
}

// SetStatus moves the item to next, returning an error for transitions the
// item state machine does not allow.
func (w *WorkItem) SetStatus(next ItemStatus) error {
	if !w.Status.CanTransition(next) {
		return fmt.Errorf("invalid status transition for %s: %s -> %s", w.URL, w.Status, next)
	}
	w.Status = next
	switch {
	case next.IsActive():
		w.StartedAt = time.Now()
	case next.IsFinished():
		w.FinishedAt = time.Now()
	}
	return nil
}

// GetDisplayTitle returns the title when known, otherwise the URL
func (w *WorkItem) GetDisplayTitle() string {
	if w.Title != "" && !strings.HasPrefix(w.Title, "http") {
		return w.Title
	}
	return w.URL
}

// GenerateItemID generates a unique, time-ordered work item ID using UUID v7
func GenerateItemID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(ItemIDPrefix+"%d", time.Now().UnixNano())
	}
	return ItemIDPrefix + id.String()
}
