package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mepo/stallkeeper/internal/client/models"
)

// Feed is the process-wide, in-memory notification list. Screens append to it
// (auction pre-registration does today) and the notifications screen renders
// it most-recent-first. Appends are serialized by the mutex so arrival order
// is preserved; nothing is ever removed or persisted.
type Feed struct {
	mu    sync.Mutex
	items []models.Notification
}

func NewFeed() *Feed {
	return &Feed{}
}

// Add appends an advisory stamped with the current time.
func (f *Feed) Add(message string) models.Notification {
	n := models.Notification{
		ID:      uuid.New().String(),
		Message: message,
		Date:    time.Now(),
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, n)
	return n
}

// List returns a most-recent-first copy of the feed.
func (f *Feed) List() []models.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]models.Notification, len(f.items))
	for i, n := range f.items {
		out[len(f.items)-1-i] = n
	}
	return out
}
