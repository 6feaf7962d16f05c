package memory

import (
	"context"
	"sync"

	"github.com/aretw0/vending/pkg/domain"
)

// Journal implements ports.Journal in memory.
// Safe for concurrent use.
type Journal struct {
	entries []domain.Entry
	mu      sync.RWMutex
}

// NewJournal creates an empty in-memory journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Record appends the entry.
func (j *Journal) Record(ctx context.Context, entry domain.Entry) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, entry)
	return nil
}

// List returns a copy of all entries so callers cannot mutate the journal.
func (j *Journal) List(ctx context.Context) ([]domain.Entry, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	out := make([]domain.Entry, len(j.entries))
	copy(out, j.entries)
	return out, nil
}
