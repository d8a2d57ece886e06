package application

import (
	"context"
	"fmt"
	"sort"

	"github.com/termdeck/termdeck/internal/domain"
	"github.com/termdeck/termdeck/internal/ports"
)

// JournalService projects host journal entries into the overlay's journal
// view, newest first.
type JournalService struct {
	journal ports.JournalStore
}

func NewJournalService(journal ports.JournalStore) *JournalService {
	return &JournalService{journal: journal}
}

func (s *JournalService) Entries(ctx context.Context) ([]domain.JournalEntry, error) {
	entries, err := s.journal.Entries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}

	sorted := make([]domain.JournalEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].WrittenAt.After(sorted[j].WrittenAt)
	})

	return sorted, nil
}
