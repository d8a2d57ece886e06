package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/termdeck/termdeck/internal/domain"
	"github.com/termdeck/termdeck/internal/ports"
)

// ViewStore holds the host-owned view data the overlay reads: mail,
// journal entries and the player roster.
type ViewStore struct {
	mu       sync.RWMutex
	clock    ports.Clock
	messages map[string][]domain.Message
	journal  []domain.JournalEntry
	players  []domain.Player
}

// NewViewStore creates an empty view store. A nil clock falls back to the
// system clock.
func NewViewStore(clock ports.Clock) *ViewStore {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &ViewStore{clock: clock, messages: map[string][]domain.Message{}}
}

func (v *ViewStore) MessagesFor(ctx context.Context, userID string) ([]domain.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v.mu.RLock()
	defer v.mu.RUnlock()

	messages := make([]domain.Message, len(v.messages[userID]))
	copy(messages, v.messages[userID])
	return messages, nil
}

func (v *ViewStore) MessageByID(ctx context.Context, id string) (domain.Message, error) {
	if err := ctx.Err(); err != nil {
		return domain.Message{}, err
	}

	v.mu.RLock()
	defer v.mu.RUnlock()

	for _, inbox := range v.messages {
		for _, message := range inbox {
			if message.ID == id {
				return message, nil
			}
		}
	}
	return domain.Message{}, domain.ErrMessageNotFound
}

func (v *ViewStore) DeliverMessage(userID string, message domain.Message) domain.Message {
	v.mu.Lock()
	defer v.mu.Unlock()

	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	if message.SentAt.IsZero() {
		message.SentAt = v.clock.Now()
	}
	v.messages[userID] = append(v.messages[userID], message)
	return message
}

func (v *ViewStore) Entries(ctx context.Context) ([]domain.JournalEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v.mu.RLock()
	defer v.mu.RUnlock()

	entries := make([]domain.JournalEntry, len(v.journal))
	copy(entries, v.journal)
	return entries, nil
}

func (v *ViewStore) AddEntry(entry domain.JournalEntry) domain.JournalEntry {
	v.mu.Lock()
	defer v.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.WrittenAt.IsZero() {
		entry.WrittenAt = v.clock.Now()
	}
	v.journal = append(v.journal, entry)
	return entry
}

func (v *ViewStore) Players(ctx context.Context) ([]domain.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v.mu.RLock()
	defer v.mu.RUnlock()

	players := make([]domain.Player, len(v.players))
	copy(players, v.players)
	return players, nil
}

func (v *ViewStore) SetPlayers(players []domain.Player) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.players = make([]domain.Player, len(players))
	copy(v.players, players)
}
