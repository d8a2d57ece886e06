package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/termdeck/termdeck/internal/domain"
	"github.com/termdeck/termdeck/internal/ports"
)

// SeedDemo populates the in-process host with a small demo world so the
// overlay has something to show without a live host connection.
func SeedDemo(ctx context.Context, store *Store, views *ViewStore, flags ports.FlagStore, folderName, folderType, userID string) error {
	folder, err := store.CreateFolder(ctx, folderName, folderType)
	if err != nil {
		return fmt.Errorf("create demo folder: %w", err)
	}

	actors := []struct {
		id                     domain.EntityID
		name                   string
		surname, first, middle string
	}{
		{"Actor-100", "Jane Smith", "Smith", "Jane", ""},
		{"Actor-250", "Marcus Vell", "Vell", "Marcus", "A."},
		{"Actor-50", "Ash", "", "", ""},
		{"Actor-180", "Riv Calder", "Calder", "Riv", ""},
	}

	for _, actor := range actors {
		store.CreateEntity(ctx, domain.Entity{ID: actor.id, Name: actor.name, FolderID: folder.ID})

		for key, value := range map[string]string{
			domain.FlagSurname:    actor.surname,
			domain.FlagFirstName:  actor.first,
			domain.FlagMiddleName: actor.middle,
		} {
			if value == "" {
				continue
			}
			if err := flags.SetEntityFlag(ctx, actor.id, key, value); err != nil {
				return fmt.Errorf("seed flag %s on %s: %w", key, actor.id, err)
			}
		}
	}

	now := time.Now()
	views.DeliverMessage(userID, domain.Message{
		ID:      "msg-session-zero",
		Sender:  "GM",
		Subject: "Session zero notes",
		Body:    "Bring your character concepts on Friday.",
		SentAt:  now.Add(-48 * time.Hour),
	})
	views.DeliverMessage(userID, domain.Message{
		ID:      "msg-records-access",
		Sender:  "Archivist",
		Subject: "Records access granted",
		Body:    "Your terminal clearance is active.",
		SentAt:  now.Add(-2 * time.Hour),
	})

	views.AddEntry(domain.JournalEntry{Title: "Arrival at the relay station", WrittenAt: now.Add(-72 * time.Hour)})
	views.AddEntry(domain.JournalEntry{Title: "The vault door opens", WrittenAt: now.Add(-24 * time.Hour)})

	views.SetPlayers([]domain.Player{
		{ID: "p1", Name: "Dana", Color: "#3fbf3f", Online: true},
		{ID: "p2", Name: "Lee", Color: "#bf8f3f", Online: false},
		{ID: "p3", Name: "Sam", Color: "#3f8fbf", Online: true},
	})

	return nil
}
