package ports

import (
	"context"

	"github.com/termdeck/termdeck/internal/domain"
)

// DataStore is the host's entity/folder layer. All reads reflect the host's
// current in-memory state; folder association of a freshly created entity may
// settle after the creation event fires.
type DataStore interface {
	EntityByID(ctx context.Context, id domain.EntityID) (domain.Entity, error)
	EntitiesInFolder(ctx context.Context, folderID domain.FolderID) ([]domain.Entity, error)
	FolderByName(ctx context.Context, name, folderType string) (domain.Folder, error)
	CreateFolder(ctx context.Context, name, folderType string) (domain.Folder, error)
}

type MailStore interface {
	MessagesFor(ctx context.Context, userID string) ([]domain.Message, error)
	MessageByID(ctx context.Context, id string) (domain.Message, error)
}

type JournalStore interface {
	Entries(ctx context.Context) ([]domain.JournalEntry, error)
}

type Roster interface {
	Players(ctx context.Context) ([]domain.Player, error)
}
