// Package memory is an in-process stand-in for the host's data layer. It
// backs the demo mode and the test suite, and reproduces the host quirk the
// reconciler has to tolerate: an entity can be created first and associated
// with its folder a moment later.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/termdeck/termdeck/internal/domain"
)

// Subscriber receives entity lifecycle events. The application's change
// notifier satisfies this.
type Subscriber interface {
	EntityCreated(ctx context.Context, id domain.EntityID)
	EntityUpdated(ctx context.Context, id domain.EntityID)
	EntityDeleted(ctx context.Context, id domain.EntityID)
}

type Store struct {
	mu       sync.RWMutex
	entities map[domain.EntityID]domain.Entity
	order    []domain.EntityID
	folders  map[domain.FolderID]domain.Folder
	subs     []Subscriber
}

func NewStore() *Store {
	return &Store{
		entities: map[domain.EntityID]domain.Entity{},
		folders:  map[domain.FolderID]domain.Folder{},
	}
}

// Subscribe registers a lifecycle subscriber. Not safe to call concurrently
// with mutations; wire subscribers before the store goes live.
func (s *Store) Subscribe(sub Subscriber) {
	s.subs = append(s.subs, sub)
}

func (s *Store) EntityByID(ctx context.Context, id domain.EntityID) (domain.Entity, error) {
	if err := ctx.Err(); err != nil {
		return domain.Entity{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	entity, ok := s.entities[id]
	if !ok {
		return domain.Entity{}, domain.ErrEntityNotFound
	}
	return entity, nil
}

// EntitiesInFolder returns matches in creation order, which keeps the
// recency sort's tie-break deterministic.
func (s *Store) EntitiesInFolder(ctx context.Context, folderID domain.FolderID) ([]domain.Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []domain.Entity
	for _, id := range s.order {
		entity := s.entities[id]
		if entity.FolderID == folderID {
			matches = append(matches, entity)
		}
	}
	return matches, nil
}

func (s *Store) FolderByName(ctx context.Context, name, folderType string) (domain.Folder, error) {
	if err := ctx.Err(); err != nil {
		return domain.Folder{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, folder := range s.folders {
		if folder.Name == name && folder.Type == folderType {
			return folder, nil
		}
	}
	return domain.Folder{}, domain.ErrFolderNotFound
}

func (s *Store) CreateFolder(ctx context.Context, name, folderType string) (domain.Folder, error) {
	if err := ctx.Err(); err != nil {
		return domain.Folder{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, folder := range s.folders {
		if folder.Name == name && folder.Type == folderType {
			return folder, nil
		}
	}

	folder := domain.Folder{
		ID:   domain.FolderID(uuid.NewString()),
		Name: name,
		Type: folderType,
	}
	s.folders[folder.ID] = folder
	return folder, nil
}

// CreateEntity adds an entity and fires the created event. Pass an empty
// FolderID and call AssociateFolder later to mimic the host's delayed
// folder association.
func (s *Store) CreateEntity(ctx context.Context, entity domain.Entity) {
	s.mu.Lock()
	if _, exists := s.entities[entity.ID]; !exists {
		s.order = append(s.order, entity.ID)
	}
	s.entities[entity.ID] = entity
	s.mu.Unlock()

	for _, sub := range s.subs {
		sub.EntityCreated(ctx, entity.ID)
	}
}

func (s *Store) UpdateEntity(ctx context.Context, entity domain.Entity) {
	s.mu.Lock()
	if _, exists := s.entities[entity.ID]; !exists {
		s.order = append(s.order, entity.ID)
	}
	s.entities[entity.ID] = entity
	s.mu.Unlock()

	for _, sub := range s.subs {
		sub.EntityUpdated(ctx, entity.ID)
	}
}

func (s *Store) DeleteEntity(ctx context.Context, id domain.EntityID) {
	s.mu.Lock()
	delete(s.entities, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	for _, sub := range s.subs {
		sub.EntityDeleted(ctx, id)
	}
}

// AssociateFolder settles an entity's folder reference without firing a
// lifecycle event, the way the host's asynchronous association lands.
func (s *Store) AssociateFolder(id domain.EntityID, folderID domain.FolderID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entity, ok := s.entities[id]
	if !ok {
		return
	}
	entity.FolderID = folderID
	s.entities[id] = entity
}
