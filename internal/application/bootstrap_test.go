package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termdeck/termdeck/internal/adapters/render/console"
	"github.com/termdeck/termdeck/internal/adapters/store/memory"
	"github.com/termdeck/termdeck/internal/domain"
	"github.com/termdeck/termdeck/internal/ports"
)

type bootstrapFixture struct {
	store     *memory.Store
	screen    *console.Screen
	session   *Session
	sched     *fakeScheduler
	notifier  *fakeNotifier
	themes    *fakeThemes
	bootstrap *Bootstrap
}

func newBootstrapFixture(t *testing.T) *bootstrapFixture {
	t.Helper()

	store := memory.NewStore()
	screen := console.NewScreen()
	flags := newFakeFlags()
	sched := &fakeScheduler{}
	notifier := &fakeNotifier{}
	themes := &fakeThemes{theme: ports.Theme{Name: "green-crt", EmptyText: "NO RECORDS ON FILE"}}

	reconciler := NewReconciler(store, flags, screen, &fakeRecords{}, ReconcilerConfig{}, discardLogger())
	session := NewSession(flags, sched, reconciler, "player-1", 0, discardLogger())
	bootstrap := NewBootstrap(themes, screen, store, reconciler, session, notifier, ReconcilerConfig{}, "green-crt", discardLogger())

	return &bootstrapFixture{
		store:     store,
		screen:    screen,
		session:   session,
		sched:     sched,
		notifier:  notifier,
		themes:    themes,
		bootstrap: bootstrap,
	}
}

func TestBootstrapRunsFullChain(t *testing.T) {
	f := newBootstrapFixture(t)
	ctx := context.Background()

	require.NoError(t, f.bootstrap.Run(ctx))

	_, err := f.store.FolderByName(ctx, "PC Records", "Actor")
	require.NoError(t, err)

	list, ok := f.screen.List(console.ListRecentRecords)
	require.True(t, ok)
	items := list.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "NO RECORDS ON FILE", items[0].Label)

	assert.True(t, f.session.Active())
}

func TestBootstrapThemeFailureHaltsDependentSteps(t *testing.T) {
	f := newBootstrapFixture(t)
	f.themes.err = errors.New("corrupt theme file")

	err := f.bootstrap.Run(context.Background())
	require.Error(t, err)

	assert.NotEmpty(t, f.notifier.errors)
	assert.False(t, f.session.Active())
	_, folderErr := f.store.FolderByName(context.Background(), "PC Records", "Actor")
	assert.ErrorIs(t, folderErr, domain.ErrFolderNotFound)
}

func TestBootstrapKeepsExistingFolder(t *testing.T) {
	f := newBootstrapFixture(t)
	ctx := context.Background()

	existing, err := f.store.CreateFolder(ctx, "PC Records", "Actor")
	require.NoError(t, err)

	require.NoError(t, f.bootstrap.Run(ctx))

	folder, err := f.store.FolderByName(ctx, "PC Records", "Actor")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, folder.ID)
}
