package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termdeck/termdeck/internal/adapters/render/console"
	"github.com/termdeck/termdeck/internal/domain"
)

type notifierFixture struct {
	*reconcilerFixture
	sched    *fakeScheduler
	notifier *ChangeNotifier
}

func newNotifierFixture(t *testing.T) *notifierFixture {
	t.Helper()

	base := newReconcilerFixture(t)
	sched := &fakeScheduler{}
	notifier := NewChangeNotifier(base.reconciler, base.store, sched, ReconcilerConfig{}, 0, discardLogger())
	base.store.Subscribe(notifier)

	return &notifierFixture{reconcilerFixture: base, sched: sched, notifier: notifier}
}

func TestCreateEventRefreshesImmediately(t *testing.T) {
	f := newNotifierFixture(t)

	f.store.CreateEntity(context.Background(), domain.Entity{ID: "Actor-100", Name: "Jane Smith", FolderID: f.folder.ID})

	items := f.recentItems(t)
	require.Len(t, items, 1)
	assert.Equal(t, "Actor-100", items[0].Ref)
}

func TestLateFolderAssociationLandsOnDelayedPass(t *testing.T) {
	f := newNotifierFixture(t)
	ctx := context.Background()

	// The host fires the creation event before the folder reference
	// settles: the immediate pass sees nothing in the target folder.
	f.store.CreateEntity(ctx, domain.Entity{ID: "Actor-100", Name: "Jane Smith"})
	items := f.recentItems(t)
	require.Len(t, items, 1)
	assert.True(t, items[0].Placeholder)

	f.store.AssociateFolder("Actor-100", f.folder.ID)
	f.sched.fireDelayed()

	items = f.recentItems(t)
	require.Len(t, items, 1)
	assert.Equal(t, "Actor-100", items[0].Ref)
}

func TestDelayedPassSkipsForceWhenEntityLeftFolder(t *testing.T) {
	f := newNotifierFixture(t)
	ctx := context.Background()

	f.store.CreateEntity(ctx, domain.Entity{ID: "Actor-100", Name: "Jane Smith", FolderID: f.folder.ID})
	// Moved out before the delayed pass: re-check reads as not
	// associated, the pass still reconciles and the list empties.
	f.store.AssociateFolder("Actor-100", "elsewhere")
	f.sched.fireDelayed()

	items := f.recentItems(t)
	require.Len(t, items, 1)
	assert.True(t, items[0].Placeholder)
}

func TestDeletingOnlyEntityTransitionsToPlaceholder(t *testing.T) {
	f := newNotifierFixture(t)
	ctx := context.Background()

	f.store.CreateEntity(ctx, domain.Entity{ID: "Actor-100", Name: "Jane Smith", FolderID: f.folder.ID})
	f.sched.fireDelayed()
	require.Equal(t, "Actor-100", f.recentItems(t)[0].Ref)

	f.store.DeleteEntity(ctx, "Actor-100")
	f.sched.fireDelayed()

	items := f.recentItems(t)
	require.Len(t, items, 1)
	assert.True(t, items[0].Placeholder)
}

func TestUpdateEventRefreshesLabels(t *testing.T) {
	f := newNotifierFixture(t)
	ctx := context.Background()

	f.store.CreateEntity(ctx, domain.Entity{ID: "Actor-100", Name: "Jane Smith", FolderID: f.folder.ID})
	require.NoError(t, f.flags.SetEntityFlag(ctx, "Actor-100", domain.FlagSurname, "Smith"))
	require.NoError(t, f.flags.SetEntityFlag(ctx, "Actor-100", domain.FlagFirstName, "Jane"))

	f.store.UpdateEntity(ctx, domain.Entity{ID: "Actor-100", Name: "Jane Smith", FolderID: f.folder.ID})
	f.sched.fireDelayed()

	items := f.recentItems(t)
	require.Len(t, items, 1)
	assert.Equal(t, "Smith - Jane ", items[0].Label)
}

func TestEventHandlersSurvivePanickingReconciler(t *testing.T) {
	base := newReconcilerFixture(t)
	base.flags.panicEntity["Actor-100"] = true
	sched := &fakeScheduler{}
	notifier := NewChangeNotifier(base.reconciler, base.store, sched, ReconcilerConfig{}, 0, discardLogger())
	base.store.Subscribe(notifier)

	ctx := context.Background()
	assert.NotPanics(t, func() {
		base.store.CreateEntity(ctx, domain.Entity{ID: "Actor-100", Name: "Jane Smith", FolderID: base.folder.ID})
		sched.fireDelayed()
	})
}

func TestEachEventSchedulesExactlyOneDelayedPass(t *testing.T) {
	f := newNotifierFixture(t)
	ctx := context.Background()

	f.store.CreateEntity(ctx, domain.Entity{ID: "Actor-100", Name: "Jane Smith", FolderID: f.folder.ID})
	f.store.UpdateEntity(ctx, domain.Entity{ID: "Actor-100", Name: "Jane Q Smith", FolderID: f.folder.ID})

	f.sched.mu.Lock()
	pending := len(f.sched.pending)
	f.sched.mu.Unlock()
	assert.Equal(t, 2, pending)
}

func TestDiagnosticPathDoesNotBreakLaterPasses(t *testing.T) {
	f := newNotifierFixture(t)
	ctx := context.Background()

	f.screen.RemoveList(console.ListRecentRecords)
	f.screen.RemoveSection(console.SectionRecords)
	f.store.CreateEntity(ctx, domain.Entity{ID: "Actor-100", Name: "Jane Smith", FolderID: f.folder.ID})
	f.sched.fireDelayed()

	// The snapshot was never marked rendered, so once an anchor exists
	// again the next pass lands it without needing a data change.
	section, ok := f.screen.Section(console.SectionMail)
	require.True(t, ok)
	section.CreateList(console.ListRecentRecords)

	f.reconciler.ReconcileRecentEntries(ctx)
	items := f.recentItems(t)
	require.Len(t, items, 1)
	assert.Equal(t, "Actor-100", items[0].Ref)
}
