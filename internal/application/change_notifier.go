package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/termdeck/termdeck/internal/domain"
	"github.com/termdeck/termdeck/internal/ports"
)

// DefaultRefreshDelay is how long the notifier waits before the second
// reconciliation pass. The host associates a fresh entity with its folder
// asynchronously, so the state visible at event-fire time may still change.
const DefaultRefreshDelay = 500 * time.Millisecond

// ChangeNotifier receives entity lifecycle events from the host and
// schedules reconciliation at two horizons: one pass immediately, one after
// a fixed delay. Handlers never return errors or panic outward; the host
// must not care whether a refresh succeeded.
type ChangeNotifier struct {
	reconciler *Reconciler
	data       ports.DataStore
	sched      ports.Scheduler
	folderName string
	folderType string
	delay      time.Duration
	logger     *slog.Logger
}

func NewChangeNotifier(reconciler *Reconciler, data ports.DataStore, sched ports.Scheduler, cfg ReconcilerConfig, delay time.Duration, logger *slog.Logger) *ChangeNotifier {
	cfg.applyDefaults()
	if delay <= 0 {
		delay = DefaultRefreshDelay
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ChangeNotifier{
		reconciler: reconciler,
		data:       data,
		sched:      sched,
		folderName: cfg.FolderName,
		folderType: cfg.FolderType,
		delay:      delay,
		logger:     logger,
	}
}

func (n *ChangeNotifier) EntityCreated(ctx context.Context, id domain.EntityID) {
	n.observe(ctx, id, false)
}

func (n *ChangeNotifier) EntityUpdated(ctx context.Context, id domain.EntityID) {
	n.observe(ctx, id, false)
}

func (n *ChangeNotifier) EntityDeleted(ctx context.Context, id domain.EntityID) {
	n.observe(ctx, id, true)
}

func (n *ChangeNotifier) observe(ctx context.Context, id domain.EntityID, deleted bool) {
	defer n.recovered("entity change handler")

	n.reconciler.ReconcileRecentEntries(ctx)

	n.sched.AfterFunc(n.delay, func() {
		defer n.recovered("delayed reconcile pass")

		ctx := context.Background()
		if deleted {
			// The entity is gone, no membership re-check is possible.
			n.reconciler.ForceDisplay(ctx)
			return
		}
		if n.inTargetFolder(ctx, id) {
			n.reconciler.ForceDisplay(ctx)
			return
		}
		n.reconciler.ReconcileRecentEntries(ctx)
	})
}

// inTargetFolder re-verifies folder membership at delayed-pass time. Any
// failure reads as "not associated": the pass still reconciles, it just
// skips the forced display.
func (n *ChangeNotifier) inTargetFolder(ctx context.Context, id domain.EntityID) bool {
	folder, err := n.data.FolderByName(ctx, n.folderName, n.folderType)
	if err != nil {
		return false
	}

	entity, err := n.data.EntityByID(ctx, id)
	if err != nil {
		return false
	}

	return entity.FolderID == folder.ID
}

func (n *ChangeNotifier) recovered(op string) {
	if rec := recover(); rec != nil {
		n.logger.Error("change notifier recovered", "op", op, "panic", rec)
	}
}
