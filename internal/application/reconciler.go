package application

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/termdeck/termdeck/internal/domain"
	"github.com/termdeck/termdeck/internal/ports"
)

// ReconcilerConfig scopes the recent-records list: which folder feeds it,
// where it anchors on screen, and the canned texts rendered into it.
type ReconcilerConfig struct {
	FolderName       string
	FolderType       string
	ListID           string
	SectionName      string
	Limit            int
	EmptyText        string
	DiagnosticPrefix string
}

func (c *ReconcilerConfig) applyDefaults() {
	if c.FolderName == "" {
		c.FolderName = "PC Records"
	}
	if c.FolderType == "" {
		c.FolderType = "Actor"
	}
	if c.ListID == "" {
		c.ListID = "recent-records"
	}
	if c.SectionName == "" {
		c.SectionName = "records"
	}
	if c.Limit <= 0 {
		c.Limit = domain.DefaultRecentLimit
	}
	if c.EmptyText == "" {
		c.EmptyText = "No entries on file."
	}
	if c.DiagnosticPrefix == "" {
		c.DiagnosticPrefix = "[records]"
	}
}

// Reconciler keeps the recent-records list consistent with the host data
// store. It owns the last rendered snapshot and treats the screen as a pure
// projection of that snapshot; it never reads rendered content back to
// decide what to do next.
//
// All passes are serialized: event-triggered, delayed and timer-triggered
// invocations run the same pipeline one at a time.
type Reconciler struct {
	data    ports.DataStore
	flags   ports.FlagStore
	screen  ports.Screen
	records ports.RecordsManager
	cfg     ReconcilerConfig
	logger  *slog.Logger

	mu       sync.Mutex
	rendered []ports.ScreenItem
}

func NewReconciler(data ports.DataStore, flags ports.FlagStore, screen ports.Screen, records ports.RecordsManager, cfg ReconcilerConfig, logger *slog.Logger) *Reconciler {
	cfg.applyDefaults()
	if logger == nil {
		logger = slog.Default()
	}

	return &Reconciler{
		data:    data,
		flags:   flags,
		screen:  screen,
		records: records,
		cfg:     cfg,
		logger:  logger,
	}
}

// ApplyTheme adopts the theme's canned texts for list rendering and forces
// the next pass to re-render with them.
func (r *Reconciler) ApplyTheme(theme ports.Theme) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if theme.EmptyText != "" {
		r.cfg.EmptyText = theme.EmptyText
	}
	if theme.DiagnosticPrefix != "" {
		r.cfg.DiagnosticPrefix = theme.DiagnosticPrefix
	}
	r.rendered = nil
}

// ReconcileRecentEntries recomputes the recent list from the current data
// store state and patches the display if it drifted. Idempotent; safe to
// call from any trigger.
func (r *Reconciler) ReconcileRecentEntries(ctx context.Context) {
	r.run(ctx, false)
}

// ForceDisplay re-renders unconditionally, guaranteeing the displayed list
// is non-empty whenever matching data exists. Safe to call redundantly.
func (r *Reconciler) ForceDisplay(ctx context.Context) {
	r.run(ctx, true)
}

func (r *Reconciler) run(ctx context.Context, force bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("reconcile pass panicked", "panic", rec)
		}
	}()

	fresh := r.computeSnapshot(ctx)
	if !force && sameItems(fresh, r.rendered) && r.anchorPopulated() {
		return
	}

	if r.place(fresh) {
		r.rendered = fresh
	}
}

// computeSnapshot produces the fresh recent list. It always yields at least
// one item: a missing folder or an empty folder is a terminal, non-error
// outcome rendered as the empty-state placeholder.
func (r *Reconciler) computeSnapshot(ctx context.Context) []ports.ScreenItem {
	folder, err := r.data.FolderByName(ctx, r.cfg.FolderName, r.cfg.FolderType)
	if err != nil {
		if !errors.Is(err, domain.ErrFolderNotFound) {
			r.logger.Warn("resolve target folder", "folder", r.cfg.FolderName, "error", err)
		}
		return r.placeholder()
	}

	entities, err := r.data.EntitiesInFolder(ctx, folder.ID)
	if err != nil {
		r.logger.Warn("list folder entities", "folder", folder.ID, "error", err)
		return r.placeholder()
	}
	if len(entities) == 0 {
		return r.placeholder()
	}

	recent := domain.SelectRecent(entities, r.cfg.Limit)
	items := make([]ports.ScreenItem, 0, len(recent))
	for _, entity := range recent {
		items = append(items, ports.ScreenItem{
			Ref:      string(entity.ID),
			Label:    r.label(ctx, entity),
			Activate: r.activation(entity.ID),
		})
	}

	return items
}

func (r *Reconciler) placeholder() []ports.ScreenItem {
	return []ports.ScreenItem{{Label: r.cfg.EmptyText, Placeholder: true}}
}

// label composes the display label for one entity. Failures stay local to
// that entity: a bad flag reads as empty, and anything worse falls back to
// the raw name so one malformed record cannot blank the rest of the list.
func (r *Reconciler) label(ctx context.Context, entity domain.Entity) (label string) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Warn("compose record label", "entity", entity.ID, "panic", rec)
			label = entity.Name
			if label == "" {
				label = domain.UnknownRecordLabel
			}
		}
	}()

	surname := r.flag(ctx, entity.ID, domain.FlagSurname)
	first := r.flag(ctx, entity.ID, domain.FlagFirstName)
	middle := r.flag(ctx, entity.ID, domain.FlagMiddleName)

	return domain.ComposeLabel(entity.Name, surname, first, middle)
}

func (r *Reconciler) flag(ctx context.Context, id domain.EntityID, key string) string {
	value, err := r.flags.EntityFlag(ctx, id, key)
	if err != nil {
		r.logger.Debug("read entity flag", "entity", id, "key", key, "error", err)
		return ""
	}
	return value
}

func (r *Reconciler) activation(id domain.EntityID) func() {
	return func() {
		ctx := context.Background()

		entity, err := r.data.EntityByID(ctx, id)
		if err != nil {
			r.logger.Warn("resolve record for detail view", "entity", id, "error", err)
			return
		}
		if err := r.records.OpenEntity(ctx, entity); err != nil {
			r.logger.Warn("open record detail view", "entity", id, "error", err)
		}
	}
}

// placement is one strategy for getting the snapshot onto the screen.
type placement struct {
	name  string
	apply func(items []ports.ScreenItem) bool
}

func (r *Reconciler) placements() []placement {
	return []placement{
		{
			name: "anchor",
			apply: func(items []ports.ScreenItem) bool {
				list, ok := r.screen.List(r.cfg.ListID)
				if !ok {
					return false
				}
				list.SetItems(items)
				return true
			},
		},
		{
			name: "section",
			apply: func(items []ports.ScreenItem) bool {
				section, ok := r.screen.Section(r.cfg.SectionName)
				if !ok {
					return false
				}
				section.CreateList(r.cfg.ListID).SetItems(items)
				return true
			},
		},
	}
}

// place tries each placement strategy in order. When every strategy fails it
// writes a visibly marked diagnostic into any other list and reports the
// snapshot as not displayed, so the next pass retries.
func (r *Reconciler) place(items []ports.ScreenItem) bool {
	for _, strategy := range r.placements() {
		if !strategy.apply(items) {
			continue
		}
		if strategy.name != "anchor" {
			r.logger.Warn("recent list re-anchored", "strategy", strategy.name)
		}
		return true
	}

	r.diagnostic()
	return false
}

func (r *Reconciler) diagnostic() {
	for _, list := range r.screen.Lists() {
		if list.ID() == r.cfg.ListID {
			continue
		}
		list.SetItems([]ports.ScreenItem{{
			Label:       r.cfg.DiagnosticPrefix + " recent records list has no anchor",
			Placeholder: true,
		}})
		r.logger.Error("recent list anchor missing, diagnostic written", "into", list.ID())
		return
	}

	r.logger.Error("recent list anchor missing and no candidate list for diagnostics")
}

func (r *Reconciler) anchorPopulated() bool {
	list, ok := r.screen.List(r.cfg.ListID)
	return ok && len(list.Items()) > 0
}

func sameItems(a, b []ports.ScreenItem) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Ref != b[i].Ref || a[i].Label != b[i].Label || a[i].Placeholder != b[i].Placeholder {
			return false
		}
	}
	return true
}
