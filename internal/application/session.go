package application

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/termdeck/termdeck/internal/domain"
	"github.com/termdeck/termdeck/internal/ports"
)

// DefaultRefreshInterval is the periodic backstop cadence while the overlay
// is active.
const DefaultRefreshInterval = 500 * time.Millisecond

// Session owns the interface-active flag and the single periodic refresh
// timer for one user's overlay. The timer is the backstop for missed or
// misordered host events; it only ever triggers reconciliation and never
// mutates the active flag itself.
type Session struct {
	flags      ports.FlagStore
	sched      ports.Scheduler
	reconciler *Reconciler
	userID     string
	interval   time.Duration
	logger     *slog.Logger

	mu     sync.Mutex
	id     string
	cancel ports.CancelFunc
}

func NewSession(flags ports.FlagStore, sched ports.Scheduler, reconciler *Reconciler, userID string, interval time.Duration, logger *slog.Logger) *Session {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Session{
		flags:      flags,
		sched:      sched,
		reconciler: reconciler,
		userID:     userID,
		interval:   interval,
		logger:     logger,
	}
}

// Activate persists the interface-active flag and starts the periodic
// refresh timer. Re-activation cancels any prior timer first: there is at
// most one live timer per session, no matter how often this is called.
func (s *Session) Activate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	if err := s.flags.SetUserFlag(ctx, s.userID, domain.FlagInterfaceActive, "true"); err != nil {
		return fmt.Errorf("persist interface active flag: %w", err)
	}

	s.id = uuid.NewString()
	s.cancel = s.sched.Every(s.interval, func() {
		s.reconciler.ReconcileRecentEntries(context.Background())
	})

	s.logger.Debug("interface session activated", "session", s.id, "user", s.userID, "interval", s.interval)
	return nil
}

// Deactivate stops the refresh timer and clears the interface-active flag.
func (s *Session) Deactivate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	if err := s.flags.SetUserFlag(ctx, s.userID, domain.FlagInterfaceActive, "false"); err != nil {
		return fmt.Errorf("persist interface active flag: %w", err)
	}

	s.logger.Debug("interface session deactivated", "session", s.id, "user", s.userID)
	return nil
}

func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}
