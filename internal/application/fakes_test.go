package application

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/termdeck/termdeck/internal/domain"
	"github.com/termdeck/termdeck/internal/ports"
)

// fakeFlags is an in-memory flag store that can be told to fail or panic
// for specific entities.
type fakeFlags struct {
	mu          sync.Mutex
	entity      map[domain.EntityID]map[string]string
	user        map[string]map[string]string
	failEntity  map[domain.EntityID]bool
	panicEntity map[domain.EntityID]bool
	failUserSet bool
}

func newFakeFlags() *fakeFlags {
	return &fakeFlags{
		entity:      map[domain.EntityID]map[string]string{},
		user:        map[string]map[string]string{},
		failEntity:  map[domain.EntityID]bool{},
		panicEntity: map[domain.EntityID]bool{},
	}
}

func (f *fakeFlags) EntityFlag(_ context.Context, id domain.EntityID, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.panicEntity[id] {
		panic("malformed flag data")
	}
	if f.failEntity[id] {
		return "", errors.New("flag read failed")
	}
	return f.entity[id][key], nil
}

func (f *fakeFlags) SetEntityFlag(_ context.Context, id domain.EntityID, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.entity[id] == nil {
		f.entity[id] = map[string]string{}
	}
	f.entity[id][key] = value
	return nil
}

func (f *fakeFlags) UserFlag(_ context.Context, userID, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.user[userID][key], nil
}

func (f *fakeFlags) SetUserFlag(_ context.Context, userID, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failUserSet {
		return errors.New("flag write failed")
	}
	if f.user[userID] == nil {
		f.user[userID] = map[string]string{}
	}
	f.user[userID][key] = value
	return nil
}

// fakeScheduler captures scheduled work so tests can fire the delayed
// horizon deterministically and count live periodic timers.
type fakeScheduler struct {
	mu      sync.Mutex
	pending []func()
	ticks   []func()
	live    int
}

func (s *fakeScheduler) AfterFunc(_ time.Duration, fn func()) ports.CancelFunc {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = append(s.pending, fn)
	return func() {}
}

func (s *fakeScheduler) Every(_ time.Duration, fn func()) ports.CancelFunc {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ticks = append(s.ticks, fn)
	s.live++

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.live--
		})
	}
}

// fireDelayed runs every captured one-shot callback once.
func (s *fakeScheduler) fireDelayed() {
	s.mu.Lock()
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, fn := range pending {
		fn()
	}
}

func (s *fakeScheduler) liveTimers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.live
}

type fakeRecords struct {
	mu     sync.Mutex
	opened []domain.EntityID
	err    error
}

func (f *fakeRecords) OpenEntity(_ context.Context, entity domain.Entity) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}
	f.opened = append(f.opened, entity.ID)
	return nil
}

type fakeNotifier struct {
	mu     sync.Mutex
	infos  []string
	warns  []string
	errors []string
}

func (f *fakeNotifier) Info(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.infos = append(f.infos, msg)
}

func (f *fakeNotifier) Warn(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.warns = append(f.warns, msg)
}

func (f *fakeNotifier) Error(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors = append(f.errors, msg)
}

type fakeThemes struct {
	theme ports.Theme
	err   error
}

func (f *fakeThemes) Load(string) (ports.Theme, error) {
	if f.err != nil {
		return ports.Theme{}, f.err
	}
	return f.theme, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
