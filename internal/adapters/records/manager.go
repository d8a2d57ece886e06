// Package records presents an entity's case-study view. In-process it
// renders the detail block to a writer; a host-connected build would call
// into the host sheet instead.
package records

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/termdeck/termdeck/internal/domain"
	"github.com/termdeck/termdeck/internal/ports"
)

type Manager struct {
	flags ports.FlagStore

	mu  sync.Mutex
	out io.Writer
}

var _ ports.RecordsManager = (*Manager)(nil)

func NewManager(flags ports.FlagStore, out io.Writer) *Manager {
	return &Manager{flags: flags, out: out}
}

func (m *Manager) OpenEntity(ctx context.Context, entity domain.Entity) error {
	surname, _ := m.flags.EntityFlag(ctx, entity.ID, domain.FlagSurname)
	first, _ := m.flags.EntityFlag(ctx, entity.ID, domain.FlagFirstName)
	middle, _ := m.flags.EntityFlag(ctx, entity.ID, domain.FlagMiddleName)

	header := lipgloss.NewStyle().Bold(true).Render("CASE STUDY // " + string(entity.ID))
	label := domain.ComposeLabel(entity.Name, surname, first, middle)

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := fmt.Fprintf(m.out, "%s\n  subject: %s\n  file:    %s\n", header, label, entity.Name); err != nil {
		return fmt.Errorf("write record detail: %w", err)
	}
	return nil
}
