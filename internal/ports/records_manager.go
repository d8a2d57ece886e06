package ports

import (
	"context"

	"github.com/termdeck/termdeck/internal/domain"
)

// RecordsManager opens the host-level detail presentation for a resolved
// entity.
type RecordsManager interface {
	OpenEntity(ctx context.Context, entity domain.Entity) error
}

// Notifier is the user-visible notification channel. Delivery is best
// effort; reconciliation correctness never depends on it.
type Notifier interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}
