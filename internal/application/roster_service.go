package application

import (
	"context"
	"fmt"
	"sort"

	"github.com/termdeck/termdeck/internal/domain"
	"github.com/termdeck/termdeck/internal/ports"
)

// RosterService projects the host player list: connected players first,
// then alphabetical.
type RosterService struct {
	roster ports.Roster
}

func NewRosterService(roster ports.Roster) *RosterService {
	return &RosterService{roster: roster}
}

func (s *RosterService) Players(ctx context.Context) ([]domain.Player, error) {
	players, err := s.roster.Players(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	sorted := make([]domain.Player, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Online != sorted[j].Online {
			return sorted[i].Online
		}
		return sorted[i].Name < sorted[j].Name
	})

	return sorted, nil
}
