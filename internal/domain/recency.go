package domain

import (
	"sort"
	"strconv"
	"strings"
)

// RecencyKey derives a sort proxy for creation order from an entity
// identifier: non-digit characters are stripped and the remainder parsed as
// an integer. Identifiers that carry no parsable digits rank as 0.
//
// Host identifiers are not a documented ordering guarantee; this heuristic is
// isolated here so an explicit creation timestamp can replace it without
// touching the reconciliation pipeline.
func RecencyKey(id EntityID) int {
	var digits strings.Builder
	for _, r := range id {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}

	key, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return key
}

// DefaultRecentLimit is how many records the recent list shows.
const DefaultRecentLimit = 3

// SelectRecent sorts entities by descending recency key and truncates the
// result to limit. The sort is stable: entities with equal keys keep the
// data store's enumeration order.
func SelectRecent(entities []Entity, limit int) []Entity {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	recent := make([]Entity, len(entities))
	copy(recent, entities)
	sort.SliceStable(recent, func(i, j int) bool {
		return RecencyKey(recent[i].ID) > RecencyKey(recent[j].ID)
	})

	if len(recent) > limit {
		recent = recent[:limit]
	}
	return recent
}
