package matching

import (
	"fmt"

	appErr "github.com/hireloop/hireloop/internal/pkg/errors"
)

// Scorer reports an item's match score. Heterogeneous upstream records
// that carry no score should report 0, so any positive threshold excludes
// them instead of crashing the filter.
type Scorer interface {
	MatchScore() float64
}

// Shortlist keeps items whose score meets minScore, preserving input
// order. It never re-ranks.
func Shortlist[T Scorer](items []T, minScore float64) ([]T, error) {
	if minScore < 0 {
		return nil, fmt.Errorf("%w: min_score must not be negative, got %v", appErr.ErrInvalid, minScore)
	}
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if item.MatchScore() >= minScore {
			kept = append(kept, item)
		}
	}
	return kept, nil
}
