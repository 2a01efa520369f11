package matching

import (
	"testing"

	"github.com/stretchr/testify/require"

	appErr "github.com/hireloop/hireloop/internal/pkg/errors"
)

// scoredRecord mimics a heterogeneous upstream record where the score
// field may be absent.
type scoredRecord struct {
	name  string
	score *float64
}

func (r scoredRecord) MatchScore() float64 {
	if r.score == nil {
		return 0
	}
	return *r.score
}

func ptr(v float64) *float64 { return &v }

func TestShortlistThresholdAndMissingScore(t *testing.T) {
	items := []scoredRecord{
		{name: "a", score: ptr(0.9)},
		{name: "b", score: ptr(0.5)},
		{name: "c"},
	}
	kept, err := Shortlist(items, 0.8)
	require.NoError(t, err)
	require.Len(t, kept, 1)
	require.Equal(t, "a", kept[0].name)
}

func TestShortlistPreservesOrder(t *testing.T) {
	items := []scoredRecord{
		{name: "a", score: ptr(0.81)},
		{name: "b", score: ptr(0.95)},
		{name: "c", score: ptr(0.85)},
	}
	kept, err := Shortlist(items, 0.8)
	require.NoError(t, err)
	require.Equal(t, "a", kept[0].name)
	require.Equal(t, "b", kept[1].name)
	require.Equal(t, "c", kept[2].name)
}

func TestShortlistMonotone(t *testing.T) {
	items := []scoredRecord{
		{name: "a", score: ptr(0.3)},
		{name: "b", score: ptr(0.6)},
		{name: "c", score: ptr(0.9)},
		{name: "d"},
	}
	low, err := Shortlist(items, 0.2)
	require.NoError(t, err)
	high, err := Shortlist(items, 0.7)
	require.NoError(t, err)
	require.LessOrEqual(t, len(high), len(low))
	lowNames := map[string]struct{}{}
	for _, item := range low {
		lowNames[item.name] = struct{}{}
	}
	for _, item := range high {
		require.Contains(t, lowNames, item.name)
	}
}

func TestShortlistNegativeThreshold(t *testing.T) {
	_, err := Shortlist([]scoredRecord{{name: "a"}}, -0.1)
	require.ErrorIs(t, err, appErr.ErrInvalid)
}

func TestShortlistScoredMatches(t *testing.T) {
	items := []ScoredMatch{
		{Index: 0, Score: 0.92},
		{Index: 1, Score: 0.4},
	}
	kept, err := Shortlist(items, 0.8)
	require.NoError(t, err)
	require.Len(t, kept, 1)
	require.Equal(t, 0, kept[0].Index)
}
