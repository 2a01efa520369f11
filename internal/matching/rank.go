package matching

import (
	"fmt"
	"math"
	"sort"

	appErr "github.com/hireloop/hireloop/internal/pkg/errors"
)

// ScoredMatch references a job by its index in the supplied corpus.
// Rank is the position in the returned ordering, 0 = best.
type ScoredMatch struct {
	Index int     `json:"index"`
	Score float64 `json:"score"`
	Rank  int     `json:"rank"`
}

func (m ScoredMatch) MatchScore() float64 {
	return m.Score
}

// Rank vectorizes the resume and every job text, then orders jobs by
// cosine similarity to the resume.
func Rank(resumeText string, jobTexts []string, m *VectorModel, topK int) ([]ScoredMatch, error) {
	if m == nil {
		return nil, appErr.ErrModelUnavailable
	}
	if topK <= 0 {
		return nil, fmt.Errorf("%w: top_k must be positive, got %d", appErr.ErrInvalid, topK)
	}
	resume := Vectorize(resumeText, m)
	jobs := make([][]float64, len(jobTexts))
	for i, text := range jobTexts {
		jobs[i] = Vectorize(text, m)
	}
	return RankVectors(resume, jobs, topK)
}

// RankVectors ranks precomputed job vectors against a resume vector.
// Scores are sorted descending with ties broken by original index, so the
// ordering is deterministic. At most topK entries are returned.
func RankVectors(resume []float64, jobs [][]float64, topK int) ([]ScoredMatch, error) {
	if topK <= 0 {
		return nil, fmt.Errorf("%w: top_k must be positive, got %d", appErr.ErrInvalid, topK)
	}
	scored := make([]ScoredMatch, len(jobs))
	for i, vec := range jobs {
		scored[i] = ScoredMatch{Index: i, Score: CosineSimilarity(resume, vec)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if topK < len(scored) {
		scored = scored[:topK]
	}
	for i := range scored {
		scored[i].Rank = i
	}
	return scored, nil
}

// CosineSimilarity is dot(a,b) / (||a||*||b||). A zero-magnitude vector
// (fully out-of-vocabulary text) yields 0 rather than dividing by zero.
func CosineSimilarity(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
	}
	var na, nb float64
	for _, v := range a {
		na += v * v
	}
	for _, v := range b {
		nb += v * v
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
