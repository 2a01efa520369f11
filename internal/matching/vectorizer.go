package matching

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	appErr "github.com/hireloop/hireloop/internal/pkg/errors"
)

// VectorModel is a pre-trained, immutable term-weighting model. It is
// loaded once at startup and shared read-only across requests; nothing in
// this package mutates it after LoadModel returns.
type VectorModel struct {
	Vocabulary map[string]int     `json:"vocabulary"`
	IDF        map[string]float64 `json:"idf"`
}

// Dim is the fixed output dimensionality of Vectorize.
func (m *VectorModel) Dim() int {
	return len(m.Vocabulary)
}

// LoadModel reads the serialized model artifact. A missing or corrupt
// artifact is ErrModelUnavailable; callers that depend on ranking must
// treat that as fatal at startup, not per request.
func LoadModel(path string) (*VectorModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read artifact %s: %v", appErr.ErrModelUnavailable, path, err)
	}
	var m VectorModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: decode artifact %s: %v", appErr.ErrModelUnavailable, path, err)
	}
	if len(m.Vocabulary) == 0 {
		return nil, fmt.Errorf("%w: artifact %s has an empty vocabulary", appErr.ErrModelUnavailable, path)
	}
	seen := make([]bool, len(m.Vocabulary))
	for term, idx := range m.Vocabulary {
		if idx < 0 || idx >= len(m.Vocabulary) || seen[idx] {
			return nil, fmt.Errorf("%w: artifact %s has a bad index for term %q", appErr.ErrModelUnavailable, path, term)
		}
		seen[idx] = true
		if _, ok := m.IDF[term]; !ok {
			return nil, fmt.Errorf("%w: artifact %s is missing the weight for term %q", appErr.ErrModelUnavailable, path, term)
		}
	}
	return &m, nil
}

var termPattern = regexp.MustCompile(`[\p{L}\p{N}]+`)

// Tokenize extracts lowercase terms, treating any run of non-alphanumeric
// characters as a separator.
func Tokenize(text string) []string {
	return termPattern.FindAllString(strings.ToLower(text), -1)
}

// Vectorize counts term frequencies and scales each by the model weight.
// Out-of-vocabulary terms contribute zero; text with no in-vocabulary
// terms yields a zero vector, not an error.
func Vectorize(text string, m *VectorModel) []float64 {
	vec := make([]float64, m.Dim())
	for _, term := range Tokenize(text) {
		idx, ok := m.Vocabulary[term]
		if !ok {
			continue
		}
		vec[idx] += m.IDF[term]
	}
	return vec
}
