package matching

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	appErr "github.com/hireloop/hireloop/internal/pkg/errors"
)

func writeArtifact(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testModel() *VectorModel {
	return &VectorModel{
		Vocabulary: map[string]int{"python": 0, "react": 1, "java": 2},
		IDF:        map[string]float64{"python": 1.5, "react": 2.0, "java": 1.0},
	}
}

func TestLoadModel(t *testing.T) {
	path := writeArtifact(t, `{"vocabulary":{"python":0,"react":1},"idf":{"python":1.5,"react":2.0}}`)
	m, err := LoadModel(path)
	require.NoError(t, err)
	require.Equal(t, 2, m.Dim())
	require.Equal(t, 1.5, m.IDF["python"])
}

func TestLoadModelMissing(t *testing.T) {
	_, err := LoadModel(filepath.Join(t.TempDir(), "nope.json"))
	require.ErrorIs(t, err, appErr.ErrModelUnavailable)
}

func TestLoadModelCorrupt(t *testing.T) {
	_, err := LoadModel(writeArtifact(t, `{"vocabulary":`))
	require.ErrorIs(t, err, appErr.ErrModelUnavailable)
}

func TestLoadModelEmptyVocabulary(t *testing.T) {
	_, err := LoadModel(writeArtifact(t, `{"vocabulary":{},"idf":{}}`))
	require.ErrorIs(t, err, appErr.ErrModelUnavailable)
}

func TestLoadModelBadIndex(t *testing.T) {
	_, err := LoadModel(writeArtifact(t, `{"vocabulary":{"python":0,"react":0},"idf":{"python":1,"react":1}}`))
	require.ErrorIs(t, err, appErr.ErrModelUnavailable)
}

func TestLoadModelMissingWeight(t *testing.T) {
	_, err := LoadModel(writeArtifact(t, `{"vocabulary":{"python":0},"idf":{}}`))
	require.ErrorIs(t, err, appErr.ErrModelUnavailable)
}

func TestTokenize(t *testing.T) {
	require.Equal(t,
		[]string{"senior", "python", "dev", "remote", "ok"},
		Tokenize("Senior Python-dev (remote OK)!"))
	require.Empty(t, Tokenize("  ... !! "))
}

func TestVectorizeWeighsTermFrequency(t *testing.T) {
	m := testModel()
	vec := Vectorize("python PYTHON react", m)
	require.Len(t, vec, 3)
	require.Equal(t, 3.0, vec[0]) // 2 * 1.5
	require.Equal(t, 2.0, vec[1])
	require.Equal(t, 0.0, vec[2])
}

func TestVectorizeOutOfVocabulary(t *testing.T) {
	m := testModel()
	vec := Vectorize("haskell prolog", m)
	for _, v := range vec {
		require.Zero(t, v)
	}
}
