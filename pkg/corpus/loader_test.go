package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCorpus(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSkipsBlanksAndComments(t *testing.T) {
	path := writeCorpus(t, "# header comment\n\ni am happy\n   \ni am sad\n# trailing\n")

	sentences, err := NewLoader(path, 0).Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"i am happy", "i am sad"}, sentences)
}

func TestLoadCapsSentences(t *testing.T) {
	path := writeCorpus(t, "one two\nthree four\nfive six\n")

	sentences, err := NewLoader(path, 2).Load()
	require.NoError(t, err)
	assert.Len(t, sentences, 2)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope.txt"), 0).Load()
	assert.Error(t, err)
}

func TestBuildModel(t *testing.T) {
	path := writeCorpus(t, "I am Happy\ni am sad\n")

	m, err := NewLoader(path, 0).BuildModel()
	require.NoError(t, err)
	assert.True(t, m.Contains("happy"), "model should hold lowercased tokens")
	assert.Equal(t, 2, m.BigramCount("i", "am"))
}

func TestBuiltinCorpusBuilds(t *testing.T) {
	sentences := Builtin()
	require.NotEmpty(t, sentences)
	for _, s := range sentences {
		assert.NotEmpty(t, s)
	}
}
