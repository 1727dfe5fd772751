package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var trainingSentences = []string{
	"i am happy",
	"i am sad",
	"i love python",
	"i am learning python",
}

func TestBuildVocabulary(t *testing.T) {
	m := Build(trainingSentences)

	for _, w := range []string{"i", "am", "happy", "sad", "love", "python", "learning"} {
		assert.True(t, m.Contains(w), "vocabulary should contain %q", w)
	}
	assert.Equal(t, 7, m.VocabSize())

	// First-seen order is part of the contract.
	assert.Equal(t, []string{"i", "am", "happy", "sad", "love", "python", "learning"}, m.Vocabulary())
}

func TestBuildBigramCounts(t *testing.T) {
	m := Build(trainingSentences)

	assert.Equal(t, 2, m.BigramCount("i", "am"))
	assert.Equal(t, 1, m.BigramCount("i", "love"))
	assert.Equal(t, 1, m.BigramCount("i", "learning"))
	assert.Equal(t, 0, m.BigramCount("i", "python"))
	assert.Equal(t, 0, m.BigramCount("happy", "i"))

	// Total mass per context equals occurrences of the context followed by anything.
	assert.Equal(t, 4, m.ContextTotal("i"))
	assert.Equal(t, 3, m.ContextTotal("am"))
	assert.Equal(t, 0, m.ContextTotal("python"))
}

func TestFollowersInsertionOrder(t *testing.T) {
	m := Build(trainingSentences)

	fs := m.Followers("i")
	require.Len(t, fs, 3)
	assert.Equal(t, WordCount{Word: "am", Count: 2}, fs[0])
	assert.Equal(t, WordCount{Word: "love", Count: 1}, fs[1])
	assert.Equal(t, WordCount{Word: "learning", Count: 1}, fs[2])
}

func TestFollowersUnknownContext(t *testing.T) {
	m := Build(trainingSentences)
	assert.Empty(t, m.Followers("banana"))
}

func TestShortSentencesContributeNothing(t *testing.T) {
	m := Build([]string{"hello", "", "   ", "hello world"})

	// A lone token never enters the vocabulary; only pair members do.
	assert.Equal(t, 2, m.VocabSize())
	assert.Equal(t, 1, m.BigramCount("hello", "world"))
}

func TestTokenizationLowercasesInput(t *testing.T) {
	m := Build([]string{"Hello   World"})
	assert.True(t, m.Contains("hello"))
	assert.True(t, m.Contains("world"))
	assert.False(t, m.Contains("Hello"))
	assert.Equal(t, 1, m.BigramCount("hello", "world"))
}

func TestUnigramCounts(t *testing.T) {
	m := Build(trainingSentences)
	assert.Equal(t, 4, m.UnigramCount("i"))
	assert.Equal(t, 3, m.UnigramCount("am"))
	assert.Equal(t, 2, m.UnigramCount("python"))
	assert.Equal(t, 0, m.UnigramCount("missing"))
}

func TestStats(t *testing.T) {
	m := Build(trainingSentences)
	stats := m.Stats()
	assert.Equal(t, 7, stats["totalWords"])
	assert.Equal(t, 9, stats["totalPairs"])
}
