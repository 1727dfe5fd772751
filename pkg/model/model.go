/*
Package model builds bigram language models from training corpora.

A model holds three read-only structures derived from a single scan of the
corpus: the vocabulary (every distinct word seen as part of an adjacent pair,
in first-seen order), unigram counts, and a bigram table mapping each context
word to the words observed to follow it with their occurrence counts.

Vocabulary order and per-context follower order are both first-insertion
order. That order is part of the contract: the suggest package breaks
correction ties by the first vocabulary entry reaching the minimum edit
distance, and prediction ties by the first-recorded follower, so results are
reproducible across runs and across models built from the same corpus.

Models are sealed after construction and safe for concurrent readers.
*/
package model

import (
	"github.com/charmbracelet/log"

	"github.com/softkey/typeassist/internal/utils"
)

// WordCount pairs a word with its occurrence count under some context.
type WordCount struct {
	Word  string
	Count int
}

// followers tracks the words seen immediately after one context word.
// order preserves first-insertion order for deterministic tie-breaking.
type followers struct {
	order []string
	count map[string]int
	total int
}

// Model is an immutable bigram language model.
type Model struct {
	words    []string
	wordIdx  map[string]int
	unigrams map[string]int
	bigrams  map[string]*followers
	pairs    int
}

// Builder accumulates sentences and produces a sealed Model.
type Builder struct {
	m *Model
}

// NewBuilder creates an empty model builder.
func NewBuilder() *Builder {
	return &Builder{
		m: &Model{
			wordIdx:  make(map[string]int),
			unigrams: make(map[string]int),
			bigrams:  make(map[string]*followers),
		},
	}
}

// AddSentence lowercases and whitespace-tokenizes one training sentence,
// then records every adjacent word pair. Sentences with fewer than two
// tokens contribute nothing: a lone token never enters the vocabulary.
func (b *Builder) AddSentence(sentence string) {
	b.AddTokens(utils.Tokenize(sentence))
}

// AddTokens records a pre-tokenized sentence. Tokens are assumed lowercase.
func (b *Builder) AddTokens(tokens []string) {
	if len(tokens) < 2 {
		return
	}
	for _, w := range tokens {
		b.m.addWord(w)
	}
	for i := 0; i+1 < len(tokens); i++ {
		b.addPair(tokens[i], tokens[i+1])
	}
}

func (b *Builder) addPair(w1, w2 string) {
	m := b.m
	f, ok := m.bigrams[w1]
	if !ok {
		f = &followers{count: make(map[string]int)}
		m.bigrams[w1] = f
	}
	if _, seen := f.count[w2]; !seen {
		f.order = append(f.order, w2)
	}
	f.count[w2]++
	f.total++
	m.pairs++
}

func (m *Model) addWord(w string) {
	if _, ok := m.wordIdx[w]; !ok {
		m.wordIdx[w] = len(m.words)
		m.words = append(m.words, w)
	}
	m.unigrams[w]++
}

// Model seals and returns the built model. The builder must not be used
// afterwards.
func (b *Builder) Model() *Model {
	m := b.m
	b.m = nil
	log.Debugf("Model sealed: %d words, %d contexts, %d pairs",
		len(m.words), len(m.bigrams), m.pairs)
	return m
}

// Build constructs a model from raw sentences in one call.
func Build(corpus []string) *Model {
	b := NewBuilder()
	for _, s := range corpus {
		b.AddSentence(s)
	}
	return b.Model()
}

// Vocabulary returns the vocabulary in first-seen order.
// The returned slice is shared and must not be modified.
func (m *Model) Vocabulary() []string {
	return m.words
}

// Contains reports whether a word is in the vocabulary.
func (m *Model) Contains(word string) bool {
	_, ok := m.wordIdx[word]
	return ok
}

// VocabSize returns the number of distinct vocabulary words.
func (m *Model) VocabSize() int {
	return len(m.words)
}

// UnigramCount returns how many times a word appeared in recorded sentences.
func (m *Model) UnigramCount(word string) int {
	return m.unigrams[word]
}

// Followers returns the words observed after the given context, with counts,
// in first-insertion order. Unknown contexts yield nil. The slice is a copy
// and safe for the caller to reorder.
func (m *Model) Followers(context string) []WordCount {
	f, ok := m.bigrams[context]
	if !ok {
		return nil
	}
	out := make([]WordCount, len(f.order))
	for i, w := range f.order {
		out[i] = WordCount{Word: w, Count: f.count[w]}
	}
	return out
}

// BigramCount returns how many times w2 immediately followed w1.
func (m *Model) BigramCount(w1, w2 string) int {
	f, ok := m.bigrams[w1]
	if !ok {
		return 0
	}
	return f.count[w2]
}

// ContextTotal returns how many times the context was immediately followed
// by any word. Equals the sum of all follower counts for that context.
func (m *Model) ContextTotal(context string) int {
	f, ok := m.bigrams[context]
	if !ok {
		return 0
	}
	return f.total
}

// Stats returns basic statistics about the model.
func (m *Model) Stats() map[string]int {
	return map[string]int{
		"totalWords":    len(m.words),
		"totalContexts": len(m.bigrams),
		"totalPairs":    m.pairs,
	}
}
