/*
Package suggest is the core, providing correction, next-word prediction and
prefix completion over a bigram model.

All three operations are pure reads over an immutable model.Model, so a
single engine can serve concurrent callers without locks.

Correction scans the vocabulary for the entry with the minimum Levenshtein
distance to the input. The scan visits vocabulary entries in first-seen
corpus order and keeps the first minimum, which makes tie-breaking
deterministic. The scan is linear in vocabulary size with an O(len(a)*len(b))
distance computation per entry; fine for the small corpora this targets,
unsuitable for dictionary-scale vocabularies.

Prediction looks up the bigram followers of a context word and returns the
top-k by occurrence count. Ties keep first-insertion order.

Completion walks a patricia trie built over the vocabulary, ranking matches
by unigram frequency.
*/
package suggest

// Suggestion is one ranked completion candidate.
type Suggestion struct {
	Word      string
	Frequency int
}

// ISuggester defines the interface front ends use for typing assistance
type ISuggester interface {
	// Correct returns the nearest in-vocabulary word by edit distance
	Correct(word string) string

	// PredictNext returns up to k likely next words for a context word
	PredictNext(word string, k int) []string

	// Complete returns ranked vocabulary completions for a prefix
	Complete(prefix string, limit int) []Suggestion

	// Stats returns statistics about the underlying model
	Stats() map[string]int
}
