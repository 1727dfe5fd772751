package suggest

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/softkey/typeassist/pkg/model"
)

// Completer indexes the model vocabulary in a patricia trie for prefix
// completion, ranked by unigram frequency.
type Completer struct {
	trie         *patricia.Trie
	totalWords   int
	maxFrequency int
}

// NewCompleter builds the trie from the model's vocabulary.
func NewCompleter(m *model.Model) *Completer {
	c := &Completer{trie: patricia.NewTrie()}
	for _, w := range m.Vocabulary() {
		freq := m.UnigramCount(w)
		c.trie.Insert(patricia.Prefix(w), freq)
		c.totalWords++
		if freq > c.maxFrequency {
			c.maxFrequency = freq
		}
	}
	return c
}

// Complete returns vocabulary words starting with prefix, most frequent
// first, excluding an exact match of the prefix itself. limit <= 0 means
// no limit.
func (c *Completer) Complete(prefix string, limit int) []Suggestion {
	lowerPrefix := strings.ToLower(prefix)
	if lowerPrefix == "" {
		return nil
	}

	var suggestions []Suggestion

	err := c.trie.VisitSubtree(patricia.Prefix(lowerPrefix), func(p patricia.Prefix, item patricia.Item) error {
		word := string(p)

		// Skip exact matches to avoid duplicating the input
		if word == lowerPrefix {
			return nil
		}

		freq := 1
		switch v := item.(type) {
		case int:
			freq = v
		case int32:
			freq = int(v)
		case uint32:
			freq = int(v)
		default:
			log.Errorf("Unknown item type: %T for word %s", item, p)
		}

		suggestions = append(suggestions, Suggestion{
			Word:      word,
			Frequency: freq,
		})
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
		return nil
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Frequency > suggestions[j].Frequency
	})

	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

// IndexStats returns trie-level statistics.
func (c *Completer) IndexStats() map[string]int {
	return map[string]int{
		"indexedWords": c.totalWords,
		"maxFrequency": c.maxFrequency,
	}
}
