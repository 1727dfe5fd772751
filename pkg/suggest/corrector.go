package suggest

import (
	"github.com/charmbracelet/log"

	"github.com/softkey/typeassist/internal/utils"
	"github.com/softkey/typeassist/pkg/model"
)

// Corrector maps out-of-vocabulary words to their nearest vocabulary entry.
type Corrector struct {
	model *model.Model
}

// NewCorrector creates a corrector reading the given model.
func NewCorrector(m *model.Model) *Corrector {
	return &Corrector{model: m}
}

// Correct returns the vocabulary entry nearest to word by edit distance.
//
// Empty input comes back unchanged. A word already in the vocabulary is its
// own correction. Ties go to the vocabulary entry first reaching the minimum
// distance in first-seen corpus order. An empty vocabulary returns the input.
func (c *Corrector) Correct(word string) string {
	if word == "" {
		return ""
	}

	w := utils.NormalizeWord(word)
	if c.model.Contains(w) {
		return w
	}

	best := ""
	bestDist := -1
	for _, cand := range c.model.Vocabulary() {
		d := Levenshtein(w, cand)
		if bestDist < 0 || d < bestDist {
			best = cand
			bestDist = d
		}
	}

	if bestDist < 0 {
		log.Debugf("Empty vocabulary, returning %q unchanged", word)
		return word
	}
	return best
}

// Distance exposes the edit distance used for correction.
func (c *Corrector) Distance(a, b string) int {
	return Levenshtein(a, b)
}
