package suggest

import (
	"sort"

	"github.com/softkey/typeassist/internal/utils"
	"github.com/softkey/typeassist/pkg/model"
)

// DefaultPredictions is the number of next words returned when the caller
// does not ask for a specific k.
const DefaultPredictions = 3

// Predictor suggests likely next words from bigram counts.
type Predictor struct {
	model *model.Model
}

// NewPredictor creates a predictor reading the given model.
func NewPredictor(m *model.Model) *Predictor {
	return &Predictor{model: m}
}

// PredictNext returns up to k words observed to follow the context word,
// ordered by descending occurrence count. Count ties keep the order in which
// followers were first recorded. A context absent from the bigram table
// yields an empty result. k <= 0 falls back to DefaultPredictions.
func (p *Predictor) PredictNext(word string, k int) []string {
	if k <= 0 {
		k = DefaultPredictions
	}

	followers := p.model.Followers(utils.NormalizeWord(word))
	if len(followers) == 0 {
		return nil
	}

	// Stable sort so equal counts preserve first-insertion order.
	sort.SliceStable(followers, func(i, j int) bool {
		return followers[i].Count > followers[j].Count
	})

	if len(followers) > k {
		followers = followers[:k]
	}

	words := make([]string, len(followers))
	for i, f := range followers {
		words[i] = f.Word
	}
	return words
}
