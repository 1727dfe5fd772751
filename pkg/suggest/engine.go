package suggest

import (
	"github.com/softkey/typeassist/pkg/model"
)

// Engine bundles the correction, prediction and completion operations over
// one shared model. It satisfies ISuggester.
type Engine struct {
	model     *model.Model
	corrector *Corrector
	predictor *Predictor
	completer *Completer
}

var _ ISuggester = (*Engine)(nil)

// NewEngine creates an engine over the given model. The model is shared,
// not owned; several engines can read the same model.
func NewEngine(m *model.Model) *Engine {
	return &Engine{
		model:     m,
		corrector: NewCorrector(m),
		predictor: NewPredictor(m),
		completer: NewCompleter(m),
	}
}

// Correct returns the nearest in-vocabulary word by edit distance.
func (e *Engine) Correct(word string) string {
	return e.corrector.Correct(word)
}

// PredictNext returns up to k likely next words for a context word.
func (e *Engine) PredictNext(word string, k int) []string {
	return e.predictor.PredictNext(word, k)
}

// Complete returns ranked vocabulary completions for a prefix.
func (e *Engine) Complete(prefix string, limit int) []Suggestion {
	return e.completer.Complete(prefix, limit)
}

// Assist corrects the word, then predicts followers of the correction.
// This is the per-word-boundary call an interactive front end makes.
func (e *Engine) Assist(word string, k int) (string, []string) {
	corrected := e.corrector.Correct(word)
	return corrected, e.predictor.PredictNext(corrected, k)
}

// BigramCount reports how often w2 was observed right after w1.
func (e *Engine) BigramCount(w1, w2 string) int {
	return e.model.BigramCount(w1, w2)
}

// Stats returns statistics about the underlying model and trie index.
func (e *Engine) Stats() map[string]int {
	stats := e.model.Stats()
	for k, v := range e.completer.IndexStats() {
		stats[k] = v
	}
	return stats
}
