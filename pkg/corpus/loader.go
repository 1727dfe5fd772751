// Package corpus loads training sentences for the bigram model.
//
// The on-disk format is one sentence per line, plain UTF-8 text. Blank lines
// and lines starting with '#' are skipped. Normalization (lowercasing,
// whitespace tokenization) happens in the model builder, so corpus files can
// keep their original casing.
package corpus

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/softkey/typeassist/pkg/model"
)

// Loader reads sentence corpora from plain text files.
type Loader struct {
	path         string
	maxSentences int
}

// NewLoader creates a loader for the given file. maxSentences caps how many
// lines are read; 0 means no cap.
func NewLoader(path string, maxSentences int) *Loader {
	return &Loader{
		path:         path,
		maxSentences: maxSentences,
	}
}

// Load reads the corpus file into a sentence slice.
func (l *Loader) Load() ([]string, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus file %s: %w", l.path, err)
	}
	defer file.Close()

	var sentences []string
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		sentences = append(sentences, line)

		if l.maxSentences > 0 && len(sentences) >= l.maxSentences {
			log.Warnf("Corpus %s truncated at %d sentences (line %d)", l.path, l.maxSentences, lineNo)
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read corpus file %s: %w", l.path, err)
	}

	log.Debugf("Loaded %d sentences from %s", len(sentences), l.path)
	return sentences, nil
}

// BuildModel loads the corpus and builds a bigram model from it.
func (l *Loader) BuildModel() (*model.Model, error) {
	sentences, err := l.Load()
	if err != nil {
		return nil, err
	}
	return model.Build(sentences), nil
}
