// Package cli handles cmd line input for DBG and testing the suggestion engine
package cli

import (
	"bufio"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/softkey/typeassist/internal/logger"
	"github.com/softkey/typeassist/internal/utils"
	"github.com/softkey/typeassist/pkg/suggest"
)

// InputHandler processes user input from stdin, showing the correction,
// next-word predictions and prefix completions for each entered word.
type InputHandler struct {
	engine       *suggest.Engine
	out          *log.Logger
	maxWordLen   int
	predictK     int
	suggestLimit int
	noFilter     bool
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(engine *suggest.Engine, maxWordLen, predictK, limit int, noFilter bool) *InputHandler {
	return &InputHandler{
		engine:       engine,
		out:          logger.Default(""),
		maxWordLen:   maxWordLen,
		predictK:     predictK,
		suggestLimit: limit,
		noFilter:     noFilter,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleInput() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	h.out.Print("TypeAssist CLI")
	reader := bufio.NewReader(os.Stdin)
	h.out.Print("type a word and press Enter to see correction and predictions (Ctrl+C to exit):")

	for {
		h.out.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
}

// handleInput processes one entered line. When the line holds several words
// only the last one is used, matching how a front end grabs the word just
// finished at a whitespace boundary.
func (h *InputHandler) handleInput(line string) {
	tokens := utils.Tokenize(line)
	if len(tokens) == 0 {
		return
	}
	word := tokens[len(tokens)-1]

	if len(word) > h.maxWordLen {
		log.Errorf("Word too long: %s", word)
		return
	}

	if !h.noFilter {
		if !utils.IsValidWord(word) {
			log.Infof("No results for input: '%s'", word)
			return
		}
	} else {
		log.Debug("Input filtering disabled")
	}

	start := time.Now()
	corrected, predictions := h.engine.Assist(word, h.predictK)
	completions := h.engine.Complete(word, h.suggestLimit)
	elapsed := time.Since(start)

	log.Debugf("Took [ %v ] for word '%s'", elapsed, word)

	if corrected != word {
		h.out.Printf("did you mean: \033[38;5;75m%s\033[0m", corrected)
	}

	if len(predictions) == 0 {
		log.Warnf("No predictions for '%s'", corrected)
	} else {
		h.out.Printf("next word after '%s':", corrected)
		for i, w := range predictions {
			count := h.engine.BigramCount(corrected, w)
			h.out.Printf("%2d. %-24s (seen: %s)", i+1, w, utils.FormatWithCommas(count))
		}
	}

	if len(completions) > 0 {
		words := make([]string, len(completions))
		for i, s := range completions {
			words[i] = s.Word
		}
		h.out.Printf("completions: %v", words)
	}
}
