package server

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/softkey/typeassist/internal/utils"
	"github.com/softkey/typeassist/pkg/config"
	"github.com/softkey/typeassist/pkg/suggest"
)

// Server handles the IPC for typing-assist requests
type Server struct {
	engine *suggest.Engine
	cfg    *config.Config
	dec    *msgpack.Decoder
	enc    *msgpack.Encoder
}

// NewServer creates a new server using stdin/stdout for IPC
func NewServer(engine *suggest.Engine, cfg *config.Config) *Server {
	return NewServerWithIO(engine, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server on arbitrary streams, mainly for tests
func NewServerWithIO(engine *suggest.Engine, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		engine: engine,
		cfg:    cfg,
		dec:    msgpack.NewDecoder(r),
		enc:    msgpack.NewEncoder(w),
	}
}

// Start begins the request loop. It returns nil on clean EOF.
func (s *Server) Start() error {
	log.Debug("Starting server loop")
	s.send(HealthResponse{Status: "ready"})

	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if err == io.EOF {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(req)
	}
}

// handleRequest dispatches one decoded request
func (s *Server) handleRequest(req Request) {
	switch req.Op {
	case "correct":
		s.handleCorrect(req)
	case "predict":
		s.handlePredict(req)
	case "assist":
		s.handleAssist(req)
	case "complete":
		s.handleComplete(req)
	case "health":
		s.send(HealthResponse{ID: req.ID, Status: "ok", Stats: s.engine.Stats()})
	default:
		s.sendError(req.ID, fmt.Sprintf("unknown op: %s", req.Op), 400)
	}
}

// validateWord applies the shared word checks; it reports sendable failures
func (s *Server) validateWord(req Request) bool {
	if req.Word == "" {
		s.sendError(req.ID, "missing 'w' parameter", 400)
		log.Debug("Word is empty in request", "id", req.ID)
		return false
	}
	if len(req.Word) > s.cfg.Server.MaxWordLen {
		s.sendError(req.ID, fmt.Sprintf("word exceeds maximum length of %d", s.cfg.Server.MaxWordLen), 400)
		return false
	}
	if s.cfg.Server.EnableFilter && !utils.IsValidWord(req.Word) {
		s.sendError(req.ID, "word rejected by input filter", 422)
		return false
	}
	return true
}

// clampK bounds the requested prediction count by config
func (s *Server) clampK(k int) int {
	if k < 1 {
		k = s.cfg.Server.DefaultK
	}
	if k > s.cfg.Server.MaxK {
		k = s.cfg.Server.MaxK
	}
	return k
}

func (s *Server) handleCorrect(req Request) {
	if !s.validateWord(req) {
		return
	}

	start := time.Now()
	corrected := s.engine.Correct(req.Word)
	elapsed := time.Since(start)

	s.send(CorrectResponse{
		ID:        req.ID,
		Word:      corrected,
		Changed:   corrected != utils.NormalizeWord(req.Word),
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handlePredict(req Request) {
	if !s.validateWord(req) {
		return
	}

	start := time.Now()
	words := s.engine.PredictNext(req.Word, s.clampK(req.K))
	elapsed := time.Since(start)

	s.send(PredictResponse{
		ID:        req.ID,
		Words:     words,
		Count:     len(words),
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handleAssist(req Request) {
	if !s.validateWord(req) {
		return
	}

	start := time.Now()
	corrected, words := s.engine.Assist(req.Word, s.clampK(req.K))
	elapsed := time.Since(start)

	s.send(AssistResponse{
		ID:        req.ID,
		Word:      corrected,
		Changed:   corrected != utils.NormalizeWord(req.Word),
		Words:     words,
		Count:     len(words),
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handleComplete(req Request) {
	if req.Prefix == "" {
		s.sendError(req.ID, "missing 'p' parameter", 400)
		return
	}
	if len(req.Prefix) > s.cfg.Server.MaxWordLen {
		s.sendError(req.ID, fmt.Sprintf("prefix exceeds maximum length of %d", s.cfg.Server.MaxWordLen), 400)
		return
	}

	limit := req.Limit
	if limit < 1 || limit > s.cfg.Server.MaxLimit {
		limit = s.cfg.Server.MaxLimit
	}

	start := time.Now()
	suggestions := s.engine.Complete(req.Prefix, limit)
	elapsed := time.Since(start)

	ranked := make([]CompletionSuggestion, len(suggestions))
	for i, sg := range suggestions {
		ranked[i] = CompletionSuggestion{Word: sg.Word, Rank: uint16(i + 1)}
	}

	s.send(CompleteResponse{
		ID:          req.ID,
		Suggestions: ranked,
		Count:       len(ranked),
		TimeTaken:   elapsed.Microseconds(),
	})
}

// send marshals the response to the output stream
func (s *Server) send(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error payload without breaking the loop
func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
