/*
Package server implements msgpack IPC for typing-assist services.

The server package provides a minimal interface for correction, next-word
prediction and prefix completion using msgpack serialization over
stdin/stdout.

# IPC

The server operates on a request response model where clients send structured
messages via stdin and receive responses through stdout. Each message carries
an ID the client chooses; responses echo it so clients can correlate.

Correction requests use this structure:

	{"id": "req_001", "op": "correct", "w": "pythom"}

and come back with the corrected word:

	{"id": "req_001", "w": "python", "ch": true, "t": 120}

Prediction requests name the context word and how many followers they want:

	{"id": "req_002", "op": "predict", "w": "i", "k": 3}
	{"id": "req_002", "s": ["am", "love", "learning"], "c": 3, "t": 45}

The assist op chains both: it corrects the word, then predicts followers of
the correction, matching what a front end does at each word boundary.
Completion requests use "p" for the prefix and "l" for the result limit and
return ranked suggestions. A health request returns status plus model stats.

Validation failures (empty word, overlong input, unknown op) produce an
error payload with a code and never terminate the loop:

	{"id": "req_003", "e": "missing 'w' parameter", "c": 400}

Timing is reported in microseconds in the "t" field.
*/
package server

// Request is the single incoming message shape; "op" selects the operation.
type Request struct {
	ID     string `msgpack:"id"`
	Op     string `msgpack:"op"`
	Word   string `msgpack:"w,omitempty"`
	Prefix string `msgpack:"p,omitempty"`
	K      int    `msgpack:"k,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
}

// CorrectResponse answers a "correct" request.
type CorrectResponse struct {
	ID        string `msgpack:"id"`
	Word      string `msgpack:"w"`
	Changed   bool   `msgpack:"ch"`
	TimeTaken int64  `msgpack:"t"`
}

// PredictResponse answers a "predict" request.
type PredictResponse struct {
	ID        string   `msgpack:"id"`
	Words     []string `msgpack:"s"`
	Count     int      `msgpack:"c"`
	TimeTaken int64    `msgpack:"t"`
}

// AssistResponse answers an "assist" request: correction plus predictions
// for the corrected word.
type AssistResponse struct {
	ID        string   `msgpack:"id"`
	Word      string   `msgpack:"w"`
	Changed   bool     `msgpack:"ch"`
	Words     []string `msgpack:"s"`
	Count     int      `msgpack:"c"`
	TimeTaken int64    `msgpack:"t"`
}

// CompletionSuggestion is one ranked completion in a CompleteResponse.
type CompletionSuggestion struct {
	Word string `msgpack:"w"`
	Rank uint16 `msgpack:"r"`
}

// CompleteResponse answers a "complete" request.
type CompleteResponse struct {
	ID          string                 `msgpack:"id"`
	Suggestions []CompletionSuggestion `msgpack:"s"`
	Count       int                    `msgpack:"c"`
	TimeTaken   int64                  `msgpack:"t"`
}

// HealthResponse answers a "health" request.
type HealthResponse struct {
	ID     string         `msgpack:"id"`
	Status string         `msgpack:"status"`
	Stats  map[string]int `msgpack:"stats,omitempty"`
}

// ErrorResponse holds basic error information for failed requests.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
