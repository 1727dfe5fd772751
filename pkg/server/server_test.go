package server

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/softkey/typeassist/pkg/config"
	"github.com/softkey/typeassist/pkg/model"
	"github.com/softkey/typeassist/pkg/suggest"
)

func newTestServer(t *testing.T, requests ...Request) *msgpack.Decoder {
	t.Helper()

	m := model.Build([]string{
		"i am happy",
		"i am sad",
		"i love python",
		"i am learning python",
	})
	engine := suggest.NewEngine(m)

	var in bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, req := range requests {
		require.NoError(t, enc.Encode(req))
	}

	var out bytes.Buffer
	srv := NewServerWithIO(engine, config.DefaultConfig(), &in, &out)
	require.NoError(t, srv.Start(), "server should exit cleanly on EOF")

	dec := msgpack.NewDecoder(&out)

	// Swallow the ready banner.
	var ready HealthResponse
	require.NoError(t, dec.Decode(&ready))
	require.Equal(t, "ready", ready.Status)

	return dec
}

func TestServerCorrect(t *testing.T) {
	dec := newTestServer(t, Request{ID: "r1", Op: "correct", Word: "pythom"})

	var resp CorrectResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "r1", resp.ID)
	assert.Equal(t, "python", resp.Word)
	assert.True(t, resp.Changed)
}

func TestServerCorrectInVocabulary(t *testing.T) {
	dec := newTestServer(t, Request{ID: "r1", Op: "correct", Word: "python"})

	var resp CorrectResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "python", resp.Word)
	assert.False(t, resp.Changed)
}

func TestServerPredict(t *testing.T) {
	dec := newTestServer(t, Request{ID: "r2", Op: "predict", Word: "i", K: 3})

	var resp PredictResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "r2", resp.ID)
	assert.Equal(t, []string{"am", "love", "learning"}, resp.Words)
	assert.Equal(t, 3, resp.Count)
}

func TestServerPredictUnknownContext(t *testing.T) {
	dec := newTestServer(t, Request{ID: "r3", Op: "predict", Word: "banana", K: 3})

	var resp PredictResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, 0, resp.Count)
	assert.Empty(t, resp.Words)
}

func TestServerAssist(t *testing.T) {
	dec := newTestServer(t, Request{ID: "r4", Op: "assist", Word: "j", K: 2})

	var resp AssistResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "i", resp.Word)
	assert.True(t, resp.Changed)
	assert.Equal(t, []string{"am", "love"}, resp.Words)
}

func TestServerComplete(t *testing.T) {
	dec := newTestServer(t, Request{ID: "r5", Op: "complete", Prefix: "le", Limit: 5})

	var resp CompleteResponse
	require.NoError(t, dec.Decode(&resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "learning", resp.Suggestions[0].Word)
	assert.Equal(t, uint16(1), resp.Suggestions[0].Rank)
}

func TestServerValidation(t *testing.T) {
	testCases := []struct {
		name string
		req  Request
		code int
	}{
		{"missing word", Request{ID: "e1", Op: "correct"}, 400},
		{"unknown op", Request{ID: "e2", Op: "frobnicate"}, 400},
		{"missing prefix", Request{ID: "e3", Op: "complete"}, 400},
		{"filtered word", Request{ID: "e4", Op: "correct", Word: "!!!"}, 422},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dec := newTestServer(t, tc.req)

			var resp ErrorResponse
			require.NoError(t, dec.Decode(&resp))
			assert.Equal(t, tc.req.ID, resp.ID)
			assert.Equal(t, tc.code, resp.Code)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestServerHealth(t *testing.T) {
	dec := newTestServer(t, Request{ID: "h1", Op: "health"})

	var resp HealthResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 7, resp.Stats["totalWords"])
}

func TestServerRequestSequence(t *testing.T) {
	dec := newTestServer(t,
		Request{ID: "a", Op: "correct", Word: "hapy"},
		Request{ID: "b", Op: "predict", Word: "am", K: 2},
	)

	var first CorrectResponse
	require.NoError(t, dec.Decode(&first))
	assert.Equal(t, "a", first.ID)
	assert.Equal(t, "happy", first.Word)

	var second PredictResponse
	require.NoError(t, dec.Decode(&second))
	assert.Equal(t, "b", second.ID)
	assert.Equal(t, []string{"happy", "sad"}, second.Words)
}
