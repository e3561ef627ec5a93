package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOllamaComplete(t *testing.T) {
	var gotPath string
	var gotPayload map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"response": "Subject: Hello\n\nBody here.",
			"done":     true,
		})
	}))
	defer srv.Close()

	g := NewOllamaGenerator(func() string { return srv.URL }, func() string { return "llama3" })
	reply, err := g.Complete(context.Background(), "write an email")
	require.NoError(t, err)

	assert.Equal(t, "/api/generate", gotPath)
	assert.Equal(t, "llama3", gotPayload["model"])
	assert.Equal(t, "write an email", gotPayload["prompt"])
	assert.Equal(t, false, gotPayload["stream"])
	assert.Equal(t, "Subject: Hello\n\nBody here.", reply)
}

func TestOllamaComplete_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	g := NewOllamaGenerator(func() string { return srv.URL }, nil)
	_, err := g.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.Contains(t, err.Error(), "model not found")
}

func TestOllamaComplete_Unreachable(t *testing.T) {
	// Closed server, connection refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	g := NewOllamaGenerator(func() string { return url }, nil)
	_, err := g.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestOllamaComplete_GetterSwitchesEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"response": "ok", "done": true})
	}))
	defer srv.Close()

	base := "http://127.0.0.1:1" // unroutable
	g := NewOllamaGenerator(func() string { return base }, nil)

	_, err := g.Complete(context.Background(), "prompt")
	assert.Error(t, err)

	base = srv.URL
	reply, err := g.Complete(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "ok", reply)
}
