package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// OllamaGenerator implements Generator against a local Ollama server.
type OllamaGenerator struct {
	getBaseURL func() string
	getModel   func() string
}

// NewOllamaGenerator creates a new OllamaGenerator. The getters allow the
// runtime settings API to change the endpoint without a restart; nil getters
// fall back to defaults.
func NewOllamaGenerator(getBaseURL, getModel func() string) *OllamaGenerator {
	if getBaseURL == nil {
		getBaseURL = func() string { return "http://localhost:11434" }
	}
	if getModel == nil {
		getModel = func() string { return "llama3" }
	}
	return &OllamaGenerator{
		getBaseURL: getBaseURL,
		getModel:   getModel,
	}
}

// Complete sends the prompt to Ollama's generate endpoint and returns the
// full (non-streamed) reply.
func (o *OllamaGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	url := o.getBaseURL() + "/api/generate"

	payload := map[string]interface{}{
		"model":  o.getModel(),
		"prompt": prompt,
		"stream": false,
		"options": map[string]interface{}{
			"temperature": 0.7,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: ollama API error (%d): %s", ErrGenerationFailed, resp.StatusCode, string(respBody))
	}

	var result struct {
		Response string `json:"response"`
		Done     bool   `json:"done"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("%w: failed to parse response: %v", ErrGenerationFailed, err)
	}

	return result.Response, nil
}
