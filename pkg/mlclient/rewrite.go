package mlclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// RewriteClient calls an external LLM-rewrite microservice and satisfies
// pkg/modify.LLMRewriter, giving the modification engine a real generator
// when one is configured (the default remains modify.NoopRewriter).
type RewriteClient struct {
	baseURL string
	client  *http.Client
}

// NewRewriteClient builds a client against an LLM-rewrite service base URL.
func NewRewriteClient(baseURL string) *RewriteClient {
	return &RewriteClient{baseURL: baseURL, client: NewHTTPClient(30 * time.Second)}
}

type rewriteRequest struct {
	SceneBody   string `json:"scene_body"`
	Instruction string `json:"instruction"`
}

type rewriteResponse struct {
	RewrittenBody string `json:"rewritten_body"`
}

// Rewrite sends a scene body and an instruction to the configured
// service and returns the rewritten body.
func (c *RewriteClient) Rewrite(sceneBody, instruction string) (string, error) {
	payload, err := json.Marshal(rewriteRequest{SceneBody: sceneBody, Instruction: instruction})
	if err != nil {
		return "", fmt.Errorf("mlclient: encode rewrite request: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/rewrite", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("mlclient: build rewrite request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("mlclient: rewrite request: %w", err)
	}
	defer resp.Body.Close()

	if err := CheckResponse(resp, "llm-rewrite"); err != nil {
		return "", err
	}

	var out rewriteResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("mlclient: decode rewrite response: %w", err)
	}
	return out.RewrittenBody, nil
}
