package mlclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// EmbedClient calls an external embedding microservice and satisfies
// pkg/embed.Provider, giving the similarity capability a real model when
// one is configured (the default remains embed.HashEmbedder).
type EmbedClient struct {
	baseURL string
	dim     int
	client  *http.Client
}

// NewEmbedClient builds a client against an embedding service base URL
// that reports vectors of the given dimension.
func NewEmbedClient(baseURL string, dim int) *EmbedClient {
	return &EmbedClient{baseURL: baseURL, dim: dim, client: NewHTTPClient(10 * time.Second)}
}

func (c *EmbedClient) Dimension() int { return c.dim }

type embedRequest struct {
	Texts []string `json:"texts"`
}

type embedResponse struct {
	Vectors [][]float32 `json:"vectors"`
}

func (c *EmbedClient) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := c.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("mlclient: embed: empty response")
	}
	return vectors[0], nil
}

func (c *EmbedClient) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	payload, err := json.Marshal(embedRequest{Texts: texts})
	if err != nil {
		return nil, fmt.Errorf("mlclient: encode embed request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/embed", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("mlclient: build embed request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mlclient: embed request: %w", err)
	}
	defer resp.Body.Close()

	if err := CheckResponse(resp, "embedding"); err != nil {
		return nil, err
	}

	var out embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("mlclient: decode embed response: %w", err)
	}
	return out.Vectors, nil
}
