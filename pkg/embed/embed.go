// Package embed defines the embedding/similarity capability spec'd as
// "encode(text) -> vector, cos_sim(a,b) -> float" — an interface, not a
// dependency on any specific model. A deterministic hash-projection
// implementation satisfies the interface when no richer provider is
// configured, and a chromem-go-backed collection gives the two auxiliary
// uses (replacement-style classification, scene-type classification) a
// place to store and query curated example sentences.
package embed

import (
	"context"
	"hash/fnv"
	"math"
)

// Provider generates embeddings for text.
type Provider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	Dimension() int
}

// CosineSimilarity calculates similarity between two float32 vectors.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// L2Distance calculates Euclidean distance between two float32 vectors.
func L2Distance(a, b []float32) float64 {
	if len(a) != len(b) {
		return math.MaxFloat64
	}
	var sum float64
	for i := range a {
		diff := float64(a[i]) - float64(b[i])
		sum += diff * diff
	}
	return math.Sqrt(sum)
}

// HashEmbedder is a deterministic, dependency-free fallback provider: it
// projects word-level hashes into a fixed-size vector. It is not a semantic
// embedding model; it exists so cosine-similarity-based classification
// degrades to something stable and testable rather than failing outright
// when no richer provider is configured (per SPEC_FULL.md's "degrade to
// mild replacement style, label scenes unknown" requirement upstream).
type HashEmbedder struct {
	dim int
}

// NewHashEmbedder builds a HashEmbedder projecting into dim dimensions.
func NewHashEmbedder(dim int) *HashEmbedder {
	if dim <= 0 {
		dim = 64
	}
	return &HashEmbedder{dim: dim}
}

func (h *HashEmbedder) Dimension() int { return h.dim }

func (h *HashEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, h.dim)
	word := make([]byte, 0, 16)
	flush := func() {
		if len(word) == 0 {
			return
		}
		hasher := fnv.New32a()
		_, _ = hasher.Write(word)
		idx := int(hasher.Sum32()) % h.dim
		if idx < 0 {
			idx += h.dim
		}
		vec[idx]++
		word = word[:0]
	}
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= 'A' && c <= 'Z':
			word = append(word, c+32)
		case c >= 'a' && c <= 'z' || c >= '0' && c <= '9':
			word = append(word, c)
		default:
			flush()
		}
	}
	flush()

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm == 0 {
		return vec, nil
	}
	scale := float32(1 / math.Sqrt(norm))
	for i := range vec {
		vec[i] *= scale
	}
	return vec, nil
}

func (h *HashEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		v, err := h.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
