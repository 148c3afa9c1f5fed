package embed

import (
	"context"
	"fmt"

	"github.com/philippgille/chromem-go"
)

// ExampleUtterance is a curated example sentence labeled by style (the
// what-if parser's "verbal"/"mild" replacement styles) or by scene type
// (the advanced what-if scene classifier's seven types).
type ExampleUtterance struct {
	ID    string
	Label string
	Text  string
}

// Collection stores labeled example utterances in an in-process chromem-go
// vector collection and answers "closest label" / "max similarity to a
// label" queries — the two auxiliary embedding uses named in SPEC_FULL.md.
type Collection struct {
	col *chromem.Collection
}

// NewCollection creates a fresh named collection backed by provider for
// embedding generation.
func NewCollection(db *chromem.DB, name string, provider Provider) (*Collection, error) {
	embeddingFunc := func(ctx context.Context, text string) ([]float32, error) {
		return provider.Embed(ctx, text)
	}
	col, err := db.CreateCollection(name, nil, embeddingFunc)
	if err != nil {
		return nil, fmt.Errorf("embed: creating collection %s: %w", name, err)
	}
	return &Collection{col: col}, nil
}

// AddExamples loads example utterances into the collection, embedding each.
func (c *Collection) AddExamples(ctx context.Context, examples []ExampleUtterance) error {
	for _, ex := range examples {
		doc := chromem.Document{
			ID:      ex.ID,
			Content: ex.Text,
			Metadata: map[string]string{
				"label": ex.Label,
			},
		}
		if err := c.col.AddDocument(ctx, doc); err != nil {
			return fmt.Errorf("embed: adding example %s: %w", ex.ID, err)
		}
	}
	return nil
}

// MaxSimilarity returns the highest cosine similarity between text and any
// stored example carrying the given label.
func (c *Collection) MaxSimilarity(ctx context.Context, text, label string) (float64, error) {
	n := c.col.Count()
	if n == 0 {
		return 0, nil
	}
	results, err := c.col.Query(ctx, text, n, map[string]string{"label": label}, nil)
	if err != nil {
		return 0, fmt.Errorf("embed: querying collection: %w", err)
	}
	best := 0.0
	for _, r := range results {
		if float64(r.Similarity) > best {
			best = float64(r.Similarity)
		}
	}
	return best, nil
}

// BestLabel returns the label of the closest stored example to text, and
// its similarity, across all labels.
func (c *Collection) BestLabel(ctx context.Context, text string) (label string, similarity float64, err error) {
	n := c.col.Count()
	if n == 0 {
		return "", 0, nil
	}
	results, err := c.col.Query(ctx, text, n, nil, nil)
	if err != nil {
		return "", 0, fmt.Errorf("embed: querying collection: %w", err)
	}
	for _, r := range results {
		if float64(r.Similarity) > similarity {
			similarity = float64(r.Similarity)
			label = r.Metadata["label"]
		}
	}
	return label, similarity, nil
}
