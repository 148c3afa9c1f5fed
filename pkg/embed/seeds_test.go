package embed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/philippgille/chromem-go"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
}

func TestLoadExampleSetsFlattensUtterances(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "verbal.yaml", "label: verbal\nutterances:\n  - \"shut your mouth\"\n  - \"get out now\"\n")
	writeFixture(t, dir, "mild.yaml", "label: mild\nutterances:\n  - \"please leave\"\n")
	writeFixture(t, dir, "ignored.txt", "not yaml, not globbed")

	examples, err := LoadExampleSets(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(examples) != 3 {
		t.Fatalf("expected 3 utterances, got %d: %+v", len(examples), examples)
	}

	byLabel := map[string]int{}
	for _, ex := range examples {
		byLabel[ex.Label]++
	}
	if byLabel["verbal"] != 2 {
		t.Errorf("expected 2 verbal utterances, got %d", byLabel["verbal"])
	}
	if byLabel["mild"] != 1 {
		t.Errorf("expected 1 mild utterance, got %d", byLabel["mild"])
	}
}

func TestLoadExampleSetsAbsentDirectoryIsNotAnError(t *testing.T) {
	examples, err := LoadExampleSets(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("expected no error for absent directory, got %v", err)
	}
	if len(examples) != 0 {
		t.Errorf("expected no examples, got %d", len(examples))
	}
}

func TestLoadExampleSetsSkipsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "broken.yaml", "label: [unterminated\n")
	writeFixture(t, dir, "good.yaml", "label: verbal\nutterances:\n  - \"move it\"\n")

	examples, err := LoadExampleSets(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(examples) != 1 {
		t.Fatalf("expected malformed file to be skipped, got %d examples", len(examples))
	}
}

func TestPopulateCollectionEmptyIsNoop(t *testing.T) {
	db := chromem.NewDB()
	col, err := NewCollection(db, "empty-test", NewHashEmbedder(16))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := PopulateCollection(context.Background(), col, nil); err != nil {
		t.Errorf("expected no error populating with zero examples, got %v", err)
	}
}

func TestPopulateCollectionAddsExamples(t *testing.T) {
	db := chromem.NewDB()
	col, err := NewCollection(db, "populate-test", NewHashEmbedder(16))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	examples := []ExampleUtterance{
		{ID: "1", Label: "verbal", Text: "shut your mouth"},
		{ID: "2", Label: "mild", Text: "please leave"},
	}
	if err := PopulateCollection(context.Background(), col, examples); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sim, err := col.MaxSimilarity(context.Background(), "shut your mouth", "verbal")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sim <= 0 {
		t.Errorf("expected positive similarity for an exact match, got %f", sim)
	}
}
