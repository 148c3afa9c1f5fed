package embed

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// exampleSetFile is the on-disk shape of a curated example-sentence file:
// one label (a replacement style or a scene type) with its example
// utterances.
type exampleSetFile struct {
	Label     string   `json:"label" yaml:"label"`
	Utterances []string `json:"utterances" yaml:"utterances"`
}

// LoadExampleSets glob-loads every *.yaml file in dir as an exampleSetFile
// and returns the flattened utterance list. Used to override or extend the
// hardcoded verbal/mild and scene-type example sets at startup; an absent
// directory is not an error — callers keep their hardcoded defaults.
func LoadExampleSets(dir string) ([]ExampleUtterance, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("embed: glob example sets: %w", err)
	}

	var out []ExampleUtterance
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var file exampleSetFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			continue
		}
		for _, u := range file.Utterances {
			out = append(out, ExampleUtterance{Text: u, Label: file.Label})
		}
	}
	return out, nil
}

// PopulateCollection embeds and stores every loaded example utterance into
// a Collection in one pass.
func PopulateCollection(ctx context.Context, col *Collection, examples []ExampleUtterance) error {
	if len(examples) == 0 {
		return nil
	}
	return col.AddExamples(ctx, examples)
}
