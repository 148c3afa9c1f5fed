// Package modify implements the modification engine: a registry of
// composable strategies (scene removal, content reduction, character-
// focused edits, optional LLM rewrite) that transform a scene stream ahead
// of re-scoring.
package modify

import (
	"github.com/openreel/ratingcore/pkg/entity"
	"github.com/openreel/ratingcore/pkg/segment"
)

// Scene extends the plain segmenter scene with the denormalized fields the
// modification strategies need: which characters appear in it, and (once
// classified) its scene type.
type Scene struct {
	SceneID    int
	Heading    string
	Body       string
	Characters []string
	SceneType  string
}

// FromSegments builds modify.Scene values from plain segmenter scenes,
// populating each scene's character list via the regex entity extractor.
func FromSegments(scenes []segment.Scene) []Scene {
	out := make([]Scene, len(scenes))
	for i, s := range scenes {
		out[i] = Scene{
			SceneID:    s.SceneID,
			Heading:    s.Heading,
			Body:       s.Body,
			Characters: entity.ExtractForScene(s.Body),
		}
	}
	return out
}

// ToSegments drops the denormalized fields, for handoff back to the scoring
// pipeline.
func ToSegments(scenes []Scene) []segment.Scene {
	out := make([]segment.Scene, len(scenes))
	for i, s := range scenes {
		out[i] = segment.Scene{SceneID: s.SceneID, Heading: s.Heading, Body: s.Body}
	}
	return out
}

// Modification is a tagged edit request: a strategy type tag, a params bag,
// an optional scene scope, and an optional entity-filter target bag.
type Modification struct {
	Type    string
	Params  map[string]any
	Scope   []int
	Targets map[string]any
}

// densify reindexes scenes to a zero-based dense sequence in their current
// order, used by strategies that explicitly advertise re-densification.
func densify(scenes []Scene) []Scene {
	out := make([]Scene, len(scenes))
	for i, s := range scenes {
		s.SceneID = i
		out[i] = s
	}
	return out
}

func inScope(id int, scope []int) bool {
	if len(scope) == 0 {
		return true
	}
	for _, s := range scope {
		if s == id {
			return true
		}
	}
	return false
}

func hasAnyCharacter(sceneChars []string, wanted []string) bool {
	for _, c := range sceneChars {
		for _, w := range wanted {
			if c == w {
				return true
			}
		}
	}
	return false
}
