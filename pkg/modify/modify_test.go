package modify

import (
	"testing"

	"github.com/openreel/ratingcore/pkg/segment"
)

func threeSceneStream() []Scene {
	segs := []segment.Scene{
		{SceneID: 0, Heading: "INT. OFFICE - DAY", Body: "JOHN:\nWe need to talk."},
		{SceneID: 1, Heading: "EXT. ALLEY - NIGHT", Body: "MARY:\nRun, now!"},
		{SceneID: 2, Heading: "INT. KITCHEN - DAY", Body: "JOHN:\nCoffee?"},
	}
	return FromSegments(segs)
}

func TestSceneRemovalByIDDensifies(t *testing.T) {
	scenes := threeSceneStream()
	strat := SceneRemovalStrategy{}
	m := Modification{Type: "remove_scenes", Params: map[string]any{"scene_ids": []int{1}}}

	if !strat.ValidateParams(m.Params) {
		t.Fatalf("expected params to validate")
	}

	out, meta, err := strat.Apply(scenes, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 remaining scenes, got %d", len(out))
	}
	if out[0].SceneID != 0 || out[1].SceneID != 1 {
		t.Errorf("expected densified ids 0,1, got %d,%d", out[0].SceneID, out[1].SceneID)
	}
	if meta["removed_count"] != 1 {
		t.Errorf("expected removed_count 1, got %v", meta["removed_count"])
	}
}

func TestSceneRemovalByCharacter(t *testing.T) {
	scenes := threeSceneStream()
	strat := SceneRemovalStrategy{}
	m := Modification{Type: "remove_scenes", Params: map[string]any{"characters": []string{"MARY"}}}

	out, _, err := strat.Apply(scenes, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 scenes remaining after removing MARY's scene, got %d", len(out))
	}
	for _, sc := range out {
		for _, c := range sc.Characters {
			if c == "MARY" {
				t.Errorf("MARY's scene should have been removed")
			}
		}
	}
}

func TestCharacterRenameReplacesAllMentions(t *testing.T) {
	scenes := threeSceneStream()
	strat := CharacterFocusedStrategy{}
	m := Modification{Type: "character_focused", Params: map[string]any{
		"action": "rename", "from": "JOHN", "to": "DAVID",
	}}

	if !strat.ValidateParams(m.Params) {
		t.Fatalf("expected rename params to validate")
	}

	out, meta, err := strat.Apply(scenes, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta["total_replacements"] != 2 {
		t.Errorf("expected 2 replacements (JOHN appears in 2 scenes), got %v", meta["total_replacements"])
	}
	for _, sc := range out {
		for _, c := range sc.Characters {
			if c == "JOHN" {
				t.Errorf("expected JOHN renamed to DAVID in character list, found JOHN in scene %d", sc.SceneID)
			}
		}
	}
}

func TestContentReductionReplacesViolencePhrase(t *testing.T) {
	scenes := []Scene{{SceneID: 0, Heading: "INT. BAR - NIGHT", Body: "He stabbed him twice."}}
	strat := ContentReductionStrategy{}
	m := Modification{Type: "reduce_content", Params: map[string]any{"content_types": []string{"violence"}}}

	if !strat.ValidateParams(m.Params) {
		t.Fatalf("expected content reduction params to validate")
	}

	out, meta, err := strat.Apply(scenes, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta["total_replacements"].(int) < 1 {
		t.Errorf("expected at least 1 replacement, got %v", meta["total_replacements"])
	}
	if out[0].Body == scenes[0].Body {
		t.Errorf("expected body to change after reduction")
	}
}

func TestLLMRewriteDefaultsToUnconfiguredError(t *testing.T) {
	scenes := threeSceneStream()
	strat := LLMRewriteStrategy{Rewriter: NoopRewriter{}}
	m := Modification{Type: "llm_rewrite", Params: map[string]any{"instruction": "soften the dialogue"}}

	out, meta, err := strat.Apply(scenes, m)
	if err != nil {
		t.Fatalf("unexpected top-level error: %v", err)
	}
	if meta["error"] != "LLM generator not configured" {
		t.Errorf("expected verbatim unconfigured error, got %v", meta["error"])
	}
	if len(out) != len(scenes) {
		t.Errorf("expected scene stream passthrough unchanged on noop rewrite")
	}
}

func TestApplyModificationsChainsStrategies(t *testing.T) {
	scenes := threeSceneStream()
	registry := NewDefaultRegistry(nil)

	mods := []Modification{
		{Type: "remove_scenes", Params: map[string]any{"scene_ids": []int{1}}},
		{Type: "character_focused", Params: map[string]any{"action": "rename", "from": "JOHN", "to": "DAVID"}},
	}

	out, metas, err := ApplyModifications(scenes, mods, registry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 scenes after removal, got %d", len(out))
	}
	if len(metas) != 2 {
		t.Fatalf("expected 2 metadata entries, got %d", len(metas))
	}
}
