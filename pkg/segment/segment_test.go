package segment

import "testing"

func TestSplitShortTextIsSingleScene(t *testing.T) {
	text := "INT. OFFICE - DAY\n\nSarah types on her computer.\nHer phone rings."
	scenes := Split(text)
	if len(scenes) != 1 {
		t.Fatalf("expected single scene for short text, got %d", len(scenes))
	}
	if scenes[0].Heading != "full_text" {
		t.Errorf("expected full_text heading, got %q", scenes[0].Heading)
	}
}

func TestSplitMultiSceneDensifiesIDs(t *testing.T) {
	text := ""
	for i := 0; i < 6; i++ {
		text += "INT. LOCATION - DAY\n\nSome action happens here in the scene text.\n\n"
	}
	scenes := Split(text)
	if len(scenes) < 5 {
		t.Fatalf("expected multi-scene split, got %d scenes", len(scenes))
	}
	for i, s := range scenes {
		if s.SceneID != i {
			t.Errorf("scene %d has non-dense id %d", i, s.SceneID)
		}
	}
}

func TestSplitFourHeadingsSegmentsIntoFourScenes(t *testing.T) {
	text := ""
	for i := 0; i < 4; i++ {
		text += "INT. LOCATION - DAY\n\nSome action happens here in the scene text.\n\n"
	}
	scenes := Split(text)
	if len(scenes) != 4 {
		t.Fatalf("expected 4 scenes for 4 headings (parts count len(locs)+1=5), got %d", len(scenes))
	}
}

func TestSplitIsPureFunction(t *testing.T) {
	text := ""
	for i := 0; i < 6; i++ {
		text += "EXT. STREET - NIGHT\n\nA chase unfolds down the block.\n\n"
	}
	a := Split(text)
	b := Split(text)
	if len(a) != len(b) {
		t.Fatalf("split is not pure: got different lengths %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("scene %d differs between calls", i)
		}
	}
}

func TestJoinThenSplitIsIdempotent(t *testing.T) {
	text := ""
	for i := 0; i < 6; i++ {
		text += "INT. ROOM - DAY\n\nDialogue happens in this room right now.\n\n"
	}
	first := Split(text)
	rejoined := Join(first)
	second := Split(rejoined)
	if len(first) != len(second) {
		t.Fatalf("rejoin changed scene count: %d vs %d", len(first), len(second))
	}
}
