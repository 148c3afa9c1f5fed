package entity

import (
	"testing"

	"github.com/openreel/ratingcore/pkg/segment"
)

func TestExtractFindsRepeatedDialogueCharacter(t *testing.T) {
	scenes := []segment.Scene{
		{SceneID: 0, Heading: "INT. OFFICE - DAY", Body: "JOHN:\nWe need to talk.\nJOHN:\nRight now."},
	}
	ents := Extract(scenes)
	found := false
	for _, c := range ents.Characters {
		if c == "JOHN" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected JOHN to be extracted as a character, got %v", ents.Characters)
	}
}

func TestSceneHasCharacterWordBounded(t *testing.T) {
	if SceneHasCharacter("JOHNSON enters the room.", "JOHN") {
		t.Errorf("expected word-boundary match to not match JOHNSON substring")
	}
	if !SceneHasCharacter("JOHN enters the room.", "JOHN") {
		t.Errorf("expected JOHN to match")
	}
}
