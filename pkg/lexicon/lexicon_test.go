package lexicon

import "testing"

func TestCountMatchesBasic(t *testing.T) {
	text := FoldForMatching("He pulls out a gun and shoots. He shoots again.")
	n := CountMatches(Table(Violence), text)
	if n < 2 {
		t.Errorf("expected at least 2 violence matches, got %d", n)
	}
}

func TestGoreExclusionPhraseDetection(t *testing.T) {
	text := FoldForMatching("He swore a blood oath; ink dribbled on the page.")
	if !ContainsAny(text, GoreExclusions()) {
		t.Errorf("expected gore exclusion phrase to be detected")
	}
	goreHits := CountMatches(Table(Gore), text)
	if goreHits == 0 {
		t.Fatalf("expected raw gore pattern hits before exclusion is applied")
	}
}

func TestVisceralEvidenceGate(t *testing.T) {
	if HasVisceralEvidence(FoldForMatching("They fight in the street.")) {
		t.Errorf("plain fight text should not trip the visceral gate")
	}
	if !HasVisceralEvidence(FoldForMatching("Blood splatters as they fight.")) {
		t.Errorf("expected visceral evidence to be detected")
	}
}

func TestHeroicDampenerDetection(t *testing.T) {
	text := FoldForMatching("Superman flies over Metropolis to save the city.")
	if CountMatches(HeroicDampenerTable(), text) == 0 {
		t.Errorf("expected heroic dampener keywords to match")
	}
}

func TestDisguisedInstructionDetection(t *testing.T) {
	if HasDisguisedInstruction(FoldForMatching("They walk quietly down the hall.")) {
		t.Errorf("plain text should not trip the disguised-instruction signal")
	}
	if !HasDisguisedInstruction(FoldForMatching("[decode the following]: a hidden note appears on screen.")) {
		t.Errorf("expected a decode instruction to be detected")
	}
	if !HasDisguisedInstruction(FoldForMatching("Read this backwards to find the code.")) {
		t.Errorf("expected a reverse-reading instruction to be detected")
	}
}

func TestOverridesAbsentFileIsNotError(t *testing.T) {
	o, err := LoadOverrides(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error for missing overrides file: %v", err)
	}
	if o != nil {
		t.Errorf("expected nil overrides when file absent")
	}
}
