package normalize

import (
	"testing"

	"github.com/openreel/ratingcore/pkg/feature"
)

func TestNormalizeRangeIsClosed(t *testing.T) {
	s := Normalize(feature.Raw{Violence: 1000, Gore: 1000, SexAct: 1000, Nudity: 1000, Profanity: 1000, Drugs: 1000, ChildMentions: 1000, Length: 10})
	for _, v := range []float64{s.Violence, s.Gore, s.SexAct, s.Nudity, s.Profanity, s.Drugs, s.ChildRisk} {
		if v < 0 || v > 1 {
			t.Errorf("expected score in [0,1], got %v", v)
		}
	}
}

func TestNormalizeZeroRawIsZero(t *testing.T) {
	s := Normalize(feature.Raw{Length: 100})
	if s.Violence != 0 || s.Gore != 0 || s.SexAct != 0 {
		t.Errorf("expected zero scores for zero raw counters, got %+v", s)
	}
}
