package advisor

import (
	"testing"

	"github.com/openreel/ratingcore/pkg/normalize"
	"github.com/openreel/ratingcore/pkg/rating"
)

const floatTolerance = 1e-9

func approxEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < floatTolerance
}

func scoredResult(r rating.Rating, violence, gore float64) *rating.Result {
	agg := rating.AggScores{Violence: violence, Gore: gore}
	return &rating.Result{
		Rating: r,
		Agg:    agg,
		Scenes: []rating.SceneScore{
			{SceneID: 0, Heading: "INT. WAREHOUSE - NIGHT", Scores: normalize.Scores{Violence: violence, Gore: gore}, SampleText: "A brutal fight breaks out."},
		},
	}
}

func TestAdviseNotAchievableWhenTargetStricterThanCurrent(t *testing.T) {
	result := scoredResult(rating.R12, 0.1, 0.0)
	report := Advise(result, rating.R18, nil, "en")
	if report.Achievable {
		t.Fatalf("expected target stricter than current to be unachievable")
	}
}

func TestAdviseAchievableEmitsGapsAndRecommendations(t *testing.T) {
	result := scoredResult(rating.R18, 0.9, 0.9)
	report := Advise(result, rating.R6, nil, "en")
	if !report.Achievable {
		t.Fatalf("expected target rating <= current to be achievable")
	}
	if len(report.Gaps) == 0 {
		t.Fatalf("expected gaps for a high-violence script against a 6+ target")
	}
	if len(report.ProblemScenes) == 0 {
		t.Fatalf("expected at least one problem scene")
	}
	if len(report.Recommendations) == 0 {
		t.Fatalf("expected at least one recommendation")
	}
}

func TestAdviseLocalizesSuggestionsToRussian(t *testing.T) {
	result := scoredResult(rating.R18, 0.9, 0.9)
	report := Advise(result, rating.R6, nil, "ru")
	if len(report.ProblemScenes) == 0 {
		t.Fatalf("expected problem scenes")
	}
	found := false
	for _, s := range report.ProblemScenes[0].Suggestions {
		if s == suggestionTemplates["ru"]["violence"] {
			found = true
		}
	}
	if !found {
		t.Errorf("expected Russian violence suggestion in problem scene suggestions")
	}
}

func TestGapPriorityBuckets(t *testing.T) {
	if p := priorityForGap(0.6); p != "critical" {
		t.Errorf("expected critical for gap 0.6, got %s", p)
	}
	if p := priorityForGap(0.35); p != "high" {
		t.Errorf("expected high for gap 0.35, got %s", p)
	}
	if p := priorityForGap(0.2); p != "medium" {
		t.Errorf("expected medium for gap 0.2, got %s", p)
	}
	if p := priorityForGap(0.1); p != "low" {
		t.Errorf("expected low for gap 0.1, got %s", p)
	}
}

func TestRecommendationUsesMaxPerDimensionExcessNotSummedExcess(t *testing.T) {
	ceiling := rating.StandardProfile.Ceiling[rating.R12]
	scenes := []rating.SceneScore{
		{
			SceneID: 0,
			Heading: "INT. ROOM - DAY",
			Scores: normalize.Scores{
				Gore:      ceiling.Gore + 0.15,
				Nudity:    ceiling.Nudity + 0.15,
				Drugs:     ceiling.Drugs + 0.15,
				ChildRisk: ceiling.ChildRisk + 0.15,
			},
			SampleText: "Four mild excesses, none individually severe.",
		},
	}

	problems := computeProblemScenes(scenes, ceiling, "en")
	if len(problems) != 1 {
		t.Fatalf("expected one problem scene, got %d", len(problems))
	}
	p := problems[0]
	if !approxEqual(p.Excess, 0.6) {
		t.Fatalf("expected summed excess 0.6, got %v", p.Excess)
	}
	if max := maxDimensionExcess(p.DimensionExcess); !approxEqual(max, 0.15) {
		t.Fatalf("expected max per-dimension excess 0.15, got %v", max)
	}

	recs := computeRecommendations(problems)
	if len(recs) != 1 {
		t.Fatalf("expected one recommendation, got %d", len(recs))
	}
	rec := recs[0]
	if rec.Action != "reduce_content" {
		t.Errorf("expected reduce_content for a max per-dimension excess of 0.15, got %q", rec.Action)
	}
	wantImpact := 0.15 * 0.7
	if !approxEqual(rec.Impact, wantImpact) {
		t.Errorf("expected impact %v, got %v", wantImpact, rec.Impact)
	}
}

func TestAdviseWithAlternativesSuggestsLowerRating(t *testing.T) {
	result := scoredResult(rating.R12, 0.1, 0.0)
	report := AdviseWithAlternatives(result, rating.R18, nil, "en")
	if report.Achievable {
		t.Fatalf("expected 18+ target against a 12+ script to be unachievable")
	}
	if len(report.AlternativeTargets) == 0 || report.AlternativeTargets[0] != rating.R16 {
		t.Errorf("expected 16+ as the first suggested lower rating, got %v", report.AlternativeTargets)
	}
}
