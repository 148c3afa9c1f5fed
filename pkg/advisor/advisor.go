// Package advisor implements the rating advisor: given a scored script and
// a target rating, it reports whether the target is achievable and emits
// prioritized, scene-level recommendations for closing the gap.
package advisor

import (
	"sort"

	"github.com/openreel/ratingcore/pkg/rating"
)

// Gap is one dimension's excess over its target-rating ceiling.
type Gap struct {
	Dimension string  `json:"dimension"`
	Current   float64 `json:"current"`
	Target    float64 `json:"target"`
	Gap       float64 `json:"gap"`
	Priority  string  `json:"priority"`
}

// ProblemScene is a scene whose per-dimension scores exceed the target's
// ceiling, with a bucketed severity and localized suggestions.
type ProblemScene struct {
	SceneID         int                `json:"scene_id"`
	Heading         string             `json:"heading"`
	Preview         string             `json:"preview"`
	Excess          float64            `json:"excess"`
	DimensionExcess map[string]float64 `json:"dimension_excess"`
	Severity        string             `json:"severity"`
	Suggestions     []string           `json:"suggestions"`
}

// Recommendation is one prioritized, scene-level action.
type Recommendation struct {
	SceneID int     `json:"scene_id"`
	Action  string  `json:"action"`
	Effort  string  `json:"effort"`
	Impact  float64 `json:"impact"`
}

// Report is the advisor's full output.
type Report struct {
	Achievable       bool             `json:"achievable"`
	Confidence       float64          `json:"confidence"`
	Gaps             []Gap            `json:"gaps"`
	ProblemScenes    []ProblemScene   `json:"problem_scenes"`
	Recommendations  []Recommendation `json:"recommendations"`
	EffortEstimate   string           `json:"effort_estimate"`
	AlternativeTargets []rating.Rating `json:"alternative_targets,omitempty"`
}

const previewChars = 200

// suggestionTemplates gives each dimension a short localized suggestion,
// keyed by language then dimension.
var suggestionTemplates = map[string]map[string]string{
	"en": {
		"violence":   "Soften or cut the physical confrontation in this scene.",
		"gore":       "Remove graphic injury detail.",
		"sex_act":    "Cut or fade the explicit sexual content.",
		"nudity":     "Reduce nudity description or staging.",
		"profanity":  "Replace strong language with milder alternatives.",
		"drugs":      "Reduce or remove on-screen drug use.",
		"child_risk": "Remove content endangering or sexualizing minors.",
	},
	"ru": {
		"violence":   "Смягчите или уберите сцену физического столкновения.",
		"gore":       "Уберите натуралистичные детали ранений.",
		"sex_act":    "Сократите или уберите откровенный сексуальный контент.",
		"nudity":     "Сократите описание или показ наготы.",
		"profanity":  "Замените грубую лексику на более мягкую.",
		"drugs":      "Сократите или уберите употребление наркотиков в кадре.",
		"child_risk": "Уберите контент, угрожающий несовершеннолетним.",
	},
}

// Advise runs the advisor procedure over an already-scored result.
func Advise(result *rating.Result, target rating.Rating, profile *rating.Profile, lang string) Report {
	if profile == nil {
		profile = rating.StandardProfile
	}
	if lang != "ru" {
		lang = "en"
	}

	if target.StricterThan(result.Rating) {
		return Report{Achievable: false}
	}

	ceiling := profile.Ceiling[target]
	gaps := computeGaps(result.Agg, ceiling)
	confidence := computeConfidence(gaps)

	problems := computeProblemScenes(result.Scenes, ceiling, lang)
	recs := computeRecommendations(problems)
	effort := computeEffort(problems, gaps)

	return Report{
		Achievable:      true,
		Confidence:      confidence,
		Gaps:            gaps,
		ProblemScenes:   problems,
		Recommendations: recs,
		EffortEstimate:  effort,
	}
}

// AdviseWithAlternatives runs Advise and, when the target is not
// achievable, appends up to two alternative ratings — the next-lower
// ratings whose violation count against the script is at most two.
func AdviseWithAlternatives(result *rating.Result, target rating.Rating, profile *rating.Profile, lang string) Report {
	report := Advise(result, target, profile, lang)
	if report.Achievable {
		return report
	}
	if profile == nil {
		profile = rating.StandardProfile
	}

	idx := target.Index()
	alternatives := []rating.Rating{}
	for i := idx - 1; i >= 0 && len(alternatives) < 2; i-- {
		candidate := rating.Order[i]
		violations := countViolations(result.Agg, profile.Ceiling[candidate])
		if violations <= 2 {
			alternatives = append(alternatives, candidate)
		}
	}
	report.AlternativeTargets = alternatives
	return report
}

func countViolations(agg rating.AggScores, ceiling rating.AggScores) int {
	count := 0
	for _, dim := range rating.DimensionNames {
		if agg.Get(dim) > ceiling.Get(dim) {
			count++
		}
	}
	return count
}

func computeGaps(agg rating.AggScores, ceiling rating.AggScores) []Gap {
	gaps := make([]Gap, 0, len(rating.DimensionNames))
	for _, dim := range rating.DimensionNames {
		current := agg.Get(dim)
		target := ceiling.Get(dim)
		if current <= target {
			continue
		}
		g := current - target
		gaps = append(gaps, Gap{
			Dimension: dim,
			Current:   current,
			Target:    target,
			Gap:       g,
			Priority:  priorityForGap(g),
		})
	}
	sort.Slice(gaps, func(i, j int) bool { return gaps[i].Gap > gaps[j].Gap })
	return gaps
}

func priorityForGap(g float64) string {
	switch {
	case g > 0.5:
		return "critical"
	case g > 0.3:
		return "high"
	case g > 0.15:
		return "medium"
	default:
		return "low"
	}
}

func computeConfidence(gaps []Gap) float64 {
	if len(gaps) == 0 {
		return 0.9
	}
	maxGap := 0.0
	sum := 0.0
	for _, g := range gaps {
		if g.Gap > maxGap {
			maxGap = g.Gap
		}
		sum += g.Gap
	}
	avg := sum / float64(len(gaps))

	switch {
	case maxGap > 0.5:
		return 0.3
	case maxGap > 0.3:
		return 0.5
	case avg > 0.2:
		return 0.7
	default:
		return 0.9
	}
}

func computeProblemScenes(scenes []rating.SceneScore, ceiling rating.AggScores, lang string) []ProblemScene {
	out := []ProblemScene{}
	for _, sc := range scenes {
		excess := 0.0
		dimExcess := map[string]float64{}
		suggestions := []string{}
		for _, dim := range rating.DimensionNames {
			current := sc.Scores.Get(dim)
			target := ceiling.Get(dim)
			if current > target {
				d := current - target
				excess += d
				dimExcess[dim] = d
				if s := suggestionTemplates[lang][dim]; s != "" {
					suggestions = append(suggestions, s)
				}
			}
		}
		if excess <= 0 {
			continue
		}
		preview := sc.SampleText
		if len(preview) > previewChars {
			preview = preview[:previewChars]
		}
		out = append(out, ProblemScene{
			SceneID:         sc.SceneID,
			Heading:         sc.Heading,
			Preview:         preview,
			Excess:          excess,
			DimensionExcess: dimExcess,
			Severity:        severityForExcess(excess),
			Suggestions:     suggestions,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Excess > out[j].Excess })
	return out
}

func severityForExcess(e float64) string {
	switch {
	case e > 1.5:
		return "critical"
	case e > 0.8:
		return "high"
	case e > 0.4:
		return "medium"
	default:
		return "low"
	}
}

func computeRecommendations(problems []ProblemScene) []Recommendation {
	out := make([]Recommendation, 0, len(problems))
	for _, p := range problems {
		maxIssue := maxDimensionExcess(p.DimensionExcess)
		var rec Recommendation
		switch {
		case maxIssue >= 0.6:
			impact := maxIssue * 1.2
			if impact > 1 {
				impact = 1
			}
			rec = Recommendation{SceneID: p.SceneID, Action: "remove_scene", Effort: "easy", Impact: impact}
		case maxIssue >= 0.3:
			rec = Recommendation{SceneID: p.SceneID, Action: "rewrite_scene", Effort: "hard", Impact: maxIssue * 0.9}
		default:
			rec = Recommendation{SceneID: p.SceneID, Action: "reduce_content", Effort: "medium", Impact: maxIssue * 0.7}
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Impact > out[j].Impact })
	return out
}

func maxDimensionExcess(dimExcess map[string]float64) float64 {
	max := 0.0
	for _, d := range dimExcess {
		if d > max {
			max = d
		}
	}
	return max
}

func computeEffort(problems []ProblemScene, gaps []Gap) string {
	criticalScenes, highScenes := 0, 0
	for _, p := range problems {
		switch p.Severity {
		case "critical":
			criticalScenes++
		case "high":
			highScenes++
		}
	}
	criticalGaps := 0
	for _, g := range gaps {
		if g.Priority == "critical" {
			criticalGaps++
		}
	}

	score := 3*criticalScenes + 2*highScenes + 2*criticalGaps
	switch {
	case score > 15:
		return "extensive"
	case score > 10:
		return "significant"
	case score > 5:
		return "moderate"
	default:
		return "minimal"
	}
}
