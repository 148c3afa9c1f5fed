package rating

import (
	"sort"
	"strings"
)

// percentile computes the p-th percentile (0-100) of values using linear
// interpolation between closest ranks, matching the common "linear" method.
func percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	if len(sorted) == 1 {
		return sorted[0]
	}

	rank := (p / 100) * float64(len(sorted)-1)
	lo := int(rank)
	hi := lo + 1
	if hi >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

func maxOf(values []float64) float64 {
	m := 0.0
	for _, v := range values {
		if v > m {
			m = v
		}
	}
	return m
}

// maxP95 implements the "0.7*max + 0.3*p95" hybrid reducer used for
// violence and gore.
func maxP95(values []float64) float64 {
	return 0.7*maxOf(values) + 0.3*percentile(values, 95)
}

// maxP90 implements the "0.85*max + 0.15*p90" hybrid reducer used for
// sex_act, nudity, and child_risk.
func maxP90(values []float64) float64 {
	return 0.85*maxOf(values) + 0.15*percentile(values, 90)
}

// p90Only implements the plain p90 reducer used for profanity and drugs.
func p90Only(values []float64) float64 {
	return percentile(values, 90)
}

// Aggregate reduces per-scene scores to one AggScores vector, applying the
// dimension-specific statistical reducer selected in DESIGN.md's
// resolution of the aggregation formula open question.
func Aggregate(scenes []SceneScore) AggScores {
	collect := func(get func(SceneScore) float64) []float64 {
		out := make([]float64, len(scenes))
		for i, s := range scenes {
			out[i] = get(s)
		}
		return out
	}

	return AggScores{
		Violence:  maxP95(collect(func(s SceneScore) float64 { return s.Scores.Violence })),
		Gore:      maxP95(collect(func(s SceneScore) float64 { return s.Scores.Gore })),
		SexAct:    maxP90(collect(func(s SceneScore) float64 { return s.Scores.SexAct })),
		Nudity:    maxP90(collect(func(s SceneScore) float64 { return s.Scores.Nudity })),
		ChildRisk: maxP90(collect(func(s SceneScore) float64 { return s.Scores.ChildRisk })),
		Profanity: p90Only(collect(func(s SceneScore) float64 { return s.Scores.Profanity })),
		Drugs:     p90Only(collect(func(s SceneScore) float64 { return s.Scores.Drugs })),
	}
}

// Weight computes w = 0.5*violence + 0.8*gore + 0.9*sex_act + 0.3*profanity
// + 0.3*drugs + 0.6*child_risk + 0.3*nudity.
func Weight(s SceneScore) float64 {
	sc := s.Scores
	return 0.5*sc.Violence + 0.8*sc.Gore + 0.9*sc.SexAct + 0.3*sc.Profanity +
		0.3*sc.Drugs + 0.6*sc.ChildRisk + 0.3*sc.Nudity
}

const triggerSampleChars = 400
const topTriggerCount = 5

// SelectTriggerScenes sorts by weight descending and returns the top five
// with a truncated, newline-collapsed sample of their body text.
func SelectTriggerScenes(scenes []SceneScore, bodies map[int]string) []SceneScore {
	sorted := append([]SceneScore(nil), scenes...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Weight > sorted[j].Weight })

	n := topTriggerCount
	if len(sorted) < n {
		n = len(sorted)
	}

	out := make([]SceneScore, n)
	for i := 0; i < n; i++ {
		s := sorted[i]
		body := bodies[s.SceneID]
		s.SampleText = sampleText(body)
		out[i] = s
	}
	return out
}

func sampleText(body string) string {
	collapsed := strings.Join(strings.Fields(body), " ")
	if len(collapsed) > triggerSampleChars {
		collapsed = collapsed[:triggerSampleChars]
	}
	return collapsed
}
