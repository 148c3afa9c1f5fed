// Package normalize maps a scene's raw feature counters to [0,1] per
// dimension using fixed scaling denominators.
package normalize

import "github.com/openreel/ratingcore/pkg/feature"

// Scores holds the seven normalized dimension scores for one scene, each in
// [0,1].
type Scores struct {
	Violence  float64 `json:"violence"`
	Gore      float64 `json:"gore"`
	SexAct    float64 `json:"sex_act"`
	Nudity    float64 `json:"nudity"`
	Profanity float64 `json:"profanity"`
	Drugs     float64 `json:"drugs"`
	ChildRisk float64 `json:"child_risk"`
}

// Normalize converts a scene's raw counters to normalized [0,1] scores.
func Normalize(r feature.Raw) Scores {
	length := float64(r.Length)
	if length < 1 {
		length = 1
	}

	return Scores{
		Violence:  cap1(r.Violence / (length / 150)),
		Gore:      cap1(r.Gore / 2),
		SexAct:    cap1(r.SexAct),
		Nudity:    cap1(r.Nudity / 3),
		Profanity: cap1(r.Profanity / 5),
		Drugs:     cap1(r.Drugs / 5),
		ChildRisk: cap1(r.ChildMentions / 3),
	}
}

func cap1(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}

// Get returns the score for a named dimension, used by generic code that
// iterates dimensions by name (aggregator, advisor).
func (s Scores) Get(dim string) float64 {
	switch dim {
	case "violence":
		return s.Violence
	case "gore":
		return s.Gore
	case "sex_act":
		return s.SexAct
	case "nudity":
		return s.Nudity
	case "profanity":
		return s.Profanity
	case "drugs":
		return s.Drugs
	case "child_risk":
		return s.ChildRisk
	default:
		return 0
	}
}
