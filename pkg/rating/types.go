// Package rating aggregates per-scene normalized scores into one vector per
// script and maps that vector to an age rating via a deterministic
// threshold cascade. It also selects top-weighted trigger scenes.
package rating

import "github.com/openreel/ratingcore/pkg/normalize"

// Rating is one of the five ordered age ratings.
type Rating string

const (
	R0  Rating = "0+"
	R6  Rating = "6+"
	R12 Rating = "12+"
	R16 Rating = "16+"
	R18 Rating = "18+"
)

// Order lists ratings from least to most strict.
var Order = []Rating{R0, R6, R12, R16, R18}

// Index returns r's position in Order, or -1 if unknown.
func (r Rating) Index() int {
	for i, o := range Order {
		if o == r {
			return i
		}
	}
	return -1
}

// StricterThan reports whether r is a strictly higher rating than other.
func (r Rating) StricterThan(other Rating) bool {
	return r.Index() > other.Index()
}

// AggScores is the per-dimension aggregate across all scenes in a script.
type AggScores struct {
	Violence  float64 `json:"violence"`
	Gore      float64 `json:"gore"`
	SexAct    float64 `json:"sex_act"`
	Nudity    float64 `json:"nudity"`
	Profanity float64 `json:"profanity"`
	Drugs     float64 `json:"drugs"`
	ChildRisk float64 `json:"child_risk"`
}

// Get returns the aggregate for a named dimension.
func (a AggScores) Get(dim string) float64 {
	switch dim {
	case "violence":
		return a.Violence
	case "gore":
		return a.Gore
	case "sex_act":
		return a.SexAct
	case "nudity":
		return a.Nudity
	case "profanity":
		return a.Profanity
	case "drugs":
		return a.Drugs
	case "child_risk":
		return a.ChildRisk
	default:
		return 0
	}
}

// DimensionNames lists the seven dimension keys in a stable order.
var DimensionNames = []string{"violence", "gore", "sex_act", "nudity", "profanity", "drugs", "child_risk"}

// SceneScore is one scored scene: its normalized dimensions, ranking weight,
// and (for trigger scenes) a short text sample.
type SceneScore struct {
	SceneID    int               `json:"scene_id"`
	Heading    string            `json:"heading"`
	Scores     normalize.Scores  `json:"scores"`
	Weight     float64           `json:"weight"`
	SampleText string            `json:"sample_text,omitempty"`
}

// Result is the full output of rating a script.
type Result struct {
	Rating        Rating       `json:"predicted_rating"`
	Reasons       []string     `json:"reasons"`
	Agg           AggScores    `json:"agg_scores"`
	Scenes        []SceneScore `json:"scenes"`
	TriggerScenes []SceneScore `json:"top_trigger_scenes"`
	TotalScenes   int          `json:"total_scenes"`
}
