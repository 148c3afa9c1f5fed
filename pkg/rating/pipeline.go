package rating

import (
	"github.com/openreel/ratingcore/pkg/feature"
	"github.com/openreel/ratingcore/pkg/normalize"
	"github.com/openreel/ratingcore/pkg/segment"
)

// Pipeline runs the whole scoring pipeline (segment -> feature -> normalize
// -> aggregate -> cascade) under a configurable Profile. Construct once and
// share read-only across workers; it holds no mutable state.
type Pipeline struct {
	Profile     *Profile
	ModelVersion string
}

// NewPipeline builds a Pipeline with the given profile name ("standard",
// "strict", "permissive"). An unknown name falls back to standard.
func NewPipeline(profileName, modelVersion string) *Pipeline {
	return &Pipeline{Profile: GetProfile(profileName), ModelVersion: modelVersion}
}

// Rate scores raw screenplay text end to end.
func (p *Pipeline) Rate(text string) Result {
	return p.RateScenes(segment.Split(text))
}

// RateScenes re-scores an already-segmented scene stream, used by the
// modification engine to re-score after applying strategies without
// re-parsing text.
func (p *Pipeline) RateScenes(scenes []segment.Scene) Result {
	bodies := make(map[int]string, len(scenes))
	scored := make([]SceneScore, len(scenes))
	for i, s := range scenes {
		raw := feature.Extract(s)
		scores := normalize.Normalize(raw)
		ss := SceneScore{SceneID: s.SceneID, Heading: s.Heading, Scores: scores}
		ss.Weight = Weight(ss)
		scored[i] = ss
		bodies[s.SceneID] = s.Body
	}

	agg := Aggregate(scored)
	verdict, reasons := Cascade(agg, p.Profile)

	return Result{
		Rating:        verdict,
		Reasons:       reasons,
		Agg:           agg,
		Scenes:        scored,
		TriggerScenes: SelectTriggerScenes(scored, bodies),
		TotalScenes:   len(scored),
	}
}
