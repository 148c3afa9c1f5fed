package embed

import "context"

// SceneType is one of the seven scene-type labels the advanced what-if
// engine can classify scenes into.
type SceneType string

const (
	SceneAction     SceneType = "action"
	SceneDialogue   SceneType = "dialogue"
	SceneExposition SceneType = "exposition"
	SceneEmotional  SceneType = "emotional"
	SceneSuspense   SceneType = "suspense"
	SceneRomantic   SceneType = "romantic"
	SceneComedic    SceneType = "comedic"
)

// sceneTypeTemplates holds a few example phrases per scene type; their mean
// embedding is the type's reference vector.
var sceneTypeTemplates = map[SceneType][]string{
	SceneAction:     {"a car chase through the city streets", "explosions rock the building as they fight", "gunfire erupts in the alley", "he leaps from the rooftop"},
	SceneDialogue:   {"two characters discuss the plan over coffee", "they argue about what happened last night", "a tense conversation between old friends", "she asks him a pointed question"},
	SceneExposition: {"the narrator explains the history of the city", "a montage shows the years passing", "text on screen describes the setting", "a character recounts the backstory"},
	SceneEmotional:  {"she breaks down crying after the loss", "he grieves alone in the rain", "they embrace after years apart", "a quiet moment of heartbreak"},
	SceneSuspense:   {"footsteps echo in the dark hallway", "she hides as the intruder searches the house", "the phone rings and no one answers", "something moves just out of sight"},
	SceneRomantic:   {"they share a first kiss under the streetlight", "a candlelit dinner for two", "he confesses his feelings to her", "they slow dance in the kitchen"},
	SceneComedic:    {"a slapstick mishap at the wedding", "he trips over the dog mid-speech", "a sarcastic exchange between roommates", "the plan absurdly falls apart"},
}

// SceneClassifier classifies a scene's text against the mean embedding of
// each scene type's template set.
type SceneClassifier struct {
	provider Provider
	means    map[SceneType][]float32
}

// NewSceneClassifier precomputes each scene type's mean template embedding.
func NewSceneClassifier(ctx context.Context, provider Provider) (*SceneClassifier, error) {
	means := make(map[SceneType][]float32, len(sceneTypeTemplates))
	for t, phrases := range sceneTypeTemplates {
		vecs, err := provider.EmbedBatch(ctx, phrases)
		if err != nil {
			return nil, err
		}
		means[t] = meanVector(vecs, provider.Dimension())
	}
	return &SceneClassifier{provider: provider, means: means}, nil
}

func meanVector(vecs [][]float32, dim int) []float32 {
	mean := make([]float32, dim)
	if len(vecs) == 0 {
		return mean
	}
	for _, v := range vecs {
		for i := 0; i < dim && i < len(v); i++ {
			mean[i] += v[i]
		}
	}
	for i := range mean {
		mean[i] /= float32(len(vecs))
	}
	return mean
}

// TypeScore is one scene-type label with its similarity score.
type TypeScore struct {
	Type       SceneType
	Confidence float64
}

// Classify returns all scene types ranked by similarity to text, descending.
func (c *SceneClassifier) Classify(ctx context.Context, text string) ([]TypeScore, error) {
	vec, err := c.provider.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	out := make([]TypeScore, 0, len(c.means))
	for t, mean := range c.means {
		out = append(out, TypeScore{Type: t, Confidence: CosineSimilarity(vec, mean)})
	}
	// simple insertion sort: the candidate set is always 7 items
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Confidence > out[j-1].Confidence; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out, nil
}

// minSceneTypeConfidence is the floor below which a classified type is not
// considered a confident match, per the original's min_confidence=0.3.
const minSceneTypeConfidence = 0.3

// TopType returns the highest-confidence scene type, or "" if none clears
// the confidence floor.
func (c *SceneClassifier) TopType(ctx context.Context, text string) (SceneType, float64, error) {
	ranked, err := c.Classify(ctx, text)
	if err != nil {
		return "", 0, err
	}
	if len(ranked) == 0 || ranked[0].Confidence < minSceneTypeConfidence {
		return "", 0, nil
	}
	return ranked[0].Type, ranked[0].Confidence, nil
}
