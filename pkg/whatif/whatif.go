// Package whatif parses a natural-language edit request into the
// structured modification list the modification engine (pkg/modify)
// consumes, using bilingual regex intent patterns and, when a replacement
// phrase needs style disambiguation, the embedding similarity capability.
package whatif

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/openreel/ratingcore/pkg/embed"
	"github.com/openreel/ratingcore/pkg/modify"
)

// intentPattern pairs a bilingual regex with the modification type it maps
// to, evaluated in order — first match wins.
type intentPattern struct {
	re      *regexp.Regexp
	modType string
}

var sceneRangeRe = regexp.MustCompile(`scenes?\s+(\d+)\s*(?:-|to|through|–|по)\s*(\d+)`)
var singleSceneRe = regexp.MustCompile(`scene\s+(\d+)`)

var intentPatterns = []intentPattern{
	{regexp.MustCompile(`(?i)remove\s+scenes?|удали(?:ть)?\s+сцен`), "remove_scenes"},
	{regexp.MustCompile(`(?i)(?:reduce|tone\s+down|soften)\s+(?:the\s+)?violence|снизь?\s+насилие|смягчи\s+насилие`), "reduce_violence"},
	{regexp.MustCompile(`(?i)(?:reduce|tone\s+down)\s+(?:the\s+)?profanity|убери\s+мат|снизь?\s+мат`), "reduce_profanity"},
	{regexp.MustCompile(`(?i)(?:reduce|tone\s+down)\s+(?:the\s+)?gore|снизь?\s+жестокость`), "reduce_gore"},
	{regexp.MustCompile(`(?i)(?:reduce|tone\s+down)\s+(?:the\s+)?sex(?:ual)?(?:\s+content)?|снизь?\s+секс`), "reduce_sexual"},
	{regexp.MustCompile(`(?i)(?:reduce|tone\s+down)\s+(?:the\s+)?drugs?|снизь?\s+наркотик`), "reduce_drugs"},
}

// verbal/mild curated example sets for replacement-style classification;
// each example is embedded with the caller's provider on every
// classification.
var verbalExamples = []string{
	"they argued loudly", "a heated shouting match", "a tense verbal confrontation",
}
var mildExamples = []string{
	"a brief scuffle", "they exchanged a few words", "a minor scuffle broke out",
}

const verbalStyleThreshold = 0.5

// LoadExampleOverrides replaces the hardcoded verbal/mild example sets with
// ones loaded from dir (one *.yaml file per label, see embed.LoadExampleSets).
// An absent or empty dir is a no-op, leaving the hardcoded defaults in place.
func LoadExampleOverrides(dir string) error {
	if dir == "" {
		return nil
	}
	examples, err := embed.LoadExampleSets(dir)
	if err != nil {
		return err
	}
	if len(examples) == 0 {
		return nil
	}

	var verbal, mild []string
	for _, ex := range examples {
		switch ex.Label {
		case "verbal":
			verbal = append(verbal, ex.Text)
		case "mild":
			mild = append(mild, ex.Text)
		}
	}
	if len(verbal) > 0 {
		verbalExamples = verbal
	}
	if len(mild) > 0 {
		mildExamples = mild
	}
	return nil
}

// reduceViolenceTable maps replacement style to the verb substitution
// applied when reducing violence.
var reduceViolenceTable = map[string]map[string]string{
	"verbal": {"fight": "argue", "attack": "confront", "strike": "shout at"},
	"mild":   {"fight": "scuffle", "attack": "bump into", "strike": "brush past"},
}

// Parse maps a natural-language edit request against the known intent
// patterns and returns the structured modification list. provider may be
// nil, in which case replacement-style classification degrades to mild
// and a numeric scene range (if present) still resolves normally.
func Parse(request string, provider embed.Provider) []modify.Modification {
	for _, ip := range intentPatterns {
		if !ip.re.MatchString(request) {
			continue
		}
		switch ip.modType {
		case "remove_scenes":
			return []modify.Modification{parseRemoveScenes(request)}
		case "reduce_violence":
			return []modify.Modification{parseReduceViolence(request, provider)}
		default:
			return []modify.Modification{{Type: "reduce_content", Params: map[string]any{"content_types": []string{strings.TrimPrefix(ip.modType, "reduce_")}}}}
		}
	}
	return nil
}

func parseRemoveScenes(request string) modify.Modification {
	if m := sceneRangeRe.FindStringSubmatch(request); m != nil {
		start, _ := strconv.Atoi(m[1])
		end, _ := strconv.Atoi(m[2])
		ids := inclusiveRange(start, end)
		return modify.Modification{Type: "remove_scenes", Params: map[string]any{"scene_ids": ids}}
	}
	ids := []int{}
	for _, m := range singleSceneRe.FindAllStringSubmatch(request, -1) {
		n, _ := strconv.Atoi(m[1])
		ids = append(ids, n)
	}
	return modify.Modification{Type: "remove_scenes", Params: map[string]any{"scene_ids": ids}}
}

func inclusiveRange(start, end int) []int {
	if end < start {
		start, end = end, start
	}
	out := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		out = append(out, i)
	}
	return out
}

var replacementPhraseRe = regexp.MustCompile(`(?i)(?:replace|instead|with)\s+["“]?([^"”\n]{3,80})["”]?\s*$`)

func parseReduceViolence(request string, provider embed.Provider) modify.Modification {
	params := map[string]any{"content_types": []string{"violence"}}

	phrase := ""
	if m := replacementPhraseRe.FindStringSubmatch(request); m != nil {
		phrase = strings.TrimSpace(m[1])
	}
	if phrase == "" {
		return modify.Modification{Type: "reduce_content", Params: params}
	}

	style := classifyReplacementStyle(phrase, provider)
	params["custom_replacements"] = map[string]any{"violence": phrase}
	params["replacement_style"] = style
	params["verb_substitutions"] = reduceViolenceTable[style]
	return modify.Modification{Type: "reduce_content", Params: params}
}

// classifyReplacementStyle reports "verbal" or "mild" for a replacement
// phrase using cosine similarity against curated example sets. Falls back
// to "mild" when no embedding provider is available.
func classifyReplacementStyle(phrase string, provider embed.Provider) string {
	if provider == nil {
		return "mild"
	}
	ctx := context.Background()
	target, err := provider.Embed(ctx, phrase)
	if err != nil {
		return "mild"
	}

	verbalScore := meanSimilarity(ctx, target, verbalExamples, provider)
	mildScore := meanSimilarity(ctx, target, mildExamples, provider)

	if verbalScore > mildScore && verbalScore > verbalStyleThreshold {
		return "verbal"
	}
	return "mild"
}

func meanSimilarity(ctx context.Context, target []float32, examples []string, provider embed.Provider) float64 {
	if len(examples) == 0 {
		return 0
	}
	total := 0.0
	n := 0
	for _, ex := range examples {
		v, err := provider.Embed(ctx, ex)
		if err != nil {
			continue
		}
		total += embed.CosineSimilarity(target, v)
		n++
	}
	if n == 0 {
		return 0
	}
	return total / float64(n)
}
