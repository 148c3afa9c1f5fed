package modify

import "regexp"

// contentClass is one of the reducible content dimensions.
type contentClass string

const (
	classViolence contentClass = "violence"
	classGore     contentClass = "gore"
	classProfanity contentClass = "profanity"
	classSexual   contentClass = "sexual"
	classDrugs    contentClass = "drugs"
)

// defaultReplacements gives each content class an English default
// replacement phrase (used for English and Russian target phrases alike),
// used when a modification doesn't supply its own custom_replacements
// override.
var defaultReplacements = map[contentClass]string{
	classViolence:  "a tense confrontation",
	classGore:      "the aftermath",
	classProfanity: "[redacted]",
	classSexual:    "an intimate moment",
	classDrugs:     "a troubling habit",
}

// reductionTargets lists the words/phrases each class strips, EN and RU.
var reductionTargets = map[contentClass][]string{
	classViolence: {
		"stabbed", "shot", "beat him", "beat her", "strangled", "punched",
		"зарезал", "застрелил", "избил", "задушил",
	},
	classGore: {
		"blood pooled", "entrails", "severed", "disemboweled", "gore",
		"кровь хлынула", "внутренности", "отрубленн",
	},
	classProfanity: {
		"fuck", "shit", "bitch", "asshole",
		"блядь", "сука", "хуй", "пизда",
	},
	classSexual: {
		"naked", "thrust into her", "moaned in pleasure",
		"обнажённ", "стонала от удовольствия",
	},
	classDrugs: {
		"snorted cocaine", "shot up heroin", "smoked meth",
		"нюхал кокаин", "вколол героин",
	},
}

func classFromParam(v string) (contentClass, bool) {
	switch contentClass(v) {
	case classViolence, classGore, classProfanity, classSexual, classDrugs:
		return contentClass(v), true
	}
	return "", false
}

// ContentReductionStrategy replaces content-class phrases within scope with
// a toned-down replacement — either the class default or a per-class
// override supplied in custom_replacements. For violence, a
// verb_substitutions map[string]string (as pkg/whatif produces) is applied
// first as whole-word swaps.
type ContentReductionStrategy struct{}

func (ContentReductionStrategy) CanHandle(modType string) bool { return modType == "reduce_content" }

func (ContentReductionStrategy) ValidateParams(params map[string]any) bool {
	types := toStringSlice(params["content_types"])
	if len(types) == 0 {
		return false
	}
	for _, t := range types {
		if _, ok := classFromParam(t); !ok {
			return false
		}
	}
	return true
}

func (s ContentReductionStrategy) Apply(scenes []Scene, m Modification) ([]Scene, map[string]any, error) {
	types := toStringSlice(m.Params["content_types"])
	custom, _ := m.Params["custom_replacements"].(map[string]any)
	targetChars := toStringSlice(m.Params["target_characters"])

	out := make([]Scene, len(scenes))
	totalReplacements := 0
	scenesModified := map[int]struct{}{}

	for i, sc := range scenes {
		body := sc.Body
		if !inScope(sc.SceneID, m.Scope) {
			out[i] = sc
			continue
		}
		if len(targetChars) > 0 && !hasAnyCharacter(sc.Characters, targetChars) {
			out[i] = sc
			continue
		}

		for _, t := range types {
			class, ok := classFromParam(t)
			if !ok {
				continue
			}
			replacement := defaultReplacements[class]
			if custom != nil {
				if v, ok := custom[t].(string); ok && v != "" {
					replacement = v
				}
			}
			if class == classViolence {
				subs, _ := m.Params["verb_substitutions"].(map[string]string)
				for from, to := range subs {
					re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(from) + `\b`)
					matches := re.FindAllStringIndex(body, -1)
					if len(matches) == 0 {
						continue
					}
					body = re.ReplaceAllString(body, to)
					totalReplacements += len(matches)
					scenesModified[sc.SceneID] = struct{}{}
				}
			}
			for _, phrase := range reductionTargets[class] {
				re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(phrase))
				matches := re.FindAllStringIndex(body, -1)
				if len(matches) == 0 {
					continue
				}
				body = re.ReplaceAllString(body, replacement)
				totalReplacements += len(matches)
				scenesModified[sc.SceneID] = struct{}{}
			}
		}

		out[i] = Scene{SceneID: sc.SceneID, Heading: sc.Heading, Body: body, Characters: sc.Characters, SceneType: sc.SceneType}
	}

	meta := map[string]any{
		"content_types_reduced": types,
		"total_replacements":    totalReplacements,
		"scenes_modified":       len(scenesModified),
	}
	return out, meta, nil
}

func (ContentReductionStrategy) Description() string {
	return "reduce_content: replace content-class phrases with toned-down text"
}
