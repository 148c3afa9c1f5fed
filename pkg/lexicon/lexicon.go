// Package lexicon holds the frozen, tagged pattern tables that the feature
// extractor scans against: one positive-pattern list per content dimension,
// plus the exclusion, dampener, and visceral-evidence lists that modulate
// raw counts before normalization.
package lexicon

import "regexp"

// Dimension is one of the seven content-risk axes scored per scene.
type Dimension string

const (
	Violence  Dimension = "violence"
	Gore      Dimension = "gore"
	SexAct    Dimension = "sex_act"
	Nudity    Dimension = "nudity"
	Profanity Dimension = "profanity"
	Drugs     Dimension = "drugs"
	ChildRisk Dimension = "child_risk"
)

// Dimensions lists all seven in a fixed, stable order.
var Dimensions = []Dimension{Violence, Gore, SexAct, Nudity, Profanity, Drugs, ChildRisk}

// Pattern is a single tagged rule within a dimension's positive list.
type Pattern struct {
	Regex *regexp.Regexp
	Tag   string // short label, surfaced in match reasons/debugging
}

func mustPatterns(tag string, exprs ...string) []Pattern {
	out := make([]Pattern, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, Pattern{Regex: regexp.MustCompile(e), Tag: tag})
	}
	return out
}

// violencePatterns combines the English physical-violence lexicon with a
// Russian equivalent set, per the multilingual coexistence requirement.
var violencePatterns = append(
	mustPatterns("violence_en",
		`(?i)\bkill\w*`, `(?i)\bshoot\w*`, `(?i)\bshot\b`, `(?i)\bstab\w*`,
		`(?i)\bknife\b`, `(?i)\bgun\w*`, `(?i)\bpistol\b`, `(?i)\brifle\b`,
		`(?i)\bexplod\w*`, `(?i)\bblast\w*`, `(?i)\battack\w*`, `(?i)\bbeat\w*`,
		`(?i)\bcorpse\b`, `(?i)\bdead\b`, `(?i)\bmurder\w*`, `(?i)\bviolence\b`,
		`(?i)\bterrorist\b`, `(?i)\bhostage\b`, `(?i)\brip(?:ped|s)? apart\b`,
		`(?i)\battack(?:ed|ing)?\b`, `(?i)\bbeat(?:s|en|ing)?\b`, `(?i)\bthug(?:s)?\b`,
		`(?i)\bterror\b`, `(?i)\bfight(?:ing)?\b`, `(?i)\bbattle(?:s|d)?\b`,
		`(?i)\bwar\b`, `(?i)\bshoot[- ]?out\b`, `(?i)\bexplosion\b`, `(?i)\bgrenade\b`,
		`(?i)\bcorps(?:e|es)?\b`,
	),
	mustPatterns("violence_ru",
		`(?i)(?:^|\P{L})убить\w*`, `(?i)(?:^|\P{L})убийств\w*`, `(?i)(?:^|\P{L})выстрел\w*`, `(?i)(?:^|\P{L})нож\w*`,
		`(?i)(?:^|\P{L})пистолет\w*`, `(?i)(?:^|\P{L})взрыв\w*`, `(?i)(?:^|\P{L})драк\w*`, `(?i)(?:^|\P{L})войн\w*`,
		`(?i)(?:^|\P{L})труп\w*`, `(?i)(?:^|\P{L})насили\w*`,
	)...,
)

var psychViolencePatterns = mustPatterns("psych_violence",
	"(?i)torture", "(?i)madness", "(?i)scream", "(?i)insane", "(?i)asylum",
	"(?i)terror", "(?i)panic", "(?i)suicide", "(?i)kill himself", "(?i)psychotic",
	"(?i)mental hospital",
)

var heroicDampenerPatterns = mustPatterns("heroic_fiction",
	"(?i)superman", "(?i)batman", "(?i)wonder woman", "(?i)lex luthor",
	"(?i)krypton", "(?i)metropolis", "(?i)\\bhero\\b", "(?i)\\bvillain\\b",
	"(?i)\\bsave\\b", "(?i)\\brescue\\b", "(?i)\\blaser\\b", "(?i)\\bfly\\b",
	"(?i)\\bpower\\b", "(?i)superpower", "(?i)\\bcomic\\b", "(?i)adventure",
)

// visceralEvidenceRegex matches the co-occurring "hard" evidence that must be
// present for raw violence counts to stand at full weight.
var visceralEvidenceRegex = regexp.MustCompile(`(?i)\b(blood|gore|corpse|bleeding|wound|pain|scream)\b`)

// disguisedInstructionPatterns catches screen directions that smuggle
// disguised format/encoding instructions into the text (a scene direction
// telling the reader to decode, reverse, or otherwise unscramble hidden
// text). Presence nudges child_risk and profanity upward the same way
// heroicDampenerPatterns nudges violence downward: context-sensitive
// modulation, not a standalone dimension.
var disguisedInstructionPatterns = mustPatterns("disguised_instruction",
	`(?i)\[?\s*(decode|reverse|unscramble|decrypt|decipher|translate)\s*(this|the\s+following|below)?\s*:?\s*\]?`,
	`(?i)(read|interpret|parse)\s+(this\s+)?(backwards?|in\s+reverse|reversed)`,
	`(?i)(flip|mirror|invert)\s+(this\s+)?(text|message|string|input)`,
	`(?i)the\s+following\s+is\s+(reversed|backwards|encoded|encrypted)`,
)

var gorePatterns = append(
	mustPatterns("gore_en",
		"(?i)blood", "(?i)bloody", "(?i)bloodied", "(?i)bleeding", "(?i)corpse",
		"(?i)wound", "(?i)scar", "(?i)injur", "(?i)crash", "(?i)burn", "(?i)explod",
		"(?i)guts", "(?i)entrails", "(?i)brain", "(?i)dead body",
	),
	mustPatterns("gore_ru", "(?i)кровь", "(?i)кровав\\w*", "(?i)рана", "(?i)внутренност\\w*")...,
)

// goreExclusions suppress gore hits entirely when any of these phrases
// appears in the scene — non-literal uses that would otherwise false-positive.
var goreExclusions = []string{
	"blood oath", "black ink", "blackened tongue", "ink dribbl", "ink is now",
}

var sexActPatterns = append(
	mustPatterns("sex_act_en",
		`(?i)\brape\b`, `(?i)\bsexual\b`, `(?i)\bintercourse\b`, `(?i)\bsex scene\b`,
		`(?i)\bmolest\b`, `(?i)\borgasm\b`, `(?i)\bmake love\b`, `(?i)\bhaving sex\b`,
		`(?i)\bsexually\b`,
	),
	mustPatterns("sex_act_ru", `(?i)(?:^|\P{L})секс\w*`, `(?i)(?:^|\P{L})изнасилован\w*`, `(?i)(?:^|\P{L})совокуплен\w*`)...,
)

var nudityPatterns = append(
	mustPatterns("nudity_en",
		`(?i)\bbra\b`, `(?i)\bpanty|panties\b`, `(?i)\bunderwear\b`, `(?i)\bnaked\b`,
		`(?i)\bskinny[- ]?dipping\b`,
	),
	mustPatterns("nudity_ru", `(?i)(?:^|\P{L})голый\w*`, `(?i)(?:^|\P{L})обнажен\w*`)...,
)

var profanityPatterns = append(
	mustPatterns("profanity_en", `(?i)\bfuck\b`, `(?i)\bshit\b`, `(?i)\bmotherfucker\b`, `(?i)\bbitch\b`),
	mustPatterns("profanity_ru", `(?i)(?:^|\P{L})блядь`, `(?i)(?:^|\P{L})сука`, `(?i)(?:^|\P{L})хуй\w*`)...,
)

var drugsPatterns = append(
	mustPatterns("drugs_en",
		`(?i)\bdrug(?:s)?\b`, `(?i)\bheroin\b`, `(?i)\bcocaine\b`, `(?i)\bmarijuana\b`,
		`(?i)\bpill(?:s)?\b`, `(?i)\bweed\b`, `(?i)\balcohol\b`, `(?i)\bdrunk\b`, `(?i)\bcigarette\b`,
	),
	mustPatterns("drugs_ru", `(?i)(?:^|\P{L})наркотик\w*`, `(?i)(?:^|\P{L})героин\w*`, `(?i)(?:^|\P{L})кокаин\w*`, `(?i)(?:^|\P{L})водк\w*`)...,
)

var childMentionPatterns = append(
	mustPatterns("child_en", `(?i)\bchild\b`, `(?i)\bkid(?:s)?\b`, `(?i)\bson\b`, `(?i)\bdaughter\b`, `(?i)\bteen(?:aged)?\b`),
	mustPatterns("child_ru", `(?i)(?:^|\P{L})ребен\w*`, `(?i)(?:^|\P{L})сын`, `(?i)(?:^|\P{L})дочь\w*`, `(?i)(?:^|\P{L})подросток\w*`)...,
)

// Table returns the positive pattern list for a dimension. child_risk is
// scored from child-mention presence rather than a dedicated pattern list,
// so it shares childMentionPatterns.
func Table(dim Dimension) []Pattern {
	switch dim {
	case Violence:
		return violencePatterns
	case Gore:
		return gorePatterns
	case SexAct:
		return sexActPatterns
	case Nudity:
		return nudityPatterns
	case Profanity:
		return profanityPatterns
	case Drugs:
		return drugsPatterns
	case ChildRisk:
		return childMentionPatterns
	default:
		return nil
	}
}

// PsychViolenceTable returns the secondary psychological-violence list that
// folds into violence at a 0.5x weight.
func PsychViolenceTable() []Pattern { return psychViolencePatterns }

// HeroicDampenerTable returns the fiction-framing list that, when present,
// multiplies raw violence counts by 0.6.
func HeroicDampenerTable() []Pattern { return heroicDampenerPatterns }

// GoreExclusions returns substrings that, if present anywhere in scene text,
// suppress all gore hits for that scene.
func GoreExclusions() []string { return goreExclusions }

// HasVisceralEvidence reports whether lowercased text contains at least one
// of the hard-evidence words that justify full-weight violence counts.
func HasVisceralEvidence(lower string) bool {
	return visceralEvidenceRegex.MatchString(lower)
}

// HasDisguisedInstruction reports whether lowercased text contains a
// disguised format/encoding instruction embedded in a screen direction.
func HasDisguisedInstruction(lower string) bool {
	return lexiconAny(disguisedInstructionPatterns, lower)
}

func lexiconAny(patterns []Pattern, lower string) bool {
	for _, p := range patterns {
		if p.Regex.MatchString(lower) {
			return true
		}
	}
	return false
}

// CountMatches sums match counts (not distinct matches) across a pattern
// list against already-lowercased text.
func CountMatches(patterns []Pattern, lowerText string) int {
	total := 0
	for _, p := range patterns {
		total += len(p.Regex.FindAllStringIndex(lowerText, -1))
	}
	return total
}
