// Package feature turns a scene's body text into the raw, non-negative
// per-dimension counters the normalizer consumes. Counting is pattern-based
// with context-sensitive modulation: a heroic-fiction dampener and a
// visceral-evidence gate on violence, and an exclusion list on gore.
package feature

import (
	"strings"

	"github.com/openreel/ratingcore/pkg/lexicon"
	"github.com/openreel/ratingcore/pkg/segment"
)

// Raw holds the unscaled per-dimension counters for one scene, plus the
// auxiliary counters the normalizer needs.
type Raw struct {
	Violence      float64
	Gore          float64
	SexAct        float64
	Nudity        float64
	Profanity     float64
	Drugs         float64
	ChildMentions float64
	Length        int
}

// Extract computes raw counters for a single scene body.
func Extract(s segment.Scene) Raw {
	lower := lexicon.FoldForMatching(s.Body)

	violenceRaw := float64(lexicon.CountMatches(lexicon.Table(lexicon.Violence), lower))
	psychRaw := float64(lexicon.CountMatches(lexicon.PsychViolenceTable(), lower))

	if lexicon.CountMatches(lexicon.HeroicDampenerTable(), lower) > 0 {
		violenceRaw *= 0.6
	}
	if violenceRaw > 0 && !lexicon.HasVisceralEvidence(lower) {
		violenceRaw *= 0.7
	}
	violenceRaw += psychRaw * 0.5

	goreRaw := 0.0
	if !lexicon.ContainsAny(lower, lexicon.GoreExclusions()) {
		goreRaw = float64(lexicon.CountMatches(lexicon.Table(lexicon.Gore), lower))
	}

	profanityRaw := float64(lexicon.CountMatches(lexicon.Table(lexicon.Profanity), lower))
	childRaw := float64(lexicon.CountMatches(lexicon.Table(lexicon.ChildRisk), lower))

	// A screen direction smuggling a disguised decode/reverse instruction is
	// itself a content-risk signal distinct from any lexicon hit: it nudges
	// the two dimensions most associated with concealed intent upward by a
	// flat count rather than a multiplier, since it can co-occur with zero
	// ordinary profanity/child-mention hits.
	if lexicon.HasDisguisedInstruction(lower) {
		profanityRaw++
		childRaw++
	}

	return Raw{
		Violence:      violenceRaw,
		Gore:          goreRaw,
		SexAct:        float64(lexicon.CountMatches(lexicon.Table(lexicon.SexAct), lower)),
		Nudity:        float64(lexicon.CountMatches(lexicon.Table(lexicon.Nudity), lower)),
		Profanity:     profanityRaw,
		Drugs:         float64(lexicon.CountMatches(lexicon.Table(lexicon.Drugs), lower)),
		ChildMentions: childRaw,
		Length:        wordCount(s.Body),
	}
}

func wordCount(text string) int {
	n := len(strings.Fields(text))
	if n < 1 {
		return 1
	}
	return n
}
