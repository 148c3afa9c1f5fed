// Package entity implements the regex-fallback entity-extraction capability
// named in SPEC_FULL.md: characters and locations pulled out of a scene
// stream without a richer NLP dependency. Objects are not extracted; the
// Objects field is left empty.
package entity

import (
	"regexp"
	"strings"

	"github.com/openreel/ratingcore/pkg/segment"
)

// Entities holds everything extracted from a scene stream.
type Entities struct {
	Characters []string
	Locations  []string
	Objects    []string
}

// minMentions is the occurrence floor below which a candidate character
// name is discarded as noise, matching the fallback extractor's own floor.
const minMentions = 2

var characterCue = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\b(?:\s*:|\s+says|\s+yells|\s+whispers)`)
var locationCue = regexp.MustCompile(`(?i)(?:INT\.|EXT\.)\s+([A-Z][A-Z\s]+?)(?:\s*-\s*|\n|$)`)
var dialogueHeader = regexp.MustCompile(`^\s*([A-Z][A-Z\s]{1,30})\s*[:.]`)

// Extract pulls characters and locations out of a scene stream using only
// regex heuristics — the fallback path from the original's entity
// extractor when no NER model is configured.
func Extract(scenes []segment.Scene) Entities {
	mentionCounts := map[string]int{}
	locationSet := map[string]struct{}{}

	for _, s := range scenes {
		for _, m := range characterCue.FindAllStringSubmatch(s.Body, -1) {
			mentionCounts[strings.TrimSpace(m[1])]++
		}
		for _, line := range strings.Split(s.Body, "\n") {
			if m := dialogueHeader.FindStringSubmatch(line); m != nil {
				name := strings.TrimSpace(m[1])
				if name != "" {
					mentionCounts[name]++
				}
			}
		}
		for _, m := range locationCue.FindAllStringSubmatch(s.Heading+"\n"+s.Body, -1) {
			loc := strings.TrimSpace(m[1])
			if loc != "" {
				locationSet[loc] = struct{}{}
			}
		}
	}

	characters := make([]string, 0, len(mentionCounts))
	for name, count := range mentionCounts {
		if count >= minMentions {
			characters = append(characters, name)
		}
	}

	locations := make([]string, 0, len(locationSet))
	for loc := range locationSet {
		locations = append(locations, loc)
	}

	return Entities{Characters: characters, Locations: locations}
}

// ExtractForScene returns dialogue-cue character names mentioned within a
// single scene body, without the cross-scene minimum-mentions floor (a
// single scene rarely repeats a cue enough to clear it otherwise).
func ExtractForScene(body string) []string {
	seen := map[string]struct{}{}
	for _, m := range characterCue.FindAllStringSubmatch(body, -1) {
		seen[strings.TrimSpace(m[1])] = struct{}{}
	}
	for _, line := range strings.Split(body, "\n") {
		if m := dialogueHeader.FindStringSubmatch(line); m != nil {
			name := strings.TrimSpace(m[1])
			if name != "" {
				seen[name] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	return out
}

// SceneHasCharacter reports whether a scene's body mentions name (case-
// insensitive, word-bounded).
func SceneHasCharacter(body, name string) bool {
	if name == "" {
		return false
	}
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`)
	return re.MatchString(body)
}
