// Package segment splits raw screenplay text into an ordered sequence of
// scenes. Segmentation is a pure function of its input: the same text
// always produces the same scene sequence.
package segment

import (
	"regexp"
	"strconv"
	"strings"
)

// Scene is one addressable unit of a screenplay: a zero-based position, a
// short heading, and the scene's body text.
type Scene struct {
	SceneID int    `json:"scene_id"`
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// minSplitsForMultiScene is the lookahead-split count below which the whole
// text is treated as a single scene.
const minSplitsForMultiScene = 5

var sceneBreak = regexp.MustCompile(`(?im)^[ \t]*(?:INT\.|EXT\.|scene_heading\s*:|SCENE HEADING\s*:)`)

var headingCapture = regexp.MustCompile(`(?i)((?:INT\.|EXT\.).{0,120})`)

// Split parses raw screenplay text into scenes.
func Split(text string) []Scene {
	locs := sceneBreak.FindAllStringIndex(text, -1)
	// re.split's parts count is len(locs)+1 (the implicit leading chunk, even
	// when empty); the fallback threshold is on that count, not len(locs).
	if len(locs)+1 < minSplitsForMultiScene {
		return []Scene{{SceneID: 0, Heading: "full_text", Body: text}}
	}

	chunks := make([]string, 0, len(locs)+1)
	if preamble := text[:locs[0][0]]; strings.TrimSpace(preamble) != "" {
		chunks = append(chunks, preamble)
	}
	for i, loc := range locs {
		start := loc[0]
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		chunks = append(chunks, text[start:end])
	}

	scenes := make([]Scene, 0, len(chunks))
	idx := 0
	for _, chunk := range chunks {
		trimmed := strings.TrimSpace(chunk)
		if trimmed == "" {
			continue
		}

		heading := ""
		if m := headingCapture.FindString(chunk); m != "" {
			heading = strings.TrimSpace(m)
		} else {
			heading = syntheticHeading(idx)
		}

		scenes = append(scenes, Scene{SceneID: idx, Heading: heading, Body: chunk})
		idx++
	}

	if len(scenes) == 0 {
		return []Scene{{SceneID: 0, Heading: "full_text", Body: text}}
	}

	return scenes
}

func syntheticHeading(idx int) string {
	return "scene_" + strconv.Itoa(idx)
}

// Join recomposes scenes back into text for the segmenter idempotence
// property: segmenting Join(Split(text)) yields an identical sequence.
func Join(scenes []Scene) string {
	bodies := make([]string, len(scenes))
	for i, s := range scenes {
		bodies[i] = s.Body
	}
	return strings.Join(bodies, "\n\n")
}
