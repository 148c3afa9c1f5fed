package modify

import "regexp"

// CharacterFocusedStrategy edits scenes around a named character: rename
// (swap every mention), remove (drop the character's scenes when
// drop_scenes is set; otherwise strip every line that opens with the
// character's cue, "NAME:" or "NAME.", along with the rest of that line —
// the lines below a cue line are kept), or modify_actions (swap specific
// action verbs attributed to them).
type CharacterFocusedStrategy struct{}

func (CharacterFocusedStrategy) CanHandle(modType string) bool { return modType == "character_focused" }

func (CharacterFocusedStrategy) ValidateParams(params map[string]any) bool {
	action, _ := params["action"].(string)
	switch action {
	case "rename":
		from, _ := params["from"].(string)
		to, _ := params["to"].(string)
		return from != "" && to != ""
	case "remove":
		_, ok := params["character"].(string)
		return ok && params["character"].(string) != ""
	case "modify_actions":
		character, _ := params["character"].(string)
		_, hasReplacements := params["action_replacements"].(map[string]any)
		return character != "" && hasReplacements
	}
	return false
}

func (s CharacterFocusedStrategy) Apply(scenes []Scene, m Modification) ([]Scene, map[string]any, error) {
	action, _ := m.Params["action"].(string)
	switch action {
	case "rename":
		return s.rename(scenes, m)
	case "remove":
		return s.remove(scenes, m)
	case "modify_actions":
		return s.modifyActions(scenes, m)
	}
	return scenes, map[string]any{}, nil
}

func (CharacterFocusedStrategy) rename(scenes []Scene, m Modification) ([]Scene, map[string]any, error) {
	from, _ := m.Params["from"].(string)
	to, _ := m.Params["to"].(string)
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(from) + `\b`)

	out := make([]Scene, len(scenes))
	replacements := 0
	for i, sc := range scenes {
		if !inScope(sc.SceneID, m.Scope) {
			out[i] = sc
			continue
		}
		matches := re.FindAllStringIndex(sc.Body, -1)
		body := re.ReplaceAllString(sc.Body, to)
		replacements += len(matches)

		chars := make([]string, len(sc.Characters))
		for j, c := range sc.Characters {
			if c == from {
				chars[j] = to
			} else {
				chars[j] = c
			}
		}
		out[i] = Scene{SceneID: sc.SceneID, Heading: sc.Heading, Body: body, Characters: chars, SceneType: sc.SceneType}
	}

	meta := map[string]any{
		"action":             "rename",
		"from":               from,
		"to":                 to,
		"total_replacements": replacements,
	}
	return out, meta, nil
}

func (CharacterFocusedStrategy) remove(scenes []Scene, m Modification) ([]Scene, map[string]any, error) {
	character, _ := m.Params["character"].(string)
	dropScenes, _ := m.Params["drop_scenes"].(bool)

	if dropScenes {
		kept := make([]Scene, 0, len(scenes))
		removedIDs := []int{}
		for _, sc := range scenes {
			if inScope(sc.SceneID, m.Scope) && hasAnyCharacter(sc.Characters, []string{character}) {
				removedIDs = append(removedIDs, sc.SceneID)
				continue
			}
			kept = append(kept, sc)
		}
		dense := densify(kept)
		meta := map[string]any{
			"action":            "remove",
			"character":         character,
			"removed_scene_ids": sortedInts(removedIDs),
			"remaining_count":   len(dense),
		}
		return dense, meta, nil
	}

	dialogueRe := regexp.MustCompile(`(?im)^[ \t]*` + regexp.QuoteMeta(character) + `[ \t]*[:.][^\n]*\n?`)
	out := make([]Scene, len(scenes))
	linesStripped := 0
	for i, sc := range scenes {
		if !inScope(sc.SceneID, m.Scope) {
			out[i] = sc
			continue
		}
		before := dialogueRe.FindAllString(sc.Body, -1)
		body := dialogueRe.ReplaceAllString(sc.Body, "")
		linesStripped += len(before)

		chars := make([]string, 0, len(sc.Characters))
		for _, c := range sc.Characters {
			if c != character {
				chars = append(chars, c)
			}
		}
		out[i] = Scene{SceneID: sc.SceneID, Heading: sc.Heading, Body: body, Characters: chars, SceneType: sc.SceneType}
	}

	meta := map[string]any{
		"action":         "remove",
		"character":      character,
		"lines_stripped": linesStripped,
	}
	return out, meta, nil
}

func (CharacterFocusedStrategy) modifyActions(scenes []Scene, m Modification) ([]Scene, map[string]any, error) {
	character, _ := m.Params["character"].(string)
	replacements, _ := m.Params["action_replacements"].(map[string]any)

	out := make([]Scene, len(scenes))
	totalReplacements := 0
	for i, sc := range scenes {
		if !inScope(sc.SceneID, m.Scope) || !hasAnyCharacter(sc.Characters, []string{character}) {
			out[i] = sc
			continue
		}
		body := sc.Body
		for from, toVal := range replacements {
			to, ok := toVal.(string)
			if !ok {
				continue
			}
			re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(from) + `\b`)
			matches := re.FindAllStringIndex(body, -1)
			body = re.ReplaceAllString(body, to)
			totalReplacements += len(matches)
		}
		out[i] = Scene{SceneID: sc.SceneID, Heading: sc.Heading, Body: body, Characters: sc.Characters, SceneType: sc.SceneType}
	}

	meta := map[string]any{
		"action":             "modify_actions",
		"character":          character,
		"total_replacements": totalReplacements,
	}
	return out, meta, nil
}

func (CharacterFocusedStrategy) Description() string {
	return "character_focused: rename, remove, or modify a character's actions"
}
