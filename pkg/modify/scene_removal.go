package modify

import "strings"

// SceneRemovalStrategy drops scenes by any union of explicit scene ids,
// scene types, characters, or locations, then re-densifies scene ids
// starting at 0. CharacterFocusedStrategy's remove with drop_scenes
// re-densifies the same way.
type SceneRemovalStrategy struct{}

func (SceneRemovalStrategy) CanHandle(modType string) bool { return modType == "remove_scenes" }

func (SceneRemovalStrategy) ValidateParams(params map[string]any) bool {
	for _, key := range []string{"scene_ids", "scene_types", "characters", "locations"} {
		if _, ok := params[key]; ok {
			return true
		}
	}
	return false
}

func (s SceneRemovalStrategy) Apply(scenes []Scene, m Modification) ([]Scene, map[string]any, error) {
	toRemove := map[int]struct{}{}

	if ids, ok := m.Params["scene_ids"].([]int); ok {
		for _, id := range ids {
			toRemove[id] = struct{}{}
		}
	}

	sceneTypes := toStringSlice(m.Params["scene_types"])
	characters := toStringSlice(m.Params["characters"])
	locations := toStringSlice(m.Params["locations"])

	if len(sceneTypes) > 0 || len(characters) > 0 || len(locations) > 0 {
		for _, sc := range scenes {
			if len(sceneTypes) > 0 && containsString(sceneTypes, sc.SceneType) {
				toRemove[sc.SceneID] = struct{}{}
				continue
			}
			if len(characters) > 0 && hasAnyCharacter(sc.Characters, characters) {
				toRemove[sc.SceneID] = struct{}{}
				continue
			}
			if len(locations) > 0 && containsSubstring(sc.Heading, locations) {
				toRemove[sc.SceneID] = struct{}{}
			}
		}
	}

	removedIDs := make([]int, 0, len(toRemove))
	kept := make([]Scene, 0, len(scenes))
	for _, sc := range scenes {
		if _, drop := toRemove[sc.SceneID]; drop {
			removedIDs = append(removedIDs, sc.SceneID)
			continue
		}
		kept = append(kept, sc)
	}

	dense := densify(kept)

	meta := map[string]any{
		"removed_count":     len(removedIDs),
		"removed_scene_ids": sortedInts(removedIDs),
		"remaining_count":   len(dense),
	}
	return dense, meta, nil
}

func (SceneRemovalStrategy) Description() string {
	return "remove_scenes: drop scenes by id/type/character/location, re-densify ids"
}

func toStringSlice(v any) []string {
	switch t := v.(type) {
	case []string:
		return t
	default:
		return nil
	}
}

func containsString(list []string, v string) bool {
	if v == "" {
		return false
	}
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func containsSubstring(haystack string, needles []string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

func sortedInts(xs []int) []int {
	out := append([]int(nil), xs...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
