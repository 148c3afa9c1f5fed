package lexicon

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"gopkg.in/yaml.v3"
)

// Overrides is an optional on-disk supplement to the hardcoded pattern
// tables: additional positive patterns per dimension and additional gore
// exclusions. A missing or absent file is not an error — callers fall back
// to the hardcoded defaults.
type Overrides struct {
	Patterns        map[Dimension][]string `yaml:"patterns"`
	GoreExclusions  []string               `yaml:"gore_exclusions"`
	HeroicDampeners []string               `yaml:"heroic_dampeners"`
}

var (
	overrideMu    sync.RWMutex
	activeOverlay *Overrides
)

// LoadOverrides reads "lexicon_overrides.yaml" from dir, if present, and
// installs it as the active overlay. It returns (nil, nil) when the file
// does not exist — this is the expected, common case.
func LoadOverrides(dir string) (*Overrides, error) {
	path := filepath.Join(dir, "lexicon_overrides.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("lexicon: reading overrides: %w", err)
	}

	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("lexicon: parsing overrides: %w", err)
	}

	overrideMu.Lock()
	activeOverlay = &o
	overrideMu.Unlock()

	return &o, nil
}

// ResetOverrides clears any installed overlay. Test helper.
func ResetOverrides() {
	overrideMu.Lock()
	activeOverlay = nil
	overrideMu.Unlock()
}

// ExtraPatterns returns any overlay-supplied additional patterns for dim,
// compiled, tagged "override". Returns nil if no overlay is installed or it
// has nothing for this dimension.
func ExtraPatterns(dim Dimension) []Pattern {
	overrideMu.RLock()
	defer overrideMu.RUnlock()

	if activeOverlay == nil {
		return nil
	}
	exprs, ok := activeOverlay.Patterns[dim]
	if !ok {
		return nil
	}
	out := make([]Pattern, 0, len(exprs))
	for _, e := range exprs {
		re, err := regexp.Compile(e)
		if err != nil {
			continue // malformed override entries are skipped, not fatal
		}
		out = append(out, Pattern{Regex: re, Tag: "override"})
	}
	return out
}

// ExtraGoreExclusions returns any overlay-supplied additional gore exclusion
// substrings.
func ExtraGoreExclusions() []string {
	overrideMu.RLock()
	defer overrideMu.RUnlock()
	if activeOverlay == nil {
		return nil
	}
	return activeOverlay.GoreExclusions
}
