package store

import (
	"strconv"

	"github.com/pmezard/go-difflib/difflib"
)

// unifiedDiff computes a unified diff between two content versions, the
// same form the original version comparator produced with Python's
// difflib.unified_diff.
func unifiedDiff(old, new string, oldVersion, newVersion int) []string {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(old),
		B:        difflib.SplitLines(new),
		FromFile: "v" + strconv.Itoa(oldVersion),
		ToFile:   "v" + strconv.Itoa(newVersion),
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil || text == "" {
		return nil
	}
	return difflib.SplitLines(text)
}
