// Package diff renders unified diffs between expected and actual text. It is
// used by tests to make multi-line output mismatches readable.
package diff

import "github.com/pmezard/go-difflib/difflib"

// Diff returns the empty string if got and want match, and otherwise a
// unified diff between them.
func Diff(want, got string) string {
	if got == want {
		return ""
	}
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return text
}
