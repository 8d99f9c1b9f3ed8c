package testutil

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
)

var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisableCapacities:       true,
	DisablePointerAddresses: true,
	SortKeys:                true,
}

// Dump renders a value in a stable human-readable form, suitable for
// comparing structured values (rendered recipes, step lists) in tests.
func Dump(val interface{}) string {
	return spewConfig.Sdump(val)
}

// AssertEqual is like assert.Equal, but when the values differ it reports a
// unified diff of their dumps, which is much easier to read for nested
// structures than testify's one-line mismatch.
func AssertEqual(t *testing.T, exp, act interface{}, name string) bool {
	t.Helper()
	if assert.ObjectsAreEqual(exp, act) {
		return true
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(Dump(exp)),
		B:        difflib.SplitLines(Dump(act)),
		FromFile: "expected " + name,
		ToFile:   "actual " + name,
		Context:  3,
	})
	if err != nil {
		t.Errorf("%s mismatch (diff unavailable: %v):\nexpected:\n%s\nactual:\n%s",
			name, err, Dump(exp), Dump(act))
		return false
	}
	t.Errorf("%s mismatch:\n%s", name, diff)
	return false
}
