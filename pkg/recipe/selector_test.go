package recipe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bob-devel/recipetool/pkg/recipe"
)

func TestEvalSelector(t *testing.T) {
	t.Parallel()
	type testcase struct {
		expr     string
		platform string
		exp      bool
	}
	testcases := map[string]testcase{
		"linux-on-linux":   {"linux", "linux", true},
		"linux-on-osx":     {"linux", "osx", false},
		"not-win-on-linux": {"not win", "linux", true},
		"not-win-on-win":   {"not win", "win", false},
		"unix-on-linux":    {"unix", "linux", true},
		"unix-on-osx":      {"unix", "osx", true},
		"unix-on-win":      {"unix", "win", false},
		"or":               {"linux or osx", "osx", true},
		"or-miss":          {"linux or osx", "win", false},
		"and":              {"unix and not osx", "linux", true},
		"and-miss":         {"unix and not osx", "osx", false},
		"double-not":       {"not not linux", "linux", true},
		"mixed":            {"win or unix and not osx", "linux", true},
		"mixed-osx":        {"win or unix and not osx", "osx", false},
	}
	for tcName, tc := range testcases {
		tc := tc
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			act, err := recipe.EvalSelector(tc.expr, tc.platform)
			require.NoError(t, err)
			assert.Equal(t, tc.exp, act)
		})
	}
}

func TestEvalSelectorErrors(t *testing.T) {
	t.Parallel()
	for _, expr := range []string{
		"",
		"not",
		"plan9",
		"linux or",
		"linux banana osx",
	} {
		expr := expr
		t.Run(expr, func(t *testing.T) {
			t.Parallel()
			_, err := recipe.EvalSelector(expr, "linux")
			assert.Error(t, err)
		})
	}

	_, err := recipe.EvalSelector("linux", "plan9")
	assert.Error(t, err)
}

func TestParseStep(t *testing.T) {
	t.Parallel()
	step, err := recipe.ParseStep("conda inspect linkages -p $PREFIX bob.db.atnt  # [not win]")
	require.NoError(t, err)
	assert.Equal(t, "conda inspect linkages -p $PREFIX bob.db.atnt", step.Run)
	assert.Equal(t, "not win", step.Selector)

	enabled, err := step.Enabled("linux")
	require.NoError(t, err)
	assert.True(t, enabled)
	enabled, err = step.Enabled("win")
	require.NoError(t, err)
	assert.False(t, enabled)

	// Round trip through String.
	again, err := recipe.ParseStep(step.String())
	require.NoError(t, err)
	assert.Equal(t, step, again)

	// A '#' that does not open a selector stays part of the command.
	step, err = recipe.ParseStep("echo 'issue #42'")
	require.NoError(t, err)
	assert.Equal(t, "echo 'issue #42'", step.Run)
	assert.Equal(t, "", step.Selector)

	for _, line := range []string{"", "   ", "# [linux]", "true  # [linux", "true  # []"} {
		_, err := recipe.ParseStep(line)
		assert.Error(t, err, "line %q", line)
	}
}
