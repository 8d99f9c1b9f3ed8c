package recipe

import (
	"fmt"
	"runtime"
	"strings"
)

// Platforms that selectors can name.  "unix" is a family covering linux and
// osx.
var platformFamilies = map[string][]string{
	"linux": {"linux", "unix"},
	"osx":   {"osx", "unix"},
	"win":   {"win"},
}

// HostPlatform maps the running OS into selector vocabulary.
func HostPlatform() string {
	switch runtime.GOOS {
	case "darwin":
		return "osx"
	case "windows":
		return "win"
	default:
		return "linux"
	}
}

// EvalSelector evaluates a step selector expression against a platform.
// Expressions are whitespace-separated terms joined by "and"/"or", each term
// being a platform word optionally preceded by "not"; "and" binds tighter
// than "or".  There are no parentheses.
func EvalSelector(expr, platform string) (bool, error) {
	families, ok := platformFamilies[platform]
	if !ok {
		return false, fmt.Errorf("selector: unknown platform %q", platform)
	}
	matches := func(word string) (bool, error) {
		valid := false
		for _, names := range platformFamilies {
			for _, name := range names {
				if name == word {
					valid = true
				}
			}
		}
		if !valid {
			return false, fmt.Errorf("selector %q: unknown platform word %q", expr, word)
		}
		for _, name := range families {
			if name == word {
				return true, nil
			}
		}
		return false, nil
	}

	tokens := strings.Fields(expr)
	if len(tokens) == 0 {
		return false, fmt.Errorf("selector: empty expression")
	}

	// Evaluate one "not"-optional term.
	term := func() (bool, error) {
		negate := false
		for len(tokens) > 0 && tokens[0] == "not" {
			negate = !negate
			tokens = tokens[1:]
		}
		if len(tokens) == 0 {
			return false, fmt.Errorf("selector %q: dangling \"not\"", expr)
		}
		val, err := matches(tokens[0])
		if err != nil {
			return false, err
		}
		tokens = tokens[1:]
		return val != negate, nil
	}

	result, err := term()
	if err != nil {
		return false, err
	}
	andAccum := result
	orAccum := false
	for len(tokens) > 0 {
		op := tokens[0]
		tokens = tokens[1:]
		val, err := term()
		if err != nil {
			return false, err
		}
		switch op {
		case "and":
			andAccum = andAccum && val
		case "or":
			orAccum = orAccum || andAccum
			andAccum = val
		default:
			return false, fmt.Errorf("selector %q: expected \"and\" or \"or\", got %q", expr, op)
		}
	}
	return orAccum || andAccum, nil
}

// CheckSelector verifies that a selector expression is well-formed without
// caring which platform it would select.
func CheckSelector(expr string) error {
	_, err := EvalSelector(expr, "linux")
	return err
}
