// Package pin deals with dependency version pins: the read-only pinning table
// consulted when a recipe is rendered, and the run_exports constraint that a
// built package propagates to its downstream consumers.
package pin

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

// A Table maps dependency names to version-constraint strings.  It is loaded
// once from a pinning file and is read-only afterwards; iteration order is
// the declaration order of the file.
type Table struct {
	names  []string
	values map[string]string
}

// ParseTable parses the YAML pinning file.  Each entry is a flat
// "name: constraint" pair; the constraint is an opaque string as far as the
// table is concerned.
func ParseTable(data []byte) (*Table, error) {
	var doc yaml.MapSlice
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, err
	}
	tab := &Table{
		values: make(map[string]string, len(doc)),
	}
	for _, item := range doc {
		name, ok := item.Key.(string)
		if !ok {
			return nil, fmt.Errorf("pin table: key %v is not a string", item.Key)
		}
		var constraint string
		switch val := item.Value.(type) {
		case nil:
			// An unconstrained pin; renders to the bare name.
		case string:
			constraint = val
		case int:
			constraint = strconv.Itoa(val)
		case float64:
			constraint = strconv.FormatFloat(val, 'f', -1, 64)
		default:
			return nil, fmt.Errorf("pin table: %s: value %v is not a string", name, item.Value)
		}
		if _, exists := tab.values[name]; exists {
			return nil, fmt.Errorf("pin table: duplicate entry for %s", name)
		}
		tab.names = append(tab.names, name)
		tab.values[name] = constraint
	}
	return tab, nil
}

// Get returns the constraint pinned for the named dependency.
func (tab *Table) Get(name string) (string, bool) {
	constraint, ok := tab.values[name]
	return constraint, ok
}

// Names returns the pinned dependency names in declaration order.
func (tab *Table) Names() []string {
	ret := make([]string, len(tab.names))
	copy(ret, tab.names)
	return ret
}

// Subpackage computes the run_exports constraint for a package at the given
// resolved version: ">=VERSION,<NEXT" where NEXT is VERSION truncated to the
// precision of maxPin and bumped.  maxPin is spelled "x", "x.x", "x.x.x", ...;
// it defaults to "x.x" when empty.
//
// Subpackage("bob.db.atnt", "1.2.3", "x.x") == "bob.db.atnt >=1.2.3,<1.3".
func Subpackage(name, version, maxPin string) (string, error) {
	if maxPin == "" {
		maxPin = "x.x"
	}
	segments := strings.Split(maxPin, ".")
	for _, seg := range segments {
		if seg != "x" {
			return "", fmt.Errorf("pin.Subpackage: invalid max pin %q", maxPin)
		}
	}
	ver, err := ParseVersion(version)
	if err != nil {
		return "", fmt.Errorf("pin.Subpackage: %w", err)
	}
	upper := ver.Truncate(len(segments))
	if len(upper.Release) == 0 {
		return "", fmt.Errorf("pin.Subpackage: version %q has no release segments", version)
	}
	upper = upper.Bump()
	return fmt.Sprintf("%s >=%s,<%s", name, version, upper), nil
}
