package pin

import (
	"fmt"
	"strconv"
	"strings"
)

// A Version is a dotted-integer release identifier, optionally followed by a
// tail such as "a1", ".post2", or ".dev3".  The tail is carried verbatim and
// only participates in comparison as a tie-breaker; this is deliberately a
// small subset of what full Python version semantics allow, because pinning
// tables for dataset packages only ever contain plain releases.
type Version struct {
	Release []int
	Tail    string
}

// ParseVersion parses a string to a Version object.
func ParseVersion(str string) (*Version, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return nil, fmt.Errorf("pin.ParseVersion: empty version")
	}
	ver := &Version{}
	rest := str
	for {
		i := 0
		for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
			i++
		}
		if i == 0 {
			return nil, fmt.Errorf("pin.ParseVersion: %q: release segment is not a number", str)
		}
		n, err := strconv.Atoi(rest[:i])
		if err != nil {
			return nil, fmt.Errorf("pin.ParseVersion: %q: %w", str, err)
		}
		ver.Release = append(ver.Release, n)
		rest = rest[i:]
		if !strings.HasPrefix(rest, ".") {
			break
		}
		if len(rest) < 2 || rest[1] < '0' || rest[1] > '9' {
			// Not another release segment; ".post1" and ".dev2" land here.
			break
		}
		rest = rest[1:]
	}
	if !validTail(rest) {
		return nil, fmt.Errorf("pin.ParseVersion: %q: invalid suffix %q", str, rest)
	}
	ver.Tail = rest
	return ver, nil
}

// validTail accepts the empty string or an optional separator followed by a
// letter-led label, e.g. "a1", ".post2", ".dev3", "-rc1".
func validTail(tail string) bool {
	if tail == "" {
		return true
	}
	if strings.ContainsAny(tail[:1], "._-") {
		tail = tail[1:]
	}
	if tail == "" {
		return false
	}
	if !isLetter(tail[0]) {
		return false
	}
	for i := 1; i < len(tail); i++ {
		c := tail[i]
		if !isLetter(c) && (c < '0' || c > '9') && c != '.' && c != '_' && c != '-' {
			return false
		}
	}
	return !strings.Contains(tail, "..")
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// String implements fmt.Stringer.
func (ver Version) String() string {
	segs := make([]string, 0, len(ver.Release))
	for _, n := range ver.Release {
		segs = append(segs, strconv.Itoa(n))
	}
	return strings.Join(segs, ".") + ver.Tail
}

// Truncate returns a copy of the version with at most n release segments and
// no tail.
func (ver Version) Truncate(n int) Version {
	if n > len(ver.Release) {
		n = len(ver.Release)
	}
	release := make([]int, n)
	copy(release, ver.Release[:n])
	return Version{Release: release}
}

// Bump returns a copy of the version with the final release segment
// incremented and the tail dropped.
func (ver Version) Bump() Version {
	release := make([]int, len(ver.Release))
	copy(release, ver.Release)
	release[len(release)-1]++
	return Version{Release: release}
}

// Cmp returns -1, 0, or 1 depending on whether ver sorts before, equal to, or
// after other.  Missing release segments compare as zero, so "1.2" == "1.2.0".
func (ver Version) Cmp(other Version) int {
	n := len(ver.Release)
	if len(other.Release) > n {
		n = len(other.Release)
	}
	for i := 0; i < n; i++ {
		var a, b int
		if i < len(ver.Release) {
			a = ver.Release[i]
		}
		if i < len(other.Release) {
			b = other.Release[i]
		}
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
	}
	return strings.Compare(ver.Tail, other.Tail)
}
