package pin_test

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bob-devel/recipetool/pkg/pin"
	"github.com/bob-devel/recipetool/pkg/testutil"
)

func TestParseVersion(t *testing.T) {
	t.Parallel()
	testcases := map[string]*pin.Version{
		"0.0.1":     {Release: []int{0, 0, 1}},
		"1.2.3":     {Release: []int{1, 2, 3}},
		"2012.10":   {Release: []int{2012, 10}},
		"41.0.1":    {Release: []int{41, 0, 1}},
		"1.0a1":     {Release: []int{1, 0}, Tail: "a1"},
		"1.0.post2": {Release: []int{1, 0}, Tail: ".post2"},
		"1.0.dev3":  {Release: []int{1, 0}, Tail: ".dev3"},
		" 3.6 ":     {Release: []int{3, 6}},
		"":          nil,
		"x.y":       nil,
		".1":        nil,
		"1..2":      nil,
	}
	for input, exp := range testcases {
		input := input
		exp := exp
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			act, err := pin.ParseVersion(input)
			if exp == nil {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, exp, act)
		})
	}
}

func TestVersionRoundTrip(t *testing.T) {
	t.Parallel()
	testutil.QuickCheck(t,
		func(a, b, c uint8) bool {
			orig := pin.Version{Release: []int{int(a), int(b), int(c)}}
			reparsed, err := pin.ParseVersion(orig.String())
			if err != nil {
				return false
			}
			return orig.Cmp(*reparsed) == 0
		},
		quick.Config{},
		[]interface{}{uint8(0), uint8(0), uint8(1)},
		[]interface{}{uint8(1), uint8(2), uint8(3)},
	)
}

func TestVersionCmp(t *testing.T) {
	t.Parallel()
	le := func(a, b string) bool {
		av, err := pin.ParseVersion(a)
		require.NoError(t, err)
		bv, err := pin.ParseVersion(b)
		require.NoError(t, err)
		return av.Cmp(*bv) < 0
	}
	assert.True(t, le("0.9", "0.10"))
	assert.True(t, le("1.2.3", "1.3"))
	assert.True(t, le("1.3", "2.0"))
	assert.False(t, le("1.2.0", "1.2"))
	assert.False(t, le("1.2", "1.2.0"))
}
