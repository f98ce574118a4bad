package easing

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveUnknownName(t *testing.T) {
	_, err := Resolve("nope")
	assert.Error(t, err)

	_, err = Resolve("")
	assert.Error(t, err)
}

func TestCatalogCoversStandardFamilies(t *testing.T) {
	names := Names()
	assert.GreaterOrEqual(t, len(names), 21)
	assert.Contains(t, names, "linear")
	for _, family := range []string{"Quad", "Cubic", "Quart", "Quint", "Sine", "Expo", "Circ"} {
		for _, variant := range []string{"easeIn", "easeOut", "easeInOut"} {
			assert.Contains(t, names, variant+family)
		}
	}
}

func TestNamesAreSortedCopies(t *testing.T) {
	names := Names()
	assert.True(t, sort.StringsAreSorted(names))

	names[0] = "mutated"
	assert.NotEqual(t, names[0], Names()[0], "Names must hand out copies")
}

func TestEveryCurveHitsItsEndpoints(t *testing.T) {
	for _, name := range Names() {
		fn, err := Resolve(name)
		require.NoError(t, err)
		assert.InDelta(t, 0, fn(0), 1e-9, name)
		assert.InDelta(t, 1, fn(1), 1e-9, name)
	}
}

func TestLinearIsIdentity(t *testing.T) {
	fn, err := Resolve("linear")
	require.NoError(t, err)
	assert.Equal(t, 0.0, fn(0))
	assert.Equal(t, 0.25, fn(0.25))
	assert.Equal(t, 1.0, fn(1))
}

// The expo curves are special-cased at the domain endpoints; anything
// other than exact 0 and 1 there would leave tapered tips open.
func TestExpoEndpointsAreExact(t *testing.T) {
	for _, name := range []string{"easeInExpo", "easeOutExpo", "easeInOutExpo"} {
		fn, err := Resolve(name)
		require.NoError(t, err)
		assert.Equal(t, 0.0, fn(0), name)
		assert.Equal(t, 1.0, fn(1), name)
	}
}
