package dataset

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCensusShape(t *testing.T) {
	ds := Census()

	assert.Len(t, ds.Years, 24)
	assert.Equal(t, 1790, ds.Years[0])
	assert.Equal(t, 2020, ds.Years[len(ds.Years)-1])
	assert.Equal(t, []int{1790, 1830, 1870, 1910, 1950, 1990, 2030}, ds.Bounds)
	require.Len(t, ds.Groups, 31)
	assert.Equal(t, "white", ds.Groups[0].Name)
	assert.Equal(t, "black", ds.Groups[len(ds.Groups)-1].Name)
}

func TestCensusGroupYearsAscending(t *testing.T) {
	for _, g := range Census().Groups {
		assert.Truef(t, sort.IntsAreSorted(g.Years), "%s years not ascending", g.Name)
		assert.NotEmptyf(t, g.Years, "%s has no years", g.Name)
	}
}

func TestCensusReturnsCopies(t *testing.T) {
	a := Census()
	a.Years[0] = 0
	a.Groups[0].Years[0] = 0
	a.Groups[0].Name = "changed"

	b := Census()
	assert.Equal(t, 1790, b.Years[0])
	assert.Equal(t, 1790, b.Groups[0].Years[0])
	assert.Equal(t, "white", b.Groups[0].Name)
}

func TestNames(t *testing.T) {
	names := Census().Names()
	assert.Len(t, names, 31)
	assert.Equal(t, "blackorMixed", names[1])
}
