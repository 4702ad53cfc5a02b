package layout

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andareed/census-timeline/dataset"
	"github.com/andareed/census-timeline/timebin"
)

func censusLayout(t *testing.T) *Layout {
	t.Helper()
	ds := dataset.Census()
	bins, err := timebin.New(ds.Bounds)
	require.NoError(t, err)
	return Compute(ds, bins, Default())
}

func TestGap(t *testing.T) {
	assert.Equal(t, float32(0), Gap(0, 69))
	assert.Equal(t, float32(0), Gap(1, 69))
	assert.Equal(t, float32(69), Gap(2, 69))
	assert.Equal(t, float32(3), Gap(24, 69))
	assert.InDelta(t, 69.0/30.0, Gap(31, 69), 1e-5)
	assert.Equal(t, float32(0), Gap(-3, 69))
}

func TestYearLayer(t *testing.T) {
	l := censusLayout(t)
	years := l.Years()
	require.Len(t, years, 24)

	assert.Equal(t, math32.Vec3(0, -7.5, 0), years[0].Pos)
	assert.Equal(t, math32.Vec3(69, -7.5, 0), years[23].Pos)
	for i := 1; i < len(years); i++ {
		assert.Greater(t, years[i].Pos.X, years[i-1].Pos.X)
		assert.Equal(t, float32(-7.5), years[i].Pos.Y)
		assert.Equal(t, float32(0), years[i].Pos.Z)
	}

	pos, ok := l.YearPosition(1850)
	require.True(t, ok)
	assert.Equal(t, float32(18), pos.X)

	_, ok = l.YearPosition(1795)
	assert.False(t, ok)
}

func TestGroupLayer(t *testing.T) {
	l := censusLayout(t)
	groups := l.Groups()
	require.Len(t, groups, 31)

	white := l.Group(0)
	assert.Equal(t, "white", white.Name)
	require.Len(t, white.Bins, 6)
	for i, b := range white.Bins {
		assert.Equal(t, i, b.BinIndex)
		assert.Equal(t, float32(0), b.Pos.X)
		assert.Equal(t, float32(7.5), b.Pos.Y)
		assert.InDelta(t, float32(i)*1.2, b.Pos.Z, 1e-5)
	}

	mixed := l.Group(1)
	require.Len(t, mixed.Bins, 3)
	assert.Equal(t, 1, mixed.Bins[0].BinIndex)
	assert.Equal(t, []int{1850, 1860}, mixed.Bins[0].Years)
	assert.Equal(t, 2, mixed.Bins[1].BinIndex)
	assert.Equal(t, []int{1870, 1880, 1890}, mixed.Bins[1].Years)
	assert.Equal(t, []int{1910, 1920}, mixed.Bins[2].Years)
	assert.InDelta(t, 69.0/30.0, mixed.Bins[0].Pos.X, 1e-5)
	assert.InDelta(t, 1.2, mixed.Bins[0].Pos.Z, 1e-5)

	last := l.Group(30)
	assert.InDelta(t, 69, last.Bins[0].Pos.X, 1e-4)
}

func TestLayersNeverCollide(t *testing.T) {
	l := censusLayout(t)
	for _, g := range l.Groups() {
		for _, b := range g.Bins {
			for _, y := range l.Years() {
				assert.NotEqual(t, y.Pos, b.Pos)
			}
		}
	}
}

func TestComputeDeterministic(t *testing.T) {
	a := censusLayout(t)
	b := censusLayout(t)
	assert.Equal(t, a.Years(), b.Years())
	assert.Equal(t, a.Groups(), b.Groups())
	assert.Equal(t, a.Bounds(), b.Bounds())
}

func TestDegenerateCounts(t *testing.T) {
	bins, err := timebin.New([]int{1900, 2000})
	require.NoError(t, err)

	l := Compute(dataset.Dataset{
		Years:  []int{1950},
		Groups: []dataset.Group{{Name: "solo", Years: []int{1950}}},
	}, bins, Default())

	assert.Equal(t, math32.Vec3(0, -7.5, 0), l.Years()[0].Pos)
	require.Len(t, l.Group(0).Bins, 1)
	assert.Equal(t, math32.Vec3(0, 7.5, 0), l.Group(0).Bins[0].Pos)
	assert.Equal(t, 2, l.NodeCount())

	empty := Compute(dataset.Dataset{}, bins, Default())
	assert.Empty(t, empty.Years())
	assert.True(t, empty.Bounds().IsEmpty())
}

func TestBounds(t *testing.T) {
	b := censusLayout(t).Bounds()
	assert.Equal(t, float32(0), b.Min.X)
	assert.InDelta(t, 69, b.Max.X, 1e-4)
	assert.Equal(t, float32(-7.5), b.Min.Y)
	assert.Equal(t, float32(7.5), b.Max.Y)
	assert.InDelta(t, 6, b.Max.Z, 1e-5)
}
