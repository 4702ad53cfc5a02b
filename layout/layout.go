// Package layout places the year layer and the group/bin layer of the
// timeline graph in scene space.
//
// Positions depend only on counts and indices, never on which group is in
// focus, so a Layout is computed once per session and shared read-only by
// every frame.
package layout

import (
	"cogentcore.org/core/math32"

	"github.com/andareed/census-timeline/dataset"
	"github.com/andareed/census-timeline/timebin"
)

const (
	DefaultSpan        = 69
	DefaultYearLayerY  = -7.5
	DefaultGroupLayerY = 7.5
	DefaultBinStepZ    = 1.2
)

// Options holds the placement constants.
type Options struct {
	Span        float32 // x extent shared by both layers
	YearLayerY  float32
	GroupLayerY float32
	BinStepZ    float32
}

func Default() Options {
	return Options{
		Span:        DefaultSpan,
		YearLayerY:  DefaultYearLayerY,
		GroupLayerY: DefaultGroupLayerY,
		BinStepZ:    DefaultBinStepZ,
	}
}

// Gap is the uniform spacing of n items across span. Zero or one item have
// no spacing, so a lone item sits at offset 0.
func Gap(n int, span float32) float32 {
	if n <= 1 {
		return 0
	}
	return span / float32(n-1)
}

type YearNode struct {
	Year int
	Pos  math32.Vector3
}

// BinNode is a group's node for one non-empty time bin.
type BinNode struct {
	Group      string
	GroupIndex int
	BinIndex   int
	Bin        timebin.Bin
	Pos        math32.Vector3
	Years      []int
}

// GroupNodes is one group and its renderable bin nodes, in bin order.
type GroupNodes struct {
	Name  string
	Index int
	Bins  []BinNode
}

// Layout is the cached node placement for a dataset.
type Layout struct {
	years  []YearNode
	groups []GroupNodes
	byYear map[int]int
	bounds math32.Box3
}

// Compute lays out ds. Groups get one x slot each, shared by all their bins;
// bins of a group are separated along z by their bin index.
func Compute(ds dataset.Dataset, bins timebin.Bins, opt Options) *Layout {
	l := &Layout{
		years:  make([]YearNode, len(ds.Years)),
		groups: make([]GroupNodes, len(ds.Groups)),
		byYear: make(map[int]int, len(ds.Years)),
		bounds: math32.B3Empty(),
	}

	yearGap := Gap(len(ds.Years), opt.Span)
	for i, y := range ds.Years {
		pos := math32.Vec3(float32(i)*yearGap, opt.YearLayerY, 0)
		l.years[i] = YearNode{Year: y, Pos: pos}
		if _, dup := l.byYear[y]; !dup {
			l.byYear[y] = i
		}
		l.bounds.ExpandByPoint(pos)
	}

	groupGap := Gap(len(ds.Groups), opt.Span)
	for gi, g := range ds.Groups {
		x := float32(gi) * groupGap
		gn := GroupNodes{Name: g.Name, Index: gi}
		for _, b := range bins.Classify(g.Years) {
			pos := math32.Vec3(x, opt.GroupLayerY, float32(b.Index)*opt.BinStepZ)
			gn.Bins = append(gn.Bins, BinNode{
				Group:      g.Name,
				GroupIndex: gi,
				BinIndex:   b.Index,
				Bin:        b.Bin,
				Pos:        pos,
				Years:      b.Years,
			})
			l.bounds.ExpandByPoint(pos)
		}
		l.groups[gi] = gn
	}
	return l
}

func (l *Layout) Years() []YearNode { return l.years }

func (l *Layout) Groups() []GroupNodes { return l.groups }

func (l *Layout) Group(i int) GroupNodes { return l.groups[i] }

// YearPosition looks up the node of year. ok is false when the year has no
// node, which callers treat as a data inconsistency rather than a failure.
func (l *Layout) YearPosition(year int) (math32.Vector3, bool) {
	i, ok := l.byYear[year]
	if !ok {
		return math32.Vector3{}, false
	}
	return l.years[i].Pos, true
}

// Bounds is the axis aligned box around every node. It is empty when there
// are no nodes.
func (l *Layout) Bounds() math32.Box3 { return l.bounds }

// NodeCount is the number of year nodes plus renderable bin nodes.
func (l *Layout) NodeCount() int {
	n := len(l.years)
	for _, g := range l.groups {
		n += len(g.Bins)
	}
	return n
}
