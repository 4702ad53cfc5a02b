// Package timebin partitions calendar years into contiguous half-open bins.
package timebin

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrTooFewBounds = errors.New("timebin: need at least two boundaries")
	ErrUnordered    = errors.New("timebin: boundaries must be strictly increasing")
)

// Bin is the half-open year range [Start, End).
type Bin struct {
	Start int
	End   int
}

func (b Bin) Contains(year int) bool {
	return year >= b.Start && year < b.End
}

func (b Bin) String() string {
	return fmt.Sprintf("[%d, %d)", b.Start, b.End)
}

// Binned is the slice of one group's years that fall inside a bin.
type Binned struct {
	Index int
	Bin   Bin
	Years []int
}

// Bins is an ordered set of boundaries. The last boundary closes the final
// bin and never starts one.
type Bins struct {
	bounds []int
}

// New validates bounds and copies them.
func New(bounds []int) (Bins, error) {
	if len(bounds) < 2 {
		return Bins{}, fmt.Errorf("%w: got %d", ErrTooFewBounds, len(bounds))
	}
	for i := 1; i < len(bounds); i++ {
		if bounds[i] <= bounds[i-1] {
			return Bins{}, fmt.Errorf("%w: bound %d (%d) <= bound %d (%d)", ErrUnordered, i, bounds[i], i-1, bounds[i-1])
		}
	}
	return Bins{bounds: append([]int(nil), bounds...)}, nil
}

// Len is the number of real bins, one less than the number of boundaries.
func (b Bins) Len() int {
	if len(b.bounds) == 0 {
		return 0
	}
	return len(b.bounds) - 1
}

func (b Bins) At(i int) Bin {
	return Bin{Start: b.bounds[i], End: b.bounds[i+1]}
}

func (b Bins) Bounds() []int {
	return append([]int(nil), b.bounds...)
}

// Index finds the bin holding year. A year equal to a boundary belongs to
// the bin that boundary starts. Years before the first boundary or at/after
// the sentinel are in no bin.
func (b Bins) Index(year int) (int, bool) {
	n := b.Len()
	if n == 0 || year < b.bounds[0] || year >= b.bounds[n] {
		return 0, false
	}
	// first boundary strictly greater than year, minus one
	i := sort.SearchInts(b.bounds, year+1) - 1
	return i, true
}

// Classify splits years into bins. Only non-empty bins are returned, in bin
// order, and each bin keeps the input order of its years. Years outside
// every bin are dropped.
func (b Bins) Classify(years []int) []Binned {
	if b.Len() == 0 || len(years) == 0 {
		return nil
	}
	buckets := make([][]int, b.Len())
	for _, y := range years {
		if i, ok := b.Index(y); ok {
			buckets[i] = append(buckets[i], y)
		}
	}

	var out []Binned
	for i, ys := range buckets {
		if len(ys) == 0 {
			continue
		}
		out = append(out, Binned{Index: i, Bin: b.At(i), Years: ys})
	}
	return out
}
