// Package connector animates the lines joining a focused group's bin nodes
// to the year nodes they were recorded in.
//
// A connector grows from its bin node towards its year node, holds at full
// length, fades out once its group loses focus and is then removed:
//
//	Growing -> Complete -> FadingOut -> Removed
//
// Advance is a pure step function; Animator owns the live set and is the
// only thing that mutates it.
package connector

import (
	"fmt"
	"math"

	"cogentcore.org/core/math32"
)

type State int

const (
	Growing State = iota
	Complete
	FadingOut
	Removed
)

func (s State) String() string {
	switch s {
	case Growing:
		return "growing"
	case Complete:
		return "complete"
	case FadingOut:
		return "fading"
	case Removed:
		return "removed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

const (
	DefaultGrowStep = 0.02
	DefaultFadeStep = 0.03
)

// Steps are the per-frame increments of progress and opacity.
type Steps struct {
	Grow float64
	Fade float64
}

func DefaultSteps() Steps {
	return Steps{Grow: DefaultGrowStep, Fade: DefaultFadeStep}
}

// TicksToGrow is the number of frames a connector needs to reach full length.
func (s Steps) TicksToGrow() int { return ticksFor(s.Grow) }

// TicksToFade is the number of frames a fading connector lives before it is
// removed.
func (s Steps) TicksToFade() int { return ticksFor(s.Fade) }

// ticksFor counts whole steps to cover [0, 1]. The epsilon absorbs the
// representation error of steps like 0.02 whose inverse is an integer.
// Non-positive steps never finish.
func ticksFor(step float64) int {
	if step <= 0 {
		return 0
	}
	return int(math.Ceil(1/step - 1e-9))
}

// Key identifies a connector by focus round, group index, bin index and
// target year. Round tells apart the connectors of a group that is focused
// again while its previous ones are still fading.
type Key struct {
	Round int
	Group int
	Bin   int
	Year  int
}

func (k Key) String() string {
	return fmt.Sprintf("g%d/b%d/%d#%d", k.Group, k.Bin, k.Year, k.Round)
}

type Connector struct {
	Key      Key
	Source   math32.Vector3
	Target   math32.Vector3
	Progress float32
	Opacity  float32
	State    State

	grown int
	faded int
}

// New returns a growing connector of zero length at source.
func New(key Key, source, target math32.Vector3) Connector {
	return Connector{
		Key:     key,
		Source:  source,
		Target:  target,
		Opacity: 1,
		State:   Growing,
	}
}

// End is the moving endpoint, source + (target - source) * progress. The
// other endpoint is always Source.
func (c Connector) End() math32.Vector3 {
	return c.Source.Lerp(c.Target, c.Progress)
}

// FadeOut starts fading a growing or complete connector. A growing one keeps
// the length it has reached.
func (c Connector) FadeOut() Connector {
	if c.State == Growing || c.State == Complete {
		c.State = FadingOut
	}
	return c
}

// Visible reports whether the connector should be drawn.
func (c Connector) Visible() bool {
	return c.State != Removed && c.Opacity > 0
}

// Advance steps c by one frame. retired is true only on the frame the
// connector's opacity first reaches zero; from then on c is Removed and
// Advance leaves it unchanged.
func Advance(c Connector, s Steps) (next Connector, retired bool) {
	switch c.State {
	case Growing:
		need := ticksFor(s.Grow)
		if need == 0 {
			return c, false
		}
		c.grown++
		if c.grown >= need {
			c.Progress = 1
			c.State = Complete
			return c, false
		}
		c.Progress = math32.Min(float32(float64(c.grown)*s.Grow), 1)
	case FadingOut:
		need := ticksFor(s.Fade)
		if need == 0 {
			return c, false
		}
		c.faded++
		if c.faded >= need {
			c.Opacity = 0
			c.State = Removed
			return c, true
		}
		c.Opacity = math32.Max(float32(1-float64(c.faded)*s.Fade), 0)
	}
	return c, false
}
