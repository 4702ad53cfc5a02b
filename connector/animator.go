package connector

import (
	"fmt"
	"strings"

	"cogentcore.org/core/math32"
	"github.com/rs/zerolog"

	"github.com/andareed/census-timeline/layout"
	"github.com/andareed/census-timeline/timebin"
)

// Policy decides what happens to the previous group's connectors when the
// focus moves on.
type Policy int

const (
	// PolicyFade fades the old connectors out while the new ones grow.
	PolicyFade Policy = iota
	// PolicyReplace drops the old connectors at once, without retirement
	// notifications.
	PolicyReplace
)

func (p Policy) String() string {
	switch p {
	case PolicyFade:
		return "fade"
	case PolicyReplace:
		return "replace"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fade":
		return PolicyFade, nil
	case "replace":
		return PolicyReplace, nil
	default:
		return PolicyFade, fmt.Errorf("unknown rotation policy %q (want fade or replace)", s)
	}
}

// YearLookup resolves a year to its node position. *layout.Layout
// implements it.
type YearLookup interface {
	YearPosition(year int) (math32.Vector3, bool)
}

// Miss is a (bin, year) pair that names a year with no node.
type Miss struct {
	Group string
	Bin   timebin.Bin
	Year  int
}

type Animator struct {
	steps    Steps
	policy   Policy
	log      zerolog.Logger
	live     []Connector
	onRetire func(Key)
	retired  int
	focus    int
	round    int
}

// NewAnimator builds an animator with no live connectors.
func NewAnimator(steps Steps, policy Policy, log zerolog.Logger) *Animator {
	return &Animator{steps: steps, policy: policy, log: log, focus: -1}
}

// OnRetire registers fn to be called once for every connector that finishes
// fading out.
func (a *Animator) OnRetire(fn func(Key)) { a.onRetire = fn }

func (a *Animator) Policy() Policy { return a.policy }

// Focus hands the scene over to g. Superseded connectors are faded or
// dropped according to the policy, then one connector is created for every
// (bin, year) pair of g. Years without a node are skipped, logged and
// returned.
func (a *Animator) Focus(g layout.GroupNodes, years YearLookup) []Miss {
	switch a.policy {
	case PolicyReplace:
		clear(a.live)
		a.live = a.live[:0]
	default:
		for i := range a.live {
			a.live[i] = a.live[i].FadeOut()
		}
	}
	a.focus = g.Index
	a.round++

	var misses []Miss
	for _, b := range g.Bins {
		for _, y := range b.Years {
			target, ok := years.YearPosition(y)
			if !ok {
				a.log.Warn().
					Str("group", g.Name).
					Stringer("bin", b.Bin).
					Int("year", y).
					Msg("no year node for connector; skipping")
				misses = append(misses, Miss{Group: g.Name, Bin: b.Bin, Year: y})
				continue
			}
			a.live = append(a.live, New(Key{Round: a.round, Group: g.Index, Bin: b.BinIndex, Year: y}, b.Pos, target))
		}
	}
	a.log.Debug().Str("group", g.Name).Int("connectors", len(a.live)).Int("skipped", len(misses)).Msg("focus")
	return misses
}

// Tick advances every live connector by one frame and drops the ones that
// finished fading. It works in place and returns how many retired.
func (a *Animator) Tick() int {
	n, retired := 0, 0
	for _, c := range a.live {
		next, done := Advance(c, a.steps)
		if done {
			retired++
			if a.onRetire != nil {
				a.onRetire(next.Key)
			}
			continue
		}
		a.live[n] = next
		n++
	}
	clear(a.live[n:])
	a.live = a.live[:n]
	a.retired += retired
	return retired
}

// Connectors is the renderable set. The slice is reused by the next Tick or
// Focus; callers must not keep it.
func (a *Animator) Connectors() []Connector { return a.live }

// Focused is the group index last passed to Focus, or -1.
func (a *Animator) Focused() int { return a.focus }

// Round counts calls to Focus. Connectors created by the latest call carry
// it in their Key.
func (a *Animator) Round() int { return a.round }

// Retired counts connectors removed after fading since the animator was
// built.
func (a *Animator) Retired() int { return a.retired }

// Settled reports whether every connector of the focused group is at full
// length and nothing is fading.
func (a *Animator) Settled() bool {
	for _, c := range a.live {
		if c.State != Complete {
			return false
		}
	}
	return true
}
