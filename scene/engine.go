// Package scene ties the layout, the rotation scheduler and the connector
// animator together and draws the result.
//
// An Engine has two entry points, Frame and Rotate, and expects the host to
// call them from one goroutine: Frame once per drawn frame, Rotate from the
// periodic timer.
package scene

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/andareed/census-timeline/config"
	"github.com/andareed/census-timeline/connector"
	"github.com/andareed/census-timeline/dataset"
	"github.com/andareed/census-timeline/layout"
	"github.com/andareed/census-timeline/rotation"
	"github.com/andareed/census-timeline/timebin"
)

type Engine struct {
	layout *layout.Layout
	sched  *rotation.Scheduler
	anim   *connector.Animator
	log    zerolog.Logger

	frames int
	misses int
}

// NewEngine lays out ds and focuses the first group.
func NewEngine(ds dataset.Dataset, cfg config.Config, log zerolog.Logger) (*Engine, error) {
	bins, err := timebin.New(ds.Bounds)
	if err != nil {
		return nil, fmt.Errorf("bin boundaries: %w", err)
	}

	e := &Engine{
		layout: layout.Compute(ds, bins, cfg.LayoutOptions()),
		sched:  rotation.New(len(ds.Groups)),
		anim:   connector.NewAnimator(cfg.Steps(), cfg.Policy(), log),
		log:    log,
	}
	e.anim.OnRetire(func(k connector.Key) {
		e.log.Trace().Stringer("connector", k).Msg("retired")
	})

	e.log.Info().
		Int("years", len(e.layout.Years())).
		Int("groups", len(e.layout.Groups())).
		Int("nodes", e.layout.NodeCount()).
		Stringer("policy", cfg.Policy()).
		Msg("layout ready")
	e.log.Debug().Strs("order", ds.Names()).Msg("rotation order")

	if e.sched.Count() > 0 {
		e.focus(e.sched.Index())
	}
	return e, nil
}

func (e *Engine) focus(i int) {
	g := e.layout.Group(i)
	e.misses += len(e.anim.Focus(g, e.layout))
}

// Frame advances every connector by one render tick and returns how many
// were retired.
func (e *Engine) Frame() int {
	e.frames++
	return e.anim.Tick()
}

// Rotate moves the focus to the next group. It reports false once the
// scheduler has been stopped.
func (e *Engine) Rotate() (int, bool) {
	i, ok := e.sched.Tick()
	if !ok {
		return i, false
	}
	e.focus(i)
	e.log.Debug().Int("index", i).Str("group", e.layout.Group(i).Name).Msg("rotate")
	return i, true
}

// Stop halts rotation. Drawn state is left as it is.
func (e *Engine) Stop() { e.sched.Stop() }

func (e *Engine) Layout() *layout.Layout { return e.layout }

func (e *Engine) Scheduler() *rotation.Scheduler { return e.sched }

func (e *Engine) Connectors() []connector.Connector { return e.anim.Connectors() }

func (e *Engine) Policy() connector.Policy { return e.anim.Policy() }

// Focused returns the group in focus, ok is false for an empty dataset.
func (e *Engine) Focused() (layout.GroupNodes, bool) {
	if e.sched.Count() == 0 {
		return layout.GroupNodes{}, false
	}
	return e.layout.Group(e.sched.Index()), true
}

// Frames counts calls to Frame.
func (e *Engine) Frames() int { return e.frames }

// Misses counts connectors skipped because their year had no node.
func (e *Engine) Misses() int { return e.misses }

func (e *Engine) Retired() int { return e.anim.Retired() }

// Settled reports whether the focused group's connectors are fully grown
// and nothing is left fading.
func (e *Engine) Settled() bool { return e.anim.Settled() }

// Summary is a one-line text form of the focused group, e.g.
// "hindu [1910, 1950): 1920 1930 1940".
func (e *Engine) Summary() string {
	g, ok := e.Focused()
	if !ok {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(g.Name)
	for _, b := range g.Bins {
		sb.WriteString(" ")
		sb.WriteString(b.Bin.String())
		sb.WriteString(":")
		for _, y := range b.Years {
			sb.WriteString(" ")
			sb.WriteString(strconv.Itoa(y))
		}
	}
	return sb.String()
}
