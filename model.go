package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/census-timeline/clipboard"
	"github.com/andareed/census-timeline/config"
	"github.com/andareed/census-timeline/dialogs"
	"github.com/andareed/census-timeline/logging"
	"github.com/andareed/census-timeline/scene"
)

const (
	orbitStep = 0.1
	tiltStep  = 0.08
	zoomStep  = 1.15

	// rows taken by the title, the scene border and the footer
	chromeRows = 5
	chromeCols = 4
)

// frameMsg is the render loop tick.
type frameMsg time.Time

// rotateMsg is the focus timer. gen ties it to the scheduler arming that
// scheduled it.
type rotateMsg struct{ gen int }

type model struct {
	engine  *scene.Engine
	cfg     config.Config
	palette scene.Palette
	camera  scene.Camera
	canvas  *scene.Canvas

	help         help.Model
	activeDialog dialogs.Dialog
	ui           uiState

	copy func(string) error

	ready          bool
	quitting       bool
	terminalWidth  int
	terminalHeight int
}

func newModel(e *scene.Engine, cfg config.Config) (*model, error) {
	pal, err := scene.ParsePalette(cfg.Palette)
	if err != nil {
		return nil, err
	}
	return &model{
		engine:  e,
		cfg:     cfg,
		palette: pal,
		camera:  scene.FrameBox(e.Layout().Bounds()),
		canvas:  scene.NewCanvas(0, 0, pal.Background),
		help:    help.New(),
		copy:    clipboard.Copy,
	}, nil
}

func (m *model) Init() tea.Cmd {
	logging.Infof("census-timeline: Initialised")
	return tea.Batch(m.frameTick(), m.rotateTick())
}

func (m *model) frameTick() tea.Cmd {
	return tea.Tick(m.cfg.FrameInterval(), func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m *model) rotateTick() tea.Cmd {
	gen := m.engine.Scheduler().Generation()
	return tea.Tick(m.cfg.Animation.RotateEvery.Duration, func(time.Time) tea.Msg { return rotateMsg{gen: gen} })
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if m.quitting {
			return m, nil
		}
		m.engine.Frame()
		return m, m.frameTick()

	case rotateMsg:
		// a stale or stopped timer is not rescheduled, which releases it
		if !m.engine.Scheduler().Current(msg.gen) {
			logging.Debugf("dropping rotate tick gen=%d", msg.gen)
			return m, nil
		}
		m.engine.Rotate()
		var cmds []tea.Cmd
		cmds = append(cmds, m.rotateTick())
		if n := m.engine.Misses(); n != m.ui.lastMisses {
			m.ui.lastMisses = n
			cmds = append(cmds, m.startNotice(fmt.Sprintf("%d connector(s) skipped: year has no node", n), noticeSkipped, noticeDuration))
		}
		return m, tea.Batch(cmds...)

	case clearNoticeMsg:
		m.clearNotice(msg.id)
		return m, nil

	case tea.WindowSizeMsg:
		m.terminalWidth, m.terminalHeight = msg.Width, msg.Height
		m.canvas.Resize(msg.Width-chromeCols, msg.Height-chromeRows)
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		if m.activeDialog != nil && m.activeDialog.IsVisible() {
			var cmd tea.Cmd
			m.activeDialog, cmd = m.activeDialog.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		m.quitting = true
		m.engine.Stop()
		logging.Infof("census-timeline: quitting after %d frames", m.engine.Frames())
		return m, tea.Quit

	case key.Matches(msg, Keys.Pause):
		return m, m.togglePause()

	case key.Matches(msg, Keys.OrbitLeft):
		m.camera.Orbit(-orbitStep, 0)
	case key.Matches(msg, Keys.OrbitRight):
		m.camera.Orbit(orbitStep, 0)
	case key.Matches(msg, Keys.OrbitUp):
		m.camera.Orbit(0, tiltStep)
	case key.Matches(msg, Keys.OrbitDown):
		m.camera.Orbit(0, -tiltStep)
	case key.Matches(msg, Keys.ZoomIn):
		m.camera.Dolly(zoomStep)
	case key.Matches(msg, Keys.ZoomOut):
		m.camera.Dolly(1 / zoomStep)
	case key.Matches(msg, Keys.ResetView):
		m.camera = scene.FrameBox(m.engine.Layout().Bounds())

	case key.Matches(msg, Keys.CopyFocus):
		summary := m.engine.Summary()
		if err := m.copy(summary); err != nil {
			logging.Warnf("copy focus failed: %v", err)
			return m, m.startNotice("Copy failed: "+err.Error(), noticeFailed, noticeDuration)
		}
		return m, m.startNotice("Copied focused group", noticeDone, noticeDuration)

	case key.Matches(msg, Keys.OpenHelp):
		m.activeDialog = dialogs.NewHelpDialog(Keys.Legend(), m.sessionFacts()...)
	}
	return m, nil
}

// togglePause stops or re-arms the rotation timer. Frames keep running so
// connectors finish growing or fading while paused.
func (m *model) togglePause() tea.Cmd {
	sched := m.engine.Scheduler()
	if sched.Stopped() {
		sched.Resume()
		logging.Infof("rotation resumed gen=%d", sched.Generation())
		return tea.Batch(m.rotateTick(), m.startNotice("Rotation resumed", noticeRotation, noticeDuration))
	}
	sched.Stop()
	logging.Infof("rotation paused at index %d", sched.Index())
	return m.startNotice("Rotation paused", noticeRotation, noticeDuration)
}

func (m *model) sessionFacts() []string {
	l := m.engine.Layout()
	return []string{
		fmt.Sprintf("years %d · groups %d · nodes %d", len(l.Years()), len(l.Groups()), l.NodeCount()),
		fmt.Sprintf("rotate every %s · policy %s", m.cfg.Animation.RotateEvery.Duration, m.engine.Policy()),
		fmt.Sprintf("connectors live %d (%s) · retired %d · skipped %d",
			len(m.engine.Connectors()), settledWord(m.engine.Settled()), m.engine.Retired(), m.engine.Misses()),
	}
}

func settledWord(settled bool) string {
	if settled {
		return "settled"
	}
	return "animating"
}
