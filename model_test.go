package main

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andareed/census-timeline/config"
	"github.com/andareed/census-timeline/dataset"
	"github.com/andareed/census-timeline/scene"
)

func testModel(t *testing.T) *model {
	t.Helper()
	cfg := config.Default()
	e, err := scene.NewEngine(dataset.Census(), cfg, zerolog.Nop())
	require.NoError(t, err)
	m, err := newModel(e, cfg)
	require.NoError(t, err)
	m.copy = func(string) error { return nil }
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFrameMsgAdvancesAndReschedules(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(frameMsg(time.Now()))
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, m.engine.Frames())
}

func TestRotateMsgAdvancesFocus(t *testing.T) {
	m := testModel(t)
	gen := m.engine.Scheduler().Generation()

	_, cmd := m.Update(rotateMsg{gen: gen})
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, m.engine.Scheduler().Index())
}

func TestPauseDropsPendingTimer(t *testing.T) {
	m := testModel(t)
	gen := m.engine.Scheduler().Generation()

	m.Update(keyRunes("p"))
	assert.True(t, m.engine.Scheduler().Stopped())
	assert.Equal(t, "Rotation paused", m.ui.noticeMsg)

	_, cmd := m.Update(rotateMsg{gen: gen})
	assert.Nil(t, cmd, "a stopped timer must not be rescheduled")
	assert.Equal(t, 0, m.engine.Scheduler().Index())

	// resuming starts a new generation; the old tick stays dead
	m.Update(keyRunes("p"))
	assert.False(t, m.engine.Scheduler().Stopped())
	_, cmd = m.Update(rotateMsg{gen: gen})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.engine.Scheduler().Index())

	_, cmd = m.Update(rotateMsg{gen: m.engine.Scheduler().Generation()})
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, m.engine.Scheduler().Index())
}

func TestQuitStopsRotation(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.engine.Scheduler().Stopped())

	_, cmd = m.Update(frameMsg(time.Now()))
	assert.Nil(t, cmd)
	_, cmd = m.Update(rotateMsg{gen: m.engine.Scheduler().Generation()})
	assert.Nil(t, cmd)
	assert.Equal(t, "", m.View())
}

func TestCopyFocus(t *testing.T) {
	m := testModel(t)
	var got string
	m.copy = func(s string) error { got = s; return nil }

	m.Update(keyRunes("y"))
	assert.True(t, strings.HasPrefix(got, "white [1790, 1830): 1790 1800 1810 1820"))
	assert.Equal(t, noticeDone, m.ui.noticeKind)

	m.copy = func(string) error { return errors.New("no clipboard") }
	m.Update(keyRunes("y"))
	assert.Equal(t, noticeFailed, m.ui.noticeKind)
	assert.Contains(t, m.ui.noticeMsg, "no clipboard")
}

func TestNoticeClearsOnlyLatest(t *testing.T) {
	m := testModel(t)
	m.startNotice("first", noticeRotation, time.Second)
	old := m.ui.noticeSeq
	m.startNotice("second", noticeRotation, time.Second)

	m.Update(clearNoticeMsg{id: old})
	assert.Equal(t, "second", m.ui.noticeMsg)
	m.Update(clearNoticeMsg{id: m.ui.noticeSeq})
	assert.Empty(t, m.ui.noticeMsg)
	assert.Equal(t, noticePlain, m.ui.noticeKind)
}

func TestHelpDialogCapturesKeys(t *testing.T) {
	m := testModel(t)
	m.Update(keyRunes("?"))
	require.NotNil(t, m.activeDialog)
	assert.True(t, m.activeDialog.IsVisible())
	out := m.View()
	assert.Contains(t, out, "pause/resume rotation")
	assert.Contains(t, out, "connectors live 24 (animating)")

	// q closes the dialog rather than quitting
	m.Update(keyRunes("q"))
	assert.False(t, m.activeDialog.IsVisible())
	assert.False(t, m.quitting)
}

func TestCameraKeys(t *testing.T) {
	m := testModel(t)
	start := m.camera

	m.Update(keyRunes("l"))
	assert.Greater(t, m.camera.Yaw, start.Yaw)
	m.Update(keyRunes("k"))
	assert.Greater(t, m.camera.Pitch, start.Pitch)
	m.Update(keyRunes("+"))
	assert.Greater(t, m.camera.Zoom, start.Zoom)

	m.Update(keyRunes("r"))
	assert.Equal(t, start, m.camera)
}

func TestViewRendersScene(t *testing.T) {
	m := testModel(t)
	out := m.View()
	assert.Contains(t, out, "census timeline")
	assert.Contains(t, out, "white")
	assert.Contains(t, out, "●")

	fresh, err := newModel(m.engine, m.cfg)
	require.NoError(t, err)
	assert.Equal(t, "loading...", fresh.View())
}

func TestNewModelRejectsBadPalette(t *testing.T) {
	cfg := config.Default()
	cfg.Palette.Background = "dark"
	e, err := scene.NewEngine(dataset.Census(), cfg, zerolog.Nop())
	require.NoError(t, err)
	_, err = newModel(e, cfg)
	assert.Error(t, err)
}

func TestNoticeText(t *testing.T) {
	assert.Equal(t, "", noticeText("", noticeDone))
	assert.Equal(t, "plain", noticeText("plain", noticePlain))

	cases := map[noticeKind]string{
		noticeRotation: "⟳",
		noticeDone:     "✓",
		noticeSkipped:  "!",
		noticeFailed:   "×",
	}
	for kind, mark := range cases {
		got := noticeText("msg", kind)
		assert.Contains(t, got, mark)
		assert.True(t, strings.HasSuffix(got, " msg"), got)
	}
}
