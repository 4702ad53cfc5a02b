package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/andareed/census-timeline/scene"
)

func (m *model) headerView(width int) string {
	title := titleStyle.Render("census timeline")

	g, ok := m.engine.Focused()
	if !ok {
		return title
	}
	sched := m.engine.Scheduler()
	pos := fmt.Sprintf(" %d/%d ", sched.Index()+1, sched.Count())

	room := width - lipgloss.Width(title) - lipgloss.Width(pos) - 3
	if room < 0 {
		room = 0
	}
	name := truncate.StringWithTail(g.Name, uint(room), "…")
	return title + " · " + focusStyle.Render(name) + statusStyle.Render(pos)
}

func (m *model) footerView(width int) string {
	left := ""
	if m.engine.Scheduler().Stopped() {
		left = pausedPill.Render("PAUSED") + " "
	}
	if m.ui.noticeMsg != "" {
		left += noticeText(m.ui.noticeMsg, m.ui.noticeKind)
	} else {
		left += truncate.StringWithTail(m.engine.Summary(), uint(max(width/2, 0)), "…")
	}

	right := m.help.View(Keys)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return barStyle.Width(width).Render(truncate.String(left, uint(max(width, 0))))
	}
	return barStyle.Width(width).Render(statusStyle.Render(left) + strings.Repeat(" ", gap) + right)
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}
	if m.quitting {
		return ""
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return lipgloss.Place(
			m.terminalWidth, m.terminalHeight,
			lipgloss.Center, lipgloss.Center,
			m.activeDialog.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
		)
	}

	scene.Compose(m.canvas, m.engine, m.camera, m.palette)
	bordered := sceneStyle.Render(m.canvas.Render())
	contentW := lipgloss.Width(bordered)

	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(contentW),
		bordered,
		m.footerView(contentW),
	))
}
