package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type clearNoticeMsg struct{ id int }

const noticeDuration = 2 * time.Second

// noticeKind says what a footer notice is about.
type noticeKind int

const (
	noticePlain noticeKind = iota
	noticeRotation
	noticeDone
	noticeSkipped
	noticeFailed
)

var noticeMarks = map[noticeKind]struct {
	mark  string
	style lipgloss.Style
}{
	noticeRotation: {"⟳", lipgloss.NewStyle().Foreground(lipgloss.Color(focusFGColor))},
	noticeDone:     {"✓", lipgloss.NewStyle().Foreground(lipgloss.Color("#7bd88f"))},
	noticeSkipped:  {"!", lipgloss.NewStyle().Foreground(lipgloss.Color("#ffd866"))},
	noticeFailed:   {"×", lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6188"))},
}

func noticeText(msg string, kind noticeKind) string {
	if msg == "" {
		return ""
	}
	m, ok := noticeMarks[kind]
	if !ok {
		return msg
	}
	return m.style.Render(m.mark) + " " + msg
}

// startNotice shows msg for d. Each notice gets a fresh id so the clear
// scheduled by an earlier one is ignored.
func (m *model) startNotice(msg string, kind noticeKind, d time.Duration) tea.Cmd {
	m.ui.noticeMsg = msg
	m.ui.noticeKind = kind
	m.ui.noticeSeq++
	id := m.ui.noticeSeq
	return tea.Tick(d, func(time.Time) tea.Msg { return clearNoticeMsg{id: id} })
}

func (m *model) clearNotice(id int) {
	if id != m.ui.noticeSeq {
		return
	}
	m.ui.noticeMsg = ""
	m.ui.noticeKind = noticePlain
}
