package dialogs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Help shows the key bindings and a few lines about the running session.
type Help struct {
	visible  bool
	bindings []key.Binding
	facts    []string
}

// NewHelpDialog creates a visible help dialog. facts are extra lines shown
// under the bindings, e.g. the rotation period.
func NewHelpDialog(bindings []key.Binding, facts ...string) *Help {
	return &Help{
		visible:  true,
		bindings: bindings,
		facts:    facts,
	}
}

func (d *Help) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter", "esc", "?", "q":
			d.visible = false
		}
	}
	return d, nil
}

func (d *Help) View() string {
	if !d.visible {
		return ""
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("252")).
		BorderBackground(lipgloss.Color("236")).
		Padding(1, 2).
		Width(60)

	var lines []string
	for _, b := range d.bindings {
		h := b.Help()
		lines = append(lines, fmt.Sprintf("%-12s %s", h.Key, h.Desc))
	}
	if len(d.facts) > 0 {
		lines = append(lines, "")
		lines = append(lines, d.facts...)
	}

	hint := lipgloss.NewStyle().
		Faint(true).
		Render("enter/esc to return")

	return box.Render(strings.Join(lines, "\n") + "\n\n" + hint)
}

func (d *Help) Show()           { d.visible = true }
func (d *Help) Hide()           { d.visible = false }
func (d *Help) IsVisible() bool { return d.visible }
