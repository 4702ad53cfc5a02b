package dialogs

import tea "github.com/charmbracelet/bubbletea"

// Dialog is a modal overlay drawn over the scene. While one is visible it
// receives key messages instead of the scene; animation keeps running.
type Dialog interface {
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	View() string

	IsVisible() bool
	Show()
	Hide()
}
