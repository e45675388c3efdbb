package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"breathe/internal/ui/theme"
)

// ConfirmAcceptMsg is emitted when the user presses y.
type ConfirmAcceptMsg struct{}

// ConfirmCancelMsg is emitted on any other key.
type ConfirmCancelMsg struct{}

var confirmStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(theme.Peach).
	Background(theme.Mantle).
	Foreground(theme.Text).
	Padding(1, 2)

// Confirm is a modal yes/no prompt guarding destructive actions.
type Confirm struct {
	message string
	visible bool
}

func NewConfirm() Confirm {
	return Confirm{}
}

func (c Confirm) Visible() bool { return c.visible }

func (c *Confirm) Open(message string) {
	c.message = message
	c.visible = true
}

func (c Confirm) Update(msg tea.Msg) (Confirm, tea.Cmd) {
	if !c.visible {
		return c, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		c.visible = false
		if key.String() == "y" {
			return c, func() tea.Msg { return ConfirmAcceptMsg{} }
		}
		return c, func() tea.Msg { return ConfirmCancelMsg{} }
	}
	return c, nil
}

func (c Confirm) View() string {
	if !c.visible {
		return ""
	}
	body := theme.Hot.Render(c.message) + "\n\n" +
		theme.Muted.Render("y: confirm  any other key: cancel")
	return confirmStyle.Render(body)
}
