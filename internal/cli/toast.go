package cli

import (
	"dispatch-toolkit/internal/domain"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorOK     = lipgloss.Color("#22c55e")
	colorDanger = lipgloss.Color("#ef4444")
	colorMuted  = lipgloss.Color("#6b7280")

	toastStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	toastTitleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle      = lipgloss.NewStyle().Foreground(colorMuted)
	okStyle         = lipgloss.NewStyle().Foreground(colorOK)
	dangerStyle     = lipgloss.NewStyle().Foreground(colorDanger).Bold(true)
)

// renderToast draws a notification as a bordered box, red for destructive ones.
func renderToast(n domain.Notification) string {
	border := colorOK
	if n.IsDestructive() {
		border = colorDanger
	}

	body := toastTitleStyle.Render(n.Title)
	if n.Description != "" {
		body += "\n" + n.Description
	}
	return toastStyle.BorderForeground(border).Render(body)
}
