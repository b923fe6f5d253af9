package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle    = lipgloss.NewStyle().Padding(1, 2)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Faint(true)
	expiredTag  = lipgloss.NewStyle().Bold(true).Strikethrough(true)
)

func renderPage(title, body, help string) string {
	page := titleStyle.Render(title) + "\n\n" + body
	if help != "" {
		page += "\n\n" + helpStyle.Render(help)
	}
	return appStyle.Render(page)
}
