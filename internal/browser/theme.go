package browser

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/spec-kit/ticket-browser/internal/domain"
)

// Theme is the color palette of the browser.
type Theme struct {
	Accent      lipgloss.Color
	NormalText  lipgloss.Color
	FaintText   lipgloss.Color
	BorderColor lipgloss.Color
	ErrorText   lipgloss.Color

	PriorityHigh    lipgloss.Color
	PriorityMedium  lipgloss.Color
	PriorityLow     lipgloss.Color
	PriorityUnknown lipgloss.Color
}

var DefaultTheme = Theme{
	Accent:      lipgloss.Color("#3b82f6"),
	NormalText:  lipgloss.Color("#e5e7eb"),
	FaintText:   lipgloss.Color("#9ca3af"),
	BorderColor: lipgloss.Color("#4b5563"),
	ErrorText:   lipgloss.Color("#ef4444"),

	PriorityHigh:    lipgloss.Color("#ef4444"),
	PriorityMedium:  lipgloss.Color("#f59e0b"),
	PriorityLow:     lipgloss.Color("#10b981"),
	PriorityUnknown: lipgloss.Color("#6b7280"),
}

// PriorityColor maps a priority value to its badge color.
func (theme Theme) PriorityColor(priority string) lipgloss.Color {
	switch domain.PriorityLevel(priority) {
	case domain.PriorityHigh:
		return theme.PriorityHigh
	case domain.PriorityMedium:
		return theme.PriorityMedium
	case domain.PriorityLow:
		return theme.PriorityLow
	default:
		return theme.PriorityUnknown
	}
}

func (theme Theme) badge(text string, color lipgloss.Color) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(color).
		Padding(0, 1).
		Render(text)
}
