package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mqlforge/mqlforge/internal/tui/styles"
)

// Header renders the studio header bar.
type Header struct {
	Model  string // generation model identifier
	Status string // "ready", "generating", "done", "failed"
	Width  int
}

func statusColor(status string) lipgloss.Color {
	switch strings.ToLower(status) {
	case "generating":
		return styles.StatusWarn
	case "done":
		return styles.StatusOK
	case "failed":
		return styles.StatusError
	default:
		return styles.TextMuted
	}
}

// Render returns the styled header string.
func (h Header) Render() string {
	width := h.Width
	if width <= 0 {
		width = 80
	}

	logo := lipgloss.NewStyle().
		Foreground(styles.AccentPrimary).
		Bold(true).
		Render(styles.CompactLogo)

	sep := lipgloss.NewStyle().Foreground(styles.TextMuted).Render("  │  ")

	model := styles.Label.Render("Model: ") +
		lipgloss.NewStyle().Foreground(styles.AccentGold).Render(h.Model)

	badge := styles.Badge(strings.ToUpper(h.Status), statusColor(h.Status))

	content := logo + sep + model + sep + badge

	headerStyle := lipgloss.NewStyle().
		Background(styles.BgDeep).
		Foreground(styles.TextPrimary).
		Width(width).
		PaddingLeft(1).
		PaddingRight(1)

	return headerStyle.Render(content)
}
