package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mqlforge/mqlforge/internal/tui/styles"
)

// KeyHint describes a single keybinding hint for display in the footer.
type KeyHint struct {
	Key  string // "ctrl+g", "tab"
	Desc string // "generate", "next field"
}

// Footer renders context-aware keybinding hints plus an optional notice
// (e.g. "copied" or "saved to ...") right-aligned within the bar.
type Footer struct {
	Hints  []KeyHint
	Notice string
	Width  int
}

// Render returns the styled footer string.
func (f Footer) Render() string {
	width := f.Width
	if width <= 0 {
		width = 80
	}

	keyStyle := lipgloss.NewStyle().Foreground(styles.AccentPrimary).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)
	sepStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)

	var parts []string
	for _, h := range f.Hints {
		parts = append(parts, keyStyle.Render(h.Key)+" "+descStyle.Render(h.Desc))
	}
	content := strings.Join(parts, sepStyle.Render(" • "))

	if f.Notice != "" {
		content += sepStyle.Render("   ") +
			lipgloss.NewStyle().Foreground(styles.StatusOK).Render(f.Notice)
	}

	footerStyle := lipgloss.NewStyle().
		Background(styles.BgDeep).
		Foreground(styles.TextMuted).
		Width(width).
		PaddingLeft(1).
		PaddingRight(1)

	return footerStyle.Render(content)
}

// StudioFooter returns the footer preset for the studio screen.
func StudioFooter(width int, canGenerate bool) Footer {
	hints := []KeyHint{
		{Key: "tab", Desc: "next field"},
		{Key: "shift+tab", Desc: "prev field"},
	}
	if canGenerate {
		hints = append(hints, KeyHint{Key: "ctrl+g", Desc: "generate"})
	}
	hints = append(hints,
		KeyHint{Key: "ctrl+y", Desc: "copy"},
		KeyHint{Key: "ctrl+s", Desc: "save"},
		KeyHint{Key: "ctrl+c", Desc: "quit"},
	)
	return Footer{Hints: hints, Width: width}
}
