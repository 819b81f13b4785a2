package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mqlforge/mqlforge/internal/mql"
	"github.com/mqlforge/mqlforge/internal/tui/styles"
)

// Syntax styles for classified MQL5 segments, mapped onto the app palette.
var codeStyles = map[mql.Kind]lipgloss.Style{
	mql.KindText:    lipgloss.NewStyle().Foreground(styles.TextPrimary),
	mql.KindString:  lipgloss.NewStyle().Foreground(styles.CodeString),
	mql.KindComment: lipgloss.NewStyle().Foreground(styles.CodeComment).Italic(true),
	mql.KindKeyword: lipgloss.NewStyle().Foreground(styles.CodeKeyword).Bold(true),
	mql.KindAPI:     lipgloss.NewStyle().Foreground(styles.CodeAPI),
}

// HighlightANSI renders MQL5 source for the code panel using the app
// palette.
func HighlightANSI(code string) string {
	return mql.ToANSI(code, codeStyles)
}

// WindowTitle renders the faux editor title bar shown above the code
// panel: three window dots plus the target filename.
func WindowTitle(filename string, width int) string {
	dots := lipgloss.NewStyle().Foreground(styles.StatusError).Render("●") + " " +
		lipgloss.NewStyle().Foreground(styles.StatusWarn).Render("●") + " " +
		lipgloss.NewStyle().Foreground(styles.StatusOK).Render("●")

	name := lipgloss.NewStyle().Foreground(styles.TextSecondary).Render("  " + filename)

	bar := lipgloss.NewStyle().
		Background(styles.BgSurface).
		Width(width).
		PaddingLeft(1)

	return bar.Render(dots + name)
}

// Placeholder returns the empty-state body for the code panel.
func Placeholder(width int) string {
	msg := styles.Subtitle.Render("No code generated yet.") + "\n\n" +
		styles.Dim("Describe your strategy on the left and press ctrl+g\nto generate your Expert Advisor.")
	return lipgloss.NewStyle().Width(width).Render(msg)
}
