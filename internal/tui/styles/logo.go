package styles

import "github.com/charmbracelet/lipgloss"

// CompactLogo is the single-line brand mark used in headers.
const CompactLogo = "⚡ MQLFORGE"

var logoArt = `
  __  __  ___  _     ___ ___  ___  ___ ___
 |  \/  |/ _ \| |   | __/ _ \| _ \/ __| __|
 | |\/| | (_) | |__ | _| (_) |   / (_ | _|
 |_|  |_|\__\_\____||_| \___/|_|_\\___|___|
`

// Logo returns the multi-line ASCII banner with a dim tagline, styled for
// CLI output.
func Logo() string {
	art := lipgloss.NewStyle().
		Foreground(AccentPrimary).
		Bold(true).
		Render(logoArt)
	tag := Dim("  AI-assisted MQL5 Expert Advisor generator")
	return art + "\n" + tag
}
