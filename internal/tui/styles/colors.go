package styles

import "github.com/charmbracelet/lipgloss"

// Terminal Slate -- Dark Palette
// Deep slate backgrounds with electric blue accents, the MetaTrader-at-night look.

var (
	// Backgrounds (darkest to lightest)
	BgDeep    = lipgloss.Color("#0b1220") // Deepest -- main background
	BgPanel   = lipgloss.Color("#131a2a") // Panel background
	BgSurface = lipgloss.Color("#1c2436") // Elevated surface

	// Accents
	AccentPrimary = lipgloss.Color("#3b82f6") // Blue -- primary actions, focus
	AccentGold    = lipgloss.Color("#eab308") // Gold -- highlights, branding

	// Status
	StatusOK    = lipgloss.Color("#22c55e") // Green
	StatusWarn  = lipgloss.Color("#f59e0b") // Amber
	StatusError = lipgloss.Color("#ef4444") // Red

	// Text
	TextPrimary   = lipgloss.Color("#e2e8f0") // High contrast
	TextSecondary = lipgloss.Color("#94a3b8") // Dimmed
	TextMuted     = lipgloss.Color("#64748b") // Very dim

	// Borders
	BorderNormal  = lipgloss.Color("#2d3748") // Subtle
	BorderFocused = lipgloss.Color("#3b82f6") // Blue focus ring

	// Syntax colors for the code viewer
	CodeString  = lipgloss.Color("#4ade80") // Green -- string literals
	CodeComment = lipgloss.Color("#64748b") // Slate -- comments
	CodeKeyword = lipgloss.Color("#c084fc") // Purple -- language keywords
	CodeAPI     = lipgloss.Color("#60a5fa") // Blue -- MQL5 API identifiers
)
