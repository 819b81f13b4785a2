package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mqlforge/mqlforge/internal/config"
	"github.com/mqlforge/mqlforge/internal/forge"
	"github.com/mqlforge/mqlforge/internal/gemini"
	"github.com/mqlforge/mqlforge/internal/tui/models"
)

var studioCmd = &cobra.Command{
	Use:   "studio",
	Short: "Launch the interactive EA builder",
	Long: `Open the full-screen studio: fill in the strategy form on the left,
press ctrl+g, and review the generated Expert Advisor on the right.

Generated code can be copied to the clipboard (ctrl+y) or saved as a
.mq5 file (ctrl+s).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStudio()
	},
}

func runStudio() error {
	cfg := config.FromViper()
	orch := forge.New(gemini.NewClient(cfg.APIKey))

	model := models.NewStudioModel(orch, cfg.OutputDir)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running studio: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(studioCmd)
}
