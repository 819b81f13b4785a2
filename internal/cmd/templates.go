package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mqlforge/mqlforge/internal/strategy"
	"github.com/mqlforge/mqlforge/internal/tui/styles"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the built-in strategy templates",
	Long: `List the built-in strategy templates that seed the description field.

Pass a template id to 'mqlforge generate --template' to use one
non-interactively.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(styles.Title.Render("Strategy Templates"))
		fmt.Println()

		for _, tmpl := range strategy.Templates() {
			fmt.Println("  " + styles.Bold(tmpl.Label) + "  " + styles.Dim("("+tmpl.ID+")"))
			if tmpl.Description == "" {
				fmt.Println("    " + styles.Dim("Start from a blank description."))
			} else {
				fmt.Println("    " + styles.Subtitle.Render(styles.TruncateWithEllipsis(tmpl.Description, 76)))
			}
			fmt.Println()
		}
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
