package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mqlforge/mqlforge/internal/config"
	"github.com/mqlforge/mqlforge/internal/prompt"
	"github.com/mqlforge/mqlforge/internal/tui/styles"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Long: `Display the configuration mqlforge is running with, after merging the
config file and environment. The API key is shown redacted.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.FromViper()

		fmt.Println(styles.Title.Render("Configuration"))
		fmt.Println()

		source := viper.ConfigFileUsed()
		if source == "" {
			source = "(no config file; environment only)"
		}

		fmt.Println(styles.Label.Render("FILE") + "        " + styles.Value.Render(source))
		fmt.Println(styles.Label.Render("API KEY") + "     " + styles.Value.Render(cfg.Redacted()))
		fmt.Println(styles.Label.Render("OUTPUT DIR") + "  " + styles.Value.Render(cfg.OutputDir))
		fmt.Println(styles.Label.Render("MODEL") + "       " + styles.Value.Render(prompt.DefaultModel))
		fmt.Println(styles.Label.Render("LOG DIR") + "     " + styles.Value.Render(config.LogDir()))
		fmt.Println()

		if errs := cfg.Validate(); len(errs) > 0 {
			fmt.Println(styles.Divider(50))
			fmt.Println()
			for _, e := range errs {
				fmt.Println("  " + styles.Red("✗") + " " + e.Error())
			}
		} else {
			fmt.Println("  " + styles.Green("✓ Configuration is complete."))
		}
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
