package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mqlforge/mqlforge/internal/config"
	"github.com/mqlforge/mqlforge/internal/logging"
)

var (
	cfgFile string
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "mqlforge",
	Short: "MQL5 Expert Advisor generator",
	Long: `MQLForge — Turn trading ideas into MetaTrader 5 Expert Advisors

Describe a strategy in plain language, set your risk parameters, and
MQLForge writes a complete, compile-ready .mq5 Expert Advisor using
Gemini. Always backtest generated code on a demo account first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// No subcommand launches the interactive studio.
		return runStudio()
	},
}

// Execute runs the CLI. Log buffers are flushed on the way out.
func Execute() error {
	defer logging.Sync()
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is <user config dir>/mqlforge/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable color output")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.AppDir())
		viper.AddConfigPath(".")
	}
	viper.SetEnvPrefix("MQLFORGE")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()

	_ = logging.Init(config.LogDir())
}
