package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mqlforge/mqlforge/internal/config"
	"github.com/mqlforge/mqlforge/internal/health"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the environment",
	Long: `Run environment diagnostics: API key, Gemini endpoint reachability,
clipboard support, output and log directories, and the saved EA library.

Exits non-zero if any check fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromViper()

		ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
		defer cancel()

		checker := health.NewChecker(cfg, viper.ConfigFileUsed())
		report := checker.RunAll(ctx)

		fmt.Println(health.FormatReport(report))

		if !report.Healthy {
			return fmt.Errorf("%d check(s) failed", report.Failed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
