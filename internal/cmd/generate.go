package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mqlforge/mqlforge/internal/config"
	"github.com/mqlforge/mqlforge/internal/export"
	"github.com/mqlforge/mqlforge/internal/forge"
	"github.com/mqlforge/mqlforge/internal/gemini"
	"github.com/mqlforge/mqlforge/internal/strategy"
	"github.com/mqlforge/mqlforge/internal/tui/styles"
)

var (
	genDescription string
	genTemplate    string
	genSymbol      string
	genTimeframe   string
	genLotSize     float64
	genStopLoss    int
	genTakeProfit  int
	genTrailing    bool
	genOutput      string
	genStdout      bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an Expert Advisor non-interactively",
	Long: `Generate a .mq5 Expert Advisor from flags, without the studio UI.

The strategy logic comes from --description, or from a named --template
(see 'mqlforge templates'). The result is written to the output
directory, or to stdout with --stdout.

Examples:
  mqlforge generate --template rsi --symbol EURUSD --timeframe H1
  mqlforge generate -d "Buy when price sweeps Asian session lows" -o sweep.mq5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromViper()

		params, err := buildParams()
		if err != nil {
			return err
		}

		orch := forge.New(gemini.NewClient(cfg.APIKey))

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if !genStdout {
			fmt.Fprintln(os.Stderr, styles.Dim("Generating Expert Advisor..."))
		}

		code, err := orch.Generate(ctx, params)
		if err != nil {
			return err
		}

		if genStdout {
			fmt.Println(code)
			return nil
		}

		path, err := export.Save(code, cfg.OutputDir, genOutput)
		if err != nil {
			return fmt.Errorf("saving code: %w", err)
		}

		fmt.Println(styles.Green("✓ Saved ") + styles.Bold(path))
		fmt.Println(styles.Dim("Always backtest on a demo account before trading real money."))
		return nil
	},
}

// buildParams assembles strategy parameters from the generate flags.
func buildParams() (strategy.Parameters, error) {
	params := strategy.Defaults()
	params.Description = genDescription

	if genTemplate != "" {
		tmpl, ok := strategy.TemplateByID(genTemplate)
		if !ok {
			return params, fmt.Errorf("unknown template %q (see 'mqlforge templates')", genTemplate)
		}
		if params.Description == "" {
			params.Description = tmpl.Description
		}
	}

	if genSymbol != "" {
		params.Symbol = genSymbol
	}
	if genTimeframe != "" {
		tf, err := strategy.ParseTimeframe(genTimeframe)
		if err != nil {
			return params, err
		}
		params.Timeframe = tf
	}
	if genLotSize > 0 {
		params.LotSize = genLotSize
	}
	if genStopLoss >= 0 {
		params.StopLossPoints = genStopLoss
	}
	if genTakeProfit >= 0 {
		params.TakeProfitPoints = genTakeProfit
	}
	params.UseTrailingStop = genTrailing

	if errs := params.Validate(); len(errs) > 0 {
		return params, errs[0]
	}
	return params, nil
}

func init() {
	generateCmd.Flags().StringVarP(&genDescription, "description", "d", "", "strategy logic in plain language")
	generateCmd.Flags().StringVarP(&genTemplate, "template", "t", "", "start from a named template")
	generateCmd.Flags().StringVar(&genSymbol, "symbol", "", "trading symbol (blank = current chart symbol)")
	generateCmd.Flags().StringVar(&genTimeframe, "timeframe", "", "chart timeframe (M1..D1 or PERIOD_M1..PERIOD_D1)")
	generateCmd.Flags().Float64Var(&genLotSize, "lot-size", 0, "initial lot size")
	generateCmd.Flags().IntVar(&genStopLoss, "stop-loss", -1, "stop loss in points")
	generateCmd.Flags().IntVar(&genTakeProfit, "take-profit", -1, "take profit in points")
	generateCmd.Flags().BoolVar(&genTrailing, "trailing", false, "enable trailing stop")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "output filename (default ExpertAdvisor.mq5)")
	generateCmd.Flags().BoolVar(&genStdout, "stdout", false, "print the code to stdout instead of saving")
	rootCmd.AddCommand(generateCmd)
}
