package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

const guideMarkdown = `# MQLForge Guide

## 1. Set your API key

MQLForge talks to Gemini, so it needs a key:

` + "```" + `
export GEMINI_API_KEY=your-key-here
` + "```" + `

You can also put ` + "`api_key`" + ` in the config file shown by
` + "`mqlforge config`" + `.

## 2. Describe the strategy

Open the studio with ` + "`mqlforge studio`" + ` (or just ` + "`mqlforge`" + `).
Write the strategy logic the way you would explain it to a colleague:
entries, exits, sessions, indicator conditions, candle patterns. The
more specific the logic, the better the generated code. Templates
(` + "`mqlforge templates`" + `) give you a starting point.

## 3. Set the risk parameters

Symbol, timeframe, lot size, stop loss and take profit in points, and
an optional trailing stop. Leave the symbol blank to trade whatever
chart the EA is attached to.

## 4. Generate and review

Press ` + "`ctrl+g`" + `. The generated .mq5 source appears with syntax
highlighting. Read it: the model follows your logic, but you own the
result. Copy with ` + "`ctrl+y`" + ` or save with ` + "`ctrl+s`" + `.

## 5. Compile and backtest

Drop the file into your terminal's ` + "`MQL5/Experts`" + ` folder, compile in
MetaEditor, and run it through the Strategy Tester on a demo account.

**Never attach an untested EA to a live account.**
`

var guideWidth int

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show the getting-started guide",
	Long:  `Render the step-by-step guide from API key setup to backtesting.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(guideWidth),
		)
		if err != nil {
			return fmt.Errorf("creating renderer: %w", err)
		}

		out, err := r.Render(guideMarkdown)
		if err != nil {
			return fmt.Errorf("rendering guide: %w", err)
		}

		fmt.Print(out)
		return nil
	},
}

func init() {
	guideCmd.Flags().IntVar(&guideWidth, "width", 80, "wrap width")
	rootCmd.AddCommand(guideCmd)
}
