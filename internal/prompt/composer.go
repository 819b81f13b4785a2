// Package prompt builds the finalized Gemini request for one Expert
// Advisor generation. Compose is pure: the same parameters always produce
// byte-identical request text, which keeps prompt changes reviewable and
// the composer trivially testable.
package prompt

import (
	"fmt"
	"strings"

	"github.com/mqlforge/mqlforge/internal/strategy"
)

// Model and reasoning budget are fixed per prompt revision, not user
// configuration. Bump PromptVersion when SystemInstruction or the user
// prompt layout changes.
const (
	PromptVersion  = "v1"
	DefaultModel   = "gemini-3-pro-preview"
	ThinkingBudget = 4096 // headroom for multi-step SMC/CRT logic
)

// SystemInstruction pins the generator to the MQL5 Expert Advisor role and
// the coding standards every generated EA must follow.
const SystemInstruction = `You are an expert senior MQL5 (MetaQuotes Language 5) developer.
You specialize in algorithmic trading systems including Price Action, Smart Money Concepts (SMC), ICT, and Candle Range Theory (CRT/TJR) principles.

Your task is to write robust, compilable, and professional-grade Expert Advisor (EA) code based on the user's trading strategy.

Follow these strict coding standards:
1. Use the 'CTrade' class from '<Trade/Trade.mqh>' for all order executions.
2. Structure the code properly with 'OnInit', 'OnDeinit', and 'OnTick' event handlers.
3. Use strict property definitions (e.g., '#property strict').
4. Include input variables for all user-configurable parameters (Lots, SL, TP, Magic Number, Trading Hours, etc.).
5. Implement error handling for trade requests.
6. Add comments explaining complex logic, especially for specific patterns like FVG (Fair Value Gaps), Order Blocks, or Liquidity Sweeps.
7. Ensure the code compiles without errors.
8. If the strategy involves indicators, use the standard library indicator functions (e.g., iRSI, iMA) and handle handles in OnInit.
9. For CRT/SMC strategies, implementing helper functions for logic like "IsFVG", "FindSwingHigh", "CheckTimeWindow", or "DetectMSS" (Market Structure Shift) is highly recommended.

The output must be ONLY the raw code string, or a Markdown code block containing the code.`

// Request is the finalized, immutable generation request: the fixed system
// instruction plus the user prompt derived from one Parameters value.
type Request struct {
	System         string
	User           string
	Model          string
	ThinkingBudget int32
}

// Compose maps strategy parameters onto the generation request. Every
// field is interpolated even when empty; an empty symbol is rendered as
// "Current Symbol" inside the prompt only, the stored parameter is left
// untouched. Callers are responsible for refusing to submit an empty
// description; Compose itself stays total.
func Compose(params strategy.Parameters) Request {
	symbol := params.Symbol
	if symbol == "" {
		symbol = "Current Symbol"
	}

	trailing := "No"
	if params.UseTrailingStop {
		trailing = "Yes"
	}

	var b strings.Builder
	b.WriteString("Generate an MQL5 Expert Advisor for the following requirements:\n\n")
	fmt.Fprintf(&b, "Symbol: %s\n", symbol)
	fmt.Fprintf(&b, "Timeframe: %s\n", params.Timeframe)
	fmt.Fprintf(&b, "Initial Lot Size: %g\n", params.LotSize)
	fmt.Fprintf(&b, "Stop Loss (points): %d\n", params.StopLossPoints)
	fmt.Fprintf(&b, "Take Profit (points): %d\n", params.TakeProfitPoints)
	fmt.Fprintf(&b, "Trailing Stop: %s\n", trailing)
	b.WriteString("\nStrategy Logic:\n")
	b.WriteString(params.Description)
	b.WriteString("\n\nEnsure the code handles new bar checks if necessary for the strategy, or runs on every tick if specified.\n")
	b.WriteString("Check for sufficient margin before opening trades.\n")

	return Request{
		System:         SystemInstruction,
		User:           b.String(),
		Model:          DefaultModel,
		ThinkingBudget: ThinkingBudget,
	}
}
