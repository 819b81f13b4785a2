package strategy

// Template is a pre-written strategy description the user can start from
// instead of writing logic from scratch.
type Template struct {
	ID          string
	Label       string
	Description string // becomes Parameters.Description when selected
}

// Templates returns the built-in strategy catalog in display order. The
// first entry is the blank "custom" slot.
func Templates() []Template {
	return []Template{
		{
			ID:    "custom",
			Label: "Custom Strategy",
		},
		{
			ID:    "crt",
			Label: "CRT / TJR Liquidity Model",
			Description: "Implement a Candle Range Theory (CRT) strategy inspired by TJR principles.\n\n" +
				"1. Time Window: Define a Reference Range (e.g., 02:00 - 05:00 Server Time).\n" +
				"2. Range Identification: Mark the High and Low of this time window.\n" +
				"3. Liquidity Sweep: Wait for price to sweep (break and close back inside) either the Range High or Low.\n" +
				"4. Market Structure Shift (MSS): After a sweep, look for a displacement candle creating a Fair Value Gap (FVG) in the opposite direction.\n" +
				"5. Entry: Place a Limit Order at the FVG or enter on Market if the FVG is retested.\n" +
				"6. Stop Loss: Just beyond the swing point that swept the liquidity.\n" +
				"7. Take Profit: The opposing side of the Reference Range (e.g., if Shorting from High sweep, target Range Low).",
		},
		{
			ID:    "rsi",
			Label: "RSI Reversal",
			Description: "Buy when RSI(14) crosses above 30 (Oversold exit).\n" +
				"Sell when RSI(14) crosses below 70 (Overbought exit).\n" +
				"Close existing positions on opposite signal.",
		},
		{
			ID:    "ma",
			Label: "MA Crossover Trend",
			Description: "Fast MA (Period 10) crosses above Slow MA (Period 20) -> Buy.\n" +
				"Fast MA crosses below Slow MA -> Sell.\n" +
				"Only take trades during London and NY sessions (08:00 - 17:00).",
		},
	}
}

// TemplateByID looks up a template by its identifier.
func TemplateByID(id string) (Template, bool) {
	for _, t := range Templates() {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}
