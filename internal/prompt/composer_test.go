package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mqlforge/mqlforge/internal/strategy"
)

func rsiParams() strategy.Parameters {
	return strategy.Parameters{
		Description:      "Buy when RSI(14) crosses above 30 (Oversold exit).",
		Symbol:           "EURUSD",
		Timeframe:        strategy.TimeframeH1,
		LotSize:          0.1,
		StopLossPoints:   100,
		TakeProfitPoints: 200,
		UseTrailingStop:  false,
	}
}

func TestComposeInterpolatesEveryField(t *testing.T) {
	req := Compose(rsiParams())

	assert.Equal(t, SystemInstruction, req.System)
	assert.Equal(t, DefaultModel, req.Model)
	assert.EqualValues(t, ThinkingBudget, req.ThinkingBudget)

	for _, want := range []string{
		"Symbol: EURUSD",
		"Timeframe: PERIOD_H1",
		"Initial Lot Size: 0.1",
		"Stop Loss (points): 100",
		"Take Profit (points): 200",
		"Trailing Stop: No",
		"Buy when RSI(14) crosses above 30 (Oversold exit).",
	} {
		assert.Contains(t, req.User, want)
	}

	assert.Contains(t, req.User, "Check for sufficient margin before opening trades.")
}

func TestComposeIsDeterministic(t *testing.T) {
	params := rsiParams()
	first := Compose(params)
	second := Compose(params)
	assert.Equal(t, first, second)
}

func TestComposeEmptySymbolFallsBack(t *testing.T) {
	params := rsiParams()
	params.Symbol = ""
	req := Compose(params)

	assert.Contains(t, req.User, "Symbol: Current Symbol")
	// The fallback lives in the prompt text only; the stored value stays empty.
	assert.Empty(t, params.Symbol)
}

func TestComposeTrailingStopYes(t *testing.T) {
	params := rsiParams()
	params.UseTrailingStop = true
	assert.Contains(t, Compose(params).User, "Trailing Stop: Yes")
}

func TestComposeEmptyDescriptionStillWellFormed(t *testing.T) {
	params := rsiParams()
	params.Description = ""
	req := Compose(params)

	// Submission of an empty description is the orchestrator's problem;
	// the composed prompt must still carry every labeled field.
	require.NotEmpty(t, req.User)
	assert.Contains(t, req.User, "Strategy Logic:")
	assert.Contains(t, req.User, "Trailing Stop: No")
}
