package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeframe(t *testing.T) {
	tf, err := ParseTimeframe("PERIOD_H1")
	require.NoError(t, err)
	assert.Equal(t, TimeframeH1, tf)

	tf, err = ParseTimeframe("m15")
	require.NoError(t, err)
	assert.Equal(t, TimeframeM15, tf)

	_, err = ParseTimeframe("H2")
	assert.Error(t, err)
}

func TestValidateDefaultsNeedDescription(t *testing.T) {
	p := Defaults()
	errs := p.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "description", errs[0].Field)

	p.Description = "Buy the open, sell the close."
	assert.Empty(t, p.Validate())
}

func TestValidateCollectsAllIssues(t *testing.T) {
	p := Parameters{
		Timeframe:        Timeframe("PERIOD_H2"),
		LotSize:          0,
		StopLossPoints:   -1,
		TakeProfitPoints: -5,
	}
	errs := p.Validate()

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{
		"description", "timeframe", "lotSize", "stopLossPoints", "takeProfitPoints",
	}, fields)
}

func TestTemplateCatalog(t *testing.T) {
	tmpls := Templates()
	require.NotEmpty(t, tmpls)
	assert.Equal(t, "custom", tmpls[0].ID)
	assert.Empty(t, tmpls[0].Description)

	rsi, ok := TemplateByID("rsi")
	require.True(t, ok)
	assert.Contains(t, rsi.Description, "RSI(14)")

	_, ok = TemplateByID("nope")
	assert.False(t, ok)
}
