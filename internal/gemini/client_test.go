package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mqlforge/mqlforge/internal/prompt"
	"github.com/mqlforge/mqlforge/internal/strategy"
)

func TestGenerateMissingAPIKey(t *testing.T) {
	c := NewClient("")
	req := prompt.Compose(strategy.Parameters{
		Description: "Buy breakouts.",
		Timeframe:   strategy.TimeframeH1,
		LotSize:     0.1,
	})

	_, err := c.Generate(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestGenerationErrorUnwraps(t *testing.T) {
	cause := errors.New("quota exceeded")
	err := &GenerationError{Cause: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "quota exceeded")
}
