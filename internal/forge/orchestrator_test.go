package forge

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mqlforge/mqlforge/internal/gemini"
	"github.com/mqlforge/mqlforge/internal/prompt"
	"github.com/mqlforge/mqlforge/internal/strategy"
)

// fakeGenerator is the test double for the generation collaborator.
type fakeGenerator struct {
	text  string
	err   error
	calls int
}

func (f *fakeGenerator) Generate(_ context.Context, _ prompt.Request) (string, error) {
	f.calls++
	return f.text, f.err
}

func validParams() strategy.Parameters {
	p := strategy.Defaults()
	p.Description = "Buy when RSI(14) crosses above 30."
	return p
}

func TestGenerateSuccessNormalizes(t *testing.T) {
	gen := &fakeGenerator{text: "```mql5\nvoid OnTick(){}\n```"}
	o := New(gen)

	code, err := o.Generate(context.Background(), validParams())
	require.NoError(t, err)
	assert.Equal(t, "void OnTick(){}", code)
	assert.Equal(t, StateSucceeded, o.State())
	assert.Equal(t, 1, gen.calls)
}

func TestSubmitRefusesEmptyDescription(t *testing.T) {
	gen := &fakeGenerator{text: "whatever"}
	o := New(gen)

	params := validParams()
	params.Description = "   "
	_, _, err := o.Submit(params)
	require.ErrorIs(t, err, ErrEmptyDescription)

	// No request composed, no call made, state untouched.
	assert.Equal(t, StateIdle, o.State())
	assert.Zero(t, gen.calls)
}

func TestMissingAPIKeyFailsWithoutCall(t *testing.T) {
	o := New(gemini.NewClient(""))

	_, err := o.Generate(context.Background(), validParams())
	require.Error(t, err)
	assert.Equal(t, MsgMissingAPIKey, err.Error())
	assert.Equal(t, StateFailed, o.State())
	assert.Equal(t, MsgMissingAPIKey, o.Failure())
}

func TestFailureDoesNotPoisonNextSubmission(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("socket hangup")}
	o := New(gen)

	_, err := o.Generate(context.Background(), validParams())
	require.Error(t, err)
	assert.Equal(t, StateFailed, o.State())
	// Internal cause never reaches the user.
	assert.Equal(t, MsgGenerationFailed, err.Error())

	gen.err = nil
	gen.text = "void OnTick(){}"
	code, err := o.Generate(context.Background(), validParams())
	require.NoError(t, err)
	assert.Equal(t, "void OnTick(){}", code)
	assert.Equal(t, StateSucceeded, o.State())
}

func TestSubmitClearsPreviousOutput(t *testing.T) {
	gen := &fakeGenerator{text: "void OnTick(){}"}
	o := New(gen)

	_, err := o.Generate(context.Background(), validParams())
	require.NoError(t, err)
	require.NotEmpty(t, o.Code())

	_, _, err = o.Submit(validParams())
	require.NoError(t, err)
	assert.Equal(t, StateInFlight, o.State())
	assert.Empty(t, o.Code())
	assert.Empty(t, o.Failure())
}

func TestStaleCompletionDropped(t *testing.T) {
	gen := &fakeGenerator{}
	o := New(gen)

	first, _, err := o.Submit(validParams())
	require.NoError(t, err)

	second, _, err := o.Submit(validParams())
	require.NoError(t, err)
	require.Greater(t, second, first)

	// The superseded call finally lands; its result must be ignored.
	assert.False(t, o.Complete(first, "stale output", nil))
	assert.Equal(t, StateInFlight, o.State())
	assert.Empty(t, o.Code())

	assert.True(t, o.Complete(second, "void OnTick(){}", nil))
	assert.Equal(t, StateSucceeded, o.State())
	assert.Equal(t, "void OnTick(){}", o.Code())
}

func TestDegenerateSuccessIsDisplayable(t *testing.T) {
	gen := &fakeGenerator{text: gemini.NoCodeGenerated}
	o := New(gen)

	code, err := o.Generate(context.Background(), validParams())
	require.NoError(t, err)
	assert.Equal(t, gemini.NoCodeGenerated, code)
	assert.Equal(t, StateSucceeded, o.State())
}
