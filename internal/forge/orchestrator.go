// Package forge coordinates one Expert Advisor generation at a time:
// compose the prompt, hand it to the generation client, normalize whatever
// comes back, and track the request lifecycle for the presentation layer.
package forge

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/mqlforge/mqlforge/internal/gemini"
	"github.com/mqlforge/mqlforge/internal/logging"
	"github.com/mqlforge/mqlforge/internal/mql"
	"github.com/mqlforge/mqlforge/internal/prompt"
	"github.com/mqlforge/mqlforge/internal/strategy"
)

// State is the request lifecycle. Every state except InFlight accepts a
// new submission; none is terminal.
type State int

const (
	StateIdle State = iota
	StateInFlight
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInFlight:
		return "in-flight"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrEmptyDescription is returned by Submit when the strategy description
// is blank. No request is composed and no call is made.
var ErrEmptyDescription = errors.New("strategy description is empty")

// User-facing failure messages. Raw causes stay in the diagnostic log.
const (
	MsgMissingAPIKey    = "GEMINI_API_KEY is not set. Export it or add api_key to your config file."
	MsgGenerationFailed = "Failed to generate Expert Advisor. Please try again."
)

// Generator is the outbound contract with the text-generation service.
// Tests substitute a double returning fixed text.
type Generator interface {
	Generate(ctx context.Context, req prompt.Request) (string, error)
}

// Orchestrator owns the single current generation result. Submissions are
// tagged with a sequence number; a completion whose sequence is stale --
// because a newer submission superseded it -- is dropped, never merged.
type Orchestrator struct {
	mu     sync.Mutex
	client Generator

	state   State
	seq     uint64
	code    string // normalized source, valid in StateSucceeded
	failure string // user-facing message, valid in StateFailed
}

// New creates an Orchestrator in StateIdle.
func New(client Generator) *Orchestrator {
	return &Orchestrator{client: client}
}

// Submit starts a new generation from the given parameters. It refuses a
// blank description, clears any previously displayed code or failure, and
// moves to StateInFlight. The returned sequence number tags the call; pass
// it back to Complete together with the client's result.
func (o *Orchestrator) Submit(params strategy.Parameters) (uint64, prompt.Request, error) {
	if err := validateDescription(params); err != nil {
		return 0, prompt.Request{}, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.seq++
	o.state = StateInFlight
	o.code = ""
	o.failure = ""

	logging.L().Info("generation submitted",
		zap.Uint64("seq", o.seq),
		zap.String("symbol", params.Symbol),
		zap.String("timeframe", string(params.Timeframe)),
	)

	return o.seq, prompt.Compose(params), nil
}

// Complete resolves the call tagged seq. Stale completions -- a newer
// submission already bumped the sequence -- are dropped and the method
// reports false. On success the raw text is normalized and stored; on
// error a user-facing message is stored while the cause goes to the log.
func (o *Orchestrator) Complete(seq uint64, raw string, err error) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if seq != o.seq {
		logging.L().Info("dropping stale generation result",
			zap.Uint64("seq", seq),
			zap.Uint64("current", o.seq),
		)
		return false
	}

	if err != nil {
		o.state = StateFailed
		o.failure = userMessage(err)
		logging.L().Error("generation failed",
			zap.Uint64("seq", seq),
			zap.Error(err),
		)
		return true
	}

	o.state = StateSucceeded
	o.code = mql.Normalize(raw)
	logging.L().Info("generation succeeded",
		zap.Uint64("seq", seq),
		zap.Int("code_len", len(o.code)),
	)
	return true
}

// Generate is the blocking convenience path used by the CLI: submit, call
// the client, complete, and return either the normalized code or an error
// carrying the user-facing message.
func (o *Orchestrator) Generate(ctx context.Context, params strategy.Parameters) (string, error) {
	seq, req, err := o.Submit(params)
	if err != nil {
		return "", err
	}

	raw, genErr := o.client.Generate(ctx, req)
	o.Complete(seq, raw, genErr)

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state == StateFailed {
		return "", errors.New(o.failure)
	}
	return o.code, nil
}

// Client returns the generation client, for callers that drive Submit and
// Complete themselves (the studio runs the call inside a tea.Cmd).
func (o *Orchestrator) Client() Generator {
	return o.client
}

// State reports the current lifecycle state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Code returns the normalized source of the last successful generation.
func (o *Orchestrator) Code() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.code
}

// Failure returns the user-facing message of the last failed generation.
func (o *Orchestrator) Failure() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.failure
}

func validateDescription(params strategy.Parameters) error {
	for _, ve := range params.Validate() {
		if ve.Field == "description" {
			return ErrEmptyDescription
		}
	}
	return nil
}

func userMessage(err error) string {
	if errors.Is(err, gemini.ErrMissingAPIKey) {
		return MsgMissingAPIKey
	}
	return MsgGenerationFailed
}
