// Package gemini adapts the Google Gemini API to the one call the
// generation pipeline needs: system instruction + user prompt in, raw text
// out. It performs exactly one outbound request per Generate invocation and
// never retries; retry policy is the caller's business.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/mqlforge/mqlforge/internal/logging"
	"github.com/mqlforge/mqlforge/internal/prompt"
)

// ErrMissingAPIKey is returned before any network activity when the access
// credential is absent. This is a setup problem, not a transient fault.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not set")

// GenerationError wraps any fault raised by the Gemini call itself:
// network, quota, service-side, or malformed response. The cause is kept
// for diagnostics; user-facing text is derived by the orchestrator.
type GenerationError struct {
	Cause error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("gemini generation failed: %v", e.Cause)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// NoCodeGenerated is the placeholder returned when the call succeeds but
// carries no usable text. Callers treat it as displayable output, not as a
// failure.
const NoCodeGenerated = "// Error: No code generated."

// Client talks to the Gemini API. The underlying SDK client is created
// lazily on first use so a missing credential is reported as
// ErrMissingAPIKey rather than a construction failure at startup.
type Client struct {
	apiKey string

	once   sync.Once
	sdk    *genai.Client
	sdkErr error
}

// NewClient creates a Client with the given access credential. An empty
// key is allowed here; Generate reports it.
func NewClient(apiKey string) *Client {
	return &Client{apiKey: apiKey}
}

func (c *Client) init(ctx context.Context) (*genai.Client, error) {
	c.once.Do(func() {
		c.sdk, c.sdkErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  c.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
	})
	return c.sdk, c.sdkErr
}

// Generate sends the composed request and returns the raw response text.
// Empty or missing payloads come back as NoCodeGenerated rather than an
// error. All faults are reduced to ErrMissingAPIKey or *GenerationError.
func (c *Client) Generate(ctx context.Context, req prompt.Request) (string, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return "", ErrMissingAPIKey
	}

	sdk, err := c.init(ctx)
	if err != nil {
		return "", &GenerationError{Cause: fmt.Errorf("creating gemini client: %w", err)}
	}

	requestID := uuid.NewString()
	logging.L().Info("gemini request",
		zap.String("request_id", requestID),
		zap.String("model", req.Model),
		zap.Int("user_prompt_len", len(req.User)),
	)

	budget := req.ThinkingBudget
	resp, err := sdk.Models.GenerateContent(ctx, req.Model, genai.Text(req.User), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.System, genai.RoleUser),
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: &budget,
		},
	})
	if err != nil {
		logging.L().Error("gemini request failed",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return "", &GenerationError{Cause: err}
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		logging.L().Warn("gemini returned empty payload",
			zap.String("request_id", requestID),
		)
		return NoCodeGenerated, nil
	}

	logging.L().Info("gemini response",
		zap.String("request_id", requestID),
		zap.Int("response_len", len(text)),
	)
	return text, nil
}
