package strategy

import (
	"fmt"
	"strings"
)

// Timeframe is an MQL5 chart period constant. Only the fixed set below is
// accepted; there are no custom bar intervals.
type Timeframe string

const (
	TimeframeM1  Timeframe = "PERIOD_M1"
	TimeframeM5  Timeframe = "PERIOD_M5"
	TimeframeM15 Timeframe = "PERIOD_M15"
	TimeframeM30 Timeframe = "PERIOD_M30"
	TimeframeH1  Timeframe = "PERIOD_H1"
	TimeframeH4  Timeframe = "PERIOD_H4"
	TimeframeD1  Timeframe = "PERIOD_D1"
)

// AllTimeframes returns the supported chart periods in ascending order.
func AllTimeframes() []Timeframe {
	return []Timeframe{
		TimeframeM1,
		TimeframeM5,
		TimeframeM15,
		TimeframeM30,
		TimeframeH1,
		TimeframeH4,
		TimeframeD1,
	}
}

// Label returns a short human-friendly name such as "M15" or "D1".
func (tf Timeframe) Label() string {
	return strings.TrimPrefix(string(tf), "PERIOD_")
}

// ParseTimeframe accepts either the full constant ("PERIOD_H1") or the
// short label ("H1", case-insensitive) used on CLI flags.
func ParseTimeframe(s string) (Timeframe, error) {
	needle := strings.ToUpper(strings.TrimSpace(s))
	for _, tf := range AllTimeframes() {
		if needle == string(tf) || needle == tf.Label() {
			return tf, nil
		}
	}
	return "", fmt.Errorf("unknown timeframe %q (expected one of M1, M5, M15, M30, H1, H4, D1)", s)
}

// Parameters is the canonical description of one Expert Advisor request.
// It is treated as an immutable value: the caller builds it once per
// submission and everything downstream only reads it.
type Parameters struct {
	Description      string    // free-form trading logic; required for submission
	Symbol           string    // instrument; empty means "current chart symbol"
	Timeframe        Timeframe
	LotSize          float64
	StopLossPoints   int
	TakeProfitPoints int
	UseTrailingStop  bool
}

// Defaults returns the parameter set the studio form starts from.
func Defaults() Parameters {
	return Parameters{
		Symbol:           "EURUSD",
		Timeframe:        TimeframeH1,
		LotSize:          0.1,
		StopLossPoints:   100,
		TakeProfitPoints: 200,
		UseTrailingStop:  false,
	}
}

// ValidationError describes a single parameter validation failure.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface for a single validation error.
func (ve ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ve.Field, ve.Message)
}

// Validate checks the Parameters for submission readiness. It returns a
// slice of all discovered issues rather than stopping at the first one.
func (p Parameters) Validate() []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(p.Description) == "" {
		errs = append(errs, ValidationError{
			Field:   "description",
			Message: "strategy description is required",
		})
	}

	if _, err := ParseTimeframe(string(p.Timeframe)); err != nil {
		errs = append(errs, ValidationError{
			Field:   "timeframe",
			Message: fmt.Sprintf("unsupported value %q", p.Timeframe),
		})
	}

	if p.LotSize <= 0 {
		errs = append(errs, ValidationError{
			Field:   "lotSize",
			Message: fmt.Sprintf("must be > 0, got %g", p.LotSize),
		})
	}
	if p.StopLossPoints < 0 {
		errs = append(errs, ValidationError{
			Field:   "stopLossPoints",
			Message: fmt.Sprintf("must be >= 0, got %d", p.StopLossPoints),
		})
	}
	if p.TakeProfitPoints < 0 {
		errs = append(errs, ValidationError{
			Field:   "takeProfitPoints",
			Message: fmt.Sprintf("must be >= 0, got %d", p.TakeProfitPoints),
		})
	}

	return errs
}
