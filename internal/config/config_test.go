package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateMissingKey(t *testing.T) {
	cfg := Config{OutputDir: "/tmp/out"}
	errs := cfg.Validate()
	if assert.Len(t, errs, 1) {
		assert.Equal(t, "api_key", errs[0].Field)
	}

	cfg.APIKey = "AIza-test"
	assert.Empty(t, cfg.Validate())
}

func TestRedacted(t *testing.T) {
	assert.Equal(t, "(not set)", Config{}.Redacted())
	assert.Equal(t, "****", Config{APIKey: "abcd"}.Redacted())

	r := Config{APIKey: "AIzaSyExample1234"}.Redacted()
	assert.True(t, len(r) == len("AIzaSyExample1234"))
	assert.Contains(t, r, "1234")
	assert.NotContains(t, r, "AIza")
}
