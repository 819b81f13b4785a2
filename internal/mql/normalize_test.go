package mql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStripsFenceWithLanguageTag(t *testing.T) {
	raw := "```mql5\nvoid OnTick(){}\n```"
	assert.Equal(t, "void OnTick(){}", Normalize(raw))
}

func TestNormalizeStripsMixedFenceStyles(t *testing.T) {
	raw := "```cpp\nint x = 1;\n```\n```\nint y = 2;\n```"
	assert.Equal(t, "int x = 1;\n\nint y = 2;", Normalize(raw))
}

func TestNormalizeLineAnchored(t *testing.T) {
	// Inline backticks are code content, not wrapper artifacts.
	code := "Print(\"use ``` to fence\"); // ```mql5 mid-line stays"
	assert.Equal(t, code, Normalize(code))
}

func TestNormalizeNoFences(t *testing.T) {
	code := "#property strict\nvoid OnTick()\n{\n}"
	assert.Equal(t, code, Normalize(code))
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"```mql5\nvoid OnTick(){}\n```",
		"plain text, no fences",
		"```\n\n```",
		"  \n```c\nint a;\n```\n  ",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}
