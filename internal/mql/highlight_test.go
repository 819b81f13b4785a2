package mql

import (
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var spanTag = regexp.MustCompile(`</?span[^>]*>`)

// stripTags undoes the HTML rendering: remove span tags, unescape entities.
func stripTags(markup string) string {
	s := spanTag.ReplaceAllString(markup, "")
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	s = strings.ReplaceAll(s, "&amp;", "&")
	return s
}

func TestScanPreservesText(t *testing.T) {
	code := "void OnTick()\n{\n   // open on signal\n   Print(\"return\");\n}"
	var b strings.Builder
	for _, seg := range Scan(code) {
		b.WriteString(seg.Text)
	}
	assert.Equal(t, code, b.String())
}

func TestToHTMLRoundTrips(t *testing.T) {
	inputs := []string{
		"void OnTick(){}",
		"#include <Trade/Trade.mqh>\nif(a < b && c > d) return;",
		"string s = \"a & b < c\"; // cmp",
		"",
	}
	for _, code := range inputs {
		assert.Equal(t, code, stripTags(ToHTML(code)), "input %q", code)
	}
}

func TestKeywordNotTaggedInsideString(t *testing.T) {
	code := `Print("return if while");`
	segs := Scan(code)

	for _, seg := range segs {
		if seg.Kind == KindKeyword {
			t.Fatalf("keyword tagged inside string literal: %q", seg.Text)
		}
	}

	var gotString bool
	for _, seg := range segs {
		if seg.Kind == KindString {
			gotString = true
			assert.Equal(t, `"return if while"`, seg.Text)
		}
	}
	assert.True(t, gotString)
}

func TestKeywordNotTaggedInsideComment(t *testing.T) {
	code := "x = 1; // return early if flat"
	for _, seg := range Scan(code) {
		if seg.Kind == KindKeyword {
			t.Fatalf("keyword tagged inside comment: %q", seg.Text)
		}
	}
}

func TestCommentClaimedBeforeKeywords(t *testing.T) {
	code := "// init handles here\nint h;"
	segs := Scan(code)
	require.NotEmpty(t, segs)
	assert.Equal(t, KindComment, segs[0].Kind)
	assert.Equal(t, "// init handles here", segs[0].Text)
}

func TestClassification(t *testing.T) {
	code := `int OnInit() { Print("ok"); return 0; }`
	kinds := map[string]Kind{}
	for _, seg := range Scan(code) {
		kinds[seg.Text] = seg.Kind
	}

	assert.Equal(t, KindKeyword, kinds["int"])
	assert.Equal(t, KindKeyword, kinds["return"])
	assert.Equal(t, KindAPI, kinds["OnInit"])
	assert.Equal(t, KindAPI, kinds["Print"])
	assert.Equal(t, KindString, kinds[`"ok"`])
}

func TestToHTMLSpanClasses(t *testing.T) {
	markup := ToHTML(`// note` + "\n" + `Print("hi");`)
	assert.Contains(t, markup, `<span class="mql-comment">// note</span>`)
	assert.Contains(t, markup, `<span class="mql-api">Print</span>`)
	assert.Contains(t, markup, `<span class="mql-string">"hi"</span>`)
}

func TestToANSIPreservesText(t *testing.T) {
	code := "void OnTick()\n{\n   Print(\"hi\"); // tick\n}"
	// An empty style map means no escape codes at all, so the output is
	// the input character for character.
	assert.Equal(t, code, ToANSI(code, map[Kind]lipgloss.Style{}))
}
