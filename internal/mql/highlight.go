package mql

import (
	"regexp"
	"strings"
)

// Kind classifies a highlighted span of source text.
type Kind int

const (
	KindText    Kind = iota // unclassified source text
	KindString              // double-quoted string literal
	KindComment             // end-of-line comment
	KindKeyword             // general-purpose language keyword
	KindAPI                 // MQL5 lifecycle handler / trade API identifier
)

// Segment is a run of source text with a single classification. The
// concatenation of all segment texts is always the original input:
// highlighting decorates, it never rewrites.
type Segment struct {
	Kind Kind
	Text string
}

// The closed keyword and API identifier sets. The two sets are disjoint;
// should a future edit introduce a token present in both, the keyword pass
// wins because it claims regions first.
var (
	stringLit = regexp.MustCompile(`"[^"\n]*"`)
	lineCmt   = regexp.MustCompile(`//[^\n]*`)

	keyword = regexp.MustCompile(`\b(void|int|double|bool|string|class|public|private|protected|virtual|override|return|if|else|for|while|do|break|continue|switch|case|default|struct|enum|input|sinput)\b`)

	apiIdent = regexp.MustCompile(`\b(OnInit|OnDeinit|OnTick|Print|Alert|OrderSend|SymbolInfoDouble|SymbolInfoInteger|AccountInfoDouble|PositionSelect|PositionGetDouble|PositionGetInteger|PositionsTotal|CTrade|MqlTradeRequest|MqlTradeResult|MqlRates|CopyRates|iRSI|iMA|iATR|CopyBuffer|IndicatorRelease)\b`)
)

type region struct {
	start, end int
	kind       Kind
}

func overlaps(r region, claimed []region) bool {
	for _, c := range claimed {
		if r.start < c.end && c.start < r.end {
			return true
		}
	}
	return false
}

// Scan splits code into classified segments. Passes run in a fixed order
// -- string literals, comments, keywords, API identifiers -- and a later
// pass never claims text inside an earlier claim, so the word "return"
// inside a quoted string stays part of the string. Best-effort by design:
// missed tokens are fine, corrupted text is not.
func Scan(code string) []Segment {
	var claimed []region

	passes := []struct {
		re   *regexp.Regexp
		kind Kind
	}{
		{stringLit, KindString},
		{lineCmt, KindComment},
		{keyword, KindKeyword},
		{apiIdent, KindAPI},
	}

	for _, p := range passes {
		for _, loc := range p.re.FindAllStringIndex(code, -1) {
			r := region{start: loc[0], end: loc[1], kind: p.kind}
			if !overlaps(r, claimed) {
				claimed = append(claimed, r)
			}
		}
	}

	// Claims were appended per pass; restore document order.
	for i := 1; i < len(claimed); i++ {
		for j := i; j > 0 && claimed[j].start < claimed[j-1].start; j-- {
			claimed[j], claimed[j-1] = claimed[j-1], claimed[j]
		}
	}

	var segs []Segment
	pos := 0
	for _, r := range claimed {
		if r.start > pos {
			segs = append(segs, Segment{Kind: KindText, Text: code[pos:r.start]})
		}
		segs = append(segs, Segment{Kind: r.kind, Text: code[r.start:r.end]})
		pos = r.end
	}
	if pos < len(code) {
		segs = append(segs, Segment{Kind: KindText, Text: code[pos:]})
	}
	return segs
}

var htmlClass = map[Kind]string{
	KindString:  "mql-string",
	KindComment: "mql-comment",
	KindKeyword: "mql-keyword",
	KindAPI:     "mql-api",
}

func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// ToHTML renders the code as span-annotated markup. Each segment is
// HTML-escaped before wrapping, so angle brackets and ampersands in the
// source can never be confused with the annotation itself. Stripping every
// tag and unescaping yields the input byte-for-byte.
func ToHTML(code string) string {
	var b strings.Builder
	for _, seg := range Scan(code) {
		escaped := escapeHTML(seg.Text)
		if class, ok := htmlClass[seg.Kind]; ok {
			b.WriteString(`<span class="` + class + `">`)
			b.WriteString(escaped)
			b.WriteString(`</span>`)
		} else {
			b.WriteString(escaped)
		}
	}
	return b.String()
}
