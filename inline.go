package mdexport

import "regexp"

// RunStyle is the fixed-field style record attached to a Run. Zero values
// mean unset; the fixed shape keeps serialization order deterministic.
type RunStyle struct {
	Bold      bool
	Italic    bool
	Underline bool
	Color     string // RRGGBB, no leading #
	Font      string
	Size      int // half-points; 0 uses the document default
}

// Run is a contiguous span of text sharing one style within a paragraph.
type Run struct {
	Text  string
	Style RunStyle
}

const (
	monospaceFont = "Consolas"
	linkColor     = "0563C1" // Word's default hyperlink blue
)

// inlineRe matches, in priority order per position: code span, bold,
// italic, image reference, link reference.
var inlineRe = regexp.MustCompile("`([^`]+)`" +
	`|\*\*([^*]+)\*\*` +
	`|\*([^*]+)\*` +
	`|!\[([^\]]*)\]\(([^)]*)\)` +
	`|\[([^\]]+)\]\(([^)]*)\)`)

// Tokenize splits one line of block text into styled runs.
//
// It is a single left-to-right scan that never drops characters: text
// between matches becomes a plain run, markup delimiters are consumed, and
// any trailing unmatched text becomes a final plain run. Concatenating the
// run texts of unstyled input reproduces the input exactly.
func Tokenize(text string) []Run {
	var runs []Run
	last := 0
	for _, m := range inlineRe.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > last {
			runs = append(runs, Run{Text: text[last:m[0]]})
		}
		runs = append(runs, matchRuns(text, m)...)
		last = m[1]
	}
	if last < len(text) {
		runs = append(runs, Run{Text: text[last:]})
	}
	return runs
}

// matchRuns converts one inlineRe match into runs. Group numbering follows
// the alternation order in inlineRe.
func matchRuns(text string, m []int) []Run {
	group := func(i int) (string, bool) {
		if m[2*i] < 0 {
			return "", false
		}
		return text[m[2*i]:m[2*i+1]], true
	}
	if code, ok := group(1); ok {
		return []Run{{Text: code, Style: RunStyle{Font: monospaceFont}}}
	}
	if bold, ok := group(2); ok {
		return []Run{{Text: bold, Style: RunStyle{Bold: true}}}
	}
	if italic, ok := group(3); ok {
		return []Run{{Text: italic, Style: RunStyle{Italic: true}}}
	}
	if alt, ok := group(4); ok {
		// Images become descriptive text; binary data is never embedded.
		url, _ := group(5)
		if alt == "" {
			alt = "image"
		}
		return []Run{{Text: alt + " (" + url + ")", Style: RunStyle{Italic: true}}}
	}
	if label, ok := group(6); ok {
		runs := []Run{{Text: label, Style: RunStyle{Underline: true, Color: linkColor}}}
		if url, _ := group(7); url != "" {
			runs = append(runs, Run{Text: " (" + url + ")"})
		}
		return runs
	}
	return []Run{{Text: text[m[0]:m[1]]}}
}
