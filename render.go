package mdexport

import (
	"strconv"
	"strings"
)

// headingSizes maps heading level (index+1) to font size in half-points.
var headingSizes = [6]int{48, 40, 36, 32, 28, 24}

// Fixed layout values, in twips unless noted.
const (
	headingAfter = "240" // spacing after a heading, twentieths of a point
	quoteIndent  = "720"
	quoteColor   = "666666"
	codeIndent   = "720"
	codeShading  = "F2F2F2"
	listIndent   = "720"
	listHanging  = "360"
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// xmlEscape escapes the five reserved XML characters. It is applied exactly
// once, to final text content after style composition, never to markup that
// has already been built.
func xmlEscape(s string) string {
	return xmlEscaper.Replace(s)
}

// runXML serializes one run: an ordered set of style markers followed by the
// escaped text. Property order is fixed (b, i, u, color, rFonts, sz) so
// identical runs always produce identical markup.
func runXML(r Run) string {
	var b strings.Builder
	b.WriteString("<w:r>")
	if props := runProps(r.Style); props != "" {
		b.WriteString("<w:rPr>")
		b.WriteString(props)
		b.WriteString("</w:rPr>")
	}
	b.WriteString(`<w:t xml:space="preserve">`)
	b.WriteString(xmlEscape(r.Text))
	b.WriteString("</w:t></w:r>")
	return b.String()
}

func runProps(s RunStyle) string {
	var b strings.Builder
	if s.Bold {
		b.WriteString("<w:b/>")
	}
	if s.Italic {
		b.WriteString("<w:i/>")
	}
	if s.Underline {
		b.WriteString(`<w:u w:val="single"/>`)
	}
	if s.Color != "" {
		b.WriteString(`<w:color w:val="` + s.Color + `"/>`)
	}
	if s.Font != "" {
		b.WriteString(`<w:rFonts w:ascii="` + s.Font + `" w:hAnsi="` + s.Font + `"/>`)
	}
	if s.Size > 0 {
		sz := strconv.Itoa(s.Size)
		b.WriteString(`<w:sz w:val="` + sz + `"/><w:szCs w:val="` + sz + `"/>`)
	}
	return b.String()
}

const lineBreak = "<w:r><w:br/></w:r>"

// renderBlock serializes one block as a WordprocessingML fragment.
// Pure: identical blocks render identical markup.
func renderBlock(b Block) string {
	switch b.Kind {
	case BlockHeading:
		level := b.Level
		if level < 1 {
			level = 1
		}
		if level > len(headingSizes) {
			level = len(headingSizes)
		}
		return `<w:p><w:pPr><w:spacing w:after="` + headingAfter + `"/></w:pPr>` +
			runXML(Run{Text: b.Text, Style: RunStyle{Bold: true, Size: headingSizes[level-1]}}) +
			"</w:p>"

	case BlockQuote:
		return `<w:p><w:pPr><w:ind w:left="` + quoteIndent + `"/></w:pPr>` +
			runXML(Run{Text: b.Text, Style: RunStyle{Italic: true, Color: quoteColor}}) +
			"</w:p>"

	case BlockCode:
		// One paragraph for the whole block: lines are joined by explicit
		// breaks so the shading reads as a single box. A stored blank line
		// renders as a single space to preserve the vertical line count.
		var sb strings.Builder
		sb.WriteString(`<w:p><w:pPr><w:ind w:left="` + codeIndent + `"/>` +
			`<w:shd w:val="clear" w:color="auto" w:fill="` + codeShading + `"/></w:pPr>`)
		for i, line := range b.Lines {
			if i > 0 {
				sb.WriteString(lineBreak)
			}
			if line == "" {
				line = " "
			}
			sb.WriteString(runXML(Run{Text: line, Style: RunStyle{Font: monospaceFont}}))
		}
		sb.WriteString("</w:p>")
		return sb.String()

	case BlockBulletList, BlockNumberList:
		var sb strings.Builder
		for i, item := range b.Items {
			prefix := "• "
			if b.Kind == BlockNumberList {
				prefix = strconv.Itoa(i+1) + ". "
			}
			sb.WriteString(`<w:p><w:pPr><w:ind w:left="` + listIndent + `" w:hanging="` + listHanging + `"/></w:pPr>`)
			sb.WriteString(runXML(Run{Text: prefix}))
			for _, r := range Tokenize(item) {
				sb.WriteString(runXML(r))
			}
			sb.WriteString("</w:p>")
		}
		return sb.String()

	default: // BlockParagraph
		var sb strings.Builder
		sb.WriteString("<w:p>")
		for i, line := range b.Lines {
			if i > 0 {
				sb.WriteString(lineBreak)
			}
			for _, r := range Tokenize(line) {
				sb.WriteString(runXML(r))
			}
		}
		sb.WriteString("</w:p>")
		return sb.String()
	}
}

// renderBody renders the whole block sequence. An empty sequence still
// yields one empty paragraph so the packaged document is never structurally
// empty.
func renderBody(blocks []Block) string {
	if len(blocks) == 0 {
		return "<w:p/>"
	}
	var sb strings.Builder
	for _, b := range blocks {
		sb.WriteString(renderBlock(b))
	}
	return sb.String()
}
