package mdexport

import (
	"regexp"
	"strings"
)

// BlockKind discriminates parsed Markdown blocks.
type BlockKind uint8

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockQuote
	BlockCode
	BlockBulletList
	BlockNumberList
)

// Block is one structural unit of parsed Markdown. Which fields carry data
// depends on Kind: headings and blockquotes use Text, paragraphs and code
// blocks use Lines, lists use Items. Blocks preserve source order and are
// not modified after ParseBlocks returns.
type Block struct {
	Kind  BlockKind
	Level int    // heading level, 1 through 6
	Text  string
	Lang  string // code fence language tag, informational only
	Lines []string
	Items []string
}

var (
	fenceRe   = regexp.MustCompile("^```[ \t]*([A-Za-z0-9+#._-]*)[ \t]*$")
	headingRe = regexp.MustCompile(`^(#+)\s+(.*)$`)
	quoteRe   = regexp.MustCompile(`^>\s?(.*)$`)
	bulletRe  = regexp.MustCompile(`^[-*+]\s+(.*)$`)
	numberRe  = regexp.MustCompile(`^\d+\.\s+(.*)$`)
)

// ParseBlocks splits Markdown text into an ordered block sequence.
//
// It is total: any input, including empty or malformed Markdown, yields a
// valid (possibly empty) sequence. Scanning is line-oriented with line
// endings normalized to LF. Per line, recognition precedence is: code fence
// toggle, blank line, heading, blockquote, list marker, paragraph text.
// Inside a fence, lines are captured verbatim (right-trimmed) and never
// reinterpreted; an unterminated fence at end of input still yields a code
// block with whatever was captured.
func ParseBlocks(text string) []Block {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var (
		blocks    []Block
		para      []string
		items     []string
		listKind  BlockKind
		inCode    bool
		codeLang  string
		codeLines []string
	)

	flushPara := func() {
		if len(para) > 0 {
			blocks = append(blocks, Block{Kind: BlockParagraph, Lines: para})
			para = nil
		}
	}
	flushList := func() {
		if len(items) > 0 {
			blocks = append(blocks, Block{Kind: listKind, Items: items})
			items = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if inCode {
			if fenceRe.MatchString(line) {
				blocks = append(blocks, Block{Kind: BlockCode, Lang: codeLang, Lines: codeLines})
				codeLines = nil
				inCode = false
				continue
			}
			codeLines = append(codeLines, strings.TrimRight(line, " \t"))
			continue
		}
		if m := fenceRe.FindStringSubmatch(line); m != nil {
			flushPara()
			flushList()
			inCode = true
			codeLang = m[1]
			continue
		}
		if strings.TrimSpace(line) == "" {
			flushPara()
			flushList()
			continue
		}
		if m := headingRe.FindStringSubmatch(line); m != nil {
			flushPara()
			flushList()
			level := len(m[1])
			if level > 6 {
				level = 6
			}
			blocks = append(blocks, Block{Kind: BlockHeading, Level: level, Text: m[2]})
			continue
		}
		if m := quoteRe.FindStringSubmatch(line); m != nil {
			flushPara()
			flushList()
			blocks = append(blocks, Block{Kind: BlockQuote, Text: m[1]})
			continue
		}
		if m := bulletRe.FindStringSubmatch(line); m != nil {
			flushPara()
			if listKind != BlockBulletList {
				flushList()
			}
			listKind = BlockBulletList
			items = append(items, m[1])
			continue
		}
		if m := numberRe.FindStringSubmatch(line); m != nil {
			flushPara()
			if listKind != BlockNumberList {
				flushList()
			}
			listKind = BlockNumberList
			items = append(items, m[1])
			continue
		}
		flushList()
		para = append(para, line)
	}

	flushPara()
	flushList()
	if inCode {
		// Tolerated edge case, not an error.
		blocks = append(blocks, Block{Kind: BlockCode, Lang: codeLang, Lines: codeLines})
	}
	return blocks
}
