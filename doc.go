// Package mdexport converts Markdown text into Microsoft Word (OOXML)
// documents.
//
// The exporter is a chain of small, pure stages:
//   - a line-oriented block parser that splits Markdown into headings,
//     paragraphs, blockquotes, fenced code blocks, and lists
//   - an inline tokenizer that splits block text into styled runs
//     (bold, italic, code spans, links, images)
//   - an OOXML renderer that serializes blocks and runs as
//     WordprocessingML markup
//   - a ZIP writer that packages the document parts into a stored
//     (uncompressed) OOXML container
//
// # Basic Usage
//
// To export a note as a .docx file:
//
//	note := &mdexport.Note{
//		Title:   "Meeting notes",
//		Content: "# Agenda\n\n- item one\n- item two\n",
//		Created: time.Now().UTC(),
//	}
//	f, _ := os.Create("meeting-notes.docx")
//	defer f.Close()
//	err := mdexport.ExportDocx(f, note)
//
// The produced archive contains exactly six parts ([Content_Types].xml,
// _rels/.rels, docProps/core.xml, docProps/app.xml, word/document.xml,
// word/_rels/document.xml.rels) and opens in any OOXML-compliant viewer.
//
// # Plain Export
//
// ExportMarkdown writes the note content unchanged as UTF-8 Markdown,
// optionally compressed with Zstandard, LZ4, or Brotli:
//
//	err := mdexport.ExportMarkdown(f, note, mdexport.WithCompression(mdexport.CompZSTD))
//
// Compression applies only to plain exports. Entries inside the docx
// container are always stored uncompressed.
//
// # Determinism
//
// Every stage operates solely on its inputs: for a fixed Note with a
// non-zero Created timestamp the exported bytes are identical across calls,
// and concurrent exports of different notes need no synchronization.
package mdexport
