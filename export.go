package mdexport

import (
	"fmt"
	"io"
	"time"
)

// Note is one document to export: a title, raw Markdown content, and the
// creation timestamp recorded in the document properties.
type Note struct {
	Title   string
	Content string
	Created time.Time
}

// ExportDocx converts note.Content from Markdown into an OOXML
// word-processing document and writes the container to w.
//
// The pipeline is parse, render, assemble the six package parts, archive.
// ExportDocx performs no storage or UI side effects; persisting the bytes is
// the caller's responsibility.
//
// By default, ExportDocx will:
//   - Record "go-mdexport" as application and creator in the document
//     properties
//   - Fall back to time.Now().UTC() when note.Created is zero; a fixed
//     Created makes the output byte-identical across calls
//
// Use ExportOption functions to customize this behavior:
//   - WithApplication(name): change the application property
//   - WithCreator(name): change the creator property
//   - WithLimits(l): set custom size limits
func ExportDocx(w io.Writer, note *Note, opts ...ExportOption) error {
	cfg := newExportConfig(opts)
	if note == nil {
		return fmt.Errorf("%w: note is nil", ErrValidation)
	}
	if uint64(len(note.Content)) > cfg.limits.MaxContentLen {
		return fmt.Errorf("%w: content is %d bytes", ErrLimitExceeded, len(note.Content))
	}
	created := note.Created
	if created.IsZero() {
		created = time.Now().UTC()
	}

	body := renderBody(ParseBlocks(note.Content))
	parts := packageParts(note.Title, body, created, cfg)
	return WriteArchive(w, parts, created, WithLimits(cfg.limits))
}

// ExportMarkdown writes note.Content unchanged as UTF-8 Markdown, optionally
// compressed with the codec selected by WithCompression (CompNone by
// default). Extension reports the matching file suffix.
func ExportMarkdown(w io.Writer, note *Note, opts ...ExportOption) error {
	cfg := newExportConfig(opts)
	if note == nil {
		return fmt.Errorf("%w: note is nil", ErrValidation)
	}
	if uint64(len(note.Content)) > cfg.limits.MaxContentLen {
		return fmt.Errorf("%w: content is %d bytes", ErrLimitExceeded, len(note.Content))
	}
	out, err := compressNote(cfg.compression, []byte(note.Content))
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
