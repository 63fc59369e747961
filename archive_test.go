package mdexport

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
	"time"
)

var fixedStamp = time.Date(2026, 8, 23, 14, 30, 10, 0, time.UTC)

func TestWriteArchive_Layout(t *testing.T) {
	entries := []ArchiveEntry{
		{Name: "a.xml", Data: []byte("0123456789")},
		{Name: "b.xml", Data: nil},
	}
	var buf bytes.Buffer
	if err := WriteArchive(&buf, entries, fixedStamp); err != nil {
		t.Fatalf("WriteArchive: %v", err)
	}
	b := buf.Bytes()

	// Local headers: 30 bytes + 5-byte name each; first entry carries 10
	// data bytes. The central directory starts right after.
	wantCDOffset := uint32((30 + 5 + 10) + (30 + 5))
	wantCDSize := uint32(2 * (46 + 5))

	eocd := b[len(b)-endCentralSize:]
	if sig := binary.LittleEndian.Uint32(eocd[0:4]); sig != sigEndCentral {
		t.Fatalf("bad EOCD signature %#x", sig)
	}
	if n := binary.LittleEndian.Uint16(eocd[8:10]); n != 2 {
		t.Fatalf("entry count on disk = %d", n)
	}
	if n := binary.LittleEndian.Uint16(eocd[10:12]); n != 2 {
		t.Fatalf("total entry count = %d", n)
	}
	if size := binary.LittleEndian.Uint32(eocd[12:16]); size != wantCDSize {
		t.Fatalf("central directory size = %d, want %d", size, wantCDSize)
	}
	if off := binary.LittleEndian.Uint32(eocd[16:20]); off != wantCDOffset {
		t.Fatalf("central directory offset = %d, want %d", off, wantCDOffset)
	}
	if len(b) != int(wantCDOffset+wantCDSize)+endCentralSize {
		t.Fatalf("total size = %d", len(b))
	}

	// Each central record's stored offset matches the actual local header
	// position in the stream.
	cd := b[wantCDOffset:]
	offsets := []uint32{0, 30 + 5 + 10}
	for i, want := range offsets {
		rec := cd[i*(46+5):]
		if sig := binary.LittleEndian.Uint32(rec[0:4]); sig != sigCentralDir {
			t.Fatalf("record %d: bad signature %#x", i, sig)
		}
		got := binary.LittleEndian.Uint32(rec[42:46])
		if got != want {
			t.Fatalf("record %d: offset %d, want %d", i, got, want)
		}
		if sig := binary.LittleEndian.Uint32(b[got : got+4]); sig != sigLocalHeader {
			t.Fatalf("record %d: no local header at stored offset", i)
		}
	}
}

func TestWriteArchive_Deterministic(t *testing.T) {
	entries := []ArchiveEntry{
		{Name: "word/document.xml", Data: []byte("<w:document/>")},
		{Name: "docProps/core.xml", Data: []byte("<core/>")},
	}
	var a, b bytes.Buffer
	if err := WriteArchive(&a, entries, fixedStamp); err != nil {
		t.Fatal(err)
	}
	if err := WriteArchive(&b, entries, fixedStamp); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Fatal("same entries and timestamp must produce identical archives")
	}
}

func TestWriteArchive_ReadableByStdlib(t *testing.T) {
	entries := []ArchiveEntry{
		{Name: "a.xml", Data: []byte("alpha")},
		{Name: "dir/b.xml", Data: []byte("beta")},
		{Name: "empty.xml", Data: nil},
	}
	var buf bytes.Buffer
	if err := WriteArchive(&buf, entries, fixedStamp); err != nil {
		t.Fatal(err)
	}
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("stdlib reader rejected archive: %v", err)
	}
	if len(zr.File) != len(entries) {
		t.Fatalf("expected %d entries, got %d", len(entries), len(zr.File))
	}
	for i, e := range entries {
		zf := zr.File[i]
		if zf.Name != e.Name {
			t.Fatalf("entry %d: name %q, want %q", i, zf.Name, e.Name)
		}
		if zf.Method != zip.Store {
			t.Fatalf("entry %q: not stored", zf.Name)
		}
		rc, err := zf.Open()
		if err != nil {
			t.Fatalf("open %q: %v", zf.Name, err)
		}
		got, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			// A CRC mismatch would surface here.
			t.Fatalf("read %q: %v", zf.Name, err)
		}
		if !bytes.Equal(got, e.Data) {
			t.Fatalf("entry %q: data mismatch", zf.Name)
		}
	}
}

func TestWriteArchive_DuplicateName(t *testing.T) {
	entries := []ArchiveEntry{
		{Name: "a.xml", Data: []byte("x")},
		{Name: "a.xml", Data: []byte("y")},
	}
	err := WriteArchive(io.Discard, entries, fixedStamp)
	if !errors.Is(err, ErrDuplicateEntry) {
		t.Fatalf("expected ErrDuplicateEntry, got %v", err)
	}
}

func TestWriteArchive_EntryTooLarge(t *testing.T) {
	entries := []ArchiveEntry{{Name: "a.xml", Data: []byte("0123456789")}}
	err := WriteArchive(io.Discard, entries, fixedStamp, WithLimits(Limits{MaxEntrySize: 4}))
	if !errors.Is(err, ErrEntryTooLarge) {
		t.Fatalf("expected ErrEntryTooLarge, got %v", err)
	}
}

func TestWriteArchive_TooManyEntries(t *testing.T) {
	entries := []ArchiveEntry{
		{Name: "a.xml"}, {Name: "b.xml"}, {Name: "c.xml"},
	}
	err := WriteArchive(io.Discard, entries, fixedStamp, WithLimits(Limits{MaxEntries: 2}))
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("expected ErrLimitExceeded, got %v", err)
	}
}

func TestWriteArchive_WriterError(t *testing.T) {
	entries := []ArchiveEntry{{Name: "a.xml", Data: []byte("x")}}
	w := &failingWriter{n: 10}
	if err := WriteArchive(w, entries, fixedStamp); err == nil {
		t.Fatal("expected error")
	}
}

func TestDOSDateTime(t *testing.T) {
	date, tim := dosDateTime(fixedStamp)
	wantDate := uint16((2026-1980)<<9 | 8<<5 | 23)
	wantTime := uint16(14<<11 | 30<<5 | 10/2)
	if date != wantDate || tim != wantTime {
		t.Fatalf("packed %#x/%#x, want %#x/%#x", date, tim, wantDate, wantTime)
	}

	// Pre-epoch and zero times clamp to the DOS epoch.
	for _, ts := range []time.Time{{}, time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)} {
		date, tim = dosDateTime(ts)
		if date != uint16(1<<5|1) || tim != 0 {
			t.Fatalf("clamp failed: %#x/%#x", date, tim)
		}
	}
}

type failingWriter struct {
	n int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, io.ErrClosedPipe
	}
	if len(p) > w.n {
		p = p[:w.n]
	}
	w.n -= len(p)
	return len(p), nil
}
