package mdexport

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"time"
)

// ZIP record signatures and fixed record sizes.
const (
	sigLocalHeader uint32 = 0x04034B50
	sigCentralDir  uint32 = 0x02014B50
	sigEndCentral  uint32 = 0x06054B50

	zipVersion   uint16 = 20     // version needed to extract
	zipFlagUTF8  uint16 = 0x0800 // general-purpose bit 11: UTF-8 names
	methodStored uint16 = 0

	localHeaderSize   = 30
	centralHeaderSize = 46
	endCentralSize    = 22
)

// ArchiveEntry is one named payload to store in the container. CRC and
// header offsets are derived during writing, never supplied.
type ArchiveEntry struct {
	Name string
	Data []byte
}

// WriteArchive writes entries to w as a single-segment ZIP archive.
//
// Entries are stored uncompressed in the given order: each local file header
// is followed immediately by the raw bytes, then one central-directory
// record per entry, then the end-of-central-directory record. All multi-byte
// integers are little-endian. For fixed entries and modTime the output is
// byte-identical across calls.
//
// The general-purpose UTF-8 name flag is set while version-needed stays at
// 20. Strictly the flag postdates that version, but real-world writers pair
// the two and readers tolerate it, so the combination is kept.
//
// WriteArchive fails with ErrDuplicateEntry when two entries share a name
// and with ErrEntryTooLarge when an entry's size or name length exceeds its
// header field capacity. It never silently truncates.
func WriteArchive(w io.Writer, entries []ArchiveEntry, modTime time.Time, opts ...ExportOption) error {
	cfg := newExportConfig(opts)
	if len(entries) > cfg.limits.MaxEntries {
		return fmt.Errorf("%w: %d entries", ErrLimitExceeded, len(entries))
	}
	dosDate, dosTime := dosDateTime(modTime)

	seen := make(map[string]struct{}, len(entries))
	var body, central bytes.Buffer

	for _, e := range entries {
		if _, ok := seen[e.Name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateEntry, e.Name)
		}
		seen[e.Name] = struct{}{}

		name := []byte(e.Name)
		if len(name) > cfg.limits.MaxNameLen {
			return fmt.Errorf("%w: name %q is %d bytes", ErrEntryTooLarge, e.Name, len(name))
		}
		if uint64(len(e.Data)) > cfg.limits.MaxEntrySize {
			return fmt.Errorf("%w: %q is %d bytes", ErrEntryTooLarge, e.Name, len(e.Data))
		}
		if uint64(body.Len()) > zipFieldCap {
			return fmt.Errorf("%w: header offset exceeds field capacity", ErrEntryTooLarge)
		}

		crc := crc32Sum(e.Data)
		size := uint32(len(e.Data))
		offset := uint32(body.Len())

		var lh [localHeaderSize]byte
		binary.LittleEndian.PutUint32(lh[0:4], sigLocalHeader)
		binary.LittleEndian.PutUint16(lh[4:6], zipVersion)
		binary.LittleEndian.PutUint16(lh[6:8], zipFlagUTF8)
		binary.LittleEndian.PutUint16(lh[8:10], methodStored)
		binary.LittleEndian.PutUint16(lh[10:12], dosTime)
		binary.LittleEndian.PutUint16(lh[12:14], dosDate)
		binary.LittleEndian.PutUint32(lh[14:18], crc)
		binary.LittleEndian.PutUint32(lh[18:22], size) // compressed == uncompressed: stored
		binary.LittleEndian.PutUint32(lh[22:26], size)
		binary.LittleEndian.PutUint16(lh[26:28], uint16(len(name)))
		binary.LittleEndian.PutUint16(lh[28:30], 0) // extra field length
		body.Write(lh[:])
		body.Write(name)
		body.Write(e.Data)

		var ch [centralHeaderSize]byte
		binary.LittleEndian.PutUint32(ch[0:4], sigCentralDir)
		binary.LittleEndian.PutUint16(ch[4:6], zipVersion) // version made by
		binary.LittleEndian.PutUint16(ch[6:8], zipVersion)
		binary.LittleEndian.PutUint16(ch[8:10], zipFlagUTF8)
		binary.LittleEndian.PutUint16(ch[10:12], methodStored)
		binary.LittleEndian.PutUint16(ch[12:14], dosTime)
		binary.LittleEndian.PutUint16(ch[14:16], dosDate)
		binary.LittleEndian.PutUint32(ch[16:20], crc)
		binary.LittleEndian.PutUint32(ch[20:24], size)
		binary.LittleEndian.PutUint32(ch[24:28], size)
		binary.LittleEndian.PutUint16(ch[28:30], uint16(len(name)))
		// Extra, comment, disk number, internal and external attributes
		// stay zero for a stored single-segment archive.
		binary.LittleEndian.PutUint32(ch[42:46], offset)
		central.Write(ch[:])
		central.Write(name)
	}

	if uint64(body.Len()) > zipFieldCap {
		return fmt.Errorf("%w: central directory offset exceeds field capacity", ErrEntryTooLarge)
	}

	var eocd [endCentralSize]byte
	binary.LittleEndian.PutUint32(eocd[0:4], sigEndCentral)
	binary.LittleEndian.PutUint16(eocd[8:10], uint16(len(entries))) // entries on this disk
	binary.LittleEndian.PutUint16(eocd[10:12], uint16(len(entries)))
	binary.LittleEndian.PutUint32(eocd[12:16], uint32(central.Len()))
	binary.LittleEndian.PutUint32(eocd[16:20], uint32(body.Len()))

	if _, err := w.Write(body.Bytes()); err != nil {
		return err
	}
	if _, err := w.Write(central.Bytes()); err != nil {
		return err
	}
	_, err := w.Write(eocd[:])
	return err
}

// dosDateTime packs t into the legacy 16-bit MS-DOS date and time words used
// by ZIP headers (2-second resolution). Times before the DOS epoch clamp to
// 1980-01-01 00:00:00; a zero time does too, keeping output deterministic.
func dosDateTime(t time.Time) (date, tim uint16) {
	t = t.UTC()
	if t.Year() < 1980 {
		t = time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	date = uint16((t.Year()-1980)<<9 | int(t.Month())<<5 | t.Day())
	tim = uint16(t.Hour()<<11 | t.Minute()<<5 | t.Second()/2)
	return date, tim
}
