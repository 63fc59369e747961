package mdexport

import (
	"bytes"
	"fmt"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the codec for plain Markdown export. The docx
// container is unaffected: its archive entries are always stored.
type Compression uint16

const (
	CompNone Compression = 0x0
	CompZSTD Compression = 0x1
	CompLZ4  Compression = 0x2
	CompBR   Compression = 0x3
)

// Function variables for testing injection.
var (
	newZstdWriter = func() (*zstd.Encoder, error) { return zstd.NewWriter(nil) }
	lz4Close      = func(w *lz4.Writer) error { return w.Close() }
	brotliClose   = func(w *brotli.Writer) error { return w.Close() }
)

// Extension returns the file suffix for a plain export with the given
// codec: ".md", ".md.zst", ".md.lz4", or ".md.br".
func Extension(comp Compression) string {
	switch comp {
	case CompZSTD:
		return ".md.zst"
	case CompLZ4:
		return ".md.lz4"
	case CompBR:
		return ".md.br"
	default:
		return ".md"
	}
}

// ParseCompression maps a codec name ("none", "zstd", "lz4", "br" or
// "brotli") to its Compression value. An empty name means CompNone.
func ParseCompression(name string) (Compression, error) {
	switch name {
	case "", "none":
		return CompNone, nil
	case "zstd":
		return CompZSTD, nil
	case "lz4":
		return CompLZ4, nil
	case "br", "brotli":
		return CompBR, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCompression, name)
}

// compressNote compresses data with the selected codec. CompNone returns
// data as-is.
func compressNote(comp Compression, data []byte) ([]byte, error) {
	switch comp {
	case CompNone:
		return data, nil
	case CompZSTD:
		return zstdCompress(data)
	case CompLZ4:
		return lz4Compress(data)
	case CompBR:
		return brotliCompress(data)
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, comp)
}

// zstdCompress compresses in using the Zstandard algorithm.
func zstdCompress(in []byte) ([]byte, error) {
	enc, err := newZstdWriter()
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(in, nil), nil
}

// lz4Compress compresses in using the LZ4 algorithm.
func lz4Compress(in []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	if _, err := zw.Write(in); err != nil {
		_ = lz4Close(zw)
		return nil, err
	}
	if err := lz4Close(zw); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// brotliCompress compresses in using the Brotli algorithm.
func brotliCompress(in []byte) ([]byte, error) {
	var buf bytes.Buffer
	bw := brotli.NewWriter(&buf)
	if _, err := bw.Write(in); err != nil {
		_ = brotliClose(bw)
		return nil, err
	}
	if err := brotliClose(bw); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
