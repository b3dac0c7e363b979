package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec names a stream compression format for written artifacts.
type Codec string

const (
	CodecNone Codec = "none"
	CodecGzip Codec = "gzip"
	CodecZstd Codec = "zstd"
	CodecS2   Codec = "s2"
	CodecLZ4  Codec = "lz4"
)

// ParseCodec parses a codec name. The empty string means CodecNone.
func ParseCodec(s string) (Codec, error) {
	switch c := Codec(strings.ToLower(strings.TrimSpace(s))); c {
	case "":
		return CodecNone, nil
	case CodecNone, CodecGzip, CodecZstd, CodecS2, CodecLZ4:
		return c, nil
	default:
		return "", fmt.Errorf("unknown codec %q (must be none, gzip, zstd, s2 or lz4)", s)
	}
}

// Extension returns the file suffix conventionally added by the codec.
func (c Codec) Extension() string {
	switch c {
	case CodecGzip:
		return ".gz"
	case CodecZstd:
		return ".zst"
	case CodecS2:
		return ".s2"
	case CodecLZ4:
		return ".lz4"
	default:
		return ""
	}
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// NewCompressedWriter wraps w in an encoder for c. Closing the result
// flushes the encoder but does not close w.
func NewCompressedWriter(w io.Writer, c Codec) (io.WriteCloser, error) {
	switch c {
	case CodecNone, "":
		return nopCloser{w}, nil
	case CodecGzip:
		return gzip.NewWriterLevel(w, gzip.BestCompression)
	case CodecZstd:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	case CodecS2:
		return s2.NewWriter(w), nil
	case CodecLZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("unknown codec %q", c)
	}
}
