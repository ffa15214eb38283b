package core

// streaming.go wraps input readers so both datasets reach the parsers as
// clean, NFC-normalized UTF-8:
//
//   - a leading UTF-8 BOM is dropped
//   - ill-formed UTF-8 is replaced with U+FFFD
//   - text is composed to NFC so "ü" written as u+U+0308 matches "ü"
//
// CountingReader tracks the bytes consumed for load diagnostics.

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NewSanitizingReader returns r with BOM removal, UTF-8 repair and NFC
// composition applied on the fly.
func NewSanitizingReader(r io.Reader) io.Reader {
	t := transform.Chain(
		unicode.UTF8BOM.NewDecoder(),
		runes.ReplaceIllFormed(),
		norm.NFC,
	)
	return transform.NewReader(r, t)
}

// CountingReader wraps an io.Reader to track bytes read.
type CountingReader struct {
	reader    io.Reader
	BytesRead int64
}

// NewCountingReader creates a counting reader.
func NewCountingReader(r io.Reader) *CountingReader {
	return &CountingReader{reader: r}
}

// Read implements io.Reader.
func (r *CountingReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	r.BytesRead += int64(n)
	return n, err
}

// WrapForReading counts raw bytes and sanitizes the decoded stream.
// The counter sits below the sanitizer so BytesRead reports file bytes.
func WrapForReading(r io.Reader) (io.Reader, *CountingReader) {
	counter := NewCountingReader(r)
	return NewSanitizingReader(counter), counter
}
