package r2client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// ContentTypeZstdJSON is the content type used for compressed JSON objects.
const ContentTypeZstdJSON = "application/zstd"

// EncodeJSON marshals v as JSON and compresses it with zstd.
func EncodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	encoder, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return nil, fmt.Errorf("compress: create encoder: %w", err)
	}

	if err := json.NewEncoder(encoder).Encode(v); err != nil {
		_ = encoder.Close()
		return nil, fmt.Errorf("compress: encode json: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("compress: close encoder: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeJSON decompresses a zstd stream and unmarshals the JSON into v.
// Uses streaming decompression to minimize memory usage.
func DecodeJSON(r io.Reader, v any) error {
	decoder, err := zstd.NewReader(r)
	if err != nil {
		return fmt.Errorf("decompress: create decoder: %w", err)
	}
	defer decoder.Close()

	if err := json.NewDecoder(decoder).Decode(v); err != nil {
		return fmt.Errorf("decompress: decode json: %w", err)
	}
	return nil
}

// NewDecompressReader wraps r so reads return decompressed bytes.
// Close releases decoder resources; it does not close r.
func NewDecompressReader(r io.Reader) (io.ReadCloser, error) {
	decoder, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("decompress: create decoder: %w", err)
	}
	return decoder.IOReadCloser(), nil
}
