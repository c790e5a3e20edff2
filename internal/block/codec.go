package block

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/near/borsh-go"
)

// ErrCorruptPayload is returned when an archived payload cannot be
// decompressed or decoded back into a Block.
var ErrCorruptPayload = errors.New("corrupt archive payload")

const (
	// compressionQuality is brotli's highest quality level.
	compressionQuality = 11

	// compressionWindow is the base-2 logarithm of the sliding window size.
	compressionWindow = 22
)

// Encode serializes b into its borsh binary envelope. The encoding has no
// version prefix and depends only on field order, so the same logical block
// always produces the same bytes.
func Encode(b Block) ([]byte, error) {
	data, err := borsh.Serialize(b)
	if err != nil {
		return nil, fmt.Errorf("%w: encode: %w", ErrMalformedBlock, err)
	}

	return data, nil
}

// Unmarshal decodes a borsh binary envelope produced by Encode.
func Unmarshal(data []byte) (Block, error) {
	var b Block
	if err := borsh.Deserialize(&b, data); err != nil {
		return Block{}, fmt.Errorf("%w: %w", ErrCorruptPayload, err)
	}

	return b, nil
}

// Compress compresses data with brotli tuned for ratio over speed.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w := brotli.NewWriterOptions(&buf, brotli.WriterOptions{
		Quality: compressionQuality,
		LGWin:   compressionWindow,
	})
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress reverses Compress.
func Decompress(data []byte) ([]byte, error) {
	out, err := io.ReadAll(brotli.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptPayload, err)
	}

	return out, nil
}

// Pack runs the full archive transform on raw sidecar JSON and returns the
// compressed payload ready to be used as calldata.
func Pack(raw []byte) ([]byte, error) {
	b, err := Decode(raw)
	if err != nil {
		return nil, err
	}

	encoded, err := Encode(b)
	if err != nil {
		return nil, err
	}

	return Compress(encoded)
}

// Unpack turns an archived payload back into a Block.
func Unpack(payload []byte) (Block, error) {
	encoded, err := Decompress(payload)
	if err != nil {
		return Block{}, err
	}

	return Unmarshal(encoded)
}
