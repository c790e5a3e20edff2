package block

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/blockarchive/internal/pkg/validator"
)

// ErrMalformedBlock is returned when the source block cannot be turned into a
// canonical Block. It is permanent: retrying the same height yields the same
// result until the upstream data changes.
var ErrMalformedBlock = errors.New("malformed block")

// opaqueExtrinsicFields are the extrinsic fields kept as raw JSON text.
var opaqueExtrinsicFields = [...]string{"args", "info"}

// Normalize repairs the irregular parts of a sidecar block so it can be
// decoded strictly into a Block:
//
//   - extrinsic "args" and "info" values that are not strings are replaced by
//     their compact JSON text;
//   - extrinsic event "data" arrays keep only their string elements, and
//     "data" objects are replaced by their compact JSON text.
//
// Everything else is passed through untouched.
func Normalize(raw []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedBlock, err)
	}

	extrinsics, _ := doc["extrinsics"].([]any)
	for _, item := range extrinsics {
		extrinsic, ok := item.(map[string]any)
		if !ok {
			continue
		}

		for _, field := range opaqueExtrinsicFields {
			if err := stringifyField(extrinsic, field); err != nil {
				return nil, err
			}
		}

		events, _ := extrinsic["events"].([]any)
		for _, item := range events {
			event, ok := item.(map[string]any)
			if !ok {
				continue
			}

			if err := normalizeEventData(event); err != nil {
				return nil, err
			}
		}
	}

	return compactJSON(doc)
}

// stringifyField replaces obj[field] with its JSON text unless it already is a string.
func stringifyField(obj map[string]any, field string) error {
	value, ok := obj[field]
	if !ok {
		return nil
	}

	if _, isString := value.(string); isString {
		return nil
	}

	text, err := compactJSON(value)
	if err != nil {
		return err
	}

	obj[field] = string(text)
	return nil
}

// normalizeEventData narrows an event's "data" field into the shapes DataList accepts.
func normalizeEventData(event map[string]any) error {
	switch data := event["data"].(type) {
	case []any:
		values := make([]any, 0, len(data))
		for _, item := range data {
			if s, ok := item.(string); ok {
				values = append(values, s)
			}
		}
		event["data"] = values
	case map[string]any:
		text, err := compactJSON(data)
		if err != nil {
			return err
		}
		event["data"] = string(text)
	}

	return nil
}

// compactJSON encodes v without HTML escaping and without the trailing newline
// added by json.Encoder. Object keys are sorted, which keeps the output stable.
func compactJSON(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedBlock, err)
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Decode normalizes raw sidecar JSON and decodes it into a canonical Block.
//
// Any failure, including a missing required field, wraps ErrMalformedBlock.
func Decode(raw []byte) (Block, error) {
	normalized, err := Normalize(raw)
	if err != nil {
		return Block{}, err
	}

	var b Block
	if err := json.Unmarshal(normalized, &b); err != nil {
		return Block{}, fmt.Errorf("%w: %w", ErrMalformedBlock, err)
	}

	if err := validator.Validate(b); err != nil {
		return Block{}, fmt.Errorf("%w: %w", ErrMalformedBlock, err)
	}

	return b, nil
}
