package transport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// JSONReader encodes v as a JSON request body.
func JSONReader(v any) (io.Reader, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("transport: encode body: %w", err)
	}
	return &buf, nil
}

// NDJSONReader encodes each item on its own line for bulk endpoints. The
// bulk wire format requires the final newline, which json.Encoder already
// emits after every value.
func NDJSONReader(items ...any) (io.Reader, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	for i, item := range items {
		if err := enc.Encode(item); err != nil {
			return nil, fmt.Errorf("transport: encode bulk item %d: %w", i, err)
		}
	}
	return &buf, nil
}
