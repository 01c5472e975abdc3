package httpx

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
)

// maxPeekBytes bounds how much of a request body PeekJSONField will buffer.
const maxPeekBytes = 1 << 20

// PeekJSONField reads a top-level string field out of a JSON request body and
// then restores the body so downstream handlers can decode it again.
// Returns "" when the body is missing, oversized, not JSON, or the field is
// absent or not a string.
func PeekJSONField(r *http.Request, fieldName string) string {
	if r.Body == nil {
		return ""
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxPeekBytes))
	_ = r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(data))
	if err != nil {
		return ""
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return ""
	}

	raw, ok := fields[fieldName]
	if !ok {
		return ""
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return ""
	}
	return value
}
