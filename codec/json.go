package codec

import (
	"encoding/json"

	"github.com/gkindel/nano-cache/errors"
)

// JSON is a Serializer backed by encoding/json. Decode returns the generic
// representation (map[string]any, []any, float64, string, bool, nil), so a
// round trip is deep-equal for any JSON-representable value but does not
// reconstruct concrete Go types.
type JSON struct{}

// NewJSON returns the JSON serializer.
func NewJSON() JSON {
	return JSON{}
}

// Encode serializes a value to JSON.
func (JSON) Encode(value any) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, errors.WrapInvalid(errors.ErrEncodeFailed, "JSON", "Encode", err.Error())
	}
	return data, nil
}

// Decode deserializes JSON bytes into their generic representation.
func (JSON) Decode(data []byte) (any, error) {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, errors.WrapInvalid(errors.ErrDecodeFailed, "JSON", "Decode", err.Error())
	}
	return value, nil
}
