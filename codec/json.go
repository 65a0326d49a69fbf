package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// Vectors encode as arrays of numbers. Non-finite components (NaN, ±Inf)
// are not representable in JSON and fail to marshal; use Binary for those.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }
