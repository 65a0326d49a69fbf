package codec

import gojson "github.com/goccy/go-json"

// GoJSON writes each vector as a JSON array of numbers using
// github.com/goccy/go-json. Archives written with JSON and GoJSON are
// interchangeable; the archive header records "go-json" so a reader can
// pick the faster decoder again.
type GoJSON struct{}

// Marshal renders v, typically a hypervec.Vector, as a JSON document.
func (GoJSON) Marshal(v any) ([]byte, error) { return gojson.Marshal(v) }

// Unmarshal parses a JSON document into v, typically a *hypervec.Vector.
func (GoJSON) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }

// Name identifies the codec in archive headers.
func (GoJSON) Name() string { return "go-json" }

// Append renders v as JSON onto the end of dst, for callers that frame
// many records into one buffer.
func (GoJSON) Append(dst []byte, v any) ([]byte, error) {
	b, err := gojson.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append(dst, b...), nil
}
