package hypervec

import (
	"encoding/binary"
	"math"

	gojson "github.com/goccy/go-json"
)

// TypeCode is the type tag that prefixes every encoded vector. It
// identifies the component encoding (IEEE-754 double precision).
const TypeCode byte = 'd'

// componentSize is the encoded width of one component in bytes.
const componentSize = 8

// Bytes returns the wire encoding of v: TypeCode followed by each component
// as a little-endian IEEE-754 double, in order.
func (v Vector) Bytes() []byte {
	return v.AppendBytes(make([]byte, 0, 1+len(v.components)*componentSize))
}

// AppendBytes appends the wire encoding of v to dst.
func (v Vector) AppendBytes(dst []byte) []byte {
	dst = append(dst, TypeCode)
	for _, c := range v.components {
		dst = binary.LittleEndian.AppendUint64(dst, math.Float64bits(c))
	}
	return dst
}

// FromBytes decodes a vector produced by Bytes.
// The returned vector does not retain buf.
func FromBytes(buf []byte) (Vector, error) {
	if len(buf) == 0 {
		return Vector{}, &DecodeError{Reason: "empty buffer"}
	}
	if buf[0] != TypeCode {
		return Vector{}, &DecodeError{Reason: "unexpected type tag", Tag: buf[0], Length: len(buf)}
	}
	body := buf[1:]
	if len(body)%componentSize != 0 {
		return Vector{}, &DecodeError{Reason: "length is not a multiple of 8", Tag: buf[0], Length: len(buf)}
	}

	components := make([]float64, len(body)/componentSize)
	for i := range components {
		components[i] = math.Float64frombits(binary.LittleEndian.Uint64(body[i*componentSize:]))
	}
	return Vector{components: components}, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (v Vector) MarshalBinary() ([]byte, error) {
	return v.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It replaces *v
// with a newly decoded vector and is meant for zero values.
func (v *Vector) UnmarshalBinary(data []byte) error {
	decoded, err := FromBytes(data)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

// MarshalJSON encodes v as a JSON array of numbers.
func (v Vector) MarshalJSON() ([]byte, error) {
	if v.components == nil {
		return []byte("[]"), nil
	}
	return gojson.Marshal(v.components)
}

// UnmarshalJSON decodes a JSON array of numbers into a new vector.
func (v *Vector) UnmarshalJSON(data []byte) error {
	var components []float64
	if err := gojson.Unmarshal(data, &components); err != nil {
		return err
	}
	*v = Vector{components: components}
	return nil
}
