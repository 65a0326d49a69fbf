package hypervec

import (
	"errors"
	"fmt"
)

var (
	// ErrDecode is matched by every *DecodeError.
	ErrDecode = errors.New("malformed vector encoding")

	// ErrIndexOutOfRange is matched by every *IndexError.
	ErrIndexOutOfRange = errors.New("vector index out of range")

	// ErrInvalidIndexType is matched by every *TypeError.
	ErrInvalidIndexType = errors.New("vector indices must be integers or ranges")

	// ErrAttribute is matched by every *AttributeError.
	ErrAttribute = errors.New("invalid vector attribute")
)

// DecodeError indicates a byte buffer that is not a valid vector encoding.
type DecodeError struct {
	Reason string
	// Tag is the first byte of the buffer (zero for an empty buffer).
	Tag byte
	// Length is the total buffer length in bytes.
	Length int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode vector: %s (tag 0x%02x, %d bytes)", e.Reason, e.Tag, e.Length)
}

// Is reports whether target is ErrDecode.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// IndexError indicates an integer index outside [-Length, Length).
type IndexError struct {
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("vector index %d out of range for length %d", e.Index, e.Length)
}

// Is reports whether target is ErrIndexOutOfRange.
func (e *IndexError) Is(target error) bool { return target == ErrIndexOutOfRange }

// TypeError indicates an index key of an unsupported kind.
type TypeError struct {
	Key any
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("Vector indices must be integers, not %T", e.Key)
}

// Is reports whether target is ErrInvalidIndexType.
func (e *TypeError) Is(target error) bool { return target == ErrInvalidIndexType }

// AttributeError indicates a read of an undefined attribute or a write to a
// reserved single-letter name.
type AttributeError struct {
	Name   string
	Reason string
}

func (e *AttributeError) Error() string { return e.Reason }

// Is reports whether target is ErrAttribute.
func (e *AttributeError) Is(target error) bool { return target == ErrAttribute }

func missingAttribute(name string) error {
	return &AttributeError{
		Name:   name,
		Reason: fmt.Sprintf("'Vector' object has no attribute '%s'", name),
	}
}
