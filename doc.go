// Package hypervec provides an immutable, arbitrary-dimension float64 vector
// value type.
//
// # Quick Start
//
//	v := hypervec.Of(3, 4)
//	v.Norm()                  // 5
//	v.String()                // (3.0, 4.0)
//	s, _ := v.FormatSpec(".1fh") // <5.0, 0.9>
//
// # Value Semantics
//
// A Vector never changes after construction. Equal compares length and
// components, and Hash is consistent with Equal, so vectors can be used as
// the basis of map keys and set membership:
//
//	seen := map[int64][]hypervec.Vector{}
//	seen[v.Hash()] = append(seen[v.Hash()], v)
//
// # Wire Format
//
// Bytes encodes a vector as a single type tag byte ('d') followed by each
// component as an 8-byte little-endian IEEE-754 double:
//
//	byte 0:        'd'
//	bytes 1..N*8:  N components
//
// FromBytes is the inverse; it rejects a wrong tag or a misaligned length
// with a *DecodeError.
//
// # Indexing
//
//	c, err := v.At(-1)                  // last component
//	w := v.Slice(1, 3)                  // new Vector
//	x, err := v.Get(hypervec.Span(0, 2)) // dispatching form
//	x, err := v.X()                     // shortcut for component 0
//
// # Hyperspherical Coordinates
//
// Angle(n) returns the n-th hyperspherical angle and Angles iterates over
// all of them. FormatSpec renders <norm, angles...> when the spec ends in
// "h".
//
// # Subpackages
//
//   - codec: pluggable vector codecs (binary, JSON)
//   - archive: compressed, checksummed multi-vector container
//   - blobstore: storage backends (memory, local, MinIO, S3)
//   - catalog: named vector collections persisted to a blob store
package hypervec
