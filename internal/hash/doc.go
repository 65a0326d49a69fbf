// Package hash provides the hashing primitives used by hypervec.
//
// # CRC32-Castagnoli (CRC32C)
//
// Archive trailers are protected by CRC32-Castagnoli, which is hardware
// accelerated on x86 (SSE4.2) and ARM (CRC extension):
//
//	checksum := hash.CRC32C(data)
//
//	h := hash.NewCRC32C()
//	h.Write(chunk1)
//	h.Write(chunk2)
//	checksum := h.Sum32()
//
// # Numeric float hash
//
// Float64 maps a float64 to the numeric hash used by Vector.Hash. Integral
// values hash to themselves and equal values always hash equally, so
// 0.0 and -0.0 collide as they must.
package hash
