package archive

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/hypervec"
	"github.com/hupe1980/hypervec/codec"
	"github.com/hupe1980/hypervec/internal/conv"
	"github.com/hupe1980/hypervec/internal/hash"
)

const (
	// MagicNumber identifies an archive ("HVEC" little-endian).
	MagicNumber uint32 = 0x43455648
	// Version is the current archive format version.
	Version uint16 = 1
)

var (
	ErrInvalidMagic       = errors.New("archive: invalid magic number")
	ErrInvalidVersion     = errors.New("archive: unsupported version")
	ErrChecksumMismatch   = errors.New("archive: checksum mismatch")
	ErrUnknownCodec       = errors.New("archive: unknown codec")
	ErrUnknownCompression = errors.New("archive: unknown compression")
	ErrCorrupt            = errors.New("archive: corrupt data")
	ErrClosed             = errors.New("archive: writer closed")
)

type options struct {
	compression Compression
	codec       codec.Codec
}

// Option configures archive encoding.
type Option func(*options)

// WithCompression sets the body compression. Defaults to CompressionNone.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithCodec sets the per-vector codec. If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

func buildOptions(opts []Option) options {
	o := options{compression: CompressionNone, codec: codec.Default}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Writer accumulates vectors and writes them as one archive on Close.
type Writer struct {
	w      io.Writer
	opts   options
	body   []byte
	count  int
	zero   *roaring.Bitmap
	closed bool
}

// NewWriter returns a Writer that writes the archive to w on Close.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	return &Writer{
		w:    w,
		opts: buildOptions(opts),
		zero: roaring.New(),
	}
}

// Append adds v to the archive.
func (w *Writer) Append(v hypervec.Vector) error {
	if w.closed {
		return ErrClosed
	}
	pos, err := conv.IntToUint32(w.count)
	if err != nil {
		return err
	}
	data, err := w.opts.codec.Marshal(v)
	if err != nil {
		return fmt.Errorf("archive: encode vector %d: %w", w.count, err)
	}
	size, err := conv.IntToUint32(len(data))
	if err != nil {
		return err
	}

	w.body = binary.LittleEndian.AppendUint32(w.body, size)
	w.body = append(w.body, data...)
	if !v.NonZero() {
		w.zero.Add(pos)
	}
	w.count++
	return nil
}

// Len returns the number of vectors appended so far.
func (w *Writer) Len() int {
	return w.count
}

// Close writes the archive. The Writer cannot be used afterwards; it does
// not close the underlying io.Writer.
func (w *Writer) Close() error {
	if w.closed {
		return ErrClosed
	}
	w.closed = true

	if !w.opts.compression.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownCompression, w.opts.compression)
	}
	name := w.opts.codec.Name()
	nameLen, err := conv.IntToUint8(len(name))
	if err != nil {
		return fmt.Errorf("archive: codec name %q: %w", name, err)
	}
	count, err := conv.IntToUint32(w.count)
	if err != nil {
		return err
	}

	out := make([]byte, 0, 16+len(name)+len(w.body))
	out = binary.LittleEndian.AppendUint32(out, MagicNumber)
	out = binary.LittleEndian.AppendUint16(out, Version)
	out = append(out, byte(w.opts.compression), nameLen)
	out = append(out, name...)
	out = binary.LittleEndian.AppendUint32(out, count)

	out, err = appendBlock(out, w.body, w.opts.compression)
	if err != nil {
		return fmt.Errorf("archive: compress body: %w", err)
	}

	w.zero.RunOptimize()
	mask, err := w.zero.ToBytes()
	if err != nil {
		return fmt.Errorf("archive: encode zero mask: %w", err)
	}
	maskLen, err := conv.IntToUint32(len(mask))
	if err != nil {
		return err
	}
	out = binary.LittleEndian.AppendUint32(out, maskLen)
	out = append(out, mask...)

	out = binary.LittleEndian.AppendUint32(out, hash.CRC32C(out))

	_, err = w.w.Write(out)
	return err
}

// Encode returns the archive encoding of vectors.
func Encode(vectors []hypervec.Vector, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	w := NewWriter(&buf, opts...)
	for _, v := range vectors {
		if err := w.Append(v); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Archive is a decoded set of vectors.
type Archive struct {
	vectors     []hypervec.Vector
	zero        *roaring.Bitmap
	codec       string
	compression Compression
}

// Read reads and decodes a complete archive from r.
func Read(r io.Reader) (*Archive, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Decode decodes an archive. The result does not retain data.
func Decode(data []byte) (*Archive, error) {
	const minSize = 4 + 2 + 1 + 1 + 4 + blockHeaderSize + 4 + 4
	if len(data) < minSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the minimum archive", ErrCorrupt, len(data))
	}
	if magic := binary.LittleEndian.Uint32(data); magic != MagicNumber {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidMagic, magic)
	}
	if version := binary.LittleEndian.Uint16(data[4:]); version != Version {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidVersion, version)
	}

	payload, trailer := data[:len(data)-4], data[len(data)-4:]
	if want := binary.LittleEndian.Uint32(trailer); !hash.VerifyCRC32C(payload, want) {
		return nil, ErrChecksumMismatch
	}

	compression := Compression(payload[6])
	if !compression.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, payload[6])
	}
	nameLen := int(payload[7])
	rest := payload[8:]
	if len(rest) < nameLen+4 {
		return nil, fmt.Errorf("%w: truncated header", ErrCorrupt)
	}
	name := string(rest[:nameLen])
	c, ok := codec.ByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
	count, err := conv.Uint32ToInt(binary.LittleEndian.Uint32(rest[nameLen:]))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	rest = rest[nameLen+4:]

	body, n, err := readBlock(rest, compression)
	if err != nil {
		return nil, err
	}
	rest = rest[n:]

	vectors, err := decodeVectors(body, count, c)
	if err != nil {
		return nil, err
	}

	zero, err := decodeMask(rest)
	if err != nil {
		return nil, err
	}
	if err := verifyMask(vectors, zero); err != nil {
		return nil, err
	}

	return &Archive{
		vectors:     vectors,
		zero:        zero,
		codec:       name,
		compression: compression,
	}, nil
}

func decodeVectors(body []byte, count int, c codec.Codec) ([]hypervec.Vector, error) {
	// Every record carries at least its 4-byte length prefix.
	if count > len(body)/4 {
		return nil, fmt.Errorf("%w: %d vectors do not fit a %d byte body", ErrCorrupt, count, len(body))
	}
	vectors := make([]hypervec.Vector, count)
	for i := range vectors {
		if len(body) < 4 {
			return nil, fmt.Errorf("%w: vector %d: truncated length", ErrCorrupt, i)
		}
		size := uint64(binary.LittleEndian.Uint32(body))
		body = body[4:]
		if uint64(len(body)) < size {
			return nil, fmt.Errorf("%w: vector %d: truncated data", ErrCorrupt, i)
		}
		if err := c.Unmarshal(body[:size], &vectors[i]); err != nil {
			return nil, fmt.Errorf("archive: decode vector %d: %w", i, err)
		}
		body = body[size:]
	}
	if len(body) != 0 {
		return nil, fmt.Errorf("%w: %d trailing body bytes", ErrCorrupt, len(body))
	}
	return vectors, nil
}

func decodeMask(data []byte) (*roaring.Bitmap, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: truncated zero mask", ErrCorrupt)
	}
	size := uint64(binary.LittleEndian.Uint32(data))
	data = data[4:]
	if uint64(len(data)) != size {
		return nil, fmt.Errorf("%w: zero mask length %d, have %d bytes", ErrCorrupt, size, len(data))
	}
	zero := roaring.New()
	if err := zero.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("%w: zero mask: %w", ErrCorrupt, err)
	}
	return zero, nil
}

func verifyMask(vectors []hypervec.Vector, zero *roaring.Bitmap) error {
	want := roaring.New()
	for i, v := range vectors {
		if !v.NonZero() {
			want.Add(uint32(i))
		}
	}
	if !want.Equals(zero) {
		return fmt.Errorf("%w: zero mask does not match vectors", ErrCorrupt)
	}
	return nil
}

// Len returns the number of vectors.
func (a *Archive) Len() int {
	return len(a.vectors)
}

// At returns the vector at position i.
func (a *Archive) At(i int) (hypervec.Vector, error) {
	if i < 0 || i >= len(a.vectors) {
		return hypervec.Vector{}, &hypervec.IndexError{Index: i, Length: len(a.vectors)}
	}
	return a.vectors[i], nil
}

// Vectors returns the vectors in archive order.
func (a *Archive) Vectors() []hypervec.Vector {
	return slices.Clone(a.vectors)
}

// All returns an iterator over positions and vectors in archive order.
func (a *Archive) All() iter.Seq2[int, hypervec.Vector] {
	return slices.All(a.vectors)
}

// ZeroMask returns a copy of the bitmap of positions whose vector has a
// zero norm.
func (a *Archive) ZeroMask() *roaring.Bitmap {
	return a.zero.Clone()
}

// NonZero returns an iterator over the vectors with a nonzero norm.
func (a *Archive) NonZero() iter.Seq2[int, hypervec.Vector] {
	return func(yield func(int, hypervec.Vector) bool) {
		for i, v := range a.vectors {
			if a.zero.Contains(uint32(i)) {
				continue
			}
			if !yield(i, v) {
				return
			}
		}
	}
}

// Codec returns the name of the codec the archive was written with.
func (a *Archive) Codec() string {
	return a.codec
}

// Compression returns the body compression the archive was written with.
func (a *Archive) Compression() Compression {
	return a.compression
}
