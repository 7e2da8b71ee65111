package stream

import (
	"encoding/binary"
)

// Fixed-width values are encoded big endian (network order) throughout
// peerio; both ends of a connection see the same byte sequence.

// BinaryOStream encodes fixed-width integers onto a downstream OStream.
// It holds no buffer of its own: every encode call issues its own downstream
// write and returns only once the full width is accounted for, reissuing
// partial writes as needed.
type BinaryOStream struct {
	w OStream
}

// NewBinaryOStream wraps w. The sink is borrowed and must outlive the
// encoder.
func NewBinaryOStream(w OStream) *BinaryOStream {
	return &BinaryOStream{w: w}
}

func (b *BinaryOStream) WriteUint8(v uint8) error {
	buf := [1]byte{v}
	return b.WriteBytes(buf[:])
}

func (b *BinaryOStream) WriteUint16(v uint16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	return b.WriteBytes(buf[:])
}

func (b *BinaryOStream) WriteUint32(v uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	return b.WriteBytes(buf[:])
}

func (b *BinaryOStream) WriteUint64(v uint64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return b.WriteBytes(buf[:])
}

func (b *BinaryOStream) WriteInt8(v int8) error   { return b.WriteUint8(uint8(v)) }
func (b *BinaryOStream) WriteInt16(v int16) error { return b.WriteUint16(uint16(v)) }
func (b *BinaryOStream) WriteInt32(v int32) error { return b.WriteUint32(uint32(v)) }
func (b *BinaryOStream) WriteInt64(v int64) error { return b.WriteUint64(uint64(v)) }

// WriteBytes writes p in full, suspending until every byte is accepted
// downstream.
func (b *BinaryOStream) WriteBytes(p []byte) error {
	r := WriteAll(b.w, p).Get()
	return r.Err
}

// BinaryIStream decodes fixed-width integers from an upstream IStream.
// An end of stream in the middle of a value surfaces as
// io.ErrUnexpectedEOF.
type BinaryIStream struct {
	r IStream
}

// NewBinaryIStream wraps r. The source is borrowed and must outlive the
// decoder.
func NewBinaryIStream(r IStream) *BinaryIStream {
	return &BinaryIStream{r: r}
}

func (b *BinaryIStream) ReadUint8() (uint8, error) {
	var buf [1]byte
	if err := b.ReadBytes(buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (b *BinaryIStream) ReadUint16() (uint16, error) {
	var buf [2]byte
	if err := b.ReadBytes(buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

func (b *BinaryIStream) ReadUint32() (uint32, error) {
	var buf [4]byte
	if err := b.ReadBytes(buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

func (b *BinaryIStream) ReadUint64() (uint64, error) {
	var buf [8]byte
	if err := b.ReadBytes(buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}

func (b *BinaryIStream) ReadInt8() (int8, error) {
	v, err := b.ReadUint8()
	return int8(v), err
}

func (b *BinaryIStream) ReadInt16() (int16, error) {
	v, err := b.ReadUint16()
	return int16(v), err
}

func (b *BinaryIStream) ReadInt32() (int32, error) {
	v, err := b.ReadUint32()
	return int32(v), err
}

func (b *BinaryIStream) ReadInt64() (int64, error) {
	v, err := b.ReadUint64()
	return int64(v), err
}

// ReadBytes fills p completely from the upstream source.
func (b *BinaryIStream) ReadBytes(p []byte) error {
	r := ReadFull(b.r, p).Get()
	return r.Err
}
