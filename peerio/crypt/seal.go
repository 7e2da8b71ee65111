package crypt

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/openpeer/peerio/peerio/future"
	"github.com/openpeer/peerio/peerio/stream"
)

// MaxRecordSize limits the plaintext of a single sealed record.
const MaxRecordSize = 1 << 20 // 1 MiB

var ErrRecordTooLarge = errors.New("crypt: sealed record plaintext too large")

// SealOStream encrypts each write as one sealed record into a downstream
// sink, framed per RecordCipher. The downstream sink is borrowed and must
// outlive the stream. Records are written whole; a reader must use
// OpenIStream (or equivalent) to recover the plaintext boundaries.
type SealOStream struct {
	mu     sync.Mutex
	cipher *RecordCipher
	sink   stream.OStream
}

// NewSealOStream wraps sink with record encryption under cipher.
func NewSealOStream(cipher *RecordCipher, sink stream.OStream) *SealOStream {
	return &SealOStream{cipher: cipher, sink: sink}
}

// WriteSome seals p as a single record and writes it downstream in full.
// The future resolves with len(p) once the record is on the wire.
func (s *SealOStream) WriteSome(p []byte) *future.Future[stream.Result] {
	f := future.New[stream.Result]()
	go func() {
		if len(p) > MaxRecordSize {
			f.Fulfill(stream.Result{Err: ErrRecordTooLarge})
			return
		}
		// Sealing under the mutex keeps wire order aligned with nonce order.
		s.mu.Lock()
		frame := s.cipher.SealRecord(p)
		r := stream.WriteAll(s.sink, frame).Get()
		s.mu.Unlock()
		if r.Err != nil {
			f.Fulfill(stream.Result{Err: r.Err})
			return
		}
		f.Fulfill(stream.Result{N: len(p)})
	}()
	return f
}

// OpenIStream decrypts sealed records from an upstream source and serves the
// plaintext through ReadSome. Plaintext left over from a record that did not
// fit the caller's buffer is carried into subsequent reads.
type OpenIStream struct {
	mu      sync.Mutex
	cipher  *RecordCipher
	src     stream.IStream
	pending []byte
}

// NewOpenIStream wraps src with record decryption under cipher.
func NewOpenIStream(cipher *RecordCipher, src stream.IStream) *OpenIStream {
	return &OpenIStream{cipher: cipher, src: src}
}

// ReadSome resolves with the next decrypted bytes, reading and opening one
// record from the source when the carry buffer is empty. A zero-byte
// resolution into a non-empty p means the source is exhausted on a record
// boundary; a record that fails authentication resolves with
// ErrDecryptionFailed.
func (o *OpenIStream) ReadSome(p []byte) *future.Future[stream.Result] {
	// An empty p is a degenerate request: resolve zero bytes immediately
	// without touching the carry buffer or the source, so the resolution
	// says nothing about the stream state.
	if len(p) == 0 {
		return future.Fulfilled(stream.Result{})
	}

	f := future.New[stream.Result]()
	go func() {
		o.mu.Lock()
		defer o.mu.Unlock()

		for len(o.pending) == 0 {
			plaintext, eof, err := o.readRecord()
			if err != nil {
				f.Fulfill(stream.Result{Err: err})
				return
			}
			if eof {
				f.Fulfill(stream.Result{N: 0})
				return
			}
			// An empty record is legal; keep reading.
			o.pending = plaintext
		}

		n := copy(p, o.pending)
		o.pending = o.pending[n:]
		f.Fulfill(stream.Result{N: n})
	}()
	return f
}

// readRecord reads and opens one sealed record, checking the length header
// against the seal. eof reports a clean end of stream before any record
// byte.
func (o *OpenIStream) readRecord() (plaintext []byte, eof bool, err error) {
	var header [RecordHeaderSize]byte
	r := o.src.ReadSome(header[:1]).Get()
	if r.Err != nil {
		return nil, false, r.Err
	}
	if r.N == 0 {
		return nil, true, nil
	}
	if r := stream.ReadFull(o.src, header[1:]).Get(); r.Err != nil {
		return nil, false, fmt.Errorf("crypt: truncated record header: %w", r.Err)
	}

	bodyLen := binary.BigEndian.Uint32(header[:])
	if bodyLen > uint32(MaxRecordSize+o.cipher.Overhead()) {
		return nil, false, ErrRecordTooLarge
	}
	body := make([]byte, bodyLen)
	if r := stream.ReadFull(o.src, body).Get(); r.Err != nil {
		return nil, false, fmt.Errorf("crypt: truncated record body: %w", r.Err)
	}
	plaintext, err = o.cipher.OpenRecord(header[:], body)
	return plaintext, false, err
}
