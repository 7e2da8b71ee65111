package crypt

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"io"
	"sync/atomic"

	"golang.org/x/crypto/chacha20poly1305"
)

// RecordHeaderSize is the length prefix preceding every sealed record.
const RecordHeaderSize = 4

var (
	ErrRecordTooShort   = errors.New("crypt: sealed record too short")
	ErrDecryptionFailed = errors.New("crypt: decryption failed")
)

// RecordCipher seals plaintext into self-delimiting records for a byte
// stream. Each record is framed as
//
//	4 bytes: body length (big endian)
//	body:    nonce (12 bytes) || ciphertext || tag (16 bytes)
//
// under ChaCha20-Poly1305. The length header is bound into the seal as
// additional data, so a tampered header fails authentication the same way a
// tampered body does. Nonces are a 32-bit random prefix plus a 64-bit record
// counter, good for 2^64 records per key with no reuse.
type RecordCipher struct {
	aead   cipher.AEAD
	prefix [4]byte
	seq    atomic.Uint64
}

// NewRecordCipher creates a record cipher from a 32-byte key, typically the
// output of KeyPair.RecordKey. Each direction of a stream pair should use
// its own cipher.
func NewRecordCipher(key []byte) (*RecordCipher, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, errors.New("crypt: invalid key size for ChaCha20-Poly1305")
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	c := &RecordCipher{aead: aead}
	if _, err := io.ReadFull(rand.Reader, c.prefix[:]); err != nil {
		return nil, err
	}
	return c, nil
}

// SealRecord seals plaintext into one complete record frame, length header
// included, ready to be written to the wire.
func (c *RecordCipher) SealRecord(plaintext []byte) []byte {
	var nonce [chacha20poly1305.NonceSize]byte
	copy(nonce[:4], c.prefix[:])
	binary.BigEndian.PutUint64(nonce[4:], c.seq.Add(1))

	bodyLen := len(nonce) + len(plaintext) + c.aead.Overhead()
	frame := make([]byte, RecordHeaderSize, RecordHeaderSize+bodyLen)
	binary.BigEndian.PutUint32(frame, uint32(bodyLen))
	frame = append(frame, nonce[:]...)
	return c.aead.Seal(frame, nonce[:], plaintext, frame[:RecordHeaderSize])
}

// OpenRecord opens one record body against the length header it was framed
// with. Any mismatch between header and body, or any modification of either,
// returns ErrDecryptionFailed.
func (c *RecordCipher) OpenRecord(header, body []byte) ([]byte, error) {
	nonceSize := chacha20poly1305.NonceSize
	if len(body) < nonceSize+c.aead.Overhead() {
		return nil, ErrRecordTooShort
	}
	plaintext, err := c.aead.Open(nil, body[:nonceSize], body[nonceSize:], header)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

// Overhead returns the size of a record body over its plaintext.
func (c *RecordCipher) Overhead() int {
	return chacha20poly1305.NonceSize + c.aead.Overhead()
}
