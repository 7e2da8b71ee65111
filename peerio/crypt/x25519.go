package crypt

import (
	"crypto/rand"
	"errors"
	"io"

	"golang.org/x/crypto/curve25519"
)

var ErrInvalidPublicKey = errors.New("crypt: invalid X25519 public key")

// KeyPair is an ephemeral X25519 keypair. Each side of a sealed stream
// generates one, exchanges public keys, and derives the shared record key
// with RecordKey.
type KeyPair struct {
	PublicKey  [32]byte
	PrivateKey [32]byte
}

// GenerateKeyPair generates a fresh ephemeral keypair with the private
// scalar clamped per RFC 7748.
func GenerateKeyPair() (KeyPair, error) {
	var kp KeyPair
	if _, err := io.ReadFull(rand.Reader, kp.PrivateKey[:]); err != nil {
		return KeyPair{}, err
	}
	kp.PrivateKey[0] &= 248
	kp.PrivateKey[31] &= 127
	kp.PrivateKey[31] |= 64
	curve25519.ScalarBaseMult(&kp.PublicKey, &kp.PrivateKey)
	return kp, nil
}

// RecordKey runs the X25519 agreement against the peer's ephemeral public
// key and derives the 32-byte record key for the pair. Both sides derive
// the same key regardless of which public key is whose. An all-zero peer
// key is rejected before the agreement.
func (kp KeyPair) RecordKey(peerPublic [32]byte) ([]byte, error) {
	var zero [32]byte
	if peerPublic == zero {
		return nil, ErrInvalidPublicKey
	}
	shared, err := curve25519.X25519(kp.PrivateKey[:], peerPublic[:])
	if err != nil {
		return nil, err
	}
	return DeriveRecordKey(shared, kp.PublicKey, peerPublic)
}
