// Package ecdsa provides ECDSA (P-256, SHA-256) signing and verification as
// stream decorators: every byte written to a SignStream or VerifyStream is
// absorbed into an incremental digest, so any encoder layered on the same
// OStream interface can be tapped for signing without change.
package ecdsa

import (
	stdecdsa "crypto/ecdsa"
	"crypto/elliptic"
	"io"
)

// PrivateKey is the sole owner of the curve secret material.
type PrivateKey struct {
	key *stdecdsa.PrivateKey
}

// GeneratePrivateKey generates a fresh P-256 private key using the supplied
// randomness source.
func GeneratePrivateKey(rand io.Reader) (*PrivateKey, error) {
	key, err := stdecdsa.GenerateKey(elliptic.P256(), rand)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{key: key}, nil
}

// PublicKey is the verification half of a keypair. It is derived by copy
// from a PrivateKey and has independent lifetime afterwards.
type PublicKey struct {
	key *stdecdsa.PublicKey
}

// NewPublicKey derives the public key from privateKey.
func NewPublicKey(privateKey *PrivateKey) *PublicKey {
	pub := privateKey.key.PublicKey
	return &PublicKey{key: &pub}
}
