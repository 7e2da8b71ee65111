package ecdsa

import (
	stdecdsa "crypto/ecdsa"
	"crypto/sha256"
	"hash"
	"io"
	"sync"

	"github.com/openpeer/peerio/peerio/future"
	"github.com/openpeer/peerio/peerio/stream"
)

// SignStream is an OStream that absorbs every written byte into a signature
// engine. Writes are always fully accepted; the signature is produced on
// finalization. Writing after finalization is a caller contract violation
// and panics.
type SignStream struct {
	mu        sync.Mutex
	rand      io.Reader
	key       *PrivateKey
	digest    hash.Hash
	finalized bool
}

// NewSignStream creates a signing stream. The randomness source feeds the
// per-signature nonce the scheme requires.
func NewSignStream(rand io.Reader, privateKey *PrivateKey) *SignStream {
	return &SignStream{rand: rand, key: privateKey, digest: sha256.New()}
}

// WriteSome absorbs p into the signature engine and resolves immediately
// with the full count; there is no partial-absorb state.
func (s *SignStream) WriteSome(p []byte) *future.Future[stream.Result] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finalized {
		panic("ecdsa: write after signature finalization")
	}
	s.digest.Write(p)
	return future.Fulfilled(stream.Result{N: len(p)})
}

// Signature finalizes the engine and returns the ASN.1 DER signature over
// everything written so far. Signing before any write is legal and produces
// a signature over the empty message.
func (s *SignStream) Signature() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finalized = true
	return stdecdsa.SignASN1(s.rand, s.key.key, s.digest.Sum(nil))
}

// VerifyStream is an OStream that absorbs every written byte into a
// verification engine and checks the result against a candidate signature
// supplied up front. No length framing is provided: the caller must write
// exactly the logical message that was signed.
type VerifyStream struct {
	mu        sync.Mutex
	key       *PublicKey
	signature []byte
	digest    hash.Hash
	finalized bool
}

// NewVerifyStream creates a verifying stream for the given candidate
// signature. The signature is copied.
func NewVerifyStream(publicKey *PublicKey, signature []byte) *VerifyStream {
	sig := make([]byte, len(signature))
	copy(sig, signature)
	return &VerifyStream{key: publicKey, signature: sig, digest: sha256.New()}
}

// WriteSome absorbs p into the verification engine, identically to
// SignStream.
func (v *VerifyStream) WriteSome(p []byte) *future.Future[stream.Result] {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.finalized {
		panic("ecdsa: write after verification finalization")
	}
	v.digest.Write(p)
	return future.Fulfilled(stream.Result{N: len(p)})
}

// IsValid finalizes verification and reports whether the signature matches
// what has been written so far. False is a normal outcome, not an error; it
// is how a forged or corrupted signature is reported.
func (v *VerifyStream) IsValid() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.finalized = true
	return stdecdsa.VerifyASN1(v.key.key, v.digest.Sum(nil), v.signature)
}
