// Package crypt provides the symmetric record layer for peerio streams.
//
// It combines:
//   - X25519 ephemeral key exchange (RFC 7748), fused with HKDF-SHA256
//     derivation in KeyPair.RecordKey
//   - RecordCipher, ChaCha20-Poly1305 with counter nonces (RFC 8439) over
//     length-framed records whose header is authenticated with the body
//
// On top of these, SealOStream and OpenIStream wrap ordinary streams so that
// every write travels as one authenticated, encrypted record. Asymmetric
// signing lives in the crypt/ecdsa subpackage.
package crypt
