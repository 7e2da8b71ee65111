package crypt

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

// DeriveKey derives length bytes of key material using HKDF-SHA256.
// salt may be nil; info binds the key to its context.
func DeriveKey(secret, salt, info []byte, length int) ([]byte, error) {
	hk := hkdf.New(sha256.New, secret, salt, info)
	key := make([]byte, length)
	if _, err := io.ReadFull(hk, key); err != nil {
		return nil, err
	}
	return key, nil
}

// DeriveRecordKey derives the 32-byte record key for a stream pair from an
// ECDH shared secret, bound to both ephemeral public keys.
func DeriveRecordKey(sharedSecret []byte, localPub, peerPub [32]byte) ([]byte, error) {
	info := make([]byte, 0, 64+len("peerio-record-key"))
	info = append(info, []byte("peerio-record-key")...)
	// Order the public keys so both sides derive the same key.
	if lessBytes(localPub[:], peerPub[:]) {
		info = append(info, localPub[:]...)
		info = append(info, peerPub[:]...)
	} else {
		info = append(info, peerPub[:]...)
		info = append(info, localPub[:]...)
	}
	return DeriveKey(sharedSecret, nil, info, 32)
}

func lessBytes(a, b []byte) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
