// Package erasure provides Reed-Solomon redundancy for stream payloads: a
// message is split into data shards plus parity shards, each shard sent over
// its own sink, and the message survives the loss of up to parityShards
// shards.
package erasure

import (
	"bytes"
	"errors"

	"github.com/klauspost/reedsolomon"
)

var (
	ErrInvalidConfig = errors.New("erasure: invalid data/parity configuration")
	ErrTooManyLost   = errors.New("erasure: too many shards lost, cannot recover")
	ErrShardCount    = errors.New("erasure: wrong number of shards")
)

// Codec wraps a Reed-Solomon encoder for a fixed data/parity split.
type Codec struct {
	enc          reedsolomon.Encoder
	dataShards   int
	parityShards int
}

// NewCodec creates a codec with dataShards data shards and parityShards
// parity shards; up to parityShards shards may be lost.
func NewCodec(dataShards, parityShards int) (*Codec, error) {
	if dataShards <= 0 || parityShards <= 0 {
		return nil, ErrInvalidConfig
	}
	enc, err := reedsolomon.New(dataShards, parityShards)
	if err != nil {
		return nil, err
	}
	return &Codec{enc: enc, dataShards: dataShards, parityShards: parityShards}, nil
}

func (c *Codec) DataShards() int   { return c.dataShards }
func (c *Codec) ParityShards() int { return c.parityShards }
func (c *Codec) TotalShards() int  { return c.dataShards + c.parityShards }

// EncodeData splits data into padded data shards and computes parity.
// Returns all TotalShards() shards.
func (c *Codec) EncodeData(data []byte) ([][]byte, error) {
	shards, err := c.enc.Split(data)
	if err != nil {
		return nil, err
	}
	if err := c.enc.Encode(shards); err != nil {
		return nil, err
	}
	return shards, nil
}

// Verify reports whether the parity shards are consistent with the data
// shards.
func (c *Codec) Verify(shards [][]byte) (bool, error) {
	return c.enc.Verify(shards)
}

// Reconstruct rebuilds missing (nil) shards in place.
func (c *Codec) Reconstruct(shards [][]byte) error {
	if len(shards) != c.TotalShards() {
		return ErrShardCount
	}
	if err := c.enc.Reconstruct(shards); err != nil {
		return ErrTooManyLost
	}
	return nil
}

// RecoverData reconstructs missing shards and joins the original message of
// origSize bytes.
func (c *Codec) RecoverData(shards [][]byte, origSize int) ([]byte, error) {
	if err := c.Reconstruct(shards); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := c.enc.Join(&buf, shards, origSize); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
