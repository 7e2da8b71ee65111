package erasure

import (
	"bytes"
	"sync"

	"github.com/openpeer/peerio/peerio/future"
	"github.com/openpeer/peerio/peerio/stream"
)

// ShardOStream is an accumulate-then-finalize OStream: written bytes are
// absorbed into an internal message buffer, and Finalize splits the message
// into data+parity shards, writing shard i to sink i in full. The sinks are
// borrowed and must outlive the stream. Writing after finalization is a
// caller contract violation and panics.
type ShardOStream struct {
	mu        sync.Mutex
	codec     *Codec
	sinks     []stream.OStream
	buf       bytes.Buffer
	finalized bool
}

// NewShardOStream creates a sharding stream over exactly
// codec.TotalShards() sinks.
func NewShardOStream(codec *Codec, sinks []stream.OStream) (*ShardOStream, error) {
	if len(sinks) != codec.TotalShards() {
		return nil, ErrShardCount
	}
	return &ShardOStream{codec: codec, sinks: sinks}, nil
}

// WriteSome absorbs p into the message buffer and resolves immediately with
// the full count.
func (s *ShardOStream) WriteSome(p []byte) *future.Future[stream.Result] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finalized {
		panic("erasure: write after shard finalization")
	}
	s.buf.Write(p)
	return future.Fulfilled(stream.Result{N: len(p)})
}

// Size returns the number of message bytes absorbed so far.
func (s *ShardOStream) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Len()
}

// Finalize encodes the absorbed message and writes each shard to its sink,
// all shards concurrently, each in full. It returns the original message
// size, which the receiving side needs for RecoverData.
func (s *ShardOStream) Finalize() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finalized {
		panic("erasure: finalized twice")
	}
	s.finalized = true

	origSize := s.buf.Len()
	shards, err := s.codec.EncodeData(s.buf.Bytes())
	if err != nil {
		return 0, err
	}

	futures := make([]*future.Future[stream.Result], len(shards))
	for i, shard := range shards {
		futures[i] = stream.WriteAll(s.sinks[i], shard)
	}
	for _, f := range futures {
		if r := f.Get(); r.Err != nil {
			return 0, r.Err
		}
	}
	return origSize, nil
}
