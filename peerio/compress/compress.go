// Package compress provides LZ4 stream decorators. LZ4 is chosen for its
// speed on commodity hardware; on network-bound transfers the compression
// cost is usually invisible.
package compress

import (
	"errors"
	"io"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/openpeer/peerio/peerio/future"
	"github.com/openpeer/peerio/peerio/stream"
)

var ErrStreamClosed = errors.New("compress: stream closed")

// Level controls the speed/ratio tradeoff.
type Level int

const (
	LevelFast    Level = iota // fastest, lower ratio
	LevelDefault              // balanced
	LevelBest                 // best ratio, slower
)

func (l Level) option() lz4.Option {
	switch l {
	case LevelFast:
		return lz4.CompressionLevelOption(lz4.Fast)
	case LevelBest:
		return lz4.CompressionLevelOption(lz4.Level9)
	default:
		return lz4.CompressionLevelOption(lz4.Level4)
	}
}

// CompressOStream routes written bytes through an LZ4 frame writer into a
// downstream sink. The frame is only complete once Close is called; Flush
// forces buffered input onto the wire mid-frame. The sink is borrowed and
// must outlive the stream.
type CompressOStream struct {
	mu     sync.Mutex
	zw     *lz4.Writer
	closed bool
}

// NewCompressOStream wraps sink with LZ4 compression at the given level.
func NewCompressOStream(sink stream.OStream, level Level) *CompressOStream {
	zw := lz4.NewWriter(stream.NewStreamWriter(sink))
	_ = zw.Apply(level.option())
	return &CompressOStream{zw: zw}
}

// WriteSome feeds p into the compressor. The future resolves once the
// compressor has accepted all of p (compressed output may still be buffered
// until Flush or Close).
func (c *CompressOStream) WriteSome(p []byte) *future.Future[stream.Result] {
	f := future.New[stream.Result]()
	go func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.closed {
			f.Fulfill(stream.Result{Err: ErrStreamClosed})
			return
		}
		n, err := c.zw.Write(p)
		f.Fulfill(stream.Result{N: n, Err: err})
	}()
	return f
}

// Flush writes any buffered compressed data downstream without ending the
// frame.
func (c *CompressOStream) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrStreamClosed
	}
	return c.zw.Flush()
}

// Close ends the LZ4 frame and flushes it downstream. Further writes fail
// with ErrStreamClosed.
func (c *CompressOStream) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.zw.Close()
}

// DecompressIStream inflates LZ4-framed data from an upstream source.
// The source is borrowed and must outlive the stream.
type DecompressIStream struct {
	mu sync.Mutex
	zr *lz4.Reader
}

// NewDecompressIStream wraps src with LZ4 decompression.
func NewDecompressIStream(src stream.IStream) *DecompressIStream {
	return &DecompressIStream{zr: lz4.NewReader(stream.NewStreamReader(src))}
}

// ReadSome resolves with the next decompressed bytes; zero bytes signals the
// end of the compressed input.
func (d *DecompressIStream) ReadSome(p []byte) *future.Future[stream.Result] {
	f := future.New[stream.Result]()
	go func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		n, err := d.zr.Read(p)
		if err == io.EOF {
			err = nil
		}
		f.Fulfill(stream.Result{N: n, Err: err})
	}()
	return f
}
