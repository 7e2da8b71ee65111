// Package transport adapts established connections to the asynchronous
// stream interfaces. Connection establishment, discovery, and framing are
// deliberately not provided here; any io.ReadWriteCloser that already exists
// (a net.Conn, a QUIC stream, one end of a pipe) can be lifted into an
// IStream/OStream pair.
package transport

import (
	"io"

	"github.com/openpeer/peerio/peerio/future"
	"github.com/openpeer/peerio/peerio/stream"
)

// Conn adapts a synchronous byte connection into the asynchronous stream
// capability set. Each ReadSome/WriteSome runs the blocking call on its own
// goroutine and resolves the future with the outcome; io.EOF becomes the
// zero-byte end-of-stream resolution.
type Conn struct {
	rw io.ReadWriteCloser
}

// NewConn wraps an established connection. The connection is borrowed for
// reads and writes but Close is forwarded.
func NewConn(rw io.ReadWriteCloser) *Conn {
	return &Conn{rw: rw}
}

func (c *Conn) ReadSome(p []byte) *future.Future[stream.Result] {
	f := future.New[stream.Result]()
	go func() {
		n, err := c.rw.Read(p)
		if err == io.EOF {
			err = nil
		}
		f.Fulfill(stream.Result{N: n, Err: err})
	}()
	return f
}

func (c *Conn) WriteSome(p []byte) *future.Future[stream.Result] {
	f := future.New[stream.Result]()
	go func() {
		n, err := c.rw.Write(p)
		f.Fulfill(stream.Result{N: n, Err: err})
	}()
	return f
}

// Close closes the underlying connection. Pending reads observe end of
// stream or the transport's close error.
func (c *Conn) Close() error {
	return c.rw.Close()
}
