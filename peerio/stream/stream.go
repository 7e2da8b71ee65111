// Package stream defines the asynchronous byte-stream capability set and the
// decorators built on it.
//
// Every byte source implements IStream and every byte sink implements
// OStream; both return a Future carrying the number of bytes actually moved.
// Decorators (BufferedStream, BinaryOStream, the crypto and compression
// streams in sibling packages) hold a reference to exactly one downstream
// implementation of the same interface, so composition nests to arbitrary
// depth. Control flows strictly downward: caller to decorator to sink.
package stream

import (
	"io"

	"github.com/openpeer/peerio/peerio/future"
)

// DefaultBufferSize is the buffer capacity used by NewBufferedStream.
const DefaultBufferSize = 4096

// Result is the outcome of an asynchronous read or write: the byte count and
// any transport error. A read resolving with N == 0 and a nil error signals
// end of stream; it is the designed terminal state, not a failure.
type Result struct {
	N   int
	Err error
}

// IStream is an asynchronous byte source.
type IStream interface {
	// ReadSome attempts a single read of up to len(p) bytes into p and
	// resolves the returned future with the count actually read.
	// A resolution of zero bytes means the stream is exhausted.
	ReadSome(p []byte) *future.Future[Result]
}

// OStream is an asynchronous byte sink.
type OStream interface {
	// WriteSome attempts a single write of up to len(p) bytes from p and
	// resolves the returned future with the count actually written.
	// Writers may accept less than len(p); callers must reissue the
	// remainder (see WriteAll).
	WriteSome(p []byte) *future.Future[Result]
}

// WriteAll writes all of p to w, reissuing writes for any unwritten
// remainder. It resolves with the total count and the first error
// encountered; a write that makes no progress resolves with
// io.ErrShortWrite.
func WriteAll(w OStream, p []byte) *future.Future[Result] {
	f := future.New[Result]()
	go func() {
		total := 0
		for total < len(p) {
			r := w.WriteSome(p[total:]).Get()
			total += r.N
			if r.Err != nil {
				f.Fulfill(Result{N: total, Err: r.Err})
				return
			}
			if r.N == 0 {
				f.Fulfill(Result{N: total, Err: io.ErrShortWrite})
				return
			}
		}
		f.Fulfill(Result{N: total})
	}()
	return f
}

// ReadFull reads from r until p is completely filled. It resolves with the
// total count and the first error encountered; an end of stream before p is
// full resolves with io.ErrUnexpectedEOF.
func ReadFull(r IStream, p []byte) *future.Future[Result] {
	f := future.New[Result]()
	go func() {
		total := 0
		for total < len(p) {
			res := r.ReadSome(p[total:]).Get()
			total += res.N
			if res.Err != nil {
				f.Fulfill(Result{N: total, Err: res.Err})
				return
			}
			if res.N == 0 {
				f.Fulfill(Result{N: total, Err: io.ErrUnexpectedEOF})
				return
			}
		}
		f.Fulfill(Result{N: total})
	}()
	return f
}

// readerStream adapts a synchronous io.Reader into an IStream.
type readerStream struct {
	r io.Reader
}

// NewReaderStream adapts r into an IStream. Each ReadSome issues one Read on
// its own goroutine; io.EOF is mapped to the zero-byte end-of-stream
// resolution.
func NewReaderStream(r io.Reader) IStream {
	return &readerStream{r: r}
}

func (s *readerStream) ReadSome(p []byte) *future.Future[Result] {
	f := future.New[Result]()
	go func() {
		n, err := s.r.Read(p)
		if err == io.EOF {
			err = nil
		}
		f.Fulfill(Result{N: n, Err: err})
	}()
	return f
}

// writerStream adapts a synchronous io.Writer into an OStream.
type writerStream struct {
	w io.Writer
}

// NewWriterStream adapts w into an OStream.
func NewWriterStream(w io.Writer) OStream {
	return &writerStream{w: w}
}

func (s *writerStream) WriteSome(p []byte) *future.Future[Result] {
	f := future.New[Result]()
	go func() {
		n, err := s.w.Write(p)
		f.Fulfill(Result{N: n, Err: err})
	}()
	return f
}

// streamReader bridges an IStream back to io.Reader for code that speaks the
// synchronous interface (lz4, hash writers). Calls block on the future.
type streamReader struct {
	r IStream
}

// NewStreamReader adapts r into a blocking io.Reader. A zero-byte resolution
// is reported as io.EOF.
func NewStreamReader(r IStream) io.Reader {
	return &streamReader{r: r}
}

func (s *streamReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	res := s.r.ReadSome(p).Get()
	if res.Err != nil {
		return res.N, res.Err
	}
	if res.N == 0 {
		return 0, io.EOF
	}
	return res.N, nil
}

// streamWriter bridges an OStream back to io.Writer, retrying partial writes.
type streamWriter struct {
	w OStream
}

// NewStreamWriter adapts w into a blocking io.Writer that always accounts for
// the full buffer or returns an error.
func NewStreamWriter(w OStream) io.Writer {
	return &streamWriter{w: w}
}

func (s *streamWriter) Write(p []byte) (int, error) {
	r := WriteAll(s.w, p).Get()
	return r.N, r.Err
}
