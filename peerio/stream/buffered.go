package stream

import (
	"sync"

	"github.com/openpeer/peerio/peerio/future"
)

// BufferedStream reads from an IStream into an internal fixed-capacity buffer
// and exposes a non-destructive peek plus explicit consume. It decouples
// "data received" from "data processed": several consumers can inspect the
// same bytes before any of them commits to consuming.
//
// The buffer is addressed by two cursors, readPos <= writePos <= capacity;
// the bytes between them have been received but not yet consumed. A single
// mutex serializes every cursor read and mutation. The underlying stream is
// borrowed and must outlive the BufferedStream.
type BufferedStream struct {
	mu       sync.Mutex
	src      IStream
	data     []byte
	readPos  int
	writePos int
	filling  bool
}

// NewBufferedStream wraps src with a buffer of DefaultBufferSize bytes.
func NewBufferedStream(src IStream) *BufferedStream {
	return NewBufferedStreamSize(src, DefaultBufferSize)
}

// NewBufferedStreamSize wraps src with a buffer of the given capacity.
func NewBufferedStreamSize(src IStream, bufferSize int) *BufferedStream {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &BufferedStream{src: src, data: make([]byte, bufferSize)}
}

// ReadSome fills as much of the remaining buffer capacity as the underlying
// stream will provide. A resolution of zero bytes means the underlying
// stream is exhausted. The buffer must not be full; consume first.
func (b *BufferedStream) ReadSome() *future.Future[Result] {
	return b.fill(-1)
}

// ReadSomeN issues one underlying read of up to requestedSize bytes directly
// into the buffer tail and advances the write cursor by the count actually
// read. Requesting more than the remaining capacity is a caller contract
// violation and panics; callers are expected to Consume before refilling.
//
// At most one fill may be in flight at a time: the write cursor only moves
// when the underlying read resolves, so a second overlapping fill would
// target the same buffer tail. Issuing one panics.
func (b *BufferedStream) ReadSomeN(requestedSize int) *future.Future[Result] {
	if requestedSize < 0 {
		panic("stream: negative buffered read size")
	}
	return b.fill(requestedSize)
}

// fill validates and reserves the buffer tail under the mutex, then hands
// the underlying read off to a goroutine. requestedSize < 0 means "whatever
// capacity remains". The filling flag stays set until the underlying read
// resolves, rejecting overlapping fills and deferring cursor compaction.
func (b *BufferedStream) fill(requestedSize int) *future.Future[Result] {
	b.mu.Lock()
	if b.filling {
		b.mu.Unlock()
		panic("stream: buffered read issued while another is in flight")
	}
	remaining := len(b.data) - b.writePos
	if requestedSize < 0 {
		requestedSize = remaining
	}
	if requestedSize > remaining {
		b.mu.Unlock()
		panic("stream: buffered read exceeds remaining buffer capacity")
	}
	if requestedSize == 0 {
		b.mu.Unlock()
		panic("stream: buffered read of zero bytes; consume before refilling")
	}
	b.filling = true
	dst := b.data[b.writePos : b.writePos+requestedSize]
	inner := b.src.ReadSome(dst)
	b.mu.Unlock()

	f := future.New[Result]()
	go func() {
		r := inner.Get()
		b.mu.Lock()
		b.writePos += r.N
		b.filling = false
		if b.readPos == b.writePos {
			b.readPos = 0
			b.writePos = 0
		}
		b.mu.Unlock()
		f.Fulfill(r)
	}()
	return f
}

// Peek returns the buffered-but-unconsumed bytes as a view into the internal
// buffer. No copy is made; the slice is valid only until the next ReadSome or
// Consume call.
func (b *BufferedStream) Peek() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data[b.readPos:b.writePos]
}

// Size returns the number of bytes that have been read but not yet consumed.
func (b *BufferedStream) Size() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.writePos - b.readPos
}

// BufferSize returns the fixed capacity of the underlying buffer.
func (b *BufferedStream) BufferSize() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data)
}

// Consume marks consumeSize buffered bytes as processed, invalidating any
// previous Peek. Consuming more than Size() panics. Once every buffered byte
// has been consumed both cursors reset to zero, reclaiming the full
// capacity; the cursors themselves never wrap. The reset waits out any fill
// in flight, since that fill targets the tail at the current write cursor.
func (b *BufferedStream) Consume(consumeSize int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if consumeSize < 0 || consumeSize > b.writePos-b.readPos {
		panic("stream: consume exceeds buffered data")
	}
	b.readPos += consumeSize
	if b.readPos == b.writePos && !b.filling {
		b.readPos = 0
		b.writePos = 0
	}
}
