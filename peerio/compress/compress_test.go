package compress

import (
	"bytes"
	"testing"

	"github.com/openpeer/peerio/peerio/stream"
)

func roundTrip(t *testing.T, payload []byte, level Level) {
	t.Helper()

	var wire bytes.Buffer
	w := NewCompressOStream(stream.NewWriterStream(&wire), level)

	// Write in uneven slices to exercise the incremental path.
	for off := 0; off < len(payload); {
		end := off + 1000
		if end > len(payload) {
			end = len(payload)
		}
		r := w.WriteSome(payload[off:end]).Get()
		if r.Err != nil {
			t.Fatalf("WriteSome: %v", r.Err)
		}
		off += r.N
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	d := NewDecompressIStream(stream.NewReaderStream(bytes.NewReader(wire.Bytes())))
	var got bytes.Buffer
	p := make([]byte, 512)
	for {
		r := d.ReadSome(p).Get()
		if r.Err != nil {
			t.Fatalf("ReadSome: %v", r.Err)
		}
		if r.N == 0 {
			break
		}
		got.Write(p[:r.N])
	}

	if !bytes.Equal(got.Bytes(), payload) {
		t.Fatalf("round trip at level %d: got %d bytes, want %d", level, got.Len(), len(payload))
	}
}

func TestCompressRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("peerio compresses repetitive payloads well. "), 200)
	for _, level := range []Level{LevelFast, LevelDefault, LevelBest} {
		roundTrip(t, payload, level)
	}
}

func TestCompressEmptyPayload(t *testing.T) {
	roundTrip(t, nil, LevelDefault)
}

func TestCompressShrinksRepetitiveData(t *testing.T) {
	payload := bytes.Repeat([]byte("abcdefgh"), 4096)

	var wire bytes.Buffer
	w := NewCompressOStream(stream.NewWriterStream(&wire), LevelDefault)
	if r := w.WriteSome(payload).Get(); r.Err != nil {
		t.Fatalf("WriteSome: %v", r.Err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if wire.Len() >= len(payload) {
		t.Fatalf("compressed %d bytes into %d", len(payload), wire.Len())
	}
}

func TestWriteAfterCloseFails(t *testing.T) {
	var wire bytes.Buffer
	w := NewCompressOStream(stream.NewWriterStream(&wire), LevelDefault)
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if r := w.WriteSome([]byte("late")).Get(); r.Err != ErrStreamClosed {
		t.Fatalf("expected ErrStreamClosed, got %v", r.Err)
	}
}
