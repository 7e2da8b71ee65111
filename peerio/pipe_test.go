package peerio

import (
	"bytes"
	"testing"

	"github.com/openpeer/peerio/peerio/stream"
)

func TestPipeRoundTrip(t *testing.T) {
	a, b := Pipe()

	write := stream.WriteAll(a, []byte("through the pipe"))
	got := make([]byte, 16)
	if r := stream.ReadFull(b, got).Get(); r.Err != nil {
		t.Fatalf("ReadFull: %v", r.Err)
	}
	if r := write.Get(); r.Err != nil {
		t.Fatalf("WriteAll: %v", r.Err)
	}
	if string(got) != "through the pipe" {
		t.Fatalf("received %q", got)
	}
}

// A pipe end feeds a BufferedStream like any other transport.
func TestPipeWithBufferedStream(t *testing.T) {
	a, b := Pipe()

	go func() {
		stream.WriteAll(a, []byte("buffered over pipe")).Get()
		a.Close()
	}()

	buf := stream.NewBufferedStreamSize(b, 64)
	var got bytes.Buffer
	for {
		r := buf.ReadSome().Get()
		if r.Err != nil {
			t.Fatalf("ReadSome: %v", r.Err)
		}
		if r.N == 0 {
			break
		}
		got.Write(buf.Peek())
		buf.Consume(buf.Size())
	}

	if got.String() != "buffered over pipe" {
		t.Fatalf("received %q", got.String())
	}
}
