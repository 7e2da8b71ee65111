package transport

import (
	"context"

	q "github.com/quic-go/quic-go"
)

// OpenStream opens a bidirectional stream on an established QUIC connection
// and lifts it into the asynchronous stream interfaces.
func OpenStream(ctx context.Context, conn q.Connection) (*Conn, error) {
	st, err := conn.OpenStreamSync(ctx)
	if err != nil {
		return nil, err
	}
	return NewConn(st), nil
}

// AcceptStream accepts the peer's next bidirectional stream on an
// established QUIC connection.
func AcceptStream(ctx context.Context, conn q.Connection) (*Conn, error) {
	st, err := conn.AcceptStream(ctx)
	if err != nil {
		return nil, err
	}
	return NewConn(st), nil
}
