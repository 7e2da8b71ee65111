package peerio

import (
	"net"

	"github.com/openpeer/peerio/peerio/transport"
)

// Pipe returns two connected in-memory duplex stream ends: bytes written to
// either end become readable on the other. It is the local analogue of a
// network connection, handy for tests and for composing decorator chains in
// process.
func Pipe() (*transport.Conn, *transport.Conn) {
	left, right := net.Pipe()
	return transport.NewConn(left), transport.NewConn(right)
}
