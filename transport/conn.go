package transport

import (
	"context"
	"errors"
)

var (
	ErrConnClosed         = errors.New("connection is closed")
	ErrConnListenerClosed = errors.New("conn listener is closed")
	ErrConnRefused        = errors.New("connection refused")
	ErrAddrAlreadyInUse   = errors.New("address already in use")
	ErrNetUnreachable     = errors.New("network is unreachable")
)

type Conn interface {
	// Read returns io.EOF once the peer has shut down writing.
	Read(p []byte) (n int, err error)
	Write(p []byte) (n int, err error)
	Close() error

	// CloseRead shuts down the reading side. The peer can no longer write.
	CloseRead() error
	// CloseWrite shuts down the writing side. The peer reads io.EOF.
	CloseWrite() error

	LocalAddr() Addr
	RemoteAddr() Addr
}

type ConnListener interface {
	Accept(ctx context.Context) (Conn, error)
	Close() error
	Addr() Addr
}

type ConnDialer interface {
	Dial(ctx context.Context, addr Addr) (Conn, error)
}
