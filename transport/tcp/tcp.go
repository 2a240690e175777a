// Package tcp adapts operating system TCP sockets to [transport.Conn].
//
// Reference: https://datatracker.ietf.org/doc/html/rfc9293
package tcp

import (
	"context"
	"net"
	"strconv"
	"time"

	"sync-http/transport"

	"github.com/pkg/errors"
	"golang.org/x/net/ipv4"
	"golang.org/x/net/ipv6"
)

// JoinAddr builds "host:port", bracketing IPv6 hosts.
func JoinAddr(host string, port uint16) string {
	return net.JoinHostPort(host, strconv.FormatUint(uint64(port), 10))
}

type ListenOptions struct {
	// TTL sets the IP time-to-live (hop limit for IPv6) of accepted connections.
	// Zero keeps the system default.
	TTL uint8
}

type Listener struct {
	l    *net.TCPListener
	opts ListenOptions
}

var _ transport.ConnListener = (*Listener)(nil)

func Listen(ctx context.Context, address string, opts ListenOptions) (*Listener, error) {
	var lc net.ListenConfig
	l, err := lc.Listen(ctx, "tcp", address)
	if err != nil {
		return nil, errors.Wrapf(err, "listening on %s", address)
	}

	return &Listener{l: l.(*net.TCPListener), opts: opts}, nil
}

func (l *Listener) Addr() transport.Addr { return l.l.Addr() }

func (l *Listener) Close() error {
	if err := l.l.Close(); err != nil {
		return mapError(err, transport.ErrConnListenerClosed)
	}
	return nil
}

// Accept blocks until a connection arrives, ctx is done or the listener is closed.
func (l *Listener) Accept(ctx context.Context) (transport.Conn, error) {
	if err := l.l.SetDeadline(time.Time{}); err != nil {
		return nil, mapError(err, transport.ErrConnListenerClosed)
	}

	// Wake up the blocking accept when ctx is done.
	stop := context.AfterFunc(ctx, func() {
		_ = l.l.SetDeadline(time.Unix(1, 0))
	})
	defer stop()

	c, err := l.l.AcceptTCP()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, mapError(err, transport.ErrConnListenerClosed)
	}

	if l.opts.TTL > 0 {
		if err := setTTL(c, int(l.opts.TTL)); err != nil {
			c.Close()
			return nil, errors.Wrap(err, "setting ttl")
		}
	}

	return &conn{c: c}, nil
}

func setTTL(c *net.TCPConn, ttl int) error {
	addr, ok := c.LocalAddr().(*net.TCPAddr)
	if ok && addr.IP.To4() == nil {
		return ipv6.NewConn(c).SetHopLimit(ttl)
	}
	return ipv4.NewConn(c).SetTTL(ttl)
}

// TTL reports the time-to-live (or hop limit) of c.
// It's only meaningful for connections created by this package.
func TTL(c transport.Conn) (int, error) {
	tc, ok := c.(*conn)
	if !ok {
		return 0, errors.New("not a tcp connection")
	}

	addr, ok := tc.c.LocalAddr().(*net.TCPAddr)
	if ok && addr.IP.To4() == nil {
		return ipv6.NewConn(tc.c).HopLimit()
	}
	return ipv4.NewConn(tc.c).TTL()
}

// Dialer connects to TCP listeners. It's mainly for tests and tooling,
// as the server never dials.
type Dialer struct{}

var _ transport.ConnDialer = Dialer{}

func (Dialer) Dial(ctx context.Context, addr transport.Addr) (transport.Conn, error) {
	var d net.Dialer
	c, err := d.DialContext(ctx, "tcp", addr.String())
	if err != nil {
		return nil, errors.Wrapf(err, "dialing %s", addr)
	}
	return &conn{c: c.(*net.TCPConn)}, nil
}

type conn struct {
	c *net.TCPConn
}

var _ transport.Conn = (*conn)(nil)

func (c *conn) Read(p []byte) (int, error) {
	n, err := c.c.Read(p)
	return n, mapError(err, transport.ErrConnClosed)
}

func (c *conn) Write(p []byte) (int, error) {
	n, err := c.c.Write(p)
	return n, mapError(err, transport.ErrConnClosed)
}

func (c *conn) Close() error      { return mapError(c.c.Close(), transport.ErrConnClosed) }
func (c *conn) CloseRead() error  { return mapError(c.c.CloseRead(), transport.ErrConnClosed) }
func (c *conn) CloseWrite() error { return mapError(c.c.CloseWrite(), transport.ErrConnClosed) }

func (c *conn) LocalAddr() transport.Addr  { return c.c.LocalAddr() }
func (c *conn) RemoteAddr() transport.Addr { return c.c.RemoteAddr() }

// mapError replaces errors caused by using a closed socket with closedErr.
// io.EOF and nil pass through.
func mapError(err error, closedErr error) error {
	if errors.Is(err, net.ErrClosed) {
		return closedErr
	}
	return err
}
