package pipe

import (
	"context"
	"sync"

	"sync-http/transport"
)

// PipeTransport connects dialers to listeners in memory, by address name.
type PipeTransport struct {
	listeners map[Addr]*pipeListener
	mu        sync.Mutex
}

func NewPipeTransport() *PipeTransport {
	return &PipeTransport{
		listeners: make(map[Addr]*pipeListener),
	}
}

var _ transport.ConnDialer = (*PipeTransport)(nil)

func (pt *PipeTransport) Dial(ctx context.Context, addr transport.Addr) (transport.Conn, error) {
	pipeAddr, ok := addr.(Addr)
	if !ok {
		return nil, transport.ErrNetUnreachable
	}

	pt.mu.Lock()
	listener, ok := pt.listeners[pipeAddr]
	pt.mu.Unlock()

	if !ok {
		return nil, transport.ErrNetUnreachable
	}

	p1, p2 := NewPair("dialer", pipeAddr.Name)

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-listener.closed:
		return nil, transport.ErrConnRefused
	case listener.requests <- p2:
	}

	return p1, nil
}

func (pt *PipeTransport) Listen(addr Addr) (*pipeListener, error) {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	if _, ok := pt.listeners[addr]; ok {
		return nil, transport.ErrAddrAlreadyInUse
	}

	pl := &pipeListener{
		addr:      addr,
		transport: pt,
		requests:  make(chan *pipe),
		closed:    make(chan struct{}),
	}
	pt.listeners[addr] = pl

	return pl, nil
}

type pipeListener struct {
	addr Addr

	transport *PipeTransport

	requests chan *pipe
	closed   chan struct{}

	once sync.Once
}

var _ transport.ConnListener = (*pipeListener)(nil)

func (pl *pipeListener) Addr() transport.Addr { return pl.addr }

func (pl *pipeListener) Accept(ctx context.Context) (transport.Conn, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-pl.closed:
		return nil, transport.ErrConnListenerClosed
	case conn := <-pl.requests:
		return conn, nil
	}
}

func (pl *pipeListener) Close() error {
	err := transport.ErrConnListenerClosed
	pl.once.Do(func() {
		err = nil
		close(pl.closed)

		pl.transport.mu.Lock()
		delete(pl.transport.listeners, pl.addr)
		pl.transport.mu.Unlock()
	})
	return err
}
