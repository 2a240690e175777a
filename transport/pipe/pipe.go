// Wow this so much looks like the one in stdlib!
// Because I borrowed the idea from there..
package pipe

import (
	"io"
	"sync"

	"sync-http/transport"
)

type pipe struct {
	stream chan []byte // stream that this pipe reads from.
	nc     chan int    // counterpart's respond will be sent here.

	writeMu sync.Mutex

	closed  *event
	rclosed *event // reading side is shut down.
	wclosed *event // writing side is shut down.

	// the opposite pipe.
	counterpart *pipe

	addr Addr
}

type Addr struct {
	Name string
}

func (p Addr) Network() string { return "pipe" }
func (p Addr) String() string  { return p.Name }

var _ transport.Addr = Addr{}
var _ transport.Conn = (*pipe)(nil)

// NewPair creates a pair of connected pipes. each of pipes will be synchronous, unbuffered:
// Write returns once the counterpart has read every byte.
func NewPair(name1, name2 string) (c1, c2 *pipe) {
	c1, c2 = newPipe(name1), newPipe(name2)
	c1.counterpart, c2.counterpart = c2, c1
	return
}

func newPipe(name string) *pipe {
	return &pipe{
		stream:  make(chan []byte),
		nc:      make(chan int),
		closed:  newEvent(),
		rclosed: newEvent(),
		wclosed: newEvent(),
		addr:    Addr{Name: name},
	}
}

func (p *pipe) LocalAddr() transport.Addr  { return p.addr }
func (p *pipe) RemoteAddr() transport.Addr { return p.counterpart.addr }

func (p *pipe) Close() error {
	p.rclosed.fire()
	p.wclosed.fire()
	p.closed.fire()
	return nil
}

func (p *pipe) CloseRead() error {
	if p.closed.fired() {
		return transport.ErrConnClosed
	}
	p.rclosed.fire()
	return nil
}

func (p *pipe) CloseWrite() error {
	if p.closed.fired() {
		return transport.ErrConnClosed
	}
	p.wclosed.fire()
	return nil
}

func (p *pipe) Read(b []byte) (n int, err error) {
	switch {
	case p.rclosed.fired():
		return 0, transport.ErrConnClosed
	case p.counterpart.wclosed.fired():
		return 0, io.EOF
	}

	select {
	case received := <-p.stream:
		n := copy(b, received)
		p.counterpart.nc <- n
		return n, nil
	case <-p.rclosed.done():
		return 0, transport.ErrConnClosed
	case <-p.counterpart.wclosed.done():
		return 0, io.EOF
	}
}

func (p *pipe) Write(b []byte) (n int, err error) {
	switch {
	case p.wclosed.fired():
		return 0, transport.ErrConnClosed
	case p.counterpart.rclosed.fired():
		return 0, transport.ErrConnClosed
	}

	if len(b) == 0 {
		return 0, nil
	}

	// Serialize write operations to prevent interleaving write.
	p.writeMu.Lock()
	defer p.writeMu.Unlock()

	// Ensure all the bytes are sent.
	nn := 0
	for len(b) > 0 {
		select {
		case p.counterpart.stream <- b:
			n := <-p.nc
			b = b[n:]
			nn += n
		case <-p.wclosed.done():
			return nn, transport.ErrConnClosed
		case <-p.counterpart.rclosed.done():
			return nn, transport.ErrConnClosed
		}
	}

	return nn, nil
}

// event is a channel closed at most once.
type event struct {
	c    chan struct{}
	once sync.Once
}

func newEvent() *event { return &event{c: make(chan struct{})} }

func (e *event) fire()                 { e.once.Do(func() { close(e.c) }) }
func (e *event) done() <-chan struct{} { return e.c }

func (e *event) fired() bool {
	select {
	case <-e.c: // c will only fire at closed state.
		return true
	default:
		return false
	}
}
