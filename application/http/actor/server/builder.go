package server

import (
	"context"
	"log/slog"

	"sync-http/application/http/router"
	"sync-http/transport"
	"sync-http/transport/tcp"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
)

// Builder collects everything a server needs before it binds.
// Every method returns an updated copy; the receiver is left untouched.
type Builder struct {
	cfg      Config
	shutdown <-chan struct{}
	logger   *slog.Logger
	clock    clock.Clock
	opts     Options

	routes []registration
}

type registration struct {
	pattern string
	handler router.Handler
}

// Create starts from [DefaultConfig] with no routes.
func Create() Builder {
	return Builder{cfg: DefaultConfig()}
}

func (b Builder) IPAddress(addr string) Builder {
	b.cfg.Address = addr
	return b
}

func (b Builder) Port(port uint16) Builder {
	b.cfg.Port = port
	return b
}

func (b Builder) TTL(ttl uint8) Builder {
	b.cfg.TTL = &ttl
	return b
}

// Config replaces address, port and TTL.
func (b Builder) Config(cfg Config) Builder {
	b.cfg = cfg
	return b
}

// Shutdown sets the signal that stops the server between two requests.
func (b Builder) Shutdown(signal <-chan struct{}) Builder {
	b.shutdown = signal
	return b
}

func (b Builder) Logger(logger *slog.Logger) Builder {
	b.logger = logger
	return b
}

func (b Builder) Clock(c clock.Clock) Builder {
	b.clock = c
	return b
}

func (b Builder) Options(opts Options) Builder {
	metrics := b.opts.Metrics
	b.opts = opts
	if b.opts.Metrics == nil {
		b.opts.Metrics = metrics
	}
	return b
}

func (b Builder) Metrics(m *Metrics) Builder {
	b.opts.Metrics = m
	return b
}

// Get adds a GET route. The pattern is compiled right away,
// so a bad pattern fails here and never at request time.
func (b Builder) Get(pattern string, h router.Handler) (Builder, error) {
	if _, err := router.Compile(pattern); err != nil {
		return b, err
	}
	if h == nil {
		return b, errors.Errorf("nil handler for %q", pattern)
	}

	routes := make([]registration, len(b.routes), len(b.routes)+1)
	copy(routes, b.routes)
	b.routes = append(routes, registration{pattern: pattern, handler: h})
	return b, nil
}

// Bind listens on the configured TCP address.
func (b Builder) Bind(ctx context.Context) (*Server, error) {
	var opts tcp.ListenOptions
	if b.cfg.TTL != nil {
		opts.TTL = *b.cfg.TTL
	}

	l, err := tcp.Listen(ctx, b.cfg.HostPort(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "binding server")
	}

	s, err := b.Listen(l)
	if err != nil {
		l.Close()
		return nil, err
	}
	return s, nil
}

// Listen builds a server on an already bound listener.
// Address, port and TTL are ignored.
func (b Builder) Listen(l transport.ConnListener) (*Server, error) {
	routes := &router.Table{}
	for _, r := range b.routes {
		if err := routes.Get(r.pattern, r.handler); err != nil {
			return nil, err
		}
	}

	logger := b.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := b.clock
	if c == nil {
		c = clock.New()
	}

	return New(l, routes, b.shutdown, logger, c, b.opts), nil
}
