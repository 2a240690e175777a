package server

import (
	"context"
	"log/slog"
	"sync/atomic"

	"sync-http/application/http"
	"sync-http/application/http/router"
	"sync-http/application/util/rule"
	iolib "sync-http/lib/io"
	"sync-http/transport"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrNotImplemented is returned when a request can't be dispatched at all.
	// Serve always stops on it.
	ErrNotImplemented = errors.New("not implemented")
	ErrServerClosed   = errors.New("server closed")
)

// Server handles one connection at a time: read the request head, dispatch it,
// answer and close. Nothing has a timeout, so a client that never finishes
// its head blocks the server.
type Server struct {
	l      transport.ConnListener
	routes *router.Table

	shutdown <-chan struct{}
	state    *runState

	ctx    context.Context
	cancel context.CancelFunc
	closed atomic.Bool

	logger *slog.Logger
	clock  clock.Clock
	opts   Options
}

// New creates a server accepting from l.
// shutdown may be nil, in which case the server runs until closed.
func New(
	l transport.ConnListener,
	routes *router.Table,
	shutdown <-chan struct{},
	logger *slog.Logger,
	clock clock.Clock,
	opts Options,
) *Server {
	if routes == nil {
		routes = &router.Table{}
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Server{
		l:        l,
		routes:   routes,
		shutdown: shutdown,
		state:    newRunState(),
		ctx:      ctx,
		cancel:   cancel,
		logger:   logger,
		clock:    clock,
		opts:     opts.withDefaults(),
	}
}

func (s *Server) Addr() transport.Addr { return s.l.Addr() }

// Running reports whether the loop keeps accepting after the current request.
func (s *Server) Running() bool { return s.state.Running() }

// Serve runs the accept loop until the shutdown signal fires, the server is
// closed, or a request error is not absorbed by [Options.OnError].
// The shutdown signal is only checked between requests.
func (s *Server) Serve() error {
	if s.shutdown != nil {
		stop := s.state.watch(s.shutdown, s.logger)
		defer stop()
	}

	s.logger.Info("serving", "addr", s.l.Addr().String())

	for s.keepRunning() {
		conn, err := s.accept()
		if err != nil {
			if !errors.Is(err, ErrServerClosed) {
				s.logger.Error("accepting connection failed", "error", err)
			}
			return err
		}

		ex, err := s.read(conn)
		if err == nil {
			err = s.Dispatch(ex)
		}
		if err == nil {
			continue
		}
		if errors.Is(err, ErrNotImplemented) {
			return err
		}

		s.logger.Error("request failed", "error", err)
		if err := s.onError(err); err != nil {
			return err
		}
	}

	s.logger.Info("stopped")
	return nil
}

// keepRunning is the single point where the loop looks at the shutdown signal.
// A nil signal never fires.
func (s *Server) keepRunning() bool {
	s.state.poll(s.shutdown, s.logger)
	return s.state.Running()
}

func (s *Server) onError(err error) error {
	if s.opts.OnError == nil {
		return err
	}
	return s.opts.OnError(err)
}

// Accept waits for the next connection and reads its request.
// The read half is shut down once the head is in.
// On error the connection is already closed.
func (s *Server) Accept() (*Exchange, error) {
	conn, err := s.accept()
	if err != nil {
		return nil, err
	}
	return s.read(conn)
}

func (s *Server) accept() (transport.Conn, error) {
	conn, err := s.l.Accept(s.ctx)
	if err != nil {
		if s.closed.Load() {
			return nil, ErrServerClosed
		}
		return nil, errors.Wrap(err, "accepting connection")
	}
	return conn, nil
}

func (s *Server) read(conn transport.Conn) (*Exchange, error) {
	ex := &Exchange{
		conn:    conn,
		logger:  s.logger.With("conn", uuid.NewString(), "remote", conn.RemoteAddr().String()),
		metrics: s.opts.Metrics,
		clock:   s.clock,
		start:   s.clock.Now(),
	}
	ex.logger.Debug("connection accepted")

	raw, err := iolib.ReadThrough(conn, rule.HeaderTerminator, s.opts.ReadBufferSize)
	if err != nil {
		ex.finish(OutcomeIOError)
		return nil, errors.Wrap(err, "reading request")
	}

	if err := conn.CloseRead(); err != nil {
		ex.finish(OutcomeIOError)
		return nil, errors.Wrap(err, "shutting down read half")
	}

	ex.Request, err = http.ParseRequest(string(raw))
	if err != nil {
		ex.finish(OutcomeBadRequest)
		return nil, errors.Wrap(err, "parsing request")
	}

	ex.logger.Debug("request parsed",
		"method", ex.Request.Method,
		"uri", ex.Request.URI,
		"query", ex.Request.Query.String(),
		"headers", len(ex.Request.Headers),
	)

	return ex, nil
}

// Dispatch routes ex, writes the response and closes the connection.
// A request no route matches is not an error.
func (s *Server) Dispatch(ex *Exchange) error {
	req := ex.Request

	if req.Method != http.MethodGet {
		ex.finish(OutcomeNotImplemented)
		return errors.Wrapf(ErrNotImplemented, "%s %s", req.Method, req.URI)
	}

	outcome := OutcomeOK

	h, ok := s.routes.Lookup(req.URI)
	if !ok {
		ex.logger.Warn("no route matched", "uri", req.URI)
		if s.opts.NotFound == nil {
			ex.finish(OutcomeNotFound)
			return nil
		}
		h, outcome = s.opts.NotFound, OutcomeNotFound
	}

	body, err := h.Serve(req.Query)
	if err != nil {
		ex.finish(OutcomeHandlerError)
		return errors.Wrapf(err, "handling %s", req.URI)
	}

	if err := ex.respond([]byte(body)); err != nil {
		ex.finish(OutcomeIOError)
		return err
	}

	ex.finish(outcome)
	return nil
}

// Close stops accepting. A running Serve returns ErrServerClosed.
// The connection being handled, if any, is finished first.
func (s *Server) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return ErrServerClosed
	}
	s.cancel()

	if err := s.l.Close(); err != nil && !errors.Is(err, transport.ErrConnListenerClosed) {
		return errors.Wrap(err, "closing listener")
	}
	return nil
}
