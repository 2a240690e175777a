package server

import (
	"log/slog"
	"time"

	"sync-http/application/http"
	"sync-http/transport"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
)

// Exchange is an accepted connection with its parsed request.
type Exchange struct {
	Request *http.Request

	conn    transport.Conn
	logger  *slog.Logger
	metrics *Metrics
	clock   clock.Clock

	start time.Time
	done  bool
}

func (ex *Exchange) RemoteAddr() transport.Addr { return ex.conn.RemoteAddr() }

func (ex *Exchange) respond(body []byte) error {
	if err := http.WriteResponse(ex.conn, body); err != nil {
		return errors.Wrap(err, "writing response")
	}
	if err := ex.conn.CloseWrite(); err != nil {
		return errors.Wrap(err, "shutting down write half")
	}
	return nil
}

// finish closes the connection and records the outcome. Only the first call counts.
func (ex *Exchange) finish(outcome string) {
	if ex.done {
		return
	}
	ex.done = true

	if err := ex.conn.Close(); err != nil && !errors.Is(err, transport.ErrConnClosed) {
		ex.logger.Error("error when closing connection", "error", err)
	}

	d := ex.clock.Since(ex.start)
	ex.metrics.record(outcome, d)
	ex.logger.Debug("connection closed", "outcome", outcome, "duration", d)
}
