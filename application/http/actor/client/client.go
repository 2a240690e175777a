// Package client sends GET requests to servers speaking this package's
// HTTP/1.1 subset: one request per connection, and a bare "200" status line.
package client

import (
	"context"
	"io"
	"log/slog"

	"sync-http/application/http"
	"sync-http/application/util/query"
	"sync-http/application/util/uri"
	"sync-http/transport"

	"github.com/pkg/errors"
)

// ErrNoResponse means the server closed the connection without answering,
// which is what it does for unmatched routes and failed handlers.
var ErrNoResponse = errors.New("server sent no response")

type Client struct {
	dialer transport.ConnDialer
	logger *slog.Logger
	opts   Options
}

func New(d transport.ConnDialer, logger *slog.Logger, opts Options) *Client {
	return &Client{dialer: d, logger: logger, opts: opts}
}

// Get requests target from the server at addr and returns the response body.
func (c *Client) Get(ctx context.Context, addr transport.Addr, target string) (string, error) {
	request := c.newRequest(addr, target)

	conn, err := c.dialer.Dial(ctx, addr)
	if err != nil {
		return "", errors.Wrapf(err, "dialing %s", addr)
	}
	defer func() {
		if err := conn.Close(); err != nil && !errors.Is(err, transport.ErrConnClosed) {
			c.logger.Error("error when closing connection", "error", err)
		}
	}()

	logger := c.logger.With("addr", addr.String(), "target", request.Target())
	logger.Debug("sending request")

	if err := http.WriteRequest(conn, request); err != nil {
		return "", err
	}
	// No body follows.
	if err := conn.CloseWrite(); err != nil {
		return "", errors.Wrap(err, "shutting down write half")
	}

	raw, err := io.ReadAll(conn)
	if err != nil {
		return "", errors.Wrap(err, "reading response")
	}
	if len(raw) == 0 {
		return "", ErrNoResponse
	}

	body, err := http.ParseResponse(raw)
	if err != nil {
		return "", err
	}

	logger.Debug("response received", "length", len(body))
	return string(body), nil
}

func (c *Client) newRequest(addr transport.Addr, target string) *http.Request {
	path, rawQuery, hasQuery := uri.SplitTarget(target)

	request := &http.Request{
		Method:  http.MethodGet,
		URI:     uri.Sanitize(path),
		Headers: []http.Header{http.Host(addr.String())},
	}
	if hasQuery {
		request.Query = query.Parse(rawQuery)
	}
	if c.opts.UserAgent != "" {
		request.Headers = append(request.Headers, http.UserAgent(c.opts.UserAgent))
	}
	if len(c.opts.Accept) > 0 {
		request.Headers = append(request.Headers, http.Accept(c.opts.Accept))
	}

	return request
}
