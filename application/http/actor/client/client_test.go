package client

import (
	"context"
	"log/slog"
	"testing"

	"sync-http/application/http/actor/server"
	"sync-http/application/http/mime"
	"sync-http/application/http/router"
	"sync-http/application/util/query"
	"sync-http/transport/pipe"

	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
)

type ClientTestSuite struct {
	suite.Suite

	transport *pipe.PipeTransport
	addr      pipe.Addr

	server *server.Server
	done   chan error

	client *Client
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.transport = pipe.NewPipeTransport()
	s.addr = pipe.Addr{Name: "server"}

	l, err := s.transport.Listen(s.addr)
	s.Require().NoError(err)

	b := server.Create().Options(server.Options{OnError: func(error) error { return nil }})
	b, err = b.Get("/", router.HandlerFunc(func(query.Query) (string, error) {
		return "index", nil
	}))
	s.Require().NoError(err)
	b, err = b.Get("/echo", router.HandlerFunc(func(q query.Query) (string, error) {
		return q.String(), nil
	}))
	s.Require().NoError(err)

	s.server, err = b.Listen(l)
	s.Require().NoError(err)

	s.done = make(chan error, 1)
	go func() { s.done <- s.server.Serve() }()

	s.client = New(s.transport, slog.New(slog.DiscardHandler), Options{
		UserAgent: "client-test",
		Accept:    []mime.ContentType{mime.MustNew(mime.MediaText, mime.MimeHTML, mime.SuffixNone, 1.0)},
	})
}

func (s *ClientTestSuite) TearDownTest() {
	defer goleak.VerifyNone(s.T())
	s.Require().NoError(s.server.Close())
	s.ErrorIs(<-s.done, server.ErrServerClosed)
}

func (s *ClientTestSuite) TestGet() {
	testCases := []struct {
		desc     string
		target   string
		expected string
	}{
		{desc: "root", target: "/", expected: "index"},
		{desc: "empty target", target: "", expected: "index"},
		{desc: "query", target: "/echo?a=b+c", expected: "a=b+c"},
		{desc: "unsanitized", target: "//echo/?k=v", expected: "k=v"},
	}
	for _, tc := range testCases {
		s.Run(tc.desc, func() {
			body, err := s.client.Get(context.Background(), s.addr, tc.target)
			s.Require().NoError(err)
			s.Equal(tc.expected, body)
		})
	}
}

func (s *ClientTestSuite) TestNoResponse() {
	_, err := s.client.Get(context.Background(), s.addr, "/nowhere")
	s.ErrorIs(err, ErrNoResponse)
}

func (s *ClientTestSuite) TestDialFails() {
	_, err := s.client.Get(context.Background(), pipe.Addr{Name: "nobody"}, "/")
	s.Error(err)
}
