// Package test holds the behavior every [transport.Conn] implementation must share.
package test

import (
	"io"
	"sync"
	"time"

	"sync-http/transport"

	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
)

// ConnTestSuite expects C1 and C2 to be the two ends of one connection.
// Embedders set them up in their own SetupTest after calling this one.
type ConnTestSuite struct {
	suite.Suite
	C1, C2 transport.Conn

	done  chan struct{}
	timer *time.Timer
}

func (s *ConnTestSuite) SetupTest() {
	s.done = make(chan struct{})

	s.timer = time.AfterFunc(time.Second, func() {
		select {
		case <-s.done:
		default:
			// Unblock whatever is stuck so the test can report.
			_ = s.C1.Close()
			_ = s.C2.Close()
		}
	})
}

func (s *ConnTestSuite) TearDownTest() {
	defer goleak.VerifyNone(s.T())
	// Some tests close the connections themselves.
	_ = s.C1.Close()
	_ = s.C2.Close()
	close(s.done)
	s.timer.Stop()
}

func (s *ConnTestSuite) TestReadWrite() {
	data := []byte("Hello, World!")

	var wg sync.WaitGroup
	defer wg.Wait()
	wg.Add(2)

	go func() {
		defer wg.Done()
		n, err := s.C1.Write(data)
		s.NoError(err)
		s.Equal(len(data), n)
	}()
	go func() {
		defer wg.Done()
		buf := make([]byte, 10)

		n, err := io.ReadFull(s.C2, buf)
		s.NoError(err)
		s.Equal(data[:n], buf)

		rest := make([]byte, len(data)-len(buf))
		n, err = io.ReadFull(s.C2, rest)
		s.NoError(err)
		s.Equal(data[len(buf):], rest[:n])
	}()
}

func (s *ConnTestSuite) TestCloseWrite() {
	data := []byte("GET / HTTP/1.1\r\n\r\n")

	var wg sync.WaitGroup
	defer wg.Wait()
	wg.Add(1)

	go func() {
		defer wg.Done()
		_, err := s.C1.Write(data)
		s.NoError(err)
		s.NoError(s.C1.CloseWrite())
	}()

	got, err := io.ReadAll(s.C2)
	s.Require().NoError(err)
	s.Equal(data, got)

	// The other direction is still open.
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := s.C2.Write(data)
		s.NoError(err)
		s.NoError(s.C2.CloseWrite())
	}()

	got, err = io.ReadAll(s.C1)
	s.Require().NoError(err)
	s.Equal(data, got)
}

func (s *ConnTestSuite) TestWriteAfterCloseWrite() {
	s.Require().NoError(s.C1.CloseWrite())

	_, err := s.C1.Write([]byte("hey"))
	s.Error(err)
}

func (s *ConnTestSuite) TestReadAfterCloseRead() {
	s.Require().NoError(s.C1.CloseRead())

	n, err := s.C1.Read(make([]byte, 10))
	s.Error(err)
	s.Zero(n)
}

func (s *ConnTestSuite) TestClose() {
	s.Require().NoError(s.C1.Close())

	buf := make([]byte, 10)

	_, err := s.C1.Read(buf)
	s.Error(err)
	_, err = s.C1.Write(buf)
	s.Error(err)

	// The peer sees the end of the stream.
	n, err := s.C2.Read(buf)
	s.ErrorIs(err, io.EOF)
	s.Zero(n)
}

func (s *ConnTestSuite) TestAddr() {
	local1, remote1 := s.C1.LocalAddr(), s.C1.RemoteAddr()
	local2, remote2 := s.C2.LocalAddr(), s.C2.RemoteAddr()

	s.Equal(local1.String(), remote2.String())
	s.Equal(local2.String(), remote1.String())
	s.Equal(local1.Network(), remote1.Network())
}
