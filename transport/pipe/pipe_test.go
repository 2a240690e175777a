package pipe

import (
	"io"
	"testing"

	"sync-http/transport"
	"sync-http/transport/test"

	"github.com/stretchr/testify/suite"
)

type PipeTestSuite struct {
	test.ConnTestSuite
}

func TestPipeTestSuite(t *testing.T) {
	suite.Run(t, new(PipeTestSuite))
}

func (s *PipeTestSuite) SetupTest() {
	s.C1, s.C2 = NewPair("A", "B")
	s.ConnTestSuite.SetupTest()
}

func (s *PipeTestSuite) TestPeerCannotWriteAfterCloseRead() {
	s.Require().NoError(s.C1.CloseRead())

	_, err := s.C2.Write([]byte("hey"))
	s.ErrorIs(err, transport.ErrConnClosed)
}

func (s *PipeTestSuite) TestCloseReadUnblocksWriter() {
	done := make(chan error)
	go func() {
		// Nobody reads this.
		_, err := s.C2.Write([]byte("body"))
		done <- err
	}()

	s.Require().NoError(s.C1.CloseRead())
	s.ErrorIs(<-done, transport.ErrConnClosed)
}

func (s *PipeTestSuite) TestCloseWriteUnblocksReader() {
	done := make(chan error)
	go func() {
		_, err := s.C2.Read(make([]byte, 1))
		done <- err
	}()

	s.Require().NoError(s.C1.CloseWrite())
	s.ErrorIs(<-done, io.EOF)
}

func (s *PipeTestSuite) TestHalfCloseAfterClose() {
	s.Require().NoError(s.C1.Close())
	s.ErrorIs(s.C1.CloseRead(), transport.ErrConnClosed)
	s.ErrorIs(s.C1.CloseWrite(), transport.ErrConnClosed)
}
