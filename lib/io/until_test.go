package iolib

import (
	"bytes"
	"io"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadThrough(t *testing.T) {
	sample := []byte("GET / HTTP/1.1\r\nHost: x\r\n\r\nbody")
	delim := []byte("\r\n\r\n")

	testcases := []struct {
		desc     string
		r        io.Reader
		delim    []byte
		chunk    int
		expected []byte
		wantErr  error
	}{
		{
			desc:     "single read",
			r:        bytes.NewReader(sample),
			delim:    delim,
			chunk:    128,
			expected: sample,
		},
		{
			desc:     "stops at the chunk holding delim",
			r:        bytes.NewReader(sample),
			delim:    delim,
			chunk:    4,
			expected: sample[:28],
		},
		{
			desc:     "delim split across reads",
			r:        iotest.OneByteReader(bytes.NewReader(sample)),
			delim:    delim,
			chunk:    128,
			expected: sample[:len(sample)-len("body")],
		},
		{
			desc:     "delim never shows up",
			r:        bytes.NewReader([]byte("GET / HTTP/1.1\r\n")),
			delim:    delim,
			chunk:    8,
			expected: []byte("GET / HTTP/1.1\r\n"),
			wantErr:  io.ErrUnexpectedEOF,
		},
		{
			desc:     "data returned with error",
			r:        iotest.DataErrReader(bytes.NewReader(sample)),
			delim:    delim,
			chunk:    128,
			expected: sample,
		},
		{
			desc:    "no delim",
			r:       bytes.NewReader(sample),
			delim:   nil,
			chunk:   8,
			wantErr: ErrZeroLenDelim,
		},
		{
			desc:    "no chunk",
			r:       bytes.NewReader(sample),
			delim:   delim,
			chunk:   0,
			wantErr: ErrZeroLenChunk,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			b, err := ReadThrough(tc.r, tc.delim, tc.chunk)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tc.expected, b)
		})
	}
}

func TestReadThroughReaderError(t *testing.T) {
	wantErr := io.ErrClosedPipe
	b, err := ReadThrough(iotest.ErrReader(wantErr), []byte("\n"), 8)
	require.ErrorIs(t, err, wantErr)
	assert.Empty(t, b)
}
