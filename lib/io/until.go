package iolib

import (
	"bytes"
	"errors"
	"io"
)

var (
	ErrZeroLenDelim = errors.New("delim has zero length")
	ErrZeroLenChunk = errors.New("chunk size must be greater than 0")
)

// ReadThrough reads r chunk by chunk until the accumulated bytes contain delim.
// It returns everything read so far, which may extend past delim.
//
// The whole accumulated buffer is searched after every read, so the cost is
// quadratic in the number of chunks. That is fine for a request head of a few
// hundred bytes; callers expecting large inputs should bound them first.
//
// If r fails before delim shows up, the bytes read so far are returned with the
// error, and io.EOF is reported as io.ErrUnexpectedEOF.
func ReadThrough(r io.Reader, delim []byte, chunk int) ([]byte, error) {
	if len(delim) == 0 {
		return nil, ErrZeroLenDelim
	}
	if chunk <= 0 {
		return nil, ErrZeroLenChunk
	}

	var buf []byte
	temp := make([]byte, chunk)
	for {
		n, err := r.Read(temp)
		buf = append(buf, temp[:n]...)

		if bytes.Contains(buf, delim) {
			return buf, nil
		}

		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return buf, err
		}
	}
}
