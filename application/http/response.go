package http

import (
	"bytes"
	"io"
	"strconv"

	"sync-http/application/util/rule"
	iolib "sync-http/lib/io"

	"github.com/pkg/errors"
)

// StatusOK is the only status code ever written.
const StatusOK = 200

var ErrBadStatusLine = errors.New("malformed status line")

// StatusLine returns the response head: status line and the empty line.
// No reason phrase and no fields are sent.
func StatusLine() []byte {
	b := Version11.Text()
	b = append(b, rule.SP)
	b = strconv.AppendInt(b, StatusOK, 10)
	b = append(b, rule.CRLF...)
	b = append(b, rule.CRLF...)
	return b
}

// WriteResponse writes the response head followed by body.
func WriteResponse(w io.Writer, body []byte) error {
	if _, err := iolib.WriteFull(w, StatusLine()); err != nil {
		return errors.Wrap(err, "writing status line")
	}

	if _, err := iolib.WriteFull(w, body); err != nil {
		return errors.Wrap(err, "writing body")
	}

	return nil
}

// ParseResponse returns the body of a response written by [WriteResponse].
func ParseResponse(raw []byte) ([]byte, error) {
	body, ok := bytes.CutPrefix(raw, StatusLine())
	if !ok {
		line, _, _ := bytes.Cut(raw, rule.CRLF)
		return nil, errors.Wrapf(ErrBadStatusLine, "%q", line)
	}
	return body, nil
}
