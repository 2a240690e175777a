package http

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"sync-http/application/http/mime"
	"sync-http/application/util/query"
	"sync-http/application/util/rule"
	"sync-http/application/util/uri"
	iolib "sync-http/lib/io"

	"github.com/pkg/errors"
)

// [Major, Minor]
type Version [2]uint

// Version11 is the only version this package speaks.
var Version11 = Version{1, 1}

func (ver Version) Text() []byte {
	b := make([]byte, 0, len("HTTP/1.1"))
	b = append(b, "HTTP/"...)
	b = strconv.AppendUint(b, uint64(ver[0]), 10)
	b = append(b, '.')
	b = strconv.AppendUint(b, uint64(ver[1]), 10)
	return b
}

func (ver Version) String() string { return string(ver.Text()) }

type Method string

const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
)

var (
	ErrTooManyValues = errors.New("request line must have exactly three values")
	ErrBadMethod     = errors.New("unsupported method")
	ErrBadProtocol   = errors.New("unsupported protocol")
)

// ParseMethod is case sensitive, unlike field names.
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-9.1-5
func ParseMethod(s string) (Method, error) {
	switch m := Method(strings.TrimSpace(s)); m {
	case MethodGet, MethodPost:
		return m, nil
	}
	return "", errors.Wrapf(ErrBadMethod, "%q", s)
}

type Request struct {
	Method Method
	// URI is the sanitized path, without leading or trailing slashes.
	URI     string
	Query   query.Query
	Headers []Header
}

// ParseRequest parses a request head. Anything after the first empty line is ignored.
// Only the request line can make it fail; malformed fields are skipped.
func ParseRequest(raw string) (*Request, error) {
	head, _, _ := strings.Cut(raw, string(rule.HeaderTerminator))

	lines := strings.Split(head, string(rule.LF))
	for idx, line := range lines {
		lines[idx] = strings.TrimSpace(line)
	}

	var request Request
	if err := parseRequestLine(lines[0], &request); err != nil {
		return nil, err
	}

	for _, line := range lines[1:] {
		if h, ok := ParseHeader(line); ok {
			request.Headers = append(request.Headers, h)
		}
	}

	return &request, nil
}

func parseRequestLine(line string, r *Request) error {
	parts := strings.Split(line, string(rule.SP))
	if len(parts) != 3 {
		return errors.Wrapf(ErrTooManyValues, "got %d", len(parts))
	}

	method, err := ParseMethod(parts[0])
	if err != nil {
		return err
	}

	path, rawQuery, hasQuery := uri.SplitTarget(parts[1])
	if hasQuery {
		r.Query = query.Parse(rawQuery)
	}

	if !strings.EqualFold(parts[2], Version11.String()) {
		return errors.Wrapf(ErrBadProtocol, "%q", parts[2])
	}

	r.Method = method
	r.URI = uri.Sanitize(path)

	return nil
}

// Target is the request-target as sent on the request line.
func (r *Request) Target() string {
	target := "/" + r.URI
	if r.Query.Len() > 0 {
		target += "?" + r.Query.String()
	}
	return target
}

// WriteRequest writes the head of r. Requests never have a body.
func WriteRequest(w io.Writer, r *Request) error {
	b := new(bytes.Buffer)
	b.WriteString(string(r.Method))
	b.WriteByte(rule.SP)
	b.WriteString(r.Target())
	b.WriteByte(rule.SP)
	b.Write(Version11.Text())
	b.Write(rule.CRLF)
	for _, h := range r.Headers {
		b.WriteString(FieldLine(h))
		b.Write(rule.CRLF)
	}
	b.Write(rule.CRLF)

	if _, err := iolib.WriteFull(w, b.Bytes()); err != nil {
		return errors.Wrap(err, "writing request")
	}
	return nil
}

func (r *Request) Host() (string, bool) {
	for _, h := range r.Headers {
		if v, ok := h.(Host); ok {
			return string(v), true
		}
	}
	return "", false
}

func (r *Request) UserAgent() (string, bool) {
	for _, h := range r.Headers {
		if v, ok := h.(UserAgent); ok {
			return string(v), true
		}
	}
	return "", false
}

// Accept returns every content type of every Accept field, in order.
func (r *Request) Accept() ([]mime.ContentType, bool) {
	var out []mime.ContentType
	found := false
	for _, h := range r.Headers {
		if v, ok := h.(Accept); ok {
			out = append(out, v...)
			found = true
		}
	}
	return out, found
}

// Negotiate picks the offer the client prefers.
// Without an Accept field, any offer is acceptable and the first one is returned.
func (r *Request) Negotiate(offers ...mime.ContentType) (mime.ContentType, bool) {
	accepted, ok := r.Accept()
	if !ok {
		if len(offers) == 0 {
			return mime.ContentType{}, false
		}
		return offers[0], true
	}
	return mime.Negotiate(accepted, offers...)
}

// Accepts reports whether ct is acceptable to the client.
// Every content type is acceptable without an Accept field.
func (r *Request) Accepts(ct mime.ContentType) bool {
	_, ok := r.Negotiate(ct)
	return ok
}
