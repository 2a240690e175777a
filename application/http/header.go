package http

import (
	"strings"

	"sync-http/application/http/mime"
)

// Header is one of [Host], [UserAgent] or [Accept].
type Header interface {
	Name() string
	Value() string
	header()
}

type (
	Host      string
	UserAgent string
	Accept    []mime.ContentType
)

func (Host) Name() string      { return "Host" }
func (UserAgent) Name() string { return "User-Agent" }
func (Accept) Name() string    { return "Accept" }

func (h Host) Value() string      { return string(h) }
func (h UserAgent) Value() string { return string(h) }

func (h Accept) Value() string {
	values := make([]string, len(h))
	for i, ct := range h {
		values[i] = ct.String()
	}
	return strings.Join(values, ", ")
}

// FieldLine formats h as it's sent, without the line terminator.
func FieldLine(h Header) string { return h.Name() + ": " + h.Value() }

func (Host) header()      {}
func (UserAgent) header() {}
func (Accept) header()    {}

// ParseHeader parses a field line. The value is everything after the first colon.
// It returns false for unknown field names, lines without a colon and
// Accept values containing no valid content type.
func ParseHeader(line string) (Header, bool) {
	name, value, found := strings.Cut(line, ":")
	if !found {
		return nil, false
	}
	name, value = strings.TrimSpace(name), strings.TrimSpace(value)

	// Field names are case-insensitive.
	// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-5.1-3
	switch {
	case strings.EqualFold(name, Host("").Name()):
		return Host(value), true
	case strings.EqualFold(name, UserAgent("").Name()):
		return UserAgent(value), true
	case strings.EqualFold(name, Accept(nil).Name()):
		cts, ok := mime.ParseMany(value)
		if !ok {
			return nil, false
		}
		return Accept(cts), true
	}

	return nil, false
}
