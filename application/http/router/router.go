// Package router matches sanitized request paths against GET route patterns.
//
// A pattern is a path with literal segments and '*' wildcards.
// A wildcard matches zero or more unreserved characters and never crosses a '/'.
// Other characters keep their regular expression meaning,
// so "close?" matches both "clos" and "close".
package router

import (
	"regexp"
	"strings"

	"sync-http/application/util/query"
	"sync-http/application/util/uri"

	"github.com/pkg/errors"
)

var ErrCompileRoute = errors.New("failed to compile route")

// Handler produces the body of a successful response.
type Handler interface {
	Serve(q query.Query) (string, error)
}

type HandlerFunc func(q query.Query) (string, error)

func (f HandlerFunc) Serve(q query.Query) (string, error) { return f(q) }

// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-2.3
const wildcard = `[A-Za-z0-9\-_~.]*`

var escaper = strings.NewReplacer(
	"/", `\/`,
	".", `\.`,
	"*", wildcard,
)

// Compile turns pattern into a matcher anchored to the whole sanitized path.
// Leading and trailing slashes are dropped first, as sanitized paths have none.
func Compile(pattern string) (*regexp.Regexp, error) {
	expr := "^" + escaper.Replace(strings.Trim(pattern, "/")) + "$"

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.Wrapf(ErrCompileRoute, "%q: %s", pattern, err)
	}
	return re, nil
}

type route struct {
	pattern string
	re      *regexp.Regexp
	handler Handler
}

// Table is an ordered list of routes.
// It must not be modified once the server is running.
type Table struct {
	routes []route
}

// Get registers h for GET requests matching pattern.
// Nothing is added when the pattern doesn't compile.
func (t *Table) Get(pattern string, h Handler) error {
	if h == nil {
		return errors.Errorf("nil handler for %q", pattern)
	}

	re, err := Compile(pattern)
	if err != nil {
		return err
	}

	t.routes = append(t.routes, route{pattern: pattern, re: re, handler: h})
	return nil
}

// Lookup returns the handler of the first registered route matching path.
func (t *Table) Lookup(path string) (Handler, bool) {
	path = uri.Sanitize(path)
	for _, r := range t.routes {
		if r.re.MatchString(path) {
			return r.handler, true
		}
	}
	return nil, false
}

// Patterns returns registered patterns in registration order.
func (t *Table) Patterns() []string {
	out := make([]string, len(t.routes))
	for i, r := range t.routes {
		out[i] = r.pattern
	}
	return out
}

func (t *Table) Len() int { return len(t.routes) }
