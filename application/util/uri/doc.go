// Package uri handles the request-target of an origin-form request.
//
// Only the path and the query are recognized. The path is reduced to its
// non-empty segments, so "/", "" and "./" all become the empty path.
//
// Reference:
//
// - https://datatracker.ietf.org/doc/html/rfc3986#section-3.3
//
// - https://datatracker.ietf.org/doc/html/rfc9112#section-3.2.1
package uri
