// Package mime implements the subset of media types understood by the server,
// and the Accept header values built from them.
//
// The vocabularies are closed: a token outside them is not an error to
// recover from, it simply doesn't parse.
//
// Reference:
//
// - https://datatracker.ietf.org/doc/html/rfc6838
//
// - https://datatracker.ietf.org/doc/html/rfc9110#section-12.5.1
package mime
