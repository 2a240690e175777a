// Package http implements a minimal HTTP/1.1 exchange: a request head is
// parsed into [Request] (or written from one), and a response is a fixed
// status line followed by a raw body.
//
// Only GET and POST, and only the Host, User-Agent and Accept fields are
// understood. Other fields are dropped without error.
//
// Reference:
//
// - https://datatracker.ietf.org/doc/html/rfc9112#section-3
//
// - https://datatracker.ietf.org/doc/html/rfc9112#section-5
package http
