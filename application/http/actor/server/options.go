package server

import (
	"sync-http/application/http/router"
)

// DefaultReadBufferSize is how many bytes are read from a connection at a time.
const DefaultReadBufferSize = 128

type Options struct {
	// ReadBufferSize defaults to DefaultReadBufferSize.
	ReadBufferSize int

	// NotFound serves GET requests no route matches.
	// When nil, nothing is written and the connection is closed.
	NotFound router.Handler

	// OnError decides what happens after a request fails.
	// Returning nil keeps the loop going, anything else is returned by Serve.
	// When nil, every error is returned.
	OnError func(err error) error

	// Metrics are not recorded when nil.
	Metrics *Metrics
}

func (o Options) withDefaults() Options {
	if o.ReadBufferSize <= 0 {
		o.ReadBufferSize = DefaultReadBufferSize
	}
	return o
}
