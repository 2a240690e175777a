package client

import "sync-http/application/http/mime"

type Options struct {
	// UserAgent is sent when not empty.
	UserAgent string
	// Accept is sent when not empty.
	Accept []mime.ContentType
}
