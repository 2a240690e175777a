// Package transport defines the byte stream the server is built on.
//
// A [Conn] is a duplex stream whose halves can be shut down independently,
// which is all the server needs: it stops reading once a request head is in,
// and signals the end of the response by shutting down writing.
package transport

import "net"

// Addr has the same shape as [net.Addr], so addresses of real sockets can be used as is.
type Addr = net.Addr
