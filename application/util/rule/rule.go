// Package rule holds the byte-level vocabulary of the HTTP/1.1 wire format.
package rule

const (
	CR byte = '\r'
	LF byte = '\n'
	SP byte = ' '
)

var (
	CRLF = []byte{CR, LF}

	// HeaderTerminator is the empty line ending a header block.
	HeaderTerminator = []byte{CR, LF, CR, LF}
)
