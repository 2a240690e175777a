package http

import (
	"testing"

	"sync-http/application/http/mime"

	"github.com/stretchr/testify/assert"
)

func TestParseHeader(t *testing.T) {
	testcases := []struct {
		desc     string
		input    string
		expected Header
	}{
		{
			desc:     "host with port",
			input:    "Host: localhost:8080",
			expected: Host("localhost:8080"),
		},
		{
			desc:     "name is case insensitive",
			input:    "user-AGENT: curl/8.5.0",
			expected: UserAgent("curl/8.5.0"),
		},
		{
			desc:     "accept",
			input:    "AcCePt: text/html",
			expected: Accept{mime.MustNew(mime.MediaText, mime.MimeHTML, mime.SuffixNone, 1.0)},
		},
		{
			desc:     "whitespace around name and value",
			input:    " Host :   example.com  ",
			expected: Host("example.com"),
		},
		{
			desc:     "empty value",
			input:    "Host:",
			expected: Host(""),
		},
		{desc: "unknown field", input: "Pragma: no-cache"},
		{desc: "empty line", input: ""},
		{desc: "no colon", input: "Host localhost"},
		{desc: "accept without valid types", input: "Accept: application/html"},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			h, ok := ParseHeader(tc.input)
			if tc.expected == nil {
				assert.False(t, ok)
				assert.Nil(t, h)
				return
			}

			assert.True(t, ok)
			assert.Equal(t, tc.expected, h)
		})
	}
}

func TestHeaderName(t *testing.T) {
	assert.Equal(t, "Host", Host("").Name())
	assert.Equal(t, "User-Agent", UserAgent("").Name())
	assert.Equal(t, "Accept", Accept(nil).Name())
}

func TestFieldLine(t *testing.T) {
	accept := Accept{
		mime.MustNew(mime.MediaText, mime.MimeHTML, mime.SuffixNone, 1.0),
		mime.MustNew(mime.MediaImage, mime.MimeSVG, mime.SuffixXML, 0.5),
	}

	assert.Equal(t, "Host: localhost:8080", FieldLine(Host("localhost:8080")))
	assert.Equal(t, "User-Agent: curl", FieldLine(UserAgent("curl")))
	assert.Equal(t, "Accept: text/html, image/svg+xml;q=0.5", FieldLine(accept))

	h, ok := ParseHeader(FieldLine(accept))
	assert.True(t, ok)
	assert.Equal(t, accept, h)
}
