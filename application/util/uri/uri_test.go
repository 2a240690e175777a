package uri

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTarget(t *testing.T) {
	testcases := []struct {
		desc      string
		input     string
		path      string
		rawQuery  string
		withQuery bool
	}{
		{desc: "path only", input: "/users/1", path: "/users/1"},
		{desc: "path and query", input: "/users?id=1", path: "/users", rawQuery: "id=1", withQuery: true},
		{desc: "empty query", input: "/close?", path: "/close", withQuery: true},
		{desc: "only first separator", input: "/a?b?c", path: "/a", rawQuery: "b?c", withQuery: true},
		{desc: "empty target", input: ""},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			path, rawQuery, hasQuery := SplitTarget(tc.input)
			assert.Equal(t, tc.path, path)
			assert.Equal(t, tc.rawQuery, rawQuery)
			assert.Equal(t, tc.withQuery, hasQuery)
		})
	}
}

func TestSanitize(t *testing.T) {
	testcases := []struct {
		input    string
		expected string
	}{
		{"./a//b/.", "a/b"},
		{"/", ""},
		{"", ""},
		{"/users/abc-123", "users/abc-123"},
		{"//users///abc//", "users/abc"},
		{"../secret", "secret"},
		{"/a/../b", "a/../b"},
		{"/file.txt", "file.txt"},
		{"/dir./", "dir"},
		{"/./.", ""},
		{"/./a", "a"},
	}

	for _, tc := range testcases {
		t.Run(tc.input, func(t *testing.T) {
			got := Sanitize(tc.input)
			assert.Equal(t, tc.expected, got)

			// Sanitizing twice changes nothing.
			assert.Equal(t, got, Sanitize(got))
		})
	}
}
