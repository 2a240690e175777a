package uri

import "strings"

const (
	querySeparator   = "?"
	segmentSeparator = "/"
)

// SplitTarget cuts request-target at the first '?'.
// hasQuery reports whether the separator was present.
func SplitTarget(target string) (path, rawQuery string, hasQuery bool) {
	return strings.Cut(target, querySeparator)
}

// Sanitize trims leading and trailing dots, then drops every empty segment.
// e.g. "./a//b/." -> "a/b"
//
// Dropping segments can expose new edge dots ("/a./" -> "a."), so the
// reduction repeats until nothing changes. This keeps Sanitize idempotent.
func Sanitize(path string) string {
	for {
		reduced := reducePath(path)
		if reduced == path {
			return reduced
		}
		path = reduced
	}
}

func reducePath(path string) string {
	path = strings.Trim(path, ".")

	segments := strings.Split(path, segmentSeparator)
	kept := segments[:0]
	for _, seg := range segments {
		if seg != "" {
			kept = append(kept, seg)
		}
	}

	return strings.Join(kept, segmentSeparator)
}
