package mime

// MimeSuffix is a structured syntax suffix. e.g. "json" in "application/ld+json".
//
// Reference: https://datatracker.ietf.org/doc/html/rfc6838#section-4.2.8
type MimeSuffix string

const (
	SuffixNone  MimeSuffix = ""
	SuffixGZip  MimeSuffix = "gzip"
	SuffixJSON  MimeSuffix = "json"
	SuffixWbXML MimeSuffix = "wbxml"
	SuffixXML   MimeSuffix = "xml"
	SuffixZip   MimeSuffix = "zip"
)

// ParseSuffix never fails. Unknown suffixes become [SuffixNone].
func ParseSuffix(s string) MimeSuffix {
	switch m := MimeSuffix(s); m {
	case SuffixGZip, SuffixJSON, SuffixWbXML, SuffixXML, SuffixZip:
		return m
	}
	return SuffixNone
}

func (s MimeSuffix) String() string { return string(s) }
