package mime

// MimeType is the subtype. e.g. "html" in "text/html".
type MimeType string

const (
	MimeAll MimeType = "*"

	// application
	MimeJSON        MimeType = "json"
	MimeOctetStream MimeType = "octet-stream"
	MimeXHTML       MimeType = "xhtml"
	MimeXML         MimeType = "xml"

	// image
	MimeAPNG MimeType = "apng"
	MimeAVIF MimeType = "avif"
	MimeGIF  MimeType = "gif"
	MimeJPEG MimeType = "jpeg"
	MimePNG  MimeType = "png"
	MimeSVG  MimeType = "svg"
	MimeWebp MimeType = "webp"

	// text
	MimeCSS        MimeType = "css"
	MimeHTML       MimeType = "html"
	MimeJavascript MimeType = "javascript"
	MimePlain      MimeType = "plain"
)

var associatedMedia = map[MimeType]MediaType{
	MimeAll: MediaAll,

	MimeJSON:        MediaApplication,
	MimeOctetStream: MediaApplication,
	MimeXHTML:       MediaApplication,
	MimeXML:         MediaApplication,

	MimeAPNG: MediaImage,
	MimeAVIF: MediaImage,
	MimeGIF:  MediaImage,
	MimeJPEG: MediaImage,
	MimePNG:  MediaImage,
	MimeSVG:  MediaImage,
	MimeWebp: MediaImage,

	MimeCSS:        MediaText,
	MimeHTML:       MediaText,
	MimeJavascript: MediaText,
	MimePlain:      MediaText,
}

// ParseMimeType is case sensitive.
func ParseMimeType(s string) (MimeType, bool) {
	m := MimeType(s)
	if _, ok := associatedMedia[m]; !ok {
		return "", false
	}
	return m, true
}

// AssociatedMedia returns the only media type m can appear under.
// It returns an empty MediaType for a value not obtained from this package.
func (m MimeType) AssociatedMedia() MediaType { return associatedMedia[m] }

func (m MimeType) String() string { return string(m) }
