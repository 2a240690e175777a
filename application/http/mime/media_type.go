package mime

// MediaType is the top-level type. e.g. "text" in "text/html".
type MediaType string

const (
	MediaAll         MediaType = "*"
	MediaApplication MediaType = "application"
	MediaAudio       MediaType = "audio"
	MediaFont        MediaType = "font"
	MediaImage       MediaType = "image"
	MediaModel       MediaType = "model"
	MediaText        MediaType = "text"
	MediaVideo       MediaType = "video"
)

// ParseMediaType is case sensitive.
func ParseMediaType(s string) (MediaType, bool) {
	switch m := MediaType(s); m {
	case MediaAll, MediaApplication, MediaAudio, MediaFont,
		MediaImage, MediaModel, MediaText, MediaVideo:
		return m, true
	}
	return "", false
}

func (m MediaType) String() string { return string(m) }
