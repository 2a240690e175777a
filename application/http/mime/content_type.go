package mime

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	qualitySeparator = ";q="
	typeSeparator    = "/"
	suffixSeparator  = "+"
	listSeparator    = ","

	DefaultQuality = 1.0
)

var ErrMediaMismatch = errors.New("mime type does not belong to media type")

// ContentType is a validated media range with its quality value.
// Its media type is either [MediaAll] or the mime type's associated media.
type ContentType struct {
	media   MediaType
	mime    MimeType
	suffix  MimeSuffix
	quality float64
}

// New creates a ContentType, rejecting inconsistent media and mime types.
func New(media MediaType, mime MimeType, suffix MimeSuffix, quality float64) (ContentType, error) {
	ct := ContentType{media: media, mime: mime, suffix: suffix, quality: quality}
	if err := ct.Validate(); err != nil {
		return ContentType{}, err
	}
	return ct, nil
}

// MustNew is like [New] but panics on error.
func MustNew(media MediaType, mime MimeType, suffix MimeSuffix, quality float64) ContentType {
	ct, err := New(media, mime, suffix, quality)
	if err != nil {
		panic(err)
	}
	return ct
}

func (c ContentType) Validate() error {
	if _, ok := ParseMediaType(string(c.media)); !ok {
		return errors.Errorf("unknown media type: %q", c.media)
	}
	if _, ok := ParseMimeType(string(c.mime)); !ok {
		return errors.Errorf("unknown mime type: %q", c.mime)
	}

	if c.media == MediaAll {
		return nil
	}
	if c.media != c.mime.AssociatedMedia() {
		return errors.Wrapf(ErrMediaMismatch, "%s/%s", c.media, c.mime)
	}

	return nil
}

func (c ContentType) Media() MediaType   { return c.media }
func (c ContentType) Mime() MimeType     { return c.mime }
func (c ContentType) Suffix() MimeSuffix { return c.suffix }
func (c ContentType) Quality() float64   { return c.quality }

// Parse parses "media/mime[+suffix][;q=quality]".
// Unknown media or mime types, a malformed quality, or a mismatch between
// media and mime type make the whole token fail. An unknown suffix doesn't.
func Parse(token string) (ContentType, bool) {
	parts := strings.Split(strings.TrimSpace(token), qualitySeparator)

	quality := DefaultQuality
	if len(parts) > 1 {
		q, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return ContentType{}, false
		}
		quality = q
	}

	types := strings.Split(parts[0], typeSeparator)
	if len(types) < 2 {
		return ContentType{}, false
	}

	mimeParts := strings.Split(types[1], suffixSeparator)
	suffix := SuffixNone
	if len(mimeParts) > 1 {
		suffix = ParseSuffix(mimeParts[1])
	}

	media, ok := ParseMediaType(types[0])
	if !ok {
		return ContentType{}, false
	}
	mime, ok := ParseMimeType(mimeParts[0])
	if !ok {
		return ContentType{}, false
	}

	ct, err := New(media, mime, suffix, quality)
	if err != nil {
		return ContentType{}, false
	}

	return ct, true
}

// ParseMany parses a comma separated list such as an Accept header value.
// Tokens that don't parse are dropped. It fails only when none of them parse.
func ParseMany(value string) ([]ContentType, bool) {
	var out []ContentType
	for _, token := range strings.Split(value, listSeparator) {
		if ct, ok := Parse(token); ok {
			out = append(out, ct)
		}
	}

	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

// Includes reports whether other falls within the range of c.
// Quality values are not compared.
func (c ContentType) Includes(other ContentType) bool {
	if c.media != MediaAll && c.media != other.media {
		return false
	}
	if c.mime != MimeAll && c.mime != other.mime {
		return false
	}
	if c.suffix != SuffixNone && c.suffix != other.suffix {
		return false
	}
	return true
}

// Negotiate picks the offer the client prefers the most.
// An offer scores the highest quality among the accepted ranges including it,
// and is not acceptable when that score is zero. Ties go to the earlier offer.
func Negotiate(accepted []ContentType, offers ...ContentType) (ContentType, bool) {
	var (
		best      ContentType
		bestScore float64
		found     bool
	)

	for _, offer := range offers {
		score := 0.0
		for _, ct := range accepted {
			if ct.Includes(offer) && ct.quality > score {
				score = ct.quality
			}
		}

		if score > 0 && (!found || score > bestScore) {
			best, bestScore, found = offer, score, true
		}
	}

	return best, found
}

// String formats c as it appears in a header. The quality is omitted when it's the default.
func (c ContentType) String() string {
	b := new(strings.Builder)
	b.WriteString(string(c.media))
	b.WriteString(typeSeparator)
	b.WriteString(string(c.mime))
	if c.suffix != SuffixNone {
		b.WriteString(suffixSeparator)
		b.WriteString(string(c.suffix))
	}
	if c.quality != DefaultQuality {
		b.WriteString(qualitySeparator)
		b.WriteString(strconv.FormatFloat(c.quality, 'f', -1, 64))
	}
	return b.String()
}
