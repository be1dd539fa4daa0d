// Package imagemeta describes stored sign images: their sniffed content type,
// size and the authorship tags embedded in EXIF metadata.
package imagemeta

import (
	"net/http"
	"strings"

	exif "github.com/dsoprea/go-exif/v3"
)

// Meta is what Inspect learns about an image payload.
type Meta struct {
	ContentType string
	Size        int

	// EXIF tags. Empty when the image carries no EXIF block or the tag is
	// absent.
	Artist    string
	Copyright string
	Software  string
	DateTime  string
}

// HasEXIF reports whether any EXIF tag was found.
func (m Meta) HasEXIF() bool {
	return m.Artist != "" || m.Copyright != "" || m.Software != "" || m.DateTime != ""
}

// Attrs returns the non-empty fields as slog key-value pairs.
func (m Meta) Attrs() []any {
	attrs := []any{"content_type", m.ContentType, "size", m.Size}
	for _, kv := range [][2]string{
		{"artist", m.Artist},
		{"copyright", m.Copyright},
		{"software", m.Software},
		{"datetime", m.DateTime},
	} {
		if kv[1] != "" {
			attrs = append(attrs, kv[0], kv[1])
		}
	}
	return attrs
}

// Inspect examines image bytes. It never fails: unreadable EXIF simply
// leaves those fields empty.
func Inspect(data []byte) Meta {
	meta := Meta{
		ContentType: http.DetectContentType(data),
		Size:        len(data),
	}

	rawExif, err := exif.SearchAndExtractExif(data)
	if err != nil || rawExif == nil {
		return meta
	}
	entries, _, err := exif.GetFlatExifData(rawExif, nil)
	if err != nil {
		return meta
	}

	for _, entry := range entries {
		value := strings.TrimSpace(strings.TrimRight(entry.Formatted, "\x00"))
		switch entry.TagName {
		case "Artist", "XPAuthor":
			if meta.Artist == "" {
				meta.Artist = value
			}
		case "Copyright":
			meta.Copyright = value
		case "Software", "ProcessingSoftware":
			if meta.Software == "" {
				meta.Software = value
			}
		case "DateTime", "DateTimeOriginal":
			if meta.DateTime == "" {
				meta.DateTime = value
			}
		}
	}

	return meta
}
