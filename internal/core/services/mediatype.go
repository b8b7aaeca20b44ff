package services

import (
	"mime"
	"strings"
)

// mediaType reduces a declared content type to its lower-case media type,
// dropping parameters such as charset. Unparseable values are trimmed and
// lower-cased as-is.
func mediaType(declared string) string {
	mt, _, err := mime.ParseMediaType(declared)
	if err != nil {
		if i := strings.IndexByte(declared, ';'); i >= 0 {
			declared = declared[:i]
		}
		return strings.ToLower(strings.TrimSpace(declared))
	}
	return mt
}
