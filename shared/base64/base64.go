package base64

import "strings"

const (
	uriPrefix     = "data:"
	encodingLabel = ";base64,"
)

// GetContentType extracts the MIME type from a data URI, returning an empty
// string when the input is not a well-formed data URI.
func GetContentType(file string) string {
	if !strings.HasPrefix(file, uriPrefix) {
		return ""
	}

	end := strings.Index(file, encodingLabel)
	if end < len(uriPrefix) {
		return ""
	}

	return file[len(uriPrefix):end]
}
