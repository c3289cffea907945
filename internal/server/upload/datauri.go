// Package upload decodes embedded images and stores them on an
// S3-compatible asset host.
package upload

import (
	"encoding/base64"
	"strings"
)

// DecodeDataURI parses "data:<mime>;base64,<payload>". ok is false for any
// other shape, including a MIME type with parameters, an empty payload, or
// a payload that is not valid base64.
func DecodeDataURI(s string) (data []byte, contentType string, ok bool) {
	rest, found := strings.CutPrefix(strings.TrimSpace(s), "data:")
	if !found {
		return nil, "", false
	}

	meta, payload, found := strings.Cut(rest, ",")
	if !found {
		return nil, "", false
	}

	contentType, found = strings.CutSuffix(meta, ";base64")
	if !found || contentType == "" || strings.Contains(contentType, ";") {
		return nil, "", false
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(payload)
	}
	if err != nil || len(data) == 0 {
		return nil, "", false
	}

	return data, contentType, true
}
