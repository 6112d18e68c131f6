package sources

import (
	"golang.org/x/text/encoding/unicode"
)

// decodeUTF8 decodes b as UTF-8, replacing invalid sequences with U+FFFD
// and dropping a leading byte order mark.
func decodeUTF8(b []byte) string {
	out, err := unicode.UTF8BOM.NewDecoder().Bytes(b)
	if err != nil {
		// The UTF-8 decoder replaces rather than fails; keep the raw text if it ever does.
		return string(b)
	}
	return string(out)
}
