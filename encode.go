package jsonsafe

import (
	"encoding/base64"
	"unicode/utf8"
)

// EncodeIfNeeded returns s unchanged when it is valid UTF-8 text, and its
// base64 encoding otherwise. JSON can only represent valid UTF-8 as string
// content, so arbitrary binary payloads pass through this policy on every
// store (SetValueString, MoveIn, and the string-slice/string-map
// specializations).
//
// The policy is not symmetric: nothing decodes on read. A caller that needs
// the original bytes back must track, out of band, which fields were
// encoded.
func EncodeIfNeeded(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return base64.StdEncoding.EncodeToString([]byte(s))
}
