package jsonsafe

import (
	"strings"

	"github.com/cybergodev/jsonsafe/internal"
)

// Pointer builds a JSON Pointer expression from a sequence of reference
// tokens, escaping "/" and "~" per RFC 6901. With no tokens it returns the
// empty pointer, which addresses the document itself. Use it to address
// elements under keys that were not chosen by the caller:
//
//	jsonsafe.Pointer("report", measurement.ID) // id may contain "/" or "~"
func Pointer(tokens ...string) string {
	if len(tokens) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteByte('/')
		sb.WriteString(internal.EscapePointerToken(tok))
	}
	return sb.String()
}
