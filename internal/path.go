package internal

import (
	"errors"
	"strconv"
	"strings"
)

// ErrPointerSyntax reports a malformed JSON Pointer expression
var ErrPointerSyntax = errors.New("invalid pointer syntax")

// EscapePointerToken escapes special characters for a JSON Pointer token.
// Uses a single-pass algorithm to avoid multiple allocations.
func EscapePointerToken(s string) string {
	// Fast path: check if escaping is needed
	needsEscape := false
	for i := 0; i < len(s); i++ {
		if s[i] == '~' || s[i] == '/' {
			needsEscape = true
			break
		}
	}
	if !needsEscape {
		return s // No allocation for simple tokens
	}

	var sb strings.Builder
	sb.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '~':
			sb.WriteString("~0")
		case '/':
			sb.WriteString("~1")
		default:
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

// unescapePointerToken unescapes one reference token, rejecting dangling or
// unknown ~ escapes per RFC 6901.
func unescapePointerToken(s string) (string, error) {
	// Fast path: no escapes at all
	if !strings.ContainsRune(s, '~') {
		return s, nil
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '~' {
			sb.WriteByte(s[i])
			continue
		}
		if i+1 >= len(s) {
			return "", ErrPointerSyntax
		}
		switch s[i+1] {
		case '0':
			sb.WriteByte('~')
		case '1':
			sb.WriteByte('/')
		default:
			return "", ErrPointerSyntax
		}
		i++
	}
	return sb.String(), nil
}

// CompilePointer compiles a JSON Pointer expression into its sequence of
// reference tokens. The empty pointer compiles to an empty sequence and
// addresses the document itself. A non-empty pointer must begin with '/'.
func CompilePointer(pointer string) ([]string, error) {
	if pointer == "" {
		return nil, nil
	}
	if pointer[0] != '/' {
		return nil, ErrPointerSyntax
	}

	raw := strings.Split(pointer[1:], "/")
	tokens := make([]string, len(raw))
	for i, tok := range raw {
		unescaped, err := unescapePointerToken(tok)
		if err != nil {
			return nil, err
		}
		tokens[i] = unescaped
	}
	return tokens, nil
}

// ParseArrayIndex interprets a reference token as a canonical array index.
// Leading zeros and signs are rejected per RFC 6901, so "-" and "01" are
// not indices.
func ParseArrayIndex(token string) (int, bool) {
	if token == "" || (len(token) > 1 && token[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, false
	}
	return n, true
}
