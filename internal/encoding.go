package internal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 reports a string node that cannot be serialized as JSON text
var ErrInvalidUTF8 = errors.New("string is not valid UTF-8")

// DecodeDocument parses text into the document representation: nil, bool,
// int64, float64, string, []any, map[string]any. Numbers without a fraction
// or exponent that fit in int64 decode as int64; everything else decodes as
// float64. Trailing non-whitespace after the first value is an error.
func DecodeDocument(text string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if err := dec.Decode(new(any)); err != io.EOF {
		return nil, errors.New("unexpected data after top-level value")
	}
	return normalizeNumbers(raw)
}

// normalizeNumbers rewrites json.Number nodes into int64 or float64. A
// literal whose magnitude exceeds float64 is a parse failure: substituting
// zero or infinity would corrupt valid input.
func normalizeNumbers(node any) (any, error) {
	switch n := node.(type) {
	case json.Number:
		s := n.String()
		if !strings.ContainsAny(s, ".eE") {
			if i, err := strconv.ParseInt(s, 10, 64); err == nil {
				return i, nil
			}
		}
		// Fraction, exponent, or out of int64 range
		f, err := n.Float64()
		if err != nil {
			return nil, fmt.Errorf("number %q does not fit float64: %w", s, err)
		}
		return f, nil
	case []any:
		for i, elem := range n {
			normalized, err := normalizeNumbers(elem)
			if err != nil {
				return nil, err
			}
			n[i] = normalized
		}
		return n, nil
	case map[string]any:
		for k, elem := range n {
			normalized, err := normalizeNumbers(elem)
			if err != nil {
				return nil, err
			}
			n[k] = normalized
		}
		return n, nil
	default:
		return node, nil
	}
}

// ValidateUTF8Strings walks the document and fails on the first string node
// that is not valid UTF-8. encoding/json would silently replace invalid
// bytes with U+FFFD, so serialization must be guarded by this check.
func ValidateUTF8Strings(node any) error {
	switch n := node.(type) {
	case string:
		if !utf8.ValidString(n) {
			return ErrInvalidUTF8
		}
		return nil
	case []any:
		for _, elem := range n {
			if err := ValidateUTF8Strings(elem); err != nil {
				return err
			}
		}
		return nil
	case map[string]any:
		for k, elem := range n {
			if !utf8.ValidString(k) {
				return ErrInvalidUTF8
			}
			if err := ValidateUTF8Strings(elem); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil
	}
}

// EncodeDocument serializes the document, rejecting invalid UTF-8 rather than
// corrupting it. Object keys serialize in sorted order, so output is stable
// for structurally equal documents.
func EncodeDocument(node any) (string, error) {
	if err := ValidateUTF8Strings(node); err != nil {
		return "", err
	}
	data, err := json.Marshal(node)
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}
	return string(data), nil
}

// Depth returns the nesting depth of the document; scalars have depth 1
func Depth(node any) int {
	switch n := node.(type) {
	case []any:
		max := 0
		for _, elem := range n {
			if d := Depth(elem); d > max {
				max = d
			}
		}
		return max + 1
	case map[string]any:
		max := 0
		for _, elem := range n {
			if d := Depth(elem); d > max {
				max = d
			}
		}
		return max + 1
	default:
		return 1
	}
}
