package internal

import "errors"

// Navigation errors returned by pointer resolution
var (
	ErrNotFound     = errors.New("pointer does not resolve")
	ErrCannotCreate = errors.New("cannot create intermediate path")
)

// SwapOut removes the element addressed by tokens from the document and
// returns it. An object member is erased; an array element is swapped with
// null so that sibling indices stay stable; the empty token sequence swaps
// out the document itself. The document is left unchanged when resolution
// fails.
func SwapOut(doc *any, tokens []string) (any, error) {
	if len(tokens) == 0 {
		scratch := *doc
		*doc = nil
		return scratch, nil
	}

	parent, err := Resolve(*doc, tokens[:len(tokens)-1])
	if err != nil {
		return nil, err
	}

	last := tokens[len(tokens)-1]
	switch node := parent.(type) {
	case map[string]any:
		child, ok := node[last]
		if !ok {
			return nil, ErrNotFound
		}
		delete(node, last)
		return child, nil
	case []any:
		idx, ok := ParseArrayIndex(last)
		if !ok || idx >= len(node) {
			return nil, ErrNotFound
		}
		scratch := node[idx]
		node[idx] = nil
		return scratch, nil
	default:
		return nil, ErrNotFound
	}
}

// SetWithCreate moves value into the location addressed by tokens, creating
// intermediate structure as needed: a missing or null step becomes an array
// when the token is a canonical index or "-", an object otherwise. Arrays
// auto-extend with nulls up to the addressed index; "-" appends. Indexing
// through a scalar, or a non-index token against an array, fails with
// ErrCannotCreate.
func SetWithCreate(node *any, tokens []string, value any) error {
	if len(tokens) == 0 {
		*node = value
		return nil
	}
	tok := tokens[0]
	rest := tokens[1:]

	switch cur := (*node).(type) {
	case nil:
		if idx, ok := ParseArrayIndex(tok); ok {
			arr := make([]any, idx+1)
			var slot any
			if err := SetWithCreate(&slot, rest, value); err != nil {
				return err
			}
			arr[idx] = slot
			*node = arr
			return nil
		}
		if tok == "-" {
			var slot any
			if err := SetWithCreate(&slot, rest, value); err != nil {
				return err
			}
			*node = []any{slot}
			return nil
		}
		var slot any
		if err := SetWithCreate(&slot, rest, value); err != nil {
			return err
		}
		*node = map[string]any{tok: slot}
		return nil

	case map[string]any:
		slot := cur[tok]
		if err := SetWithCreate(&slot, rest, value); err != nil {
			return err
		}
		cur[tok] = slot
		return nil

	case []any:
		if tok == "-" {
			var slot any
			if err := SetWithCreate(&slot, rest, value); err != nil {
				return err
			}
			*node = append(cur, slot)
			return nil
		}
		idx, ok := ParseArrayIndex(tok)
		if !ok {
			return ErrCannotCreate
		}
		for len(cur) <= idx {
			cur = append(cur, nil)
		}
		slot := cur[idx]
		if err := SetWithCreate(&slot, rest, value); err != nil {
			return err
		}
		cur[idx] = slot
		*node = cur
		return nil

	default:
		return ErrCannotCreate
	}
}

// Resolve returns the element addressed by tokens without mutating the
// document.
func Resolve(doc any, tokens []string) (any, error) {
	cur := doc
	for _, tok := range tokens {
		switch node := cur.(type) {
		case map[string]any:
			child, ok := node[tok]
			if !ok {
				return nil, ErrNotFound
			}
			cur = child
		case []any:
			idx, ok := ParseArrayIndex(tok)
			if !ok || idx >= len(node) {
				return nil, ErrNotFound
			}
			cur = node[idx]
		default:
			return nil, ErrNotFound
		}
	}
	return cur, nil
}
