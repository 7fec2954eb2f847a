package jsonsafe

import (
	"sort"

	"github.com/cybergodev/jsonsafe/internal"
)

// SwapResult is the closed outcome code of SwapValueAt
type SwapResult int

const (
	SwapSuccess SwapResult = iota
	SwapBadPointerSyntax
	SwapNotFound
	SwapTypeMismatch
)

// String returns the string representation of a SwapResult
func (r SwapResult) String() string {
	switch r {
	case SwapSuccess:
		return "success"
	case SwapBadPointerSyntax:
		return "bad_pointer_syntax"
	case SwapNotFound:
		return "not_found"
	case SwapTypeMismatch:
		return "type_mismatch"
	default:
		return "unknown"
	}
}

// SwapValueAt resolves pointer against doc, removes the addressed element,
// and swaps its typed payload into out. The empty pointer addresses the
// document itself. Supported payload types: any, bool, int64, float64,
// string, []any, map[string]any, []string, map[string]string.
//
// The element is removed before the type check: on SwapTypeMismatch the
// scratch value is discarded and the document no longer contains it. Only
// SwapBadPointerSyntax and SwapNotFound leave the document untouched.
func SwapValueAt[T any](doc *any, pointer string, out *T) SwapResult {
	tokens, err := internal.CompilePointer(pointer)
	if err != nil {
		return SwapBadPointerSyntax
	}
	scratch, err := internal.SwapOut(doc, tokens)
	if err != nil {
		return SwapNotFound
	}
	return swapPayload(scratch, out)
}

// swapPayload reinterprets a swapped-out node as the requested payload type.
// The slice-of-string and map-of-string cases compose the single-element
// operation recursively with the empty pointer, failing with the first
// element's result.
func swapPayload[T any](scratch any, out *T) SwapResult {
	switch dst := any(out).(type) {
	case *any:
		*dst = scratch
		return SwapSuccess

	case *bool:
		b, ok := scratch.(bool)
		if !ok {
			return SwapTypeMismatch
		}
		*dst = b
		return SwapSuccess

	case *int64:
		i, ok := scratch.(int64)
		if !ok {
			return SwapTypeMismatch
		}
		*dst = i
		return SwapSuccess

	case *float64:
		f, ok := scratch.(float64)
		if !ok {
			return SwapTypeMismatch
		}
		*dst = f
		return SwapSuccess

	case *string:
		s, ok := scratch.(string)
		if !ok {
			return SwapTypeMismatch
		}
		*dst = s
		return SwapSuccess

	case *[]any:
		arr, ok := scratch.([]any)
		if !ok {
			return SwapTypeMismatch
		}
		*dst = arr
		return SwapSuccess

	case *map[string]any:
		obj, ok := scratch.(map[string]any)
		if !ok {
			return SwapTypeMismatch
		}
		*dst = obj
		return SwapSuccess

	case *[]string:
		arr, ok := scratch.([]any)
		if !ok {
			return SwapTypeMismatch
		}
		strs := make([]string, len(arr))
		for i := range arr {
			var s string
			if r := SwapValueAt(&arr[i], "", &s); r != SwapSuccess {
				return r
			}
			strs[i] = s
		}
		*dst = strs
		return SwapSuccess

	case *map[string]string:
		obj, ok := scratch.(map[string]any)
		if !ok {
			return SwapTypeMismatch
		}
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		strs := make(map[string]string, len(obj))
		for _, k := range keys {
			elem := obj[k]
			var s string
			if r := SwapValueAt(&elem, "", &s); r != SwapSuccess {
				return r
			}
			strs[k] = s
		}
		*dst = strs
		return SwapSuccess

	default:
		return SwapTypeMismatch
	}
}
