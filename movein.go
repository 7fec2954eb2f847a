package jsonsafe

import (
	"math"

	"github.com/cybergodev/jsonsafe/internal"
)

// MoveInResult is the closed outcome code of MoveIn
type MoveInResult int

const (
	MoveInSuccess MoveInResult = iota
	MoveInBadPointerSyntax
	MoveInCannotCreatePath
)

// String returns the string representation of a MoveInResult
func (r MoveInResult) String() string {
	switch r {
	case MoveInSuccess:
		return "success"
	case MoveInBadPointerSyntax:
		return "bad_pointer_syntax"
	case MoveInCannotCreatePath:
		return "cannot_create_path"
	default:
		return "unknown"
	}
}

// MoveIn resolves or creates pointer within doc and moves value into place,
// overwriting any existing element. Missing intermediate structure is
// created: object keys on demand, arrays for canonical index tokens (with
// null padding) and for the "-" append token. Indexing through a scalar
// fails with MoveInCannotCreatePath.
//
// string, []string, and map[string]string payloads pass every string leaf
// through the encoding policy before storage; a *Value payload is consumed
// and becomes null. Other payloads (bool, int64, float64, []any,
// map[string]any, nil) move in as-is; strings nested inside a raw []any or
// map[string]any tree bypass the policy, which is the privileged path that
// Dump later rejects when such a string is not valid UTF-8.
func MoveIn[T any](doc *any, pointer string, value T) MoveInResult {
	tokens, err := internal.CompilePointer(pointer)
	if err != nil {
		return MoveInBadPointerSyntax
	}
	if err := internal.SetWithCreate(doc, tokens, moveInPayload(any(value))); err != nil {
		return MoveInCannotCreatePath
	}
	return MoveInSuccess
}

// moveInPayload applies the per-type storage conversions before the generic
// move. The encoding policy applies exactly to the string-typed entry
// points; generic trees are stored untouched. Narrower Go numeric kinds
// normalize to the document's int64/float64 variants so every stored node
// stays inside the closed variant set. Any other payload type is stored
// as-is: that is a privileged bypass like raw trees, and such nodes are not
// classifiable by SwapValueAt or serializable by Dump.
func moveInPayload(value any) any {
	switch v := value.(type) {
	case string:
		return EncodeIfNeeded(v)
	case []string:
		arr := make([]any, len(v))
		for i, s := range v {
			arr[i] = EncodeIfNeeded(s)
		}
		return arr
	case map[string]string:
		obj := make(map[string]any, len(v))
		for k, s := range v {
			obj[k] = EncodeIfNeeded(s)
		}
		return obj
	case *Value:
		return v.take()
	case int:
		return int64(v)
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case uint:
		if uint64(v) > math.MaxInt64 {
			return float64(v)
		}
		return int64(v)
	case uint64:
		// Beyond int64 range falls back to float64, matching the parser's
		// treatment of oversized integer literals
		if v > math.MaxInt64 {
			return float64(v)
		}
		return int64(v)
	case uint8:
		return int64(v)
	case uint16:
		return int64(v)
	case uint32:
		return int64(v)
	case float32:
		return float64(v)
	default:
		return value
	}
}
