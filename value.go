package jsonsafe

import (
	"errors"

	"github.com/cybergodev/jsonsafe/internal"
)

// Value is a move-only JSON document node. It always holds exactly one of
// the seven variants (null, boolean, int64, float64, string, array, object)
// and exclusively owns its children. Ownership-transferring operations
// leave the source in the null variant; there is no separate "moved-from"
// state.
//
// A Value must not be copied by assignment; pass it by pointer and transfer
// contents with the accessors.
type Value struct {
	// data is the underlying document node: nil, bool, int64, float64,
	// string, []any, or map[string]any, recursively.
	data any
}

// NewValue creates a new null Value
func NewValue() *Value {
	return &Value{}
}

// take transfers the underlying node out of v, leaving v null
func (v *Value) take() any {
	if v == nil {
		return nil
	}
	data := v.data
	v.data = nil
	return data
}

// failValue returns a failed Result whose payload is a fresh null Value, so
// callers can keep using the payload without a nil check.
func failValue(err error) Result[*Value] {
	return Result[*Value]{Failure: err.Error(), Value: NewValue()}
}

// Parse parses text into a document using the default configuration. The
// failure diagnostic carries the underlying parser error; malformed input
// never panics.
func Parse(text string) Result[*Value] {
	return ParseWithConfig(text, nil)
}

// ParseWithConfig parses text with explicit limits. A nil config uses
// DefaultConfig.
func ParseWithConfig(text string, config *Config) Result[*Value] {
	cfg := config
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := ValidateConfig(cfg); err != nil {
		return failValue(err)
	}

	if int64(len(text)) > cfg.MaxDocumentSize {
		err := newSizeLimitError("parse", int64(len(text)), cfg.MaxDocumentSize)
		cfg.logError("parse", err)
		return failValue(err)
	}

	tree, err := internal.DecodeDocument(text)
	if err != nil {
		wrapped := newOperationError("parse", err.Error(), ErrParseFailure)
		cfg.logError("parse", wrapped)
		return failValue(wrapped)
	}

	if depth := internal.Depth(tree); depth > cfg.MaxNestingDepth {
		err := newDepthLimitError("parse", depth, cfg.MaxNestingDepth)
		cfg.logError("parse", err)
		return failValue(err)
	}

	return Ok(&Value{data: tree})
}

// Dump serializes the Value. It fails, rather than producing corrupted
// output, when the tree contains a string that is not valid UTF-8 and was
// never policy-encoded; that can only happen when a privileged caller
// injected raw bytes past the encoding policy.
func (v *Value) Dump() Result[string] {
	out, err := internal.EncodeDocument(v.data)
	if err != nil {
		sentinel := ErrSerializeFailure
		if errors.Is(err, internal.ErrInvalidUTF8) {
			sentinel = ErrInvalidUTF8
		}
		return failErr[string](newOperationError("dump", err.Error(), sentinel))
	}
	return Ok(out)
}

// IsNull reports whether the Value holds the null variant
func (v *Value) IsNull() bool {
	return v.data == nil
}

// IsBoolean reports whether the Value holds a boolean
func (v *Value) IsBoolean() bool {
	_, ok := v.data.(bool)
	return ok
}

// IsInt64 reports whether the Value holds an int64
func (v *Value) IsInt64() bool {
	_, ok := v.data.(int64)
	return ok
}

// IsFloat64 reports whether the Value holds a float64
func (v *Value) IsFloat64() bool {
	_, ok := v.data.(float64)
	return ok
}

// IsString reports whether the Value holds a string
func (v *Value) IsString() bool {
	_, ok := v.data.(string)
	return ok
}

// IsArray reports whether the Value holds an array
func (v *Value) IsArray() bool {
	_, ok := v.data.([]any)
	return ok
}

// IsObject reports whether the Value holds an object
func (v *Value) IsObject() bool {
	_, ok := v.data.(map[string]any)
	return ok
}

// variantName returns the variant of a document node for diagnostics
func variantName(data any) string {
	switch data.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case int64:
		return "int64"
	case float64:
		return "float64"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "unknown"
	}
}
