package jsonsafe

import "fmt"

// SetValueAt inserts or replaces value at key, consuming it. A null
// receiver is created as an object first; any other non-object variant
// cannot be indexed by key and fails without mutation.
func (v *Value) SetValueAt(key string, value *Value) VoidResult {
	switch obj := v.data.(type) {
	case map[string]any:
		obj[key] = value.take()
		return OkVoid()
	case nil:
		v.data = map[string]any{key: value.take()}
		return OkVoid()
	default:
		return FailVoid(newKeyError("set_value_at", key,
			fmt.Sprintf("value is %s, not object", variantName(v.data)), ErrNotAnObject).Error())
	}
}

// SetValueArray unconditionally replaces the Value with an array built from
// values, consuming every element.
func (v *Value) SetValueArray(values []*Value) {
	arr := make([]any, len(values))
	for i, elem := range values {
		arr[i] = elem.take()
	}
	v.data = arr
}

// SetValueFloat64 unconditionally replaces the Value with a float64
func (v *Value) SetValueFloat64(value float64) {
	v.data = value
}

// SetValueInt64 unconditionally replaces the Value with an int64
func (v *Value) SetValueInt64(value int64) {
	v.data = value
}

// SetValueString unconditionally replaces the Value with a string, applying
// the encoding policy: invalid UTF-8 is stored base64-encoded.
func (v *Value) SetValueString(value string) {
	v.data = EncodeIfNeeded(value)
}
