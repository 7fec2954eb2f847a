package jsonsafe

import "fmt"

// GetValueAt removes and returns the value stored at key. The receiver must
// hold the object variant; after a successful return the key no longer
// exists in the receiver. On failure the receiver is left unchanged.
func (v *Value) GetValueAt(key string) Result[*Value] {
	obj, ok := v.data.(map[string]any)
	if !ok {
		return failValue(newKeyError("get_value_at", key,
			fmt.Sprintf("value is %s, not object", variantName(v.data)), ErrNotAnObject))
	}
	child, exists := obj[key]
	if !exists {
		return failValue(newKeyError("get_value_at", key, "key not found", ErrKeyNotFound))
	}
	delete(obj, key)
	return Ok(&Value{data: child})
}

// GetValueArray extracts the array variant as a slice of independently owned
// Values, leaving the receiver null. On a variant mismatch the receiver is
// left exactly as it was.
func (v *Value) GetValueArray() Result[[]*Value] {
	arr, ok := v.data.([]any)
	if !ok {
		return failErr[[]*Value](newTypeMismatchError("get_value_array", "array", variantName(v.data)))
	}
	out := make([]*Value, len(arr))
	for i, elem := range arr {
		out[i] = &Value{data: elem}
		arr[i] = nil
	}
	v.data = nil
	return Ok(out)
}

// GetValueBoolean extracts the boolean variant, leaving the receiver null
func (v *Value) GetValueBoolean() Result[bool] {
	b, ok := v.data.(bool)
	if !ok {
		return failErr[bool](newTypeMismatchError("get_value_boolean", "boolean", variantName(v.data)))
	}
	v.data = nil
	return Ok(b)
}

// GetValueFloat64 extracts the float64 variant, leaving the receiver null
func (v *Value) GetValueFloat64() Result[float64] {
	f, ok := v.data.(float64)
	if !ok {
		return failErr[float64](newTypeMismatchError("get_value_float64", "float64", variantName(v.data)))
	}
	v.data = nil
	return Ok(f)
}

// GetValueInt64 extracts the int64 variant, leaving the receiver null
func (v *Value) GetValueInt64() Result[int64] {
	i, ok := v.data.(int64)
	if !ok {
		return failErr[int64](newTypeMismatchError("get_value_int64", "int64", variantName(v.data)))
	}
	v.data = nil
	return Ok(i)
}

// GetValueString extracts the string variant, leaving the receiver null.
// The string comes back exactly as stored; policy-encoded strings are not
// decoded.
func (v *Value) GetValueString() Result[string] {
	s, ok := v.data.(string)
	if !ok {
		return failErr[string](newTypeMismatchError("get_value_string", "string", variantName(v.data)))
	}
	v.data = nil
	return Ok(s)
}
