package jsonsafe

import (
	"reflect"
	"testing"
)

func TestGetValueAt(t *testing.T) {
	t.Run("existing key", func(t *testing.T) {
		doc := mustParse(t, `{"success": true}`)
		res := doc.GetValueAt("success")
		AssertGood(t, res)
		if !res.Value.IsBoolean() {
			t.Error("extracted value should be a boolean")
		}
		// key is gone from the source
		again := doc.GetValueAt("success")
		AssertBad(t, again)
	})

	t.Run("missing key", func(t *testing.T) {
		doc := mustParse(t, `{"success": true}`)
		res := doc.GetValueAt("failure")
		AssertBad(t, res)
		if !doc.IsObject() {
			t.Error("source should be unchanged after a failed lookup")
		}
	})

	t.Run("not an object", func(t *testing.T) {
		doc := NewValue()
		doc.SetValueInt64(0)
		res := doc.GetValueAt("success")
		AssertBad(t, res)
		if !doc.IsInt64() {
			t.Error("source should be unchanged after a failed lookup")
		}
	})
}

func TestGetValueArray(t *testing.T) {
	t.Run("valid array", func(t *testing.T) {
		doc := mustParse(t, `[1, 2, 3, 4]`)
		res := doc.GetValueArray()
		AssertGood(t, res)
		if len(res.Value) != 4 {
			t.Fatalf("extracted %d elements; want 4", len(res.Value))
		}
		for i, elem := range res.Value {
			if !elem.IsInt64() {
				t.Errorf("element %d is not an int64", i)
			}
		}
		if !doc.IsNull() {
			t.Error("source should be null after extraction")
		}
	})

	t.Run("non array", func(t *testing.T) {
		doc := mustParse(t, `{}`)
		res := doc.GetValueArray()
		AssertBad(t, res)
		if !doc.IsObject() {
			t.Error("source should be unchanged after a type mismatch")
		}
	})
}

func TestScalarExtraction(t *testing.T) {
	t.Run("boolean", func(t *testing.T) {
		doc := mustParse(t, `true`)
		res := doc.GetValueBoolean()
		AssertGood(t, res)
		if res.Value != true {
			t.Errorf("GetValueBoolean() = %v; want true", res.Value)
		}
		if !doc.IsNull() {
			t.Error("source should be null after extraction")
		}
	})

	t.Run("float64", func(t *testing.T) {
		doc := mustParse(t, `3.14`)
		res := doc.GetValueFloat64()
		AssertGood(t, res)
		if res.Value != 3.14 {
			t.Errorf("GetValueFloat64() = %v; want 3.14", res.Value)
		}
		if !doc.IsNull() {
			t.Error("source should be null after extraction")
		}
	})

	t.Run("int64", func(t *testing.T) {
		doc := mustParse(t, `314`)
		res := doc.GetValueInt64()
		AssertGood(t, res)
		if res.Value != 314 {
			t.Errorf("GetValueInt64() = %v; want 314", res.Value)
		}
		if !doc.IsNull() {
			t.Error("source should be null after extraction")
		}
	})

	t.Run("string", func(t *testing.T) {
		doc := mustParse(t, `"hello, world"`)
		res := doc.GetValueString()
		AssertGood(t, res)
		if res.Value != "hello, world" {
			t.Errorf("GetValueString() = %q; want %q", res.Value, "hello, world")
		}
		if !doc.IsNull() {
			t.Error("source should be null after extraction")
		}
	})
}

// TestTypeMismatchLeavesSourceUntouched verifies that a failed typed
// extraction reports a diagnostic and does not consume anything.
func TestTypeMismatchLeavesSourceUntouched(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		extract func(v *Value) (good bool, failure string)
	}{
		{"boolean on object", `{}`, func(v *Value) (bool, string) {
			r := v.GetValueBoolean()
			return r.Good, r.Failure
		}},
		{"float64 on object", `{}`, func(v *Value) (bool, string) {
			r := v.GetValueFloat64()
			return r.Good, r.Failure
		}},
		{"int64 on string", `"314"`, func(v *Value) (bool, string) {
			r := v.GetValueInt64()
			return r.Good, r.Failure
		}},
		{"int64 on float64", `3.14`, func(v *Value) (bool, string) {
			r := v.GetValueInt64()
			return r.Good, r.Failure
		}},
		{"string on int64", `314`, func(v *Value) (bool, string) {
			r := v.GetValueString()
			return r.Good, r.Failure
		}},
		{"array on object", `{}`, func(v *Value) (bool, string) {
			r := v.GetValueArray()
			return r.Good, r.Failure
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := mustParse(t, tt.text)
			before := v.data
			good, failure := tt.extract(v)
			if good {
				t.Fatal("extraction should have failed")
			}
			if failure == "" {
				t.Error("mismatch failure carries an empty diagnostic")
			}
			if !reflect.DeepEqual(before, v.data) {
				t.Errorf("source changed on failure: %#v -> %#v", before, v.data)
			}
		})
	}
}

func TestSetValueAt(t *testing.T) {
	t.Run("existing key is replaced", func(t *testing.T) {
		doc := mustParse(t, `{"success": true}`)
		v := mustParse(t, `false`)
		res := doc.SetValueAt("success", v)
		if !res.Good {
			t.Fatalf("SetValueAt failed: %s", res.Failure)
		}
		if !v.IsNull() {
			t.Error("inserted value should be consumed")
		}
	})

	t.Run("new key is created", func(t *testing.T) {
		doc := mustParse(t, `{"success": true}`)
		v := mustParse(t, `false`)
		res := doc.SetValueAt("failure", v)
		if !res.Good {
			t.Fatalf("SetValueAt failed: %s", res.Failure)
		}
	})

	t.Run("null receiver becomes an object", func(t *testing.T) {
		doc := NewValue()
		v := mustParse(t, `false`)
		res := doc.SetValueAt("flag", v)
		if !res.Good {
			t.Fatalf("SetValueAt failed: %s", res.Failure)
		}
		if !doc.IsObject() {
			t.Error("null receiver should have become an object")
		}
	})

	t.Run("non-object receiver fails", func(t *testing.T) {
		doc := mustParse(t, `0`)
		v := mustParse(t, `false`)
		res := doc.SetValueAt("success", v)
		if res.Good {
			t.Fatal("SetValueAt should fail on an int64 receiver")
		}
		if res.Failure == "" {
			t.Error("failure carries an empty diagnostic")
		}
		if !doc.IsInt64() {
			t.Error("receiver should be unchanged on failure")
		}
	})
}

// TestSetGetInverse checks that setting a key and getting it back returns
// an equal value and removes the key again.
func TestSetGetInverse(t *testing.T) {
	doc := mustParse(t, `{}`)

	in := NewValue()
	in.SetValueString("payload")
	if res := doc.SetValueAt("k", in); !res.Good {
		t.Fatalf("SetValueAt failed: %s", res.Failure)
	}

	out := doc.GetValueAt("k")
	AssertGood(t, out)
	got := out.Value.GetValueString()
	AssertGood(t, got)
	if got.Value != "payload" {
		t.Errorf("round-tripped %q; want %q", got.Value, "payload")
	}

	if res := doc.GetValueAt("k"); res.Good {
		t.Error("key should have been removed by the extraction")
	}
}

func TestSetValueReplacesPriorVariant(t *testing.T) {
	doc := mustParse(t, `{"deep": {"tree": [1, 2, 3]}}`)

	doc.SetValueInt64(7)
	if !doc.IsInt64() {
		t.Fatal("SetValueInt64 should replace the whole value")
	}

	doc.SetValueFloat64(2.5)
	if !doc.IsFloat64() {
		t.Fatal("SetValueFloat64 should replace the whole value")
	}

	doc.SetValueString("done")
	if !doc.IsString() {
		t.Fatal("SetValueString should replace the whole value")
	}

	doc.SetValueArray(nil)
	if !doc.IsArray() {
		t.Fatal("SetValueArray should replace the whole value")
	}
}
