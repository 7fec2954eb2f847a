package jsonsafe

import (
	"fmt"
	"reflect"
	"testing"
)

// TestHelper provides assertion utilities for tests
type TestHelper struct {
	t *testing.T
}

// NewTestHelper creates a new test helper
func NewTestHelper(t *testing.T) *TestHelper {
	return &TestHelper{t: t}
}

// AssertEqual checks if two values are equal
func (h *TestHelper) AssertEqual(expected, actual any, msgAndArgs ...any) {
	h.t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		msg := "Values are not equal"
		if len(msgAndArgs) > 0 {
			msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
		}
		h.t.Errorf("%s\nExpected: %v (%T)\nActual: %v (%T)", msg, expected, expected, actual, actual)
	}
}

// AssertTrue checks if a condition holds
func (h *TestHelper) AssertTrue(condition bool, msgAndArgs ...any) {
	h.t.Helper()
	if !condition {
		msg := "Condition is not true"
		if len(msgAndArgs) > 0 {
			msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
		}
		h.t.Error(msg)
	}
}

// AssertFalse checks if a condition does not hold
func (h *TestHelper) AssertFalse(condition bool, msgAndArgs ...any) {
	h.t.Helper()
	if condition {
		msg := "Condition is not false"
		if len(msgAndArgs) > 0 {
			msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
		}
		h.t.Error(msg)
	}
}

// AssertGood checks that a Result succeeded with an empty diagnostic
func AssertGood[T any](t *testing.T, r Result[T]) {
	t.Helper()
	if !r.Good {
		t.Fatalf("Result failed: %s", r.Failure)
	}
	if r.Failure != "" {
		t.Errorf("Successful result carries failure %q", r.Failure)
	}
}

// AssertBad checks that a Result failed with a non-empty diagnostic
func AssertBad[T any](t *testing.T, r Result[T]) {
	t.Helper()
	if r.Good {
		t.Fatalf("Result unexpectedly succeeded with value %v", r.Value)
	}
	if r.Failure == "" {
		t.Error("Failed result carries an empty diagnostic")
	}
}

// mustParse parses text and returns the wrapped Value, failing the test on
// a parse error
func mustParse(t *testing.T, text string) *Value {
	t.Helper()
	res := Parse(text)
	if !res.Good {
		t.Fatalf("Parse(%q) failed: %s", text, res.Failure)
	}
	return res.Value
}

// mustParseRaw parses text and returns the raw document representation used
// by the path-addressed operations
func mustParseRaw(t *testing.T, text string) any {
	t.Helper()
	return mustParse(t, text).take()
}
