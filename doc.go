// Package jsonsafe provides a safety-oriented facade over a JSON value
// model, designed for foreign-function and API boundaries where documents
// are built, inspected, and torn down without accidental copies, type
// confusion, or panics crossing the boundary.
//
// The package is built around two access patterns:
//
//   - Direct, field-level access on a single Value: the typed
//     GetValue*/SetValue* accessors and the GetValueAt/SetValueAt object
//     operations. Reads are destructive: a successful extraction leaves
//     the source in the Null variant, so a Value always has exactly one
//     owner.
//
//   - Path-addressed access into an arbitrary document tree: SwapValueAt
//     swaps a typed payload out by JSON Pointer, MoveIn moves a typed
//     payload in, creating intermediate structure as needed.
//
// Every fallible operation returns a Result envelope or a closed outcome
// code; nothing panics on malformed input, missing keys, or type
// mismatches.
//
// # Basic Usage
//
//	res := jsonsafe.Parse(`{"user":{"name":"John"}}`)
//	if !res.Good {
//		// res.Failure carries the parser diagnostic
//	}
//	doc := res.Value
//
//	user := doc.GetValueAt("user") // removes "user" from doc
//	name := user.Value.GetValueAt("name")
//	s := name.Value.GetValueString() // user's name; name.Value is now null
//
// Path-addressed operations work on the raw document representation:
//
//	var doc any
//	jsonsafe.MoveIn(&doc, "/a/0", "hello") // {"a":["hello"]}
//
//	var n int64
//	jsonsafe.SwapValueAt(&doc2, "/n", &n) // removes /n, n holds the value
//
// # String Encoding Policy
//
// The underlying document format can only represent valid UTF-8 text.
// Every string stored through SetValueString, MoveIn, or the
// string-slice/string-map specializations passes through EncodeIfNeeded:
// valid UTF-8 is stored verbatim, anything else is stored base64-encoded.
// There is no decode-on-read; callers that need the original bytes back
// must track which fields were encoded. This asymmetry is a documented
// contract, not an oversight.
//
// # Ownership
//
// A Value is move-only at the API level. Extraction consumes the source,
// insertion consumes the inserted child. There is no "moved-from" state
// distinct from Null: after any ownership transfer the source is simply
// null again and remains fully usable.
package jsonsafe
