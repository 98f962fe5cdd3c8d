// Package resolve binds expected schema fields to values found in document
// text.
//
// Resolution pipeline, per field and independent of every other field:
//  1. Extract candidate (label, value) pairs once per line set
//  2. Score the field against every candidate label, keep the first best
//  3. Accept the best candidate at or above match.AcceptThreshold
//  4. Otherwise scan raw lines for "<field> [sep] value" anywhere on a line
//  5. Otherwise take the line below a line that is exactly the field name
//  6. Otherwise report NotFound
//
// Fields never compete for values: two fields may bind to the same value.
package resolve
