// Package plan turns a record and its directives into method descriptors.
//
// Resolution pipeline, per field:
//  1. Classify the field type into a category
//  2. For each method kind (get, set, mut_, clr), cascade the directives:
//     field tier, then record tier, then builtin defaults, one sub-option
//     at a time
//  3. Skip disabled kinds; resolve the method name
//  4. Synthesize the descriptor: receiver, parameters, return shape and body
//
// Fields are resolved concurrently; the plan always lists methods in field
// declaration order. Any error rejects the whole record.
package plan
