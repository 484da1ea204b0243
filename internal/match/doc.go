// Package match holds identifier helpers shared by the planner and the
// renderer.
//
// Key functions:
//   - TokenizeIdent / GoIdent: split snake or camel case names and re-case
//     them as exported or unexported Go identifiers
//   - Levenshtein: computes edit distance between strings
//   - Suggest: picks a "did you mean" candidate for unknown record or field names
package match
