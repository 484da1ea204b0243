// Package diagnostic provides structured, non-fatal findings for the
// accessor generator.
//
// Fatal problems are returned as errors. Diagnostics carry what a user may
// still want to know about a successful run:
//   - Fields that were left alone (embedded fields)
//   - Directives that had no effect (clr scope, record-level full_option)
//   - Renderer notes
package diagnostic
