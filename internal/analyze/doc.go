// Package analyze provides package loading and type graph extraction.
//
// It uses golang.org/x/tools/go/packages with AST and go/types
// to build a canonical in-memory model of records and their fields.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind (struct/basic/alias/pointer/slice/array/map/external)
//     and keeps the raw doc comment lines of type declarations
//   - FieldInfo: describes field name, type, tags, position and embedding
//
// Loaded package sets are kept in a small LRU cache so several records of
// one package are analyzed from a single go list invocation.
package analyze
