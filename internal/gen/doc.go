// Package gen renders method descriptors into Go source.
//
// Generation uses text/template, then goimports (or go/format) for
// deterministic, readable output. One file is written per record, next to
// the record's declaration:
//
//	pet_accessors.go
//
// Method names are cased per visibility: public methods are exported,
// private and crate methods are not.
package gen
