// Package warehouse holds records whose fields reference types from other
// packages, so generated files need imports.
package warehouse

import (
	"slices"
	"time"

	"accessor-generator/store"
)

//go:generate go run accessor-generator/cmd/accessor-generator gen --pkg . --type Shipment --type Bin

// Address is a postal address. It is copied through its Clone method.
type Address struct {
	Street     string
	City       string
	PostalCode string
	Lines      []string
}

// Clone returns a deep copy of the address.
func (a Address) Clone() Address {
	a.Lines = slices.Clone(a.Lines)
	return a
}

// Shipment moves one animal between two addresses.
//
//property:get(public),set(crate),clr(private,scope=all)
type Shipment struct {
	id       uint64        `property:"get(name=tracking_id),set(disable),clr(disable)"`
	species  store.Species `property:"get(type=copy)"`
	origin   *store.Info
	window   time.Duration
	address  Address `property:"get(type=clone)"`
	stops    []string
	manifest map[string]store.Species `property:"get(type=clone),set(disable)"`
}

// Bin holds items of one kind waiting to be loaded.
//
//property:get(public),set(public),clr(public,scope=all)
type Bin[T any] struct {
	label string
	items []T
	top   T
	index map[string]T `property:"get(clone),set(disable)"`
}
