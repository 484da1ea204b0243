// Package store holds the records the accessor generator is exercised against.
package store

import (
	"time"
)

//go:generate go run accessor-generator/cmd/accessor-generator gen --pkg . --type Pet

// Species is the kind of animal a Pet is.
type Species int

const (
	SpeciesUnknown Species = iota
	SpeciesCat
	SpeciesDog
)

// Info holds free-form notes kept next to a pet.
type Info struct {
	Vet      string
	Allergen []string
}

// Pet is the reference record: every accessor kind and category appears once.
//
//property:get(public),set(private),mut_(disable),clr(crate,scope=option)
type Pet struct {
	id            [32]byte       `property:"get(name=identification),set(disable)"`
	name          string         `property:"set(disable)"`
	age           uint32         `property:"get(disable),set(crate,type=own)"`
	species       Species        `property:"get(type=copy),set(disable)"`
	died          bool           `property:"get(prefix=is_),set(disable)"`
	owner         string         `property:"get(type=clone),set(disable)"`
	familyMembers []string       `property:"skip"`
	info          Info           `property:"get(type=ref),set(disable)"`
	tags          []string       `property:"get(disable),set(public,type=replace),clr(scope=auto)"`
	note          *string        `property:"get(disable),mut_(public)"`
	price         *uint32        `property:"get(disable),set(type=replace,full_option),clr(disable)"`
	reserved      map[string]int `property:"get(disable),set(disable),clr(scope=all)"`
}

// Audit is embedded into records that track modification times.
type Audit struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Account is configured from accessors.yaml in the tests; its tags are
// merged under the file's field entries.
type Account struct {
	Audit

	email    string
	nickname *string `property:"set(own)"`
	roles    []string
	limits   map[string]int
	lastSeen *time.Time
	balance  int64
	secret   string `property:"skip"`
}

// Broken carries a directive the generator rejects.
type Broken struct {
	level int `property:"set(scope=all)"`
}

// Empty has no fields to generate accessors for.
type Empty struct{}
