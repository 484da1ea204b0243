// Package common holds small helpers shared across the generator packages.
package common

import (
	"path"
	"strings"
)

// UnknownStr is the String() fallback for out-of-range enum values.
const UnknownStr = "unknown"

// PkgAlias guesses the package name of an import path from its last element.
// Major version suffixes and "go-"/".vN" decorations are skipped:
//
//	"time"                        -> time
//	"github.com/hashicorp/lru/v2" -> lru
//	"gopkg.in/yaml.v3"            -> yaml
//	"github.com/goccy/go-json"    -> json
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	base := path.Base(pkgPath)
	if isMajorVersion(base) {
		if dir := path.Dir(pkgPath); dir != "." {
			base = path.Base(dir)
		}
	}

	if i := strings.Index(base, ".v"); i > 0 && isMajorVersion(base[i+1:]) {
		base = base[:i]
	}

	base = strings.TrimPrefix(base, "go-")

	return strings.Map(func(r rune) rune {
		if r == '-' || r == '.' {
			return '_'
		}

		return r
	}, base)
}

// isMajorVersion matches "v2", "v10" and so on.
func isMajorVersion(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}

	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
