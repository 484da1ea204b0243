package gen

import (
	"go/types"
	"path"
	"slices"
	"strconv"
	"strings"

	"accessor-generator/internal/analyze"
	"accessor-generator/internal/common"
)

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string

	ref string
}

// importSet collects the imports of one generated file and hands out the
// package qualifiers used in type strings.
type importSet struct {
	// contextPkgPath is the package the file is generated into.
	contextPkgPath string
	byPath         map[string]importSpec
	byName         map[string]string
}

func newImportSet(contextPkgPath string) *importSet {
	return &importSet{
		contextPkgPath: contextPkgPath,
		byPath:         make(map[string]importSpec),
		byName:         make(map[string]string),
	}
}

// add registers pkgPath and returns the name it is referred to by. A second
// package with an already used name gets a numbered alias.
func (s *importSet) add(pkgPath, name string) string {
	if pkgPath == "" || pkgPath == s.contextPkgPath {
		return ""
	}

	if spec, ok := s.byPath[pkgPath]; ok {
		return spec.ref
	}

	guessed := name == ""
	if guessed {
		name = common.PkgAlias(pkgPath)
	}

	ref := name

	if _, taken := s.byName[name]; taken {
		for i := 2; ; i++ {
			ref = name + strconv.Itoa(i)
			if _, taken := s.byName[ref]; !taken {
				break
			}
		}
	}

	spec := importSpec{Path: pkgPath, ref: ref}
	// A guessed name only holds if it matches the last path element.
	if ref != name || (guessed && ref != path.Base(pkgPath)) {
		spec.Alias = ref
	}

	s.byName[ref] = pkgPath
	s.byPath[pkgPath] = spec

	return ref
}

// qualifier implements types.Qualifier on top of the set.
func (s *importSet) qualifier(pkg *types.Package) string {
	return s.add(pkg.Path(), pkg.Name())
}

// typeString renders t for use in the generated file.
func (s *importSet) typeString(t *analyze.TypeInfo) string {
	if t == nil {
		return "any"
	}

	if t.GoType != nil {
		return types.TypeString(t.GoType, s.qualifier)
	}

	// Hand-built type infos without a go/types counterpart.
	if t.IsNamed() && t.Kind != analyze.TypeKindBasic {
		if ref := s.add(t.ID.PkgPath, ""); ref != "" {
			return ref + "." + t.ID.Name
		}

		return t.ID.Name
	}

	return analyze.NewTypeStringer().TypeString(t)
}

// specs returns the collected imports sorted by path.
func (s *importSet) specs() []importSpec {
	out := make([]importSpec, 0, len(s.byPath))
	for _, spec := range s.byPath {
		out = append(out, spec)
	}

	slices.SortFunc(out, func(a, b importSpec) int {
		return strings.Compare(a.Path, b.Path)
	})

	return out
}
