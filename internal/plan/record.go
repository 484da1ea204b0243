package plan

import (
	"fmt"
	"go/types"
	"slices"
	"strings"

	"accessor-generator/internal/analyze"
	"accessor-generator/internal/directive"
	"accessor-generator/internal/match"
)

// Record is the driver input: an ordered list of fields plus the record-level
// directive block.
type Record struct {
	// Name is the record's type name.
	Name string
	// Type is the analyzed record type. Optional for hand-built records.
	Type *analyze.TypeInfo
	// Package is the package declaring the record. Optional for hand-built records.
	Package *analyze.PackageInfo
	// TypeParams names the type parameters of a generic record, in order.
	TypeParams []string
	// Defaults is the record tier of the cascade.
	Defaults directive.Block
	// Fields in declaration order.
	Fields []Field
}

// Field is one record field with its merged directives.
type Field struct {
	Name       string
	Index      int
	Type       *analyze.TypeInfo
	Embedded   bool
	Directives directive.FieldDirectives
}

// TypeExpr is the record type as written in a method receiver: the name,
// followed by the type parameters of a generic record (Box[K, V]).
func (r *Record) TypeExpr() string {
	if len(r.TypeParams) == 0 {
		return r.Name
	}

	return r.Name + "[" + strings.Join(r.TypeParams, ", ") + "]"
}

func typeParams(t types.Type) []string {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok || named.TypeParams().Len() == 0 {
		return nil
	}

	list := named.TypeParams()
	names := make([]string, list.Len())

	for i := range names {
		names[i] = list.At(i).Obj().Name()
	}

	return names
}

// BuildRecord collects the directives of an analyzed struct: the doc comment
// and struct tags first, then the optional file configuration, which wins
// sub-option by sub-option. Source names the file in error messages.
func BuildRecord(
	t *analyze.TypeInfo,
	pkg *analyze.PackageInfo,
	cfg *directive.RecordConfig,
	source string,
) (*Record, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: no type given", ErrUnclassifiableRecord)
	}

	if t.Kind != analyze.TypeKindStruct {
		return nil, &ConfigError{
			Record: t.ID.Name,
			Err:    fmt.Errorf("%w: %s is a %s, not a struct", ErrUnclassifiableRecord, t.ID, t.Kind),
		}
	}

	rec := &Record{
		Name:       t.ID.Name,
		Type:       t,
		Package:    pkg,
		TypeParams: typeParams(t.GoType),
	}

	defaults, _, err := directive.ParseRecordDoc(t.Doc)
	if err != nil {
		return nil, &ConfigError{Record: rec.Name, Err: err}
	}

	if cfg != nil {
		fileDefaults, err := cfg.DefaultsBlock(source)
		if err != nil {
			return nil, &ConfigError{Record: rec.Name, Err: err}
		}

		defaults = defaults.Merge(fileDefaults)
	}

	rec.Defaults = defaults

	names := make([]string, 0, len(t.Fields))

	for _, fi := range t.Fields {
		names = append(names, fi.Name)

		fd, _, err := directive.ParseTag(fi.Tag)
		if err != nil {
			return nil, &ConfigError{Record: rec.Name, Field: fi.Name, Err: err}
		}

		if cfg != nil {
			fileFD, ok, err := cfg.Field(source, fi.Name)
			if err != nil {
				return nil, &ConfigError{Record: rec.Name, Field: fi.Name, Err: err}
			}

			if ok {
				fd = fd.Merge(fileFD)
			}
		}

		rec.Fields = append(rec.Fields, Field{
			Name:       fi.Name,
			Index:      fi.Index,
			Type:       fi.Type,
			Embedded:   fi.Embedded,
			Directives: fd,
		})
	}

	if cfg != nil {
		for _, name := range cfg.FieldNames() {
			if slices.Contains(names, name) {
				continue
			}

			msg := fmt.Sprintf("%s: configures unknown field %q", source, name)
			if s, ok := match.Suggest(name, names); ok {
				msg += fmt.Sprintf(" (did you mean %q?)", s)
			}

			return nil, &ConfigError{Record: rec.Name, Err: fmt.Errorf("%w: %s", ErrStructuralDirective, msg)}
		}
	}

	return rec, nil
}
