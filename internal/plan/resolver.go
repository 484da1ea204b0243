package plan

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"accessor-generator/internal/analyze"
	"accessor-generator/internal/diagnostic"
	"accessor-generator/internal/directive"
	"accessor-generator/internal/match"
)

// Diagnostic codes emitted by the resolver.
const (
	CodeEmbeddedField      = "embedded_field"
	CodeClrScopeIneligible = "clr_scope_ineligible"
	CodeFullOptionIgnored  = "full_option_ignored"
)

// ResolutionConfig holds configuration for the resolution process.
type ResolutionConfig struct {
	// Parallelism bounds the number of fields resolved concurrently.
	// Values below 1 resolve fields one at a time.
	Parallelism int
}

// DefaultConfig returns the default resolution configuration.
func DefaultConfig() ResolutionConfig {
	return ResolutionConfig{
		Parallelism: runtime.GOMAXPROCS(0),
	}
}

// Resolver is the driver: it resolves every field of a record and collects
// the method descriptors in declaration order.
type Resolver struct {
	config   ResolutionConfig
	builtin  directive.Block
	stringer *analyze.TypeStringer
}

// NewResolver creates a new Resolver using the builtin defaults as base tier.
func NewResolver(config ResolutionConfig) *Resolver {
	return &Resolver{
		config:   config,
		builtin:  directive.Builtin(),
		stringer: analyze.NewTypeStringer(),
	}
}

// fieldResult is the per-field outcome, written into a declaration-order slot.
type fieldResult struct {
	methods []MethodDescriptor
	diags   diagnostic.Diagnostics
	err     error
}

// Resolve produces the plan of one record. Any error aborts the whole
// record; when several fields fail, the error of the first one in
// declaration order is returned.
func (r *Resolver) Resolve(rec *Record) (*Plan, error) {
	if err := r.checkRecord(rec); err != nil {
		return nil, err
	}

	results := make([]fieldResult, len(rec.Fields))

	var g errgroup.Group
	g.SetLimit(max(r.config.Parallelism, 1))

	for i := range rec.Fields {
		g.Go(func() error {
			res := &results[i]
			res.methods, res.diags, res.err = r.resolveField(rec, &rec.Fields[i])

			return res.err
		})
	}

	// The first error in time is not necessarily the first in declaration order.
	_ = g.Wait()

	p := &Plan{
		Record:     rec,
		RecordName: rec.Name,
	}

	for _, res := range results {
		if res.err != nil {
			return nil, res.err
		}

		p.Methods = append(p.Methods, res.methods...)
		p.Diagnostics.Merge(res.diags)
	}

	if err := checkNames(rec, p.Methods); err != nil {
		return nil, err
	}

	return p, nil
}

func (r *Resolver) checkRecord(rec *Record) error {
	if rec == nil {
		return fmt.Errorf("%w: no record given", ErrUnclassifiableRecord)
	}

	if rec.Type != nil && rec.Type.Kind != analyze.TypeKindStruct {
		return &ConfigError{
			Record: rec.Name,
			Err:    fmt.Errorf("%w: %s is a %s, not a struct", ErrUnclassifiableRecord, rec.Type.ID, rec.Type.Kind),
		}
	}

	named := 0
	for _, f := range rec.Fields {
		if !f.Embedded {
			named++
		}
	}

	if named == 0 {
		return &ConfigError{
			Record: rec.Name,
			Err:    fmt.Errorf("%w: %s has no named fields", ErrUnclassifiableRecord, rec.Name),
		}
	}

	if err := directive.ValidateBlock(rec.Defaults); err != nil {
		return &ConfigError{Record: rec.Name, Err: err}
	}

	return nil
}

// resolveField runs classifier, cascade, naming and synthesis for one field.
func (r *Resolver) resolveField(rec *Record, f *Field) ([]MethodDescriptor, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	path := r.stringer.FieldPath(rec.Name, f.Name)

	if err := directive.ValidateField(f.Directives); err != nil {
		return nil, diags, &ConfigError{Record: rec.Name, Field: f.Name, Err: err}
	}

	if f.Embedded {
		if !f.Directives.Block.IsZero() {
			return nil, diags, &ConfigError{
				Record: rec.Name,
				Field:  f.Name,
				Err:    fmt.Errorf("%w: embedded fields take no accessor directives", ErrStructuralDirective),
			}
		}

		if !f.Directives.Skip {
			diags.AddWarning(CodeEmbeddedField, "embedded field is not an accessor target", rec.Name, path)
		}

		return nil, diags, nil
	}

	if f.Directives.Skip {
		return nil, diags, nil
	}

	fc := &fieldContext{
		record:   rec,
		field:    f,
		category: Classify(f.Type),
		stringer: r.stringer,
	}

	if full := f.Directives.Set.FullOption; full != nil && *full && !fc.category.IsOption() {
		return nil, diags, &ConfigError{
			Record: rec.Name,
			Field:  f.Name,
			Kind:   directive.KindSet.Keyword(),
			Err:    unsupported("full_option needs an optional field, %s is %s", fc.typeName(f.Type), fc.category),
		}
	}

	var methods []MethodDescriptor

	for _, kind := range directive.MethodKinds {
		rc, err := Resolve(kind, f.Directives, rec.Defaults, r.builtin)
		if err != nil {
			return nil, diags, &ConfigError{Record: rec.Name, Field: f.Name, Kind: kind.Keyword(), Err: err}
		}

		if !rc.Visibility.Enabled() {
			continue
		}

		desc, err := synthesize(fc, rc)
		if err != nil {
			return nil, diags, &ConfigError{Record: rec.Name, Field: f.Name, Kind: kind.Keyword(), Err: err}
		}

		if desc == nil {
			if !f.Directives.Clr.IsZero() {
				diags.AddInfo(CodeClrScopeIneligible,
					fmt.Sprintf("clr scope %s does not cover %s; no clear method", rc.Scope, fc.category), rec.Name, path)
			}

			continue
		}

		if kind == directive.KindSet && rc.FullOption && !fc.category.IsOption() {
			diags.AddInfo(CodeFullOptionIgnored,
				fmt.Sprintf("record-level full_option has no effect on %s", fc.category), rec.Name, path)
		}

		methods = append(methods, *desc)
	}

	return methods, diags, nil
}

// synthesize dispatches on the method kind.
func synthesize(fc *fieldContext, rc ResolvedConfig) (*MethodDescriptor, error) {
	switch rc.Kind {
	case directive.KindGet:
		return synthesizeGet(fc, rc)
	case directive.KindSet:
		return synthesizeSet(fc, rc)
	case directive.KindMut:
		return synthesizeMut(fc, rc)
	case directive.KindClr:
		return synthesizeClr(fc, rc)
	default:
		return nil, fmt.Errorf("%w: unknown method kind %d", ErrStructuralDirective, int(rc.Kind))
	}
}

// fieldContext is what the synthesizers know about a field.
type fieldContext struct {
	record   *Record
	field    *Field
	category Category
	stringer *analyze.TypeStringer
}

// descriptor returns a descriptor prefilled with the parts every kind shares.
func (fc *fieldContext) descriptor(rc ResolvedConfig) *MethodDescriptor {
	name := MethodName(rc, fc.field.Name)

	return &MethodDescriptor{
		Field:      fc.field.Name,
		FieldIndex: fc.field.Index,
		FieldType:  fc.field.Type,
		Category:   fc.category,
		Kind:       rc.Kind,
		Name:       name,
		GoName:     match.GoIdent(name, rc.Visibility == directive.Public),
		Visibility: rc.Visibility,
	}
}

func (fc *fieldContext) typeName(t *analyze.TypeInfo) string {
	return fc.stringer.TypeString(t)
}

// checkNames rejects two methods of one record with the same name. Clashes
// that only appear after Go identifier casing are caught by the renderer.
func checkNames(rec *Record, methods []MethodDescriptor) error {
	seen := make(map[string]*MethodDescriptor, len(methods))

	for i := range methods {
		m := &methods[i]

		if prev, ok := seen[m.Name]; ok {
			return &ConfigError{
				Record: rec.Name,
				Field:  m.Field,
				Kind:   m.Kind.Keyword(),
				Err:    fmt.Errorf("%w: method %s already generated for %s %s", ErrNameCollision, m.Name, prev.Field, prev.Kind),
			}
		}

		seen[m.Name] = m
	}

	return nil
}
