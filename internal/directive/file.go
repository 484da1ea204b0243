package directive

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"

	"accessor-generator/internal/match"
)

// File is the optional YAML directive file.
//
//	version: "1"
//	records:
//	  - type: Account
//	    defaults:
//	      get: public
//	      clr: {visibility: crate, scope: all}
//	    fields:
//	      email: {set: "own,prefix=with_"}
//	      secret: {skip: true}
type File struct {
	Version string         `yaml:"version"`
	Records []RecordConfig `yaml:"records"`
}

// RecordConfig configures one record.
type RecordConfig struct {
	Type     string                 `yaml:"type"`
	Defaults BlockConfig            `yaml:"defaults,omitempty"`
	Fields   map[string]FieldConfig `yaml:"fields,omitempty"`
}

// BlockConfig is the YAML form of a Block.
type BlockConfig struct {
	Get *KindSpec `yaml:"get,omitempty"`
	Set *KindSpec `yaml:"set,omitempty"`
	Mut *KindSpec `yaml:"mut_,omitempty"`
	Clr *KindSpec `yaml:"clr,omitempty"`
}

// FieldConfig is the YAML form of FieldDirectives.
type FieldConfig struct {
	Skip        bool `yaml:"skip,omitempty"`
	BlockConfig `yaml:",inline"`
}

// KindSpec configures one kind. It is written either as a mapping or in the
// short form used by struct tags: `get: "public,type=ref"`.
type KindSpec struct {
	Visibility string  `yaml:"visibility,omitempty"`
	Name       *string `yaml:"name,omitempty"`
	Prefix     *string `yaml:"prefix,omitempty"`
	Suffix     *string `yaml:"suffix,omitempty"`
	Type       string  `yaml:"type,omitempty"`
	Scope      string  `yaml:"scope,omitempty"`
	FullOption *bool   `yaml:"full_option,omitempty"`

	short string
}

var kindSpecKeys = []string{"visibility", "name", "prefix", "suffix", "type", "scope", "full_option"}

// UnmarshalYAML implements custom YAML unmarshaling for KindSpec.
// Accepts either a short-form string or a mapping.
func (k *KindSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}

		*k = KindSpec{short: s}

		return nil

	case yaml.MappingNode:
		for i := 0; i < len(node.Content); i += 2 {
			key := node.Content[i].Value
			if !slices.Contains(kindSpecKeys, key) {
				msg := fmt.Sprintf("line %d: unknown key %q", node.Content[i].Line, key)
				if s, ok := match.Suggest(key, kindSpecKeys); ok {
					msg += fmt.Sprintf(" (did you mean %q?)", s)
				}

				return errors.New(msg)
			}
		}

		type plain KindSpec

		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}

		*k = KindSpec(p)

		return nil

	default:
		return fmt.Errorf("line %d: expected string or mapping, got %v", node.Line, node.Kind)
	}
}

// Config converts the spec into the KindConfig of kind.
func (k *KindSpec) Config(kind MethodKind) (KindConfig, error) {
	if k == nil {
		return KindConfig{}, nil
	}

	if k.short != "" {
		return ParseKindOptions(kind, k.short)
	}

	var cfg KindConfig

	if k.Visibility != "" {
		vis, err := ParseVisibility(k.Visibility)
		if err != nil {
			return KindConfig{}, err
		}

		cfg.Visibility = &vis
	}

	cfg.Name, cfg.Prefix, cfg.Suffix = k.Name, k.Prefix, k.Suffix
	cfg.FullOption = k.FullOption

	if k.Type != "" {
		switch kind {
		case KindGet:
			policy, err := ParseGetReturnPolicy(k.Type)
			if err != nil {
				return KindConfig{}, err
			}

			cfg.GetType = &policy
		case KindSet:
			policy, err := ParseSetInputPolicy(k.Type)
			if err != nil {
				return KindConfig{}, err
			}

			cfg.SetType = &policy
		default:
			return KindConfig{}, errorf("type", "type is not valid for %s", kind)
		}
	}

	if k.Scope != "" {
		scope, err := ParseClrScope(k.Scope)
		if err != nil {
			return KindConfig{}, err
		}

		cfg.Scope = &scope
	}

	if err := ValidateKind(kind, cfg); err != nil {
		return KindConfig{}, err
	}

	return cfg, nil
}

func (b BlockConfig) specFor(kind MethodKind) *KindSpec {
	switch kind {
	case KindSet:
		return b.Set
	case KindMut:
		return b.Mut
	case KindClr:
		return b.Clr
	default:
		return b.Get
	}
}

// Block converts the YAML block into a Block.
func (b BlockConfig) Block() (Block, error) {
	var block Block

	for _, kind := range MethodKinds {
		cfg, err := b.specFor(kind).Config(kind)
		if err != nil {
			return Block{}, err
		}

		*block.For(kind) = cfg
	}

	return block, nil
}

// Directives converts the YAML field entry into FieldDirectives.
func (f FieldConfig) Directives() (FieldDirectives, error) {
	block, err := f.Block()
	if err != nil {
		return FieldDirectives{}, err
	}

	fd := FieldDirectives{Block: block, Skip: f.Skip}
	if err := ValidateField(fd); err != nil {
		return FieldDirectives{}, err
	}

	return fd, nil
}

// DefaultsBlock converts the record defaults. The source is used in errors.
func (r *RecordConfig) DefaultsBlock(source string) (Block, error) {
	block, err := r.Defaults.Block()
	if err != nil {
		return Block{}, withSource(err, source+": records["+r.Type+"].defaults")
	}

	return block, nil
}

// Field converts the entry of field name. The boolean is false
// when the file does not mention the field.
func (r *RecordConfig) Field(source, name string) (FieldDirectives, bool, error) {
	fc, ok := r.Fields[name]
	if !ok {
		return FieldDirectives{}, false, nil
	}

	fd, err := fc.Directives()
	if err != nil {
		return FieldDirectives{}, true, withSource(err, source+": records["+r.Type+"].fields."+name)
	}

	return fd, true, nil
}

// FieldNames returns the configured field names in sorted order.
func (r *RecordConfig) FieldNames() []string {
	names := make([]string, 0, len(r.Fields))
	for name := range r.Fields {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Record returns the configuration of the named record, or nil.
func (f *File) Record(name string) *RecordConfig {
	if f == nil {
		return nil
	}

	for i := range f.Records {
		if f.Records[i].Type == name {
			return &f.Records[i]
		}
	}

	return nil
}

// LoadFile loads and parses a YAML directive file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directive file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse parses YAML data into a File. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse directive YAML: %w", err)
	}

	if f.Version == "" {
		f.Version = "1"
	}

	if f.Version != "1" {
		return nil, fmt.Errorf("unsupported directive file version %s", strconv.Quote(f.Version))
	}

	seen := make(map[string]bool, len(f.Records))
	for i, r := range f.Records {
		if r.Type == "" {
			return nil, fmt.Errorf("records[%d]: type is required", i)
		}

		if seen[r.Type] {
			return nil, fmt.Errorf("records[%d]: type %s configured twice", i, r.Type)
		}

		seen[r.Type] = true
	}

	return &f, nil
}
