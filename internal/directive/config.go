package directive

// KindConfig is a partial configuration of one method kind. A nil pointer
// means "not set at this tier".
type KindConfig struct {
	Visibility *Visibility      `json:"visibility,omitempty"`
	Name       *string          `json:"name,omitempty"`
	Prefix     *string          `json:"prefix,omitempty"`
	Suffix     *string          `json:"suffix,omitempty"`
	GetType    *GetReturnPolicy `json:"get_type,omitempty"`
	SetType    *SetInputPolicy  `json:"set_type,omitempty"`
	FullOption *bool            `json:"full_option,omitempty"`
	Scope      *ClrScope        `json:"scope,omitempty"`
}

// IsZero reports whether no sub-option is set.
func (c KindConfig) IsZero() bool {
	return c.Visibility == nil && c.Name == nil && c.Prefix == nil && c.Suffix == nil &&
		c.GetType == nil && c.SetType == nil && c.FullOption == nil && c.Scope == nil
}

// Merge returns c with every sub-option set in over replaced.
func (c KindConfig) Merge(over KindConfig) KindConfig {
	return KindConfig{
		Visibility: pick(over.Visibility, c.Visibility),
		Name:       pick(over.Name, c.Name),
		Prefix:     pick(over.Prefix, c.Prefix),
		Suffix:     pick(over.Suffix, c.Suffix),
		GetType:    pick(over.GetType, c.GetType),
		SetType:    pick(over.SetType, c.SetType),
		FullOption: pick(over.FullOption, c.FullOption),
		Scope:      pick(over.Scope, c.Scope),
	}
}

func pick[T any](first, second *T) *T {
	if first != nil {
		return first
	}

	return second
}

// Block holds a partial configuration for each of the four kinds.
type Block struct {
	Get KindConfig `json:"get"`
	Set KindConfig `json:"set"`
	Mut KindConfig `json:"mut_"`
	Clr KindConfig `json:"clr"`
}

// For returns the configuration of the given kind.
func (b *Block) For(kind MethodKind) *KindConfig {
	switch kind {
	case KindSet:
		return &b.Set
	case KindMut:
		return &b.Mut
	case KindClr:
		return &b.Clr
	default:
		return &b.Get
	}
}

// IsZero reports whether no kind has any sub-option set.
func (b Block) IsZero() bool {
	return b.Get.IsZero() && b.Set.IsZero() && b.Mut.IsZero() && b.Clr.IsZero()
}

// Merge merges over into b kind by kind, sub-option by sub-option.
func (b Block) Merge(over Block) Block {
	return Block{
		Get: b.Get.Merge(over.Get),
		Set: b.Set.Merge(over.Set),
		Mut: b.Mut.Merge(over.Mut),
		Clr: b.Clr.Merge(over.Clr),
	}
}

// FieldDirectives are the directives attached to one field.
type FieldDirectives struct {
	Block
	// Skip suppresses every kind for the field.
	Skip bool `json:"skip,omitempty"`
}

// Merge merges over into f. Skip from either side wins.
func (f FieldDirectives) Merge(over FieldDirectives) FieldDirectives {
	return FieldDirectives{
		Block: f.Block.Merge(over.Block),
		Skip:  f.Skip || over.Skip,
	}
}

// Builtin returns the base tier of the cascade. Every sub-option the
// resolver may look up is set, except the explicit name.
func Builtin() Block {
	return Block{
		Get: KindConfig{
			Visibility: ptr(Public),
			Prefix:     ptr(""),
			Suffix:     ptr(""),
			GetType:    ptr(GetAuto),
		},
		Set: KindConfig{
			Visibility: ptr(Private),
			Prefix:     ptr("set_"),
			Suffix:     ptr(""),
			SetType:    ptr(SetRef),
			FullOption: ptr(false),
		},
		Mut: KindConfig{
			Visibility: ptr(Disabled),
			Prefix:     ptr("mut_"),
			Suffix:     ptr(""),
		},
		Clr: KindConfig{
			Visibility: ptr(Disabled),
			Prefix:     ptr("clear_"),
			Suffix:     ptr(""),
			Scope:      ptr(ClrOptionOnly),
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}
