package directive

// ValidateKind rejects sub-options that do not exist for kind and enum
// values outside their keyword tables.
func ValidateKind(kind MethodKind, c KindConfig) error {
	if c.Visibility != nil && c.Visibility.Keyword() == unknownKeyword {
		return errorf("", "%s: invalid visibility %d", kind, int(*c.Visibility))
	}

	if c.Name != nil && *c.Name == "" {
		return errorf("name", "%s: name must not be empty", kind)
	}

	if c.GetType != nil {
		if kind != KindGet {
			return errorf("type", "type=%s is not valid for %s", c.GetType.Keyword(), kind)
		}

		if c.GetType.Keyword() == unknownKeyword {
			return errorf("type", "get: invalid type %d", int(*c.GetType))
		}
	}

	if c.SetType != nil {
		if kind != KindSet {
			return errorf("type", "type=%s is not valid for %s", c.SetType.Keyword(), kind)
		}

		if c.SetType.Keyword() == unknownKeyword {
			return errorf("type", "set: invalid type %d", int(*c.SetType))
		}
	}

	if c.FullOption != nil && kind != KindSet {
		return errorf("full_option", "full_option is not valid for %s", kind)
	}

	if c.Scope != nil {
		if kind != KindClr {
			return errorf("scope", "scope=%s is not valid for %s", c.Scope.Keyword(), kind)
		}

		if c.Scope.Keyword() == unknownKeyword {
			return errorf("scope", "clr: invalid scope %d", int(*c.Scope))
		}
	}

	return nil
}

// ValidateBlock validates every kind of b.
func ValidateBlock(b Block) error {
	for _, kind := range MethodKinds {
		if err := ValidateKind(kind, *b.For(kind)); err != nil {
			return err
		}
	}

	return nil
}

// ValidateField validates f. Skip excludes every per-kind directive.
func ValidateField(f FieldDirectives) error {
	if f.Skip {
		for _, kind := range MethodKinds {
			if !f.For(kind).IsZero() {
				return errorf("skip", "skip cannot be combined with %s", kind)
			}
		}

		return nil
	}

	return ValidateBlock(f.Block)
}
