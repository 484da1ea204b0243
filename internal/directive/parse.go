package directive

import (
	"reflect"
	"strconv"
	"strings"
)

const (
	// TagKey is the struct tag key carrying field directives.
	TagKey = "property"
	// DocPrefix starts a record directive line in a type's doc comment.
	DocPrefix = "//property:"
)

var groupKeywords = []string{"skip", "get", "set", "mut_", "clr"}

// optionKeywords lists the options accepted inside each kind group.
var optionKeywords = [kindCount][]string{
	KindGet: {"disable", "public", "crate", "private", "name", "prefix", "suffix", "type", "auto", "ref", "clone", "copy"},
	KindSet: {"disable", "public", "crate", "private", "name", "prefix", "suffix", "type", "full_option", "ref", "own", "none", "replace"},
	KindMut: {"disable", "public", "crate", "private", "name", "prefix", "suffix"},
	KindClr: {"disable", "public", "crate", "private", "name", "prefix", "suffix", "scope", "auto", "option", "all"},
}

// ParseTag reads the field directives of a struct tag. The boolean is false
// when the tag carries no directive key.
func ParseTag(tag reflect.StructTag) (FieldDirectives, bool, error) {
	value, ok := tag.Lookup(TagKey)
	if !ok {
		return FieldDirectives{}, false, nil
	}

	fd, err := ParseFieldDirectives(value)
	if err != nil {
		return FieldDirectives{}, true, withSource(err, TagKey+":"+strconv.Quote(value))
	}

	return fd, true, nil
}

// ParseRecordDoc reads record directives from the raw lines of a doc
// comment. Several directive lines are combined; a sub-option may only be
// given once across all of them.
func ParseRecordDoc(lines []string) (Block, bool, error) {
	var (
		block Block
		found bool
	)

	for _, line := range lines {
		line = strings.TrimSpace(line)

		body, ok := strings.CutPrefix(line, DocPrefix)
		if !ok {
			continue
		}

		found = true

		parsed, err := ParseRecordDirectives(body)
		if err != nil {
			return Block{}, true, withSource(err, line)
		}

		block, err = mergeStrict(block, parsed)
		if err != nil {
			return Block{}, true, withSource(err, line)
		}
	}

	return block, found, nil
}

// ParseRecordDirectives parses a record-level directive list. Skip has no
// meaning for a whole record and is rejected.
func ParseRecordDirectives(s string) (Block, error) {
	fd, err := ParseFieldDirectives(s)
	if err != nil {
		return Block{}, err
	}

	if fd.Skip {
		return Block{}, errorf("skip", "skip is only valid on fields")
	}

	return fd.Block, nil
}

// ParseFieldDirectives parses a directive list such as
// "get(public,type=ref),set(own),clr(scope=all)" or "skip".
func ParseFieldDirectives(s string) (FieldDirectives, error) {
	groups, err := splitTopLevel(s)
	if err != nil {
		return FieldDirectives{}, err
	}

	var fd FieldDirectives

	for _, group := range groups {
		if group == "" {
			return FieldDirectives{}, errorf("", "empty directive in %q", s)
		}

		if group == "skip" {
			if fd.Skip {
				return FieldDirectives{}, errorf("skip", "skip given twice")
			}

			fd.Skip = true

			continue
		}

		kind, cfg, err := parseGroup(group)
		if err != nil {
			return FieldDirectives{}, err
		}

		merged, err := mergeKindStrict(kind, *fd.For(kind), cfg)
		if err != nil {
			return FieldDirectives{}, err
		}

		*fd.For(kind) = merged
	}

	if err := ValidateField(fd); err != nil {
		return FieldDirectives{}, err
	}

	return fd, nil
}

// parseGroup parses "kind(option,...)".
func parseGroup(group string) (MethodKind, KindConfig, error) {
	open := strings.IndexByte(group, '(')
	if open < 0 {
		word := strings.TrimSpace(group)
		if _, err := lookupKeyword("method kind", word, kindKeywords[:]); err == nil {
			return 0, KindConfig{}, errorf(word, "%s needs an option list, e.g. %s(public)", word, word)
		}

		return 0, KindConfig{}, newSyntaxError(word, "unknown directive "+strconv.Quote(word), groupKeywords)
	}

	if !strings.HasSuffix(group, ")") {
		return 0, KindConfig{}, errorf(group, "unterminated option list in %q", group)
	}

	word := strings.TrimSpace(group[:open])

	kind, err := ParseMethodKind(word)
	if err != nil {
		return 0, KindConfig{}, newSyntaxError(word, "unknown directive "+strconv.Quote(word), groupKeywords)
	}

	cfg, err := ParseKindOptions(kind, group[open+1:len(group)-1])
	if err != nil {
		return 0, KindConfig{}, err
	}

	return kind, cfg, nil
}

// ParseKindOptions parses the option list of one kind group, e.g.
// "crate,prefix=is_,type=copy" for get.
func ParseKindOptions(kind MethodKind, body string) (KindConfig, error) {
	if strings.TrimSpace(body) == "" {
		return KindConfig{}, errorf(kind.Keyword(), "%s() has an empty option list", kind)
	}

	var cfg KindConfig

	for _, opt := range strings.Split(body, ",") {
		opt = strings.TrimSpace(opt)
		if opt == "" {
			return KindConfig{}, errorf(kind.Keyword(), "%s has an empty option", kind)
		}

		key, value, hasValue := strings.Cut(opt, "=")
		key = strings.TrimSpace(key)
		value = unquote(strings.TrimSpace(value))

		if err := applyOption(kind, &cfg, key, value, hasValue); err != nil {
			return KindConfig{}, err
		}
	}

	return cfg, nil
}

func applyOption(kind MethodKind, cfg *KindConfig, key, value string, hasValue bool) error {
	if vis, err := ParseVisibility(key); err == nil {
		if hasValue {
			return errorf(key, "%s: %s takes no value", kind, key)
		}

		return setOnce(kind, key, &cfg.Visibility, vis)
	}

	if !hasValue {
		if ok, err := applyBarePolicy(kind, cfg, key); ok {
			return err
		}
	}

	switch key {
	case "full_option":
		if kind != KindSet {
			return errorf(key, "full_option is not valid for %s", kind)
		}

		if hasValue {
			return errorf(key, "%s: full_option takes no value", kind)
		}

		return setOnce(kind, key, &cfg.FullOption, true)

	case "name", "prefix", "suffix":
		if !hasValue {
			return errorf(key, "%s: %s needs a value", kind, key)
		}

		switch key {
		case "name":
			if value == "" {
				return errorf(key, "%s: name must not be empty", kind)
			}

			return setOnce(kind, key, &cfg.Name, value)
		case "prefix":
			return setOnce(kind, key, &cfg.Prefix, value)
		default:
			return setOnce(kind, key, &cfg.Suffix, value)
		}

	case "type":
		if !hasValue {
			return errorf(key, "%s: type needs a value", kind)
		}

		switch kind {
		case KindGet:
			policy, err := ParseGetReturnPolicy(value)
			if err != nil {
				return err
			}

			return setOnce(kind, key, &cfg.GetType, policy)
		case KindSet:
			policy, err := ParseSetInputPolicy(value)
			if err != nil {
				return err
			}

			return setOnce(kind, key, &cfg.SetType, policy)
		default:
			return errorf(key, "type is not valid for %s", kind)
		}

	case "scope":
		if kind != KindClr {
			return errorf(key, "scope is not valid for %s", kind)
		}

		if !hasValue {
			return errorf(key, "%s: scope needs a value", kind)
		}

		scope, err := ParseClrScope(value)
		if err != nil {
			return err
		}

		return setOnce(kind, key, &cfg.Scope, scope)
	}

	return newSyntaxError(key, kind.Keyword()+": unknown option "+strconv.Quote(key), optionKeywords[kind])
}

// applyBarePolicy accepts a type or scope keyword written without its key,
// as in set(own) or clr(all). It reports false when kw is not one.
func applyBarePolicy(kind MethodKind, cfg *KindConfig, kw string) (bool, error) {
	switch kind {
	case KindGet:
		if policy, err := ParseGetReturnPolicy(kw); err == nil {
			return true, setOnce(kind, "type", &cfg.GetType, policy)
		}
	case KindSet:
		if policy, err := ParseSetInputPolicy(kw); err == nil {
			return true, setOnce(kind, "type", &cfg.SetType, policy)
		}
	case KindClr:
		if scope, err := ParseClrScope(kw); err == nil {
			return true, setOnce(kind, "scope", &cfg.Scope, scope)
		}
	}

	return false, nil
}

// setOnce stores v into *dst unless an earlier option of the same group
// already did.
func setOnce[T any](kind MethodKind, key string, dst **T, v T) error {
	if *dst != nil {
		return errorf(key, "%s: %s given twice", kind, optionName(key))
	}

	*dst = &v

	return nil
}

// optionName maps every visibility keyword onto one option name so that
// "get(public,crate)" reports a duplicate visibility.
func optionName(key string) string {
	if _, err := ParseVisibility(key); err == nil {
		return "visibility"
	}

	return key
}

func mergeKindStrict(kind MethodKind, base, over KindConfig) (KindConfig, error) {
	dup := func(set bool, name string) error {
		if set {
			return errorf(name, "%s: %s given twice", kind, name)
		}

		return nil
	}

	for _, check := range []error{
		dup(base.Visibility != nil && over.Visibility != nil, "visibility"),
		dup(base.Name != nil && over.Name != nil, "name"),
		dup(base.Prefix != nil && over.Prefix != nil, "prefix"),
		dup(base.Suffix != nil && over.Suffix != nil, "suffix"),
		dup(base.GetType != nil && over.GetType != nil, "type"),
		dup(base.SetType != nil && over.SetType != nil, "type"),
		dup(base.FullOption != nil && over.FullOption != nil, "full_option"),
		dup(base.Scope != nil && over.Scope != nil, "scope"),
	} {
		if check != nil {
			return KindConfig{}, check
		}
	}

	return base.Merge(over), nil
}

func mergeStrict(base, over Block) (Block, error) {
	for _, kind := range MethodKinds {
		merged, err := mergeKindStrict(kind, *base.For(kind), *over.For(kind))
		if err != nil {
			return Block{}, err
		}

		*base.For(kind) = merged
	}

	return base, nil
}

// splitTopLevel splits s on commas outside parentheses.
func splitTopLevel(s string) ([]string, error) {
	var (
		parts []string
		depth int
		start int
	)

	for i, r := range s {
		switch r {
		case '(':
			depth++
			if depth > 1 {
				return nil, errorf("(", "nested parentheses in %q", s)
			}
		case ')':
			depth--
			if depth < 0 {
				return nil, errorf(")", "unbalanced parentheses in %q", s)
			}
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}

	if depth != 0 {
		return nil, errorf("(", "unbalanced parentheses in %q", s)
	}

	parts = append(parts, strings.TrimSpace(s[start:]))

	return parts, nil
}

// unquote strips one level of single or double quotes.
func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' || first == '\'') && first == last {
			return s[1 : len(s)-1]
		}
	}

	return s
}
