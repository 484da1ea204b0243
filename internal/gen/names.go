package gen

import (
	"fmt"
	"go/token"

	"accessor-generator/internal/directive"
	"accessor-generator/internal/match"
	"accessor-generator/internal/plan"
)

// GoName returns the Go identifier of a method: exported for public
// methods, unexported otherwise. Descriptors from the resolver carry it
// already.
func GoName(m *plan.MethodDescriptor) string {
	if m.GoName != "" {
		return m.GoName
	}

	return match.GoIdent(m.Name, m.Visibility == directive.Public)
}

// methodNames cases every method name and rejects names Go would not
// compile: duplicates, names of fields, and non-identifiers.
func methodNames(rec *plan.Record, methods []plan.MethodDescriptor) ([]string, error) {
	fields := make(map[string]bool, len(rec.Fields))
	for _, f := range rec.Fields {
		fields[f.Name] = true
	}

	seen := make(map[string]int, len(methods))
	names := make([]string, len(methods))

	for i := range methods {
		m := &methods[i]
		name := GoName(m)

		var err error

		switch prev, dup := seen[name]; {
		case !token.IsIdentifier(name):
			err = fmt.Errorf("%w: %q is not a valid Go identifier", plan.ErrNameCollision, name)
		case dup:
			err = fmt.Errorf("%w: %s is also generated for %s %s",
				plan.ErrNameCollision, name, methods[prev].Field, methods[prev].Kind)
		case fields[name]:
			err = fmt.Errorf("%w: %s is the name of a field (a prefix avoids it, e.g. %s(prefix=%s))",
				plan.ErrNameCollision, name, m.Kind.Keyword(), fieldPrefixHint(m.Kind))
		}

		if err != nil {
			return nil, &plan.ConfigError{Record: rec.Name, Field: m.Field, Kind: m.Kind.Keyword(), Err: err}
		}

		seen[name] = i
		names[i] = name
	}

	return names, nil
}

// fieldPrefixHint suggests a prefix that keeps a method apart from its field.
func fieldPrefixHint(kind directive.MethodKind) string {
	switch kind {
	case directive.KindGet:
		return "get_"
	case directive.KindSet:
		return "set_"
	case directive.KindMut:
		return "mut_"
	default:
		return "clear_"
	}
}
