package plan

import (
	"errors"
	"fmt"

	"accessor-generator/internal/directive"
)

var (
	// ErrStructuralDirective marks a directive naming a sub-option that does
	// not exist for its kind, or skip next to a per-kind directive.
	ErrStructuralDirective = directive.ErrStructural
	// ErrUnsupportedOperation marks a policy the field's category cannot honor.
	ErrUnsupportedOperation = errors.New("unsupported operation")
	// ErrUnclassifiableRecord marks an input that is not a record with named fields.
	ErrUnclassifiableRecord = errors.New("unclassifiable record")
	// ErrNameCollision marks two methods of one record resolving to the same
	// name, or a method named like a field.
	ErrNameCollision = errors.New("name collision")
)

// ConfigError locates a rejected configuration. It unwraps to the cause,
// which in turn wraps one of the sentinels above.
type ConfigError struct {
	Record string
	Field  string
	// Kind is the method kind keyword, empty when the error is not kind specific.
	Kind string
	Err  error
}

func (e *ConfigError) Error() string {
	loc := e.Record
	if e.Field != "" {
		loc += "." + e.Field
	}

	if e.Kind != "" {
		loc += " " + e.Kind
	}

	return fmt.Sprintf("%s: %v", loc, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func unsupported(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedOperation, fmt.Sprintf(format, args...))
}
