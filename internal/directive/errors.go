package directive

import (
	"errors"
	"fmt"

	"accessor-generator/internal/match"
)

// ErrStructural marks a directive that is malformed or names a sub-option
// that does not exist for its kind.
var ErrStructural = errors.New("structural directive error")

// SyntaxError describes a rejected directive.
type SyntaxError struct {
	// Source is where the directive came from: a struct tag, a doc line or a
	// YAML path. Empty when unknown.
	Source string
	// Token is the offending word.
	Token string
	// Msg is the human-readable description.
	Msg string
	// Suggestion is the closest valid keyword, if any.
	Suggestion string
}

func (e *SyntaxError) Error() string {
	msg := e.Msg
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}

	if e.Source != "" {
		return e.Source + ": " + msg
	}

	return msg
}

// Unwrap makes errors.Is(err, ErrStructural) hold for every SyntaxError.
func (e *SyntaxError) Unwrap() error {
	return ErrStructural
}

func newSyntaxError(token, msg string, candidates []string) *SyntaxError {
	e := &SyntaxError{Token: token, Msg: msg}
	if s, ok := match.Suggest(token, candidates); ok {
		e.Suggestion = s
	}

	return e
}

func errorf(token, format string, args ...any) *SyntaxError {
	return &SyntaxError{Token: token, Msg: fmt.Sprintf(format, args...)}
}

// withSource attaches the directive origin to a SyntaxError.
func withSource(err error, source string) error {
	var se *SyntaxError
	if errors.As(err, &se) && se.Source == "" {
		se.Source = source
	}

	return err
}
