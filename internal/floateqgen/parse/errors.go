package parse

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/errors/errbase"
	"github.com/cockroachdb/errors/join"
)

// Error kinds. Every error returned by this package is a positioned
// [codefmt.CodeError] marked with one of them, so callers may test the kind
// with errors.Is and still print the position.
var (
	// ErrMissingParam is a required parameter absent from a directive.
	ErrMissingParam = errors.New("missing parameter")

	// ErrMalformedParam is a parameter which cannot be read or whose value
	// is invalid.
	ErrMalformedParam = errors.New("malformed parameter")

	// ErrUnknownParam is a parameter name which is not recognized.
	ErrUnknownParam = errors.New("unknown parameter")

	// ErrDuplicateParam is a parameter given more than once.
	ErrDuplicateParam = errors.New("duplicate parameter")

	// ErrMisplacedDirective is a directive which does not annotate exactly
	// one type declaration.
	ErrMisplacedDirective = errors.New("misplaced directive")

	// ErrUnsupportedShape is an annotated type which is not a struct or an
	// array.
	ErrUnsupportedShape = errors.New("unsupported shape")

	// ErrUnsupportedField is a field whose type cannot be compared.
	ErrUnsupportedField = errors.New("unsupported field")
)

// Mark marks err with kind and attaches hints.
func Mark(err, kind error, hints ...string) error {
	err = errors.Mark(err, kind)
	for _, hint := range hints {
		err = errors.WithHint(err, hint)
	}
	return err
}

// JoinErrors joins errs. A single error is returned as is and no error
// results in nil. The join carries no stack, so [Flatten] finds the errors
// right below it.
func JoinErrors(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	}
	return join.Join(errs...)
}

// Flatten returns the errors joined in err, recursively. An error which joins
// nothing is returned whole, with its wrappers and so its hints. Wrappers
// above a join are dropped.
func Flatten(err error) []error {
	if err == nil {
		return nil
	}
	for cause := err; cause != nil; cause = errbase.UnwrapOnce(cause) {
		if multi := errbase.UnwrapMulti(cause); multi != nil {
			var errs []error
			for _, err := range multi {
				errs = append(errs, Flatten(err)...)
			}
			return errs
		}
	}
	return []error{err}
}
