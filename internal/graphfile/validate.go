// SPDX-License-Identifier: MIT

package graphfile

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidDocument wraps every decode or validation failure.
var ErrInvalidDocument = errors.New("graphfile: invalid document")

// validate is a singleton validator instance.
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// check validates v and reports the first failing field in a readable form.
func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	e := verrs[0]
	field := e.Namespace()
	switch e.Tag() {
	case "required":
		return fmt.Errorf("%w: %s is required", ErrInvalidDocument, field)
	case "gte", "min":
		return fmt.Errorf("%w: %s must be at least %s, got %v", ErrInvalidDocument, field, e.Param(), e.Value())
	case "nefield":
		return fmt.Errorf("%w: %s must differ from %s (self-loop)", ErrInvalidDocument, field, e.Param())
	default:
		return fmt.Errorf("%w: %s failed %q validation", ErrInvalidDocument, field, e.Tag())
	}
}
