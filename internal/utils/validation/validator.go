package validation

import (
	"fmt"
	"math"
	"strings"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type Validator struct {
	Errors []ValidationError
}

func New() *Validator {
	return &Validator{
		Errors: make([]ValidationError, 0),
	}
}

func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

func (v *Validator) AddError(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// Required checks that s is not blank.
func (v *Validator) Required(s, field string) {
	v.Check(strings.TrimSpace(s) != "", field, "is required")
}

// NonNegative checks that f is a finite number greater than or equal to zero.
func (v *Validator) NonNegative(f float64, field string) {
	v.Check(!math.IsNaN(f) && !math.IsInf(f, 0) && f >= 0, field, "must be a number greater than or equal to 0")
}

// Unique checks that s has not been seen yet and records it.
func (v *Validator) Unique(seen map[string]bool, s, field string) {
	if seen[s] {
		v.AddError(field, fmt.Sprintf("duplicate value %q", s))
		return
	}
	seen[s] = true
}
