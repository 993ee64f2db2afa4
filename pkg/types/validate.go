package types

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidBirthDate indicates a birth date that is not a real calendar day
// or lies outside [MinBirthYear, MaxBirthYear].
var ErrInvalidBirthDate = errors.New("types: invalid birth date")

// personValidate is shared by all Validate calls; validator caches struct
// metadata per type and is safe for concurrent use.
var personValidate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the roster-level constraints on p: a non-empty last name,
// names no longer than MaxNameLen, and a valid birth date.
func (p *Person) Validate() error {
	if p == nil {
		return errors.New("types: nil person")
	}
	if err := personValidate.Struct(p); err != nil {
		return fmt.Errorf("types: person %d: %w", p.ID, err)
	}
	if !p.BirthDate.IsValid() ||
		p.BirthDate.Year < MinBirthYear || p.BirthDate.Year > MaxBirthYear {
		return fmt.Errorf("%w: person %d: %q", ErrInvalidBirthDate, p.ID, p.BirthDate)
	}
	return nil
}
