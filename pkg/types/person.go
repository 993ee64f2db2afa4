package types

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// Person is a citizen record.
//
// Equality is defined by ID only; two Person values with the same ID are the
// same citizen regardless of their names or birth dates.
type Person struct {
	ID        int        `json:"id"         yaml:"id"`
	FirstName string     `json:"first_name" yaml:"first_name" validate:"max=255"`
	LastName  string     `json:"last_name"  yaml:"last_name"  validate:"required,max=255"`
	BirthDate civil.Date `json:"birth_date" yaml:"birth_date"`
}

// NewPerson returns a Person with the given fields.
func NewPerson(id int, firstName, lastName string, birthDate civil.Date) *Person {
	return &Person{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		BirthDate: birthDate,
	}
}

// Age returns the number of whole years elapsed between BirthDate and asOf.
// The birthday counts from the day itself, so someone born on 29 February
// ages on 1 March in non-leap years. Birth dates after asOf give negative ages.
func (p *Person) Age(asOf civil.Date) int {
	years := asOf.Year - p.BirthDate.Year
	if asOf.Month < p.BirthDate.Month ||
		(asOf.Month == p.BirthDate.Month && asOf.Day < p.BirthDate.Day) {
		years--
	}
	return years
}

// Equal reports whether p and other refer to the same citizen.
func (p *Person) Equal(other *Person) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.ID == other.ID
}

// String implements fmt.Stringer.
func (p *Person) String() string {
	if p == nil {
		return "Person{<nil>}"
	}
	return fmt.Sprintf("Person{id=%d, firstName=%s, lastName=%s, birthDate=%s}",
		p.ID, p.FirstName, p.LastName, p.BirthDate)
}

// Today returns the calendar date of t in t's location.
func Today(t time.Time) civil.Date {
	return civil.DateOf(t)
}
