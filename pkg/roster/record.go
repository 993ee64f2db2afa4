package roster

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/go-playground/validator/v10"

	"github.com/joshuapare/citizenkit/pkg/types"
)

// Record is the serialized shape of one person.
// ID is a pointer so that a missing id is distinguishable from id 0.
type Record struct {
	ID        *int   `json:"id"         yaml:"id"         validate:"required"`
	FirstName string `json:"first_name" yaml:"first_name" validate:"max=255"`
	LastName  string `json:"last_name"  yaml:"last_name"  validate:"required,max=255"`
	BirthDate string `json:"birth_date" yaml:"birth_date" validate:"required,datetime=2006-01-02"`
}

// recordValidate reports field names by their serialized key.
var recordValidate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}()

// NewRecord converts p into its serialized shape.
func NewRecord(p *types.Person) Record {
	id := p.ID
	return Record{
		ID:        &id,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		BirthDate: p.BirthDate.String(),
	}
}

// Person validates r and converts it into a Person.
// The returned error names the first offending field.
func (r Record) Person() (*types.Person, string, error) {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.BirthDate = strings.TrimSpace(r.BirthDate)

	if err := recordValidate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return nil, fe.Field(), fmt.Errorf("%w: failed %q check", ErrInvalidRecord, fe.Tag())
		}
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	birth, err := civil.ParseDate(r.BirthDate)
	if err != nil {
		return nil, ColumnBirthDate, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	p := types.NewPerson(*r.ID, r.FirstName, r.LastName, birth)
	if err := p.Validate(); err != nil {
		return nil, ColumnBirthDate, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	return p, "", nil
}
