package registry

import (
	"cmp"
	"math"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"golang.org/x/text/cases"

	"github.com/joshuapare/citizenkit/pkg/types"
)

const (
	// yearFactor and monthFactor pack a calendar date into one ordered int.
	// Days never exceed 31 and months never exceed 12, so the packing keeps
	// lexicographic (year, month, day) order.
	yearFactor  = 10000
	monthFactor = 100

	// maxAgeSpan bounds the ages accepted by range queries so that
	// boundary ordinals cannot overflow. Nobody is that old.
	maxAgeSpan = 1 << 20

	// minID and maxID are the ID components of range probes.
	minID = math.MinInt
	maxID = math.MaxInt
)

// entry is the shared handle placed in all three indexes.
// The keys are derived once at insertion; probes carry keys only.
type entry struct {
	person  *types.Person
	id      int
	nameKey string
	ageKey  int
}

func newEntry(p *types.Person) *entry {
	return &entry{
		person:  p,
		id:      p.ID,
		nameKey: foldName(p.LastName),
		ageKey:  ageKey(p.BirthDate),
	}
}

// folder is stateless and safe for concurrent use.
var folder = cases.Fold()

// foldName returns the case-folded form of a last name.
func foldName(name string) string {
	return folder.String(name)
}

// ordinal packs (year, month, day) into a single comparable int.
// The triple need not be a valid calendar day.
func ordinal(year int, month time.Month, day int) int {
	return year*yearFactor + int(month)*monthFactor + day
}

// ageKey is the age index key for a birth date: older people get larger keys.
func ageKey(birth civil.Date) int {
	return -ordinal(birth.Year, birth.Month, birth.Day)
}

// ageBoundary returns the smallest age key of anyone at least age years old
// on asOf. A person born on (asOf.Year-age, asOf.Month, asOf.Day) turns age
// that day, even when that day does not exist (29 February).
func ageBoundary(asOf civil.Date, age int) int {
	return -ordinal(asOf.Year-age, asOf.Month, asOf.Day)
}

// clampAge limits a query age to [-maxAgeSpan, maxAgeSpan].
func clampAge(age int) int {
	return min(max(age, -maxAgeSpan), maxAgeSpan)
}

func compareByID(a, b *entry) int {
	return cmp.Compare(a.id, b.id)
}

func compareByLastName(a, b *entry) int {
	if c := strings.Compare(a.nameKey, b.nameKey); c != 0 {
		return c
	}
	return cmp.Compare(a.id, b.id)
}

func compareByAge(a, b *entry) int {
	if c := cmp.Compare(a.ageKey, b.ageKey); c != 0 {
		return c
	}
	return cmp.Compare(a.id, b.id)
}
