// Package testutil provides shared fixtures for tests across the module.
package testutil

import (
	"time"

	"cloud.google.com/go/civil"

	"github.com/joshuapare/citizenkit/pkg/types"
)

// ReferenceDate is the "today" all reference ages are computed against.
var ReferenceDate = civil.Date{Year: 2025, Month: time.January, Day: 1}

// ReferenceAges maps reference roster IDs to their ages on ReferenceDate.
var ReferenceAges = map[int]int{1: 34, 2: 39, 3: 29, 4: 24, 5: 36}

// ReferenceNow is an Options.Now function pinned to noon on ReferenceDate.
func ReferenceNow() time.Time {
	return ReferenceDate.In(time.UTC).Add(12 * time.Hour)
}

// ReferencePeople returns fresh copies of the five-person reference roster.
func ReferencePeople() []*types.Person {
	return []*types.Person{
		types.NewPerson(1, "Alice", "Smith", civil.Date{Year: 1990, Month: time.May, Day: 15}),
		types.NewPerson(2, "Bob", "Johnson", civil.Date{Year: 1985, Month: time.October, Day: 20}),
		types.NewPerson(3, "Charlie", "Brown", civil.Date{Year: 1995, Month: time.March, Day: 8}),
		types.NewPerson(4, "David", "Williams", civil.Date{Year: 2000, Month: time.July, Day: 25}),
		types.NewPerson(5, "Eve", "Davis", civil.Date{Year: 1988, Month: time.December, Day: 1}),
	}
}

// IDs returns the IDs of people in order.
func IDs(people []*types.Person) []int {
	ids := make([]int, len(people))
	for i, p := range people {
		ids[i] = p.ID
	}
	return ids
}
