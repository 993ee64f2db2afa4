package registry_test

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"github.com/joshuapare/citizenkit/pkg/types"
	"github.com/joshuapare/citizenkit/registry"
)

// Example builds a small registry and runs each kind of query.
func Example() {
	r := registry.New(4)
	r.Add(types.NewPerson(1, "Alice", "Smith", civil.Date{Year: 1990, Month: time.May, Day: 15}))
	r.Add(types.NewPerson(2, "Bob", "Johnson", civil.Date{Year: 1985, Month: time.October, Day: 20}))
	r.Add(types.NewPerson(3, "Charlie", "Brown", civil.Date{Year: 1995, Month: time.March, Day: 8}))

	if p, ok := r.Find(2); ok {
		fmt.Println("found:", p.FirstName, p.LastName)
	}

	asOf := civil.Date{Year: 2025, Month: time.January, Day: 1}
	for _, p := range r.FindByAgeAsOf(25, 35, asOf) {
		fmt.Println("age", p.Age(asOf), p.LastName)
	}

	for _, p := range r.FindByLastName("smith") {
		fmt.Println("smith:", p.ID)
	}

	var names []string
	for p := range r.ByLastName() {
		names = append(names, p.LastName)
	}
	fmt.Println(strings.Join(names, " "))
	// Output:
	// found: Bob Johnson
	// age 29 Brown
	// age 34 Smith
	// smith: 1
	// Brown Johnson Smith
}

// ExampleNewWithOptions pins "today" for age queries.
func ExampleNewWithOptions() {
	r := registry.NewWithOptions(registry.Options{
		Capacity: 16,
		Now: func() time.Time {
			return time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
		},
	})
	r.Add(types.NewPerson(4, "David", "Williams", civil.Date{Year: 2000, Month: time.July, Day: 25}))

	fmt.Println(len(r.FindByAge(24, 24)), len(r.FindByAge(25, 25)))
	// Output: 1 0
}
