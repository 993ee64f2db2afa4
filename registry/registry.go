package registry

import (
	"iter"
	"time"

	"cloud.google.com/go/civil"

	"github.com/joshuapare/citizenkit/pkg/types"
)

// defaultCapacity is the initial index capacity when no hint is given.
const defaultCapacity = 64

// Options configures a Registry.
type Options struct {
	// Capacity is the expected number of people. Values <= 0 use a default.
	Capacity int

	// Now supplies the current time for FindByAge.
	// If nil, time.Now is used.
	Now func() time.Time
}

// Registry is an in-memory set of people with three ordered indexes.
// The zero value is not usable; construct with New, NewWithOptions or NewFrom.
type Registry struct {
	byID       sortedIndex
	byLastName sortedIndex
	byAge      sortedIndex
	now        func() time.Time
}

// New creates an empty Registry sized for capacity people.
func New(capacity int) *Registry {
	return NewWithOptions(Options{Capacity: capacity})
}

// NewWithOptions creates an empty Registry from opts.
func NewWithOptions(opts Options) *Registry {
	capacity := opts.Capacity
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Registry{
		byID:       newSortedIndex(capacity, compareByID),
		byLastName: newSortedIndex(capacity, compareByLastName),
		byAge:      newSortedIndex(capacity, compareByAge),
		now:        now,
	}
}

// NewFrom creates a Registry holding people. Nil entries and repeated IDs
// are skipped; the first occurrence of an ID wins.
func NewFrom(people []*types.Person) *Registry {
	r := New(len(people))
	for _, p := range people {
		r.Add(p)
	}
	return r
}

// Add inserts p into every index. It returns false, leaving the registry
// unchanged, if p is nil or a person with the same ID is already present.
//
// The registry keeps p itself, not a copy. p.LastName and p.BirthDate must
// not change while p is registered.
func (r *Registry) Add(p *types.Person) bool {
	if p == nil {
		return false
	}
	if _, ok := r.byID.find(&entry{id: p.ID}); ok {
		return false
	}
	e := newEntry(p)
	r.byID.insert(e)
	r.byLastName.insert(e)
	r.byAge.insert(e)
	return true
}

// Remove deletes the person with the given ID from every index.
// It returns false if no such person is registered.
func (r *Registry) Remove(id int) bool {
	i, ok := r.byID.find(&entry{id: id})
	if !ok {
		return false
	}
	e := r.byID.entries[i]
	r.byID.remove(e)
	r.byLastName.remove(e)
	r.byAge.remove(e)
	return true
}

// Find returns the person with the given ID.
func (r *Registry) Find(id int) (*types.Person, bool) {
	i, ok := r.byID.find(&entry{id: id})
	if !ok {
		return nil, false
	}
	return r.byID.entries[i].person, true
}

// FindByAge returns everyone whose age today lies in [minAge, maxAge],
// youngest first, ties broken by ID. "Today" comes from Options.Now.
func (r *Registry) FindByAge(minAge, maxAge int) []*types.Person {
	return r.FindByAgeAsOf(minAge, maxAge, types.Today(r.now()))
}

// FindByAgeAsOf is FindByAge with an explicit reference date.
// An inverted range (minAge > maxAge) yields an empty result.
func (r *Registry) FindByAgeAsOf(minAge, maxAge int, asOf civil.Date) []*types.Person {
	if minAge > maxAge {
		return []*types.Person{}
	}
	minAge, maxAge = clampAge(minAge), clampAge(maxAge)
	from := r.byAge.lowerBound(&entry{id: minID, ageKey: ageBoundary(asOf, minAge)})
	to := r.byAge.lowerBound(&entry{id: minID, ageKey: ageBoundary(asOf, maxAge+1)})
	return people(r.byAge.span(from, to))
}

// FindByLastName returns everyone whose last name equals lastName ignoring
// case, ordered by ID.
func (r *Registry) FindByLastName(lastName string) []*types.Person {
	key := foldName(lastName)
	from := r.byLastName.lowerBound(&entry{id: minID, nameKey: key})
	to := r.byLastName.upperBound(&entry{id: maxID, nameKey: key})
	return people(r.byLastName.span(from, to))
}

// AllByID returns everyone ordered by ID.
func (r *Registry) AllByID() []*types.Person {
	return people(r.byID.entries)
}

// AllByAge returns everyone ordered from youngest to oldest, ties by ID.
func (r *Registry) AllByAge() []*types.Person {
	return people(r.byAge.entries)
}

// AllByLastName returns everyone ordered by case-folded last name, then ID.
func (r *Registry) AllByLastName() []*types.Person {
	return people(r.byLastName.entries)
}

// ByID iterates in ID order without copying.
// The registry must not be modified while iterating.
func (r *Registry) ByID() iter.Seq[*types.Person] {
	return walk(r.byID.entries)
}

// ByAge iterates youngest first without copying.
// The registry must not be modified while iterating.
func (r *Registry) ByAge() iter.Seq[*types.Person] {
	return walk(r.byAge.entries)
}

// ByLastName iterates in last-name order without copying.
// The registry must not be modified while iterating.
func (r *Registry) ByLastName() iter.Seq[*types.Person] {
	return walk(r.byLastName.entries)
}

// Len returns the number of registered people.
func (r *Registry) Len() int {
	return r.byID.len()
}

func people(entries []*entry) []*types.Person {
	out := make([]*types.Person, len(entries))
	for i, e := range entries {
		out[i] = e.person
	}
	return out
}

func walk(entries []*entry) iter.Seq[*types.Person] {
	return func(yield func(*types.Person) bool) {
		for _, e := range entries {
			if !yield(e.person) {
				return
			}
		}
	}
}
