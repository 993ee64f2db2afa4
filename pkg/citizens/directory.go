package citizens

import (
	"log/slog"
	"sync"
	"time"

	"cloud.google.com/go/civil"

	"github.com/joshuapare/citizenkit/pkg/types"
	"github.com/joshuapare/citizenkit/registry"
)

// Options configures a Directory.
type Options struct {
	// Capacity is the expected number of people. Values <= 0 use the registry default.
	Capacity int

	// Now supplies the current time for FindByAge. Default: time.Now.
	Now func() time.Time

	// Logger receives Debug records for mutations. Default: discard.
	Logger *slog.Logger
}

// Directory is a registry that is safe for concurrent use.
//
// Mutations take an exclusive lock and update all three indexes before
// releasing it, so readers never observe a partially applied Add or Remove.
type Directory struct {
	mu  sync.RWMutex
	reg *registry.Registry
	log *slog.Logger
}

// New creates an empty Directory.
func New(opts Options) *Directory {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Directory{
		reg: registry.NewWithOptions(registry.Options{Capacity: opts.Capacity, Now: opts.Now}),
		log: log.With("component", "citizens"),
	}
}

// Add registers p. It returns false if p is nil or its ID is already taken.
func (d *Directory) Add(p *types.Person) bool {
	start := time.Now()
	d.mu.Lock()
	ok := d.reg.Add(p)
	d.mu.Unlock()

	if !ok {
		observe("add", resultRejected, start)
		if p == nil {
			d.log.Debug("add rejected", "reason", "nil person")
		} else {
			d.log.Debug("add rejected", "id", p.ID, "reason", "duplicate id")
		}
		return false
	}
	observe("add", resultOK, start)
	d.log.Debug("person added", "id", p.ID, "last_name", p.LastName)
	return true
}

// Remove unregisters the person with the given ID.
func (d *Directory) Remove(id int) bool {
	start := time.Now()
	d.mu.Lock()
	ok := d.reg.Remove(id)
	d.mu.Unlock()

	if !ok {
		observe("remove", resultMiss, start)
		d.log.Debug("remove missed", "id", id)
		return false
	}
	observe("remove", resultOK, start)
	d.log.Debug("person removed", "id", id)
	return true
}

// Find returns the person with the given ID.
func (d *Directory) Find(id int) (*types.Person, bool) {
	start := time.Now()
	d.mu.RLock()
	p, ok := d.reg.Find(id)
	d.mu.RUnlock()

	if ok {
		observe("find", resultOK, start)
	} else {
		observe("find", resultMiss, start)
	}
	return p, ok
}

// FindByAge returns everyone aged [minAge, maxAge] today, youngest first.
func (d *Directory) FindByAge(minAge, maxAge int) []*types.Person {
	start := time.Now()
	d.mu.RLock()
	out := d.reg.FindByAge(minAge, maxAge)
	d.mu.RUnlock()
	observe("find_by_age", queryResult(len(out)), start)
	return out
}

// FindByAgeAsOf is FindByAge with an explicit reference date.
func (d *Directory) FindByAgeAsOf(minAge, maxAge int, asOf civil.Date) []*types.Person {
	start := time.Now()
	d.mu.RLock()
	out := d.reg.FindByAgeAsOf(minAge, maxAge, asOf)
	d.mu.RUnlock()
	observe("find_by_age", queryResult(len(out)), start)
	return out
}

// FindByLastName returns everyone with the given last name, ignoring case.
func (d *Directory) FindByLastName(lastName string) []*types.Person {
	start := time.Now()
	d.mu.RLock()
	out := d.reg.FindByLastName(lastName)
	d.mu.RUnlock()
	observe("find_by_last_name", queryResult(len(out)), start)
	return out
}

func (d *Directory) AllByID() []*types.Person {
	return d.all("all_by_id", d.reg.AllByID)
}

func (d *Directory) AllByAge() []*types.Person {
	return d.all("all_by_age", d.reg.AllByAge)
}

func (d *Directory) AllByLastName() []*types.Person {
	return d.all("all_by_last_name", d.reg.AllByLastName)
}

func (d *Directory) all(operation string, fn func() []*types.Person) []*types.Person {
	start := time.Now()
	d.mu.RLock()
	out := fn()
	d.mu.RUnlock()
	observe(operation, queryResult(len(out)), start)
	return out
}

// Len returns the number of registered people.
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.reg.Len()
}

// Stats returns registry statistics.
func (d *Directory) Stats() registry.Stats {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.reg.Stats()
}

// Verify checks the registry invariants. See registry.Registry.Verify.
func (d *Directory) Verify() error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.reg.Verify()
}
