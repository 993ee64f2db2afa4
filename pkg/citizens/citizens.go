package citizens

import (
	"github.com/joshuapare/citizenkit/pkg/types"
	"github.com/joshuapare/citizenkit/registry"
)

// Citizens is the registry contract shared by *registry.Registry and
// *Directory.
type Citizens interface {
	Add(p *types.Person) bool
	Remove(id int) bool
	Find(id int) (*types.Person, bool)
	FindByAge(minAge, maxAge int) []*types.Person
	FindByLastName(lastName string) []*types.Person
	AllByID() []*types.Person
	AllByAge() []*types.Person
	AllByLastName() []*types.Person
	Len() int
}

var (
	_ Citizens = (*registry.Registry)(nil)
	_ Citizens = (*Directory)(nil)
)
