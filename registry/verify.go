package registry

import "fmt"

// ValidationError describes a broken registry invariant.
type ValidationError struct {
	Type     string // Error category: "Size", "Order", "Membership" or "Stale"
	Index    string // Index name ("id", "lastname", "age"), empty if N/A
	Message  string // Human-readable description
	Position int    // Index position where the error was found (-1 if N/A)
}

func (e *ValidationError) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("%s: %s index at %d: %s", e.Type, e.Index, e.Position, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Verify checks that the three indexes hold the same people, that each is
// strictly ordered, and that no registered person's indexed fields changed
// after insertion. It returns the first violation as a *ValidationError.
func (r *Registry) Verify() error {
	n := r.byID.len()
	if r.byLastName.len() != n || r.byAge.len() != n {
		return &ValidationError{
			Type: "Size",
			Message: fmt.Sprintf("index sizes differ: id=%d lastname=%d age=%d",
				n, r.byLastName.len(), r.byAge.len()),
			Position: -1,
		}
	}

	indexes := []struct {
		name string
		idx  *sortedIndex
	}{
		{"id", &r.byID},
		{"lastname", &r.byLastName},
		{"age", &r.byAge},
	}
	for _, ix := range indexes {
		if err := verifyOrder(ix.name, ix.idx); err != nil {
			return err
		}
	}

	// byID is strictly ordered and all sizes match, so membership of every
	// other entry in byID means the sets are identical.
	for _, ix := range indexes[1:] {
		for pos, e := range ix.idx.entries {
			i, ok := r.byID.find(e)
			if !ok || r.byID.entries[i] != e {
				return &ValidationError{
					Type:     "Membership",
					Index:    ix.name,
					Message:  fmt.Sprintf("id %d missing from id index", e.id),
					Position: pos,
				}
			}
		}
	}

	for pos, e := range r.byID.entries {
		if err := verifyKeys(pos, e); err != nil {
			return err
		}
	}
	return nil
}

func verifyOrder(name string, idx *sortedIndex) error {
	for i := 1; i < len(idx.entries); i++ {
		if idx.cmp(idx.entries[i-1], idx.entries[i]) >= 0 {
			return &ValidationError{
				Type:     "Order",
				Index:    name,
				Message:  fmt.Sprintf("id %d not after id %d", idx.entries[i].id, idx.entries[i-1].id),
				Position: i,
			}
		}
	}
	return nil
}

func verifyKeys(pos int, e *entry) error {
	p := e.person
	switch {
	case p == nil:
		return &ValidationError{Type: "Membership", Index: "id", Message: "nil person", Position: pos}
	case p.ID != e.id:
		return &ValidationError{
			Type:     "Stale",
			Index:    "id",
			Message:  fmt.Sprintf("id changed from %d to %d", e.id, p.ID),
			Position: pos,
		}
	case foldName(p.LastName) != e.nameKey:
		return &ValidationError{
			Type:     "Stale",
			Index:    "id",
			Message:  fmt.Sprintf("id %d: last name changed after insertion", e.id),
			Position: pos,
		}
	case ageKey(p.BirthDate) != e.ageKey:
		return &ValidationError{
			Type:     "Stale",
			Index:    "id",
			Message:  fmt.Sprintf("id %d: birth date changed after insertion", e.id),
			Position: pos,
		}
	}
	return nil
}
