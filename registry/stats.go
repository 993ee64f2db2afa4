package registry

// estimatedBytesPerEntry approximates one shared handle: the entry struct
// plus one pointer slot in each of the three index slices.
const estimatedBytesPerEntry = 48 + 3*8

// Stats reports registry metrics.
type Stats struct {
	Count             int    // Number of registered people
	DistinctLastNames int    // Number of case-folded last-name groups
	BytesApprox       int    // Approximate index memory, excluding Person payloads
	Impl              string // Implementation name
}

// Stats computes registry statistics. It walks the last-name index once.
func (r *Registry) Stats() Stats {
	distinct := 0
	bytes := r.Len() * estimatedBytesPerEntry
	for i, e := range r.byLastName.entries {
		bytes += len(e.nameKey)
		if i == 0 || e.nameKey != r.byLastName.entries[i-1].nameKey {
			distinct++
		}
	}
	return Stats{
		Count:             r.Len(),
		DistinctLastNames: distinct,
		BytesApprox:       bytes,
		Impl:              "SortedSliceRegistry",
	}
}
