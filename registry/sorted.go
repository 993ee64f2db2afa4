package registry

import (
	"slices"
	"sort"
)

// sortedIndex is a slice of entries kept strictly ordered by cmp.
// Every comparator breaks ties on ID, so no two entries compare equal.
type sortedIndex struct {
	entries []*entry
	cmp     func(a, b *entry) int
}

func newSortedIndex(capacity int, cmp func(a, b *entry) int) sortedIndex {
	return sortedIndex{
		entries: make([]*entry, 0, capacity),
		cmp:     cmp,
	}
}

// lowerBound returns the first position whose entry is >= probe.
func (s *sortedIndex) lowerBound(probe *entry) int {
	i, _ := slices.BinarySearchFunc(s.entries, probe, s.cmp)
	return i
}

// upperBound returns the first position whose entry is > probe.
func (s *sortedIndex) upperBound(probe *entry) int {
	return sort.Search(len(s.entries), func(i int) bool {
		return s.cmp(s.entries[i], probe) > 0
	})
}

// find returns the position of the entry comparing equal to probe.
func (s *sortedIndex) find(probe *entry) (int, bool) {
	return slices.BinarySearchFunc(s.entries, probe, s.cmp)
}

func (s *sortedIndex) insert(e *entry) {
	s.entries = slices.Insert(s.entries, s.lowerBound(e), e)
}

// remove deletes exactly e. It reports false if e is not at its sorted
// position, which only happens if its keys no longer match its placement.
func (s *sortedIndex) remove(e *entry) bool {
	i, ok := s.find(e)
	if !ok || s.entries[i] != e {
		return false
	}
	s.entries = slices.Delete(s.entries, i, i+1)
	return true
}

func (s *sortedIndex) len() int {
	return len(s.entries)
}

// span returns the entries in [from, to), or nil when the range is empty.
func (s *sortedIndex) span(from, to int) []*entry {
	if from >= to {
		return nil
	}
	return s.entries[from:to]
}
