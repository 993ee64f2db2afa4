// Package registry provides an in-memory citizen registry with three
// mutually consistent ordered indexes.
//
// # Overview
//
// A Registry holds every Person three times over, once per ordering:
//
//   - by ID:        ascending ID
//   - by last name: ascending (case-folded last name, ID)
//   - by age:       ascending (age key, ID)
//
// The three indexes share one handle per person, so each person's payload
// is stored once no matter how many indexes reference it. Every index is a
// sorted slice. Lookups and range boundaries are found by binary search in
// O(log n); inserts and removals pay an O(n) shift per index.
//
// # Age Keys
//
// Age changes with the calendar, so it cannot be an index key directly.
// The age index is instead keyed on the negated birth date ordinal
// (year*10000 + month*100 + day), computed once at insertion. Ascending age
// key is descending birth date, which is ascending age on any given day.
//
// An age range query converts its two age bounds into age keys for the
// query date using the same ordinal rule and binary-searches for them:
//
//	from := lowerBound(boundary(asOf, minAge))   // first person aged >= minAge
//	to   := lowerBound(boundary(asOf, maxAge+1)) // first person aged >  maxAge
//
// Only the two boundaries are derived at query time. Stored keys never move.
//
// # Case Sensitivity
//
// Last names are case-folded with golang.org/x/text/cases before storage
// and before lookup, so "Johnson", "JOHNSON" and "johnson" form one group.
// Within a group, entries are ordered by ID.
//
// # Results
//
// Slice-returning methods (AllByID, FindByAge, ...) return freshly allocated
// slices; callers may keep and modify them. The iterator methods (ByID,
// ByAge, ByLastName) walk internal storage without copying and must not be
// used across a mutation.
//
// # Concurrency
//
// A Registry is not safe for concurrent use. Callers that share one must
// serialize every call, or use pkg/citizens.Directory, which does so.
//
// # Contract
//
// LastName and BirthDate of a Person must not change after Add. Doing so
// leaves the indexes stale; Verify reports it but nothing repairs it.
package registry
