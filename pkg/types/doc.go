// Package types defines the record types shared by the registry, the
// citizens facade, and the roster codec.
//
// A Person is identified solely by its ID. FirstName is a display field and
// may change at any time; LastName and BirthDate feed registry indexes and
// must not change once the person has been added to a registry.
//
// Ages are never stored. They are derived from BirthDate relative to an
// explicit as-of date so that callers (and tests) control "today".
package types
