package types

// ============================================================================
// Record Limits
// ============================================================================
// These limits bound the size of person records accepted from roster files.
// They are enforced by Validate, not by the registry itself.

const (
	// MaxNameLen is the maximum length of a first or last name in bytes.
	MaxNameLen = 255

	// MinBirthYear is the earliest birth year accepted by Validate.
	MinBirthYear = 1800

	// MaxBirthYear is the latest birth year accepted by Validate.
	MaxBirthYear = 9999
)
