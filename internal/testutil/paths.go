package testutil

// Test roster paths relative to the repository root.
// These constants should be used instead of hardcoding paths in test files.
const (
	// RosterCSV holds the reference roster (see ReferencePeople) as CSV.
	RosterCSV = "testdata/roster.csv"

	// RosterJSON holds the reference roster as JSON.
	RosterJSON = "testdata/roster.json"

	// RosterYAML holds the reference roster as YAML.
	RosterYAML = "testdata/roster.yaml"

	// RosterWindows1252 is a CSV roster encoded in Windows-1252 with
	// accented last names.
	RosterWindows1252 = "testdata/roster-cp1252.csv"

	// RosterDuplicates repeats IDs from the reference roster.
	RosterDuplicates = "testdata/roster-duplicates.csv"

	// RosterInvalid has a row with an impossible birth date.
	RosterInvalid = "testdata/roster-invalid.csv"
)
