package roster

const (
	// ============================================================================
	// Column Names
	// ============================================================================

	// ColumnID is the CSV header (and JSON/YAML key) for the person ID.
	ColumnID = "id"

	// ColumnFirstName is the CSV header for the first name.
	ColumnFirstName = "first_name"

	// ColumnLastName is the CSV header for the last name.
	ColumnLastName = "last_name"

	// ColumnBirthDate is the CSV header for the birth date.
	ColumnBirthDate = "birth_date"

	// DateLayout is the birth date layout in every format.
	DateLayout = "2006-01-02"

	// ============================================================================
	// Sizes
	// ============================================================================

	// InitialRecordCapacity is the estimated number of records for pre-allocation
	InitialRecordCapacity = 256

	// YAMLIndent is the indentation used when writing YAML rosters.
	YAMLIndent = 2
)

// Header is the CSV header row written by Write.
var Header = []string{ColumnID, ColumnFirstName, ColumnLastName, ColumnBirthDate}

// UTF8BOM is the byte order mark for UTF-8; some spreadsheet exports start with it.
const UTF8BOM = "\uFEFF"
