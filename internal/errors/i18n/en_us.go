package i18n

// Error codes must match the codes defined in internal/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeTableUnknownType        = "TABLE_UNKNOWN_TYPE"
	CodeTableNoEntries          = "TABLE_NO_ENTRIES"
	CodeTableCoverageGap        = "TABLE_COVERAGE_GAP"
	CodeTableDuplicateID        = "TABLE_DUPLICATE_ID"
	CodeTableMalformedEntry     = "TABLE_MALFORMED_ENTRY"
	CodeTableUnknownApplyOption = "TABLE_UNKNOWN_APPLY_OPTION"
	CodeSessionEmptyName        = "SESSION_EMPTY_NAME"
	CodeCrewEmptyName           = "CREW_EMPTY_NAME"
	CodeNotFound                = "NOT_FOUND"
	CodeSeedGeneration          = "SEED_GENERATION_FAILED"
	CodeIDGeneration            = "ID_GENERATION_FAILED"
)

var enUSCatalog = &Catalog{
	locale: "en-US",
	messages: map[Code]string{
		// Table authoring errors
		CodeTableUnknownType:        "Unknown resolution table {{.Type}}",
		CodeTableNoEntries:          "Resolution table {{.Table}} has no entries",
		CodeTableCoverageGap:        "Resolution table {{.Table}} does not cover every roll total",
		CodeTableDuplicateID:        "Resolution table {{.Table}} has a duplicate entry id {{.Entry}}",
		CodeTableMalformedEntry:     "Resolution table {{.Table}} entry {{.Entry}} is malformed",
		CodeTableUnknownApplyOption: "Resolution table {{.Table}} entry {{.Entry}} references an unknown alternate outcome",

		// Session errors
		CodeSessionEmptyName: "Session name cannot be empty",

		// Crew errors
		CodeCrewEmptyName: "Crew member name cannot be empty",

		// Storage errors
		CodeNotFound: "The requested record was not found",

		// Infrastructure errors
		CodeSeedGeneration: "Could not generate a dice seed",
		CodeIDGeneration:   "Could not generate an identifier",
	},
}
