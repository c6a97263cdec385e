package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Table authoring errors. These are the only fatal conditions in the
	// engine and are reported at startup validation time.
	CodeTableUnknownType       Code = "TABLE_UNKNOWN_TYPE"
	CodeTableNoEntries         Code = "TABLE_NO_ENTRIES"
	CodeTableCoverageGap       Code = "TABLE_COVERAGE_GAP"
	CodeTableDuplicateID       Code = "TABLE_DUPLICATE_ID"
	CodeTableMalformedEntry    Code = "TABLE_MALFORMED_ENTRY"
	CodeTableUnknownApplyOption Code = "TABLE_UNKNOWN_APPLY_OPTION"

	// Session errors
	CodeSessionEmptyName Code = "SESSION_EMPTY_NAME"

	// Crew errors
	CodeCrewEmptyName Code = "CREW_EMPTY_NAME"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"

	// Random/seed errors
	CodeSeedGeneration Code = "SEED_GENERATION_FAILED"

	// Identifier errors
	CodeIDGeneration Code = "ID_GENERATION_FAILED"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeSessionEmptyName,
		CodeCrewEmptyName:
		return codes.InvalidArgument

	// FailedPrecondition - authored configuration is unusable
	case CodeTableUnknownType,
		CodeTableNoEntries,
		CodeTableCoverageGap,
		CodeTableDuplicateID,
		CodeTableMalformedEntry,
		CodeTableUnknownApplyOption:
		return codes.FailedPrecondition

	// NotFound - missing records
	case CodeNotFound:
		return codes.NotFound

	// Internal - infrastructure failures
	case CodeSeedGeneration,
		CodeIDGeneration:
		return codes.Internal

	default:
		return codes.Internal
	}
}
