package tables

import (
	"fmt"

	apperrors "github.com/voidwatch/crewdeck/internal/errors"
)

// CoverageMin and CoverageMax bound the integer range every table must cover.
const (
	CoverageMin = -999
	CoverageMax = 999
)

// Severity bounds for table entries.
const (
	SeverityMin = 1
	SeverityMax = 5
)

// Validate checks the authoring invariants for a table: contiguous,
// non-overlapping ranges covering at least [CoverageMin, CoverageMax], unique
// ids, severity within bounds, a duration type present exactly when the entry
// is persistent, and apply options that reference real entries.
//
// These are the only fatal conditions in the engine; everything else at
// runtime is clamped or ignored.
func Validate(t Table) error {
	if !t.Type.Valid() {
		return apperrors.WithMetadata(apperrors.CodeTableUnknownType,
			fmt.Sprintf("unknown table type %q", t.Type),
			map[string]string{"Type": string(t.Type)})
	}
	if len(t.Entries) == 0 {
		return apperrors.WithMetadata(apperrors.CodeTableNoEntries,
			fmt.Sprintf("table %s has no entries", t.Type),
			map[string]string{"Table": string(t.Type)})
	}

	if t.Entries[0].Min > CoverageMin {
		return coverageError(t, fmt.Sprintf("table %s starts at %d, must cover %d", t.Type, t.Entries[0].Min, CoverageMin))
	}
	if t.Entries[len(t.Entries)-1].Max < CoverageMax {
		return coverageError(t, fmt.Sprintf("table %s ends at %d, must cover %d", t.Type, t.Entries[len(t.Entries)-1].Max, CoverageMax))
	}

	seen := make(map[string]bool, len(t.Entries))
	for i, entry := range t.Entries {
		if entry.ID == "" {
			return entryError(t, entry, apperrors.CodeTableMalformedEntry, fmt.Sprintf("table %s entry %d has an empty id", t.Type, i))
		}
		if seen[entry.ID] {
			return entryError(t, entry, apperrors.CodeTableDuplicateID, fmt.Sprintf("table %s has duplicate entry id %s", t.Type, entry.ID))
		}
		seen[entry.ID] = true

		if entry.Min > entry.Max {
			return entryError(t, entry, apperrors.CodeTableMalformedEntry, fmt.Sprintf("table %s entry %s has inverted range [%d, %d]", t.Type, entry.ID, entry.Min, entry.Max))
		}
		if i > 0 && entry.Min != t.Entries[i-1].Max+1 {
			return coverageError(t, fmt.Sprintf("table %s has a gap or overlap between %s and %s", t.Type, t.Entries[i-1].ID, entry.ID))
		}
		if entry.Severity < SeverityMin || entry.Severity > SeverityMax {
			return entryError(t, entry, apperrors.CodeTableMalformedEntry, fmt.Sprintf("table %s entry %s has severity %d outside [%d, %d]", t.Type, entry.ID, entry.Severity, SeverityMin, SeverityMax))
		}
		if entry.Persistent && !validDuration(entry.DurationType) {
			return entryError(t, entry, apperrors.CodeTableMalformedEntry, fmt.Sprintf("table %s persistent entry %s has invalid duration type %q", t.Type, entry.ID, entry.DurationType))
		}
		if !entry.Persistent && entry.DurationType != "" {
			return entryError(t, entry, apperrors.CodeTableMalformedEntry, fmt.Sprintf("table %s entry %s has a duration type but is not persistent", t.Type, entry.ID))
		}
	}

	// Apply options must reference entries that exist in the same table.
	for _, entry := range t.Entries {
		for _, option := range entry.ApplyOptions {
			if !seen[option.EntryID] {
				return entryError(t, entry, apperrors.CodeTableUnknownApplyOption, fmt.Sprintf("table %s entry %s references unknown apply option %s", t.Type, entry.ID, option.EntryID))
			}
		}
	}

	return nil
}

// ValidateAll validates both built-in tables.
func ValidateAll() error {
	if err := Validate(Stress()); err != nil {
		return err
	}
	return Validate(Panic())
}

func validDuration(d DurationType) bool {
	switch d {
	case DurationManual, DurationScene, DurationRound, DurationShift:
		return true
	default:
		return false
	}
}

func coverageError(t Table, message string) error {
	return apperrors.WithMetadata(apperrors.CodeTableCoverageGap, message,
		map[string]string{"Table": string(t.Type)})
}

func entryError(t Table, entry Entry, code apperrors.Code, message string) error {
	return apperrors.WithMetadata(code, message, map[string]string{
		"Table": string(t.Type),
		"Entry": entry.ID,
	})
}
