package tables

import (
	"errors"
	"testing"

	apperrors "github.com/voidwatch/crewdeck/internal/errors"
)

func TestValidateBuiltinTables(t *testing.T) {
	if err := ValidateAll(); err != nil {
		t.Fatalf("built-in tables invalid: %v", err)
	}
}

func validTestTable() Table {
	return Table{
		Type: TypeStress,
		Entries: []Entry{
			{Min: -999, Max: 0, ID: "calm", Label: "Calm", Severity: 1},
			{Min: 1, Max: 999, ID: "shaken", Label: "Shaken", Severity: 2, Persistent: true, DurationType: DurationScene},
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Table)
		wantCode apperrors.Code
	}{
		{
			name:   "valid table",
			mutate: func(*Table) {},
		},
		{
			name:     "unknown type",
			mutate:   func(tbl *Table) { tbl.Type = "dread" },
			wantCode: apperrors.CodeTableUnknownType,
		},
		{
			name:     "no entries",
			mutate:   func(tbl *Table) { tbl.Entries = nil },
			wantCode: apperrors.CodeTableNoEntries,
		},
		{
			name:     "starts too high",
			mutate:   func(tbl *Table) { tbl.Entries[0].Min = -500 },
			wantCode: apperrors.CodeTableCoverageGap,
		},
		{
			name:     "ends too low",
			mutate:   func(tbl *Table) { tbl.Entries[1].Max = 500 },
			wantCode: apperrors.CodeTableCoverageGap,
		},
		{
			name:     "gap between entries",
			mutate:   func(tbl *Table) { tbl.Entries[1].Min = 2 },
			wantCode: apperrors.CodeTableCoverageGap,
		},
		{
			name:     "overlapping entries",
			mutate:   func(tbl *Table) { tbl.Entries[1].Min = 0 },
			wantCode: apperrors.CodeTableCoverageGap,
		},
		{
			name:     "duplicate id",
			mutate:   func(tbl *Table) { tbl.Entries[1].ID = "calm" },
			wantCode: apperrors.CodeTableDuplicateID,
		},
		{
			name:     "empty id",
			mutate:   func(tbl *Table) { tbl.Entries[0].ID = "" },
			wantCode: apperrors.CodeTableMalformedEntry,
		},
		{
			name:     "severity out of range",
			mutate:   func(tbl *Table) { tbl.Entries[0].Severity = 6 },
			wantCode: apperrors.CodeTableMalformedEntry,
		},
		{
			name:     "persistent without duration",
			mutate:   func(tbl *Table) { tbl.Entries[1].DurationType = "" },
			wantCode: apperrors.CodeTableMalformedEntry,
		},
		{
			name:     "duration without persistent",
			mutate:   func(tbl *Table) { tbl.Entries[0].DurationType = DurationScene },
			wantCode: apperrors.CodeTableMalformedEntry,
		},
		{
			name: "unknown apply option",
			mutate: func(tbl *Table) {
				tbl.Entries[0].ApplyOptions = []ApplyOption{{EntryID: "missing", Label: "Missing"}}
			},
			wantCode: apperrors.CodeTableUnknownApplyOption,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := validTestTable()
			tt.mutate(&table)
			err := Validate(table)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			var appErr *apperrors.Error
			if !errors.As(err, &appErr) {
				t.Fatalf("Validate() error type %T, want *errors.Error", err)
			}
			if appErr.Code != tt.wantCode {
				t.Errorf("Validate() code = %s, want %s", appErr.Code, tt.wantCode)
			}
		})
	}
}
