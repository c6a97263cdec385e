package domain

import (
	"time"

	"github.com/voidwatch/crewdeck/internal/tables"
)

// RollTransaction is the per-member record of the most recent roll and its
// apply/undo state. A member holds at most one transaction at a time; a new
// trigger discards the previous one unconditionally.
//
// Apply and ApplyStressDelta are two independent reversible sub-mutations,
// modeled as orthogonal flag+payload pairs rather than a single state enum,
// because their forward and reverse operations may interleave in any order.
type RollTransaction struct {
	ID    string
	Table tables.Type

	// Roll arithmetic inputs and result.
	Die       int
	Stress    int
	Resolve   int
	Modifiers int
	Total     int
	Seed      int64

	// Resolved entry after duplicate policy.
	EntryID          string
	EntryLabel       string
	EntryDescription string
	StressDelta      int

	// Duplicate-escalation metadata, set when the panic table diverted the
	// raw result to a different entry.
	DuplicateAdjusted  bool
	DuplicateFromID    string
	DuplicateFromLabel string
	DuplicateNote      string

	// Alternate outcomes, re-validated against the live table at trigger.
	ApplyOptions []tables.ApplyOption

	// Apply sub-mutation state. AppliedEntry* fields record the entry
	// actually used, which may differ from the one shown at roll time.
	Applied                 bool
	AppliedEntryID          string
	AppliedEntryLabel       string
	AppliedEntryDescription string
	AppliedStressDelta      int
	AppliedEffectID         string
	AppliedStressDuplicate  bool

	// ApplyStressDelta sub-mutation state.
	StressDeltaApplied      bool
	StressDeltaAppliedValue int

	CreatedAt time.Time
}

// HasOption reports whether entryID is one of the transaction's validated
// alternate outcomes.
func (t *RollTransaction) HasOption(entryID string) bool {
	if t == nil || entryID == "" {
		return false
	}
	for _, option := range t.ApplyOptions {
		if option.EntryID == entryID {
			return true
		}
	}
	return false
}

// ResetApplied reverts the Apply sub-mutation bookkeeping, returning the
// transaction to "resolved but not applied". The roll outcome display fields
// are retained.
func (t *RollTransaction) ResetApplied() {
	t.Applied = false
	t.AppliedEntryID = ""
	t.AppliedEntryLabel = ""
	t.AppliedEntryDescription = ""
	t.AppliedStressDelta = 0
	t.AppliedEffectID = ""
	t.AppliedStressDuplicate = false
}

// ResetStressDelta reverts the ApplyStressDelta sub-mutation bookkeeping.
func (t *RollTransaction) ResetStressDelta() {
	t.StressDeltaApplied = false
	t.StressDeltaAppliedValue = 0
}
