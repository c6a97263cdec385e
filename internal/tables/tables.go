package tables

// Type identifies which resolution table a roll is made against.
type Type string

const (
	// TypeStress is the stress resolution table.
	TypeStress Type = "stress"
	// TypePanic is the panic resolution table.
	TypePanic Type = "panic"
)

// Valid reports whether the table type is one of the known tables.
func (t Type) Valid() bool {
	return t == TypeStress || t == TypePanic
}

// DurationType describes how a persistent condition eventually ends.
type DurationType string

const (
	// DurationManual conditions last until someone clears them.
	DurationManual DurationType = "manual"
	// DurationScene conditions last until the end of the current scene.
	DurationScene DurationType = "scene"
	// DurationRound conditions last a number of rounds.
	DurationRound DurationType = "round"
	// DurationShift conditions last until the end of the work shift.
	DurationShift DurationType = "shift"
)

// ApplyOption is an alternate outcome the caller may choose at apply time
// instead of the entry that was rolled.
type ApplyOption struct {
	EntryID string
	Label   string
}

// Entry is one row of a resolution table. The [Min, Max] range is inclusive.
// DurationType and DurationValue are meaningful only when Persistent is set.
type Entry struct {
	Min           int
	Max           int
	ID            string
	Label         string
	Description   string
	Severity      int
	Persistent    bool
	DurationType  DurationType
	DurationValue int
	StressDelta   int
	ApplyOptions  []ApplyOption
}

// Table is an ordered collection of range-keyed entries.
type Table struct {
	Type    Type
	Entries []Entry
}

// ByType returns the table for the given type.
func ByType(t Type) (Table, bool) {
	switch t {
	case TypeStress:
		return Stress(), true
	case TypePanic:
		return Panic(), true
	default:
		return Table{}, false
	}
}

// ResolveByTotal returns the entry whose range contains total. Totals outside
// the covered range are clamped to the first or last entry, so the lookup
// cannot miss on a validated table.
func (t Table) ResolveByTotal(total int) Entry {
	if len(t.Entries) == 0 {
		return Entry{}
	}
	if total < t.Entries[0].Min {
		return t.Entries[0]
	}
	last := t.Entries[len(t.Entries)-1]
	if total > last.Max {
		return last
	}
	for _, entry := range t.Entries {
		if total >= entry.Min && total <= entry.Max {
			return entry
		}
	}
	// Unreachable on a validated table: ranges are contiguous.
	return last
}

// ResolveByID returns the entry with the given id. A missing id is an
// expected outcome for callers, not an error.
func (t Table) ResolveByID(id string) (Entry, bool) {
	for _, entry := range t.Entries {
		if entry.ID == id {
			return entry, true
		}
	}
	return Entry{}, false
}
