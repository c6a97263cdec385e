package domain

import (
	"time"

	"github.com/voidwatch/crewdeck/internal/tables"
)

// ActiveEffect is one standing condition created by applying a persistent
// table outcome. Effects are immutable except for ClearedAt.
type ActiveEffect struct {
	ID            string
	Type          string // id of the table entry that produced it
	Label         string
	Severity      int
	CreatedAt     time.Time
	DurationType  tables.DurationType
	DurationValue int
	ClearedAt     *time.Time
}

// Live reports whether the effect has not been cleared.
func (e ActiveEffect) Live() bool {
	return e.ClearedAt == nil
}

// NewActiveEffect creates a standing condition from a table entry.
func NewActiveEffect(entry tables.Entry, effectID string, now func() time.Time) ActiveEffect {
	if now == nil {
		now = time.Now
	}
	return ActiveEffect{
		ID:            effectID,
		Type:          entry.ID,
		Label:         entry.Label,
		Severity:      entry.Severity,
		CreatedAt:     now().UTC(),
		DurationType:  entry.DurationType,
		DurationValue: entry.DurationValue,
	}
}
