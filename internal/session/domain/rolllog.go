package domain

import (
	"time"

	"github.com/voidwatch/crewdeck/internal/tables"
)

// RollLogCap bounds the shared roll log. Appends beyond the cap evict the
// oldest entries first, across all crew members.
const RollLogCap = 200

// RollEvent is one immutable entry in the shared roll log. Every trigger
// appends exactly one, whether or not the outcome is ever applied.
type RollEvent struct {
	ID                string
	MemberID          string
	MemberName        string
	Table             tables.Type
	Die               int
	Stress            int
	Resolve           int
	Modifiers         int
	Total             int
	Seed              int64
	EntryID           string
	EntryLabel        string
	DuplicateAdjusted bool
	Timestamp         time.Time
}

// AppendRollEvent appends an entry to the roll log, evicting the oldest
// entries once the log exceeds RollLogCap.
func (s *Session) AppendRollEvent(event RollEvent) {
	s.RollLog = append(s.RollLog, event)
	if overflow := len(s.RollLog) - RollLogCap; overflow > 0 {
		s.RollLog = append(s.RollLog[:0], s.RollLog[overflow:]...)
	}
}
