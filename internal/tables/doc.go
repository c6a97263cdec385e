// Package tables holds the static Stress and Panic resolution tables and the
// range lookup used to turn a roll total into a table entry.
//
// Tables are immutable shared data. Each table covers every integer in at
// least [-999, 999] with contiguous, non-overlapping ranges, so a lookup by
// total can never miss. Validate enforces these invariants at startup;
// violations indicate an authoring defect, not bad runtime input.
package tables
