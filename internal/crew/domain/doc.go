// Package domain holds the crew member aggregate: vitals, the active effect
// ledger, and the per-member roll transaction record.
//
// Effects use soft-delete semantics: clearing stamps ClearedAt and never
// removes the record, so history survives for audit and undo. A later
// identical outcome creates a new effect instance rather than resurrecting a
// cleared one.
package domain
