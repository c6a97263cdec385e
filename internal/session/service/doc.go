// Package service implements the roll resolution and effect lifecycle
// operations over a session aggregate.
//
// Every operation is a synchronous, total transformation: it either fully
// applies its mutations or leaves the aggregate untouched. Stale or unknown
// identifiers are silent no-ops rather than errors, because callers cannot
// distinguish a late-arriving request from a malicious one and both must be
// harmless.
package service
