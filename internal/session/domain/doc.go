// Package domain holds the session aggregate: the crew roster and the shared
// roll log.
//
// The aggregate is passed explicitly into every engine operation; the engine
// itself keeps no module-level state. One mutation runs to completion before
// the next is considered, so the aggregate needs no internal locking.
package domain
