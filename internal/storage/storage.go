// Package storage defines the persistence interfaces consumed by the
// entrypoints. The engine core never touches storage; callers persist the
// mutated aggregate and roll events the core hands back.
package storage

import (
	"context"
	"errors"

	sessiondomain "github.com/voidwatch/crewdeck/internal/session/domain"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// SessionStore persists session aggregate snapshots.
type SessionStore interface {
	PutSession(ctx context.Context, session sessiondomain.Session) error
	GetSession(ctx context.Context, id string) (sessiondomain.Session, error)
}

// RollLogStore persists the shared roll log as a write-through copy of the
// in-memory FIFO.
type RollLogStore interface {
	AppendRollEvent(ctx context.Context, sessionID string, event sessiondomain.RollEvent) error
	ListRollEvents(ctx context.Context, sessionID string, limit int) ([]sessiondomain.RollEvent, error)
}
