package service

import (
	"context"

	crewdomain "github.com/voidwatch/crewdeck/internal/crew/domain"
	sessiondomain "github.com/voidwatch/crewdeck/internal/session/domain"
)

// Undo reverses whichever sub-mutations the member's live transaction
// recorded, independently: a created effect is soft-cleared (never deleted),
// the stress-duplicate increment is subtracted, and an applied stress delta
// is subtracted by exactly its recorded value. The transaction returns to
// "resolved but not applied"; the roll outcome display is retained.
//
// A stale transaction id or a transaction with nothing applied is a silent
// no-op.
func (s *Service) Undo(ctx context.Context, sess *sessiondomain.Session, memberID, transactionID string) (*crewdomain.CrewMember, error) {
	ctx, span := s.tracer.Start(ctx, "session.Undo")
	defer span.End()
	_ = ctx

	member := sess.Member(memberID)
	if member == nil {
		return nil, nil
	}
	transaction := member.LastRoll
	if transaction == nil || transaction.ID != transactionID {
		return member, nil
	}
	if !transaction.Applied && !transaction.StressDeltaApplied {
		return member, nil
	}

	if transaction.Applied {
		if transaction.AppliedEffectID != "" {
			member.ClearEffect(transaction.AppliedEffectID, s.now)
		}
		if transaction.AppliedStressDuplicate {
			member.AdjustStress(-1)
		}
		transaction.ResetApplied()
	}
	if transaction.StressDeltaApplied {
		member.AdjustStress(-transaction.StressDeltaAppliedValue)
		transaction.ResetStressDelta()
	}

	now := s.now().UTC()
	member.UpdatedAt = now
	sess.UpdatedAt = now

	return member, nil
}

// EffectClear soft-clears the named effect. If that effect is the one linked
// from the member's live transaction, the transaction's applied bookkeeping
// is reset exactly as Undo's effect branch would: an effect can be
// "un-applied" by clearing it directly, without calling Undo.
//
// An unknown member or effect id is a silent no-op. Clearing an
// already-cleared effect stays idempotent.
func (s *Service) EffectClear(ctx context.Context, sess *sessiondomain.Session, memberID, effectID string) (*crewdomain.CrewMember, error) {
	ctx, span := s.tracer.Start(ctx, "session.EffectClear")
	defer span.End()
	_ = ctx

	member := sess.Member(memberID)
	if member == nil {
		return nil, nil
	}
	if !member.ClearEffect(effectID, s.now) {
		return member, nil
	}

	if transaction := member.LastRoll; transaction != nil && transaction.Applied && transaction.AppliedEffectID == effectID {
		transaction.ResetApplied()
	}

	now := s.now().UTC()
	member.UpdatedAt = now
	sess.UpdatedAt = now

	return member, nil
}

// ClearRoll unconditionally discards the member's transaction, whatever its
// applied state. Effects are untouched.
func (s *Service) ClearRoll(ctx context.Context, sess *sessiondomain.Session, memberID string) (*crewdomain.CrewMember, error) {
	ctx, span := s.tracer.Start(ctx, "session.ClearRoll")
	defer span.End()
	_ = ctx

	member := sess.Member(memberID)
	if member == nil {
		return nil, nil
	}
	if member.LastRoll == nil {
		return member, nil
	}

	member.LastRoll = nil
	now := s.now().UTC()
	member.UpdatedAt = now
	sess.UpdatedAt = now

	return member, nil
}
