package service

import (
	"context"

	crewdomain "github.com/voidwatch/crewdeck/internal/crew/domain"
	apperrors "github.com/voidwatch/crewdeck/internal/errors"
	sessiondomain "github.com/voidwatch/crewdeck/internal/session/domain"
	"github.com/voidwatch/crewdeck/internal/tables"
)

// Apply applies the resolved outcome of the member's live transaction.
//
// A chosenEntryID is honored only when it is one of the transaction's
// validated alternate outcomes; otherwise the base resolved entry is used.
// On the stress table, applying a persistent entry whose condition is already
// live diverts to a +1 stress adjustment instead of creating a second live
// effect. The transaction records the entry actually used so Undo can reverse
// exactly what happened.
//
// Unknown member, stale transaction id, already-applied transactions, and
// entries that no longer resolve are silent no-ops.
func (s *Service) Apply(ctx context.Context, sess *sessiondomain.Session, memberID, transactionID, chosenEntryID string) (*crewdomain.CrewMember, error) {
	ctx, span := s.tracer.Start(ctx, "session.Apply")
	defer span.End()
	_ = ctx

	member := sess.Member(memberID)
	if member == nil {
		return nil, nil
	}
	transaction := member.LastRoll
	if transaction == nil || transaction.ID != transactionID || transaction.Applied {
		return member, nil
	}

	tbl, ok := tables.ByType(transaction.Table)
	if !ok {
		return member, nil
	}
	entry, ok := tbl.ResolveByID(transaction.EntryID)
	if !ok {
		return member, nil
	}
	if transaction.HasOption(chosenEntryID) {
		if chosen, found := tbl.ResolveByID(chosenEntryID); found {
			entry = chosen
		}
	}

	now := s.now().UTC()

	switch {
	case transaction.Table == tables.TypeStress && entry.Persistent && member.HasLiveEffect(entry.ID):
		// Stress duplicate: no second live effect, the pressure ratchets up
		// by one instead.
		member.AdjustStress(1)
		transaction.AppliedStressDuplicate = true
		transaction.AppliedEffectID = ""
	case entry.Persistent:
		effectID, err := s.newID()
		if err != nil {
			return nil, apperrors.Wrap(apperrors.CodeIDGeneration, "generate effect id", err)
		}
		effect := crewdomain.NewActiveEffect(entry, effectID, s.now)
		member.ActiveEffects = append(member.ActiveEffects, effect)
		transaction.AppliedEffectID = effectID
	default:
		// One-time outcome: nothing standing to record beyond the stamp.
	}

	transaction.Applied = true
	transaction.AppliedEntryID = entry.ID
	transaction.AppliedEntryLabel = entry.Label
	transaction.AppliedEntryDescription = entry.Description
	transaction.AppliedStressDelta = entry.StressDelta
	member.UpdatedAt = now
	sess.UpdatedAt = now

	return member, nil
}

// ApplyStressDelta applies the resolved entry's stress delta to the member.
// It is independent of Apply and may run before, after, or without it. If
// Apply already ran, the delta of the entry actually applied wins. A zero
// delta, a stale transaction id, or a repeat call is a silent no-op.
func (s *Service) ApplyStressDelta(ctx context.Context, sess *sessiondomain.Session, memberID, transactionID string) (*crewdomain.CrewMember, error) {
	ctx, span := s.tracer.Start(ctx, "session.ApplyStressDelta")
	defer span.End()
	_ = ctx

	member := sess.Member(memberID)
	if member == nil {
		return nil, nil
	}
	transaction := member.LastRoll
	if transaction == nil || transaction.ID != transactionID || transaction.StressDeltaApplied {
		return member, nil
	}

	delta := transaction.StressDelta
	if transaction.Applied {
		delta = transaction.AppliedStressDelta
	}
	if delta == 0 {
		return member, nil
	}

	member.AdjustStress(delta)
	transaction.StressDeltaApplied = true
	transaction.StressDeltaAppliedValue = delta

	now := s.now().UTC()
	member.UpdatedAt = now
	sess.UpdatedAt = now

	return member, nil
}
