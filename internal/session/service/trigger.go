package service

import (
	"context"
	"fmt"

	crewdomain "github.com/voidwatch/crewdeck/internal/crew/domain"
	apperrors "github.com/voidwatch/crewdeck/internal/errors"
	sessiondomain "github.com/voidwatch/crewdeck/internal/session/domain"
	"github.com/voidwatch/crewdeck/internal/tables"
)

// duplicateScanLimit bounds the forward scan when a panic result duplicates a
// live condition.
const duplicateScanLimit = 25

// Trigger rolls on the given table for a crew member and installs a fresh
// pending transaction, discarding any previous one. It appends an immutable
// entry to the session roll log and returns the mutated member and the log
// entry.
//
// An unknown member or table type is a silent no-op returning (nil, nil, nil).
// Stress, resolve and modifiers are clamped, never rejected.
func (s *Service) Trigger(ctx context.Context, sess *sessiondomain.Session, memberID string, table tables.Type, modifiers int) (*crewdomain.CrewMember, *sessiondomain.RollEvent, error) {
	ctx, span := s.tracer.Start(ctx, "session.Trigger")
	defer span.End()
	_ = ctx

	member := sess.Member(memberID)
	if member == nil {
		return nil, nil, nil
	}
	tbl, ok := tables.ByType(table)
	if !ok {
		return nil, nil, nil
	}

	seed, err := s.seedFunc()
	if err != nil {
		return nil, nil, apperrors.Wrap(apperrors.CodeSeedGeneration, "generate roll seed", err)
	}
	die := s.dieFunc(seed)

	// Normalize vitals in place; persisted state is never trusted either.
	member.Stress = crewdomain.ClampStress(member.Stress)
	member.Resolve = crewdomain.ClampResolve(member.Resolve)
	modifiers = crewdomain.ClampModifier(modifiers)

	total := die + member.Stress - member.Resolve + modifiers

	raw := tbl.ResolveByTotal(total)
	resolved := raw
	duplicateAdjusted := false
	duplicateNote := ""

	// Panic duplicates escalate at roll time: scan forward for the first
	// entry with a different id. The adopted entry is not re-checked against
	// other live duplicates; this matches the table ritual as played.
	if table == tables.TypePanic && raw.Persistent && member.HasLiveEffect(raw.ID) {
		for step := 1; step <= duplicateScanLimit; step++ {
			candidate := tbl.ResolveByTotal(total + step)
			if candidate.ID != raw.ID {
				resolved = candidate
				duplicateAdjusted = true
				duplicateNote = fmt.Sprintf("%s is already affecting %s; escalated to %s", raw.Label, member.Name, candidate.Label)
				break
			}
		}
	}

	transactionID, err := s.newID()
	if err != nil {
		return nil, nil, apperrors.Wrap(apperrors.CodeIDGeneration, "generate transaction id", err)
	}
	eventID, err := s.newID()
	if err != nil {
		return nil, nil, apperrors.Wrap(apperrors.CodeIDGeneration, "generate roll event id", err)
	}

	now := s.now().UTC()
	transaction := &crewdomain.RollTransaction{
		ID:               transactionID,
		Table:            table,
		Die:              die,
		Stress:           member.Stress,
		Resolve:          member.Resolve,
		Modifiers:        modifiers,
		Total:            total,
		Seed:             seed,
		EntryID:          resolved.ID,
		EntryLabel:       resolved.Label,
		EntryDescription: resolved.Description,
		StressDelta:      resolved.StressDelta,
		ApplyOptions:     validOptions(tbl, resolved.ApplyOptions),
		CreatedAt:        now,
	}
	if duplicateAdjusted {
		transaction.DuplicateAdjusted = true
		transaction.DuplicateFromID = raw.ID
		transaction.DuplicateFromLabel = raw.Label
		transaction.DuplicateNote = duplicateNote
	}

	member.LastRoll = transaction
	member.UpdatedAt = now

	event := sessiondomain.RollEvent{
		ID:                eventID,
		MemberID:          member.ID,
		MemberName:        member.Name,
		Table:             table,
		Die:               die,
		Stress:            member.Stress,
		Resolve:           member.Resolve,
		Modifiers:         modifiers,
		Total:             total,
		Seed:              seed,
		EntryID:           resolved.ID,
		EntryLabel:        resolved.Label,
		DuplicateAdjusted: duplicateAdjusted,
		Timestamp:         now,
	}
	sess.AppendRollEvent(event)
	sess.UpdatedAt = now

	return member, &event, nil
}

// validOptions re-resolves alternate outcomes against the live table and
// drops any that no longer resolve.
func validOptions(tbl tables.Table, options []tables.ApplyOption) []tables.ApplyOption {
	if len(options) == 0 {
		return nil
	}
	valid := make([]tables.ApplyOption, 0, len(options))
	for _, option := range options {
		if _, ok := tbl.ResolveByID(option.EntryID); ok {
			valid = append(valid, option)
		}
	}
	if len(valid) == 0 {
		return nil
	}
	return valid
}
