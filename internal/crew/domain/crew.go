package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/voidwatch/crewdeck/internal/errors"
	"github.com/voidwatch/crewdeck/internal/id"
)

// Vitals ranges. All numeric inputs are clamped into these ranges rather
// than rejected; callers cannot be trusted to pre-validate.
const (
	StressMin   = 0
	StressMax   = 10
	ResolveMin  = 0
	ResolveMax  = 10
	ModifierMin = -10
	ModifierMax = 10
)

// ErrEmptyName indicates a missing crew member name.
var ErrEmptyName = apperrors.New(apperrors.CodeCrewEmptyName, "crew member name is required")

// CrewMember is one tracked crew member: vitals, the active effect ledger,
// and the most recent roll transaction. A member owns its effects and its
// transaction exclusively.
type CrewMember struct {
	ID            string
	Name          string
	Stress        int
	Resolve       int
	ActiveEffects []ActiveEffect
	LastRoll      *RollTransaction
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CreateCrewMemberInput describes the data needed to create a crew member.
type CreateCrewMemberInput struct {
	Name    string
	Stress  int
	Resolve int
}

// NewCrewMember creates a crew member with a generated ID and timestamps.
// Vitals are clamped into their valid ranges.
func NewCrewMember(input CreateCrewMemberInput, now func() time.Time, idGenerator func() (string, error)) (CrewMember, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return CrewMember{}, ErrEmptyName
	}

	memberID, err := idGenerator()
	if err != nil {
		return CrewMember{}, fmt.Errorf("generate crew member id: %w", err)
	}

	createdAt := now().UTC()
	return CrewMember{
		ID:        memberID,
		Name:      input.Name,
		Stress:    ClampStress(input.Stress),
		Resolve:   ClampResolve(input.Resolve),
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}, nil
}

// ClampStress coerces a stress value into [StressMin, StressMax].
func ClampStress(v int) int {
	return clamp(v, StressMin, StressMax)
}

// ClampResolve coerces a resolve value into [ResolveMin, ResolveMax].
func ClampResolve(v int) int {
	return clamp(v, ResolveMin, ResolveMax)
}

// ClampModifier coerces a roll modifier into [ModifierMin, ModifierMax].
func ClampModifier(v int) int {
	return clamp(v, ModifierMin, ModifierMax)
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// AdjustStress applies a signed delta to the member's stress, clamped.
// It returns the values before and after the adjustment.
func (c *CrewMember) AdjustStress(delta int) (before, after int) {
	before = c.Stress
	c.Stress = ClampStress(c.Stress + delta)
	return before, c.Stress
}

// HasLiveEffect reports whether any effect of the given type is still live.
// A nil or missing effect list is treated as empty.
func (c *CrewMember) HasLiveEffect(effectType string) bool {
	if c == nil {
		return false
	}
	for _, effect := range c.ActiveEffects {
		if effect.Type == effectType && effect.Live() {
			return true
		}
	}
	return false
}

// EffectByID returns the effect with the given id.
func (c *CrewMember) EffectByID(effectID string) (ActiveEffect, bool) {
	if c == nil {
		return ActiveEffect{}, false
	}
	for _, effect := range c.ActiveEffects {
		if effect.ID == effectID {
			return effect, true
		}
	}
	return ActiveEffect{}, false
}

// ClearEffect soft-deletes the effect with the given id. Clearing is one-way
// and idempotent: an already-cleared effect stays cleared. It reports whether
// an effect with that id exists at all.
func (c *CrewMember) ClearEffect(effectID string, now func() time.Time) bool {
	if c == nil {
		return false
	}
	if now == nil {
		now = time.Now
	}
	for i := range c.ActiveEffects {
		if c.ActiveEffects[i].ID != effectID {
			continue
		}
		if c.ActiveEffects[i].ClearedAt == nil {
			clearedAt := now().UTC()
			c.ActiveEffects[i].ClearedAt = &clearedAt
		}
		return true
	}
	return false
}

// LiveEffects returns the effects that have not been cleared.
func (c *CrewMember) LiveEffects() []ActiveEffect {
	if c == nil {
		return nil
	}
	var live []ActiveEffect
	for _, effect := range c.ActiveEffects {
		if effect.Live() {
			live = append(live, effect)
		}
	}
	return live
}
