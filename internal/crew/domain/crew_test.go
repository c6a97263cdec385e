package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/voidwatch/crewdeck/internal/tables"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
}

func fixedID() (string, error) {
	return "member-0001", nil
}

func TestNewCrewMember(t *testing.T) {
	member, err := NewCrewMember(CreateCrewMemberInput{Name: "  Ripley  ", Stress: 5, Resolve: 2}, fixedClock, fixedID)
	if err != nil {
		t.Fatalf("NewCrewMember() error: %v", err)
	}
	if member.ID != "member-0001" {
		t.Errorf("ID = %q", member.ID)
	}
	if member.Name != "Ripley" {
		t.Errorf("Name = %q, want trimmed", member.Name)
	}
	if member.Stress != 5 || member.Resolve != 2 {
		t.Errorf("vitals = (%d, %d), want (5, 2)", member.Stress, member.Resolve)
	}
	if !member.CreatedAt.Equal(fixedClock()) {
		t.Errorf("CreatedAt = %v", member.CreatedAt)
	}
}

func TestNewCrewMemberEmptyName(t *testing.T) {
	_, err := NewCrewMember(CreateCrewMemberInput{Name: "   "}, fixedClock, fixedID)
	if !errors.Is(err, ErrEmptyName) {
		t.Fatalf("NewCrewMember() error = %v, want ErrEmptyName", err)
	}
}

func TestNewCrewMemberClampsVitals(t *testing.T) {
	tests := []struct {
		name        string
		stress      int
		resolve     int
		wantStress  int
		wantResolve int
	}{
		{"above ceiling", 99, 99, 10, 10},
		{"below floor", -5, -5, 0, 0},
		{"in range", 7, 3, 7, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			member, err := NewCrewMember(CreateCrewMemberInput{Name: "Dallas", Stress: tt.stress, Resolve: tt.resolve}, fixedClock, fixedID)
			if err != nil {
				t.Fatalf("NewCrewMember() error: %v", err)
			}
			if member.Stress != tt.wantStress || member.Resolve != tt.wantResolve {
				t.Errorf("vitals = (%d, %d), want (%d, %d)", member.Stress, member.Resolve, tt.wantStress, tt.wantResolve)
			}
		})
	}
}

func TestClampModifier(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-50, -10},
		{-10, -10},
		{0, 0},
		{10, 10},
		{50, 10},
	}
	for _, tt := range tests {
		if got := ClampModifier(tt.in); got != tt.want {
			t.Errorf("ClampModifier(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestAdjustStressClamps(t *testing.T) {
	member := CrewMember{Stress: 9}

	before, after := member.AdjustStress(5)
	if before != 9 || after != 10 {
		t.Errorf("AdjustStress(+5) = (%d, %d), want (9, 10)", before, after)
	}

	before, after = member.AdjustStress(-20)
	if before != 10 || after != 0 {
		t.Errorf("AdjustStress(-20) = (%d, %d), want (10, 0)", before, after)
	}
}

func TestHasLiveEffect(t *testing.T) {
	clearedAt := fixedClock()
	member := CrewMember{
		ActiveEffects: []ActiveEffect{
			{ID: "eff-1", Type: "panic_flee"},
			{ID: "eff-2", Type: "panic_hide", ClearedAt: &clearedAt},
		},
	}

	if !member.HasLiveEffect("panic_flee") {
		t.Error("panic_flee should be live")
	}
	if member.HasLiveEffect("panic_hide") {
		t.Error("cleared panic_hide should not be live")
	}
	if member.HasLiveEffect("panic_scream") {
		t.Error("absent type should not be live")
	}

	var empty CrewMember
	if empty.HasLiveEffect("panic_flee") {
		t.Error("empty effect list should report no live effects")
	}

	var nilMember *CrewMember
	if nilMember.HasLiveEffect("panic_flee") {
		t.Error("nil member should report no live effects")
	}
}

func TestClearEffectIdempotent(t *testing.T) {
	member := CrewMember{
		ActiveEffects: []ActiveEffect{{ID: "eff-1", Type: "panic_flee"}},
	}

	if !member.ClearEffect("eff-1", fixedClock) {
		t.Fatal("ClearEffect should find eff-1")
	}
	firstClearedAt := member.ActiveEffects[0].ClearedAt
	if firstClearedAt == nil {
		t.Fatal("effect not stamped cleared")
	}

	later := func() time.Time { return fixedClock().Add(time.Hour) }
	if !member.ClearEffect("eff-1", later) {
		t.Fatal("repeat ClearEffect should still find eff-1")
	}
	if !member.ActiveEffects[0].ClearedAt.Equal(*firstClearedAt) {
		t.Error("repeat clear must not move ClearedAt")
	}

	if member.ClearEffect("eff-missing", fixedClock) {
		t.Error("unknown effect id should report not found")
	}
}

func TestLiveEffects(t *testing.T) {
	clearedAt := fixedClock()
	member := CrewMember{
		ActiveEffects: []ActiveEffect{
			{ID: "eff-1", Type: "a"},
			{ID: "eff-2", Type: "b", ClearedAt: &clearedAt},
			{ID: "eff-3", Type: "c"},
		},
	}
	live := member.LiveEffects()
	if len(live) != 2 {
		t.Fatalf("LiveEffects() = %d entries, want 2", len(live))
	}
	if live[0].ID != "eff-1" || live[1].ID != "eff-3" {
		t.Errorf("LiveEffects() order = %s, %s", live[0].ID, live[1].ID)
	}
}

func TestNewActiveEffect(t *testing.T) {
	entry := tables.Entry{
		ID: "panic_flee", Label: "Flee", Severity: 3,
		Persistent: true, DurationType: tables.DurationScene,
	}
	effect := NewActiveEffect(entry, "eff-9", fixedClock)
	if effect.Type != "panic_flee" || effect.Label != "Flee" || effect.Severity != 3 {
		t.Errorf("effect fields = %+v", effect)
	}
	if effect.DurationType != tables.DurationScene {
		t.Errorf("DurationType = %s", effect.DurationType)
	}
	if !effect.Live() {
		t.Error("new effect must be live")
	}
}
