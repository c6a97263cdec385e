package domain

import (
	"fmt"
	"strings"
	"time"

	crewdomain "github.com/voidwatch/crewdeck/internal/crew/domain"
	apperrors "github.com/voidwatch/crewdeck/internal/errors"
	"github.com/voidwatch/crewdeck/internal/id"
)

// ErrEmptyName indicates a missing session name.
var ErrEmptyName = apperrors.New(apperrors.CodeSessionEmptyName, "session name is required")

// Session aggregates the crew roster and the shared roll log for one game
// session. Crew members are independent of each other; the roll log is the
// only cross-member resource.
type Session struct {
	ID        string
	Name      string
	Crew      []crewdomain.CrewMember
	RollLog   []RollEvent
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateSessionInput describes the metadata needed to create a session.
type CreateSessionInput struct {
	Name string
}

// NewSession creates a session with a generated ID and timestamps.
func NewSession(input CreateSessionInput, now func() time.Time, idGenerator func() (string, error)) (Session, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return Session{}, ErrEmptyName
	}

	sessionID, err := idGenerator()
	if err != nil {
		return Session{}, fmt.Errorf("generate session id: %w", err)
	}

	createdAt := now().UTC()
	return Session{
		ID:        sessionID,
		Name:      input.Name,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}, nil
}

// Member returns a pointer to the crew member with the given id, or nil.
// The pointer aliases the aggregate's backing array so mutations stick.
func (s *Session) Member(memberID string) *crewdomain.CrewMember {
	if s == nil {
		return nil
	}
	for i := range s.Crew {
		if s.Crew[i].ID == memberID {
			return &s.Crew[i]
		}
	}
	return nil
}

// AddMember appends a crew member to the roster.
func (s *Session) AddMember(member crewdomain.CrewMember) {
	s.Crew = append(s.Crew, member)
}
