package service

import (
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/voidwatch/crewdeck/internal/dice"
	"github.com/voidwatch/crewdeck/internal/id"
)

// tracerName identifies this package's spans.
const tracerName = "crewdeck/session"

// Service executes roll lifecycle operations against a session aggregate.
// It holds no session state of its own; the aggregate is supplied per call.
type Service struct {
	seedFunc func() (int64, error) // Generates per-roll random seeds.
	dieFunc  func(seed int64) int  // Maps a seed to a d6 face.
	now      func() time.Time
	newID    func() (string, error)
	tracer   trace.Tracer
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the service clock.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides the identifier generator.
func WithIDGenerator(newID func() (string, error)) Option {
	return func(s *Service) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// WithDieFunc overrides the seed-to-face mapping. Tests use this to force
// specific die faces.
func WithDieFunc(dieFunc func(seed int64) int) Option {
	return func(s *Service) {
		if dieFunc != nil {
			s.dieFunc = dieFunc
		}
	}
}

// NewService creates a configured service with a seed generator.
func NewService(seedFunc func() (int64, error), opts ...Option) *Service {
	s := &Service{
		seedFunc: seedFunc,
		dieFunc:  dice.RollD6,
		now:      time.Now,
		newID:    id.NewID,
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}
