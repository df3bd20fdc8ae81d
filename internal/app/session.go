package app

import (
	"math/rand"

	"github.com/google/uuid"
)

// Session holds the per-run animation clock. The phase offset is drawn
// once at session start so every run shows a different slice of the
// animation; after that the clock is fully deterministic in the dt/speed
// values fed to Advance.
type Session struct {
	// ID tags log lines from this run.
	ID string

	phase   float64
	elapsed float64
}

// NewSession creates a session with a random phase offset.
func NewSession() *Session {
	return &Session{
		ID:    uuid.NewString(),
		phase: rand.Float64() * 1000,
	}
}

// NewSessionWithPhase creates a session with a fixed phase, for tests.
func NewSessionWithPhase(phase float64) *Session {
	return &Session{ID: uuid.NewString(), phase: phase}
}

// Advance accumulates scaled wall-clock time. Integrating speed per tick
// keeps the animation continuous when the tuner changes speed mid-run.
func (s *Session) Advance(dt, speed float64) {
	s.elapsed += dt * speed
}

// Time returns the current animation time in seconds.
func (s *Session) Time() float64 {
	return s.phase + s.elapsed
}
