package app

import (
	"testing"
)

// TestSessionAdvance verifies time accumulates as dt scaled by speed
func TestSessionAdvance(t *testing.T) {
	s := NewSessionWithPhase(100)

	if got := s.Time(); got != 100 {
		t.Errorf("fresh session Time() = %f, want phase 100", got)
	}

	s.Advance(0.5, 1.0)
	s.Advance(0.5, 2.0)
	if got := s.Time(); got != 101.5 {
		t.Errorf("Time() after advances = %f, want 101.5", got)
	}

	// Speed 0 freezes the animation without breaking continuity.
	s.Advance(10, 0)
	if got := s.Time(); got != 101.5 {
		t.Errorf("Time() after zero-speed advance = %f, want 101.5", got)
	}
}

// TestSessionRandomPhase verifies independent sessions start at
// different phases (collision odds are negligible)
func TestSessionRandomPhase(t *testing.T) {
	a := NewSession()
	b := NewSession()
	if a.Time() == b.Time() {
		t.Errorf("two sessions share phase %f; offsets should be random", a.Time())
	}
	if a.ID == b.ID || a.ID == "" {
		t.Errorf("session IDs should be unique and non-empty: %q, %q", a.ID, b.ID)
	}
}
