package profile

import (
	"errors"
	"testing"
	"time"
)

func TestSignals_PriorsAreMeans(t *testing.T) {
	s := New("s1", time.Now(), 0)
	s.Observe("a", 0.2)
	s.Observe("a", 0.6)
	s.Observe("b", 1.0)

	priors := s.Priors()
	if got := priors["a"]; got != 0.4 {
		t.Errorf("prior(a) = %g, want 0.4", got)
	}
	if got := priors["b"]; got != 1.0 {
		t.Errorf("prior(b) = %g, want 1.0", got)
	}
	if s.Len() != 2 {
		t.Errorf("len = %d, want 2", s.Len())
	}
}

func TestSignals_ObserveClamps(t *testing.T) {
	s := New("s1", time.Now(), 0)
	s.Observe("a", 1.7)
	s.Observe("b", -0.3)
	priors := s.Priors()
	if priors["a"] != 1 || priors["b"] != 0 {
		t.Errorf("priors = %v, want clamped to [0,1]", priors)
	}
}

func TestSignals_Fresh(t *testing.T) {
	now := time.Now()

	empty := New("s1", now, time.Hour)
	err := empty.Fresh(now)
	var stale *StaleProfileError
	if !errors.As(err, &stale) {
		t.Errorf("empty signals should be stale, got: %v", err)
	}

	s := New("s1", now, time.Hour)
	s.Observe("a", 0.5)
	if err := s.Fresh(now.Add(30 * time.Minute)); err != nil {
		t.Errorf("signals within TTL should be fresh, got: %v", err)
	}
	err = s.Fresh(now.Add(2 * time.Hour))
	if !errors.As(err, &stale) {
		t.Errorf("expired signals should be stale, got: %v", err)
	}
}

func TestParse(t *testing.T) {
	raw := `{
	  "session_id": "s1",
	  "collected_at": "2026-08-01T10:00:00Z",
	  "signals": [
	    {"node_id": "linear-algebra", "confidence": 0.8},
	    {"node_id": "linear-algebra", "confidence": 0.6},
	    {"node_id": "calculus", "confidence": 0.2}
	  ]
	}`

	s, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if s.SessionID() != "s1" {
		t.Errorf("session = %q", s.SessionID())
	}
	priors := s.Priors()
	if priors["linear-algebra"] != 0.7 {
		t.Errorf("prior = %g, want 0.7", priors["linear-algebra"])
	}
}

func TestParse_Rejects(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"bad json", `{`},
		{"bad timestamp", `{"session_id":"s1","collected_at":"yesterday","signals":[]}`},
		{"empty node id", `{"session_id":"s1","collected_at":"2026-08-01T10:00:00Z","signals":[{"node_id":"","confidence":0.5}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.raw)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
