// Package profile carries per-node prior confidence signals produced by
// the profile-analysis collaborator (CV / document analysis). Signals seed
// mastery likelihoods before refinement; stale signals downgrade the run
// instead of failing it.
package profile

import (
	"encoding/json"
	"fmt"
	"time"
)

// DefaultTTL is how long collected signals are considered fresh.
const DefaultTTL = 24 * time.Hour

// StaleProfileError indicates refinement was requested with missing or
// expired profile signals. Callers fall back to each node's own extraction
// prior with no propagation cap and flag the result low confidence.
type StaleProfileError struct {
	Reason      string
	CollectedAt time.Time
}

func (e *StaleProfileError) Error() string {
	if e.CollectedAt.IsZero() {
		return fmt.Sprintf("stale profile: %s", e.Reason)
	}
	return fmt.Sprintf("stale profile: %s (collected %s)", e.Reason, e.CollectedAt.Format(time.RFC3339))
}

// Signals accumulates per-node confidence contributions. A node may
// receive several contributions (one per analyzed document); its prior is
// their mean.
type Signals struct {
	sessionID   string
	collectedAt time.Time
	ttl         time.Duration

	sums   map[string]float64
	counts map[string]int
}

// New creates an empty signal set collected at the given time.
func New(sessionID string, collectedAt time.Time, ttl time.Duration) *Signals {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Signals{
		sessionID:   sessionID,
		collectedAt: collectedAt,
		ttl:         ttl,
		sums:        make(map[string]float64),
		counts:      make(map[string]int),
	}
}

// SessionID returns the session the signals were collected for.
func (s *Signals) SessionID() string {
	return s.sessionID
}

// Observe adds one confidence contribution (clamped to [0, 1]) for a node.
func (s *Signals) Observe(nodeID string, confidence float64) {
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	s.sums[nodeID] += confidence
	s.counts[nodeID]++
}

// Priors returns the mean contribution per node.
func (s *Signals) Priors() map[string]float64 {
	out := make(map[string]float64, len(s.sums))
	for id, sum := range s.sums {
		out[id] = sum / float64(s.counts[id])
	}
	return out
}

// Len returns the number of nodes with at least one contribution.
func (s *Signals) Len() int {
	return len(s.sums)
}

// Fresh reports whether the signals are usable at the given time.
// It returns a *StaleProfileError when they are empty or expired.
func (s *Signals) Fresh(now time.Time) error {
	if s == nil || len(s.sums) == 0 {
		return &StaleProfileError{Reason: "no signals collected"}
	}
	if now.Sub(s.collectedAt) > s.ttl {
		return &StaleProfileError{Reason: "signals expired", CollectedAt: s.collectedAt}
	}
	return nil
}

// Wire format for the collaborator boundary.

type wireSignals struct {
	SessionID   string `json:"session_id"`
	CollectedAt string `json:"collected_at"`
	Signals     []struct {
		NodeID     string  `json:"node_id"`
		Confidence float64 `json:"confidence"`
	} `json:"signals"`
}

// Parse decodes a profile-signal document from the analysis collaborator.
func Parse(raw []byte) (*Signals, error) {
	var doc wireSignals
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode profile signals: %w", err)
	}
	collectedAt, err := time.Parse(time.RFC3339, doc.CollectedAt)
	if err != nil {
		return nil, fmt.Errorf("parse collected_at: %w", err)
	}

	s := New(doc.SessionID, collectedAt, DefaultTTL)
	for _, sig := range doc.Signals {
		if sig.NodeID == "" {
			return nil, fmt.Errorf("signal with empty node_id")
		}
		s.Observe(sig.NodeID, sig.Confidence)
	}
	return s, nil
}
