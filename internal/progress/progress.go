// Package progress tracks per-node mastery across a learning session and
// gates progression through the lesson plan.
//
// The tracker keeps an optimistic local cache for responsive reads and
// reconciles it against an authoritative store: local updates are applied
// immediately and pushed best-effort, and a bounded staleness window forces
// a resync where the authoritative value always wins.
package progress

import (
	"time"
)

// State is a node's position in the session lifecycle.
type State string

const (
	StateNotStarted State = "not_started"
	StateInProgress State = "in_progress"
	StateMastered   State = "mastered" // terminal for the node in this session
)

// Outcome is the learner-facing result of one activity.
type Outcome string

const (
	OutcomeCorrect   Outcome = "correct"
	OutcomeIncorrect Outcome = "incorrect"
	OutcomeTooEasy   Outcome = "too_easy"
	OutcomeConfused  Outcome = "confused"
)

// ValidOutcome reports whether o is a known outcome variant.
func ValidOutcome(o Outcome) bool {
	switch o {
	case OutcomeCorrect, OutcomeIncorrect, OutcomeTooEasy, OutcomeConfused:
		return true
	}
	return false
}

// ActivityEvent is one completion event from the lesson-delivery layer.
// EventID must be unique per logical event; replays of the same id are
// absorbed without double counting.
type ActivityEvent struct {
	EventID   string
	SessionID string
	NodeID    string
	Outcome   Outcome
	At        time.Time
}

// MasteryRecord is the per-(session, node) mastery state. Records are
// created when a node enters a session's active plan and are never
// deleted, only superseded by a new session.
type MasteryRecord struct {
	SessionID    string
	NodeID       string
	State        State
	MasteryLevel float64
	CompletedAt  *time.Time
	UpdatedAt    time.Time
}

// Summary aggregates session-level progress.
type Summary struct {
	SessionID          string
	TotalTopics        int
	CompletedTopics    int
	AverageMastery     float64
	ProgressPercentage float64

	// CourseComplete is true when every planned node is mastered.
	CourseComplete bool
}

// Config tunes the tracker.
type Config struct {
	// CompletionThreshold is the mastery level at which a node transitions
	// to mastered.
	CompletionThreshold float64

	// StalenessWindow bounds how long a cached record is served without an
	// authoritative resync.
	StalenessWindow time.Duration

	// SyncTimeout bounds each authoritative read or write so a slow store
	// never blocks the learner.
	SyncTimeout time.Duration

	// Signals maps each outcome to its mastery increment. Positive for
	// correct and too_easy; confusion dampens without erasing progress.
	Signals map[Outcome]float64
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		CompletionThreshold: 0.8,
		StalenessWindow:     5 * time.Minute,
		SyncTimeout:         3 * time.Second,
		Signals: map[Outcome]float64{
			OutcomeCorrect:   0.25,
			OutcomeTooEasy:   0.45,
			OutcomeIncorrect: 0,
			OutcomeConfused:  -0.10,
		},
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
