package store

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/atlas/internal/knowledge"
	"github.com/abhisek/atlas/internal/sequence"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit int   // max results (0 = unlimited)
	After int64 // sequence > After
}

// LLMCallData captures one model API call.
type LLMCallData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMCall is a persisted LLM call event.
type LLMCall struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMCallData
}

// PurposeUsage aggregates token usage per purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// ActivityData captures one applied learning-activity outcome.
type ActivityData struct {
	EventID      string
	SessionID    string
	NodeID       string
	Outcome      string
	MasteryAfter float64
	StateAfter   string
}

// Activity is a persisted activity event.
type Activity struct {
	Sequence  int64
	Timestamp time.Time
	ActivityData
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	// AppendLLMCall records a model API call.
	AppendLLMCall(ctx context.Context, data LLMCallData) error

	// QueryLLMCalls returns calls in descending sequence order.
	QueryLLMCalls(ctx context.Context, opts QueryOpts) ([]LLMCall, error)

	// LLMUsageByPurpose aggregates usage grouped by purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// AppendActivity records an applied activity outcome.
	AppendActivity(ctx context.Context, data ActivityData) error

	// ActivityHistory returns a session's activity in ascending
	// sequence order, suitable for replay.
	ActivityHistory(ctx context.Context, sessionID string) ([]Activity, error)
}

// Session is a learner session row.
type Session struct {
	SessionID string
	Goal      string
	Status    string
	Profile   map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Session pipeline stages.
const (
	StatusIngested = "ingested"
	StatusRefined  = "refined"
	StatusPlanned  = "planned"
	StatusActive   = "active"
	StatusComplete = "complete"
)

// SessionRepo manages session rows.
type SessionRepo interface {
	Create(ctx context.Context, sessionID, goal string) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	List(ctx context.Context) ([]*Session, error)
	SetStatus(ctx context.Context, sessionID, status string) error
	SetProfile(ctx context.Context, sessionID string, profile map[string]any) error

	// Reset deletes the session and everything derived from it:
	// graph documents, plans, mastery records and activity events.
	Reset(ctx context.Context, sessionID string) error
}

// GraphMeta describes a stored graph document.
type GraphMeta struct {
	NodeCount int
	EdgeCount int
	MaxDepth  int
	Model     string
	CreatedAt time.Time
}

// GraphRepo persists validated knowledge graphs.
type GraphRepo interface {
	// Save stores a new graph document for the session.
	Save(ctx context.Context, sessionID string, g *knowledge.Graph, model string) error

	// Latest returns the most recent graph for the session, or
	// ErrNotFound if none exists.
	Latest(ctx context.Context, sessionID string) (*knowledge.Graph, *GraphMeta, error)
}

// PlanRepo persists sequenced lesson plans.
type PlanRepo interface {
	// Save stores a new plan for the session along with the node ids
	// dropped during refinement.
	Save(ctx context.Context, sessionID string, plan *sequence.Plan, dropped []string) error

	// Latest returns the most recent plan for the session, or
	// ErrNotFound if none exists.
	Latest(ctx context.Context, sessionID string) (*sequence.Plan, []string, error)
}
