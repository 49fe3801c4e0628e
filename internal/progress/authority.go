package progress

import (
	"context"
	"errors"
	"sync"
)

// ErrRecordNotFound is returned by an Authority when no record exists for
// the requested (session, node) pair.
var ErrRecordNotFound = errors.New("mastery record not found")

// Authority is the durable store for mastery records. The tracker treats
// it as the single source of truth during reconciliation; the sqlite store
// provides the production implementation.
type Authority interface {
	Get(ctx context.Context, sessionID, nodeID string) (*MasteryRecord, error)
	Put(ctx context.Context, rec *MasteryRecord) error
	List(ctx context.Context, sessionID string) ([]*MasteryRecord, error)
}

// MemoryAuthority is an in-memory Authority for tests and dry runs.
type MemoryAuthority struct {
	mu      sync.Mutex
	records map[string]MasteryRecord

	// FailPuts makes every Put fail, simulating a store outage.
	FailPuts bool
	// FailGets makes every Get/List fail.
	FailGets bool

	puts int
}

// NewMemoryAuthority creates an empty MemoryAuthority.
func NewMemoryAuthority() *MemoryAuthority {
	return &MemoryAuthority{records: make(map[string]MasteryRecord)}
}

func memKey(sessionID, nodeID string) string {
	return sessionID + "\x00" + nodeID
}

func (m *MemoryAuthority) Get(_ context.Context, sessionID, nodeID string) (*MasteryRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailGets {
		return nil, errors.New("authority unavailable")
	}
	rec, ok := m.records[memKey(sessionID, nodeID)]
	if !ok {
		return nil, ErrRecordNotFound
	}
	out := rec
	return &out, nil
}

func (m *MemoryAuthority) Put(_ context.Context, rec *MasteryRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailPuts {
		return errors.New("authority unavailable")
	}
	m.records[memKey(rec.SessionID, rec.NodeID)] = *rec
	m.puts++
	return nil
}

func (m *MemoryAuthority) List(_ context.Context, sessionID string) ([]*MasteryRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailGets {
		return nil, errors.New("authority unavailable")
	}
	var out []*MasteryRecord
	for _, rec := range m.records {
		if rec.SessionID == sessionID {
			r := rec
			out = append(out, &r)
		}
	}
	return out, nil
}

// PutCount returns how many Puts succeeded.
func (m *MemoryAuthority) PutCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.puts
}

// Set seeds a record directly, bypassing the tracker. Used by tests to
// simulate authoritative writes from elsewhere.
func (m *MemoryAuthority) Set(rec MasteryRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[memKey(rec.SessionID, rec.NodeID)] = rec
}
