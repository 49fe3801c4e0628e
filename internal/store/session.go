package store

import (
	"context"
	"fmt"

	"github.com/abhisek/atlas/ent"
	"github.com/abhisek/atlas/ent/activityevent"
	"github.com/abhisek/atlas/ent/knowledgegraphdoc"
	"github.com/abhisek/atlas/ent/lessonplandoc"
	"github.com/abhisek/atlas/ent/masteryrecord"
	"github.com/abhisek/atlas/ent/session"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Create(ctx context.Context, sessionID, goal string) error {
	_, err := r.client.Session.Create().
		SetSessionID(sessionID).
		SetGoal(goal).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("session %q already exists", sessionID)
		}
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Get(ctx context.Context, sessionID string) (*Session, error) {
	row, err := r.client.Session.Query().
		Where(session.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query session: %w", err)
	}
	return toSession(row), nil
}

func (r *sessionRepo) List(ctx context.Context) ([]*Session, error) {
	rows, err := r.client.Session.Query().
		Order(ent.Asc(session.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	out := make([]*Session, 0, len(rows))
	for _, row := range rows {
		out = append(out, toSession(row))
	}
	return out, nil
}

func (r *sessionRepo) SetStatus(ctx context.Context, sessionID, status string) error {
	n, err := r.client.Session.Update().
		Where(session.SessionID(sessionID)).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update session status: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *sessionRepo) SetProfile(ctx context.Context, sessionID string, profile map[string]any) error {
	n, err := r.client.Session.Update().
		Where(session.SessionID(sessionID)).
		SetProfile(profile).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update session profile: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *sessionRepo) Reset(ctx context.Context, sessionID string) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}

	steps := []func() error{
		func() error {
			_, err := tx.ActivityEvent.Delete().
				Where(activityevent.SessionID(sessionID)).Exec(ctx)
			return err
		},
		func() error {
			_, err := tx.MasteryRecord.Delete().
				Where(masteryrecord.SessionID(sessionID)).Exec(ctx)
			return err
		},
		func() error {
			_, err := tx.LessonPlanDoc.Delete().
				Where(lessonplandoc.SessionID(sessionID)).Exec(ctx)
			return err
		},
		func() error {
			_, err := tx.KnowledgeGraphDoc.Delete().
				Where(knowledgegraphdoc.SessionID(sessionID)).Exec(ctx)
			return err
		},
		func() error {
			_, err := tx.Session.Delete().
				Where(session.SessionID(sessionID)).Exec(ctx)
			return err
		},
	}

	for _, step := range steps {
		if err := step(); err != nil {
			tx.Rollback()
			return fmt.Errorf("reset session %q: %w", sessionID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reset: %w", err)
	}
	return nil
}

func toSession(row *ent.Session) *Session {
	return &Session{
		SessionID: row.SessionID,
		Goal:      row.Goal,
		Status:    row.Status,
		Profile:   row.Profile,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
