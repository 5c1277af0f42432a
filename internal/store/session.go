package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gapmapdev/gapmap/ent"
	"github.com/gapmapdev/gapmap/ent/sessionrecord"
	"github.com/gapmapdev/gapmap/internal/session"
)

// SessionRepo persists diagnostic sessions. The whole session state is
// stored as a JSON blob alongside queryable identity columns, so the
// engine can resume any session from its last persisted step.
type SessionRepo struct {
	client *ent.Client
}

// SaveSession upserts the session's full state.
func (r *SessionRepo) SaveSession(ctx context.Context, s *session.Session) error {
	state, err := sessionToMap(s)
	if err != nil {
		return fmt.Errorf("marshal session state: %w", err)
	}

	n, err := r.client.SessionRecord.Update().
		Where(sessionrecord.SessionID(s.ID)).
		SetPhase(string(s.Phase)).
		SetState(state).
		SetUpdatedAt(s.UpdatedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update session record: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.SessionRecord.Create().
		SetSessionID(s.ID).
		SetLearnerID(s.LearnerID).
		SetPhase(string(s.Phase)).
		SetState(state).
		SetUpdatedAt(s.UpdatedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create session record: %w", err)
	}
	return nil
}

// LoadSession restores a session by id, or a SessionNotFoundError for
// unknown ids.
func (r *SessionRepo) LoadSession(ctx context.Context, id string) (*session.Session, error) {
	row, err := r.client.SessionRecord.Query().
		Where(sessionrecord.SessionID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, &session.SessionNotFoundError{ID: id}
		}
		return nil, fmt.Errorf("query session record: %w", err)
	}
	return mapToSession(row.State)
}

// sessionToMap converts a session to map[string]any for ent JSON storage.
func sessionToMap(s *session.Session) (map[string]any, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// mapToSession converts a stored state blob back to a session.
func mapToSession(state map[string]any) (*session.Session, error) {
	b, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("marshal stored state: %w", err)
	}
	var s session.Session
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("unmarshal session state: %w", err)
	}
	return &s, nil
}
