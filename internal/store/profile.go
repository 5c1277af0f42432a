package store

import (
	"context"
	"fmt"

	"github.com/gapmapdev/gapmap/ent"
	"github.com/gapmapdev/gapmap/ent/profileversion"
	"github.com/gapmapdev/gapmap/internal/profile"
)

// ProfileRepo persists gap profiles as append-only version rows; the
// current profile is the highest version per learner. The unique
// (learner_id, version) index turns a stale read-modify-write into a
// constraint violation, surfaced as profile.ErrVersionConflict to drive
// the merger's optimistic retry loop.
type ProfileRepo struct {
	client *ent.Client
}

// LoadCurrent returns the learner's current profile, or
// profile.ErrNotFound when no version exists yet.
func (r *ProfileRepo) LoadCurrent(ctx context.Context, learnerID string) (*profile.Profile, error) {
	row, err := r.client.ProfileVersion.Query().
		Where(profileversion.LearnerID(learnerID)).
		Order(ent.Desc(profileversion.FieldVersion)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, profile.ErrNotFound
		}
		return nil, fmt.Errorf("query current profile: %w", err)
	}
	return rowToProfile(row), nil
}

// SaveAsCurrent appends p as the learner's new current version. The
// previous version is superseded, never deleted.
func (r *ProfileRepo) SaveAsCurrent(ctx context.Context, p *profile.Profile, expectedPriorVersion int) error {
	if p.Version != expectedPriorVersion+1 {
		return fmt.Errorf("profile version %d does not follow expected prior %d", p.Version, expectedPriorVersion)
	}

	_, err := r.client.ProfileVersion.Create().
		SetLearnerID(p.LearnerID).
		SetVersion(p.Version).
		SetTested(p.Tested).
		SetGap(p.Gap).
		SetMastered(p.Mastered).
		SetPrimaryGap(p.PrimaryGap).
		SetCascadeLabel(p.CascadeLabel).
		SetConfidence(p.Confidence).
		SetSource(string(p.Source)).
		SetUpdatedAt(p.UpdatedAt).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return profile.ErrVersionConflict
		}
		return fmt.Errorf("save profile version: %w", err)
	}
	return nil
}

// History returns the learner's profile versions, newest first. A limit
// of 0 returns all versions.
func (r *ProfileRepo) History(ctx context.Context, learnerID string, limit int) ([]*profile.Profile, error) {
	q := r.client.ProfileVersion.Query().
		Where(profileversion.LearnerID(learnerID)).
		Order(ent.Desc(profileversion.FieldVersion))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query profile history: %w", err)
	}

	out := make([]*profile.Profile, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowToProfile(row))
	}
	return out, nil
}

func rowToProfile(row *ent.ProfileVersion) *profile.Profile {
	return &profile.Profile{
		LearnerID:    row.LearnerID,
		Version:      row.Version,
		Tested:       row.Tested,
		Gap:          row.Gap,
		Mastered:     row.Mastered,
		PrimaryGap:   row.PrimaryGap,
		CascadeLabel: row.CascadeLabel,
		Confidence:   row.Confidence,
		Source:       profile.Source(row.Source),
		UpdatedAt:    row.UpdatedAt,
	}
}
