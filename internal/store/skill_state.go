package store

import (
	"context"
	"fmt"

	"github.com/prepwise/backend/ent"
	"github.com/prepwise/backend/ent/skillstate"
	"github.com/prepwise/backend/internal/mastery"
)

// skillStateRepo implements SkillStateRepo using the ent client.
type skillStateRepo struct {
	client *ent.Client
}

func (r *skillStateRepo) Get(ctx context.Context, userID, skillID string) (*mastery.SkillState, error) {
	row, err := r.client.SkillState.Query().
		Where(skillstate.UserID(userID), skillstate.SkillID(skillID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query skill state: %w", err)
	}
	st := entSkillStateToSkillState(row)
	return &st, nil
}

func (r *skillStateRepo) Upsert(ctx context.Context, st mastery.SkillState) error {
	row, err := r.client.SkillState.Query().
		Where(skillstate.UserID(st.UserID), skillstate.SkillID(st.SkillID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query skill state: %w", err)
	}

	if ent.IsNotFound(err) {
		_, err = r.client.SkillState.Create().
			SetUserID(st.UserID).
			SetSkillID(st.SkillID).
			SetAttemptCount(st.AttemptCount).
			SetCorrectCount(st.CorrectCount).
			SetAccuracy(st.Accuracy).
			SetTotalTimeSec(st.TotalTimeSec).
			SetAvgTimeSec(st.AvgTimeSec).
			SetMasteryLevel(string(st.Level)).
			SetLastAttemptedAt(st.LastAttemptedAt).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create skill state: %w", err)
		}
		return nil
	}

	_, err = r.client.SkillState.UpdateOneID(row.ID).
		SetAttemptCount(st.AttemptCount).
		SetCorrectCount(st.CorrectCount).
		SetAccuracy(st.Accuracy).
		SetTotalTimeSec(st.TotalTimeSec).
		SetAvgTimeSec(st.AvgTimeSec).
		SetMasteryLevel(string(st.Level)).
		SetLastAttemptedAt(st.LastAttemptedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update skill state: %w", err)
	}
	return nil
}

func (r *skillStateRepo) ListByUser(ctx context.Context, userID string) ([]mastery.SkillState, error) {
	rows, err := r.client.SkillState.Query().
		Where(skillstate.UserID(userID)).
		Order(ent.Asc(skillstate.FieldSkillID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query skill states: %w", err)
	}

	out := make([]mastery.SkillState, len(rows))
	for i, row := range rows {
		out[i] = entSkillStateToSkillState(row)
	}
	return out, nil
}

func (r *skillStateRepo) WeakSkillIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.client.SkillState.Query().
		Where(
			skillstate.UserID(userID),
			skillstate.MasteryLevel(string(mastery.LevelWeak)),
		).
		Order(ent.Asc(skillstate.FieldSkillID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query weak skills: %w", err)
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.SkillID
	}
	return ids, nil
}

func entSkillStateToSkillState(row *ent.SkillState) mastery.SkillState {
	st := mastery.SkillState{
		UserID:       row.UserID,
		SkillID:      row.SkillID,
		AttemptCount: row.AttemptCount,
		CorrectCount: row.CorrectCount,
		Accuracy:     row.Accuracy,
		TotalTimeSec: row.TotalTimeSec,
		AvgTimeSec:   row.AvgTimeSec,
		Level:        mastery.Level(row.MasteryLevel),
	}
	if row.LastAttemptedAt != nil {
		st.LastAttemptedAt = *row.LastAttemptedAt
	}
	return st
}
