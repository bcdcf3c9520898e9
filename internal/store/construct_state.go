package store

import (
	"context"
	"fmt"

	"github.com/prepwise/backend/ent"
	"github.com/prepwise/backend/ent/constructstate"
	"github.com/prepwise/backend/internal/construct"
)

// constructStateRepo implements ConstructStateRepo using the ent client.
type constructStateRepo struct {
	client *ent.Client
}

func (r *constructStateRepo) Get(ctx context.Context, userID, name string) (*construct.State, error) {
	row, err := r.client.ConstructState.Query().
		Where(constructstate.UserID(userID), constructstate.Construct(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query construct state: %w", err)
	}
	st := entConstructStateToState(row)
	return &st, nil
}

func (r *constructStateRepo) Upsert(ctx context.Context, st construct.State) error {
	row, err := r.client.ConstructState.Query().
		Where(constructstate.UserID(st.UserID), constructstate.Construct(st.Construct)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query construct state: %w", err)
	}

	if ent.IsNotFound(err) {
		_, err = r.client.ConstructState.Create().
			SetUserID(st.UserID).
			SetConstruct(st.Construct).
			SetScore(st.Score).
			SetConfidence(st.Confidence).
			SetTrend(string(st.Trend)).
			SetDataPoints(st.DataPoints).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create construct state: %w", err)
		}
		return nil
	}

	_, err = r.client.ConstructState.UpdateOneID(row.ID).
		SetScore(st.Score).
		SetConfidence(st.Confidence).
		SetTrend(string(st.Trend)).
		SetDataPoints(st.DataPoints).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update construct state: %w", err)
	}
	return nil
}

func (r *constructStateRepo) ListByUser(ctx context.Context, userID string) ([]construct.State, error) {
	rows, err := r.client.ConstructState.Query().
		Where(constructstate.UserID(userID)).
		Order(ent.Asc(constructstate.FieldConstruct)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query construct states: %w", err)
	}

	out := make([]construct.State, len(rows))
	for i, row := range rows {
		out[i] = entConstructStateToState(row)
	}
	return out, nil
}

func entConstructStateToState(row *ent.ConstructState) construct.State {
	return construct.State{
		UserID:     row.UserID,
		Construct:  row.Construct,
		Score:      row.Score,
		Confidence: row.Confidence,
		Trend:      construct.Trend(row.Trend),
		DataPoints: row.DataPoints,
	}
}
