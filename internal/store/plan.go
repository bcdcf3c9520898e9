package store

import (
	"context"
	"fmt"
	"time"

	"github.com/prepwise/backend/ent"
	"github.com/prepwise/backend/ent/plancycle"
	"github.com/prepwise/backend/ent/plantask"
)

// planRepo implements PlanRepo using the ent client.
type planRepo struct {
	client *ent.Client
}

func (r *planRepo) CreateCycle(ctx context.Context, data CycleData) (*Cycle, error) {
	row, err := r.client.PlanCycle.Create().
		SetUserID(data.UserID).
		SetTaskCount(len(data.TaskTypes)).
		SetFocusedDrillCount(data.Counts.FocusedDrill).
		SetMixedDrillCount(data.Counts.MixedDrill).
		SetMockCount(data.Counts.Mock).
		SetFlashcardCount(data.Counts.Flashcard).
		SetReviewCount(data.Counts.Review).
		SetDaysRemaining(data.DaysRemaining).
		SetWeakSkillCount(data.WeakSkillCount).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save plan cycle: %w", err)
	}

	cycle := entCycleToCycle(row)
	for i, taskType := range data.TaskTypes {
		taskRow, err := r.client.PlanTask.Create().
			SetCycleID(row.ID).
			SetUserID(data.UserID).
			SetTaskType(taskType).
			SetSequence(i + 1).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("save plan task %d: %w", i+1, err)
		}
		cycle.Tasks = append(cycle.Tasks, entTaskToTask(taskRow))
	}
	return cycle, nil
}

func (r *planRepo) LatestCycle(ctx context.Context, userID string) (*Cycle, error) {
	row, err := r.client.PlanCycle.Query().
		Where(plancycle.UserID(userID)).
		Order(ent.Desc(plancycle.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest cycle: %w", err)
	}

	cycle := entCycleToCycle(row)
	taskRows, err := r.client.PlanTask.Query().
		Where(plantask.CycleID(row.ID)).
		Order(ent.Asc(plantask.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query cycle tasks: %w", err)
	}
	for _, tr := range taskRows {
		cycle.Tasks = append(cycle.Tasks, entTaskToTask(tr))
	}
	return cycle, nil
}

func (r *planRepo) CompleteTask(ctx context.Context, userID, taskID string) (*Task, error) {
	row, err := r.client.PlanTask.Query().
		Where(plantask.ID(taskID), plantask.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query plan task: %w", err)
	}

	now := time.Now().UTC()
	updated, err := r.client.PlanTask.UpdateOneID(row.ID).
		SetStatus("completed").
		SetCompletedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("complete plan task: %w", err)
	}
	task := entTaskToTask(updated)
	return &task, nil
}

func entCycleToCycle(row *ent.PlanCycle) *Cycle {
	return &Cycle{
		ID:        row.ID,
		UserID:    row.UserID,
		TaskCount: row.TaskCount,
		Counts: CycleCounts{
			FocusedDrill: row.FocusedDrillCount,
			MixedDrill:   row.MixedDrillCount,
			Mock:         row.MockCount,
			Flashcard:    row.FlashcardCount,
			Review:       row.ReviewCount,
		},
		DaysRemaining:  row.DaysRemaining,
		WeakSkillCount: row.WeakSkillCount,
		Status:         row.Status,
		CreatedAt:      row.CreatedAt,
	}
}

func entTaskToTask(row *ent.PlanTask) Task {
	return Task{
		ID:          row.ID,
		CycleID:     row.CycleID,
		UserID:      row.UserID,
		Type:        row.TaskType,
		Sequence:    row.Sequence,
		Status:      row.Status,
		CompletedAt: row.CompletedAt,
	}
}
