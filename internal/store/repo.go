package store

import (
	"context"
	"time"

	"github.com/prepwise/backend/ent"
	"github.com/prepwise/backend/internal/construct"
	"github.com/prepwise/backend/internal/mastery"
)

// Question is the content-store view of a practice item.
type Question struct {
	ID               string
	SkillID          string
	Difficulty       string
	CognitiveLevel   string
	AnswerFormat     string
	CorrectAnswer    string
	ConstructWeights map[string]float64
}

// AttemptData captures one scored submission for the append-only log.
type AttemptData struct {
	UserID           string
	QuestionID       string
	SkillID          string
	ContextType      string
	ContextID        string
	ModuleID         string
	SubmittedAnswer  string
	IsCorrect        bool
	TimeSpentSec     int
	ErrorTags        []string
	ConstructImpacts map[string]float64
}

// Attempt is a persisted attempt row.
type Attempt struct {
	AttemptData
	ID        string
	CreatedAt time.Time
}

// Profile holds the onboarding fields plan generation reads.
type Profile struct {
	UserID            string
	PackageLengthDays int
	DailyMinutes      int
	PackageStartedAt  *time.Time
	Phase             string
}

// CycleCounts is the per-type partition of a cycle's tasks.
type CycleCounts struct {
	FocusedDrill int
	MixedDrill   int
	Mock         int
	Flashcard    int
	Review       int
}

// CycleData is the input for persisting a generated plan cycle. TaskTypes
// is the ordered task list, one entry per task; its length must equal the
// sum of the counts.
type CycleData struct {
	UserID         string
	Counts         CycleCounts
	TaskTypes      []string
	DaysRemaining  int
	WeakSkillCount int
}

// Cycle is a persisted plan cycle with its tasks.
type Cycle struct {
	ID             string
	UserID         string
	TaskCount      int
	Counts         CycleCounts
	DaysRemaining  int
	WeakSkillCount int
	Status         string
	CreatedAt      time.Time
	Tasks          []Task
}

// Task is a persisted plan task.
type Task struct {
	ID          string
	CycleID     string
	UserID      string
	Type        string
	Sequence    int
	Status      string
	CompletedAt *time.Time
}

// QuestionRepo provides access to the question content store.
type QuestionRepo interface {
	// Create persists a question. A non-empty ID is honored; otherwise one
	// is generated.
	Create(ctx context.Context, q Question) (*Question, error)

	// Get returns the question, or nil if the id doesn't resolve.
	Get(ctx context.Context, id string) (*Question, error)
}

// AttemptRepo appends to and reads the attempt log.
type AttemptRepo interface {
	// Append inserts one attempt row. Rows are never updated.
	Append(ctx context.Context, data AttemptData) (*Attempt, error)

	// ListByUser returns a user's attempts, most recent first.
	ListByUser(ctx context.Context, userID string, limit int) ([]Attempt, error)
}

// SkillStateRepo manages the per-(user, skill) aggregates.
type SkillStateRepo interface {
	// Get returns the aggregate, or nil if the user has no attempts on
	// the skill yet.
	Get(ctx context.Context, userID, skillID string) (*mastery.SkillState, error)

	// Upsert writes the aggregate, creating the row on first attempt.
	Upsert(ctx context.Context, st mastery.SkillState) error

	// ListByUser returns all of a user's skill aggregates.
	ListByUser(ctx context.Context, userID string) ([]mastery.SkillState, error)

	// WeakSkillIDs returns the ids of skills currently at the weak level.
	WeakSkillIDs(ctx context.Context, userID string) ([]string, error)
}

// ConstructStateRepo manages the per-(user, construct) score rows.
type ConstructStateRepo interface {
	Get(ctx context.Context, userID, name string) (*construct.State, error)
	Upsert(ctx context.Context, st construct.State) error
	ListByUser(ctx context.Context, userID string) ([]construct.State, error)
}

// PlanRepo manages plan cycles and their tasks.
type PlanRepo interface {
	// CreateCycle persists a cycle and one task row per entry of TaskTypes.
	CreateCycle(ctx context.Context, data CycleData) (*Cycle, error)

	// LatestCycle returns the user's most recent cycle with tasks, or nil.
	LatestCycle(ctx context.Context, userID string) (*Cycle, error)

	// CompleteTask marks a task completed. Returns nil if the task does
	// not exist or belongs to another user.
	CompleteTask(ctx context.Context, userID, taskID string) (*Task, error)
}

// ProfileRepo manages the per-user study-package settings.
type ProfileRepo interface {
	// Get returns the profile, or nil if the user has none.
	Get(ctx context.Context, userID string) (*Profile, error)

	// Upsert writes the profile fields.
	Upsert(ctx context.Context, p Profile) error

	// SetPhase updates only the phase marker.
	SetPhase(ctx context.Context, userID, phase string) error
}

// Repos bundles all repositories over one client, which may be
// transactional (see Store.WithTx).
type Repos struct {
	Questions  QuestionRepo
	Attempts   AttemptRepo
	Skills     SkillStateRepo
	Constructs ConstructStateRepo
	Plans      PlanRepo
	Profiles   ProfileRepo
}

func newRepos(client *ent.Client) *Repos {
	return &Repos{
		Questions:  &questionRepo{client: client},
		Attempts:   &attemptRepo{client: client},
		Skills:     &skillStateRepo{client: client},
		Constructs: &constructStateRepo{client: client},
		Plans:      &planRepo{client: client},
		Profiles:   &profileRepo{client: client},
	}
}
