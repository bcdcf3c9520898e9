package planner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/prepwise/backend/internal/logging"
	"github.com/prepwise/backend/internal/store"
)

// PreconditionError reports onboarding fields a user must complete before
// a plan can be generated.
type PreconditionError struct {
	MissingFields []string
}

func (e *PreconditionError) Error() string {
	return "profile incomplete: missing " + strings.Join(e.MissingFields, ", ")
}

// GenerateResult is the outcome of one plan generation.
type GenerateResult struct {
	Cycle         *store.Cycle
	TaskCount     int
	WeakSkills    int
	DaysRemaining int
}

// Service generates study cycles from the caller's profile and current
// weak-skill picture.
type Service struct {
	store *store.Store
	log   *logging.Logger
	now   func() time.Time
}

// NewService creates a planner service.
func NewService(st *store.Store, log *logging.Logger) *Service {
	return &Service{
		store: st,
		log:   log.With("service", "planner"),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Generate computes and persists a new plan cycle for userID.
//
// The profile must carry both a package length and a daily time budget;
// otherwise a PreconditionError names every missing field. The cycle, its
// tasks, and the profile phase update share one transaction.
func (s *Service) Generate(ctx context.Context, userID string) (*GenerateResult, error) {
	profile, err := s.store.Repos().Profiles.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	var missing []string
	if profile == nil || profile.PackageLengthDays <= 0 {
		missing = append(missing, "package_length_days")
	}
	if profile == nil || profile.DailyMinutes <= 0 {
		missing = append(missing, "daily_minutes")
	}
	if len(missing) > 0 {
		return nil, &PreconditionError{MissingFields: missing}
	}

	daysRemaining := s.daysRemaining(profile)
	weakIDs, err := s.store.Repos().Skills.WeakSkillIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load weak skills: %w", err)
	}

	taskCount := TaskCountForBudget(profile.DailyMinutes)
	mix := AllocateTaskMix(taskCount, daysRemaining, len(weakIDs))

	expanded := mix.Expand()
	taskTypes := make([]string, len(expanded))
	for i, t := range expanded {
		taskTypes[i] = string(t)
	}

	var cycle *store.Cycle
	err = s.store.WithTx(ctx, func(r *store.Repos) error {
		cycle, err = r.Plans.CreateCycle(ctx, store.CycleData{
			UserID: userID,
			Counts: store.CycleCounts{
				FocusedDrill: mix.FocusedDrill,
				MixedDrill:   mix.MixedDrill,
				Mock:         mix.Mock,
				Flashcard:    mix.Flashcard,
				Review:       mix.Review,
			},
			TaskTypes:      taskTypes,
			DaysRemaining:  daysRemaining,
			WeakSkillCount: len(weakIDs),
		})
		if err != nil {
			return err
		}
		return r.Profiles.SetPhase(ctx, userID, "plan-active")
	})
	if err != nil {
		return nil, fmt.Errorf("persist plan: %w", err)
	}

	s.log.Info("plan generated",
		"user_id", userID,
		"task_count", taskCount,
		"days_remaining", daysRemaining,
		"weak_skills", len(weakIDs),
	)
	return &GenerateResult{
		Cycle:         cycle,
		TaskCount:     taskCount,
		WeakSkills:    len(weakIDs),
		DaysRemaining: daysRemaining,
	}, nil
}

// daysRemaining counts down from the package length. Before the package
// clock starts, the full length remains.
func (s *Service) daysRemaining(p *store.Profile) int {
	if p.PackageStartedAt == nil {
		return p.PackageLengthDays
	}
	elapsed := int(s.now().Sub(*p.PackageStartedAt).Hours() / 24)
	remaining := p.PackageLengthDays - elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}
