package store

import (
	"context"
	"fmt"

	"github.com/prepwise/backend/ent"
	"github.com/prepwise/backend/ent/userprofile"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Get(ctx context.Context, userID string) (*Profile, error) {
	row, err := r.client.UserProfile.Query().
		Where(userprofile.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}
	return entProfileToProfile(row), nil
}

func (r *profileRepo) Upsert(ctx context.Context, p Profile) error {
	row, err := r.client.UserProfile.Query().
		Where(userprofile.UserID(p.UserID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query profile: %w", err)
	}

	if ent.IsNotFound(err) {
		builder := r.client.UserProfile.Create().
			SetUserID(p.UserID).
			SetPackageLengthDays(p.PackageLengthDays).
			SetDailyMinutes(p.DailyMinutes)
		if p.Phase != "" {
			builder = builder.SetPhase(p.Phase)
		}
		if p.PackageStartedAt != nil {
			builder = builder.SetPackageStartedAt(*p.PackageStartedAt)
		}
		if _, err := builder.Save(ctx); err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		return nil
	}

	builder := r.client.UserProfile.UpdateOneID(row.ID).
		SetPackageLengthDays(p.PackageLengthDays).
		SetDailyMinutes(p.DailyMinutes)
	if p.Phase != "" {
		builder = builder.SetPhase(p.Phase)
	}
	if p.PackageStartedAt != nil {
		builder = builder.SetPackageStartedAt(*p.PackageStartedAt)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

func (r *profileRepo) SetPhase(ctx context.Context, userID, phase string) error {
	n, err := r.client.UserProfile.Update().
		Where(userprofile.UserID(userID)).
		SetPhase(phase).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set phase: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("set phase: no profile for user %s", userID)
	}
	return nil
}

func entProfileToProfile(row *ent.UserProfile) *Profile {
	return &Profile{
		UserID:            row.UserID,
		PackageLengthDays: row.PackageLengthDays,
		DailyMinutes:      row.DailyMinutes,
		PackageStartedAt:  row.PackageStartedAt,
		Phase:             row.Phase,
	}
}
