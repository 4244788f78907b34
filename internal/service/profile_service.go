package service

import (
	"context"
	"errors"
	"log"

	errorvalues "github.com/limbo/calai/internal/error_values"
	"github.com/limbo/calai/internal/repository"
	"github.com/limbo/calai/pkg/entity"
)

type ProfileService struct {
	repo repository.ProfilesRepositoryI
}

func NewProfileService(profilesRepo repository.ProfilesRepositoryI) *ProfileService {
	if profilesRepo == nil {
		log.Fatal("provided nil profilesRepo")
	}
	return &ProfileService{
		repo: profilesRepo,
	}
}

func (ps *ProfileService) GetProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	p, err := ps.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return nil, err
		}
		return nil, errors.New("profiles repository error: " + err.Error())
	}
	return p, nil
}

// UpsertProfile creates the profile or overwrites an existing one. A completed
// onboarding is never reset by an update.
func (ps *ProfileService) UpsertProfile(ctx context.Context, userID string, req *ProfileRequest) (*entity.Profile, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	p := entity.Profile{
		UserID:             userID,
		Gender:             req.Gender,
		WorkoutFrequency:   req.WorkoutFrequency,
		CalorieGoal:        req.CalorieGoal,
		ProteinGoal:        req.ProteinGoal,
		CarbsGoal:          req.CarbsGoal,
		FatsGoal:           req.FatsGoal,
		CurrentWeight:      req.CurrentWeight,
		DesiredWeight:      req.DesiredWeight,
		HealthScore:        req.HealthScore,
		OnboardingComplete: req.OnboardingComplete,
	}
	if err := ps.repo.Upsert(ctx, &p); err != nil {
		return nil, errors.New("profiles repository error: " + err.Error())
	}
	return &p, nil
}

// CompleteOnboarding flags the profile, creating one with default goals if the
// user skipped the goals step.
func (ps *ProfileService) CompleteOnboarding(ctx context.Context, userID string) (*entity.Profile, error) {
	err := ps.repo.SetOnboardingComplete(ctx, userID)
	switch {
	case err == nil:
		return ps.GetProfile(ctx, userID)
	case errors.Is(err, errorvalues.ErrProfileNotFound):
		p := entity.Profile{
			UserID:             userID,
			CalorieGoal:        entity.DefaultGoals.Calories,
			ProteinGoal:        entity.DefaultGoals.Protein,
			CarbsGoal:          entity.DefaultGoals.Carbs,
			FatsGoal:           entity.DefaultGoals.Fat,
			OnboardingComplete: true,
		}
		if err := ps.repo.Upsert(ctx, &p); err != nil {
			return nil, errors.New("profiles repository error: " + err.Error())
		}
		return &p, nil
	}
	return nil, errors.New("profiles repository error: " + err.Error())
}

func (ps *ProfileService) Goals(ctx context.Context, userID string) (entity.Goals, error) {
	return loadGoals(ctx, ps.repo, userID)
}

// loadGoals falls back to entity.DefaultGoals for users without a profile.
func loadGoals(ctx context.Context, repo repository.ProfilesRepositoryI, userID string) (entity.Goals, error) {
	p, err := repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return entity.DefaultGoals, nil
		}
		return entity.Goals{}, errors.New("profiles repository error: " + err.Error())
	}
	return p.Goals(), nil
}
