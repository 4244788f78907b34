package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/calai/internal/error_values"
	"github.com/limbo/calai/pkg/entity"
)

type ProfilesRepository struct {
	conn PgConnection
}

func NewProfilesRepo(conn PgConnection) *ProfilesRepository {
	return &ProfilesRepository{
		conn: conn,
	}
}

func (pr *ProfilesRepository) GetByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	var p entity.Profile
	row := pr.conn.QueryRow(ctx, `SELECT id, user_id, gender, workout_frequency, calorie_goal, protein_goal, carbs_goal, fats_goal,
		current_weight, desired_weight, health_score, onboarding_complete, created_at, updated_at FROM user_profiles WHERE user_id = $1;`, userID)
	err := row.Scan(&p.ID, &p.UserID, &p.Gender, &p.WorkoutFrequency, &p.CalorieGoal, &p.ProteinGoal, &p.CarbsGoal, &p.FatsGoal,
		&p.CurrentWeight, &p.DesiredWeight, &p.HealthScore, &p.OnboardingComplete, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrProfileNotFound
		}
		return nil, errors.New("getting profile by user id error: " + err.Error())
	}
	return &p, nil
}

func (pr *ProfilesRepository) Upsert(ctx context.Context, profile *entity.Profile) error {
	if profile == nil {
		return errors.New("profile is nil")
	}
	row := pr.conn.QueryRow(ctx, `INSERT INTO user_profiles (user_id, gender, workout_frequency, calorie_goal, protein_goal, carbs_goal, fats_goal,
		current_weight, desired_weight, health_score, onboarding_complete)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (user_id) DO UPDATE SET gender = EXCLUDED.gender, workout_frequency = EXCLUDED.workout_frequency,
		calorie_goal = EXCLUDED.calorie_goal, protein_goal = EXCLUDED.protein_goal, carbs_goal = EXCLUDED.carbs_goal,
		fats_goal = EXCLUDED.fats_goal, current_weight = EXCLUDED.current_weight, desired_weight = EXCLUDED.desired_weight,
		health_score = EXCLUDED.health_score,
		onboarding_complete = user_profiles.onboarding_complete OR EXCLUDED.onboarding_complete, updated_at = NOW()
		RETURNING id, onboarding_complete, created_at, updated_at;`,
		profile.UserID,
		profile.Gender,
		profile.WorkoutFrequency,
		profile.CalorieGoal,
		profile.ProteinGoal,
		profile.CarbsGoal,
		profile.FatsGoal,
		profile.CurrentWeight,
		profile.DesiredWeight,
		profile.HealthScore,
		profile.OnboardingComplete,
	)
	if err := row.Scan(&profile.ID, &profile.OnboardingComplete, &profile.CreatedAt, &profile.UpdatedAt); err != nil {
		return errors.New("upserting profile error: " + err.Error())
	}
	return nil
}

func (pr *ProfilesRepository) SetOnboardingComplete(ctx context.Context, userID string) error {
	ct, err := pr.conn.Exec(ctx, `UPDATE user_profiles SET onboarding_complete = TRUE, updated_at = NOW() WHERE user_id = $1;`, userID)
	if err != nil {
		return errors.New("completing onboarding error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrProfileNotFound
	}
	return nil
}
