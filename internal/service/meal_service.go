package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/calai/internal/error_values"
	"github.com/limbo/calai/internal/repository"
	"github.com/limbo/calai/pkg/dateutil"
	"github.com/limbo/calai/pkg/entity"
	"github.com/limbo/calai/pkg/logger"
)

type AddMealResult struct {
	Meal     entity.Meal     `json:"meal"`
	Activity *ActivityResult `json:"streak,omitempty"`
}

type MealService struct {
	repo    repository.MealsRepositoryI
	streaks StreakServiceI
}

func NewMealService(mealsRepo repository.MealsRepositoryI, streaks StreakServiceI) *MealService {
	if mealsRepo == nil || streaks == nil {
		log.Fatal("on meal service provided nil dependencies")
	}
	return &MealService{
		repo:    mealsRepo,
		streaks: streaks,
	}
}

func (ms *MealService) AddMeal(ctx context.Context, userID string, req *MealRequest) (*AddMealResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	meal := req.toMeal()
	meal.UserID = userID
	if err := ms.repo.Create(ctx, &meal); err != nil {
		return nil, errors.New("meals repository error: " + err.Error())
	}
	res := &AddMealResult{Meal: meal}
	activity, err := ms.streaks.RecordActivity(ctx, userID, meal.Date)
	res.Activity = activity
	if errors.Is(err, errorvalues.ErrBadgeNotAwarded) {
		logger.FromContext(ctx).Warn("streak saved, badge award failed",
			slog.String("meal_id", meal.ID.String()),
			slog.String("error", err.Error()),
		)
		return res, err
	}
	if err != nil {
		logger.FromContext(ctx).Error("meal saved, streak update failed",
			slog.String("meal_id", meal.ID.String()),
			slog.String("error", err.Error()),
		)
		return res, errors.Join(errorvalues.ErrStreakNotSaved, err)
	}
	return res, nil
}

func (ms *MealService) GetMeals(ctx context.Context, userID string, date time.Time, slot entity.MealSlot) ([]entity.Meal, error) {
	if slot != "" && !slot.Valid() {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("unknown meal slot "+string(slot)))
	}
	meals, err := ms.repo.GetByUserAndDate(ctx, userID, dateutil.Day(date, time.UTC), slot)
	if err != nil {
		return nil, errors.New("meals repository error: " + err.Error())
	}
	return meals, nil
}

func (ms *MealService) UpdateMeal(ctx context.Context, id uuid.UUID, userID string, req *MealRequest) (*entity.Meal, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	existing, err := ms.ownedMeal(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	meal := req.toMeal()
	meal.ID = existing.ID
	meal.UserID = existing.UserID
	meal.CreatedAt = existing.CreatedAt
	if err := ms.repo.Update(ctx, &meal); err != nil {
		if errors.Is(err, errorvalues.ErrMealNotFound) {
			return nil, err
		}
		return nil, errors.New("meals repository error: " + err.Error())
	}
	return &meal, nil
}

func (ms *MealService) DeleteMeal(ctx context.Context, id uuid.UUID, userID string) error {
	if _, err := ms.ownedMeal(ctx, id, userID); err != nil {
		return err
	}
	err := ms.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMealNotFound) {
			return err
		}
		return errors.New("meals repository error: " + err.Error())
	}
	return nil
}

func (ms *MealService) ownedMeal(ctx context.Context, id uuid.UUID, userID string) (*entity.Meal, error) {
	meal, err := ms.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMealNotFound) {
			return nil, err
		}
		return nil, errors.New("meals repository error: " + err.Error())
	}
	if meal.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	return meal, nil
}

func (req *MealRequest) toMeal() entity.Meal {
	return entity.Meal{
		Date:            dateutil.Day(req.Date, time.UTC),
		Slot:            req.Slot,
		Name:            req.Name,
		Calories:        req.Calories,
		Protein:         req.Protein,
		Carbs:           req.Carbs,
		Fat:             req.Fat,
		Fiber:           req.Fiber,
		Sugar:           req.Sugar,
		Sodium:          req.Sodium,
		ConfidenceScore: req.ConfidenceScore,
		HealthScore:     req.HealthScore,
		ImageURL:        req.ImageURL,
	}
}
