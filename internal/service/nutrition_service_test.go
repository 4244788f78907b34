package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	errorvalues "github.com/limbo/calai/internal/error_values"
	"github.com/limbo/calai/internal/nutrition"
	"github.com/limbo/calai/internal/repository/mocks"
	"github.com/limbo/calai/internal/service"
	"github.com/limbo/calai/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func meal(d int, slot entity.MealSlot, calories, protein float64) entity.Meal {
	return entity.Meal{UserID: userID, Date: day(d), Slot: slot, Name: string(slot), Calories: calories, Protein: protein}
}

func TestDailySummary(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	mealsRepo := mocks.NewMockMealsRepositoryI(ctrl)
	profilesRepo := mocks.NewMockProfilesRepositoryI(ctrl)
	serv := service.NewNutritionService(mealsRepo, profilesRepo)
	ctx := context.Background()

	t.Run("totals against profile goals", func(t *testing.T) {
		meals := []entity.Meal{
			meal(10, entity.SlotBreakfast, 500, 30),
			meal(10, entity.SlotSnack, 100, 2),
			meal(10, entity.SlotSnacks, 150, 3),
		}
		mealsRepo.EXPECT().GetByUserAndDate(gomock.Any(), userID, day(10), entity.MealSlot("")).Return(meals, nil)
		profilesRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(&entity.Profile{
			UserID: userID, CalorieGoal: 2000, ProteinGoal: 30, CarbsGoal: 200, FatsGoal: 60,
		}, nil)
		s, err := serv.Daily(ctx, userID, day(10))
		require.NoError(t, err)
		assert.Equal(t, 750.0, s.Totals.Calories)
		assert.Equal(t, 250.0, s.Slots.Snack)
		assert.Equal(t, 500.0, s.Slots.Breakfast)
		assert.Equal(t, 2000.0, s.Goals.Calories)
		assert.Equal(t, 1250.0, s.Progress.Calories.Remaining)
		assert.Equal(t, 100.0, s.Progress.Protein.Percent)
		assert.Equal(t, 0.0, s.Progress.Protein.Remaining)
		assert.Len(t, s.Meals, 3)
	})
	t.Run("empty day uses default goals", func(t *testing.T) {
		mealsRepo.EXPECT().GetByUserAndDate(gomock.Any(), userID, day(11), entity.MealSlot("")).Return([]entity.Meal{}, nil)
		profilesRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(nil, errorvalues.ErrProfileNotFound)
		s, err := serv.Daily(ctx, userID, day(11))
		require.NoError(t, err)
		assert.Equal(t, 0.0, s.Totals.Calories)
		assert.Equal(t, entity.DefaultGoals, s.Goals)
		assert.Equal(t, 1910.0, s.Progress.Calories.Remaining)
	})
	t.Run("profile store error", func(t *testing.T) {
		mealsRepo.EXPECT().GetByUserAndDate(gomock.Any(), userID, day(12), entity.MealSlot("")).Return([]entity.Meal{}, nil)
		profilesRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(nil, errors.New("db error"))
		_, err := serv.Daily(ctx, userID, day(12))
		assert.Error(t, err)
	})
}

func TestRangeSummary(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	mealsRepo := mocks.NewMockMealsRepositoryI(ctrl)
	profilesRepo := mocks.NewMockProfilesRepositoryI(ctrl)
	serv := service.NewNutritionService(mealsRepo, profilesRepo)
	ctx := context.Background()
	today := time.Date(2025, 3, 10, 21, 30, 0, 0, time.UTC)

	t.Run("weekly window is sparse and ascending", func(t *testing.T) {
		meals := []entity.Meal{
			meal(4, entity.SlotLunch, 600, 0),
			meal(4, entity.SlotDinner, 400, 0),
			meal(9, entity.SlotDinner, 800, 0),
		}
		mealsRepo.EXPECT().GetByUserAndDateRange(gomock.Any(), userID, day(4), day(10)).Return(meals, nil)
		profilesRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(nil, errorvalues.ErrProfileNotFound)
		s, err := serv.Range(ctx, userID, 7, today)
		require.NoError(t, err)
		assert.Equal(t, day(4), s.From)
		assert.Equal(t, day(10), s.To)
		require.Len(t, s.Days, 2)
		assert.Equal(t, day(4), s.Days[0].Date)
		assert.Equal(t, 1000.0, s.Days[0].Totals.Calories)
		assert.Equal(t, day(9), s.Days[1].Date)
		assert.Equal(t, 900.0, s.Average.Calories)
	})
	t.Run("empty window averages to zero", func(t *testing.T) {
		mealsRepo.EXPECT().GetByUserAndDateRange(gomock.Any(), userID, day(10).AddDate(0, 0, -29), day(10)).Return([]entity.Meal{}, nil)
		profilesRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(nil, errorvalues.ErrProfileNotFound)
		s, err := serv.Range(ctx, userID, 30, today)
		require.NoError(t, err)
		assert.Empty(t, s.Days)
		assert.Equal(t, nutrition.Totals{}, s.Average)
	})
	t.Run("invalid window", func(t *testing.T) {
		_, err := serv.Range(ctx, userID, 0, today)
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("store error", func(t *testing.T) {
		mealsRepo.EXPECT().GetByUserAndDateRange(gomock.Any(), userID, gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
		_, err := serv.Range(ctx, userID, 7, today)
		assert.Error(t, err)
	})
}

func TestCalendarSummary(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	mealsRepo := mocks.NewMockMealsRepositoryI(ctrl)
	profilesRepo := mocks.NewMockProfilesRepositoryI(ctrl)
	serv := service.NewNutritionService(mealsRepo, profilesRepo)
	ctx := context.Background()

	t.Run("statuses against goal", func(t *testing.T) {
		meals := []entity.Meal{
			meal(1, entity.SlotLunch, 1000, 0),
			meal(2, entity.SlotLunch, 2000, 0),
			meal(3, entity.SlotLunch, 2500, 0),
		}
		mealsRepo.EXPECT().GetByUserAndDateRange(gomock.Any(), userID, day(1), day(31)).Return(meals, nil)
		profilesRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(&entity.Profile{CalorieGoal: 2000, ProteinGoal: 1, CarbsGoal: 1, FatsGoal: 1}, nil)
		s, err := serv.Calendar(ctx, userID, time.March, 2025)
		require.NoError(t, err)
		require.Len(t, s.Days, 3)
		assert.Equal(t, nutrition.StatusUnder, s.Days[0].Status)
		assert.Equal(t, nutrition.StatusOnTrack, s.Days[1].Status)
		assert.Equal(t, nutrition.StatusOver, s.Days[2].Status)
		assert.Equal(t, 2000.0, s.CalorieGoal)
	})
	t.Run("invalid month", func(t *testing.T) {
		_, err := serv.Calendar(ctx, userID, 13, 2025)
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
}
