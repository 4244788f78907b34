package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/calai/internal/error_values"
	"github.com/limbo/calai/internal/repository/mocks"
	"github.com/limbo/calai/internal/service"
	svcmocks "github.com/limbo/calai/internal/service/mocks"
	"github.com/limbo/calai/internal/streak"
	"github.com/limbo/calai/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMealRequest() *service.MealRequest {
	return &service.MealRequest{
		Date:     day(10),
		Slot:     entity.SlotBreakfast,
		Name:     "Greek yogurt",
		Calories: 220,
		Protein:  18,
		Carbs:    12,
		Fat:      9,
	}
}

func TestAddMeal(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	mealsRepo := mocks.NewMockMealsRepositoryI(ctrl)
	streaks := svcmocks.NewMockStreakServiceI(ctrl)
	serv := service.NewMealService(mealsRepo, streaks)
	mealID := uuid.New()

	negative := validMealRequest()
	negative.Protein = -1
	badSlot := validMealRequest()
	badSlot.Slot = "Lunch"
	noDate := validMealRequest()
	noDate.Date = time.Time{}

	testCases := []struct {
		Desc         string
		Req          *service.MealRequest
		Error        error
		WantMeal     bool
		StreakSaved  bool
		MockPrepFunc func()
	}{
		{
			Desc:     "success records activity",
			Req:      validMealRequest(),
			WantMeal: true,
			MockPrepFunc: func() {
				mealsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m *entity.Meal) error {
					m.ID = mealID
					return nil
				})
				streaks.EXPECT().RecordActivity(gomock.Any(), userID, day(10)).Return(&service.ActivityResult{
					Outcome: streak.Started,
					Streak:  entity.Streak{UserID: userID, CurrentStreak: 1, LongestStreak: 1},
				}, nil)
			},
		},
		{
			Desc:         "negative nutrient",
			Req:          negative,
			Error:        errorvalues.ErrValidation,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "slot is case sensitive",
			Req:          badSlot,
			Error:        errorvalues.ErrValidation,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "date required",
			Req:          noDate,
			Error:        errorvalues.ErrValidation,
			MockPrepFunc: func() {},
		},
		{
			Desc:     "streak failure keeps the meal",
			Req:      validMealRequest(),
			Error:    errorvalues.ErrStreakNotSaved,
			WantMeal: true,
			MockPrepFunc: func() {
				mealsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				streaks.EXPECT().RecordActivity(gomock.Any(), userID, day(10)).Return(nil, errorvalues.ErrStreakConflict)
			},
		},
		{
			Desc:        "badge failure keeps the streak",
			Req:         validMealRequest(),
			Error:       errorvalues.ErrBadgeNotAwarded,
			WantMeal:    true,
			StreakSaved: true,
			MockPrepFunc: func() {
				mealsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				streaks.EXPECT().RecordActivity(gomock.Any(), userID, day(10)).Return(&service.ActivityResult{
					Outcome:   streak.Extended,
					Streak:    entity.Streak{UserID: userID, CurrentStreak: 3, LongestStreak: 3},
					NewBadges: []entity.Badge{},
				}, errors.Join(errorvalues.ErrBadgeNotAwarded, errors.New("db error")))
			},
		},
		{
			Desc:  "repository error",
			Req:   validMealRequest(),
			Error: nil,
			MockPrepFunc: func() {
				mealsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			res, err := serv.AddMeal(ctx, userID, tc.Req)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
			}
			if !tc.WantMeal {
				assert.Error(t, err)
				assert.Nil(t, res)
				return
			}
			require.NotNil(t, res)
			assert.Equal(t, userID, res.Meal.UserID)
			assert.Equal(t, tc.Req.Name, res.Meal.Name)
			if tc.StreakSaved {
				assert.NotErrorIs(t, err, errorvalues.ErrStreakNotSaved)
				require.NotNil(t, res.Activity)
				assert.Equal(t, 3, res.Activity.Streak.CurrentStreak)
			}
		})
	}
}

func TestUpdateMeal(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	mealsRepo := mocks.NewMockMealsRepositoryI(ctrl)
	serv := service.NewMealService(mealsRepo, svcmocks.NewMockStreakServiceI(ctrl))
	mealID := uuid.New()
	created := time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)
	stored := &entity.Meal{ID: mealID, UserID: userID, Date: day(10), Slot: entity.SlotLunch, Name: "soup", Calories: 300, CreatedAt: created}

	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "success",
			MockPrepFunc: func() {
				mealsRepo.EXPECT().GetByID(gomock.Any(), mealID).Return(stored, nil)
				mealsRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m *entity.Meal) error {
					if m.ID != mealID || m.UserID != userID || !m.CreatedAt.Equal(created) {
						return errors.New("identity fields changed")
					}
					return nil
				})
			},
		},
		{
			Desc:  "meal not found",
			Error: errorvalues.ErrMealNotFound,
			MockPrepFunc: func() {
				mealsRepo.EXPECT().GetByID(gomock.Any(), mealID).Return(nil, errorvalues.ErrMealNotFound)
			},
		},
		{
			Desc:  "someone else's meal",
			Error: errorvalues.ErrWrongOwner,
			MockPrepFunc: func() {
				other := *stored
				other.UserID = "user_other"
				mealsRepo.EXPECT().GetByID(gomock.Any(), mealID).Return(&other, nil)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			m, err := serv.UpdateMeal(ctx, mealID, userID, validMealRequest())
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Greek yogurt", m.Name)
			assert.Equal(t, entity.SlotBreakfast, m.Slot)
		})
	}
}

func TestDeleteMeal(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	mealsRepo := mocks.NewMockMealsRepositoryI(ctrl)
	serv := service.NewMealService(mealsRepo, svcmocks.NewMockStreakServiceI(ctrl))
	mealID := uuid.New()

	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "success",
			MockPrepFunc: func() {
				mealsRepo.EXPECT().GetByID(gomock.Any(), mealID).Return(&entity.Meal{ID: mealID, UserID: userID}, nil)
				mealsRepo.EXPECT().Delete(gomock.Any(), mealID).Return(nil)
			},
		},
		{
			Desc:  "wrong owner",
			Error: errorvalues.ErrWrongOwner,
			MockPrepFunc: func() {
				mealsRepo.EXPECT().GetByID(gomock.Any(), mealID).Return(&entity.Meal{ID: mealID, UserID: "user_other"}, nil)
			},
		},
		{
			Desc:  "deleted concurrently",
			Error: errorvalues.ErrMealNotFound,
			MockPrepFunc: func() {
				mealsRepo.EXPECT().GetByID(gomock.Any(), mealID).Return(&entity.Meal{ID: mealID, UserID: userID}, nil)
				mealsRepo.EXPECT().Delete(gomock.Any(), mealID).Return(errorvalues.ErrMealNotFound)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := serv.DeleteMeal(ctx, mealID, userID)
			assert.ErrorIs(t, err, tc.Error)
		})
	}
}

func TestGetMeals(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	mealsRepo := mocks.NewMockMealsRepositoryI(ctrl)
	serv := service.NewMealService(mealsRepo, svcmocks.NewMockStreakServiceI(ctrl))
	ctx := context.Background()

	t.Run("slot filter", func(t *testing.T) {
		want := []entity.Meal{{UserID: userID, Slot: entity.SlotSnacks, Calories: 90}}
		mealsRepo.EXPECT().GetByUserAndDate(gomock.Any(), userID, day(10), entity.SlotSnack).Return(want, nil)
		got, err := serv.GetMeals(ctx, userID, day(10), entity.SlotSnack)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})
	t.Run("unknown slot", func(t *testing.T) {
		_, err := serv.GetMeals(ctx, userID, day(10), "brunch")
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
}
