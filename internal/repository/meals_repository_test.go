package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/calai/internal/error_values"
	"github.com/limbo/calai/internal/repository"
	"github.com/limbo/calai/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "user_2abcDEF"

var mealCols = []string{"id", "user_id", "date", "meal_type", "meal_name", "calories", "protein", "carbs", "fat",
	"fiber", "sugar", "sodium", "confidence_score", "health_score", "image_url", "created_at"}

func ptr[T any](v T) *T {
	return &v
}

func testMeal(slot entity.MealSlot, calories float64) entity.Meal {
	return entity.Meal{
		ID:              uuid.New(),
		UserID:          testUserID,
		Date:            time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Slot:            slot,
		Name:            "oatmeal",
		Calories:        calories,
		Protein:         12,
		Carbs:           40,
		Fat:             6,
		Fiber:           4,
		Sugar:           3,
		Sodium:          120,
		ConfidenceScore: ptr(0.9),
		HealthScore:     ptr(7.0),
		ImageURL:        ptr("https://img.example/1.jpg"),
		CreatedAt:       time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC),
	}
}

func mealRow(rows *pgxmock.Rows, m entity.Meal) *pgxmock.Rows {
	return rows.AddRow(m.ID, m.UserID, m.Date, m.Slot, m.Name, m.Calories, m.Protein, m.Carbs, m.Fat,
		m.Fiber, m.Sugar, m.Sodium, m.ConfidenceScore, m.HealthScore, m.ImageURL, m.CreatedAt)
}

func TestCreateMeal(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewMealsRepo(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`INSERT INTO daily_meals (user_id, date, meal_type, meal_name, calories, protein, carbs, fat, fiber, sugar, sodium, confidence_score, health_score, image_url)`)
	t.Run("success", func(t *testing.T) {
		meal := testMeal(entity.SlotBreakfast, 350)
		want := meal
		meal.ID = uuid.Nil
		meal.CreatedAt = time.Time{}
		mock.ExpectQuery(query).
			WithArgs(meal.UserID, meal.Date, meal.Slot, meal.Name, meal.Calories, meal.Protein, meal.Carbs, meal.Fat,
				meal.Fiber, meal.Sugar, meal.Sodium, meal.ConfidenceScore, meal.HealthScore, meal.ImageURL).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(want.ID, want.CreatedAt))
		err := repo.Create(ctx, &meal)
		assert.NoError(t, err)
		assert.Equal(t, want, meal)
	})
	t.Run("db error", func(t *testing.T) {
		meal := testMeal(entity.SlotLunch, 500)
		mock.ExpectQuery(query).
			WithArgs(meal.UserID, meal.Date, meal.Slot, meal.Name, meal.Calories, meal.Protein, meal.Carbs, meal.Fat,
				meal.Fiber, meal.Sugar, meal.Sodium, meal.ConfidenceScore, meal.HealthScore, meal.ImageURL).
			WillReturnError(errors.New("db error"))
		err := repo.Create(ctx, &meal)
		assert.Error(t, err)
	})
	t.Run("nil meal", func(t *testing.T) {
		assert.Error(t, repo.Create(ctx, nil))
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMealByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewMealsRepo(mock)
	ctx := context.Background()
	meal := testMeal(entity.SlotDinner, 720)
	query := regexp.QuoteMeta(`FROM daily_meals WHERE id = $1;`)
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(meal.ID).
			WillReturnRows(mealRow(pgxmock.NewRows(mealCols), meal))
		result, err := repo.GetByID(ctx, meal.ID)
		assert.NoError(t, err)
		assert.Equal(t, meal, *result)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(meal.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, meal.ID)
		assert.ErrorIs(t, err, errorvalues.ErrMealNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(meal.ID).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByID(ctx, meal.ID)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrMealNotFound)
	})
}

func TestGetMealsByUserAndDate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewMealsRepo(mock)
	ctx := context.Background()
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	allQuery := regexp.QuoteMeta(`FROM daily_meals WHERE user_id = $1 AND date = $2 ORDER BY created_at;`)
	slotQuery := regexp.QuoteMeta(`FROM daily_meals WHERE user_id = $1 AND date = $2 AND meal_type = ANY($3) ORDER BY created_at;`)
	breakfast := testMeal(entity.SlotBreakfast, 300)
	snack := testMeal(entity.SlotSnack, 150)
	snacks := testMeal(entity.SlotSnacks, 90)

	tests := []struct {
		name    string
		slot    entity.MealSlot
		prep    func()
		want    []entity.Meal
		wantErr bool
	}{
		{
			name: "whole day",
			slot: "",
			prep: func() {
				mock.ExpectQuery(allQuery).
					WithArgs(testUserID, day).
					WillReturnRows(mealRow(mealRow(pgxmock.NewRows(mealCols), breakfast), snack))
			},
			want: []entity.Meal{breakfast, snack},
		},
		{
			name: "snack slot matches both spellings",
			slot: entity.SlotSnacks,
			prep: func() {
				mock.ExpectQuery(slotQuery).
					WithArgs(testUserID, day, []string{"snack", "snacks"}).
					WillReturnRows(mealRow(mealRow(pgxmock.NewRows(mealCols), snack), snacks))
			},
			want: []entity.Meal{snack, snacks},
		},
		{
			name: "single slot",
			slot: entity.SlotBreakfast,
			prep: func() {
				mock.ExpectQuery(slotQuery).
					WithArgs(testUserID, day, []string{"breakfast"}).
					WillReturnRows(mealRow(pgxmock.NewRows(mealCols), breakfast))
			},
			want: []entity.Meal{breakfast},
		},
		{
			name: "empty day",
			slot: entity.SlotLunch,
			prep: func() {
				mock.ExpectQuery(slotQuery).
					WithArgs(testUserID, day, []string{"lunch"}).
					WillReturnRows(pgxmock.NewRows(mealCols))
			},
			want: []entity.Meal{},
		},
		{
			name: "db error",
			slot: "",
			prep: func() {
				mock.ExpectQuery(allQuery).
					WithArgs(testUserID, day).
					WillReturnError(errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.prep()
			result, err := repo.GetByUserAndDate(ctx, testUserID, day, tc.slot)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, result)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMealsByUserAndDateRange(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewMealsRepo(mock)
	ctx := context.Background()
	from := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`FROM daily_meals WHERE user_id = $1 AND date >= $2 AND date <= $3 ORDER BY date ASC, created_at ASC;`)
	t.Run("success", func(t *testing.T) {
		first := testMeal(entity.SlotLunch, 400)
		first.Date = from
		second := testMeal(entity.SlotDinner, 600)
		mock.ExpectQuery(query).
			WithArgs(testUserID, from, to).
			WillReturnRows(mealRow(mealRow(pgxmock.NewRows(mealCols), first), second))
		result, err := repo.GetByUserAndDateRange(ctx, testUserID, from, to)
		assert.NoError(t, err)
		assert.Equal(t, []entity.Meal{first, second}, result)
	})
	t.Run("row error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(testUserID, from, to).
			WillReturnRows(mealRow(pgxmock.NewRows(mealCols), testMeal(entity.SlotLunch, 1)).RowError(0, errors.New("broken row")))
		_, err := repo.GetByUserAndDateRange(ctx, testUserID, from, to)
		assert.Error(t, err)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(testUserID, from, to).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByUserAndDateRange(ctx, testUserID, from, to)
		assert.Error(t, err)
	})
}

func TestUpdateMeal(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewMealsRepo(mock)
	ctx := context.Background()
	meal := testMeal(entity.SlotLunch, 480)
	query := regexp.QuoteMeta(`UPDATE daily_meals SET date = $1, meal_type = $2, meal_name = $3, calories = $4, protein = $5, carbs = $6, fat = $7, fiber = $8, sugar = $9, sodium = $10, confidence_score = $11, health_score = $12, image_url = $13 WHERE id = $14;`)
	args := []any{meal.Date, meal.Slot, meal.Name, meal.Calories, meal.Protein, meal.Carbs, meal.Fat,
		meal.Fiber, meal.Sugar, meal.Sodium, meal.ConfidenceScore, meal.HealthScore, meal.ImageURL, meal.ID}
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(args...).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.Update(ctx, &meal))
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(args...).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, repo.Update(ctx, &meal), errorvalues.ErrMealNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(args...).WillReturnError(errors.New("db error"))
		assert.Error(t, repo.Update(ctx, &meal))
	})
}

func TestDeleteMeal(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewMealsRepo(mock)
	ctx := context.Background()
	id := uuid.New()
	query := regexp.QuoteMeta(`DELETE FROM daily_meals WHERE id = $1;`)
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		assert.NoError(t, repo.Delete(ctx, id))
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		assert.ErrorIs(t, repo.Delete(ctx, id), errorvalues.ErrMealNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(id).WillReturnError(errors.New("db error"))
		assert.Error(t, repo.Delete(ctx, id))
	})
}
