package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/calai/internal/error_values"
	"github.com/limbo/calai/pkg/entity"
)

const mealColumns = `id, user_id, date, meal_type, meal_name, calories, protein, carbs, fat, fiber, sugar, sodium, confidence_score, health_score, image_url, created_at`

type MealsRepository struct {
	conn PgConnection
}

func NewMealsRepo(conn PgConnection) *MealsRepository {
	return &MealsRepository{
		conn: conn,
	}
}

func (mr *MealsRepository) Create(ctx context.Context, meal *entity.Meal) error {
	if meal == nil {
		return errors.New("meal is nil")
	}
	row := mr.conn.QueryRow(ctx, `INSERT INTO daily_meals (user_id, date, meal_type, meal_name, calories, protein, carbs, fat, fiber, sugar, sodium, confidence_score, health_score, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING id, created_at;`,
		meal.UserID,
		meal.Date,
		meal.Slot,
		meal.Name,
		meal.Calories,
		meal.Protein,
		meal.Carbs,
		meal.Fat,
		meal.Fiber,
		meal.Sugar,
		meal.Sodium,
		meal.ConfidenceScore,
		meal.HealthScore,
		meal.ImageURL,
	)
	if err := row.Scan(&meal.ID, &meal.CreatedAt); err != nil {
		return errors.New("creating meal db error: " + err.Error())
	}
	return nil
}

func (mr *MealsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Meal, error) {
	row := mr.conn.QueryRow(ctx, `SELECT `+mealColumns+` FROM daily_meals WHERE id = $1;`, id)
	meal, err := scanMeal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrMealNotFound
		}
		return nil, errors.New("getting meal by id error: " + err.Error())
	}
	return meal, nil
}

func (mr *MealsRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time, slot entity.MealSlot) ([]entity.Meal, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if slot == "" {
		rows, err = mr.conn.Query(ctx, `SELECT `+mealColumns+` FROM daily_meals
			WHERE user_id = $1 AND date = $2 ORDER BY created_at;`, userID, date)
	} else {
		slots := []string{string(slot)}
		if slot.Canonical() == entity.SlotSnack {
			slots = []string{string(entity.SlotSnack), string(entity.SlotSnacks)}
		}
		rows, err = mr.conn.Query(ctx, `SELECT `+mealColumns+` FROM daily_meals
			WHERE user_id = $1 AND date = $2 AND meal_type = ANY($3) ORDER BY created_at;`, userID, date, slots)
	}
	if err != nil {
		return nil, errors.New("getting meals by date error: " + err.Error())
	}
	return collectMeals(rows)
}

func (mr *MealsRepository) GetByUserAndDateRange(ctx context.Context, userID string, from, to time.Time) ([]entity.Meal, error) {
	rows, err := mr.conn.Query(ctx, `SELECT `+mealColumns+` FROM daily_meals
		WHERE user_id = $1 AND date >= $2 AND date <= $3 ORDER BY date ASC, created_at ASC;`, userID, from, to)
	if err != nil {
		return nil, errors.New("getting meals for period error: " + err.Error())
	}
	return collectMeals(rows)
}

func (mr *MealsRepository) Update(ctx context.Context, meal *entity.Meal) error {
	ct, err := mr.conn.Exec(ctx, `UPDATE daily_meals SET date = $1, meal_type = $2, meal_name = $3, calories = $4, protein = $5, carbs = $6,
		fat = $7, fiber = $8, sugar = $9, sodium = $10, confidence_score = $11, health_score = $12, image_url = $13 WHERE id = $14;`,
		meal.Date,
		meal.Slot,
		meal.Name,
		meal.Calories,
		meal.Protein,
		meal.Carbs,
		meal.Fat,
		meal.Fiber,
		meal.Sugar,
		meal.Sodium,
		meal.ConfidenceScore,
		meal.HealthScore,
		meal.ImageURL,
		meal.ID,
	)
	if err != nil {
		return errors.New("updating meal error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrMealNotFound
	}
	return nil
}

func (mr *MealsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := mr.conn.Exec(ctx, `DELETE FROM daily_meals WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting meal error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrMealNotFound
	}
	return nil
}

func scanMeal(row pgx.Row) (*entity.Meal, error) {
	var m entity.Meal
	err := row.Scan(&m.ID, &m.UserID, &m.Date, &m.Slot, &m.Name, &m.Calories, &m.Protein, &m.Carbs, &m.Fat,
		&m.Fiber, &m.Sugar, &m.Sodium, &m.ConfidenceScore, &m.HealthScore, &m.ImageURL, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func collectMeals(rows pgx.Rows) ([]entity.Meal, error) {
	defer rows.Close()
	meals := make([]entity.Meal, 0)
	for rows.Next() {
		m, err := scanMeal(rows)
		if err != nil {
			return nil, errors.New("meal row parsing error: " + err.Error())
		}
		meals = append(meals, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected meal rows error: " + err.Error())
	}
	return meals, nil
}
