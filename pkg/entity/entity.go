package entity

import (
	"time"

	"github.com/google/uuid"
)

type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotDinner    MealSlot = "dinner"
	SlotSnack     MealSlot = "snack"
	// Older clients write the plural form. Same slot as SlotSnack.
	SlotSnacks MealSlot = "snacks"
)

// Canonical folds "snacks" into "snack". Other values are returned as is.
func (s MealSlot) Canonical() MealSlot {
	if s == SlotSnacks {
		return SlotSnack
	}
	return s
}

func (s MealSlot) Valid() bool {
	switch s {
	case SlotBreakfast, SlotLunch, SlotDinner, SlotSnack, SlotSnacks:
		return true
	}
	return false
}

type Meal struct {
	ID              uuid.UUID `json:"id"`
	UserID          string    `json:"user_id"`
	Date            time.Time `json:"date"`
	Slot            MealSlot  `json:"meal_type"`
	Name            string    `json:"meal_name"`
	Calories        float64   `json:"calories"`
	Protein         float64   `json:"protein"`
	Carbs           float64   `json:"carbs"`
	Fat             float64   `json:"fat"`
	Fiber           float64   `json:"fiber"`
	Sugar           float64   `json:"sugar"`
	Sodium          float64   `json:"sodium"`
	ConfidenceScore *float64  `json:"confidence_score,omitempty"`
	HealthScore     *float64  `json:"health_score,omitempty"`
	ImageURL        *string   `json:"image_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type Goals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// DefaultGoals are used for users who have not finished onboarding yet.
var DefaultGoals = Goals{
	Calories: 1910,
	Protein:  136,
	Carbs:    221,
	Fat:      53,
}

type Profile struct {
	ID                 uuid.UUID `json:"id"`
	UserID             string    `json:"user_id"`
	Gender             string    `json:"gender,omitempty"`
	WorkoutFrequency   string    `json:"workout_frequency,omitempty"`
	CalorieGoal        float64   `json:"calorie_goal"`
	ProteinGoal        float64   `json:"protein_goal"`
	CarbsGoal          float64   `json:"carbs_goal"`
	FatsGoal           float64   `json:"fats_goal"`
	CurrentWeight      *float64  `json:"current_weight,omitempty"`
	DesiredWeight      *float64  `json:"desired_weight,omitempty"`
	HealthScore        *float64  `json:"health_score,omitempty"`
	OnboardingComplete bool      `json:"onboarding_complete"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (p *Profile) Goals() Goals {
	return Goals{
		Calories: p.CalorieGoal,
		Protein:  p.ProteinGoal,
		Carbs:    p.CarbsGoal,
		Fat:      p.FatsGoal,
	}
}

type WeightLog struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	Date      time.Time `json:"date"`
	Weight    float64   `json:"weight"`
	CreatedAt time.Time `json:"created_at"`
}

type Streak struct {
	UserID          string    `json:"user_id"`
	CurrentStreak   int       `json:"current_streak"`
	LongestStreak   int       `json:"longest_streak"`
	StreakStartDate time.Time `json:"streak_start_date"`
	LastLogDate     time.Time `json:"last_log_date"`
}

type Badge struct {
	ID             uuid.UUID `json:"id"`
	UserID         string    `json:"user_id"`
	Name           string    `json:"badge_name"`
	DayRequirement int       `json:"day_requirement"`
	AchievedAt     time.Time `json:"achieved_at"`
}
