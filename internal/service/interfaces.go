package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/calai/internal/analyzer"
	"github.com/limbo/calai/pkg/entity"
)

type MealRequest struct {
	Date            time.Time       `validate:"required"`
	Slot            entity.MealSlot `validate:"required,meal_slot"`
	Name            string          `validate:"required,max=200"`
	Calories        float64         `validate:"gte=0"`
	Protein         float64         `validate:"gte=0"`
	Carbs           float64         `validate:"gte=0"`
	Fat             float64         `validate:"gte=0"`
	Fiber           float64         `validate:"gte=0"`
	Sugar           float64         `validate:"gte=0"`
	Sodium          float64         `validate:"gte=0"`
	ConfidenceScore *float64        `validate:"omitempty,gte=0,lte=1"`
	HealthScore     *float64        `validate:"omitempty,gte=0,lte=10"`
	ImageURL        *string         `validate:"omitempty,max=2048"`
}

type ProfileRequest struct {
	Gender             string   `validate:"max=32"`
	WorkoutFrequency   string   `validate:"max=32"`
	CalorieGoal        float64  `validate:"gt=0"`
	ProteinGoal        float64  `validate:"gt=0"`
	CarbsGoal          float64  `validate:"gt=0"`
	FatsGoal           float64  `validate:"gt=0"`
	CurrentWeight      *float64 `validate:"omitempty,gt=0,lt=1000"`
	DesiredWeight      *float64 `validate:"omitempty,gt=0,lt=1000"`
	HealthScore        *float64 `validate:"omitempty,gte=0,lte=10"`
	OnboardingComplete bool
}

type WeightRequest struct {
	Date   time.Time `validate:"required"`
	Weight float64   `validate:"gt=0,lt=1000"`
}

type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

type MealServiceI interface {
	// Saves the meal and counts its date toward the user's streak. When only the streak
	// update fails, the saved meal is returned together with ErrStreakNotSaved. A streak
	// that was saved while a badge award failed comes back with ErrBadgeNotAwarded.
	AddMeal(ctx context.Context, userID string, req *MealRequest) (*AddMealResult, error)
	// Empty slot means the whole day.
	GetMeals(ctx context.Context, userID string, date time.Time, slot entity.MealSlot) ([]entity.Meal, error)
	UpdateMeal(ctx context.Context, id uuid.UUID, userID string, req *MealRequest) (*entity.Meal, error)
	DeleteMeal(ctx context.Context, id uuid.UUID, userID string) error
}

type NutritionServiceI interface {
	Daily(ctx context.Context, userID string, date time.Time) (*DailySummary, error)
	// Trailing window of days ending at today, both inclusive.
	Range(ctx context.Context, userID string, days int, today time.Time) (*RangeSummary, error)
	Calendar(ctx context.Context, userID string, month time.Month, year int) (*CalendarSummary, error)
}

type ProfileServiceI interface {
	GetProfile(ctx context.Context, userID string) (*entity.Profile, error)
	UpsertProfile(ctx context.Context, userID string, req *ProfileRequest) (*entity.Profile, error)
	CompleteOnboarding(ctx context.Context, userID string) (*entity.Profile, error)
	Goals(ctx context.Context, userID string) (entity.Goals, error)
}

type WeightServiceI interface {
	LogWeight(ctx context.Context, userID string, req *WeightRequest) (*entity.WeightLog, error)
	History(ctx context.Context, userID string) ([]entity.WeightLog, error)
	// Returns nil when nothing was logged on that date.
	GetForDate(ctx context.Context, userID string, date time.Time) (*entity.WeightLog, error)
}

type StreakServiceI interface {
	RecordActivity(ctx context.Context, userID string, day time.Time) (*ActivityResult, error)
	// Returns nil for a user who never logged a meal.
	GetStreak(ctx context.Context, userID string) (*entity.Streak, error)
	GetBadges(ctx context.Context, userID string) ([]entity.Badge, error)
}

type AnalyticsServiceI interface {
	Overview(ctx context.Context, userID string, today time.Time) (*AnalyticsOverview, error)
}

type AnalysisServiceI interface {
	AnalyzeMeal(ctx context.Context, userID string, img *ImageUpload) (*MealAnalysis, error)
}

type MealAnalyzer interface {
	Analyze(ctx context.Context, filename string, image io.Reader) (*analyzer.Analysis, error)
}

type ImageStore interface {
	Upload(ctx context.Context, userID, filename, contentType string, data []byte) (string, error)
}
