package service

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	errorvalues "github.com/limbo/calai/internal/error_values"
	"github.com/limbo/calai/internal/nutrition"
	"github.com/limbo/calai/internal/repository"
	"github.com/limbo/calai/pkg/dateutil"
	"github.com/limbo/calai/pkg/entity"
)

const maxRangeDays = 366

type MacroProgress struct {
	Calories nutrition.GoalProgress `json:"calories"`
	Protein  nutrition.GoalProgress `json:"protein"`
	Carbs    nutrition.GoalProgress `json:"carbs"`
	Fat      nutrition.GoalProgress `json:"fat"`
}

type DailySummary struct {
	Date     time.Time              `json:"date"`
	Totals   nutrition.Totals       `json:"totals"`
	Slots    nutrition.SlotCalories `json:"slots"`
	Goals    entity.Goals           `json:"goals"`
	Progress MacroProgress          `json:"progress"`
	Meals    []entity.Meal          `json:"meals"`
}

type RangeSummary struct {
	From    time.Time        `json:"from"`
	To      time.Time        `json:"to"`
	Days    []nutrition.Day  `json:"days"`
	Average nutrition.Totals `json:"average"`
	Goals   entity.Goals     `json:"goals"`
}

type CalendarSummary struct {
	Month       time.Month              `json:"month"`
	Year        int                     `json:"year"`
	CalorieGoal float64                 `json:"calorie_goal"`
	Days        []nutrition.CalendarDay `json:"days"`
}

type NutritionService struct {
	meals    repository.MealsRepositoryI
	profiles repository.ProfilesRepositoryI
}

func NewNutritionService(mealsRepo repository.MealsRepositoryI, profilesRepo repository.ProfilesRepositoryI) *NutritionService {
	if mealsRepo == nil || profilesRepo == nil {
		log.Fatal("on nutrition service provided nil repos")
	}
	return &NutritionService{
		meals:    mealsRepo,
		profiles: profilesRepo,
	}
}

func (ns *NutritionService) Daily(ctx context.Context, userID string, date time.Time) (*DailySummary, error) {
	day := dateutil.Day(date, time.UTC)
	meals, err := ns.meals.GetByUserAndDate(ctx, userID, day, "")
	if err != nil {
		return nil, errors.New("meals repository error: " + err.Error())
	}
	goals, err := loadGoals(ctx, ns.profiles, userID)
	if err != nil {
		return nil, err
	}
	totals, slots := nutrition.DailyTotals(meals)
	return &DailySummary{
		Date:   day,
		Totals: totals,
		Slots:  slots,
		Goals:  goals,
		Progress: MacroProgress{
			Calories: nutrition.Progress(totals.Calories, goals.Calories),
			Protein:  nutrition.Progress(totals.Protein, goals.Protein),
			Carbs:    nutrition.Progress(totals.Carbs, goals.Carbs),
			Fat:      nutrition.Progress(totals.Fat, goals.Fat),
		},
		Meals: meals,
	}, nil
}

// Range averages over the days that have entries, not over the whole window.
func (ns *NutritionService) Range(ctx context.Context, userID string, days int, today time.Time) (*RangeSummary, error) {
	if days < 1 || days > maxRangeDays {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("range must be 1-"+strconv.Itoa(maxRangeDays)+" days"))
	}
	from, to := dateutil.Window(today, days)
	meals, err := ns.meals.GetByUserAndDateRange(ctx, userID, from, to)
	if err != nil {
		return nil, errors.New("meals repository error: " + err.Error())
	}
	goals, err := loadGoals(ctx, ns.profiles, userID)
	if err != nil {
		return nil, err
	}
	byDate := nutrition.ByDate(meals)
	return &RangeSummary{
		From:    from,
		To:      to,
		Days:    byDate,
		Average: nutrition.Average(byDate),
		Goals:   goals,
	}, nil
}

func (ns *NutritionService) Calendar(ctx context.Context, userID string, month time.Month, year int) (*CalendarSummary, error) {
	if month < time.January || month > time.December || year < 1970 || year > 9999 {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("invalid month or year"))
	}
	first, last := dateutil.MonthBounds(month, year)
	meals, err := ns.meals.GetByUserAndDateRange(ctx, userID, first, last)
	if err != nil {
		return nil, errors.New("meals repository error: " + err.Error())
	}
	goals, err := loadGoals(ctx, ns.profiles, userID)
	if err != nil {
		return nil, err
	}
	return &CalendarSummary{
		Month:       month,
		Year:        year,
		CalorieGoal: goals.Calories,
		Days:        nutrition.CalendarMonth(meals, month, year, goals.Calories),
	}, nil
}
