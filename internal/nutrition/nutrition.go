// Package nutrition reduces meal entries into the totals shown on the dashboard,
// analytics and calendar screens. Every function is pure over its input.
package nutrition

import (
	"sort"
	"time"

	"github.com/limbo/calai/pkg/dateutil"
	"github.com/limbo/calai/pkg/entity"
)

type Totals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
}

func (t *Totals) add(m *entity.Meal) {
	t.Calories += m.Calories
	t.Protein += m.Protein
	t.Carbs += m.Carbs
	t.Fat += m.Fat
	t.Fiber += m.Fiber
	t.Sugar += m.Sugar
	t.Sodium += m.Sodium
}

// SlotCalories are calorie subtotals per meal slot.
type SlotCalories struct {
	Breakfast float64 `json:"breakfast"`
	Lunch     float64 `json:"lunch"`
	Dinner    float64 `json:"dinner"`
	Snack     float64 `json:"snack"`
}

type Day struct {
	Date   time.Time    `json:"date"`
	Totals Totals       `json:"totals"`
	Slots  SlotCalories `json:"slots"`
}

// DailyTotals sums all entries regardless of their date. Entries with a slot
// outside of the four known ones count toward the totals only.
func DailyTotals(meals []entity.Meal) (Totals, SlotCalories) {
	var (
		totals Totals
		slots  SlotCalories
	)
	for i := range meals {
		m := &meals[i]
		totals.add(m)
		switch m.Slot.Canonical() {
		case entity.SlotBreakfast:
			slots.Breakfast += m.Calories
		case entity.SlotLunch:
			slots.Lunch += m.Calories
		case entity.SlotDinner:
			slots.Dinner += m.Calories
		case entity.SlotSnack:
			slots.Snack += m.Calories
		}
	}
	return totals, slots
}

// ByDate groups entries into one row per date present, ascending. Dates without
// entries are not filled in.
func ByDate(meals []entity.Meal) []Day {
	groups := make(map[time.Time][]entity.Meal)
	for _, m := range meals {
		d := dateutil.Day(m.Date, time.UTC)
		groups[d] = append(groups[d], m)
	}
	days := make([]Day, 0, len(groups))
	for d, ms := range groups {
		totals, slots := DailyTotals(ms)
		days = append(days, Day{Date: d, Totals: totals, Slots: slots})
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})
	return days
}

type CalendarDay struct {
	Date     time.Time  `json:"date"`
	Calories float64    `json:"total_calories"`
	Status   GoalStatus `json:"status"`
}

// CalendarMonth sums calories per date for the given month. Entries outside of the
// month are ignored.
func CalendarMonth(meals []entity.Meal, month time.Month, year int, calorieGoal float64) []CalendarDay {
	first, last := dateutil.MonthBounds(month, year)
	inMonth := make([]entity.Meal, 0, len(meals))
	for _, m := range meals {
		d := dateutil.Day(m.Date, time.UTC)
		if d.Before(first) || d.After(last) {
			continue
		}
		inMonth = append(inMonth, m)
	}
	days := ByDate(inMonth)
	res := make([]CalendarDay, 0, len(days))
	for _, d := range days {
		res = append(res, CalendarDay{
			Date:     d.Date,
			Calories: d.Totals.Calories,
			Status:   Status(d.Totals.Calories, calorieGoal),
		})
	}
	return res
}

// Average is the arithmetic mean of per-day totals. An empty range averages to zero.
func Average(days []Day) Totals {
	var sum Totals
	for _, d := range days {
		sum.Calories += d.Totals.Calories
		sum.Protein += d.Totals.Protein
		sum.Carbs += d.Totals.Carbs
		sum.Fat += d.Totals.Fat
		sum.Fiber += d.Totals.Fiber
		sum.Sugar += d.Totals.Sugar
		sum.Sodium += d.Totals.Sodium
	}
	den := float64(len(days))
	if den == 0 {
		den = 1
	}
	return Totals{
		Calories: sum.Calories / den,
		Protein:  sum.Protein / den,
		Carbs:    sum.Carbs / den,
		Fat:      sum.Fat / den,
		Fiber:    sum.Fiber / den,
		Sugar:    sum.Sugar / den,
		Sodium:   sum.Sodium / den,
	}
}

type GoalStatus string

const (
	StatusNone    GoalStatus = "none"
	StatusUnder   GoalStatus = "under"
	StatusOnTrack GoalStatus = "on_track"
	StatusOver    GoalStatus = "over"
)

// Status classifies a day's calories against the goal: under 80% is under,
// over 110% is over.
func Status(calories, goal float64) GoalStatus {
	if calories <= 0 {
		return StatusNone
	}
	if goal <= 0 {
		return StatusOver
	}
	ratio := calories / goal
	switch {
	case ratio > 1.1:
		return StatusOver
	case ratio < 0.8:
		return StatusUnder
	}
	return StatusOnTrack
}

type GoalProgress struct {
	Consumed  float64 `json:"consumed"`
	Goal      float64 `json:"goal"`
	Percent   float64 `json:"percent"`
	Remaining float64 `json:"remaining"`
}

// Progress caps the percent at 100 and never reports negative remaining.
func Progress(consumed, goal float64) GoalProgress {
	p := GoalProgress{Consumed: consumed, Goal: goal}
	if goal > 0 {
		p.Percent = min(consumed/goal*100, 100)
	}
	p.Remaining = max(goal-consumed, 0)
	return p
}
