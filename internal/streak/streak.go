// Package streak holds the pure day-to-day transition of a logging streak and the
// milestone table badges are awarded from. Persistence lives in the service layer.
package streak

import (
	"fmt"
	"time"

	"github.com/limbo/calai/pkg/dateutil"
	"github.com/limbo/calai/pkg/entity"
)

type Outcome int

const (
	// First qualifying day for the user, a new record was produced.
	Started Outcome = iota
	// Same day as the last log.
	Unchanged
	// Next consecutive day.
	Extended
	// At least one day was skipped, the streak starts over.
	Reset
	// The day is earlier than the last log. Record is left untouched.
	Backdated
)

func (o Outcome) String() string {
	switch o {
	case Started:
		return "started"
	case Unchanged:
		return "unchanged"
	case Extended:
		return "extended"
	case Reset:
		return "reset"
	case Backdated:
		return "backdated"
	}
	return "unknown"
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Outcome) UnmarshalText(text []byte) error {
	for c := Started; c <= Backdated; c++ {
		if c.String() == string(text) {
			*o = c
			return nil
		}
	}
	return fmt.Errorf("unknown streak outcome %q", text)
}

// Changed reports whether the record has to be written back.
func (o Outcome) Changed() bool {
	return o == Started || o == Extended || o == Reset
}

type Milestone struct {
	Days int
	Name string
}

// Milestones is sorted by Days.
var Milestones = []Milestone{
	{Days: 3, Name: "3-Day Streak"},
	{Days: 7, Name: "7-Day Hero"},
	{Days: 10, Name: "10-Day Champion"},
	{Days: 14, Name: "14-Day Consistency"},
	{Days: 21, Name: "21-Day Habit Builder"},
}

// Advance applies a qualifying activity on day to prev. prev may be nil for a user
// without a record. day must already be normalized with dateutil.Day.
func Advance(prev *entity.Streak, userID string, day time.Time) (entity.Streak, Outcome) {
	if prev == nil {
		return entity.Streak{
			UserID:          userID,
			CurrentStreak:   1,
			LongestStreak:   1,
			StreakStartDate: day,
			LastLogDate:     day,
		}, Started
	}
	next := *prev
	gap := dateutil.DaysBetween(prev.LastLogDate, day)
	switch {
	case gap == 0:
		return next, Unchanged
	case gap < 0:
		return next, Backdated
	case gap == 1:
		next.CurrentStreak++
		next.LongestStreak = max(next.LongestStreak, next.CurrentStreak)
		next.LastLogDate = day
		return next, Extended
	default:
		next.CurrentStreak = 1
		next.LongestStreak = max(next.LongestStreak, next.CurrentStreak)
		next.StreakStartDate = day
		next.LastLogDate = day
		return next, Reset
	}
}

// Earned lists milestones reached by a streak of the given length, ascending.
func Earned(current int) []Milestone {
	res := make([]Milestone, 0, len(Milestones))
	for _, m := range Milestones {
		if m.Days > current {
			break
		}
		res = append(res, m)
	}
	return res
}

// Missing filters out milestones the user already holds a badge for.
func Missing(earned []Milestone, held []entity.Badge) []Milestone {
	names := make(map[string]struct{}, len(held))
	for _, b := range held {
		names[b.Name] = struct{}{}
	}
	res := make([]Milestone, 0, len(earned))
	for _, m := range earned {
		if _, ok := names[m.Name]; !ok {
			res = append(res, m)
		}
	}
	return res
}
