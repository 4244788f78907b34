package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	errorvalues "github.com/limbo/calai/internal/error_values"
	"github.com/limbo/calai/internal/locker"
	"github.com/limbo/calai/internal/repository"
	"github.com/limbo/calai/internal/streak"
	"github.com/limbo/calai/pkg/dateutil"
	"github.com/limbo/calai/pkg/entity"
	"github.com/limbo/calai/pkg/logger"
)

type ActivityResult struct {
	Outcome   streak.Outcome `json:"outcome"`
	Streak    entity.Streak  `json:"streak"`
	NewBadges []entity.Badge `json:"new_badges"`
}

type StreakService struct {
	streaks repository.StreaksRepositoryI
	badges  repository.BadgesRepositoryI
	locker  locker.Locker
}

func NewStreakService(streaks repository.StreaksRepositoryI, badges repository.BadgesRepositoryI, l locker.Locker) *StreakService {
	if streaks == nil || badges == nil {
		log.Fatal("on streak service provided nil repos")
	}
	if l == nil {
		l = locker.NewKeyedMutex()
	}
	return &StreakService{
		streaks: streaks,
		badges:  badges,
		locker:  l,
	}
}

// RecordActivity counts day toward the user's streak. day is a calendar day as
// produced by dateutil. Calls for the same user are serialised and the write is
// guarded by the previous last_log_date, a lost race yields ErrStreakConflict.
func (ss *StreakService) RecordActivity(ctx context.Context, userID string, day time.Time) (*ActivityResult, error) {
	day = dateutil.Day(day, time.UTC)
	release, err := ss.locker.Lock(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer release()

	prev, err := ss.streaks.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.New("streaks repository error: " + err.Error())
	}
	next, outcome := streak.Advance(prev, userID, day)
	res := &ActivityResult{
		Outcome:   outcome,
		Streak:    next,
		NewBadges: []entity.Badge{},
	}
	switch outcome {
	case streak.Unchanged:
		return res, nil
	case streak.Backdated:
		logger.FromContext(ctx).Warn("backdated activity ignored",
			slog.String("uid", userID),
			slog.String("day", dateutil.Format(day)),
			slog.String("last_log_date", dateutil.Format(prev.LastLogDate)),
		)
		return res, nil
	case streak.Started:
		ok, err := ss.streaks.Create(ctx, &next)
		if err != nil {
			return nil, errors.New("streaks repository error: " + err.Error())
		}
		if !ok {
			return nil, errorvalues.ErrStreakConflict
		}
		return res, nil
	}

	ok, err := ss.streaks.CompareAndSwap(ctx, &next, prev.LastLogDate)
	if err != nil {
		return nil, errors.New("streaks repository error: " + err.Error())
	}
	if !ok {
		return nil, errorvalues.ErrStreakConflict
	}
	if outcome != streak.Extended {
		return res, nil
	}
	awarded, err := ss.awardBadges(ctx, userID, next.CurrentStreak)
	res.NewBadges = awarded
	if err != nil {
		return res, errors.Join(errorvalues.ErrBadgeNotAwarded, err)
	}
	return res, nil
}

// awardBadges creates every missing badge for the streak length. A failed award
// doesn't stop the others, all failures are joined.
func (ss *StreakService) awardBadges(ctx context.Context, userID string, current int) ([]entity.Badge, error) {
	awarded := make([]entity.Badge, 0)
	earned := streak.Earned(current)
	if len(earned) == 0 {
		return awarded, nil
	}
	held, err := ss.badges.GetByUserID(ctx, userID)
	if err != nil {
		return awarded, errors.New("badges repository error: " + err.Error())
	}
	var errs []error
	for _, m := range streak.Missing(earned, held) {
		b := entity.Badge{
			UserID:         userID,
			Name:           m.Name,
			DayRequirement: m.Days,
		}
		err := ss.badges.Create(ctx, &b)
		if err != nil {
			if errors.Is(err, errorvalues.ErrBadgeExists) {
				continue
			}
			errs = append(errs, errors.New("awarding "+m.Name+" error: "+err.Error()))
			continue
		}
		awarded = append(awarded, b)
	}
	return awarded, errors.Join(errs...)
}

func (ss *StreakService) GetStreak(ctx context.Context, userID string) (*entity.Streak, error) {
	s, err := ss.streaks.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.New("streaks repository error: " + err.Error())
	}
	return s, nil
}

func (ss *StreakService) GetBadges(ctx context.Context, userID string) ([]entity.Badge, error) {
	badges, err := ss.badges.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.New("badges repository error: " + err.Error())
	}
	return badges, nil
}
