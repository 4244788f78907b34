package service

import (
	"context"
	"errors"
	"log"
	"time"

	errorvalues "github.com/limbo/calai/internal/error_values"
	"github.com/limbo/calai/pkg/entity"
	"golang.org/x/sync/errgroup"
)

type AnalyticsOverview struct {
	Profile       *entity.Profile    `json:"profile"`
	Goals         entity.Goals       `json:"goals"`
	Weekly        *RangeSummary      `json:"weekly"`
	Monthly       *RangeSummary      `json:"monthly"`
	Weight        []entity.WeightLog `json:"weight_history"`
	CurrentWeight *float64           `json:"current_weight,omitempty"`
}

type AnalyticsService struct {
	profiles  ProfileServiceI
	nutrition NutritionServiceI
	weights   WeightServiceI
}

func NewAnalyticsService(profiles ProfileServiceI, nutrition NutritionServiceI, weights WeightServiceI) *AnalyticsService {
	if profiles == nil || nutrition == nil || weights == nil {
		log.Fatal("on analytics service provided nil services")
	}
	return &AnalyticsService{
		profiles:  profiles,
		nutrition: nutrition,
		weights:   weights,
	}
}

// Overview loads the analytics screen. All four reads run concurrently and the
// first failure fails the whole overview.
func (as *AnalyticsService) Overview(ctx context.Context, userID string, today time.Time) (*AnalyticsOverview, error) {
	var overview AnalyticsOverview
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := as.profiles.GetProfile(gctx, userID)
		if err != nil && !errors.Is(err, errorvalues.ErrProfileNotFound) {
			return err
		}
		overview.Profile = p
		return nil
	})
	g.Go(func() error {
		weekly, err := as.nutrition.Range(gctx, userID, 7, today)
		if err != nil {
			return err
		}
		overview.Weekly = weekly
		return nil
	})
	g.Go(func() error {
		monthly, err := as.nutrition.Range(gctx, userID, 30, today)
		if err != nil {
			return err
		}
		overview.Monthly = monthly
		return nil
	})
	g.Go(func() error {
		history, err := as.weights.History(gctx, userID)
		if err != nil {
			return err
		}
		overview.Weight = history
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	overview.Goals = entity.DefaultGoals
	if overview.Profile != nil {
		overview.Goals = overview.Profile.Goals()
		overview.CurrentWeight = overview.Profile.CurrentWeight
	}
	if n := len(overview.Weight); n > 0 {
		w := overview.Weight[n-1].Weight
		overview.CurrentWeight = &w
	}
	return &overview, nil
}
