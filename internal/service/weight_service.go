package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/limbo/calai/internal/repository"
	"github.com/limbo/calai/pkg/dateutil"
	"github.com/limbo/calai/pkg/entity"
)

type WeightService struct {
	repo repository.WeightLogsRepositoryI
}

func NewWeightService(weightRepo repository.WeightLogsRepositoryI) *WeightService {
	if weightRepo == nil {
		log.Fatal("provided nil weightRepo")
	}
	return &WeightService{
		repo: weightRepo,
	}
}

// LogWeight keeps one value per day, the latest call wins.
func (ws *WeightService) LogWeight(ctx context.Context, userID string, req *WeightRequest) (*entity.WeightLog, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	wl := entity.WeightLog{
		UserID: userID,
		Date:   dateutil.Day(req.Date, time.UTC),
		Weight: req.Weight,
	}
	if err := ws.repo.Upsert(ctx, &wl); err != nil {
		return nil, errors.New("weight logs repository error: " + err.Error())
	}
	return &wl, nil
}

func (ws *WeightService) History(ctx context.Context, userID string) ([]entity.WeightLog, error) {
	logs, err := ws.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.New("weight logs repository error: " + err.Error())
	}
	return logs, nil
}

func (ws *WeightService) GetForDate(ctx context.Context, userID string, date time.Time) (*entity.WeightLog, error) {
	wl, err := ws.repo.GetByUserAndDate(ctx, userID, dateutil.Day(date, time.UTC))
	if err != nil {
		return nil, errors.New("weight logs repository error: " + err.Error())
	}
	return wl, nil
}
