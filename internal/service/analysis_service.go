package service

import (
	"bytes"
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/limbo/calai/internal/analyzer"
	errorvalues "github.com/limbo/calai/internal/error_values"
	"github.com/limbo/calai/pkg/logger"
)

type MealAnalysis struct {
	analyzer.Analysis
	ImageURL *string `json:"image_url,omitempty"`
}

type AnalysisService struct {
	analyzer MealAnalyzer
	images   ImageStore
}

func NewAnalysisService(a MealAnalyzer, images ImageStore) *AnalysisService {
	if a == nil || images == nil {
		log.Fatal("on analysis service provided nil dependencies")
	}
	return &AnalysisService{
		analyzer: a,
		images:   images,
	}
}

// AnalyzeMeal asks the webhook for the nutrients on the photo. The photo is kept
// in the image store when one is configured; a failed upload only drops the
// image reference from the result.
func (as *AnalysisService) AnalyzeMeal(ctx context.Context, userID string, img *ImageUpload) (*MealAnalysis, error) {
	if img == nil || len(img.Data) == 0 {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("image is empty"))
	}
	a, err := as.analyzer.Analyze(ctx, img.Filename, bytes.NewReader(img.Data))
	if err != nil {
		return nil, err
	}
	res := &MealAnalysis{Analysis: *a}
	ref, err := as.images.Upload(ctx, userID, img.Filename, img.ContentType, img.Data)
	switch {
	case err == nil:
		res.ImageURL = &ref
	case errors.Is(err, errorvalues.ErrImageStoreOff):
	default:
		logger.FromContext(ctx).Warn("storing analysed image failed", slog.String("error", err.Error()))
	}
	return res, nil
}
