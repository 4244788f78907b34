package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/calai/internal/error_values"
	"github.com/limbo/calai/internal/service"
	"github.com/limbo/calai/pkg/dateutil"
	"github.com/limbo/calai/pkg/entity"
	"github.com/limbo/calai/pkg/httputil"
	"github.com/limbo/calai/pkg/logger"
)

// Multipart uploads for analysis.
const maxImageBytes = 10 << 20

type MealBody struct {
	// YYYY-MM-DD, today when empty
	Date            string   `json:"date"`
	MealType        string   `json:"meal_type"`
	MealName        string   `json:"meal_name"`
	Calories        float64  `json:"calories"`
	Protein         float64  `json:"protein"`
	Carbs           float64  `json:"carbs"`
	Fat             float64  `json:"fat"`
	Fiber           float64  `json:"fiber"`
	Sugar           float64  `json:"sugar"`
	Sodium          float64  `json:"sodium"`
	ConfidenceScore *float64 `json:"confidence_score,omitempty"`
	HealthScore     *float64 `json:"health_score,omitempty"`
	ImageURL        *string  `json:"image_url,omitempty"`
}

type ProfileBody struct {
	Gender             string   `json:"gender"`
	WorkoutFrequency   string   `json:"workout_frequency"`
	CalorieGoal        float64  `json:"calorie_goal"`
	ProteinGoal        float64  `json:"protein_goal"`
	CarbsGoal          float64  `json:"carbs_goal"`
	FatsGoal           float64  `json:"fats_goal"`
	CurrentWeight      *float64 `json:"current_weight,omitempty"`
	DesiredWeight      *float64 `json:"desired_weight,omitempty"`
	HealthScore        *float64 `json:"health_score,omitempty"`
	OnboardingComplete bool     `json:"onboarding_complete"`
}

type WeightBody struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

type AddMealResponse struct {
	Meal    entity.Meal             `json:"meal"`
	Streak  *service.ActivityResult `json:"streak,omitempty"`
	Warning string                  `json:"warning,omitempty"`
}

type GetMealsResponse struct {
	Date  string        `json:"date"`
	Meals []entity.Meal `json:"meals"`
}

type AnalysisResponse struct {
	MealName        string   `json:"meal_name"`
	Calories        float64  `json:"calories"`
	Protein         float64  `json:"protein"`
	Carbs           float64  `json:"carbs"`
	Fat             float64  `json:"fat"`
	Fiber           float64  `json:"fiber"`
	Sugar           float64  `json:"sugar"`
	Sodium          float64  `json:"sodium"`
	ConfidenceScore *float64 `json:"confidence_score,omitempty"`
	HealthScore     *float64 `json:"health_score,omitempty"`
	ImageURL        *string  `json:"image_url,omitempty"`
}

type WeightForDateResponse struct {
	Date string            `json:"date"`
	Log  *entity.WeightLog `json:"log"`
}

type StreakResponse struct {
	Streak *entity.Streak `json:"streak"`
	Badges []entity.Badge `json:"badges"`
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	l := logger.FromContext(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		l.Error("get profile error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	profile, err := s.profileService.GetProfile(ctx, uid)
	if err != nil {
		writeServiceError(w, l, "get profile", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, profile)
}

func (s *Server) UpsertProfile(w http.ResponseWriter, r *http.Request) {
	l := logger.FromContext(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		l.Error("upsert profile error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req ProfileBody
	if err = httputil.DecodeJSON(r, &req); err != nil {
		l.Error("upsert profile error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	profile, err := s.profileService.UpsertProfile(ctx, uid, &service.ProfileRequest{
		Gender:             req.Gender,
		WorkoutFrequency:   req.WorkoutFrequency,
		CalorieGoal:        req.CalorieGoal,
		ProteinGoal:        req.ProteinGoal,
		CarbsGoal:          req.CarbsGoal,
		FatsGoal:           req.FatsGoal,
		CurrentWeight:      req.CurrentWeight,
		DesiredWeight:      req.DesiredWeight,
		HealthScore:        req.HealthScore,
		OnboardingComplete: req.OnboardingComplete,
	})
	if err != nil {
		writeServiceError(w, l, "upsert profile", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, profile)
	l.Info("profile saved")
}

func (s *Server) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	l := logger.FromContext(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		l.Error("onboarding error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	profile, err := s.profileService.CompleteOnboarding(ctx, uid)
	if err != nil {
		writeServiceError(w, l, "onboarding", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, profile)
	l.Info("onboarding completed")
}

// GetGoals answers the default goals for users without a profile.
func (s *Server) GetGoals(w http.ResponseWriter, r *http.Request) {
	l := logger.FromContext(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		l.Error("get goals error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	goals, err := s.profileService.Goals(ctx, uid)
	if err != nil {
		writeServiceError(w, l, "get goals", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goals)
}

func (s *Server) GetMeals(w http.ResponseWriter, r *http.Request) {
	l := logger.FromContext(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		l.Error("get meals error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	date, err := s.dateParam(r.URL.Query().Get("date"))
	if err != nil {
		l.Error("get meals error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	meals, err := s.mealService.GetMeals(ctx, uid, date, entity.MealSlot(r.URL.Query().Get("slot")))
	if err != nil {
		writeServiceError(w, l, "get meals", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetMealsResponse{
		Date:  dateutil.Format(date),
		Meals: meals,
	})
}

func (s *Server) AddMeal(w http.ResponseWriter, r *http.Request) {
	l := logger.FromContext(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		l.Error("add meal error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	req, ok := s.decodeMeal(w, r, l, "add meal")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	res, err := s.mealService.AddMeal(ctx, uid, req)
	if err != nil {
		var partial error
		switch {
		case errors.Is(err, errorvalues.ErrStreakNotSaved):
			partial = errorvalues.ErrStreakNotSaved
		case errors.Is(err, errorvalues.ErrBadgeNotAwarded):
			partial = errorvalues.ErrBadgeNotAwarded
		}
		if partial != nil && res != nil {
			l.Warn("meal added with a failed side effect", slog.String("error", err.Error()))
			httputil.WriteJSONResponse(w, http.StatusCreated, AddMealResponse{
				Meal:    res.Meal,
				Streak:  res.Activity,
				Warning: partial.Error(),
			})
			return
		}
		writeServiceError(w, l, "add meal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, AddMealResponse{
		Meal:   res.Meal,
		Streak: res.Activity,
	})
	l.Info("meal added", slog.String("meal_id", res.Meal.ID.String()))
}

func (s *Server) UpdateMeal(w http.ResponseWriter, r *http.Request) {
	l := logger.FromContext(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		l.Error("update meal error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		l.Error("update meal error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid meal id in path value", nil)
		return
	}
	req, ok := s.decodeMeal(w, r, l, "update meal")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	meal, err := s.mealService.UpdateMeal(ctx, id, uid, req)
	if err != nil {
		writeServiceError(w, l, "update meal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, meal)
	l.Info("meal updated", slog.String("meal_id", id.String()))
}

func (s *Server) DeleteMeal(w http.ResponseWriter, r *http.Request) {
	l := logger.FromContext(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		l.Error("meal deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		l.Error("meal deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid meal id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err = s.mealService.DeleteMeal(ctx, id, uid); err != nil {
		writeServiceError(w, l, "meal deletion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	l.Info("meal deleted", slog.String("meal_id", id.String()))
}

func (s *Server) AnalyzeMeal(w http.ResponseWriter, r *http.Request) {
	l := logger.FromContext(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		l.Error("analyze meal error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)
	if err = r.ParseMultipartForm(maxImageBytes); err != nil {
		l.Error("analyze meal error: invalid multipart body", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "expected multipart form with an image", nil)
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		l.Error("analyze meal error: no image field")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "image field is required", nil)
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		l.Error("analyze meal error: reading image", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "couldn't read image", nil)
		return
	}
	// webhook has its own, shorter timeout
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*45)
	defer cancel()
	analysis, err := s.analysisService.AnalyzeMeal(ctx, uid, &service.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		writeServiceError(w, l, "analyze meal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, AnalysisResponse{
		MealName:        analysis.MealName,
		Calories:        analysis.Calories,
		Protein:         analysis.Protein,
		Carbs:           analysis.Carbs,
		Fat:             analysis.Fat,
		Fiber:           analysis.Fiber,
		Sugar:           analysis.Sugar,
		Sodium:          analysis.Sodium,
		ConfidenceScore: analysis.ConfidenceScore,
		HealthScore:     analysis.HealthScore,
		ImageURL:        analysis.ImageURL,
	})
	l.Info("meal analysed", slog.String("meal_name", analysis.MealName))
}

func (s *Server) LogWeight(w http.ResponseWriter, r *http.Request) {
	l := logger.FromContext(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		l.Error("log weight error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req WeightBody
	if err = httputil.DecodeJSON(r, &req); err != nil {
		l.Error("log weight error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	date, err := s.dateParam(req.Date)
	if err != nil {
		l.Error("log weight error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	wl, err := s.weightService.LogWeight(ctx, uid, &service.WeightRequest{
		Date:   date,
		Weight: req.Weight,
	})
	if err != nil {
		writeServiceError(w, l, "log weight", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, wl)
	l.Info("weight logged")
}

func (s *Server) WeightHistory(w http.ResponseWriter, r *http.Request) {
	l := logger.FromContext(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		l.Error("weight history error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err := dateutil.Parse(raw)
		if err != nil {
			l.Error("weight for date error: invalid date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD", nil)
			return
		}
		wl, err := s.weightService.GetForDate(ctx, uid, date)
		if err != nil {
			writeServiceError(w, l, "weight for date", err)
			return
		}
		httputil.WriteJSONResponse(w, http.StatusOK, WeightForDateResponse{
			Date: dateutil.Format(date),
			Log:  wl,
		})
		return
	}
	history, err := s.weightService.History(ctx, uid)
	if err != nil {
		writeServiceError(w, l, "weight history", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"history": history})
}

func (s *Server) GetStreak(w http.ResponseWriter, r *http.Request) {
	l := logger.FromContext(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		l.Error("get streak error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	st, err := s.streakService.GetStreak(ctx, uid)
	if err != nil {
		writeServiceError(w, l, "get streak", err)
		return
	}
	badges, err := s.streakService.GetBadges(ctx, uid)
	if err != nil {
		writeServiceError(w, l, "get badges", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, StreakResponse{
		Streak: st,
		Badges: badges,
	})
}

func (s *Server) decodeMeal(w http.ResponseWriter, r *http.Request, l *slog.Logger, op string) (*service.MealRequest, bool) {
	var body MealBody
	if err := httputil.DecodeJSON(r, &body); err != nil {
		l.Error(op + " error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return nil, false
	}
	date, err := s.dateParam(body.Date)
	if err != nil {
		l.Error(op + " error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD", nil)
		return nil, false
	}
	return &service.MealRequest{
		Date:            date,
		Slot:            entity.MealSlot(body.MealType),
		Name:            body.MealName,
		Calories:        body.Calories,
		Protein:         body.Protein,
		Carbs:           body.Carbs,
		Fat:             body.Fat,
		Fiber:           body.Fiber,
		Sugar:           body.Sugar,
		Sodium:          body.Sodium,
		ConfidenceScore: body.ConfidenceScore,
		HealthScore:     body.HealthScore,
		ImageURL:        body.ImageURL,
	}, true
}

func (s *Server) today() time.Time {
	return dateutil.Day(s.now(), s.loc)
}

// dateParam parses a YYYY-MM-DD value, empty means today.
func (s *Server) dateParam(raw string) (time.Time, error) {
	if raw == "" {
		return s.today(), nil
	}
	return dateutil.Parse(raw)
}

// writeServiceError maps service errors to statuses. Anything unknown is a 500.
func writeServiceError(w http.ResponseWriter, l *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrValidation):
		l.Error(op+" error: invalid request", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request", err)
	case errors.Is(err, errorvalues.ErrMealNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
		l.Error(op + " error: meal not found or belongs to another user")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "meal doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrProfileNotFound):
		l.Error(op + " error: no profile")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "profile doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrStreakConflict):
		l.Error(op + " error: streak conflict")
		httputil.WriteErrorResponse(w, http.StatusConflict, "streak was updated by another request", nil)
	case errors.Is(err, errorvalues.ErrLockNotAcquired):
		l.Error(op + " error: streak lock busy")
		httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "streak is being updated, try again", nil)
	case errors.Is(err, errorvalues.ErrAnalyzerTimeout):
		l.Error(op + " error: analysis timed out")
		httputil.WriteErrorResponse(w, http.StatusGatewayTimeout, "meal analysis timed out", nil)
	case errors.Is(err, errorvalues.ErrAnalyzerStatus), errors.Is(err, errorvalues.ErrAnalyzerPayload):
		l.Error(op+" error: analysis service failed", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadGateway, "meal analysis failed", nil)
	default:
		l.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}
