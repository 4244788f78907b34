package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/limbo/calai/pkg/httputil"
	"github.com/limbo/calai/pkg/logger"
)

const (
	weekDays  = 7
	monthDays = 30
)

func (s *Server) DailyNutrition(w http.ResponseWriter, r *http.Request) {
	l := logger.FromContext(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		l.Error("daily nutrition error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	date, err := s.dateParam(r.URL.Query().Get("date"))
	if err != nil {
		l.Error("daily nutrition error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	summary, err := s.nutritionService.Daily(ctx, uid, date)
	if err != nil {
		writeServiceError(w, l, "daily nutrition", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
}

func (s *Server) WeeklyNutrition(w http.ResponseWriter, r *http.Request) {
	s.nutritionRange(w, r, weekDays, "weekly nutrition")
}

func (s *Server) MonthlyNutrition(w http.ResponseWriter, r *http.Request) {
	s.nutritionRange(w, r, monthDays, "monthly nutrition")
}

func (s *Server) nutritionRange(w http.ResponseWriter, r *http.Request, days int, op string) {
	l := logger.FromContext(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		l.Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	summary, err := s.nutritionService.Range(ctx, uid, days, s.today())
	if err != nil {
		writeServiceError(w, l, op, err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
}

func (s *Server) NutritionCalendar(w http.ResponseWriter, r *http.Request) {
	l := logger.FromContext(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		l.Error("calendar error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	today := s.today()
	month, year := today.Month(), today.Year()
	if raw := r.URL.Query().Get("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			l.Error("calendar error: invalid month")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "month must be 1-12", nil)
			return
		}
		month = time.Month(m)
	}
	if raw := r.URL.Query().Get("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 1970 || y > 9999 {
			l.Error("calendar error: invalid year")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid year", nil)
			return
		}
		year = y
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	summary, err := s.nutritionService.Calendar(ctx, uid, month, year)
	if err != nil {
		writeServiceError(w, l, "calendar", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
}

func (s *Server) Analytics(w http.ResponseWriter, r *http.Request) {
	l := logger.FromContext(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		l.Error("analytics error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	overview, err := s.analyticsService.Overview(ctx, uid, s.today())
	if err != nil {
		writeServiceError(w, l, "analytics", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, overview)
}
