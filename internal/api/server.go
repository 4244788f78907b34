package api

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/calai/internal/ratelimit"
	"github.com/limbo/calai/internal/service"
	"github.com/rs/cors"
)

type Server struct {
	mx               *chi.Mux
	handler          http.Handler
	mealService      service.MealServiceI
	nutritionService service.NutritionServiceI
	profileService   service.ProfileServiceI
	weightService    service.WeightServiceI
	streakService    service.StreakServiceI
	analyticsService service.AnalyticsServiceI
	analysisService  service.AnalysisServiceI
	jwtService       JWTServiceI
	limiter          ratelimit.Limiter
	loc              *time.Location
	now              func() time.Time
}

type ServicesList struct {
	MealService      service.MealServiceI
	NutritionService service.NutritionServiceI
	ProfileService   service.ProfileServiceI
	WeightService    service.WeightServiceI
	StreakService    service.StreakServiceI
	AnalyticsService service.AnalyticsServiceI
	AnalysisService  service.AnalysisServiceI
	JwtService       JWTServiceI
	// Optional. Without it the analysis endpoint is not rate limited.
	Limiter ratelimit.Limiter
	// Time zone "today" is taken in. UTC when nil.
	Location       *time.Location
	AllowedOrigins []string
	// Overrides time.Now, for tests.
	Clock func() time.Time
}

func New(servicesOptions *ServicesList) *Server {
	if servicesOptions == nil || servicesOptions.JwtService == nil {
		log.Fatal("api server needs a jwt service")
	}
	s := &Server{
		mx:               chi.NewMux(),
		mealService:      servicesOptions.MealService,
		nutritionService: servicesOptions.NutritionService,
		profileService:   servicesOptions.ProfileService,
		weightService:    servicesOptions.WeightService,
		streakService:    servicesOptions.StreakService,
		analyticsService: servicesOptions.AnalyticsService,
		analysisService:  servicesOptions.AnalysisService,
		jwtService:       servicesOptions.JwtService,
		limiter:          servicesOptions.Limiter,
		loc:              servicesOptions.Location,
		now:              servicesOptions.Clock,
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	if s.now == nil {
		s.now = time.Now
	}
	origins := servicesOptions.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	s.routes()
	s.handler = cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(s.mx)
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.Health)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

			r.Get("/profile", s.GetProfile)
			r.Put("/profile", s.UpsertProfile)
			r.Post("/profile/onboarding", s.CompleteOnboarding)
			r.Get("/profile/goals", s.GetGoals)

			r.Get("/meals", s.GetMeals)
			r.Post("/meals", s.AddMeal)
			r.With(s.RateLimitMiddleware).Post("/meals/analyze", s.AnalyzeMeal)
			r.Put("/meals/{id}", s.UpdateMeal)
			r.Delete("/meals/{id}", s.DeleteMeal)

			r.Get("/nutrition/daily", s.DailyNutrition)
			r.Get("/nutrition/weekly", s.WeeklyNutrition)
			r.Get("/nutrition/monthly", s.MonthlyNutrition)
			r.Get("/nutrition/calendar", s.NutritionCalendar)
			r.Get("/analytics", s.Analytics)

			r.Post("/weight", s.LogWeight)
			r.Get("/weight", s.WeightHistory)

			r.Get("/streak", s.GetStreak)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		// analysis webhook may take up to its own timeout
		WriteTimeout: 60 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("api server listening", slog.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
