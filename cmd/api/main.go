// @title Calorie-tracker API
// @description API for calorie tracking app "CalAI"
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/limbo/calai/internal/analyzer"
	"github.com/limbo/calai/internal/api"
	"github.com/limbo/calai/internal/imagestore"
	"github.com/limbo/calai/internal/locker"
	"github.com/limbo/calai/internal/ratelimit"
	"github.com/limbo/calai/internal/repository"
	"github.com/limbo/calai/internal/service"
	"github.com/limbo/calai/pkg/cleanup"
	"github.com/limbo/calai/pkg/config"
	jwtservice "github.com/limbo/calai/pkg/jwt_service"
	"github.com/limbo/calai/pkg/logger"
	"github.com/redis/go-redis/v9"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	logger.Init(logger.Options{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})
	loc, err := cfg.Location()
	if err != nil {
		log.Fatal(err)
	}
	dbCfg := repository.PGCfg{
		Address:  cfg.PostgresAddress,
		Username: cfg.PostgresUser,
		Password: cfg.PostgresPassword,
		DB:       cfg.PostgresDB,
	}
	pool := repository.Connect(&dbCfg)

	// Redis is optional: without it streak locks stay in process and analysis isn't rate limited
	var (
		streakLocker locker.Locker = locker.NewKeyedMutex()
		limiter      ratelimit.Limiter
	)
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatal("connecting to redis error: " + err.Error())
		}
		cleanup.Register(&cleanup.Job{
			Name: "closing redis client",
			F:    rdb.Close,
		})
		slog.Info("connected to redis", slog.String("addr", cfg.RedisAddr))
		streakLocker = locker.NewRedisLocker(rdb, "calai:streak_lock:")
		limiter = ratelimit.NewRedisLimiter(rdb, "calai:rate_limit:analyze:", cfg.AnalyzeRateLimit, cfg.AnalyzeRateWindow)
	}

	var images service.ImageStore = imagestore.Disabled{}
	if cfg.S3Bucket != "" {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		s3Store, err := imagestore.NewS3(ctx, cfg.S3Region, cfg.S3Bucket, cfg.S3PublicURL)
		cancel()
		if err != nil {
			log.Fatal(err)
		}
		images = s3Store
	}
	if cfg.AnalyzerWebhookURL == "" {
		slog.Warn("ANALYZER_WEBHOOK_URL is empty, meal analysis will fail")
	}

	mealsRepo := repository.NewMealsRepo(pool)
	profilesRepo := repository.NewProfilesRepo(pool)
	streakService := service.NewStreakService(repository.NewStreaksRepo(pool), repository.NewBadgesRepo(pool), streakLocker)
	profileService := service.NewProfileService(profilesRepo)
	nutritionService := service.NewNutritionService(mealsRepo, profilesRepo)
	weightService := service.NewWeightService(repository.NewWeightLogsRepo(pool))
	serv := api.New(&api.ServicesList{
		MealService:      service.NewMealService(mealsRepo, streakService),
		NutritionService: nutritionService,
		ProfileService:   profileService,
		WeightService:    weightService,
		StreakService:    streakService,
		AnalyticsService: service.NewAnalyticsService(profileService, nutritionService, weightService),
		AnalysisService:  service.NewAnalysisService(analyzer.New(cfg.AnalyzerWebhookURL, cfg.AnalyzerTimeout), images),
		JwtService:       jwtservice.New(cfg.JWTSecret),
		Limiter:          limiter,
		Location:         loc,
		AllowedOrigins:   cfg.AllowedOrigins,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = serv.Run(ctx, cfg.APIAddress)
	if err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
	cleanup.CleanUp()
}
