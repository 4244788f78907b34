package repository

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/calai/pkg/entity"
)

type MealsRepositoryI interface {
	// Inserts meal. ID and CreatedAt are filled from the database
	Create(ctx context.Context, meal *entity.Meal) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Meal, error)
	// Lists user's meals for a date. Empty slot means every slot
	GetByUserAndDate(ctx context.Context, userID string, date time.Time, slot entity.MealSlot) ([]entity.Meal, error)
	// Lists user's meals with date in [from, to], ascending by date
	GetByUserAndDateRange(ctx context.Context, userID string, from, to time.Time) ([]entity.Meal, error)
	// Updates meal by ID (ID in meal is necessary)
	Update(ctx context.Context, meal *entity.Meal) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProfilesRepositoryI interface {
	GetByUserID(ctx context.Context, userID string) (*entity.Profile, error)
	// Creates profile or updates the existing one of profile.UserID.
	// Onboarding flag is never cleared by upsert
	Upsert(ctx context.Context, profile *entity.Profile) error
	SetOnboardingComplete(ctx context.Context, userID string) error
}

type WeightLogsRepositoryI interface {
	// Creates log or overwrites weight of the log with same user and date
	Upsert(ctx context.Context, log *entity.WeightLog) error
	// Returns nil, nil when nothing was logged on date
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*entity.WeightLog, error)
	// Whole history ascending by date
	GetByUserID(ctx context.Context, userID string) ([]entity.WeightLog, error)
}

type StreaksRepositoryI interface {
	// Returns nil, nil when user has no streak yet
	GetByUserID(ctx context.Context, userID string) (*entity.Streak, error)
	// Inserts streak unless one exists. Reports whether the row was inserted
	Create(ctx context.Context, streak *entity.Streak) (bool, error)
	// Writes streak only if stored last_log_date still equals prevLastLog
	CompareAndSwap(ctx context.Context, streak *entity.Streak, prevLastLog time.Time) (bool, error)
}

type BadgesRepositoryI interface {
	GetByUserID(ctx context.Context, userID string) ([]entity.Badge, error)
	Create(ctx context.Context, badge *entity.Badge) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
