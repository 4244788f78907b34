package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/calai/internal/error_values"
	"github.com/limbo/calai/internal/repository"
	"github.com/limbo/calai/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBadges(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewBadgesRepo(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT id, user_id, badge_name, day_requirement, achieved_at FROM user_badges WHERE user_id = $1 ORDER BY day_requirement ASC;`)
	cols := []string{"id", "user_id", "badge_name", "day_requirement", "achieved_at"}
	three := entity.Badge{ID: uuid.New(), UserID: testUserID, Name: "3-Day Streak", DayRequirement: 3, AchievedAt: time.Now().UTC()}
	seven := entity.Badge{ID: uuid.New(), UserID: testUserID, Name: "7-Day Hero", DayRequirement: 7, AchievedAt: time.Now().UTC()}
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(testUserID).
			WillReturnRows(pgxmock.NewRows(cols).
				AddRow(three.ID, three.UserID, three.Name, three.DayRequirement, three.AchievedAt).
				AddRow(seven.ID, seven.UserID, seven.Name, seven.DayRequirement, seven.AchievedAt))
		result, err := repo.GetByUserID(ctx, testUserID)
		assert.NoError(t, err)
		assert.Equal(t, []entity.Badge{three, seven}, result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(testUserID).WillReturnError(errors.New("db error"))
		_, err := repo.GetByUserID(ctx, testUserID)
		assert.Error(t, err)
	})
}

func TestCreateBadge(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewBadgesRepo(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`INSERT INTO user_badges (user_id, badge_name, day_requirement) VALUES ($1, $2, $3) RETURNING id, achieved_at;`)
	t.Run("success", func(t *testing.T) {
		b := entity.Badge{UserID: testUserID, Name: "3-Day Streak", DayRequirement: 3}
		id, at := uuid.New(), time.Now().UTC()
		mock.ExpectQuery(query).
			WithArgs(testUserID, "3-Day Streak", 3).
			WillReturnRows(pgxmock.NewRows([]string{"id", "achieved_at"}).AddRow(id, at))
		assert.NoError(t, repo.Create(ctx, &b))
		assert.Equal(t, id, b.ID)
		assert.Equal(t, at, b.AchievedAt)
	})
	t.Run("already awarded", func(t *testing.T) {
		b := entity.Badge{UserID: testUserID, Name: "3-Day Streak", DayRequirement: 3}
		mock.ExpectQuery(query).
			WithArgs(testUserID, "3-Day Streak", 3).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		assert.ErrorIs(t, repo.Create(ctx, &b), errorvalues.ErrBadgeExists)
	})
	t.Run("db error", func(t *testing.T) {
		b := entity.Badge{UserID: testUserID, Name: "7-Day Hero", DayRequirement: 7}
		mock.ExpectQuery(query).
			WithArgs(testUserID, "7-Day Hero", 7).
			WillReturnError(errors.New("db error"))
		err := repo.Create(ctx, &b)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrBadgeExists)
	})
}
