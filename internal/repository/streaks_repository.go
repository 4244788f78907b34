package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/limbo/calai/pkg/entity"
)

type StreaksRepository struct {
	conn PgConnection
}

func NewStreaksRepo(conn PgConnection) *StreaksRepository {
	return &StreaksRepository{
		conn: conn,
	}
}

func (sr *StreaksRepository) GetByUserID(ctx context.Context, userID string) (*entity.Streak, error) {
	var s entity.Streak
	row := sr.conn.QueryRow(ctx, `SELECT user_id, current_streak, longest_streak, streak_start_date, last_log_date FROM user_streaks WHERE user_id = $1;`, userID)
	if err := row.Scan(&s.UserID, &s.CurrentStreak, &s.LongestStreak, &s.StreakStartDate, &s.LastLogDate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting streak error: " + err.Error())
	}
	return &s, nil
}

func (sr *StreaksRepository) Create(ctx context.Context, streak *entity.Streak) (bool, error) {
	ct, err := sr.conn.Exec(ctx, `INSERT INTO user_streaks (user_id, current_streak, longest_streak, streak_start_date, last_log_date)
		VALUES ($1, $2, $3, $4, $5) ON CONFLICT (user_id) DO NOTHING;`,
		streak.UserID,
		streak.CurrentStreak,
		streak.LongestStreak,
		streak.StreakStartDate,
		streak.LastLogDate,
	)
	if err != nil {
		return false, errors.New("creating streak error: " + err.Error())
	}
	return ct.RowsAffected() == 1, nil
}

func (sr *StreaksRepository) CompareAndSwap(ctx context.Context, streak *entity.Streak, prevLastLog time.Time) (bool, error) {
	ct, err := sr.conn.Exec(ctx, `UPDATE user_streaks SET current_streak = $1, longest_streak = $2, streak_start_date = $3, last_log_date = $4, updated_at = NOW()
		WHERE user_id = $5 AND last_log_date = $6;`,
		streak.CurrentStreak,
		streak.LongestStreak,
		streak.StreakStartDate,
		streak.LastLogDate,
		streak.UserID,
		prevLastLog,
	)
	if err != nil {
		return false, errors.New("updating streak error: " + err.Error())
	}
	return ct.RowsAffected() == 1, nil
}
