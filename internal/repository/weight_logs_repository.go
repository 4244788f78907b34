package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/limbo/calai/pkg/entity"
)

type WeightLogsRepository struct {
	conn PgConnection
}

func NewWeightLogsRepo(conn PgConnection) *WeightLogsRepository {
	return &WeightLogsRepository{
		conn: conn,
	}
}

func (wr *WeightLogsRepository) Upsert(ctx context.Context, log *entity.WeightLog) error {
	if log == nil {
		return errors.New("weight log is nil")
	}
	row := wr.conn.QueryRow(ctx, `INSERT INTO weight_logs (user_id, date, weight) VALUES ($1, $2, $3)
		ON CONFLICT (user_id, date) DO UPDATE SET weight = EXCLUDED.weight RETURNING id, created_at;`,
		log.UserID,
		log.Date,
		log.Weight,
	)
	if err := row.Scan(&log.ID, &log.CreatedAt); err != nil {
		return errors.New("logging weight error: " + err.Error())
	}
	return nil
}

func (wr *WeightLogsRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*entity.WeightLog, error) {
	var wl entity.WeightLog
	row := wr.conn.QueryRow(ctx, `SELECT id, user_id, date, weight, created_at FROM weight_logs WHERE user_id = $1 AND date = $2;`, userID, date)
	if err := row.Scan(&wl.ID, &wl.UserID, &wl.Date, &wl.Weight, &wl.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting weight log error: " + err.Error())
	}
	return &wl, nil
}

func (wr *WeightLogsRepository) GetByUserID(ctx context.Context, userID string) ([]entity.WeightLog, error) {
	rows, err := wr.conn.Query(ctx, `SELECT id, user_id, date, weight, created_at FROM weight_logs WHERE user_id = $1 ORDER BY date ASC;`, userID)
	if err != nil {
		return nil, errors.New("getting weight history error: " + err.Error())
	}
	defer rows.Close()
	logs := make([]entity.WeightLog, 0)
	for rows.Next() {
		var wl entity.WeightLog
		if err := rows.Scan(&wl.ID, &wl.UserID, &wl.Date, &wl.Weight, &wl.CreatedAt); err != nil {
			return nil, errors.New("weight log row parsing error: " + err.Error())
		}
		logs = append(logs, wl)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected weight log rows error: " + err.Error())
	}
	return logs, nil
}
