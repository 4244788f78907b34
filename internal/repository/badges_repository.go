package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/calai/internal/error_values"
	"github.com/limbo/calai/pkg/entity"
)

type BadgesRepository struct {
	conn PgConnection
}

func NewBadgesRepo(conn PgConnection) *BadgesRepository {
	return &BadgesRepository{
		conn: conn,
	}
}

func (br *BadgesRepository) GetByUserID(ctx context.Context, userID string) ([]entity.Badge, error) {
	rows, err := br.conn.Query(ctx, `SELECT id, user_id, badge_name, day_requirement, achieved_at FROM user_badges WHERE user_id = $1 ORDER BY day_requirement ASC;`, userID)
	if err != nil {
		return nil, errors.New("getting badges error: " + err.Error())
	}
	defer rows.Close()
	badges := make([]entity.Badge, 0)
	for rows.Next() {
		var b entity.Badge
		if err := rows.Scan(&b.ID, &b.UserID, &b.Name, &b.DayRequirement, &b.AchievedAt); err != nil {
			return nil, errors.New("badge row parsing error: " + err.Error())
		}
		badges = append(badges, b)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected badge rows error: " + err.Error())
	}
	return badges, nil
}

func (br *BadgesRepository) Create(ctx context.Context, badge *entity.Badge) error {
	row := br.conn.QueryRow(ctx, `INSERT INTO user_badges (user_id, badge_name, day_requirement) VALUES ($1, $2, $3) RETURNING id, achieved_at;`,
		badge.UserID,
		badge.Name,
		badge.DayRequirement,
	)
	if err := row.Scan(&badge.ID, &badge.AchievedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case uniqueViolation:
				return errorvalues.ErrBadgeExists
			}
		}
		return errors.New("awarding badge error: " + err.Error())
	}
	return nil
}
