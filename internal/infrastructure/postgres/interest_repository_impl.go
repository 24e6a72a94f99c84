package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sportsconnect/sportsconnect-api/internal/domain/repository"
)

type InterestRepository struct {
	pool *pgxpool.Pool
}

func NewInterestRepository(pool *pgxpool.Pool) *InterestRepository {
	return &InterestRepository{pool: pool}
}

func (r *InterestRepository) Add(ctx context.Context, userID string, universityID int64) error {
	res, err := r.pool.Exec(ctx, `
		INSERT INTO user_university_links (user_id, university_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, university_id) DO NOTHING
	`, userID, universityID)
	if err != nil {
		return mapErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrDuplicate
	}
	return nil
}

func (r *InterestRepository) Remove(ctx context.Context, userID string, universityID int64) (bool, error) {
	res, err := r.pool.Exec(ctx, `DELETE FROM user_university_links WHERE user_id = $1 AND university_id = $2`, userID, universityID)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

func (r *InterestRepository) UniversityIDs(ctx context.Context, userID string) ([]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT university_id FROM user_university_links WHERE user_id = $1 ORDER BY university_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list interests: %w", err)
	}
	defer rows.Close()
	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

var _ repository.InterestRepository = (*InterestRepository)(nil)
