package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sportsconnect/sportsconnect-api/internal/domain/entity"
	"github.com/sportsconnect/sportsconnect-api/internal/domain/listing"
	"github.com/sportsconnect/sportsconnect-api/internal/domain/repository"
)

type UniversityLinkRepository struct {
	pool *pgxpool.Pool
}

func NewUniversityLinkRepository(pool *pgxpool.Pool) *UniversityLinkRepository {
	return &UniversityLinkRepository{pool: pool}
}

func scanLink(row pgx.Row) (entity.UniversityLink, error) {
	var l entity.UniversityLink
	err := row.Scan(&l.ID, &l.Name, &l.Link)
	return l, mapErr(err)
}

func (r *UniversityLinkRepository) All(ctx context.Context) ([]entity.UniversityLink, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, link FROM university_links ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list university links: %w", err)
	}
	defer rows.Close()
	out := make([]entity.UniversityLink, 0)
	for rows.Next() {
		l, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *UniversityLinkRepository) Create(ctx context.Context, l *entity.UniversityLink) error {
	row := r.pool.QueryRow(ctx, `INSERT INTO university_links (name, link) VALUES ($1, $2) RETURNING id`, l.Name, l.Link)
	return mapErr(row.Scan(&l.ID))
}

func (r *UniversityLinkRepository) GetByID(ctx context.Context, id int64) (*entity.UniversityLink, error) {
	l, err := scanLink(r.pool.QueryRow(ctx, `SELECT id, name, link FROM university_links WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *UniversityLinkRepository) Update(ctx context.Context, l *entity.UniversityLink) error {
	res, err := r.pool.Exec(ctx, `UPDATE university_links SET name = $1, link = $2 WHERE id = $3`, l.Name, l.Link, l.ID)
	if err != nil {
		return mapErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UniversityLinkRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM university_links WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UniversityLinkRepository) List(ctx context.Context, p listing.Params) (listing.Page[entity.UniversityLink], error) {
	return runList(ctx, r.pool, repository.UniversityLinkList, p, scanLink)
}

var _ repository.UniversityLinkRepository = (*UniversityLinkRepository)(nil)
