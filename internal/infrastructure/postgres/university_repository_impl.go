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

const universityColumns = `id, name, city, state, conference, division, category, region, created_at`

type UniversityRepository struct {
	pool *pgxpool.Pool
}

func NewUniversityRepository(pool *pgxpool.Pool) *UniversityRepository {
	return &UniversityRepository{pool: pool}
}

func scanUniversity(row pgx.Row) (entity.University, error) {
	var u entity.University
	err := row.Scan(&u.ID, &u.Name, &u.City, &u.State, &u.Conference, &u.Division, &u.Category, &u.Region, &u.CreatedAt)
	return u, mapErr(err)
}

func collectUniversities(rows pgx.Rows) ([]entity.University, error) {
	defer rows.Close()
	out := make([]entity.University, 0)
	for rows.Next() {
		u, err := scanUniversity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UniversityRepository) Create(ctx context.Context, u *entity.University) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO universities (name, city, state, conference, division, category, region)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, u.Name, u.City, u.State, u.Conference, u.Division, u.Category, u.Region)
	return mapErr(row.Scan(&u.ID, &u.CreatedAt))
}

func (r *UniversityRepository) GetByID(ctx context.Context, id int64) (*entity.University, error) {
	u, err := scanUniversity(r.pool.QueryRow(ctx, `SELECT `+universityColumns+` FROM universities WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByIDs returns the rows in the order of ids, skipping unknown ids.
func (r *UniversityRepository) GetByIDs(ctx context.Context, ids []int64) ([]entity.University, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+universityColumns+`
		FROM universities
		WHERE id = ANY($1)
		ORDER BY array_position($1, id)
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("get universities: %w", err)
	}
	return collectUniversities(rows)
}

func (r *UniversityRepository) Update(ctx context.Context, u *entity.University) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE universities
		SET name = $1, city = $2, state = $3, conference = $4, division = $5, category = $6, region = $7
		WHERE id = $8
	`, u.Name, u.City, u.State, u.Conference, u.Division, u.Category, u.Region, u.ID)
	if err != nil {
		return mapErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UniversityRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM universities WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UniversityRepository) List(ctx context.Context, p listing.Params) (listing.Page[entity.University], error) {
	return runList(ctx, r.pool, repository.UniversityList, p, scanUniversity)
}

func (r *UniversityRepository) Browse(ctx context.Context, search string, limit, offset int) ([]entity.University, error) {
	p := listing.Params{
		Limit:  limit,
		Offset: offset,
		Order:  listing.Order{Column: "id"},
		Search: search,
	}
	q, err := buildList(repository.UniversityList, p)
	if err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, q.listSQL, q.listArgs...)
	if err != nil {
		return nil, fmt.Errorf("browse universities: %w", err)
	}
	return collectUniversities(rows)
}

func (r *UniversityRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]entity.University, error) {
	args := []any{userID, offset}
	page := " OFFSET $2"
	if limit != listing.Unlimited {
		args = append(args, limit)
		page += " LIMIT $3"
	}
	rows, err := r.pool.Query(ctx, `
		SELECT u.id, u.name, u.city, u.state, u.conference, u.division, u.category, u.region, u.created_at
		FROM universities u
		JOIN user_university_links l ON l.university_id = u.id
		WHERE l.user_id = $1
		ORDER BY u.id`+page, args...)
	if err != nil {
		return nil, fmt.Errorf("list user universities: %w", err)
	}
	return collectUniversities(rows)
}

var _ repository.UniversityRepository = (*UniversityRepository)(nil)
