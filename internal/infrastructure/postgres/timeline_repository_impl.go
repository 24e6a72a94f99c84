package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sportsconnect/sportsconnect-api/internal/domain/entity"
	"github.com/sportsconnect/sportsconnect-api/internal/domain/repository"
)

// TimelineRepository serves the experiences and educations tables, which share a shape.
type TimelineRepository struct {
	pool  *pgxpool.Pool
	table string
}

func NewExperienceRepository(pool *pgxpool.Pool) *TimelineRepository {
	return &TimelineRepository{pool: pool, table: "experiences"}
}

func NewEducationRepository(pool *pgxpool.Pool) *TimelineRepository {
	return &TimelineRepository{pool: pool, table: "educations"}
}

const timelineColumns = `id, owner_id, description, active, start_date, end_date, created_at`

func scanTimeline(row pgx.Row) (entity.TimelineItem, error) {
	var (
		it    entity.TimelineItem
		start pgtype.Date
		end   pgtype.Date
	)
	if err := row.Scan(&it.ID, &it.OwnerID, &it.Description, &it.Active, &start, &end, &it.CreatedAt); err != nil {
		return entity.TimelineItem{}, mapErr(err)
	}
	if s := dateFromPg(start); s != nil {
		it.StartDate = *s
	}
	it.EndDate = dateFromPg(end)
	return it, nil
}

func (r *TimelineRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.TimelineItem, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+timelineColumns+` FROM `+r.table+` WHERE owner_id = $1 ORDER BY id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.table, err)
	}
	defer rows.Close()

	items := make([]entity.TimelineItem, 0)
	for rows.Next() {
		it, err := scanTimeline(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *TimelineRepository) GetByID(ctx context.Context, id int64) (*entity.TimelineItem, error) {
	it, err := scanTimeline(r.pool.QueryRow(ctx, `SELECT `+timelineColumns+` FROM `+r.table+` WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// CreateCapped locks the owner row so concurrent creates cannot pass the cap together.
func (r *TimelineRepository) CreateCapped(ctx context.Context, item *entity.TimelineItem, max int) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		var owner string
		if err := tx.QueryRow(ctx, `SELECT id FROM users WHERE id = $1 FOR UPDATE`, item.OwnerID).Scan(&owner); err != nil {
			return mapErr(err)
		}
		var n int
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM `+r.table+` WHERE owner_id = $1`, item.OwnerID).Scan(&n); err != nil {
			return err
		}
		if n >= max {
			return repository.ErrLimitReached
		}
		row := tx.QueryRow(ctx, `
			INSERT INTO `+r.table+` (owner_id, description, active, start_date, end_date)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at
		`, item.OwnerID, item.Description, item.Active, dateToPg(&item.StartDate), dateToPg(item.EndDate))
		return mapErr(row.Scan(&item.ID, &item.CreatedAt))
	})
}

func (r *TimelineRepository) Update(ctx context.Context, item *entity.TimelineItem) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE `+r.table+`
		SET description = $1, active = $2, start_date = $3, end_date = $4
		WHERE id = $5
	`, item.Description, item.Active, dateToPg(&item.StartDate), dateToPg(item.EndDate), item.ID)
	if err != nil {
		return mapErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TimelineRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM `+r.table+` WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.TimelineRepository = (*TimelineRepository)(nil)
