package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sportsconnect/sportsconnect-api/internal/domain/entity"
	"github.com/sportsconnect/sportsconnect-api/internal/domain/repository"
)

const photoColumns = `id, owner_id, photo_name, photo_url, is_deleted, created_at`

type ProfilePhotoRepository struct {
	pool *pgxpool.Pool
}

func NewProfilePhotoRepository(pool *pgxpool.Pool) *ProfilePhotoRepository {
	return &ProfilePhotoRepository{pool: pool}
}

func scanPhoto(row pgx.Row) (*entity.ProfilePhoto, error) {
	var p entity.ProfilePhoto
	if err := row.Scan(&p.ID, &p.OwnerID, &p.PhotoName, &p.PhotoURL, &p.IsDeleted, &p.CreatedAt); err != nil {
		return nil, mapErr(err)
	}
	return &p, nil
}

func (r *ProfilePhotoRepository) GetByOwner(ctx context.Context, ownerID string) (*entity.ProfilePhoto, error) {
	return scanPhoto(r.pool.QueryRow(ctx, `SELECT `+photoColumns+` FROM profile_photos WHERE owner_id = $1`, ownerID))
}

// Replace swaps the owner's photo row and returns the previous one, if any.
// Concurrent replaces for one owner are serialized on the owner's users row,
// so a first upload racing another never trips the owner_id unique key.
func (r *ProfilePhotoRepository) Replace(ctx context.Context, p *entity.ProfilePhoto) (*entity.ProfilePhoto, error) {
	var old *entity.ProfilePhoto
	err := inTx(ctx, r.pool, func(tx pgx.Tx) error {
		var owner string
		if err := tx.QueryRow(ctx, `SELECT id FROM users WHERE id = $1 FOR UPDATE`, p.OwnerID).Scan(&owner); err != nil {
			return mapErr(err)
		}
		prev, err := scanPhoto(tx.QueryRow(ctx, `DELETE FROM profile_photos WHERE owner_id = $1 RETURNING `+photoColumns, p.OwnerID))
		switch {
		case errors.Is(err, repository.ErrNotFound):
		case err != nil:
			return err
		default:
			old = prev
		}
		row := tx.QueryRow(ctx, `
			INSERT INTO profile_photos (owner_id, photo_name, photo_url)
			VALUES ($1, $2, $3)
			RETURNING id, is_deleted, created_at
		`, p.OwnerID, p.PhotoName, p.PhotoURL)
		return mapErr(row.Scan(&p.ID, &p.IsDeleted, &p.CreatedAt))
	})
	if err != nil {
		return nil, err
	}
	return old, nil
}

var _ repository.ProfilePhotoRepository = (*ProfilePhotoRepository)(nil)
