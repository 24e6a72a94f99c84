package repository

import (
	"context"

	"github.com/sportsconnect/sportsconnect-api/internal/domain/entity"
)

type ProfilePhotoRepository interface {
	GetByOwner(ctx context.Context, ownerID string) (*entity.ProfilePhoto, error)
	// Replace atomically removes the owner's current row (returned, or nil)
	// and inserts p.
	Replace(ctx context.Context, p *entity.ProfilePhoto) (*entity.ProfilePhoto, error)
}
