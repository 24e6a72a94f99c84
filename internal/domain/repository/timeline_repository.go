package repository

import (
	"context"

	"github.com/sportsconnect/sportsconnect-api/internal/domain/entity"
)

// TimelineRepository stores one kind of timeline item (experience or education).
type TimelineRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]entity.TimelineItem, error)
	GetByID(ctx context.Context, id int64) (*entity.TimelineItem, error)
	// CreateCapped inserts item unless the owner already holds max items,
	// in which case it returns ErrLimitReached.
	CreateCapped(ctx context.Context, item *entity.TimelineItem, max int) error
	Update(ctx context.Context, item *entity.TimelineItem) error
	Delete(ctx context.Context, id int64) error
}
