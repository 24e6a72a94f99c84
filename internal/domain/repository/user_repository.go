package repository

import (
	"context"

	"github.com/sportsconnect/sportsconnect-api/internal/domain/entity"
	"github.com/sportsconnect/sportsconnect-api/internal/domain/listing"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetPublic returns the user only when the profile is public.
	GetPublic(ctx context.Context, id string) (*entity.User, error)
	GetRole(ctx context.Context, id string) (entity.Role, error)
	Update(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, p listing.Params) (listing.Page[entity.User], error)
}
