package repository

import (
	"context"

	"github.com/sportsconnect/sportsconnect-api/internal/domain/entity"
	"github.com/sportsconnect/sportsconnect-api/internal/domain/listing"
)

type UniversityRepository interface {
	Create(ctx context.Context, u *entity.University) error
	GetByID(ctx context.Context, id int64) (*entity.University, error)
	GetByIDs(ctx context.Context, ids []int64) ([]entity.University, error)
	Update(ctx context.Context, u *entity.University) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, p listing.Params) (listing.Page[entity.University], error)
	// Browse is the directory listing: substring search, id order, limit -1 for all rows.
	Browse(ctx context.Context, search string, limit, offset int) ([]entity.University, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]entity.University, error)
}

// InterestRepository manages the user/university interest links.
type InterestRepository interface {
	// Add returns ErrDuplicate when the link already exists.
	Add(ctx context.Context, userID string, universityID int64) error
	// Remove reports whether a link was deleted.
	Remove(ctx context.Context, userID string, universityID int64) (bool, error)
	UniversityIDs(ctx context.Context, userID string) ([]int64, error)
}

type UniversityLinkRepository interface {
	All(ctx context.Context) ([]entity.UniversityLink, error)
	Create(ctx context.Context, l *entity.UniversityLink) error
	GetByID(ctx context.Context, id int64) (*entity.UniversityLink, error)
	Update(ctx context.Context, l *entity.UniversityLink) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, p listing.Params) (listing.Page[entity.UniversityLink], error)
}
