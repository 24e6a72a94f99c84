package handlers

import (
	"context"
	"io"

	"github.com/sportsconnect/sportsconnect-api/internal/application"
	"github.com/sportsconnect/sportsconnect-api/internal/domain/entity"
	"github.com/sportsconnect/sportsconnect-api/internal/domain/listing"
	"github.com/sportsconnect/sportsconnect-api/internal/infrastructure/googleauth"
)

// The interfaces below are the parts of the application services each
// handler calls; *application.XService values satisfy them.

type AuthService interface {
	SignUp(ctx context.Context, in application.SignUpInput) (*entity.User, application.TokenPair, error)
	SignIn(ctx context.Context, email, password string) (*entity.User, application.TokenPair, error)
	SignInExternal(ctx context.Context, email, name string) (*entity.User, application.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (application.TokenPair, string, error)
	SignOut(ctx context.Context, userID string) error
}

// GoogleProvider is nil when Google sign-in is not configured.
type GoogleProvider interface {
	LoginURL(state, nonce string) string
	Exchange(ctx context.Context, code, nonce string) (googleauth.GoogleIdentity, error)
}

type ProfileService interface {
	Me(ctx context.Context, userID string) (*entity.Profile, error)
	PublicProfile(ctx context.Context, userID string) (*entity.Profile, error)
	UpdateMe(ctx context.Context, userID string, patch entity.UserPatch) (*entity.Profile, error)
	AddInterest(ctx context.Context, userID string, universityID int64) (*entity.Profile, error)
	RemoveInterest(ctx context.Context, userID string, universityID int64) error
}

type PhotoService interface {
	Upload(ctx context.Context, userID, filename, contentType string, r io.Reader) (string, error)
	Current(ctx context.Context, userID string) (string, error)
}

type TimelineService interface {
	ListMine(ctx context.Context, userID string) ([]entity.TimelineItem, error)
	ListPublic(ctx context.Context, userID string) ([]entity.TimelineItem, error)
	Create(ctx context.Context, userID string, in application.TimelineInput) (*entity.TimelineItem, error)
	Update(ctx context.Context, userID string, id int64, patch entity.TimelinePatch) (*entity.TimelineItem, error)
	Delete(ctx context.Context, userID string, id int64) error
}

type DirectoryService interface {
	Public(ctx context.Context, search string, limit, skip int) ([]application.UniversityView, error)
	ForUser(ctx context.Context, userID, search string, limit, skip int) ([]application.UniversityView, error)
	InterestedOnly(ctx context.Context, userID string, limit, skip int) ([]application.UniversityView, error)
	Search(ctx context.Context, userID, q string, size int) ([]application.UniversityView, error)
}

type UserAdminService interface {
	GetUser(ctx context.Context, id string) (*entity.User, error)
	ListUsers(ctx context.Context, p listing.Params) (listing.Page[entity.User], error)
	CreateUser(ctx context.Context, u entity.User, password string) (*entity.User, error)
	UpdateUser(ctx context.Context, id string, patch entity.UserPatch) (*entity.User, error)
	DeleteUsers(ctx context.Context, f listing.Filter) error
}

type UniversityAdminService interface {
	GetUniversity(ctx context.Context, rawID string) (*entity.University, error)
	ListUniversities(ctx context.Context, p listing.Params) (listing.Page[entity.University], error)
	CreateUniversity(ctx context.Context, u entity.University) (*entity.University, error)
	UpdateUniversity(ctx context.Context, rawID string, patch entity.UniversityPatch) (*entity.University, error)
	DeleteUniversities(ctx context.Context, f listing.Filter) error

	GetLink(ctx context.Context, rawID string) (*entity.UniversityLink, error)
	ListLinks(ctx context.Context, p listing.Params) (listing.Page[entity.UniversityLink], error)
	CreateLink(ctx context.Context, l entity.UniversityLink) (*entity.UniversityLink, error)
	UpdateLink(ctx context.Context, rawID string, patch entity.UniversityLinkPatch) (*entity.UniversityLink, error)
	DeleteLinks(ctx context.Context, f listing.Filter) error
}

type ContactService interface {
	SendContact(ctx context.Context, in application.ContactInput) error
}
