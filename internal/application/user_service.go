package application

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sportsconnect/sportsconnect-api/internal/domain/entity"
	"github.com/sportsconnect/sportsconnect-api/internal/domain/listing"
	repo "github.com/sportsconnect/sportsconnect-api/internal/domain/repository"
	"github.com/sportsconnect/sportsconnect-api/pkg/helpers"
)

type UserService struct {
	Users        repo.UserRepository
	Experiences  repo.TimelineRepository
	Educations   repo.TimelineRepository
	Photos       repo.ProfilePhotoRepository
	Universities repo.UniversityRepository
	Interests    repo.InterestRepository
	Logger       *logrus.Logger
}

// Me returns the caller's full profile.
func (s *UserService) Me(ctx context.Context, userID string) (*entity.Profile, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, orNotFound(err, "The user")
	}
	return s.profile(ctx, u)
}

// PublicProfile returns a profile only when its owner made it public.
func (s *UserService) PublicProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	u, err := s.Users.GetPublic(ctx, userID)
	if err != nil {
		return nil, orNotFound(err, "The user")
	}
	return s.profile(ctx, u)
}

// UpdateMe applies a partial update to the caller's own row. Role changes are
// reserved to admins and ignored here.
func (s *UserService) UpdateMe(ctx context.Context, userID string, patch entity.UserPatch) (*entity.Profile, error) {
	patch.Role = nil
	u, err := s.update(ctx, userID, patch)
	if err != nil {
		return nil, err
	}
	return s.profile(ctx, u)
}

func (s *UserService) AddInterest(ctx context.Context, userID string, universityID int64) (*entity.Profile, error) {
	if _, err := s.Universities.GetByID(ctx, universityID); err != nil {
		return nil, orNotFound(err, "The university")
	}
	if err := s.Interests.Add(ctx, userID, universityID); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, NewError(KindConflict, "You are already interested in this university")
		}
		return nil, err
	}
	return s.Me(ctx, userID)
}

func (s *UserService) RemoveInterest(ctx context.Context, userID string, universityID int64) error {
	if _, err := s.Universities.GetByID(ctx, universityID); err != nil {
		return orNotFound(err, "The university")
	}
	removed, err := s.Interests.Remove(ctx, userID, universityID)
	if err != nil {
		return err
	}
	if !removed {
		return NewError(KindConflict, "You were not interested in this university")
	}
	return nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, "The user")
	}
	return u, nil
}

func (s *UserService) ListUsers(ctx context.Context, p listing.Params) (listing.Page[entity.User], error) {
	page, err := s.Users.List(ctx, p)
	return page, badList(err)
}

// CreateUser is the admin creation path. An empty id gets a fresh uuid and
// an empty password leaves the account without password sign-in.
func (s *UserService) CreateUser(ctx context.Context, u entity.User, password string) (*entity.User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.Role == "" {
		u.Role = entity.RoleUser
	}
	if !u.Role.Valid() {
		return nil, NewError(KindBadRequest, "role must be user or admin")
	}
	if err := s.ensureEmailFree(ctx, u.Email, ""); err != nil {
		return nil, err
	}
	if password != "" {
		hash, err := helpers.HashPassword(password)
		if err != nil {
			return nil, err
		}
		u.Password = hash
	}
	if err := s.Users.Create(ctx, &u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, NewError(KindUnprocessable, "User id or email is used by another user")
		}
		return nil, err
	}
	s.Logger.WithField("user_id", u.ID).Info("user created by admin")
	return &u, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id string, patch entity.UserPatch) (*entity.User, error) {
	if patch.Role != nil && !patch.Role.Valid() {
		return nil, NewError(KindBadRequest, "role must be user or admin")
	}
	return s.update(ctx, id, patch)
}

func (s *UserService) DeleteUsers(ctx context.Context, f listing.Filter) error {
	if err := requireFilter(f); err != nil {
		return err
	}
	return deleteEach(ctx, f.Values, "User", s.Users.Delete)
}

func (s *UserService) update(ctx context.Context, id string, patch entity.UserPatch) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, "The user")
	}
	if patch.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*patch.Email))
		patch.Email = &email
		if err := s.ensureEmailFree(ctx, email, id); err != nil {
			return nil, err
		}
	}
	patch.Apply(u)
	if err := s.Users.Update(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, orNotFound(err, "The user")
	}
	return u, nil
}

// ensureEmailFree fails when email belongs to a user other than self.
func (s *UserService) ensureEmailFree(ctx context.Context, email, self string) error {
	if email == "" {
		return nil
	}
	other, err := s.Users.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return nil
	case err != nil:
		return err
	case other.ID != self:
		return ErrEmailTaken
	}
	return nil
}

func (s *UserService) profile(ctx context.Context, u *entity.User) (*entity.Profile, error) {
	p := &entity.Profile{User: *u}
	var err error
	if p.Experiences, err = s.Experiences.ListByOwner(ctx, u.ID); err != nil {
		return nil, err
	}
	if p.Educations, err = s.Educations.ListByOwner(ctx, u.ID); err != nil {
		return nil, err
	}
	photo, err := s.Photos.GetByOwner(ctx, u.ID)
	switch {
	case errors.Is(err, repo.ErrNotFound):
	case err != nil:
		return nil, err
	default:
		p.ProfilePhoto = photo
	}
	if p.Universities, err = s.Universities.ListByUser(ctx, u.ID, listing.Unlimited, 0); err != nil {
		return nil, err
	}
	return p, nil
}
