package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/sportsconnect/sportsconnect-api/internal/domain/entity"
	repo "github.com/sportsconnect/sportsconnect-api/internal/domain/repository"
)

// TimelineService manages one kind of owner-scoped history item.
type TimelineService struct {
	Kind   entity.TimelineKind
	Items  repo.TimelineRepository
	Users  repo.UserRepository
	Logger *logrus.Logger
}

func NewTimelineService(kind entity.TimelineKind, items repo.TimelineRepository, users repo.UserRepository, logger *logrus.Logger) *TimelineService {
	return &TimelineService{Kind: kind, Items: items, Users: users, Logger: logger}
}

type TimelineInput struct {
	Description string
	Active      bool
	StartDate   entity.Date
	EndDate     *entity.Date
}

func (s *TimelineService) noun() string {
	if s.Kind == entity.KindEducation {
		return "education"
	}
	return "experience"
}

func (s *TimelineService) ListMine(ctx context.Context, userID string) ([]entity.TimelineItem, error) {
	return s.Items.ListByOwner(ctx, userID)
}

// ListPublic lists the items of a user whose profile is public.
func (s *TimelineService) ListPublic(ctx context.Context, userID string) ([]entity.TimelineItem, error) {
	if _, err := s.Users.GetPublic(ctx, userID); err != nil {
		return nil, orNotFound(err, "The user")
	}
	return s.Items.ListByOwner(ctx, userID)
}

func (s *TimelineService) Create(ctx context.Context, userID string, in TimelineInput) (*entity.TimelineItem, error) {
	item := &entity.TimelineItem{
		OwnerID:     userID,
		Description: in.Description,
		Active:      in.Active,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
	}
	if err := checkDates(item); err != nil {
		return nil, err
	}
	err := s.Items.CreateCapped(ctx, item, entity.MaxTimelineItems)
	switch {
	case errors.Is(err, repo.ErrLimitReached):
		return nil, NewError(KindUnprocessable, fmt.Sprintf("You can only have a maximum of %d %s items", entity.MaxTimelineItems, s.noun()))
	case err != nil:
		return nil, orNotFound(err, "The user")
	}
	return item, nil
}

func (s *TimelineService) Update(ctx context.Context, userID string, id int64, patch entity.TimelinePatch) (*entity.TimelineItem, error) {
	item, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(item)
	if err := checkDates(item); err != nil {
		return nil, err
	}
	if err := s.Items.Update(ctx, item); err != nil {
		return nil, orNotFound(err, s.title(id))
	}
	return item, nil
}

func (s *TimelineService) Delete(ctx context.Context, userID string, id int64) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	return orNotFound(s.Items.Delete(ctx, id), s.title(id))
}

// owned loads item id and requires the caller to own it.
func (s *TimelineService) owned(ctx context.Context, userID string, id int64) (*entity.TimelineItem, error) {
	item, err := s.Items.GetByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, s.title(id))
	}
	if item.OwnerID != userID {
		s.Logger.WithFields(logrus.Fields{"user_id": userID, "item_id": id, "kind": s.Kind}).Warn("ownership check failed")
		return nil, ErrForbidden
	}
	return item, nil
}

func (s *TimelineService) title(id int64) string {
	return fmt.Sprintf("The %s with id: %d", s.noun(), id)
}

func checkDates(it *entity.TimelineItem) error {
	if it.EndDate != nil && it.EndDate.Before(it.StartDate.Time) {
		return NewError(KindBadRequest, "end_date must not be before start_date")
	}
	return nil
}
