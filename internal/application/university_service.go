package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/sportsconnect/sportsconnect-api/internal/domain/entity"
	"github.com/sportsconnect/sportsconnect-api/internal/domain/listing"
	repo "github.com/sportsconnect/sportsconnect-api/internal/domain/repository"
)

// UniversityView is a directory row as shown to a reader.
type UniversityView struct {
	entity.University
	Interested bool
	Link       string
}

type UniversityService struct {
	Universities repo.UniversityRepository
	Interests    repo.InterestRepository
	Links        repo.UniversityLinkRepository
	Cache        LinkCache       // optional
	Index        UniversityIndex // optional; SQL search is used without it
	Logger       *logrus.Logger
}

const maxSearchSize = 50

// Public is the anonymous directory; nothing is marked interested.
func (s *UniversityService) Public(ctx context.Context, search string, limit, skip int) ([]UniversityView, error) {
	return s.browse(ctx, "", search, limit, skip)
}

// ForUser is the directory with the caller's interests flagged.
func (s *UniversityService) ForUser(ctx context.Context, userID, search string, limit, skip int) ([]UniversityView, error) {
	return s.browse(ctx, userID, search, limit, skip)
}

func (s *UniversityService) InterestedOnly(ctx context.Context, userID string, limit, skip int) ([]UniversityView, error) {
	if err := checkPage(limit, skip); err != nil {
		return nil, err
	}
	unis, err := s.Universities.ListByUser(ctx, userID, limit, skip)
	if err != nil {
		return nil, err
	}
	links, err := s.linkMap(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UniversityView, 0, len(unis))
	for _, u := range unis {
		out = append(out, UniversityView{University: u, Interested: true, Link: links[u.Name]})
	}
	return out, nil
}

// Search runs a full-text query through the index, or a substring search
// over the directory when no index is configured.
func (s *UniversityService) Search(ctx context.Context, userID, q string, size int) ([]UniversityView, error) {
	if size <= 0 || size > maxSearchSize {
		size = listing.DefaultLimit
	}
	if s.Index == nil {
		return s.browse(ctx, userID, q, size, 0)
	}
	ids, err := s.Index.Search(ctx, q, size)
	if err != nil {
		s.Logger.WithError(err).Warn("university index search failed, using sql")
		return s.browse(ctx, userID, q, size, 0)
	}
	unis, err := s.Universities.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return s.decorate(ctx, userID, unis)
}

func (s *UniversityService) browse(ctx context.Context, userID, search string, limit, skip int) ([]UniversityView, error) {
	if err := checkPage(limit, skip); err != nil {
		return nil, err
	}
	unis, err := s.Universities.Browse(ctx, search, limit, skip)
	if err != nil {
		return nil, err
	}
	return s.decorate(ctx, userID, unis)
}

func (s *UniversityService) decorate(ctx context.Context, userID string, unis []entity.University) ([]UniversityView, error) {
	links, err := s.linkMap(ctx)
	if err != nil {
		return nil, err
	}
	interested := map[int64]bool{}
	if userID != "" {
		ids, err := s.Interests.UniversityIDs(ctx, userID)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			interested[id] = true
		}
	}
	out := make([]UniversityView, 0, len(unis))
	for _, u := range unis {
		out = append(out, UniversityView{University: u, Interested: interested[u.ID], Link: links[u.Name]})
	}
	return out, nil
}

// linkMap returns name -> display URL, served from the cache when possible.
func (s *UniversityService) linkMap(ctx context.Context) (map[string]string, error) {
	if s.Cache != nil {
		if m, ok, err := s.Cache.Get(ctx); err != nil {
			s.Logger.WithError(err).Warn("link cache read failed")
		} else if ok {
			return m, nil
		}
	}
	all, err := s.Links.All(ctx)
	if err != nil {
		return nil, err
	}
	m := make(map[string]string, len(all))
	for _, l := range all {
		m[l.Name] = l.Link
	}
	if s.Cache != nil {
		if err := s.Cache.Set(ctx, m); err != nil {
			s.Logger.WithError(err).Warn("link cache write failed")
		}
	}
	return m, nil
}

func checkPage(limit, skip int) error {
	if skip < 0 {
		return NewError(KindBadRequest, "skip must be >= 0")
	}
	if limit != listing.Unlimited && (limit < 1 || limit > listing.MaxLimit) {
		return NewError(KindBadRequest, fmt.Sprintf("limit must be -1 or between 1 and %d", listing.MaxLimit))
	}
	return nil
}

// Admin: universities.

func (s *UniversityService) GetUniversity(ctx context.Context, rawID string) (*entity.University, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	u, err := s.Universities.GetByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, "The university")
	}
	return u, nil
}

func (s *UniversityService) ListUniversities(ctx context.Context, p listing.Params) (listing.Page[entity.University], error) {
	page, err := s.Universities.List(ctx, p)
	return page, badList(err)
}

func (s *UniversityService) CreateUniversity(ctx context.Context, u entity.University) (*entity.University, error) {
	if err := s.Universities.Create(ctx, &u); err != nil {
		return nil, err
	}
	s.reindex(ctx, u)
	return &u, nil
}

func (s *UniversityService) UpdateUniversity(ctx context.Context, rawID string, patch entity.UniversityPatch) (*entity.University, error) {
	u, err := s.GetUniversity(ctx, rawID)
	if err != nil {
		return nil, err
	}
	patch.Apply(u)
	if err := s.Universities.Update(ctx, u); err != nil {
		return nil, orNotFound(err, "The university")
	}
	s.reindex(ctx, *u)
	return u, nil
}

func (s *UniversityService) DeleteUniversities(ctx context.Context, f listing.Filter) error {
	ids, err := filterInt64s(f)
	if err != nil {
		return err
	}
	return deleteEach(ctx, ids, "University", func(ctx context.Context, id int64) error {
		if err := s.Universities.Delete(ctx, id); err != nil {
			return err
		}
		if s.Index != nil {
			if err := s.Index.Remove(ctx, id); err != nil {
				s.Logger.WithError(err).WithField("university_id", id).Warn("university unindex failed")
			}
		}
		return nil
	})
}

// Reindex pushes every university into the search index.
func (s *UniversityService) Reindex(ctx context.Context) (int, error) {
	if s.Index == nil {
		return 0, nil
	}
	all, err := s.Universities.Browse(ctx, "", listing.Unlimited, 0)
	if err != nil {
		return 0, err
	}
	for _, u := range all {
		if err := s.Index.Index(ctx, u); err != nil {
			return 0, fmt.Errorf("index university %d: %w", u.ID, err)
		}
	}
	return len(all), nil
}

func (s *UniversityService) reindex(ctx context.Context, u entity.University) {
	if s.Index == nil {
		return
	}
	if err := s.Index.Index(ctx, u); err != nil {
		s.Logger.WithError(err).WithField("university_id", u.ID).Warn("university index failed")
	}
}

// Admin: university links.

func (s *UniversityService) GetLink(ctx context.Context, rawID string) (*entity.UniversityLink, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	l, err := s.Links.GetByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, "The university link")
	}
	return l, nil
}

func (s *UniversityService) ListLinks(ctx context.Context, p listing.Params) (listing.Page[entity.UniversityLink], error) {
	page, err := s.Links.List(ctx, p)
	return page, badList(err)
}

func (s *UniversityService) CreateLink(ctx context.Context, l entity.UniversityLink) (*entity.UniversityLink, error) {
	if err := s.Links.Create(ctx, &l); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, NewError(KindUnprocessable, "A link for this university name already exists")
		}
		return nil, err
	}
	s.invalidateLinks(ctx)
	return &l, nil
}

func (s *UniversityService) UpdateLink(ctx context.Context, rawID string, patch entity.UniversityLinkPatch) (*entity.UniversityLink, error) {
	l, err := s.GetLink(ctx, rawID)
	if err != nil {
		return nil, err
	}
	patch.Apply(l)
	if err := s.Links.Update(ctx, l); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, NewError(KindUnprocessable, "A link for this university name already exists")
		}
		return nil, orNotFound(err, "The university link")
	}
	s.invalidateLinks(ctx)
	return l, nil
}

func (s *UniversityService) DeleteLinks(ctx context.Context, f listing.Filter) error {
	ids, err := filterInt64s(f)
	if err != nil {
		return err
	}
	defer s.invalidateLinks(ctx)
	return deleteEach(ctx, ids, "University link", s.Links.Delete)
}

func (s *UniversityService) invalidateLinks(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Invalidate(ctx); err != nil {
		s.Logger.WithError(err).Warn("link cache invalidate failed")
	}
}
