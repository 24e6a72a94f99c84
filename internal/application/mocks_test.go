package application

import (
	"context"
	"io"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/sportsconnect/sportsconnect-api/internal/domain/entity"
	"github.com/sportsconnect/sportsconnect-api/internal/domain/listing"
	repo "github.com/sportsconnect/sportsconnect-api/internal/domain/repository"
	"github.com/sportsconnect/sportsconnect-api/pkg/mailer"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type memUsers struct {
	rows map[string]entity.User
}

func newMemUsers(users ...entity.User) *memUsers {
	m := &memUsers{rows: map[string]entity.User{}}
	for _, u := range users {
		m.rows[u.ID] = u
	}
	return m
}

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	if _, ok := m.rows[u.ID]; ok {
		return repo.ErrDuplicate
	}
	for _, other := range m.rows {
		if u.Email != "" && other.Email == u.Email {
			return repo.ErrDuplicate
		}
	}
	m.rows[u.ID] = *u
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := m.rows[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &u, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.rows {
		if email != "" && u.Email == email {
			return &u, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *memUsers) GetPublic(ctx context.Context, id string) (*entity.User, error) {
	u, err := m.GetByID(ctx, id)
	if err != nil || !u.Public {
		return nil, repo.ErrNotFound
	}
	return u, nil
}

func (m *memUsers) GetRole(ctx context.Context, id string) (entity.Role, error) {
	u, err := m.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return u.Role, nil
}

func (m *memUsers) Update(_ context.Context, u *entity.User) error {
	if _, ok := m.rows[u.ID]; !ok {
		return repo.ErrNotFound
	}
	m.rows[u.ID] = *u
	return nil
}

func (m *memUsers) Delete(_ context.Context, id string) error {
	if _, ok := m.rows[id]; !ok {
		return repo.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memUsers) List(context.Context, listing.Params) (listing.Page[entity.User], error) {
	items := make([]entity.User, 0, len(m.rows))
	for _, u := range m.rows {
		items = append(items, u)
	}
	return listing.Page[entity.User]{Items: items, Total: len(items)}, nil
}

type memTimeline struct {
	rows   map[int64]entity.TimelineItem
	nextID int64
}

func newMemTimeline() *memTimeline {
	return &memTimeline{rows: map[int64]entity.TimelineItem{}}
}

func (m *memTimeline) ListByOwner(_ context.Context, ownerID string) ([]entity.TimelineItem, error) {
	out := []entity.TimelineItem{}
	for id := int64(1); id <= m.nextID; id++ {
		if it, ok := m.rows[id]; ok && it.OwnerID == ownerID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *memTimeline) GetByID(_ context.Context, id int64) (*entity.TimelineItem, error) {
	it, ok := m.rows[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &it, nil
}

func (m *memTimeline) CreateCapped(ctx context.Context, item *entity.TimelineItem, max int) error {
	mine, _ := m.ListByOwner(ctx, item.OwnerID)
	if len(mine) >= max {
		return repo.ErrLimitReached
	}
	m.nextID++
	item.ID = m.nextID
	m.rows[item.ID] = *item
	return nil
}

func (m *memTimeline) Update(_ context.Context, item *entity.TimelineItem) error {
	if _, ok := m.rows[item.ID]; !ok {
		return repo.ErrNotFound
	}
	m.rows[item.ID] = *item
	return nil
}

func (m *memTimeline) Delete(_ context.Context, id int64) error {
	if _, ok := m.rows[id]; !ok {
		return repo.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

type mockPhotos struct {
	getByOwnerFunc func(ctx context.Context, ownerID string) (*entity.ProfilePhoto, error)
	replaceFunc    func(ctx context.Context, p *entity.ProfilePhoto) (*entity.ProfilePhoto, error)
}

func (m *mockPhotos) GetByOwner(ctx context.Context, ownerID string) (*entity.ProfilePhoto, error) {
	if m.getByOwnerFunc == nil {
		return nil, repo.ErrNotFound
	}
	return m.getByOwnerFunc(ctx, ownerID)
}

func (m *mockPhotos) Replace(ctx context.Context, p *entity.ProfilePhoto) (*entity.ProfilePhoto, error) {
	return m.replaceFunc(ctx, p)
}

type memUniversities struct {
	rows      map[int64]entity.University
	interests map[string][]int64
}

func newMemUniversities(unis ...entity.University) *memUniversities {
	m := &memUniversities{rows: map[int64]entity.University{}, interests: map[string][]int64{}}
	for _, u := range unis {
		m.rows[u.ID] = u
	}
	return m
}

func (m *memUniversities) Create(_ context.Context, u *entity.University) error {
	u.ID = int64(len(m.rows) + 1)
	m.rows[u.ID] = *u
	return nil
}

func (m *memUniversities) GetByID(_ context.Context, id int64) (*entity.University, error) {
	u, ok := m.rows[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &u, nil
}

func (m *memUniversities) GetByIDs(_ context.Context, ids []int64) ([]entity.University, error) {
	out := []entity.University{}
	for _, id := range ids {
		if u, ok := m.rows[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *memUniversities) Update(_ context.Context, u *entity.University) error {
	if _, ok := m.rows[u.ID]; !ok {
		return repo.ErrNotFound
	}
	m.rows[u.ID] = *u
	return nil
}

func (m *memUniversities) Delete(_ context.Context, id int64) error {
	if _, ok := m.rows[id]; !ok {
		return repo.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memUniversities) List(context.Context, listing.Params) (listing.Page[entity.University], error) {
	return listing.Page[entity.University]{}, nil
}

func (m *memUniversities) Browse(_ context.Context, _ string, limit, offset int) ([]entity.University, error) {
	ids := make([]int64, 0, len(m.rows))
	for id := range m.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := []entity.University{}
	for _, id := range ids {
		out = append(out, m.rows[id])
	}
	if offset >= len(out) {
		return []entity.University{}, nil
	}
	out = out[offset:]
	if limit != listing.Unlimited && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (m *memUniversities) ListByUser(ctx context.Context, userID string, _, _ int) ([]entity.University, error) {
	return m.GetByIDs(ctx, m.interests[userID])
}

// memUniversities doubles as the interest repository.

func (m *memUniversities) Add(_ context.Context, userID string, universityID int64) error {
	for _, id := range m.interests[userID] {
		if id == universityID {
			return repo.ErrDuplicate
		}
	}
	m.interests[userID] = append(m.interests[userID], universityID)
	return nil
}

func (m *memUniversities) Remove(_ context.Context, userID string, universityID int64) (bool, error) {
	ids := m.interests[userID]
	for i, id := range ids {
		if id == universityID {
			m.interests[userID] = append(ids[:i], ids[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *memUniversities) UniversityIDs(_ context.Context, userID string) ([]int64, error) {
	return m.interests[userID], nil
}

type mockLinks struct {
	allFunc    func(ctx context.Context) ([]entity.UniversityLink, error)
	createFunc func(ctx context.Context, l *entity.UniversityLink) error
	deleteFunc func(ctx context.Context, id int64) error
}

func (m *mockLinks) All(ctx context.Context) ([]entity.UniversityLink, error) { return m.allFunc(ctx) }
func (m *mockLinks) Create(ctx context.Context, l *entity.UniversityLink) error {
	return m.createFunc(ctx, l)
}
func (m *mockLinks) GetByID(context.Context, int64) (*entity.UniversityLink, error) {
	return nil, repo.ErrNotFound
}
func (m *mockLinks) Update(context.Context, *entity.UniversityLink) error { return nil }
func (m *mockLinks) Delete(ctx context.Context, id int64) error           { return m.deleteFunc(ctx, id) }
func (m *mockLinks) List(context.Context, listing.Params) (listing.Page[entity.UniversityLink], error) {
	return listing.Page[entity.UniversityLink]{}, nil
}

type memSessions struct {
	rows map[string]Session
}

func newMemSessions() *memSessions { return &memSessions{rows: map[string]Session{}} }

func (m *memSessions) Save(_ context.Context, s Session) error {
	m.rows[s.UserID] = s
	return nil
}

func (m *memSessions) Get(_ context.Context, userID string) (*Session, error) {
	s, ok := m.rows[userID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *memSessions) Delete(_ context.Context, userID string) error {
	delete(m.rows, userID)
	return nil
}

type mockStorage struct {
	uploadFunc func(ctx context.Context, key, contentType string, r io.Reader) (string, error)
	deleted    []string
}

func (m *mockStorage) Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	return m.uploadFunc(ctx, key, contentType, r)
}

func (m *mockStorage) Delete(_ context.Context, key string) error {
	m.deleted = append(m.deleted, key)
	return nil
}

type mockMailer struct {
	sendFunc func(ctx context.Context, msg mailer.Message) error
}

func (m *mockMailer) Send(ctx context.Context, msg mailer.Message) error { return m.sendFunc(ctx, msg) }

type memLinkCache struct {
	links       map[string]string
	invalidated int
}

func (m *memLinkCache) Get(context.Context) (map[string]string, bool, error) {
	return m.links, m.links != nil, nil
}

func (m *memLinkCache) Set(_ context.Context, links map[string]string) error {
	m.links = links
	return nil
}

func (m *memLinkCache) Invalidate(context.Context) error {
	m.links = nil
	m.invalidated++
	return nil
}

type mockIndex struct {
	searchFunc func(ctx context.Context, q string, size int) ([]int64, error)
	indexed    []int64
	removed    []int64
}

func (m *mockIndex) Index(_ context.Context, u entity.University) error {
	m.indexed = append(m.indexed, u.ID)
	return nil
}

func (m *mockIndex) Remove(_ context.Context, id int64) error {
	m.removed = append(m.removed, id)
	return nil
}

func (m *mockIndex) Search(ctx context.Context, q string, size int) ([]int64, error) {
	return m.searchFunc(ctx, q, size)
}

func errNotFoundRepo() error { return repo.ErrNotFound }
