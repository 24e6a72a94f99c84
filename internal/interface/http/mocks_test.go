package handlers

import (
	"context"
	"io"

	"github.com/sportsconnect/sportsconnect-api/internal/application"
	"github.com/sportsconnect/sportsconnect-api/internal/domain/entity"
	"github.com/sportsconnect/sportsconnect-api/internal/domain/listing"
	"github.com/sportsconnect/sportsconnect-api/internal/infrastructure/googleauth"
)

// tokenIsUser accepts any access token and treats it as the user id.
type tokenIsUser struct{}

func (tokenIsUser) Verify(_ context.Context, token string) (application.Identity, error) {
	if token == "" {
		return application.Identity{}, application.ErrUnauthenticated
	}
	return application.Identity{UserID: token, SessionID: "sid"}, nil
}

type mockAuth struct {
	signUpFunc   func(ctx context.Context, in application.SignUpInput) (*entity.User, application.TokenPair, error)
	signInFunc   func(ctx context.Context, email, password string) (*entity.User, application.TokenPair, error)
	externalFunc func(ctx context.Context, email, name string) (*entity.User, application.TokenPair, error)
	refreshFunc  func(ctx context.Context, token string) (application.TokenPair, string, error)
	signOutFunc  func(ctx context.Context, userID string) error
}

func (m *mockAuth) SignUp(ctx context.Context, in application.SignUpInput) (*entity.User, application.TokenPair, error) {
	return m.signUpFunc(ctx, in)
}

func (m *mockAuth) SignIn(ctx context.Context, email, password string) (*entity.User, application.TokenPair, error) {
	return m.signInFunc(ctx, email, password)
}

func (m *mockAuth) SignInExternal(ctx context.Context, email, name string) (*entity.User, application.TokenPair, error) {
	return m.externalFunc(ctx, email, name)
}

func (m *mockAuth) Refresh(ctx context.Context, token string) (application.TokenPair, string, error) {
	return m.refreshFunc(ctx, token)
}

func (m *mockAuth) SignOut(ctx context.Context, userID string) error {
	return m.signOutFunc(ctx, userID)
}

type mockGoogle struct {
	loginURLFunc func(state, nonce string) string
	exchangeFunc func(ctx context.Context, code, nonce string) (googleauth.GoogleIdentity, error)
}

func (m *mockGoogle) LoginURL(state, nonce string) string { return m.loginURLFunc(state, nonce) }

func (m *mockGoogle) Exchange(ctx context.Context, code, nonce string) (googleauth.GoogleIdentity, error) {
	return m.exchangeFunc(ctx, code, nonce)
}

type mockProfiles struct {
	meFunc             func(ctx context.Context, userID string) (*entity.Profile, error)
	publicFunc         func(ctx context.Context, userID string) (*entity.Profile, error)
	updateMeFunc       func(ctx context.Context, userID string, patch entity.UserPatch) (*entity.Profile, error)
	addInterestFunc    func(ctx context.Context, userID string, uniID int64) (*entity.Profile, error)
	removeInterestFunc func(ctx context.Context, userID string, uniID int64) error
}

func (m *mockProfiles) Me(ctx context.Context, userID string) (*entity.Profile, error) {
	return m.meFunc(ctx, userID)
}

func (m *mockProfiles) PublicProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	return m.publicFunc(ctx, userID)
}

func (m *mockProfiles) UpdateMe(ctx context.Context, userID string, patch entity.UserPatch) (*entity.Profile, error) {
	return m.updateMeFunc(ctx, userID, patch)
}

func (m *mockProfiles) AddInterest(ctx context.Context, userID string, uniID int64) (*entity.Profile, error) {
	return m.addInterestFunc(ctx, userID, uniID)
}

func (m *mockProfiles) RemoveInterest(ctx context.Context, userID string, uniID int64) error {
	return m.removeInterestFunc(ctx, userID, uniID)
}

type mockPhotos struct {
	uploadFunc  func(ctx context.Context, userID, filename, contentType string, r io.Reader) (string, error)
	currentFunc func(ctx context.Context, userID string) (string, error)
}

func (m *mockPhotos) Upload(ctx context.Context, userID, filename, contentType string, r io.Reader) (string, error) {
	return m.uploadFunc(ctx, userID, filename, contentType, r)
}

func (m *mockPhotos) Current(ctx context.Context, userID string) (string, error) {
	return m.currentFunc(ctx, userID)
}

type mockTimeline struct {
	listMineFunc   func(ctx context.Context, userID string) ([]entity.TimelineItem, error)
	listPublicFunc func(ctx context.Context, userID string) ([]entity.TimelineItem, error)
	createFunc     func(ctx context.Context, userID string, in application.TimelineInput) (*entity.TimelineItem, error)
	updateFunc     func(ctx context.Context, userID string, id int64, patch entity.TimelinePatch) (*entity.TimelineItem, error)
	deleteFunc     func(ctx context.Context, userID string, id int64) error
}

func (m *mockTimeline) ListMine(ctx context.Context, userID string) ([]entity.TimelineItem, error) {
	return m.listMineFunc(ctx, userID)
}

func (m *mockTimeline) ListPublic(ctx context.Context, userID string) ([]entity.TimelineItem, error) {
	return m.listPublicFunc(ctx, userID)
}

func (m *mockTimeline) Create(ctx context.Context, userID string, in application.TimelineInput) (*entity.TimelineItem, error) {
	return m.createFunc(ctx, userID, in)
}

func (m *mockTimeline) Update(ctx context.Context, userID string, id int64, patch entity.TimelinePatch) (*entity.TimelineItem, error) {
	return m.updateFunc(ctx, userID, id, patch)
}

func (m *mockTimeline) Delete(ctx context.Context, userID string, id int64) error {
	return m.deleteFunc(ctx, userID, id)
}

type mockDirectory struct {
	publicFunc     func(ctx context.Context, search string, limit, skip int) ([]application.UniversityView, error)
	forUserFunc    func(ctx context.Context, userID, search string, limit, skip int) ([]application.UniversityView, error)
	interestedFunc func(ctx context.Context, userID string, limit, skip int) ([]application.UniversityView, error)
	searchFunc     func(ctx context.Context, userID, q string, size int) ([]application.UniversityView, error)
}

func (m *mockDirectory) Public(ctx context.Context, search string, limit, skip int) ([]application.UniversityView, error) {
	return m.publicFunc(ctx, search, limit, skip)
}

func (m *mockDirectory) ForUser(ctx context.Context, userID, search string, limit, skip int) ([]application.UniversityView, error) {
	return m.forUserFunc(ctx, userID, search, limit, skip)
}

func (m *mockDirectory) InterestedOnly(ctx context.Context, userID string, limit, skip int) ([]application.UniversityView, error) {
	return m.interestedFunc(ctx, userID, limit, skip)
}

func (m *mockDirectory) Search(ctx context.Context, userID, q string, size int) ([]application.UniversityView, error) {
	return m.searchFunc(ctx, userID, q, size)
}

type mockUserAdmin struct {
	getFunc    func(ctx context.Context, id string) (*entity.User, error)
	listFunc   func(ctx context.Context, p listing.Params) (listing.Page[entity.User], error)
	createFunc func(ctx context.Context, u entity.User, password string) (*entity.User, error)
	updateFunc func(ctx context.Context, id string, patch entity.UserPatch) (*entity.User, error)
	deleteFunc func(ctx context.Context, f listing.Filter) error
}

func (m *mockUserAdmin) GetUser(ctx context.Context, id string) (*entity.User, error) {
	return m.getFunc(ctx, id)
}

func (m *mockUserAdmin) ListUsers(ctx context.Context, p listing.Params) (listing.Page[entity.User], error) {
	return m.listFunc(ctx, p)
}

func (m *mockUserAdmin) CreateUser(ctx context.Context, u entity.User, password string) (*entity.User, error) {
	return m.createFunc(ctx, u, password)
}

func (m *mockUserAdmin) UpdateUser(ctx context.Context, id string, patch entity.UserPatch) (*entity.User, error) {
	return m.updateFunc(ctx, id, patch)
}

func (m *mockUserAdmin) DeleteUsers(ctx context.Context, f listing.Filter) error {
	return m.deleteFunc(ctx, f)
}

// mockUniversityAdmin implements only what the tests call; the embedded
// interface panics on anything else.
type mockUniversityAdmin struct {
	UniversityAdminService
	listFunc       func(ctx context.Context, p listing.Params) (listing.Page[entity.University], error)
	getFunc        func(ctx context.Context, rawID string) (*entity.University, error)
	updateFunc     func(ctx context.Context, rawID string, patch entity.UniversityPatch) (*entity.University, error)
	deleteLinkFunc func(ctx context.Context, f listing.Filter) error
}

func (m *mockUniversityAdmin) ListUniversities(ctx context.Context, p listing.Params) (listing.Page[entity.University], error) {
	return m.listFunc(ctx, p)
}

func (m *mockUniversityAdmin) GetUniversity(ctx context.Context, rawID string) (*entity.University, error) {
	return m.getFunc(ctx, rawID)
}

func (m *mockUniversityAdmin) UpdateUniversity(ctx context.Context, rawID string, patch entity.UniversityPatch) (*entity.University, error) {
	return m.updateFunc(ctx, rawID, patch)
}

func (m *mockUniversityAdmin) DeleteLinks(ctx context.Context, f listing.Filter) error {
	return m.deleteLinkFunc(ctx, f)
}

type mockContact struct {
	sendFunc func(ctx context.Context, in application.ContactInput) error
}

func (m *mockContact) SendContact(ctx context.Context, in application.ContactInput) error {
	return m.sendFunc(ctx, in)
}
