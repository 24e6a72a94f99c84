package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportsconnect/sportsconnect-api/internal/domain/entity"
	"github.com/sportsconnect/sportsconnect-api/internal/domain/listing"
)

func seededUniversities() *memUniversities {
	return newMemUniversities(
		entity.University{ID: 1, Name: "Alpha"},
		entity.University{ID: 2, Name: "Beta"},
		entity.University{ID: 3, Name: "Gamma"},
	)
}

func staticLinks() *mockLinks {
	return &mockLinks{allFunc: func(context.Context) ([]entity.UniversityLink, error) {
		return []entity.UniversityLink{{ID: 1, Name: "Alpha", Link: "https://alpha.edu"}}, nil
	}}
}

func TestUniversity_ForUserFlagsInterests(t *testing.T) {
	ctx := context.Background()
	unis := seededUniversities()
	require.NoError(t, unis.Add(ctx, "u1", 2))
	svc := &UniversityService{Universities: unis, Interests: unis, Links: staticLinks(), Logger: testLogger()}

	views, err := svc.ForUser(ctx, "u1", "", listing.Unlimited, 0)
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.False(t, views[0].Interested)
	assert.Equal(t, "https://alpha.edu", views[0].Link)
	assert.True(t, views[1].Interested)
	assert.Equal(t, "", views[1].Link)

	public, err := svc.Public(ctx, "", 2, 1)
	require.NoError(t, err)
	require.Len(t, public, 2)
	assert.Equal(t, int64(2), public[0].ID)
	assert.False(t, public[0].Interested)
}

func TestUniversity_InterestedOnly(t *testing.T) {
	ctx := context.Background()
	unis := seededUniversities()
	require.NoError(t, unis.Add(ctx, "u1", 3))
	svc := &UniversityService{Universities: unis, Interests: unis, Links: staticLinks(), Logger: testLogger()}

	views, err := svc.InterestedOnly(ctx, "u1", 10, 0)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.True(t, views[0].Interested)
	assert.Equal(t, "Gamma", views[0].Name)
}

func TestUniversity_PageValidation(t *testing.T) {
	svc := &UniversityService{Universities: seededUniversities(), Links: staticLinks(), Logger: testLogger()}
	_, err := svc.Public(context.Background(), "", 0, 0)
	assert.Equal(t, KindBadRequest, KindOf(err))
	_, err = svc.Public(context.Background(), "", 10, -1)
	assert.Equal(t, KindBadRequest, KindOf(err))
}

func TestUniversity_LinkCache(t *testing.T) {
	ctx := context.Background()
	calls := 0
	links := &mockLinks{
		allFunc: func(context.Context) ([]entity.UniversityLink, error) {
			calls++
			return []entity.UniversityLink{{Name: "Alpha", Link: "https://alpha.edu"}}, nil
		},
		createFunc: func(_ context.Context, l *entity.UniversityLink) error {
			l.ID = 9
			return nil
		},
	}
	cache := &memLinkCache{}
	svc := &UniversityService{Universities: seededUniversities(), Links: links, Cache: cache, Logger: testLogger()}

	_, err := svc.Public(ctx, "", 10, 0)
	require.NoError(t, err)
	_, err = svc.Public(ctx, "", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	_, err = svc.CreateLink(ctx, entity.UniversityLink{Name: "Beta", Link: "https://beta.edu"})
	require.NoError(t, err)
	assert.Equal(t, 1, cache.invalidated)

	_, err = svc.Public(ctx, "", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestUniversity_SearchUsesIndexThenFallsBack(t *testing.T) {
	ctx := context.Background()
	idx := &mockIndex{searchFunc: func(_ context.Context, q string, size int) ([]int64, error) {
		assert.Equal(t, "gam", q)
		return []int64{3, 1}, nil
	}}
	svc := &UniversityService{Universities: seededUniversities(), Links: staticLinks(), Index: idx, Logger: testLogger()}

	views, err := svc.Search(ctx, "", "gam", 5)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, int64(3), views[0].ID)
	assert.Equal(t, int64(1), views[1].ID)

	idx.searchFunc = func(context.Context, string, int) ([]int64, error) {
		return nil, errors.New("cluster down")
	}
	views, err = svc.Search(ctx, "", "", 2)
	require.NoError(t, err)
	assert.Len(t, views, 2)
}

func TestUniversity_AdminKeepsIndexInSync(t *testing.T) {
	ctx := context.Background()
	idx := &mockIndex{}
	unis := seededUniversities()
	svc := &UniversityService{Universities: unis, Links: staticLinks(), Index: idx, Logger: testLogger()}

	name := "Alpha Tech"
	u, err := svc.UpdateUniversity(ctx, "1", entity.UniversityPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alpha Tech", u.Name)
	assert.Equal(t, []int64{1}, idx.indexed)

	err = svc.DeleteUniversities(ctx, listing.In("1", "2"))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, idx.removed)

	_, err = svc.UpdateUniversity(ctx, "abc", entity.UniversityPatch{})
	assert.Equal(t, KindBadRequest, KindOf(err))
	_, err = svc.GetUniversity(ctx, "1")
	assert.Equal(t, KindNotFound, KindOf(err))

	n, err := svc.Reindex(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestUniversity_DeleteLinksStopsAtMissing(t *testing.T) {
	var deleted []int64
	links := &mockLinks{deleteFunc: func(_ context.Context, id int64) error {
		if id == 2 {
			return errNotFoundRepo()
		}
		deleted = append(deleted, id)
		return nil
	}}
	cache := &memLinkCache{}
	svc := &UniversityService{Links: links, Cache: cache, Logger: testLogger()}

	err := svc.DeleteLinks(context.Background(), listing.In("1", "2", "3"))
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, []int64{1}, deleted)
	assert.Equal(t, 1, cache.invalidated)
}

func TestUniversity_BulkDeleteRejectsMalformedIDsUpFront(t *testing.T) {
	ctx := context.Background()
	var deleted []int64
	links := &mockLinks{deleteFunc: func(_ context.Context, id int64) error {
		deleted = append(deleted, id)
		return nil
	}}
	cache := &memLinkCache{}
	unis := seededUniversities()
	svc := &UniversityService{Universities: unis, Links: links, Cache: cache, Logger: testLogger()}

	f, err := listing.ParseFilter("in.(1,abc,3)")
	require.NoError(t, err)

	err = svc.DeleteLinks(ctx, f)
	assert.Equal(t, KindBadRequest, KindOf(err))
	assert.Empty(t, deleted)
	assert.Zero(t, cache.invalidated)

	err = svc.DeleteUniversities(ctx, f)
	assert.Equal(t, KindBadRequest, KindOf(err))
	assert.Len(t, unis.rows, 3)
}
