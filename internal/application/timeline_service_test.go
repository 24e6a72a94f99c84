package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportsconnect/sportsconnect-api/internal/domain/entity"
)

func newTimeline(users *memUsers) (*TimelineService, *memTimeline) {
	items := newMemTimeline()
	return NewTimelineService(entity.KindExperience, items, users, testLogger()), items
}

func input(desc string) TimelineInput {
	return TimelineInput{Description: desc, Active: true, StartDate: entity.NewDate(2020, time.January, 1)}
}

func TestTimeline_CapAtFive(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTimeline(newMemUsers(entity.User{ID: "u1"}))

	for i := 0; i < entity.MaxTimelineItems; i++ {
		_, err := svc.Create(ctx, "u1", input("job"))
		require.NoError(t, err, "item %d", i+1)
	}
	_, err := svc.Create(ctx, "u1", input("one too many"))
	require.Error(t, err)
	assert.Equal(t, KindUnprocessable, KindOf(err))
	assert.EqualError(t, err, "You can only have a maximum of 5 experience items")
}

func TestTimeline_EducationMessage(t *testing.T) {
	ctx := context.Background()
	svc := NewTimelineService(entity.KindEducation, newMemTimeline(), newMemUsers(), testLogger())
	for i := 0; i < entity.MaxTimelineItems; i++ {
		_, err := svc.Create(ctx, "u1", input("school"))
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, "u1", input("school"))
	assert.EqualError(t, err, "You can only have a maximum of 5 education items")
}

func TestTimeline_OwnershipScoping(t *testing.T) {
	ctx := context.Background()
	svc, items := newTimeline(newMemUsers())
	item, err := svc.Create(ctx, "owner", input("job"))
	require.NoError(t, err)

	desc := "hijacked"
	_, err = svc.Update(ctx, "intruder", item.ID, entity.TimelinePatch{Description: &desc})
	assert.Equal(t, KindForbidden, KindOf(err))
	assert.Equal(t, KindForbidden, KindOf(svc.Delete(ctx, "intruder", item.ID)))
	assert.Equal(t, "job", items.rows[item.ID].Description)

	desc = "renamed"
	updated, err := svc.Update(ctx, "owner", item.ID, entity.TimelinePatch{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Description)
	require.NoError(t, svc.Delete(ctx, "owner", item.ID))
	assert.Empty(t, items.rows)
}

func TestTimeline_MissingItem(t *testing.T) {
	svc, _ := newTimeline(newMemUsers())
	_, err := svc.Update(context.Background(), "u1", 42, entity.TimelinePatch{})
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, KindNotFound, KindOf(svc.Delete(context.Background(), "u1", 42)))
}

func TestTimeline_PartialUpdateKeepsOmittedFields(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTimeline(newMemUsers())
	end := entity.NewDate(2021, time.June, 30)
	in := input("job")
	in.EndDate = &end
	item, err := svc.Create(ctx, "u1", in)
	require.NoError(t, err)

	active := false
	updated, err := svc.Update(ctx, "u1", item.ID, entity.TimelinePatch{Active: &active})
	require.NoError(t, err)
	assert.False(t, updated.Active)
	assert.Equal(t, "job", updated.Description)
	require.NotNil(t, updated.EndDate)
	assert.Equal(t, "2021-06-30", updated.EndDate.String())

	cleared, err := svc.Update(ctx, "u1", item.ID, entity.TimelinePatch{EndDate: entity.Null[entity.Date]()})
	require.NoError(t, err)
	assert.Nil(t, cleared.EndDate)
}

func TestTimeline_EndBeforeStart(t *testing.T) {
	svc, _ := newTimeline(newMemUsers())
	in := input("job")
	end := entity.NewDate(2019, time.January, 1)
	in.EndDate = &end
	_, err := svc.Create(context.Background(), "u1", in)
	assert.Equal(t, KindBadRequest, KindOf(err))
}

func TestTimeline_ListPublic(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTimeline(newMemUsers(
		entity.User{ID: "open", Public: true},
		entity.User{ID: "closed"},
	))
	_, err := svc.Create(ctx, "open", input("job"))
	require.NoError(t, err)

	items, err := svc.ListPublic(ctx, "open")
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = svc.ListPublic(ctx, "closed")
	assert.Equal(t, KindNotFound, KindOf(err))
}
