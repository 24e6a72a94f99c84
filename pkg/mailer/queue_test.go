package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	got any
	err error
}

func (f *fakePublisher) PublishJSON(_ context.Context, body any) error {
	f.got = body
	return f.err
}

func TestQueueMailer_PublishesJob(t *testing.T) {
	pub := &fakePublisher{}
	m := NewQueueMailer(pub)

	err := m.Send(context.Background(), Message{To: "ops@example.com", ReplyTo: "a@b.c", Subject: "s", Text: "t"})
	require.NoError(t, err)

	job, ok := pub.got.(EmailJob)
	require.True(t, ok)
	assert.Equal(t, "ops@example.com", job.To)
	assert.Equal(t, "a@b.c", job.ReplyTo)
	assert.Equal(t, Message{To: "ops@example.com", ReplyTo: "a@b.c", Subject: "s", Text: "t"}, job.Message())
}

func TestQueueMailer_PropagatesError(t *testing.T) {
	pub := &fakePublisher{err: errors.New("channel closed")}
	err := NewQueueMailer(pub).Send(context.Background(), Message{To: "x"})
	assert.EqualError(t, err, "channel closed")
}
