package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportsconnect/sportsconnect-api/pkg/mailer"
)

func TestEmail_SendContact(t *testing.T) {
	var got mailer.Message
	svc := &EmailService{
		Mailer: &mockMailer{sendFunc: func(_ context.Context, m mailer.Message) error {
			got = m
			return nil
		}},
		To:      "ops@sportsconnect.test",
		AppName: "SportsConnect",
		Enabled: true,
		Logger:  testLogger(),
	}

	err := svc.SendContact(context.Background(), ContactInput{Name: "Ann", Email: "ann@example.com", Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "ops@sportsconnect.test", got.To)
	assert.Equal(t, "ann@example.com", got.ReplyTo)
	assert.Equal(t, "Mail from SportsConnect Customer: ann@example.com", got.Subject)
	assert.Contains(t, got.Text, "hi")
}

func TestEmail_FailureIsUpstream(t *testing.T) {
	svc := &EmailService{
		Mailer:  &mockMailer{sendFunc: func(context.Context, mailer.Message) error { return errors.New("401 from provider") }},
		Enabled: true,
		Logger:  testLogger(),
	}
	err := svc.SendContact(context.Background(), ContactInput{Email: "a@b.c"})
	assert.Equal(t, KindUpstream, KindOf(err))
}

func TestEmail_Disabled(t *testing.T) {
	svc := &EmailService{Logger: testLogger()}
	err := svc.SendContact(context.Background(), ContactInput{Email: "a@b.c"})
	assert.Equal(t, KindUnavailable, KindOf(err))
}
