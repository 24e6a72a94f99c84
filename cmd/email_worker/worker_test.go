package main

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportsconnect/sportsconnect-api/pkg/mailer"
)

type fakeSender struct {
	sent []mailer.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, msg mailer.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func newWorker(s sender) *worker {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &worker{mail: s, timeout: time.Second, logger: l}
}

func TestProcess_RenderedJob(t *testing.T) {
	s := &fakeSender{}
	got := newWorker(s).process(context.Background(), []byte(`{"to":"ops@example.com","subject":"hi","text":"body"}`))

	assert.Equal(t, ack, got)
	require.Len(t, s.sent, 1)
	assert.Equal(t, mailer.Message{To: "ops@example.com", Subject: "hi", Text: "body"}, s.sent[0])
}

func TestProcess_TemplateJob(t *testing.T) {
	s := &fakeSender{}
	body := []byte(`{"to":"ops@example.com","template":"contact","data":{"Name":"Ann","Email":"ann@example.com","Message":"hello"}}`)

	require.Equal(t, ack, newWorker(s).process(context.Background(), body))
	require.Len(t, s.sent, 1)
	assert.Equal(t, "Mail from SportsConnect Customer: ann@example.com", s.sent[0].Subject)
	assert.Contains(t, s.sent[0].Text, "hello")
	assert.NotEmpty(t, s.sent[0].HTML)
}

func TestProcess_Drops(t *testing.T) {
	cases := map[string]string{
		"garbage":          `{not json`,
		"no recipient":     `{"subject":"x"}`,
		"unknown template": `{"to":"a@b.c","template":"nope"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			s := &fakeSender{}
			assert.Equal(t, drop, newWorker(s).process(context.Background(), []byte(body)))
			assert.Empty(t, s.sent)
		})
	}
}

func TestProcess_RequeuesOnSendFailure(t *testing.T) {
	s := &fakeSender{err: errors.New("mailgun 503")}
	assert.Equal(t, requeue, newWorker(s).process(context.Background(), []byte(`{"to":"a@b.c","text":"x"}`)))
}
