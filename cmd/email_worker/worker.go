package main

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sportsconnect/sportsconnect-api/pkg/mailer"
	mailtpl "github.com/sportsconnect/sportsconnect-api/pkg/mailer/templates"
)

type sender interface {
	Send(ctx context.Context, msg mailer.Message) error
}

type outcome int

const (
	ack outcome = iota
	requeue
	drop
)

type worker struct {
	mail    sender
	timeout time.Duration
	logger  *logrus.Logger
}

// process decides what happens to one queued message. Malformed jobs are
// dropped; failed sends go back on the queue.
func (w *worker) process(ctx context.Context, body []byte) outcome {
	var job mailer.EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		w.logger.WithError(err).Warn("drop undecodable email job")
		return drop
	}
	if job.To == "" {
		w.logger.Warn("drop email job without recipient")
		return drop
	}

	msg := job.Message()
	if job.Template != "" {
		subject, text, html, err := mailtpl.Render(job.Template, job.Data)
		if err != nil {
			w.logger.WithError(err).WithField("template", job.Template).Warn("drop email job")
			return drop
		}
		msg.Subject, msg.Text, msg.HTML = subject, text, html
	}

	c, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()
	if err := w.mail.Send(c, msg); err != nil {
		w.logger.WithError(err).WithField("to", msg.To).Error("send email")
		return requeue
	}
	w.logger.WithField("to", msg.To).Info("email sent")
	return ack
}
