package mailer

import "context"

// Publisher is the part of helpers.RabbitPublisher the queue mailer needs.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// QueueMailer hands rendered messages to the email worker.
type QueueMailer struct {
	pub Publisher
}

func NewQueueMailer(pub Publisher) *QueueMailer {
	return &QueueMailer{pub: pub}
}

func (q *QueueMailer) Send(ctx context.Context, msg Message) error {
	return q.pub.PublishJSON(ctx, EmailJob{
		To:      msg.To,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Text:    msg.Text,
		HTML:    msg.HTML,
	})
}
