package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sportsconnect/sportsconnect-api/pkg/mailer"
	mailtpl "github.com/sportsconnect/sportsconnect-api/pkg/mailer/templates"
)

type EmailService struct {
	Mailer  Mailer
	To      string
	AppName string
	Enabled bool
	Logger  *logrus.Logger
}

type ContactInput struct {
	Name    string
	Email   string
	Message string
}

// SendContact forwards a contact form message to the operators' inbox.
func (s *EmailService) SendContact(ctx context.Context, in ContactInput) error {
	if !s.Enabled || s.Mailer == nil {
		return NewError(KindUnavailable, "email sending is disabled")
	}
	subject, text, html, err := mailtpl.Render(mailtpl.Contact, mailtpl.ContactData{
		AppName: s.AppName,
		Name:    in.Name,
		Email:   in.Email,
		Message: in.Message,
		SentAt:  time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	msg := mailer.Message{To: s.To, ReplyTo: in.Email, Subject: subject, Text: text, HTML: html}
	if err := s.Mailer.Send(ctx, msg); err != nil {
		s.Logger.WithError(err).WithField("from", in.Email).Error("contact email failed")
		return WrapError(KindUpstream, "email could not be sent", err)
	}
	return nil
}
