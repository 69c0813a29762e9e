package contact

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"portfolio/internal/domain"
	"portfolio/internal/mailer"
	"portfolio/internal/repository"
)

// ConfirmationMessage is returned to the visitor once the message is
// durably recorded.
const ConfirmationMessage = "Thank you for your message. I will get back to you within 24-48 hours."

// Service records inbound inquiries and fires the two notification
// emails. The persisted row is authoritative; both emails are
// best-effort and their failures are logged, never surfaced.
type Service struct {
	repo   *repository.ContactMessageRepository
	sender mailer.Sender
	log    *logrus.Logger
}

func NewService(repo *repository.ContactMessageRepository, sender mailer.Sender, log *logrus.Logger) *Service {
	return &Service{repo: repo, sender: sender, log: log}
}

// Submit persists the message, then notifies the owner and confirms to
// the visitor. A persistence failure aborts before any email is
// attempted; email failures do not fail the submission.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*domain.ContactMessage, error) {
	msg := &domain.ContactMessage{
		VisitorName:  req.VisitorName,
		VisitorEmail: req.VisitorEmail,
		VisitorPhone: req.VisitorPhone,
		Subject:      req.Subject,
		Message:      req.Message,
		IsRead:       0,
		EmailSent:    0,
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if err := s.sender.SendContactNotification(ctx, req.VisitorName, req.VisitorEmail, req.VisitorPhone, req.Subject, req.Message); err != nil {
		s.log.WithError(err).WithField("message_id", msg.ID).Warn("owner notification failed")
	} else if err := s.repo.MarkEmailSent(ctx, msg.ID); err != nil {
		s.log.WithError(err).WithField("message_id", msg.ID).Warn("failed to flag message as notified")
	} else {
		msg.EmailSent = 1
	}

	if err := s.sender.SendContactConfirmation(ctx, req.VisitorEmail, req.VisitorName); err != nil {
		s.log.WithError(err).WithField("message_id", msg.ID).Warn("visitor confirmation failed")
	}

	return msg, nil
}
