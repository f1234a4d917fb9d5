package notification

import (
	"encoding/json"
	"fmt"

	"jobmate/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeEmailSend is the asynq task type for outbound mail.
const TypeEmailSend = "email:send"

// Mailer delivers a single email. The worker owns retries; callers treat
// delivery as fire-and-forget.
type Mailer interface {
	Send(to []string, subject, body string) error
}

// LogMailer is the development Mailer: it logs instead of delivering.
type LogMailer struct {
	Logger *zap.Logger
}

func (m *LogMailer) Send(to []string, subject, body string) error {
	m.Logger.Info("mail (log only)",
		zap.Strings("to", to),
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}

// AsynqNotificationService implements NotificationService by enqueueing
// email tasks for the mail worker. Enqueue failures are logged and dropped.
type AsynqNotificationService struct {
	Client *asynq.Client
	Logger *zap.Logger
}

func (s *AsynqNotificationService) enqueue(payload models.EmailPayload) {
	recipients := payload.To[:0]
	for _, addr := range payload.To {
		if addr != "" {
			recipients = append(recipients, addr)
		}
	}
	payload.To = recipients
	if len(payload.To) == 0 {
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		s.Logger.Warn("failed to marshal email payload", zap.Error(err))
		return
	}
	if _, err := s.Client.Enqueue(asynq.NewTask(TypeEmailSend, body)); err != nil {
		s.Logger.Warn("failed to enqueue email task", zap.Error(err))
	}
}

// BookingCreated notifies the employee of a new booking request.
func (s *AsynqNotificationService) BookingCreated(booking *models.Booking, customer, employee *models.User) {
	subject := fmt.Sprintf("[JobMate] New Booking Request: %s", booking.Title)
	body := fmt.Sprintf(
		"Hi %s,\n\nYou have a new booking request from %s.\nDuration: %d %s\nTotal Cost: $%.2f\n\nPlease log in to accept or reject.",
		employee.FullName(), customer.FullName(),
		booking.DurationValue, booking.DurationType,
		booking.TotalCost,
	)
	s.enqueue(models.EmailPayload{
		To:      []string{employee.Email},
		Subject: subject,
		Body:    body,
	})
}

// BookingStatusChanged notifies both parties of a status change.
func (s *AsynqNotificationService) BookingStatusChanged(booking *models.Booking, customer, employee *models.User) {
	subject := fmt.Sprintf("[JobMate] Booking %s status: %s", booking.ID, booking.Status)
	body := fmt.Sprintf(
		"Booking %q is now %s.\nCheck your dashboard for details.",
		booking.Title, booking.Status,
	)
	s.enqueue(models.EmailPayload{
		To:      []string{customer.Email, employee.Email},
		Subject: subject,
		Body:    body,
	})
}

// ReviewCreated notifies the employee of a new review.
func (s *AsynqNotificationService) ReviewCreated(review *models.Review, booking *models.Booking, employee *models.User) {
	subject := fmt.Sprintf("[JobMate] New %d-star Review", review.Rating)
	body := fmt.Sprintf(
		"You received a review for %q:\n\n%q\n\nRating: %d/5",
		booking.Title, review.Comment, review.Rating,
	)
	s.enqueue(models.EmailPayload{
		To:      []string{employee.Email},
		Subject: subject,
		Body:    body,
	})
}
