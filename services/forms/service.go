// File: forms/forms_service.go
package forms

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	formsRepo "github.com/molatlhegiM/2Gether-Travels-sub000/database/repository/forms"
	"github.com/molatlhegiM/2Gether-Travels-sub000/models"
)

// ValidationError reports a rejected form field; maps to a 400 at the
// handler boundary.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FormsService handles the marketing site's contact and newsletter forms.
type FormsService interface {
	SubmitContact(ctx context.Context, msg models.ContactMessage) (*models.ContactMessage, error)
	SubscribeNewsletter(ctx context.Context, email string) error
}

// DefaultFormsService implements FormsService.
type DefaultFormsService struct {
	Repo   formsRepo.FormsRepository
	Logger *zap.Logger
}

func (s *DefaultFormsService) SubmitContact(ctx context.Context, msg models.ContactMessage) (*models.ContactMessage, error) {
	if strings.TrimSpace(msg.Name) == "" {
		return nil, &ValidationError{Field: "name", Message: "name is required"}
	}
	if _, err := mail.ParseAddress(msg.Email); err != nil {
		return nil, &ValidationError{Field: "email", Message: "a valid email address is required"}
	}
	if strings.TrimSpace(msg.Message) == "" {
		return nil, &ValidationError{Field: "message", Message: "message is required"}
	}

	msg.ID = uuid.New().String()
	msg.CreatedAt = time.Now().UTC()
	if err := s.Repo.CreateContactMessage(ctx, &msg); err != nil {
		return nil, err
	}
	s.Logger.Info("contact message received", zap.String("id", msg.ID))
	return &msg, nil
}

func (s *DefaultFormsService) SubscribeNewsletter(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return &ValidationError{Field: "email", Message: "a valid email address is required"}
	}
	signup := &models.NewsletterSignup{
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.UpsertNewsletterSignup(ctx, signup); err != nil {
		return err
	}
	s.Logger.Info("newsletter signup", zap.String("email", signup.Email))
	return nil
}
