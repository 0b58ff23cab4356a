package ports

import (
	"context"

	"github.com/bumdes-sale/backend/internal/core/domain"
)

// ApplicationInput is the public capital application form.
type ApplicationInput struct {
	ApplicantName string
	Phone         string
	Email         string
	BusinessType  string
	LoanAmount    string
	Purpose       string
}

// ReviewInput records an admin decision on a capital application.
type ReviewInput struct {
	Status     domain.ApplicationStatus
	AdminNotes string
	// ReviewerID is the id of the admin performing the review.
	ReviewerID string
}

// ApplicationService handles the capital application lifecycle:
// public submission and status check, admin listing and review.
type ApplicationService interface {
	Submit(ctx context.Context, in ApplicationInput) (*domain.CapitalApplication, error)
	Get(ctx context.Context, id string) (*domain.CapitalApplication, error)
	ListAll(ctx context.Context) ([]*domain.CapitalApplication, error)
	Review(ctx context.Context, id string, in ReviewInput) (*domain.CapitalApplication, error)
}

// MessageInput is the public contact form.
type MessageInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// MessageService handles contact messages: public submission, admin
// listing, reply and archive. Archiving replaces deletion.
type MessageService interface {
	Submit(ctx context.Context, in MessageInput) (*domain.ContactMessage, error)
	ListAll(ctx context.Context) ([]*domain.ContactMessage, error)
	Reply(ctx context.Context, id string, replyMessage string) (*domain.ContactMessage, error)
	Archive(ctx context.Context, id string) error
}
