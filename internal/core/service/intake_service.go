package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bumdes-sale/backend/internal/core/domain"
	"github.com/bumdes-sale/backend/internal/core/ports"
)

// ApplicationService handles capital applications: public submission and
// the admin review transition.
type ApplicationService struct {
	store ports.DocumentStore[domain.CapitalApplication]
	log   zerolog.Logger
}

func NewApplicationService(store ports.DocumentStore[domain.CapitalApplication], log zerolog.Logger) *ApplicationService {
	return &ApplicationService{store: store, log: log}
}

func (s *ApplicationService) Submit(ctx context.Context, in ports.ApplicationInput) (*domain.CapitalApplication, error) {
	app := &domain.CapitalApplication{
		ApplicantName: in.ApplicantName,
		Phone:         in.Phone,
		Email:         in.Email,
		BusinessType:  in.BusinessType,
		LoanAmount:    in.LoanAmount,
		Purpose:       in.Purpose,
		Status:        domain.ApplicationPending,
		SubmittedAt:   time.Now().UTC(),
	}
	id, err := s.store.Insert(ctx, app)
	if err != nil {
		return nil, err
	}
	app.ID = id

	s.log.Info().Str("application_id", id).Str("business_type", in.BusinessType).Msg("capital application submitted")
	return app, nil
}

func (s *ApplicationService) Get(ctx context.Context, id string) (*domain.CapitalApplication, error) {
	return s.store.FindByID(ctx, id)
}

func (s *ApplicationService) ListAll(ctx context.Context) ([]*domain.CapitalApplication, error) {
	return s.store.Find(ctx, ports.Query{
		Sort:  []ports.SortField{{Key: "submitted_at", Desc: true}},
		Limit: adminListLimit,
	})
}

// Review records an admin decision together with reviewer identity and
// timestamp. An already-decided application may be reviewed again; the
// later decision simply overwrites the earlier one.
func (s *ApplicationService) Review(ctx context.Context, id string, in ports.ReviewInput) (*domain.CapitalApplication, error) {
	if in.Status != domain.ApplicationApproved && in.Status != domain.ApplicationRejected {
		return nil, domain.ErrInvalidStatus
	}

	patch := ports.Fields{
		"status":      in.Status,
		"admin_notes": in.AdminNotes,
		"reviewed_at": time.Now().UTC(),
		"reviewed_by": in.ReviewerID,
	}
	if err := s.store.UpdateByID(ctx, id, patch); err != nil {
		return nil, err
	}

	s.log.Info().Str("application_id", id).Str("status", string(in.Status)).Str("reviewed_by", in.ReviewerID).Msg("capital application reviewed")
	return s.store.FindByID(ctx, id)
}

// MessageService handles contact messages: public submission, reply and
// archive transitions. Messages are never hard-deleted.
type MessageService struct {
	store ports.DocumentStore[domain.ContactMessage]
	log   zerolog.Logger
}

func NewMessageService(store ports.DocumentStore[domain.ContactMessage], log zerolog.Logger) *MessageService {
	return &MessageService{store: store, log: log}
}

func (s *MessageService) Submit(ctx context.Context, in ports.MessageInput) (*domain.ContactMessage, error) {
	msg := &domain.ContactMessage{
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Subject:     in.Subject,
		Message:     in.Message,
		Status:      domain.MessageNew,
		SubmittedAt: time.Now().UTC(),
	}
	id, err := s.store.Insert(ctx, msg)
	if err != nil {
		return nil, err
	}
	msg.ID = id

	s.log.Info().Str("message_id", id).Str("subject", in.Subject).Msg("contact message received")
	return msg, nil
}

func (s *MessageService) ListAll(ctx context.Context) ([]*domain.ContactMessage, error) {
	return s.store.Find(ctx, ports.Query{
		Sort:  []ports.SortField{{Key: "submitted_at", Desc: true}},
		Limit: adminListLimit,
	})
}

// Reply stores the reply text, stamps replied_at and moves the message to
// the replied state.
func (s *MessageService) Reply(ctx context.Context, id string, replyMessage string) (*domain.ContactMessage, error) {
	patch := ports.Fields{
		"reply_message": replyMessage,
		"replied_at":    time.Now().UTC(),
		"status":        domain.MessageReplied,
	}
	if err := s.store.UpdateByID(ctx, id, patch); err != nil {
		return nil, err
	}
	return s.store.FindByID(ctx, id)
}

// Archive moves the message to the terminal archived state. Allowed from
// any state, including directly from new.
func (s *MessageService) Archive(ctx context.Context, id string) error {
	return s.store.UpdateByID(ctx, id, ports.Fields{"status": domain.MessageArchived})
}
