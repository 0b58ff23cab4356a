package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bumdes-sale/backend/internal/api/metrics"
	"github.com/bumdes-sale/backend/internal/core/ports"
)

// MessageHandler exposes the contact form and the admin inbox.
type MessageHandler struct {
	service ports.MessageService
}

func NewMessageHandler(service ports.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type replyRequest struct {
	ReplyMessage string `json:"reply_message" validate:"required"`
}

// Submit handles POST /api/kontak/send. New messages start in status "new".
func (h *MessageHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	msg, err := h.service.Submit(c.Request().Context(), ports.MessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return err
	}

	metrics.MessagesSubmittedTotal.Inc()
	return c.JSON(http.StatusCreated, msg)
}

// ListAll handles GET /api/admin/kontak.
func (h *MessageHandler) ListAll(c echo.Context) error {
	msgs, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msgs)
}

// Reply handles PUT /api/admin/kontak/:id/reply.
func (h *MessageHandler) Reply(c echo.Context) error {
	var req replyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	msg, err := h.service.Reply(c.Request().Context(), c.Param("id"), req.ReplyMessage)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msg)
}

// Archive handles PUT /api/admin/kontak/:id/archive. Messages are
// archived, never deleted.
func (h *MessageHandler) Archive(c echo.Context) error {
	if err := h.service.Archive(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Message archived successfully"})
}
