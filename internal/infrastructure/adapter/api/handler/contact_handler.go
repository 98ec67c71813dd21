package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/investapp/invest-wallet/internal/domain/entity"
	domainerr "github.com/investapp/invest-wallet/internal/domain/error"
	coreport "github.com/investapp/invest-wallet/internal/domain/port/core"
	accountUseCase "github.com/investapp/invest-wallet/internal/domain/usecase/account"
	contactUseCase "github.com/investapp/invest-wallet/internal/domain/usecase/contact"
	"github.com/investapp/invest-wallet/internal/infrastructure/adapter/api/dto"
	"github.com/investapp/invest-wallet/internal/infrastructure/adapter/api/middleware"
)

// ContactHandler handles contact messages and their admin responses
type ContactHandler struct {
	contacts *contactUseCase.ContactUseCase
	accounts *accountUseCase.AccountUseCase
	logger   coreport.Logger
}

// NewContactHandler creates a new contact handler instance
func NewContactHandler(
	contacts *contactUseCase.ContactUseCase,
	accounts *accountUseCase.AccountUseCase,
	logger coreport.Logger,
) *ContactHandler {
	return &ContactHandler{
		contacts: contacts,
		accounts: accounts,
		logger:   logger,
	}
}

// Send handles the POST /contact endpoint
func (h *ContactHandler) Send(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	message, err := h.contacts.Send(c.Request.Context(), middleware.AccountID(c), req.Message)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, contactToResponse(message))
}

// List handles the GET /contact endpoint
func (h *ContactHandler) List(c *gin.Context) {
	messages, err := h.contacts.List(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	out := make([]dto.ContactResponse, 0, len(messages))
	for _, message := range messages {
		out = append(out, contactToResponse(message))
	}

	c.JSON(http.StatusOK, out)
}

// Respond handles the POST /admin/contact/:id/response endpoint
func (h *ContactHandler) Respond(c *gin.Context) {
	messageID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid message ID format",
		})
		return
	}

	var req dto.ContactRespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	actor, err := h.accounts.GetByID(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	message, err := h.contacts.Respond(c.Request.Context(), actor, messageID, req.Response)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, contactToResponse(message))
}

// contactToResponse converts a contact message to its outward projection
func contactToResponse(message *entity.ContactMessage) dto.ContactResponse {
	return dto.ContactResponse{
		ID:       message.ID,
		Message:  message.Message,
		Response: message.Response,
		Answered: message.Answered(),
		SentAt:   message.SentAt.UTC().Format(time.RFC3339),
	}
}
