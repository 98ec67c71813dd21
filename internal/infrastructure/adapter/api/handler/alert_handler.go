package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/investapp/invest-wallet/internal/domain/entity"
	coreport "github.com/investapp/invest-wallet/internal/domain/port/core"
	accountUseCase "github.com/investapp/invest-wallet/internal/domain/usecase/account"
	alertUseCase "github.com/investapp/invest-wallet/internal/domain/usecase/alert"
	"github.com/investapp/invest-wallet/internal/infrastructure/adapter/api/dto"
	"github.com/investapp/invest-wallet/internal/infrastructure/adapter/api/middleware"
)

// AlertHandler handles alert feeds and publishing
type AlertHandler struct {
	alerts   *alertUseCase.AlertUseCase
	accounts *accountUseCase.AccountUseCase
	logger   coreport.Logger
}

// NewAlertHandler creates a new alert handler instance
func NewAlertHandler(
	alerts *alertUseCase.AlertUseCase,
	accounts *accountUseCase.AccountUseCase,
	logger coreport.Logger,
) *AlertHandler {
	return &AlertHandler{
		alerts:   alerts,
		accounts: accounts,
		logger:   logger,
	}
}

// Feed handles the GET /alerts endpoint
func (h *AlertHandler) Feed(c *gin.Context) {
	account, err := h.accounts.GetByID(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	feed, err := h.alerts.Feed(c.Request.Context(), account.Username)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	alerts := make([]dto.AlertResponse, 0, len(feed))
	for _, alert := range feed {
		alerts = append(alerts, alertToResponse(alert))
	}

	c.JSON(http.StatusOK, alerts)
}

// Publish handles the POST /admin/alerts endpoint
func (h *AlertHandler) Publish(c *gin.Context) {
	var req dto.AlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	actor, err := h.accounts.GetByID(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	alert, err := h.alerts.Publish(c.Request.Context(), actor, req.Message, req.Recipient)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, alertToResponse(alert))
}

// alertToResponse converts an alert entity to its outward projection
func alertToResponse(alert *entity.Alert) dto.AlertResponse {
	return dto.AlertResponse{
		ID:        alert.ID,
		Message:   alert.Message,
		Broadcast: alert.IsBroadcast(),
		CreatedAt: alert.CreatedAt.UTC().Format(time.RFC3339),
	}
}
