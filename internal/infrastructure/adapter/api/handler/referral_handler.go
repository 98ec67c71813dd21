package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/investapp/invest-wallet/internal/domain/port/core"
	referralUseCase "github.com/investapp/invest-wallet/internal/domain/usecase/referral"
	"github.com/investapp/invest-wallet/internal/infrastructure/adapter/api/dto"
	"github.com/investapp/invest-wallet/internal/infrastructure/adapter/api/middleware"
)

// ReferralHandler handles the referral overview endpoint
type ReferralHandler struct {
	referrals *referralUseCase.ReferralUseCase
	logger    coreport.Logger
}

// NewReferralHandler creates a new referral handler instance
func NewReferralHandler(referrals *referralUseCase.ReferralUseCase, logger coreport.Logger) *ReferralHandler {
	return &ReferralHandler{
		referrals: referrals,
		logger:    logger,
	}
}

// GetOverview handles the GET /referral endpoint
func (h *ReferralHandler) GetOverview(c *gin.Context) {
	overview, err := h.referrals.GetOverview(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ReferralResponse{
		Code:       overview.Code,
		JoinedWith: overview.JoinedWith,
		Joins:      overview.Joins,
	})
}
