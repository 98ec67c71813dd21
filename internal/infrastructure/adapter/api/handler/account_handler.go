package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/investapp/invest-wallet/internal/domain/entity"
	domainerr "github.com/investapp/invest-wallet/internal/domain/error"
	coreport "github.com/investapp/invest-wallet/internal/domain/port/core"
	accountUseCase "github.com/investapp/invest-wallet/internal/domain/usecase/account"
	"github.com/investapp/invest-wallet/internal/infrastructure/adapter/api/dto"
	"github.com/investapp/invest-wallet/internal/infrastructure/adapter/api/middleware"
)

// AccountHandler handles registration, login, profile and review requests
type AccountHandler struct {
	accounts *accountUseCase.AccountUseCase
	logger   coreport.Logger
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(accounts *accountUseCase.AccountUseCase, logger coreport.Logger) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
		logger:   logger,
	}
}

// Register handles the POST /auth/register endpoint
func (h *AccountHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	account, err := h.accounts.Register(c.Request.Context(), accountUseCase.RegisterRequest{
		Username:           req.Username,
		Email:              req.Email,
		Password:           req.Password,
		PasswordConfirm:    req.PasswordConfirm,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Phone:              req.Phone,
		Plan:               req.Plan,
		JoinedReferralCode: req.JoinedReferralCode,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, accountToResponse(account))
}

// Login handles the POST /auth/login endpoint
func (h *AccountHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	token, account, err := h.accounts.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:   token,
		Account: accountToResponse(account),
	})
}

// UpdateProfile handles the PUT /profile endpoint
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	var req dto.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	account, err := h.accounts.UpdateProfile(c.Request.Context(), middleware.AccountID(c), accountUseCase.ProfileUpdate{
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              req.Email,
		Phone:              req.Phone,
		JoinedReferralCode: req.JoinedReferralCode,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, accountToResponse(account))
}

// ChangePassword handles the PUT /profile/password endpoint
func (h *AccountHandler) ChangePassword(c *gin.Context) {
	var req dto.PasswordChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	err := h.accounts.ChangePassword(c.Request.Context(), middleware.AccountID(c),
		req.OldPassword, req.NewPassword, req.PasswordConfirm)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Approve handles the POST /admin/accounts/:id/approve endpoint
func (h *AccountHandler) Approve(c *gin.Context) {
	h.review(c, h.accounts.Approve)
}

// Decline handles the POST /admin/accounts/:id/decline endpoint
func (h *AccountHandler) Decline(c *gin.Context) {
	h.review(c, h.accounts.Decline)
}

func (h *AccountHandler) review(
	c *gin.Context,
	decide func(ctx context.Context, actor *entity.Account, accountID uint64) (*entity.Account, error),
) {
	accountID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid account ID format",
		})
		return
	}

	actor, err := h.accounts.GetByID(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	account, err := decide(c.Request.Context(), actor, accountID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, accountToResponse(account))
}

// accountToResponse converts an account entity to its outward projection
func accountToResponse(account *entity.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:           account.ID,
		Username:     account.Username,
		Email:        account.Email,
		FirstName:    account.FirstName,
		LastName:     account.LastName,
		Phone:        account.Phone,
		Status:       string(account.Status),
		Plan:         account.Plan,
		ReferralCode: account.ReferralCode,
		IsAdmin:      account.IsAdmin,
	}
}
