package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/investapp/invest-wallet/internal/domain/port/core"
	"github.com/investapp/invest-wallet/internal/infrastructure/adapter/api/handler"
	"github.com/investapp/invest-wallet/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	verifier middleware.TokenVerifier,
	accountHandler *handler.AccountHandler,
	walletHandler *handler.WalletHandler,
	referralHandler *handler.ReferralHandler,
	alertHandler *handler.AlertHandler,
	contactHandler *handler.ContactHandler,
) {
	// Public routes
	auth := router.Group("/auth")
	{
		auth.POST("/register", accountHandler.Register)
		auth.POST("/login", accountHandler.Login)
	}

	// Authenticated routes
	authed := router.Group("/", middleware.Authenticated(verifier))
	{
		authed.GET("/wallet/balance", walletHandler.GetBalance)
		authed.GET("/wallet/transactions", walletHandler.GetTransactions)

		authed.GET("/referral", referralHandler.GetOverview)

		authed.GET("/alerts", alertHandler.Feed)

		authed.POST("/contact", contactHandler.Send)
		authed.GET("/contact", contactHandler.List)

		authed.PUT("/profile", accountHandler.UpdateProfile)
		authed.PUT("/profile/password", accountHandler.ChangePassword)
	}

	// Admin routes
	admin := router.Group("/admin", middleware.Authenticated(verifier), middleware.AdminOnly())
	{
		admin.POST("/accounts/:id/approve", accountHandler.Approve)
		admin.POST("/accounts/:id/decline", accountHandler.Decline)

		admin.POST("/wallets/:walletNumber/transaction", walletHandler.ApplyTransaction)
		admin.GET("/ledger/summary", walletHandler.LedgerSummary)

		admin.POST("/alerts", alertHandler.Publish)
		admin.POST("/contact/:id/response", contactHandler.Respond)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
