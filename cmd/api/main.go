package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	accountUseCase "github.com/investapp/invest-wallet/internal/domain/usecase/account"
	alertUseCase "github.com/investapp/invest-wallet/internal/domain/usecase/alert"
	contactUseCase "github.com/investapp/invest-wallet/internal/domain/usecase/contact"
	referralUseCase "github.com/investapp/invest-wallet/internal/domain/usecase/referral"
	walletUseCase "github.com/investapp/invest-wallet/internal/domain/usecase/wallet"

	"github.com/investapp/invest-wallet/internal/infrastructure/adapter/api/handler"
	"github.com/investapp/invest-wallet/internal/infrastructure/adapter/api/routes"
	"github.com/investapp/invest-wallet/internal/infrastructure/adapter/auth"
	"github.com/investapp/invest-wallet/internal/infrastructure/adapter/database"
	"github.com/investapp/invest-wallet/internal/infrastructure/adapter/logger"
	"github.com/investapp/invest-wallet/internal/infrastructure/adapter/repository"
	timeProvider "github.com/investapp/invest-wallet/internal/infrastructure/adapter/time"
	"github.com/investapp/invest-wallet/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production, cfg.Logger.Level)
	defer func() {
		_ = appLogger.Flush()
	}()

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbConfig := database.CreateConfigFromViperConfig(cfg)
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() {
		_ = dbManager.Close()
	}()

	// Auth adapters
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	codes := auth.NewUUIDCodeGenerator()
	tokens := auth.NewJWT(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, tp)

	// Run migrations, seeding the default admin when configured
	adminPasswordHash := ""
	if cfg.Provisioning.AdminPassword != "" {
		adminPasswordHash, err = hasher.Hash(cfg.Provisioning.AdminPassword)
		if err != nil {
			appLogger.Error("Failed to hash admin password", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}
	if err := dbManager.Migrate(context.Background(), adminPasswordHash); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Repositories outside the unit of work serve plain reads
	accountRepo := repository.NewAccountRepository(dbManager.DB(), appLogger)
	walletRepo := repository.NewWalletRepository(dbManager.DB(), appLogger)
	transactionRepo := repository.NewTransactionRepository(dbManager.DB(), appLogger)
	referralRepo := repository.NewReferralRepository(dbManager.DB(), appLogger)
	alertRepo := repository.NewAlertRepository(dbManager.DB(), appLogger)
	contactRepo := repository.NewContactMessageRepository(dbManager.DB(), appLogger)

	// Unit of work (transaction manager)
	uow := dbManager.CreateUnitOfWork()

	// Initialize use cases
	accounts := accountUseCase.NewAccountUseCase(uow, accountRepo, hasher, codes, tokens, tp, appLogger).
		WithCodeAttempts(cfg.Provisioning.CodeAttempts)
	wallets := walletUseCase.NewWalletUseCase(uow, walletRepo, transactionRepo, tp, appLogger)
	referrals := referralUseCase.NewReferralUseCase(referralRepo, appLogger)
	alerts := alertUseCase.NewAlertUseCase(alertRepo, tp, appLogger)
	contacts := contactUseCase.NewContactUseCase(contactRepo, tp, appLogger)

	// Initialize API handlers
	accountHandler := handler.NewAccountHandler(accounts, appLogger)
	walletHandler := handler.NewWalletHandler(wallets, accounts, appLogger)
	referralHandler := handler.NewReferralHandler(referrals, appLogger)
	alertHandler := handler.NewAlertHandler(alerts, accounts, appLogger)
	contactHandler := handler.NewContactHandler(contacts, accounts, appLogger)

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, tokens, accountHandler, walletHandler, referralHandler, alertHandler, contactHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		if cfg.Environment == config.Production && os.Getenv("IW_DB_HOST") == "" {
			missingConfigs = append(missingConfigs, "database.host (or IW_DB_HOST environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.host")
		}
	}
	if cfg.Database.Port == "" {
		if cfg.Environment == config.Production && os.Getenv("IW_DB_PORT") == "" {
			missingConfigs = append(missingConfigs, "database.port (or IW_DB_PORT environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.port")
		}
	}
	if cfg.Database.Username == "" {
		if cfg.Environment == config.Production && os.Getenv("IW_DB_USERNAME") == "" {
			missingConfigs = append(missingConfigs, "database.username (or IW_DB_USERNAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.username")
		}
	}
	if cfg.Database.Password == "" {
		if cfg.Environment == config.Production && os.Getenv("IW_DB_PASSWORD") == "" {
			missingConfigs = append(missingConfigs, "database.password (or IW_DB_PASSWORD environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.password")
		}
	}
	if cfg.Database.Database == "" {
		if cfg.Environment == config.Production && os.Getenv("IW_DB_NAME") == "" {
			missingConfigs = append(missingConfigs, "database.database (or IW_DB_NAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.database")
		}
	}
	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	if cfg.Auth.TokenTTL == 0 {
		missingConfigs = append(missingConfigs, "auth.tokenTTL")
	}
	if cfg.Provisioning.CodeAttempts == 0 {
		missingConfigs = append(missingConfigs, "provisioning.codeAttempts")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// Additional production checks for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}

		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
