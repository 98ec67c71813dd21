package migration

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	coreport "github.com/investapp/invest-wallet/internal/domain/port/core"
	"github.com/investapp/invest-wallet/internal/infrastructure/adapter/model"
)

// Migrator brings the database schema up to date
type Migrator struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewMigrator creates a new migrator
func NewMigrator(db *gorm.DB, logger coreport.Logger) *Migrator {
	return &Migrator{
		db:     db,
		logger: logger,
	}
}

// Run performs all migrations
func (m *Migrator) Run(ctx context.Context) error {
	m.logger.Info("Starting database migrations", nil)

	db := m.db.WithContext(ctx)

	if err := db.AutoMigrate(
		&model.Account{},
		&model.Wallet{},
		&model.Transaction{},
		&model.Referral{},
		&model.Alert{},
		&model.ContactMessage{},
	); err != nil {
		m.logger.Error("Failed to auto-migrate models", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.createIndexes(ctx); err != nil {
		m.logger.Error("Failed to create indexes", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("Database migrations completed", nil)
	return nil
}

// createIndexes creates indexes that AutoMigrate does not cover
func (m *Migrator) createIndexes(ctx context.Context) error {
	db := m.db.WithContext(ctx)

	statements := []string{
		// Ledger listings are always newest first per wallet
		"CREATE INDEX IF NOT EXISTS idx_transactions_wallet_created ON transactions (wallet_id, created_at DESC)",
		// Deposit and withdrawal totals are summed per wallet and kind
		"CREATE INDEX IF NOT EXISTS idx_transactions_wallet_kind ON transactions (wallet_id, kind)",
		// Alert feeds filter on recipient, broadcast rows have an empty one
		"CREATE INDEX IF NOT EXISTS idx_alerts_recipient ON alerts (recipient)",
		// Referral join counts group on the joined code
		"CREATE INDEX IF NOT EXISTS idx_referrals_joined_code ON referrals (joined_code)",
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}

// EnsureDefaultAdmin seeds an approved admin account when none exists.
// The password hash comes from configuration so no credential is baked
// into the binary.
func (m *Migrator) EnsureDefaultAdmin(ctx context.Context, passwordHash string, now time.Time) error {
	db := m.db.WithContext(ctx)

	var count int64
	if err := db.Model(&model.Account{}).Where("is_admin = ?", true).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin := model.Account{
		Username:     "admin",
		Email:        "admin@localhost",
		PasswordHash: passwordHash,
		Status:       "approved",
		ReferralCode: "admin000",
		IsAdmin:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := db.Create(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}

	wallet := model.Wallet{
		AccountID: admin.ID,
		Number:    "admin000",
		Balance:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.Create(&wallet).Error; err != nil {
		return err
	}

	m.logger.Info("Seeded default admin account", map[string]any{
		"account_id": admin.ID,
	})
	return nil
}
