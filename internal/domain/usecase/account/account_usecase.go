package account

import (
	coreport "github.com/investapp/invest-wallet/internal/domain/port/core"
	"github.com/investapp/invest-wallet/internal/domain/port/persistence"
)

// DefaultCodeAttempts bounds how often provisioning re-draws a colliding
// referral code or wallet number before giving up with a conflict error
const DefaultCodeAttempts = 5

// AccountUseCase carries account registration, authentication, approval and
// profile operations
type AccountUseCase struct {
	uow          persistence.UnitOfWork
	accountRepo  persistence.AccountRepository
	hasher       coreport.PasswordHasher
	codes        coreport.CodeGenerator
	tokens       coreport.TokenIssuer
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	codeAttempts int
}

// NewAccountUseCase creates a new AccountUseCase with all its dependencies
func NewAccountUseCase(
	uow persistence.UnitOfWork,
	accountRepo persistence.AccountRepository,
	hasher coreport.PasswordHasher,
	codes coreport.CodeGenerator,
	tokens coreport.TokenIssuer,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *AccountUseCase {
	return &AccountUseCase{
		uow:          uow,
		accountRepo:  accountRepo,
		hasher:       hasher,
		codes:        codes,
		tokens:       tokens,
		timeProvider: timeProvider,
		logger:       logger,
		codeAttempts: DefaultCodeAttempts,
	}
}

// WithCodeAttempts overrides the bounded retry count for identifier generation
func (u *AccountUseCase) WithCodeAttempts(attempts int) *AccountUseCase {
	if attempts > 0 {
		u.codeAttempts = attempts
	}
	return u
}
