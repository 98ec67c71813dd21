package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/investapp/invest-wallet/internal/domain/entity"
	errs "github.com/investapp/invest-wallet/internal/domain/error"
)

// Login authenticates a username/password pair and returns a signed token.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (u *AccountUseCase) Login(ctx context.Context, username, password string) (string, *entity.Account, error) {
	account, err := u.accountRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrAccountNotFound) {
			return "", nil, errs.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := u.hasher.Compare(account.PasswordHash, password); err != nil {
		u.logger.Warn("Failed login attempt", map[string]any{
			"username": username,
		})
		return "", nil, errs.ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(account.ID, account.IsAdmin)
	if err != nil {
		u.logger.Error("Failed to issue token", map[string]any{
			"account_id": account.ID,
			"error":      err.Error(),
		})
		return "", nil, fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}

	return token, account, nil
}
