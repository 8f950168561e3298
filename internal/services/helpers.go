package services

import (
	"context"

	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/repositories"
)

// isAdminAccount checks the stored role for an account id. A missing
// account is simply not an admin.
func isAdminAccount(ctx context.Context, repo repositories.Repository, accountID uint) (bool, error) {
	account, err := repo.Account().GetByID(ctx, accountID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return false, nil
		}
		return false, err
	}
	return account.IsAdmin(), nil
}
