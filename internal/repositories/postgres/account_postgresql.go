package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/cache"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/models"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/repositories"
)

type AccountPostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewAccountPostgreSQL(db *gorm.DB, cacheManager *cache.CacheManager) repositories.AccountRepository {
	return &AccountPostgreSQL{
		db:           db,
		cacheManager: cacheManager,
	}
}

// Create inserts the account, relying on the unique email index for
// duplicate rejection so the check and the write are one atomic operation.
func (a *AccountPostgreSQL) Create(ctx context.Context, account *models.Account) error {
	if err := a.db.WithContext(ctx).Create(account).Error; err != nil {
		if repositories.IsDuplicateKeyError(err) || errors.Is(err, gorm.ErrDuplicatedKey) {
			return repositories.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

func (a *AccountPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Account, error) {
	cacheKey := fmt.Sprintf("id:%d", id)
	var account models.Account

	err := a.cacheManager.Account.CacheOrExecute(ctx, cacheKey, &account, cache.AccountCacheConfig.TTL, func() (interface{}, error) {
		var dbAccount models.Account
		if err := a.db.WithContext(ctx).First(&dbAccount, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, repositories.ErrNotFound
			}
			return nil, fmt.Errorf("failed to get account: %w", err)
		}
		return &dbAccount, nil
	})
	if err != nil {
		return nil, err
	}

	return &account, nil
}

func (a *AccountPostgreSQL) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	if err := a.db.WithContext(ctx).Where("email = ?", email).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}
	return &account, nil
}

func (a *AccountPostgreSQL) List(ctx context.Context, filters repositories.AccountFilters) ([]*models.Account, int64, error) {
	query := a.db.WithContext(ctx).Model(&models.Account{})

	if filters.PaymentStatus != nil {
		query = query.Where("payment_status = ?", *filters.PaymentStatus)
	}
	if filters.Role != nil {
		query = query.Where("role = ?", *filters.Role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count accounts: %w", err)
	}

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit).Offset(filters.Offset)
	}

	var accounts []*models.Account
	if err := query.Find(&accounts).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list accounts: %w", err)
	}

	return accounts, total, nil
}

func (a *AccountPostgreSQL) UpdatePaymentStatus(ctx context.Context, id uint, status models.PaymentStatus, txnID *string) error {
	updates := map[string]interface{}{"payment_status": status}
	if txnID != nil {
		updates["transaction_id"] = *txnID
	} else if status == models.PaymentPending {
		// a reject wipes the submitted transaction id so the student can retry
		updates["transaction_id"] = nil
	}

	result := a.db.WithContext(ctx).Model(&models.Account{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update payment status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}

	// stale cache entry expires on its own TTL
	_ = a.cacheManager.Account.Delete(ctx, fmt.Sprintf("id:%d", id))

	return nil
}

func (a *AccountPostgreSQL) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := a.db.WithContext(ctx).Model(&models.Account{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return count > 0, nil
}
