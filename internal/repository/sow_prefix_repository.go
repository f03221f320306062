package repository

import (
	"context"
	"time"

	"github.com/craftwise/proposal-api/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SowPrefixRepository struct {
	db *gorm.DB
}

func NewSowPrefixRepository(db *gorm.DB) *SowPrefixRepository {
	return &SowPrefixRepository{db: db}
}

func (r *SowPrefixRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID) (*domain.SowPrefix, error) {
	var prefix domain.SowPrefix
	err := r.db.WithContext(ctx).
		First(&prefix, "account_id = ?", accountID).Error
	if err != nil {
		return nil, err
	}
	return &prefix, nil
}

func (r *SowPrefixRepository) Create(ctx context.Context, prefix *domain.SowPrefix) error {
	return r.db.WithContext(ctx).Create(prefix).Error
}

// UpdatePrefix changes an account's prefix only while it is unlocked. The
// guard runs in the UPDATE itself; callers check RowsAffected to learn
// whether the prefix had already been locked by a concurrent first use.
func (r *SowPrefixRepository) UpdatePrefix(ctx context.Context, accountID uuid.UUID, prefix string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.SowPrefix{}).
		Where("account_id = ? AND locked = ?", accountID, false).
		Updates(map[string]interface{}{
			"prefix":     prefix,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Lock marks the prefix as permanently immutable. Called on the first use of
// the prefix in a document number; locking an already locked prefix is a no-op.
func (r *SowPrefixRepository) Lock(ctx context.Context, accountID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&domain.SowPrefix{}).
		Where("account_id = ? AND locked = ?", accountID, false).
		Updates(map[string]interface{}{
			"locked":     true,
			"updated_at": time.Now().UTC(),
		}).Error
}
