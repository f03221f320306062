package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/craftwise/proposal-api/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SowSequenceRepository handles the per-account document number counter.
// Two concurrent creations must never observe the same sequence value, so the
// counter only ever moves through an atomic in-place increment.
type SowSequenceRepository struct {
	db *gorm.DB
}

// NewSowSequenceRepository creates a new SowSequenceRepository
func NewSowSequenceRepository(db *gorm.DB) *SowSequenceRepository {
	return &SowSequenceRepository{db: db}
}

// NextSequence atomically advances and returns the next document number for
// an account. When no counter row exists yet it is seeded with seedFrom, the
// highest document number already assigned, so the counter continues past any
// imported data instead of reissuing numbers below a gap.
func (r *SowSequenceRepository) NextSequence(ctx context.Context, accountID uuid.UUID, seedFrom int) (int, error) {
	next, found, err := r.increment(ctx, accountID)
	if err != nil {
		return 0, err
	}
	if found {
		return next, nil
	}

	// First number for this account: seed the counter row.
	seq := domain.SowSequence{
		AccountID:    accountID,
		LastSequence: seedFrom + 1,
	}
	createErr := r.db.WithContext(ctx).Create(&seq).Error
	if createErr == nil {
		return seq.LastSequence, nil
	}
	if !errors.Is(createErr, gorm.ErrDuplicatedKey) {
		return 0, fmt.Errorf("failed to create sequence: %w", createErr)
	}

	// A concurrent caller seeded the row first; the unique index on
	// account_id rejected ours. Retry the increment against their row.
	next, found, err = r.increment(ctx, accountID)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, fmt.Errorf("sequence row missing after create conflict")
	}
	return next, nil
}

// increment advances the counter and returns the new value. The read happens
// in the same transaction as the update so the row lock holds off concurrent
// increments until commit; each caller reads exactly its own value.
func (r *SowSequenceRepository) increment(ctx context.Context, accountID uuid.UUID) (int, bool, error) {
	var next int
	var found bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&domain.SowSequence{}).
			Where("account_id = ?", accountID).
			Updates(map[string]interface{}{
				"last_sequence": gorm.Expr("last_sequence + 1"),
				"updated_at":    time.Now().UTC(),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to advance sequence: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil
		}

		found = true
		var seq domain.SowSequence
		if err := tx.Where("account_id = ?", accountID).First(&seq).Error; err != nil {
			return fmt.Errorf("failed to read sequence: %w", err)
		}
		next = seq.LastSequence
		return nil
	})
	if err != nil {
		return 0, false, err
	}

	return next, found, nil
}

// GetCurrentSequence retrieves the current counter value without advancing.
// Returns 0 if no counter exists for the account.
func (r *SowSequenceRepository) GetCurrentSequence(ctx context.Context, accountID uuid.UUID) (int, error) {
	var seq domain.SowSequence
	result := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&seq)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if result.Error != nil {
		return 0, fmt.Errorf("failed to get sequence: %w", result.Error)
	}

	return seq.LastSequence, nil
}
