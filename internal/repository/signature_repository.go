package repository

import (
	"context"

	"github.com/craftwise/proposal-api/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SignatureRepository handles database operations for proposal signatures.
// The unique index on proposal_id is the authority on sign-once: a second
// insert fails with gorm.ErrDuplicatedKey no matter how close the race.
type SignatureRepository struct {
	db *gorm.DB
}

func NewSignatureRepository(db *gorm.DB) *SignatureRepository {
	return &SignatureRepository{db: db}
}

func (r *SignatureRepository) Create(ctx context.Context, signature *domain.ProposalSignature) error {
	return r.db.WithContext(ctx).Create(signature).Error
}

func (r *SignatureRepository) GetByProposalID(ctx context.Context, proposalID uuid.UUID) (*domain.ProposalSignature, error) {
	var signature domain.ProposalSignature
	err := r.db.WithContext(ctx).
		First(&signature, "proposal_id = ?", proposalID).Error
	if err != nil {
		return nil, err
	}
	return &signature, nil
}
