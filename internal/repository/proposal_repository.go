package repository

import (
	"context"
	"time"

	"github.com/craftwise/proposal-api/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProposalRepository struct {
	db *gorm.DB
}

func NewProposalRepository(db *gorm.DB) *ProposalRepository {
	return &ProposalRepository{db: db}
}

func (r *ProposalRepository) Create(ctx context.Context, proposal *domain.Proposal) error {
	return r.db.WithContext(ctx).Create(proposal).Error
}

func (r *ProposalRepository) GetByID(ctx context.Context, accountID, id uuid.UUID) (*domain.Proposal, error) {
	var proposal domain.Proposal
	err := r.db.WithContext(ctx).
		Preload("Sections", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("LineItems", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Signature").
		Preload("Contact").
		First(&proposal, "id = ? AND account_id = ?", id, accountID).Error
	if err != nil {
		return nil, err
	}
	return &proposal, nil
}

// GetByToken resolves a proposal by its share token. Templates are never
// reachable this way.
func (r *ProposalRepository) GetByToken(ctx context.Context, token string) (*domain.Proposal, error) {
	var proposal domain.Proposal
	err := r.db.WithContext(ctx).
		Preload("Sections", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("LineItems", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Signature").
		First(&proposal, "token = ? AND is_template = ?", token, false).Error
	if err != nil {
		return nil, err
	}
	return &proposal, nil
}

// ProposalFilters holds filters for listing proposals
type ProposalFilters struct {
	Status     *domain.ProposalStatus
	IsTemplate *bool
	Search     string
	ContactID  *uuid.UUID
}

// ProposalSortOption defines sort options for proposals
type ProposalSortOption string

const (
	ProposalSortByCreatedDesc ProposalSortOption = "created_desc"
	ProposalSortByCreatedAsc  ProposalSortOption = "created_asc"
	ProposalSortByTitleAsc    ProposalSortOption = "title_asc"
	ProposalSortByNumberDesc  ProposalSortOption = "number_desc"
)

// List returns proposals for an account with filters and pagination
func (r *ProposalRepository) List(ctx context.Context, accountID uuid.UUID, page, pageSize int, filters *ProposalFilters, sortBy ProposalSortOption) ([]domain.Proposal, int64, error) {
	var proposals []domain.Proposal
	var total int64

	offset := (page - 1) * pageSize

	query := r.db.WithContext(ctx).Model(&domain.Proposal{}).Where("account_id = ?", accountID)

	if filters != nil {
		if filters.IsTemplate != nil {
			query = query.Where("is_template = ?", *filters.IsTemplate)
		}
		if filters.Status != nil {
			query = query.Where("status = ?", *filters.Status)
		}
		if filters.ContactID != nil {
			query = query.Where("contact_id = ?", *filters.ContactID)
		}
		if filters.Search != "" {
			searchPattern := "%" + filters.Search + "%"
			query = query.Where(
				"title ILIKE ? OR client_first_name ILIKE ? OR client_last_name ILIKE ? OR client_company ILIKE ?",
				searchPattern, searchPattern, searchPattern, searchPattern,
			)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch sortBy {
	case ProposalSortByCreatedAsc:
		query = query.Order("created_at ASC")
	case ProposalSortByTitleAsc:
		query = query.Order("title ASC")
	case ProposalSortByNumberDesc:
		query = query.Order("sow_number DESC NULLS LAST")
	default:
		query = query.Order("created_at DESC")
	}

	err := query.
		Preload("Signature").
		Offset(offset).
		Limit(pageSize).
		Find(&proposals).Error

	return proposals, total, err
}

// Update persists scalar proposal fields. Child collections go through
// ReplaceChildren.
func (r *ProposalRepository) Update(ctx context.Context, proposal *domain.Proposal) error {
	return r.db.WithContext(ctx).Omit("Sections", "LineItems", "Signature", "Contact").Save(proposal).Error
}

// ReplaceChildren swaps out a proposal's sections and line items as a unit.
// Runs in a transaction so readers never observe a half-replaced document.
func (r *ProposalRepository) ReplaceChildren(ctx context.Context, proposalID uuid.UUID, sections []domain.ProposalCustomSection, items []domain.ProposalLineItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("proposal_id = ?", proposalID).Delete(&domain.ProposalCustomSection{}).Error; err != nil {
			return err
		}
		if err := tx.Where("proposal_id = ?", proposalID).Delete(&domain.ProposalLineItem{}).Error; err != nil {
			return err
		}
		for i := range sections {
			sections[i].ProposalID = proposalID
		}
		for i := range items {
			items[i].ProposalID = proposalID
		}
		if len(sections) > 0 {
			if err := tx.Create(&sections).Error; err != nil {
				return err
			}
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ProposalRepository) Delete(ctx context.Context, accountID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", id, accountID).
		Delete(&domain.Proposal{}).Error
}

// MaxSowNumber returns the highest assigned document number for an account,
// or 0 when none exist. Used to seed the sequence counter.
func (r *ProposalRepository) MaxSowNumber(ctx context.Context, accountID uuid.UUID) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).
		Model(&domain.Proposal{}).
		Where("account_id = ? AND sow_number IS NOT NULL", accountID).
		Select("MAX(sow_number)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}

// TransitionStatus moves a proposal to a new status only if its current
// status is one of the expected ones. The conditional UPDATE makes triggers
// race-safe: concurrent callers see RowsAffected 0 and treat the trigger as
// already applied. Extra columns (timestamps) are written in the same
// statement.
func (r *ProposalRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from []domain.ProposalStatus, to domain.ProposalStatus, extra map[string]interface{}) (bool, error) {
	updates := map[string]interface{}{
		"status":     to,
		"updated_at": time.Now().UTC(),
	}
	for k, v := range extra {
		updates[k] = v
	}

	result := r.db.WithContext(ctx).
		Model(&domain.Proposal{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListExpired returns non-template proposals past their expiration date that
// are still in a state the expire trigger applies to.
func (r *ProposalRepository) ListExpired(ctx context.Context, asOf time.Time) ([]domain.Proposal, error) {
	var proposals []domain.Proposal
	err := r.db.WithContext(ctx).
		Where("is_template = ? AND expiration_date IS NOT NULL AND expiration_date < ?", false, asOf).
		Where("status IN ?", []domain.ProposalStatus{
			domain.ProposalStatusDraft,
			domain.ProposalStatusSent,
			domain.ProposalStatusViewed,
			domain.ProposalStatusOnHold,
		}).
		Find(&proposals).Error
	return proposals, err
}

// ListExpiringSoon returns outstanding proposals expiring within the window
func (r *ProposalRepository) ListExpiringSoon(ctx context.Context, from, to time.Time) ([]domain.Proposal, error) {
	var proposals []domain.Proposal
	err := r.db.WithContext(ctx).
		Where("is_template = ? AND expiration_date IS NOT NULL", false).
		Where("expiration_date >= ? AND expiration_date <= ?", from, to).
		Where("status IN ?", []domain.ProposalStatus{
			domain.ProposalStatusSent,
			domain.ProposalStatusViewed,
			domain.ProposalStatusOnHold,
		}).
		Find(&proposals).Error
	return proposals, err
}

// CountByStatus returns per-status proposal counts for an account dashboard
func (r *ProposalRepository) CountByStatus(ctx context.Context, accountID uuid.UUID) (map[domain.ProposalStatus]int64, error) {
	type row struct {
		Status domain.ProposalStatus
		Count  int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&domain.Proposal{}).
		Select("status, COUNT(*) as count").
		Where("account_id = ? AND is_template = ?", accountID, false).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.ProposalStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}
