package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/craftwise/proposal-api/internal/auth"
	"github.com/craftwise/proposal-api/internal/domain"
	"github.com/craftwise/proposal-api/internal/mapper"
	"github.com/craftwise/proposal-api/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ContactService handles business logic for contacts
type ContactService struct {
	contactRepo *repository.ContactRepository
	logger      *zap.Logger
}

// NewContactService creates a new ContactService instance
func NewContactService(contactRepo *repository.ContactRepository, logger *zap.Logger) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		logger:      logger,
	}
}

// Create creates a contact for the current account
func (s *ContactService) Create(ctx context.Context, req *domain.CreateContactRequest) (*domain.ContactDTO, error) {
	userCtx, ok := auth.FromContext(ctx)
	if !ok {
		return nil, ErrUserContextRequired
	}

	contact := &domain.Contact{
		AccountID: userCtx.AccountID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Company:   req.Company,
		Phone:     req.Phone,
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	s.logger.Info("contact created",
		zap.String("contactID", contact.ID.String()),
		zap.String("accountID", userCtx.AccountID.String()),
	)

	dto := mapper.ToContactDTO(contact)
	return &dto, nil
}

// GetByID returns a contact by ID within the current account
func (s *ContactService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ContactDTO, error) {
	userCtx, ok := auth.FromContext(ctx)
	if !ok {
		return nil, ErrUserContextRequired
	}

	contact, err := s.contactRepo.GetByID(ctx, userCtx.AccountID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	dto := mapper.ToContactDTO(contact)
	return &dto, nil
}

// List returns contacts for the current account with pagination
func (s *ContactService) List(ctx context.Context, page, pageSize int, search string) (*domain.PaginatedResponse, error) {
	userCtx, ok := auth.FromContext(ctx)
	if !ok {
		return nil, ErrUserContextRequired
	}

	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 200 {
		pageSize = 200
	}
	if page < 1 {
		page = 1
	}

	contacts, total, err := s.contactRepo.List(ctx, userCtx.AccountID, page, pageSize, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	dtos := make([]domain.ContactDTO, len(contacts))
	for i := range contacts {
		dtos[i] = mapper.ToContactDTO(&contacts[i])
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return &domain.PaginatedResponse{
		Data:       dtos,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// Update updates a contact within the current account
func (s *ContactService) Update(ctx context.Context, id uuid.UUID, req *domain.CreateContactRequest) (*domain.ContactDTO, error) {
	userCtx, ok := auth.FromContext(ctx)
	if !ok {
		return nil, ErrUserContextRequired
	}

	contact, err := s.contactRepo.GetByID(ctx, userCtx.AccountID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	contact.FirstName = req.FirstName
	contact.LastName = req.LastName
	contact.Email = req.Email
	contact.Company = req.Company
	contact.Phone = req.Phone

	if err := s.contactRepo.Update(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	dto := mapper.ToContactDTO(contact)
	return &dto, nil
}

// Delete removes a contact. Proposals keep their client snapshot, so
// deleting a contact never alters existing documents.
func (s *ContactService) Delete(ctx context.Context, id uuid.UUID) error {
	userCtx, ok := auth.FromContext(ctx)
	if !ok {
		return ErrUserContextRequired
	}

	if _, err := s.contactRepo.GetByID(ctx, userCtx.AccountID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContactNotFound
		}
		return fmt.Errorf("failed to get contact: %w", err)
	}

	if err := s.contactRepo.Delete(ctx, userCtx.AccountID, id); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	s.logger.Info("contact deleted",
		zap.String("contactID", id.String()),
		zap.String("accountID", userCtx.AccountID.String()),
	)
	return nil
}
