package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/craftwise/proposal-api/internal/auth"
	"github.com/craftwise/proposal-api/internal/dochash"
	"github.com/craftwise/proposal-api/internal/domain"
	"github.com/craftwise/proposal-api/internal/mapper"
	"github.com/craftwise/proposal-api/internal/pricing"
	"github.com/craftwise/proposal-api/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProposalService handles owner-facing business logic for proposals and
// templates.
type ProposalService struct {
	proposalRepo *repository.ProposalRepository
	contactRepo  *repository.ContactRepository
	numberingSvc *NumberingService
	logger       *zap.Logger
}

// NewProposalService creates a new ProposalService instance
func NewProposalService(
	proposalRepo *repository.ProposalRepository,
	contactRepo *repository.ContactRepository,
	numberingSvc *NumberingService,
	logger *zap.Logger,
) *ProposalService {
	return &ProposalService{
		proposalRepo: proposalRepo,
		contactRepo:  contactRepo,
		numberingSvc: numberingSvc,
		logger:       logger,
	}
}

// Create creates a proposal or template for the current account. Non-template
// proposals receive a document number at creation and keep it for life.
func (s *ProposalService) Create(ctx context.Context, req *domain.CreateProposalRequest) (*domain.ProposalDTO, error) {
	userCtx, ok := auth.FromContext(ctx)
	if !ok {
		return nil, ErrUserContextRequired
	}

	token, err := generateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate share token: %w", err)
	}

	proposal := &domain.Proposal{
		AccountID:  userCtx.AccountID,
		Token:      token,
		IsTemplate: req.IsTemplate,
		Title:      req.Title,
		Terms:      req.Terms,

		ClientFirstName: req.ClientFirstName,
		ClientLastName:  req.ClientLastName,
		ClientEmail:     req.ClientEmail,
		ClientCompany:   req.ClientCompany,
		ContactID:       req.ContactID,

		BusinessName:    req.BusinessName,
		BusinessEmail:   req.BusinessEmail,
		BusinessPhone:   req.BusinessPhone,
		BusinessAddress: req.BusinessAddress,

		ShowPricing:      boolOrDefault(req.ShowPricing, true),
		ShowTerms:        boolOrDefault(req.ShowTerms, true),
		ShowSowNumber:    boolOrDefault(req.ShowSowNumber, true),
		RequireSignature: boolOrDefault(req.RequireSignature, true),

		DefaultPricingType: pricingTypeOrDefault(req.DefaultPricingType),
		DiscountType:       discountTypeOrDefault(req.DiscountType),
		DiscountValue:      req.DiscountValue,
		TaxRate:            req.TaxRate,

		Status:         domain.ProposalStatusDraft,
		ExpirationDate: req.ExpirationDate,
	}

	if req.ProposalDate != nil {
		proposal.ProposalDate = *req.ProposalDate
	} else {
		proposal.ProposalDate = time.Now().UTC()
	}

	// Linked contact fills in any client fields the request left blank;
	// the stored values stay a snapshot from this moment
	if req.ContactID != nil {
		contact, err := s.contactRepo.GetByID(ctx, userCtx.AccountID, *req.ContactID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrContactNotFound
			}
			return nil, fmt.Errorf("failed to load contact: %w", err)
		}
		if proposal.ClientFirstName == "" {
			proposal.ClientFirstName = contact.FirstName
		}
		if proposal.ClientLastName == "" {
			proposal.ClientLastName = contact.LastName
		}
		if proposal.ClientEmail == "" {
			proposal.ClientEmail = contact.Email
		}
		if proposal.ClientCompany == "" {
			proposal.ClientCompany = contact.Company
		}
	}

	sections, err := buildSections(req.Sections)
	if err != nil {
		return nil, err
	}
	proposal.Sections = sections
	proposal.LineItems = buildLineItems(req.LineItems)

	// Templates never consume a document number
	if !req.IsTemplate {
		number, err := s.numberingSvc.AssignSowNumber(ctx, userCtx.AccountID)
		if err != nil {
			return nil, err
		}
		proposal.SowNumber = &number
	}

	if err := s.proposalRepo.Create(ctx, proposal); err != nil {
		return nil, fmt.Errorf("failed to create proposal: %w", err)
	}

	s.logger.Info("proposal created",
		zap.String("proposalID", proposal.ID.String()),
		zap.String("accountID", userCtx.AccountID.String()),
		zap.Bool("isTemplate", proposal.IsTemplate),
	)

	return s.toDTO(ctx, proposal)
}

// GetByID returns a proposal with computed totals, display number and the
// advisory signature verification state. A proposal past its expiration date
// is moved to expired before being returned.
func (s *ProposalService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ProposalDTO, error) {
	userCtx, ok := auth.FromContext(ctx)
	if !ok {
		return nil, ErrUserContextRequired
	}

	proposal, err := s.proposalRepo.GetByID(ctx, userCtx.AccountID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}

	if err := s.ApplyExpiryIfDue(ctx, proposal); err != nil {
		return nil, err
	}

	return s.toDTO(ctx, proposal)
}

// List returns proposals for the current account with filters and pagination
func (s *ProposalService) List(ctx context.Context, page, pageSize int, filters *repository.ProposalFilters, sortBy repository.ProposalSortOption) (*domain.PaginatedResponse, error) {
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

	proposals, total, err := s.proposalRepo.List(ctx, userCtx.AccountID, page, pageSize, filters, sortBy)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}

	// List rows skip totals and verification; those are detail-view concerns
	dtos := make([]domain.ProposalDTO, len(proposals))
	for i := range proposals {
		displayNumber, err := s.numberingSvc.DisplayNumber(ctx, userCtx.AccountID, proposals[i].SowNumber)
		if err != nil {
			return nil, err
		}
		dtos[i] = mapper.ToProposalDTO(&proposals[i], displayNumber, nil, "")
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

// Update replaces a proposal's content wholesale. Accepted, declined and
// expired proposals reject edits; the signed document must keep matching
// what the client saw as far as the owner surface is concerned.
func (s *ProposalService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateProposalRequest) (*domain.ProposalDTO, error) {
	userCtx, ok := auth.FromContext(ctx)
	if !ok {
		return nil, ErrUserContextRequired
	}

	proposal, err := s.proposalRepo.GetByID(ctx, userCtx.AccountID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}

	if !proposal.IsTemplate && !proposal.Status.IsEditable() {
		return nil, ErrEditNotAllowed
	}

	proposal.Title = req.Title
	proposal.Terms = req.Terms
	proposal.ExpirationDate = req.ExpirationDate
	if req.ProposalDate != nil {
		proposal.ProposalDate = *req.ProposalDate
	}

	proposal.ClientFirstName = req.ClientFirstName
	proposal.ClientLastName = req.ClientLastName
	proposal.ClientEmail = req.ClientEmail
	proposal.ClientCompany = req.ClientCompany
	proposal.ContactID = req.ContactID

	if req.ShowPricing != nil {
		proposal.ShowPricing = *req.ShowPricing
	}
	if req.ShowTerms != nil {
		proposal.ShowTerms = *req.ShowTerms
	}
	if req.ShowSowNumber != nil {
		proposal.ShowSowNumber = *req.ShowSowNumber
	}
	if req.RequireSignature != nil {
		proposal.RequireSignature = *req.RequireSignature
	}

	if req.DefaultPricingType != "" {
		proposal.DefaultPricingType = domain.PricingType(req.DefaultPricingType)
	}
	if req.DiscountType != "" {
		proposal.DiscountType = domain.DiscountType(req.DiscountType)
	}
	proposal.DiscountValue = req.DiscountValue
	proposal.TaxRate = req.TaxRate

	sections, err := buildSections(req.Sections)
	if err != nil {
		return nil, err
	}
	items := buildLineItems(req.LineItems)

	if err := s.proposalRepo.Update(ctx, proposal); err != nil {
		return nil, fmt.Errorf("failed to update proposal: %w", err)
	}
	if err := s.proposalRepo.ReplaceChildren(ctx, proposal.ID, sections, items); err != nil {
		return nil, fmt.Errorf("failed to replace proposal content: %w", err)
	}

	s.logger.Info("proposal updated",
		zap.String("proposalID", proposal.ID.String()),
		zap.String("accountID", userCtx.AccountID.String()),
	)

	// Reload for fresh children
	return s.GetByID(ctx, id)
}

// Delete removes a proposal. Its document number is never reissued; the
// sequence counter only moves forward.
func (s *ProposalService) Delete(ctx context.Context, id uuid.UUID) error {
	userCtx, ok := auth.FromContext(ctx)
	if !ok {
		return ErrUserContextRequired
	}

	if _, err := s.proposalRepo.GetByID(ctx, userCtx.AccountID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProposalNotFound
		}
		return fmt.Errorf("failed to get proposal: %w", err)
	}

	if err := s.proposalRepo.Delete(ctx, userCtx.AccountID, id); err != nil {
		return fmt.Errorf("failed to delete proposal: %w", err)
	}

	s.logger.Info("proposal deleted",
		zap.String("proposalID", id.String()),
		zap.String("accountID", userCtx.AccountID.String()),
	)
	return nil
}

// StatusCounts returns per-status proposal counts for the account dashboard.
// Every status appears in the result, zero included.
func (s *ProposalService) StatusCounts(ctx context.Context) (map[domain.ProposalStatus]int64, error) {
	userCtx, ok := auth.FromContext(ctx)
	if !ok {
		return nil, ErrUserContextRequired
	}

	counts, err := s.proposalRepo.CountByStatus(ctx, userCtx.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to count proposals: %w", err)
	}

	for _, status := range []domain.ProposalStatus{
		domain.ProposalStatusDraft,
		domain.ProposalStatusSent,
		domain.ProposalStatusViewed,
		domain.ProposalStatusOnHold,
		domain.ProposalStatusAccepted,
		domain.ProposalStatusDeclined,
		domain.ProposalStatusExpired,
	} {
		if _, ok := counts[status]; !ok {
			counts[status] = 0
		}
	}

	return counts, nil
}

// Clone copies a proposal or template into a fresh draft. The copy gets its
// own token, a new document number when it is a real proposal, and carries no
// lifecycle history or signature.
func (s *ProposalService) Clone(ctx context.Context, id uuid.UUID, req *domain.CloneProposalRequest) (*domain.ProposalDTO, error) {
	userCtx, ok := auth.FromContext(ctx)
	if !ok {
		return nil, ErrUserContextRequired
	}

	source, err := s.proposalRepo.GetByID(ctx, userCtx.AccountID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}

	token, err := generateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate share token: %w", err)
	}

	title := req.Title
	if title == "" {
		title = "Copy of " + source.Title
	}

	clone := &domain.Proposal{
		AccountID:    userCtx.AccountID,
		Token:        token,
		IsTemplate:   req.AsTemplate,
		Title:        title,
		ProposalDate: time.Now().UTC(),
		Terms:        source.Terms,

		ClientFirstName: source.ClientFirstName,
		ClientLastName:  source.ClientLastName,
		ClientEmail:     source.ClientEmail,
		ClientCompany:   source.ClientCompany,
		ContactID:       source.ContactID,

		BusinessName:    source.BusinessName,
		BusinessEmail:   source.BusinessEmail,
		BusinessPhone:   source.BusinessPhone,
		BusinessAddress: source.BusinessAddress,

		ShowPricing:      source.ShowPricing,
		ShowTerms:        source.ShowTerms,
		ShowSowNumber:    source.ShowSowNumber,
		RequireSignature: source.RequireSignature,

		DefaultPricingType: source.DefaultPricingType,
		DiscountType:       source.DiscountType,
		DiscountValue:      source.DiscountValue,
		TaxRate:            source.TaxRate,

		Status: domain.ProposalStatusDraft,
	}

	clone.Sections = make([]domain.ProposalCustomSection, len(source.Sections))
	for i, sec := range source.Sections {
		clone.Sections[i] = domain.ProposalCustomSection{
			Title:          sec.Title,
			Subtitle:       sec.Subtitle,
			Body:           sec.Body,
			Position:       i,
			SectionType:    sec.SectionType,
			ReviewExcerpts: sec.ReviewExcerpts,
		}
	}
	clone.LineItems = make([]domain.ProposalLineItem, len(source.LineItems))
	for i, item := range source.LineItems {
		clone.LineItems[i] = domain.ProposalLineItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			PricingType: item.PricingType,
			Position:    i,
		}
	}

	if !req.AsTemplate {
		number, err := s.numberingSvc.AssignSowNumber(ctx, userCtx.AccountID)
		if err != nil {
			return nil, err
		}
		clone.SowNumber = &number
	}

	if err := s.proposalRepo.Create(ctx, clone); err != nil {
		return nil, fmt.Errorf("failed to create clone: %w", err)
	}

	s.logger.Info("proposal cloned",
		zap.String("sourceID", source.ID.String()),
		zap.String("cloneID", clone.ID.String()),
		zap.Bool("asTemplate", clone.IsTemplate),
	)

	return s.toDTO(ctx, clone)
}

// ApplyExpiryIfDue moves a proposal past its expiration date to expired.
// Reads are the expiry mechanism; no clock-driven writes are required for
// correctness, the scheduled sweep just keeps listings fresh.
func (s *ProposalService) ApplyExpiryIfDue(ctx context.Context, proposal *domain.Proposal) error {
	if proposal.IsTemplate || !isPastExpiration(proposal, time.Now().UTC()) {
		return nil
	}

	next, ok := domain.NextStatus(proposal.Status, domain.TriggerExpire)
	if !ok {
		return nil
	}

	applied, err := s.proposalRepo.TransitionStatus(ctx, proposal.ID,
		[]domain.ProposalStatus{proposal.Status}, next, nil)
	if err != nil {
		return fmt.Errorf("failed to expire proposal: %w", err)
	}
	if applied {
		proposal.Status = next
		s.logger.Info("proposal expired",
			zap.String("proposalID", proposal.ID.String()),
		)
	}
	return nil
}

// toDTO assembles the full DTO with totals, display number and verification
func (s *ProposalService) toDTO(ctx context.Context, proposal *domain.Proposal) (*domain.ProposalDTO, error) {
	displayNumber, err := s.numberingSvc.DisplayNumber(ctx, proposal.AccountID, proposal.SowNumber)
	if err != nil {
		return nil, err
	}

	totals := mapper.ToTotalsDTO(ComputeProposalTotals(proposal))

	var verification domain.SignatureVerification
	if proposal.Signature != nil {
		verification = dochash.Verify(proposal, proposal.Signature.DocumentHash)
	}

	dto := mapper.ToProposalDTO(proposal, displayNumber, &totals, verification)
	return &dto, nil
}

// ComputeProposalTotals runs the pricing engine over a proposal's line items
func ComputeProposalTotals(proposal *domain.Proposal) pricing.Totals {
	items := make([]pricing.LineItem, len(proposal.LineItems))
	for i, li := range proposal.LineItems {
		items[i] = pricing.LineItem{
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			PricingType: li.PricingType,
		}
	}
	return pricing.ComputeTotals(pricing.Input{
		LineItems:          items,
		DefaultPricingType: proposal.DefaultPricingType,
		DiscountType:       proposal.DiscountType,
		DiscountValue:      proposal.DiscountValue,
		TaxRate:            proposal.TaxRate,
	})
}

// isPastExpiration reports whether a proposal's expiration date has passed.
// The proposal stays valid through the whole expiration day.
func isPastExpiration(proposal *domain.Proposal, now time.Time) bool {
	if proposal.ExpirationDate == nil {
		return false
	}
	endOfDay := proposal.ExpirationDate.Truncate(24 * time.Hour).Add(24 * time.Hour)
	return now.After(endOfDay) || now.Equal(endOfDay)
}

func buildSections(reqs []domain.CustomSectionRequest) ([]domain.ProposalCustomSection, error) {
	sections := make([]domain.ProposalCustomSection, len(reqs))
	for i, req := range reqs {
		sectionType := domain.SectionTypeText
		if req.SectionType != "" {
			sectionType = domain.SectionType(req.SectionType)
		}

		section := domain.ProposalCustomSection{
			Title:       req.Title,
			Subtitle:    req.Subtitle,
			Body:        req.Body,
			Position:    i,
			SectionType: sectionType,
		}

		if sectionType == domain.SectionTypeReviews && len(req.ReviewExcerpts) > 0 {
			raw, err := json.Marshal(req.ReviewExcerpts)
			if err != nil {
				return nil, fmt.Errorf("failed to encode review excerpts: %w", err)
			}
			section.ReviewExcerpts = datatypes.JSON(raw)
		}

		sections[i] = section
	}
	return sections, nil
}

func buildLineItems(reqs []domain.LineItemRequest) []domain.ProposalLineItem {
	items := make([]domain.ProposalLineItem, len(reqs))
	for i, req := range reqs {
		items[i] = domain.ProposalLineItem{
			Description: req.Description,
			Quantity:    req.Quantity,
			UnitPrice:   req.UnitPrice,
			PricingType: domain.PricingType(req.PricingType),
			Position:    i,
		}
	}
	return items
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func pricingTypeOrDefault(v string) domain.PricingType {
	if v == "" {
		return domain.PricingTypeFixed
	}
	return domain.PricingType(v)
}

func discountTypeOrDefault(v string) domain.DiscountType {
	if v == "" {
		return domain.DiscountTypeNone
	}
	return domain.DiscountType(v)
}

// generateToken returns a 64 character hex share token
func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
