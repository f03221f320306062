package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/craftwise/proposal-api/internal/auth"
	"github.com/craftwise/proposal-api/internal/dochash"
	"github.com/craftwise/proposal-api/internal/domain"
	"github.com/craftwise/proposal-api/internal/repository"
	"github.com/craftwise/proposal-api/internal/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LifecycleService drives proposal status changes: the owner-side send and
// direct status set, and the recipient-side view, sign and decline reached
// through the share token. All writes go through the transition table; a
// trigger that loses a race is treated as already applied.
type LifecycleService struct {
	proposalRepo    *repository.ProposalRepository
	signatureRepo   *repository.SignatureRepository
	proposalSvc     *ProposalService
	notificationSvc *NotificationService
	store           storage.Storage
	logger          *zap.Logger
}

// NewLifecycleService creates a new LifecycleService instance
func NewLifecycleService(
	proposalRepo *repository.ProposalRepository,
	signatureRepo *repository.SignatureRepository,
	proposalSvc *ProposalService,
	notificationSvc *NotificationService,
	store storage.Storage,
	logger *zap.Logger,
) *LifecycleService {
	return &LifecycleService{
		proposalRepo:    proposalRepo,
		signatureRepo:   signatureRepo,
		proposalSvc:     proposalSvc,
		notificationSvc: notificationSvc,
		store:           store,
		logger:          logger,
	}
}

// Send marks a proposal as sent. Resending from sent or viewed returns the
// status to sent; milestone timestamps are set once and kept as history, so
// a resend never erases when the proposal first went out or was first
// opened. Terminal states reject the trigger.
func (s *LifecycleService) Send(ctx context.Context, id uuid.UUID) (*domain.ProposalDTO, error) {
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
	if proposal.IsTemplate {
		return nil, ErrTemplateLifecycle
	}

	if err := s.proposalSvc.ApplyExpiryIfDue(ctx, proposal); err != nil {
		return nil, err
	}

	next, ok := domain.NextStatus(proposal.Status, domain.TriggerSend)
	if !ok {
		return nil, ErrInvalidTransition
	}

	now := time.Now().UTC()
	extra := map[string]interface{}{}
	if proposal.SentAt == nil {
		extra["sent_at"] = now
	}
	applied, err := s.proposalRepo.TransitionStatus(ctx, proposal.ID,
		sendableStatuses(), next, extra)
	if err != nil {
		return nil, fmt.Errorf("failed to send proposal: %w", err)
	}
	if applied {
		proposal.Status = next
		if proposal.SentAt == nil {
			proposal.SentAt = &now
		}

		s.logger.Info("proposal sent",
			zap.String("proposalID", proposal.ID.String()),
			zap.String("accountID", userCtx.AccountID.String()),
		)
		s.notificationSvc.NotifyAccount(ctx, proposal.AccountID,
			domain.NotificationTypeProposalSent,
			"Proposal sent",
			fmt.Sprintf("%q was sent to %s", proposal.Title, proposal.ClientFullName()),
			proposal.ID,
		)
	}

	return s.proposalSvc.toDTO(ctx, proposal)
}

// SetStatus applies an explicit owner status change, for putting a proposal
// on hold or recording an outcome agreed out of band. Terminal states reject
// changes; viewed and expired are system-only targets.
func (s *LifecycleService) SetStatus(ctx context.Context, id uuid.UUID, target domain.ProposalStatus) (*domain.ProposalDTO, error) {
	userCtx, ok := auth.FromContext(ctx)
	if !ok {
		return nil, ErrUserContextRequired
	}
	if !target.IsValid() {
		return nil, ErrInvalidStatus
	}

	proposal, err := s.proposalRepo.GetByID(ctx, userCtx.AccountID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}
	if proposal.IsTemplate {
		return nil, ErrTemplateLifecycle
	}

	if !proposal.Status.CanSetDirectly(target) {
		return nil, ErrInvalidStatus
	}
	if proposal.Status == target {
		return s.proposalSvc.toDTO(ctx, proposal)
	}

	now := time.Now().UTC()
	extra := map[string]interface{}{}
	switch target {
	case domain.ProposalStatusSent:
		if proposal.SentAt == nil {
			extra["sent_at"] = now
		}
	case domain.ProposalStatusAccepted:
		extra["accepted_at"] = now
	case domain.ProposalStatusDeclined:
		extra["declined_at"] = now
	}

	applied, err := s.proposalRepo.TransitionStatus(ctx, proposal.ID,
		[]domain.ProposalStatus{proposal.Status}, target, extra)
	if err != nil {
		return nil, fmt.Errorf("failed to set status: %w", err)
	}
	if !applied {
		// Status moved underneath us; reload and report the conflict
		return nil, ErrInvalidStatus
	}

	proposal.Status = target
	s.logger.Info("proposal status set",
		zap.String("proposalID", proposal.ID.String()),
		zap.String("status", string(target)),
	)

	return s.proposalSvc.toDTO(ctx, proposal)
}

// ViewByToken resolves a proposal through its share token for the public
// page. A genuine recipient visit fires the viewed transition exactly once;
// owner previews (a valid session on the same account) never do.
func (s *LifecycleService) ViewByToken(ctx context.Context, token string) (*domain.ProposalDTO, error) {
	proposal, err := s.getByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if err := s.proposalSvc.ApplyExpiryIfDue(ctx, proposal); err != nil {
		return nil, err
	}

	if !s.isOwnerPreview(ctx, proposal) {
		now := time.Now().UTC()
		extra := map[string]interface{}{}
		if proposal.ViewedAt == nil {
			extra["viewed_at"] = now
		}
		applied, err := s.proposalRepo.TransitionStatus(ctx, proposal.ID,
			[]domain.ProposalStatus{domain.ProposalStatusSent},
			domain.ProposalStatusViewed,
			extra)
		if err != nil {
			return nil, fmt.Errorf("failed to record view: %w", err)
		}
		if applied {
			proposal.Status = domain.ProposalStatusViewed
			if proposal.ViewedAt == nil {
				proposal.ViewedAt = &now
			}

			s.logger.Info("proposal viewed",
				zap.String("proposalID", proposal.ID.String()),
			)
			s.notificationSvc.NotifyAccount(ctx, proposal.AccountID,
				domain.NotificationTypeProposalViewed,
				"Proposal viewed",
				fmt.Sprintf("%q was opened by the recipient", proposal.Title),
				proposal.ID,
			)
		}
	}

	return s.publicDTO(ctx, proposal)
}

// Sign records the recipient's signature and accepts the proposal. The
// signature row's unique index is the final authority on sign-once: under a
// race exactly one insert succeeds.
func (s *LifecycleService) Sign(ctx context.Context, token string, req *domain.SignProposalRequest) (*domain.ProposalDTO, error) {
	proposal, err := s.getByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if err := s.proposalSvc.ApplyExpiryIfDue(ctx, proposal); err != nil {
		return nil, err
	}
	if proposal.Status == domain.ProposalStatusExpired {
		return nil, ErrProposalExpired
	}
	if proposal.Signature != nil {
		return nil, ErrAlreadySigned
	}
	// Proposals that do not require a signature have no signing surface;
	// the owner records out-of-band acceptance through SetStatus instead
	if !proposal.RequireSignature {
		return nil, ErrSigningDisabled
	}
	if _, ok := domain.NextStatus(proposal.Status, domain.TriggerSign); !ok {
		return nil, ErrInvalidTransition
	}
	if !req.AcceptedTerms {
		return nil, ErrTermsNotAccepted
	}
	if req.SignatureImage == "" {
		return nil, ErrSignatureRequired
	}

	imagePath, err := s.storeSignatureImage(ctx, req.SignatureImage)
	if err != nil {
		return nil, err
	}

	signature := &domain.ProposalSignature{
		ProposalID:    proposal.ID,
		SignerName:    req.SignerName,
		SignerEmail:   req.SignerEmail,
		ImagePath:     imagePath,
		DocumentHash:  dochash.Compute(proposal),
		AcceptedTerms: req.AcceptedTerms,
		SignedAt:      time.Now().UTC(),
	}

	if err := s.signatureRepo.Create(ctx, signature); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadySigned
		}
		return nil, fmt.Errorf("failed to store signature: %w", err)
	}
	proposal.Signature = signature

	now := time.Now().UTC()
	applied, err := s.proposalRepo.TransitionStatus(ctx, proposal.ID,
		signableStatuses(), domain.ProposalStatusAccepted,
		map[string]interface{}{"accepted_at": now})
	if err != nil {
		return nil, fmt.Errorf("failed to accept proposal: %w", err)
	}
	if applied {
		proposal.Status = domain.ProposalStatusAccepted
		proposal.AcceptedAt = &now
	}

	s.logger.Info("proposal signed",
		zap.String("proposalID", proposal.ID.String()),
		zap.String("signerEmail", req.SignerEmail),
	)
	s.notificationSvc.NotifyAccount(ctx, proposal.AccountID,
		domain.NotificationTypeProposalSigned,
		"Proposal signed",
		fmt.Sprintf("%q was signed by %s", proposal.Title, req.SignerName),
		proposal.ID,
	)

	return s.publicDTO(ctx, proposal)
}

// Decline records the recipient turning the proposal down
func (s *LifecycleService) Decline(ctx context.Context, token string) (*domain.ProposalDTO, error) {
	proposal, err := s.getByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if err := s.proposalSvc.ApplyExpiryIfDue(ctx, proposal); err != nil {
		return nil, err
	}
	if proposal.Status == domain.ProposalStatusExpired {
		return nil, ErrProposalExpired
	}
	if _, ok := domain.NextStatus(proposal.Status, domain.TriggerDecline); !ok {
		return nil, ErrInvalidTransition
	}

	now := time.Now().UTC()
	applied, err := s.proposalRepo.TransitionStatus(ctx, proposal.ID,
		signableStatuses(), domain.ProposalStatusDeclined,
		map[string]interface{}{"declined_at": now})
	if err != nil {
		return nil, fmt.Errorf("failed to decline proposal: %w", err)
	}
	if applied {
		proposal.Status = domain.ProposalStatusDeclined
		proposal.DeclinedAt = &now

		s.logger.Info("proposal declined",
			zap.String("proposalID", proposal.ID.String()),
		)
		s.notificationSvc.NotifyAccount(ctx, proposal.AccountID,
			domain.NotificationTypeProposalDeclined,
			"Proposal declined",
			fmt.Sprintf("%q was declined by the recipient", proposal.Title),
			proposal.ID,
		)
	}

	return s.publicDTO(ctx, proposal)
}

// ExpireDue sweeps all overdue proposals into the expired status. Run by the
// scheduler; reads already expire on demand, this keeps listings and
// notifications timely.
func (s *LifecycleService) ExpireDue(ctx context.Context) (int, error) {
	proposals, err := s.proposalRepo.ListExpired(ctx, time.Now().UTC().Truncate(24*time.Hour))
	if err != nil {
		return 0, fmt.Errorf("failed to list overdue proposals: %w", err)
	}

	var expired int
	for i := range proposals {
		p := &proposals[i]
		next, ok := domain.NextStatus(p.Status, domain.TriggerExpire)
		if !ok {
			continue
		}
		applied, err := s.proposalRepo.TransitionStatus(ctx, p.ID,
			[]domain.ProposalStatus{p.Status}, next, nil)
		if err != nil {
			s.logger.Warn("failed to expire proposal",
				zap.String("proposalID", p.ID.String()),
				zap.Error(err),
			)
			continue
		}
		if applied {
			expired++
		}
	}

	if expired > 0 {
		s.logger.Info("expired overdue proposals", zap.Int("count", expired))
	}
	return expired, nil
}

// NotifyExpiringSoon sends a reminder for every outstanding proposal whose
// expiration date falls within the window. Run once a day by the scheduler.
func (s *LifecycleService) NotifyExpiringSoon(ctx context.Context, window time.Duration) (int, error) {
	now := time.Now().UTC()
	proposals, err := s.proposalRepo.ListExpiringSoon(ctx, now.Truncate(24*time.Hour), now.Add(window))
	if err != nil {
		return 0, fmt.Errorf("failed to list expiring proposals: %w", err)
	}

	for i := range proposals {
		p := &proposals[i]
		s.notificationSvc.NotifyAccount(ctx, p.AccountID,
			domain.NotificationTypeProposalExpiring,
			"Proposal expiring soon",
			fmt.Sprintf("%q expires on %s", p.Title, p.ExpirationDate.Format("2006-01-02")),
			p.ID,
		)
	}

	return len(proposals), nil
}

func (s *LifecycleService) getByToken(ctx context.Context, token string) (*domain.Proposal, error) {
	proposal, err := s.proposalRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, fmt.Errorf("failed to resolve token: %w", err)
	}
	return proposal, nil
}

// isOwnerPreview reports whether the request carries a valid session for the
// account that owns the proposal
func (s *LifecycleService) isOwnerPreview(ctx context.Context, proposal *domain.Proposal) bool {
	userCtx, ok := auth.FromContext(ctx)
	return ok && userCtx.AccountID == proposal.AccountID
}

// publicDTO builds the recipient-facing view, honoring the proposal's
// visibility toggles. Fields a toggle hides are absent, not zeroed copies of
// hidden data.
func (s *LifecycleService) publicDTO(ctx context.Context, proposal *domain.Proposal) (*domain.ProposalDTO, error) {
	dto, err := s.proposalSvc.toDTO(ctx, proposal)
	if err != nil {
		return nil, err
	}

	if !proposal.ShowPricing {
		dto.LineItems = []domain.LineItemDTO{}
		dto.Totals = nil
		dto.DiscountValue = 0
		dto.TaxRate = 0
	}
	if !proposal.ShowTerms {
		dto.Terms = ""
	}
	if !proposal.ShowSowNumber {
		dto.SowNumber = nil
		dto.DisplayNumber = ""
	}

	return dto, nil
}

// storeSignatureImage decodes a base64 data URL and persists the image
func (s *LifecycleService) storeSignatureImage(ctx context.Context, dataURL string) (string, error) {
	payload := dataURL
	ext := ".png"
	if strings.HasPrefix(dataURL, "data:") {
		parts := strings.SplitN(dataURL, ",", 2)
		if len(parts) != 2 {
			return "", ErrSignatureRequired
		}
		if strings.Contains(parts[0], "image/jpeg") {
			ext = ".jpg"
		}
		payload = parts[1]
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", ErrSignatureRequired
	}

	contentType := "image/png"
	if ext == ".jpg" {
		contentType = "image/jpeg"
	}

	path, _, err := s.store.Upload(ctx, "signature"+ext, contentType, bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("failed to store signature image: %w", err)
	}
	return path, nil
}

func sendableStatuses() []domain.ProposalStatus {
	return []domain.ProposalStatus{
		domain.ProposalStatusDraft,
		domain.ProposalStatusSent,
		domain.ProposalStatusViewed,
		domain.ProposalStatusOnHold,
	}
}

func signableStatuses() []domain.ProposalStatus {
	return []domain.ProposalStatus{
		domain.ProposalStatusSent,
		domain.ProposalStatusViewed,
		domain.ProposalStatusOnHold,
	}
}
