package service

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/craftwise/proposal-api/internal/auth"
	"github.com/craftwise/proposal-api/internal/domain"
	"github.com/craftwise/proposal-api/internal/repository"
	"github.com/craftwise/proposal-api/internal/storage"
	"github.com/craftwise/proposal-api/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type lifecycleFixture struct {
	db          *gorm.DB
	proposalSvc *ProposalService
	lifecycle   *LifecycleService
	accountID   uuid.UUID
	ownerCtx    context.Context
}

func setupLifecycle(t *testing.T) *lifecycleFixture {
	t.Helper()

	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()

	proposalRepo := repository.NewProposalRepository(db)
	contactRepo := repository.NewContactRepository(db)
	signatureRepo := repository.NewSignatureRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	userRepo := repository.NewUserRepository(db)
	prefixRepo := repository.NewSowPrefixRepository(db)
	sequenceRepo := repository.NewSowSequenceRepository(db)

	numberingSvc := NewNumberingService(prefixRepo, sequenceRepo, proposalRepo, logger)
	notificationSvc := NewNotificationService(notificationRepo, userRepo, logger)
	proposalSvc := NewProposalService(proposalRepo, contactRepo, numberingSvc, logger)

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	lifecycle := NewLifecycleService(proposalRepo, signatureRepo, proposalSvc, notificationSvc, store, logger)

	accountID := uuid.New()
	userCtx := &auth.UserContext{
		UserID:      uuid.New(),
		AccountID:   accountID,
		DisplayName: "Owner",
		Email:       "owner@example.com",
		Roles:       []string{auth.RoleMember},
	}

	return &lifecycleFixture{
		db:          db,
		proposalSvc: proposalSvc,
		lifecycle:   lifecycle,
		accountID:   accountID,
		ownerCtx:    auth.WithUserContext(context.Background(), userCtx),
	}
}

func (f *lifecycleFixture) reload(t *testing.T, id uuid.UUID) *domain.Proposal {
	t.Helper()
	var p domain.Proposal
	require.NoError(t, f.db.First(&p, "id = ?", id).Error)
	return &p
}

func signRequest() *domain.SignProposalRequest {
	image := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("signature-bytes"))
	return &domain.SignProposalRequest{
		SignerName:     "Casey Client",
		SignerEmail:    "casey@example.com",
		SignatureImage: image,
		AcceptedTerms:  true,
	}
}

func TestLifecycleService_Send(t *testing.T) {
	f := setupLifecycle(t)
	proposal := testutil.CreateTestProposal(t, f.db, f.accountID, "Website redesign")
	testutil.CreateTestUser(t, f.db, f.accountID, "teammate@example.com")

	dto, err := f.lifecycle.Send(f.ownerCtx, proposal.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.ProposalStatusSent, dto.Status)
	require.NotNil(t, dto.SentAt)

	var notifications []domain.Notification
	require.NoError(t, f.db.Find(&notifications).Error)
	require.Len(t, notifications, 1)
	assert.Equal(t, string(domain.NotificationTypeProposalSent), notifications[0].Type)
}

func TestLifecycleService_Send_ResendKeepsMilestones(t *testing.T) {
	f := setupLifecycle(t)
	proposal := testutil.CreateTestProposal(t, f.db, f.accountID, "Retainer")

	sentAt := time.Now().UTC().Add(-2 * time.Hour)
	viewedAt := time.Now().UTC().Add(-time.Hour)
	require.NoError(t, f.db.Model(proposal).Updates(map[string]interface{}{
		"status":    domain.ProposalStatusViewed,
		"sent_at":   sentAt,
		"viewed_at": viewedAt,
	}).Error)

	dto, err := f.lifecycle.Send(f.ownerCtx, proposal.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProposalStatusSent, dto.Status)

	// Milestone timestamps record first occurrence; only the status moves back
	stored := f.reload(t, proposal.ID)
	assert.Equal(t, domain.ProposalStatusSent, stored.Status)
	require.NotNil(t, stored.SentAt)
	assert.WithinDuration(t, sentAt, *stored.SentAt, time.Second)
	require.NotNil(t, stored.ViewedAt)
	assert.WithinDuration(t, viewedAt, *stored.ViewedAt, time.Second)
}

func TestLifecycleService_Send_Rejections(t *testing.T) {
	f := setupLifecycle(t)

	t.Run("template", func(t *testing.T) {
		proposal := testutil.CreateTestProposal(t, f.db, f.accountID, "Template")
		require.NoError(t, f.db.Model(proposal).Update("is_template", true).Error)

		_, err := f.lifecycle.Send(f.ownerCtx, proposal.ID)
		assert.ErrorIs(t, err, ErrTemplateLifecycle)
	})

	t.Run("terminal status", func(t *testing.T) {
		proposal := testutil.CreateTestProposal(t, f.db, f.accountID, "Done deal")
		require.NoError(t, f.db.Model(proposal).Update("status", domain.ProposalStatusAccepted).Error)

		_, err := f.lifecycle.Send(f.ownerCtx, proposal.ID)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("other account", func(t *testing.T) {
		proposal := testutil.CreateTestProposal(t, f.db, uuid.New(), "Not yours")

		_, err := f.lifecycle.Send(f.ownerCtx, proposal.ID)
		assert.ErrorIs(t, err, ErrProposalNotFound)
	})

	t.Run("no user context", func(t *testing.T) {
		proposal := testutil.CreateTestProposal(t, f.db, f.accountID, "Anonymous")

		_, err := f.lifecycle.Send(context.Background(), proposal.ID)
		assert.ErrorIs(t, err, ErrUserContextRequired)
	})
}

func TestLifecycleService_SetStatus(t *testing.T) {
	f := setupLifecycle(t)

	t.Run("on hold", func(t *testing.T) {
		proposal := testutil.CreateTestProposal(t, f.db, f.accountID, "Pausable")
		require.NoError(t, f.db.Model(proposal).Update("status", domain.ProposalStatusSent).Error)

		dto, err := f.lifecycle.SetStatus(f.ownerCtx, proposal.ID, domain.ProposalStatusOnHold)
		require.NoError(t, err)
		assert.Equal(t, domain.ProposalStatusOnHold, dto.Status)
	})

	t.Run("manual accept stamps timestamp", func(t *testing.T) {
		proposal := testutil.CreateTestProposal(t, f.db, f.accountID, "Verbal yes")
		require.NoError(t, f.db.Model(proposal).Update("status", domain.ProposalStatusSent).Error)

		dto, err := f.lifecycle.SetStatus(f.ownerCtx, proposal.ID, domain.ProposalStatusAccepted)
		require.NoError(t, err)
		assert.Equal(t, domain.ProposalStatusAccepted, dto.Status)

		stored := f.reload(t, proposal.ID)
		assert.NotNil(t, stored.AcceptedAt)
	})

	t.Run("viewed is system only", func(t *testing.T) {
		proposal := testutil.CreateTestProposal(t, f.db, f.accountID, "No faking views")

		_, err := f.lifecycle.SetStatus(f.ownerCtx, proposal.ID, domain.ProposalStatusViewed)
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("terminal status locked", func(t *testing.T) {
		proposal := testutil.CreateTestProposal(t, f.db, f.accountID, "Declined already")
		require.NoError(t, f.db.Model(proposal).Update("status", domain.ProposalStatusDeclined).Error)

		_, err := f.lifecycle.SetStatus(f.ownerCtx, proposal.ID, domain.ProposalStatusDraft)
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		proposal := testutil.CreateTestProposal(t, f.db, f.accountID, "Still a draft")

		dto, err := f.lifecycle.SetStatus(f.ownerCtx, proposal.ID, domain.ProposalStatusDraft)
		require.NoError(t, err)
		assert.Equal(t, domain.ProposalStatusDraft, dto.Status)
	})
}

func TestLifecycleService_ViewByToken(t *testing.T) {
	f := setupLifecycle(t)
	proposal := testutil.CreateTestProposal(t, f.db, f.accountID, "Viewable")
	require.NoError(t, f.db.Model(proposal).Update("status", domain.ProposalStatusSent).Error)

	recipientCtx := context.Background()

	dto, err := f.lifecycle.ViewByToken(recipientCtx, proposal.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.ProposalStatusViewed, dto.Status)
	require.NotNil(t, dto.ViewedAt)
	firstView := *dto.ViewedAt

	// A second visit keeps the original view timestamp
	dto, err = f.lifecycle.ViewByToken(recipientCtx, proposal.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.ProposalStatusViewed, dto.Status)

	stored := f.reload(t, proposal.ID)
	require.NotNil(t, stored.ViewedAt)
	assert.WithinDuration(t, firstView, *stored.ViewedAt, time.Second)
}

func TestLifecycleService_ViewByToken_OwnerPreviewDoesNotTransition(t *testing.T) {
	f := setupLifecycle(t)
	proposal := testutil.CreateTestProposal(t, f.db, f.accountID, "Preview me")
	require.NoError(t, f.db.Model(proposal).Update("status", domain.ProposalStatusSent).Error)

	dto, err := f.lifecycle.ViewByToken(f.ownerCtx, proposal.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.ProposalStatusSent, dto.Status)

	stored := f.reload(t, proposal.ID)
	assert.Equal(t, domain.ProposalStatusSent, stored.Status)
	assert.Nil(t, stored.ViewedAt)
}

func TestLifecycleService_ViewByToken_VisibilityToggles(t *testing.T) {
	f := setupLifecycle(t)
	proposal := testutil.CreateTestProposal(t, f.db, f.accountID, "Hidden bits")
	require.NoError(t, f.db.Model(proposal).Updates(map[string]interface{}{
		"status":          domain.ProposalStatusSent,
		"terms":           "Net 30",
		"show_pricing":    false,
		"show_terms":      false,
		"show_sow_number": false,
	}).Error)

	dto, err := f.lifecycle.ViewByToken(context.Background(), proposal.Token)
	require.NoError(t, err)

	assert.Empty(t, dto.LineItems)
	assert.Nil(t, dto.Totals)
	assert.Empty(t, dto.Terms)
	assert.Nil(t, dto.SowNumber)
	assert.Empty(t, dto.DisplayNumber)
}

func TestLifecycleService_ViewByToken_ExpiresOverdueProposal(t *testing.T) {
	f := setupLifecycle(t)
	proposal := testutil.CreateTestProposal(t, f.db, f.accountID, "Too late")
	expired := time.Now().UTC().Add(-72 * time.Hour)
	require.NoError(t, f.db.Model(proposal).Updates(map[string]interface{}{
		"status":          domain.ProposalStatusSent,
		"expiration_date": expired,
	}).Error)

	dto, err := f.lifecycle.ViewByToken(context.Background(), proposal.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.ProposalStatusExpired, dto.Status)

	stored := f.reload(t, proposal.ID)
	assert.Equal(t, domain.ProposalStatusExpired, stored.Status)
}

func TestLifecycleService_ViewByToken_UnknownToken(t *testing.T) {
	f := setupLifecycle(t)

	_, err := f.lifecycle.ViewByToken(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrProposalNotFound)
}

func TestLifecycleService_Sign(t *testing.T) {
	f := setupLifecycle(t)
	proposal := testutil.CreateTestProposal(t, f.db, f.accountID, "Sign here")
	require.NoError(t, f.db.Model(proposal).Update("status", domain.ProposalStatusSent).Error)

	dto, err := f.lifecycle.Sign(context.Background(), proposal.Token, signRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.ProposalStatusAccepted, dto.Status)
	require.NotNil(t, dto.Signature)
	assert.Equal(t, "Casey Client", dto.Signature.SignerName)
	assert.Equal(t, domain.VerificationVerified, dto.Verification)

	var signature domain.ProposalSignature
	require.NoError(t, f.db.First(&signature, "proposal_id = ?", proposal.ID).Error)
	assert.NotEmpty(t, signature.DocumentHash)
	assert.NotEmpty(t, signature.ImagePath)

	stored := f.reload(t, proposal.ID)
	assert.Equal(t, domain.ProposalStatusAccepted, stored.Status)
	assert.NotNil(t, stored.AcceptedAt)
}

func TestLifecycleService_Sign_Rejections(t *testing.T) {
	f := setupLifecycle(t)

	t.Run("already signed", func(t *testing.T) {
		proposal := testutil.CreateTestProposal(t, f.db, f.accountID, "One signature only")
		require.NoError(t, f.db.Model(proposal).Update("status", domain.ProposalStatusSent).Error)

		_, err := f.lifecycle.Sign(context.Background(), proposal.Token, signRequest())
		require.NoError(t, err)

		_, err = f.lifecycle.Sign(context.Background(), proposal.Token, signRequest())
		assert.ErrorIs(t, err, ErrAlreadySigned)
	})

	t.Run("terms not accepted", func(t *testing.T) {
		proposal := testutil.CreateTestProposal(t, f.db, f.accountID, "Read the terms")
		require.NoError(t, f.db.Model(proposal).Update("status", domain.ProposalStatusSent).Error)

		req := signRequest()
		req.AcceptedTerms = false
		_, err := f.lifecycle.Sign(context.Background(), proposal.Token, req)
		assert.ErrorIs(t, err, ErrTermsNotAccepted)
	})

	t.Run("signature image required", func(t *testing.T) {
		proposal := testutil.CreateTestProposal(t, f.db, f.accountID, "Draw it")
		require.NoError(t, f.db.Model(proposal).Update("status", domain.ProposalStatusSent).Error)

		req := signRequest()
		req.SignatureImage = ""
		_, err := f.lifecycle.Sign(context.Background(), proposal.Token, req)
		assert.ErrorIs(t, err, ErrSignatureRequired)
	})

	t.Run("draft cannot be signed", func(t *testing.T) {
		proposal := testutil.CreateTestProposal(t, f.db, f.accountID, "Not sent yet")

		_, err := f.lifecycle.Sign(context.Background(), proposal.Token, signRequest())
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("expired", func(t *testing.T) {
		proposal := testutil.CreateTestProposal(t, f.db, f.accountID, "Window closed")
		require.NoError(t, f.db.Model(proposal).Updates(map[string]interface{}{
			"status":          domain.ProposalStatusSent,
			"expiration_date": time.Now().UTC().Add(-72 * time.Hour),
		}).Error)

		_, err := f.lifecycle.Sign(context.Background(), proposal.Token, signRequest())
		assert.ErrorIs(t, err, ErrProposalExpired)
	})
}

func TestLifecycleService_Sign_NotRequiredRejected(t *testing.T) {
	f := setupLifecycle(t)
	proposal := testutil.CreateTestProposal(t, f.db, f.accountID, "Handshake deal")
	require.NoError(t, f.db.Model(proposal).Updates(map[string]interface{}{
		"status":            domain.ProposalStatusSent,
		"require_signature": false,
	}).Error)

	_, err := f.lifecycle.Sign(context.Background(), proposal.Token, signRequest())
	assert.ErrorIs(t, err, ErrSigningDisabled)

	stored := f.reload(t, proposal.ID)
	assert.Equal(t, domain.ProposalStatusSent, stored.Status)

	var count int64
	require.NoError(t, f.db.Model(&domain.ProposalSignature{}).
		Where("proposal_id = ?", proposal.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestLifecycleService_Decline(t *testing.T) {
	f := setupLifecycle(t)
	proposal := testutil.CreateTestProposal(t, f.db, f.accountID, "No thanks")
	require.NoError(t, f.db.Model(proposal).Update("status", domain.ProposalStatusViewed).Error)

	dto, err := f.lifecycle.Decline(context.Background(), proposal.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.ProposalStatusDeclined, dto.Status)

	stored := f.reload(t, proposal.ID)
	assert.Equal(t, domain.ProposalStatusDeclined, stored.Status)
	assert.NotNil(t, stored.DeclinedAt)
}

func TestLifecycleService_Decline_DraftRejected(t *testing.T) {
	f := setupLifecycle(t)
	proposal := testutil.CreateTestProposal(t, f.db, f.accountID, "Unsent")

	_, err := f.lifecycle.Decline(context.Background(), proposal.Token)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestLifecycleService_ExpireDue(t *testing.T) {
	f := setupLifecycle(t)

	overdue := testutil.CreateTestProposal(t, f.db, f.accountID, "Overdue")
	require.NoError(t, f.db.Model(overdue).Updates(map[string]interface{}{
		"status":          domain.ProposalStatusSent,
		"expiration_date": time.Now().UTC().Add(-72 * time.Hour),
	}).Error)

	current := testutil.CreateTestProposal(t, f.db, f.accountID, "Current")
	require.NoError(t, f.db.Model(current).Updates(map[string]interface{}{
		"status":          domain.ProposalStatusSent,
		"expiration_date": time.Now().UTC().Add(72 * time.Hour),
	}).Error)

	settled := testutil.CreateTestProposal(t, f.db, f.accountID, "Settled")
	require.NoError(t, f.db.Model(settled).Updates(map[string]interface{}{
		"status":          domain.ProposalStatusAccepted,
		"expiration_date": time.Now().UTC().Add(-72 * time.Hour),
	}).Error)

	count, err := f.lifecycle.ExpireDue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.Equal(t, domain.ProposalStatusExpired, f.reload(t, overdue.ID).Status)
	assert.Equal(t, domain.ProposalStatusSent, f.reload(t, current.ID).Status)
	assert.Equal(t, domain.ProposalStatusAccepted, f.reload(t, settled.ID).Status)
}
