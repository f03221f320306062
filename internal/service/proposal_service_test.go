package service

import (
	"context"
	"testing"
	"time"

	"github.com/craftwise/proposal-api/internal/domain"
	"github.com/craftwise/proposal-api/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProposalService_Create_Defaults(t *testing.T) {
	f := setupLifecycle(t)

	dto, err := f.proposalSvc.Create(f.ownerCtx, &domain.CreateProposalRequest{
		Title: "Website redesign",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.ProposalStatusDraft, dto.Status)
	assert.False(t, dto.IsTemplate)
	assert.True(t, dto.ShowPricing)
	assert.True(t, dto.ShowTerms)
	assert.True(t, dto.ShowSowNumber)
	assert.True(t, dto.RequireSignature)
	assert.Equal(t, domain.PricingTypeFixed, dto.DefaultPricingType)
	assert.Equal(t, domain.DiscountTypeNone, dto.DiscountType)
	assert.False(t, dto.ProposalDate.IsZero())
	assert.Len(t, dto.Token, 64)

	require.NotNil(t, dto.SowNumber)
	assert.Equal(t, 1, *dto.SowNumber)
	assert.Equal(t, "1", dto.DisplayNumber)
}

func TestProposalService_Create_TemplateGetsNoNumber(t *testing.T) {
	f := setupLifecycle(t)

	dto, err := f.proposalSvc.Create(f.ownerCtx, &domain.CreateProposalRequest{
		Title:      "Standard retainer",
		IsTemplate: true,
	})
	require.NoError(t, err)

	assert.True(t, dto.IsTemplate)
	assert.Nil(t, dto.SowNumber)
	assert.Empty(t, dto.DisplayNumber)

	// The counter is untouched; the next real proposal still gets 1
	real, err := f.proposalSvc.Create(f.ownerCtx, &domain.CreateProposalRequest{Title: "Real"})
	require.NoError(t, err)
	require.NotNil(t, real.SowNumber)
	assert.Equal(t, 1, *real.SowNumber)
}

func TestProposalService_Create_ContactSnapshot(t *testing.T) {
	f := setupLifecycle(t)

	contact := &domain.Contact{
		AccountID: f.accountID,
		FirstName: "Casey",
		LastName:  "Client",
		Email:     "casey@example.com",
		Company:   "Client Co",
	}
	require.NoError(t, f.db.Create(contact).Error)

	dto, err := f.proposalSvc.Create(f.ownerCtx, &domain.CreateProposalRequest{
		Title:          "With contact",
		ContactID:      &contact.ID,
		ClientLastName: "Override",
	})
	require.NoError(t, err)

	// Blank fields fill from the contact; explicit values win
	assert.Equal(t, "Casey", dto.ClientFirstName)
	assert.Equal(t, "Override", dto.ClientLastName)
	assert.Equal(t, "casey@example.com", dto.ClientEmail)
	assert.Equal(t, "Client Co", dto.ClientCompany)

	// The snapshot does not follow later contact edits
	require.NoError(t, f.db.Model(contact).Update("email", "new@example.com").Error)
	reloaded, err := f.proposalSvc.GetByID(f.ownerCtx, dto.ID)
	require.NoError(t, err)
	assert.Equal(t, "casey@example.com", reloaded.ClientEmail)
}

func TestProposalService_Create_UnknownContact(t *testing.T) {
	f := setupLifecycle(t)

	missing := uuid.New()
	_, err := f.proposalSvc.Create(f.ownerCtx, &domain.CreateProposalRequest{
		Title:     "Bad contact",
		ContactID: &missing,
	})
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestProposalService_Create_RequiresUserContext(t *testing.T) {
	f := setupLifecycle(t)

	_, err := f.proposalSvc.Create(context.Background(), &domain.CreateProposalRequest{Title: "X"})
	assert.ErrorIs(t, err, ErrUserContextRequired)
}

func TestProposalService_Update_ReplacesChildren(t *testing.T) {
	f := setupLifecycle(t)

	dto, err := f.proposalSvc.Create(f.ownerCtx, &domain.CreateProposalRequest{
		Title: "Original",
		LineItems: []domain.LineItemRequest{
			{Description: "Design", Quantity: 1, UnitPrice: 1000},
			{Description: "Build", Quantity: 1, UnitPrice: 4000},
		},
	})
	require.NoError(t, err)

	updated, err := f.proposalSvc.Update(f.ownerCtx, dto.ID, &domain.UpdateProposalRequest{
		Title: "Revised",
		Sections: []domain.CustomSectionRequest{
			{Title: "About us", Body: "We build things."},
		},
		LineItems: []domain.LineItemRequest{
			{Description: "Everything", Quantity: 1, UnitPrice: 6000},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Revised", updated.Title)
	require.Len(t, updated.LineItems, 1)
	assert.Equal(t, "Everything", updated.LineItems[0].Description)
	assert.Equal(t, 0, updated.LineItems[0].Position)
	require.Len(t, updated.Sections, 1)
	assert.Equal(t, "About us", updated.Sections[0].Title)
}

func TestProposalService_Update_SettledProposalsRejectEdits(t *testing.T) {
	f := setupLifecycle(t)

	for _, status := range []domain.ProposalStatus{
		domain.ProposalStatusAccepted,
		domain.ProposalStatusDeclined,
		domain.ProposalStatusExpired,
	} {
		proposal := testutil.CreateTestProposal(t, f.db, f.accountID, "Settled")
		require.NoError(t, f.db.Model(proposal).Update("status", status).Error)

		_, err := f.proposalSvc.Update(f.ownerCtx, proposal.ID, &domain.UpdateProposalRequest{Title: "Nope"})
		assert.ErrorIs(t, err, ErrEditNotAllowed, "status %s", status)
	}
}

func TestProposalService_Clone(t *testing.T) {
	f := setupLifecycle(t)

	source, err := f.proposalSvc.Create(f.ownerCtx, &domain.CreateProposalRequest{
		Title: "Signed work",
		Terms: "Net 30",
		LineItems: []domain.LineItemRequest{
			{Description: "Design", Quantity: 1, UnitPrice: 1000},
		},
		Sections: []domain.CustomSectionRequest{
			{Title: "Scope", Body: "Everything"},
		},
	})
	require.NoError(t, err)

	acceptedAt := time.Now().UTC()
	require.NoError(t, f.db.Model(&domain.Proposal{}).Where("id = ?", source.ID).Updates(map[string]interface{}{
		"status":      domain.ProposalStatusAccepted,
		"accepted_at": acceptedAt,
	}).Error)

	clone, err := f.proposalSvc.Clone(f.ownerCtx, source.ID, &domain.CloneProposalRequest{})
	require.NoError(t, err)

	assert.Equal(t, "Copy of Signed work", clone.Title)
	assert.Equal(t, domain.ProposalStatusDraft, clone.Status)
	assert.Nil(t, clone.AcceptedAt)
	assert.NotEqual(t, source.Token, clone.Token)
	require.NotNil(t, clone.SowNumber)
	assert.NotEqual(t, *source.SowNumber, *clone.SowNumber)
	assert.Equal(t, "Net 30", clone.Terms)
	require.Len(t, clone.LineItems, 1)
	require.Len(t, clone.Sections, 1)
}

func TestProposalService_Clone_AsTemplate(t *testing.T) {
	f := setupLifecycle(t)

	source, err := f.proposalSvc.Create(f.ownerCtx, &domain.CreateProposalRequest{Title: "Base"})
	require.NoError(t, err)

	clone, err := f.proposalSvc.Clone(f.ownerCtx, source.ID, &domain.CloneProposalRequest{
		Title:      "Reusable base",
		AsTemplate: true,
	})
	require.NoError(t, err)

	assert.True(t, clone.IsTemplate)
	assert.Equal(t, "Reusable base", clone.Title)
	assert.Nil(t, clone.SowNumber)
}

func TestProposalService_GetByID_AppliesExpiry(t *testing.T) {
	f := setupLifecycle(t)

	proposal := testutil.CreateTestProposal(t, f.db, f.accountID, "Stale")
	expired := time.Now().UTC().AddDate(0, 0, -3)
	require.NoError(t, f.db.Model(proposal).Updates(map[string]interface{}{
		"status":          domain.ProposalStatusSent,
		"expiration_date": expired,
	}).Error)

	dto, err := f.proposalSvc.GetByID(f.ownerCtx, proposal.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProposalStatusExpired, dto.Status)
}

func TestProposalService_GetByID_ValidThroughExpirationDay(t *testing.T) {
	f := setupLifecycle(t)

	proposal := testutil.CreateTestProposal(t, f.db, f.accountID, "Due today")
	today := time.Now().UTC().Truncate(24 * time.Hour)
	require.NoError(t, f.db.Model(proposal).Updates(map[string]interface{}{
		"status":          domain.ProposalStatusSent,
		"expiration_date": today,
	}).Error)

	dto, err := f.proposalSvc.GetByID(f.ownerCtx, proposal.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProposalStatusSent, dto.Status)
}

func TestProposalService_StatusCounts(t *testing.T) {
	f := setupLifecycle(t)

	testutil.CreateTestProposal(t, f.db, f.accountID, "Draft one")
	testutil.CreateTestProposal(t, f.db, f.accountID, "Draft two")
	sent := testutil.CreateTestProposal(t, f.db, f.accountID, "Sent")
	require.NoError(t, f.db.Model(sent).Update("status", domain.ProposalStatusSent).Error)

	counts, err := f.proposalSvc.StatusCounts(f.ownerCtx)
	require.NoError(t, err)

	assert.Len(t, counts, 7)
	assert.Equal(t, int64(2), counts[domain.ProposalStatusDraft])
	assert.Equal(t, int64(1), counts[domain.ProposalStatusSent])
	assert.Equal(t, int64(0), counts[domain.ProposalStatusAccepted])
}

func TestProposalService_TotalsInDTO(t *testing.T) {
	f := setupLifecycle(t)

	dto, err := f.proposalSvc.Create(f.ownerCtx, &domain.CreateProposalRequest{
		Title:         "Mixed billing",
		DiscountType:  string(domain.DiscountTypePercentage),
		DiscountValue: 10,
		TaxRate:       25,
		LineItems: []domain.LineItemRequest{
			{Description: "Setup", Quantity: 2, UnitPrice: 100, PricingType: "fixed"},
			{Description: "Hosting", Quantity: 1, UnitPrice: 50, PricingType: "monthly"},
		},
	})
	require.NoError(t, err)

	require.NotNil(t, dto.Totals)
	assert.InDelta(t, 200, dto.Totals.OneTimeSubtotal, 1e-9)
	assert.InDelta(t, 50, dto.Totals.MonthlySubtotal, 1e-9)
	assert.InDelta(t, 20, dto.Totals.DiscountOneTime, 1e-9)
	assert.InDelta(t, 5, dto.Totals.DiscountMonthly, 1e-9)
	assert.InDelta(t, 45, dto.Totals.TaxOneTime, 1e-9)
	assert.InDelta(t, 225, dto.Totals.GrandTotalOneTime, 1e-9)
	assert.InDelta(t, 56.25, dto.Totals.GrandTotalMonthly, 1e-9)
	assert.True(t, dto.Totals.Mixed)
}

func TestProposalService_Delete(t *testing.T) {
	f := setupLifecycle(t)

	dto, err := f.proposalSvc.Create(f.ownerCtx, &domain.CreateProposalRequest{Title: "Short lived"})
	require.NoError(t, err)

	require.NoError(t, f.proposalSvc.Delete(f.ownerCtx, dto.ID))

	_, err = f.proposalSvc.GetByID(f.ownerCtx, dto.ID)
	assert.ErrorIs(t, err, ErrProposalNotFound)
}

func TestProposalService_AccountIsolation(t *testing.T) {
	f := setupLifecycle(t)

	foreign := testutil.CreateTestProposal(t, f.db, uuid.New(), "Someone else's")

	_, err := f.proposalSvc.GetByID(f.ownerCtx, foreign.ID)
	assert.ErrorIs(t, err, ErrProposalNotFound)

	err = f.proposalSvc.Delete(f.ownerCtx, foreign.ID)
	assert.ErrorIs(t, err, ErrProposalNotFound)
}
