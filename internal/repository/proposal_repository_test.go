package repository

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

func TestProposalRepository_TransitionStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewProposalRepository(db)
	ctx := context.Background()
	accountID := uuid.New()

	proposal := testutil.CreateTestProposal(t, db, accountID, "Lifecycle")

	now := time.Now().UTC()
	applied, err := repo.TransitionStatus(ctx, proposal.ID,
		[]domain.ProposalStatus{domain.ProposalStatusDraft},
		domain.ProposalStatusSent,
		map[string]interface{}{"sent_at": now},
	)
	require.NoError(t, err)
	assert.True(t, applied)

	var reloaded domain.Proposal
	require.NoError(t, db.First(&reloaded, "id = ?", proposal.ID).Error)
	assert.Equal(t, domain.ProposalStatusSent, reloaded.Status)
	require.NotNil(t, reloaded.SentAt)

	// The guarded update is a no-op when the current status left the from set
	applied, err = repo.TransitionStatus(ctx, proposal.ID,
		[]domain.ProposalStatus{domain.ProposalStatusDraft},
		domain.ProposalStatusOnHold, nil,
	)
	require.NoError(t, err)
	assert.False(t, applied)

	require.NoError(t, db.First(&reloaded, "id = ?", proposal.ID).Error)
	assert.Equal(t, domain.ProposalStatusSent, reloaded.Status)
}

func TestProposalRepository_GetByToken(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewProposalRepository(db)
	ctx := context.Background()

	proposal := testutil.CreateTestProposal(t, db, uuid.New(), "Shared")

	found, err := repo.GetByToken(ctx, proposal.Token)
	require.NoError(t, err)
	assert.Equal(t, proposal.ID, found.ID)

	_, err = repo.GetByToken(ctx, "no-such-token")
	assert.Error(t, err)
}

func TestProposalRepository_ListExpired(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewProposalRepository(db)
	ctx := context.Background()
	accountID := uuid.New()
	today := time.Now().UTC().Truncate(24 * time.Hour)

	overdue := testutil.CreateTestProposal(t, db, accountID, "Overdue")
	require.NoError(t, db.Model(overdue).Updates(map[string]interface{}{
		"status":          domain.ProposalStatusSent,
		"expiration_date": today.AddDate(0, 0, -2),
	}).Error)

	dueToday := testutil.CreateTestProposal(t, db, accountID, "Due today")
	require.NoError(t, db.Model(dueToday).Updates(map[string]interface{}{
		"status":          domain.ProposalStatusSent,
		"expiration_date": today,
	}).Error)

	settled := testutil.CreateTestProposal(t, db, accountID, "Settled")
	require.NoError(t, db.Model(settled).Updates(map[string]interface{}{
		"status":          domain.ProposalStatusAccepted,
		"expiration_date": today.AddDate(0, 0, -2),
	}).Error)

	expired, err := repo.ListExpired(ctx, today)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, overdue.ID, expired[0].ID)
}

func TestProposalRepository_ListExpiringSoon(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewProposalRepository(db)
	ctx := context.Background()
	accountID := uuid.New()
	today := time.Now().UTC().Truncate(24 * time.Hour)

	soon := testutil.CreateTestProposal(t, db, accountID, "Expiring soon")
	require.NoError(t, db.Model(soon).Updates(map[string]interface{}{
		"status":          domain.ProposalStatusSent,
		"expiration_date": today.AddDate(0, 0, 2),
	}).Error)

	distant := testutil.CreateTestProposal(t, db, accountID, "Distant")
	require.NoError(t, db.Model(distant).Updates(map[string]interface{}{
		"status":          domain.ProposalStatusSent,
		"expiration_date": today.AddDate(0, 0, 30),
	}).Error)

	matches, err := repo.ListExpiringSoon(ctx, today, today.AddDate(0, 0, 3))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, soon.ID, matches[0].ID)
}
