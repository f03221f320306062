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
	"gorm.io/gorm"
)

func TestSignatureRepository_OneSignaturePerProposal(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewSignatureRepository(db)
	ctx := context.Background()

	proposal := testutil.CreateTestProposal(t, db, uuid.New(), "To sign")

	first := &domain.ProposalSignature{
		ProposalID:    proposal.ID,
		SignerName:    "Casey Client",
		SignerEmail:   "casey@example.com",
		DocumentHash:  "abc123",
		AcceptedTerms: true,
		SignedAt:      time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, first))

	// The unique index rejects a second signature for the same proposal
	second := &domain.ProposalSignature{
		ProposalID:    proposal.ID,
		SignerName:    "Other Person",
		SignerEmail:   "other@example.com",
		DocumentHash:  "def456",
		AcceptedTerms: true,
		SignedAt:      time.Now().UTC(),
	}
	err := repo.Create(ctx, second)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	stored, err := repo.GetByProposalID(ctx, proposal.ID)
	require.NoError(t, err)
	assert.Equal(t, "Casey Client", stored.SignerName)
}
