package service

import (
	"context"
	"testing"

	"github.com/craftwise/proposal-api/internal/repository"
	"github.com/craftwise/proposal-api/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type numberingFixture struct {
	db        *gorm.DB
	svc       *NumberingService
	accountID uuid.UUID
}

func setupNumbering(t *testing.T) *numberingFixture {
	t.Helper()

	db := testutil.SetupTestDB(t)
	prefixRepo := repository.NewSowPrefixRepository(db)
	sequenceRepo := repository.NewSowSequenceRepository(db)
	proposalRepo := repository.NewProposalRepository(db)

	return &numberingFixture{
		db:        db,
		svc:       NewNumberingService(prefixRepo, sequenceRepo, proposalRepo, zap.NewNop()),
		accountID: uuid.New(),
	}
}

func TestNumberingService_GetPrefix_DefaultsEmpty(t *testing.T) {
	f := setupNumbering(t)

	dto, err := f.svc.GetPrefix(context.Background(), f.accountID)
	require.NoError(t, err)
	assert.Empty(t, dto.Prefix)
	assert.False(t, dto.Locked)
}

func TestNumberingService_SetPrefix(t *testing.T) {
	f := setupNumbering(t)
	ctx := context.Background()

	dto, err := f.svc.SetPrefix(ctx, f.accountID, "2024")
	require.NoError(t, err)
	assert.Equal(t, "2024", dto.Prefix)
	assert.False(t, dto.Locked)

	// Unlocked prefixes can be changed freely
	dto, err = f.svc.SetPrefix(ctx, f.accountID, "9999")
	require.NoError(t, err)
	assert.Equal(t, "9999", dto.Prefix)
}

func TestNumberingService_SetPrefix_Validation(t *testing.T) {
	f := setupNumbering(t)
	ctx := context.Background()

	// Only ASCII digits qualify, at most ten of them
	for _, candidate := range []string{"", "   ", "abc", "SOW", "20-24", "12 34", "١٢٣", "12345678901"} {
		_, err := f.svc.SetPrefix(ctx, f.accountID, candidate)
		assert.ErrorIs(t, err, ErrInvalidPrefix, "candidate %q", candidate)
	}

	// Surrounding whitespace is trimmed, not rejected
	dto, err := f.svc.SetPrefix(ctx, f.accountID, "  12  ")
	require.NoError(t, err)
	assert.Equal(t, "12", dto.Prefix)
}

func TestNumberingService_AssignSowNumber(t *testing.T) {
	f := setupNumbering(t)
	ctx := context.Background()

	first, err := f.svc.AssignSowNumber(ctx, f.accountID)
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	second, err := f.svc.AssignSowNumber(ctx, f.accountID)
	require.NoError(t, err)
	assert.Equal(t, 2, second)

	// Separate accounts run separate counters
	other, err := f.svc.AssignSowNumber(ctx, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 1, other)
}

func TestNumberingService_AssignSowNumber_SeedsFromExisting(t *testing.T) {
	f := setupNumbering(t)
	ctx := context.Background()

	imported := testutil.CreateTestProposal(t, f.db, f.accountID, "Imported")
	number := 41
	require.NoError(t, f.db.Model(imported).Update("sow_number", &number).Error)

	next, err := f.svc.AssignSowNumber(ctx, f.accountID)
	require.NoError(t, err)
	assert.Equal(t, 42, next)
}

func TestNumberingService_AssignSowNumber_LocksPrefix(t *testing.T) {
	f := setupNumbering(t)
	ctx := context.Background()

	_, err := f.svc.SetPrefix(ctx, f.accountID, "24")
	require.NoError(t, err)

	_, err = f.svc.AssignSowNumber(ctx, f.accountID)
	require.NoError(t, err)

	dto, err := f.svc.GetPrefix(ctx, f.accountID)
	require.NoError(t, err)
	assert.True(t, dto.Locked)

	// Setting the identical value again is a no-op
	dto, err = f.svc.SetPrefix(ctx, f.accountID, "24")
	require.NoError(t, err)
	assert.Equal(t, "24", dto.Prefix)
	assert.True(t, dto.Locked)

	// Any other value is rejected
	_, err = f.svc.SetPrefix(ctx, f.accountID, "25")
	assert.ErrorIs(t, err, ErrPrefixLocked)
}

func TestNumberingService_DisplayNumber(t *testing.T) {
	f := setupNumbering(t)
	ctx := context.Background()

	// No number renders empty
	display, err := f.svc.DisplayNumber(ctx, f.accountID, nil)
	require.NoError(t, err)
	assert.Empty(t, display)

	// No prefix configured: bare sequence
	number := 7
	display, err = f.svc.DisplayNumber(ctx, f.accountID, &number)
	require.NoError(t, err)
	assert.Equal(t, "7", display)

	// Prefix concatenates directly, no separator or padding
	_, err = f.svc.SetPrefix(ctx, f.accountID, "88")
	require.NoError(t, err)
	display, err = f.svc.DisplayNumber(ctx, f.accountID, &number)
	require.NoError(t, err)
	assert.Equal(t, "887", display)
}

func TestNumberingService_NumbersNeverReissued(t *testing.T) {
	f := setupNumbering(t)
	ctx := context.Background()
	proposalRepo := repository.NewProposalRepository(f.db)

	first, err := f.svc.AssignSowNumber(ctx, f.accountID)
	require.NoError(t, err)

	proposal := testutil.CreateTestProposal(t, f.db, f.accountID, "Doomed")
	require.NoError(t, f.db.Model(proposal).Update("sow_number", &first).Error)
	require.NoError(t, proposalRepo.Delete(ctx, f.accountID, proposal.ID))

	next, err := f.svc.AssignSowNumber(ctx, f.accountID)
	require.NoError(t, err)
	assert.Equal(t, first+1, next)
}

func TestFormatDisplayNumber(t *testing.T) {
	assert.Equal(t, "202412", FormatDisplayNumber("2024", 12))
	assert.Equal(t, "3", FormatDisplayNumber("", 3))
}
