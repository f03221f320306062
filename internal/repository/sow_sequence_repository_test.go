package repository

import (
	"context"
	"testing"

	"github.com/craftwise/proposal-api/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSowSequenceRepository_NextSequence(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewSowSequenceRepository(db)
	ctx := context.Background()
	accountID := uuid.New()

	first, err := repo.NextSequence(ctx, accountID, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	second, err := repo.NextSequence(ctx, accountID, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, second)

	// seedFrom only matters for the very first number
	third, err := repo.NextSequence(ctx, accountID, 99)
	require.NoError(t, err)
	assert.Equal(t, 3, third)
}

func TestSowSequenceRepository_NextSequence_SeedsFromHighest(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewSowSequenceRepository(db)
	ctx := context.Background()

	next, err := repo.NextSequence(ctx, uuid.New(), 41)
	require.NoError(t, err)
	assert.Equal(t, 42, next)
}

func TestSowSequenceRepository_GetCurrentSequence(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewSowSequenceRepository(db)
	ctx := context.Background()
	accountID := uuid.New()

	current, err := repo.GetCurrentSequence(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, 0, current)

	_, err = repo.NextSequence(ctx, accountID, 0)
	require.NoError(t, err)

	current, err = repo.GetCurrentSequence(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, 1, current)
}
