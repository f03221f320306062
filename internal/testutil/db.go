// Package testutil provides shared helpers for package tests.
package testutil

import (
	"testing"
	"time"

	"github.com/craftwise/proposal-api/internal/domain"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates an isolated in-memory SQLite database with the full
// schema migrated. Each call returns a fresh database, so tests never share
// state.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Named in-memory database with a shared cache so every pooled
	// connection sees the same schema; the random name isolates tests.
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_fk=1"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		TranslateError: true,
	})
	require.NoError(t, err, "failed to open test database")

	err = db.AutoMigrate(
		&domain.Proposal{},
		&domain.ProposalLineItem{},
		&domain.ProposalCustomSection{},
		&domain.ProposalSignature{},
		&domain.SowPrefix{},
		&domain.SowSequence{},
		&domain.Contact{},
		&domain.Notification{},
		&domain.User{},
	)
	require.NoError(t, err, "failed to migrate test schema")

	return db
}

// CreateTestProposal inserts a minimal non-template proposal for an account
func CreateTestProposal(t *testing.T, db *gorm.DB, accountID uuid.UUID, title string) *domain.Proposal {
	t.Helper()

	proposal := &domain.Proposal{
		AccountID:          accountID,
		Token:              uuid.NewString(),
		Title:              title,
		ProposalDate:       time.Now().UTC(),
		Status:             domain.ProposalStatusDraft,
		DefaultPricingType: domain.PricingTypeFixed,
		DiscountType:       domain.DiscountTypeNone,
		ShowPricing:        true,
		ShowTerms:          true,
		ShowSowNumber:      true,
		RequireSignature:   true,
	}
	require.NoError(t, db.Create(proposal).Error)
	return proposal
}

// CreateTestUser inserts an active user in an account
func CreateTestUser(t *testing.T, db *gorm.DB, accountID uuid.UUID, email string) *domain.User {
	t.Helper()

	user := &domain.User{
		AccountID:   accountID,
		Email:       email,
		DisplayName: "Test User",
		Roles:       pq.StringArray{"member"},
		IsActive:    true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
