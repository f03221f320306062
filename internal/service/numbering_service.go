package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/craftwise/proposal-api/internal/domain"
	"github.com/craftwise/proposal-api/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const maxPrefixLength = 10

// NumberingService manages account document number prefixes and the
// assignment of sequential document numbers to proposals.
type NumberingService struct {
	prefixRepo   *repository.SowPrefixRepository
	sequenceRepo *repository.SowSequenceRepository
	proposalRepo *repository.ProposalRepository
	logger       *zap.Logger
}

// NewNumberingService creates a new NumberingService instance
func NewNumberingService(
	prefixRepo *repository.SowPrefixRepository,
	sequenceRepo *repository.SowSequenceRepository,
	proposalRepo *repository.ProposalRepository,
	logger *zap.Logger,
) *NumberingService {
	return &NumberingService{
		prefixRepo:   prefixRepo,
		sequenceRepo: sequenceRepo,
		proposalRepo: proposalRepo,
		logger:       logger,
	}
}

// GetPrefix returns the account's prefix settings. Accounts that never set a
// prefix get an empty, unlocked one.
func (s *NumberingService) GetPrefix(ctx context.Context, accountID uuid.UUID) (*domain.PrefixDTO, error) {
	prefix, err := s.prefixRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &domain.PrefixDTO{Prefix: "", Locked: false}, nil
		}
		return nil, fmt.Errorf("failed to get prefix: %w", err)
	}
	return &domain.PrefixDTO{Prefix: prefix.Prefix, Locked: prefix.Locked}, nil
}

// SetPrefix sets the account's document number prefix. Once a document number
// has been issued with the prefix it is locked; setting the identical value
// again succeeds as a no-op, any other value is rejected.
func (s *NumberingService) SetPrefix(ctx context.Context, accountID uuid.UUID, candidate string) (*domain.PrefixDTO, error) {
	candidate = strings.TrimSpace(candidate)
	if err := validatePrefix(candidate); err != nil {
		return nil, err
	}

	existing, err := s.prefixRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to get prefix: %w", err)
		}

		created := &domain.SowPrefix{AccountID: accountID, Prefix: candidate}
		if err := s.prefixRepo.Create(ctx, created); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Concurrent creation; fall through to the update path
				return s.SetPrefix(ctx, accountID, candidate)
			}
			return nil, fmt.Errorf("failed to create prefix: %w", err)
		}

		s.logger.Info("document number prefix set",
			zap.String("accountID", accountID.String()),
			zap.String("prefix", candidate),
		)
		return &domain.PrefixDTO{Prefix: candidate, Locked: false}, nil
	}

	if existing.Locked {
		if existing.Prefix == candidate {
			return &domain.PrefixDTO{Prefix: existing.Prefix, Locked: true}, nil
		}
		return nil, ErrPrefixLocked
	}

	updated, err := s.prefixRepo.UpdatePrefix(ctx, accountID, candidate)
	if err != nil {
		return nil, fmt.Errorf("failed to update prefix: %w", err)
	}
	if !updated {
		// Locked between our read and the guarded update
		current, err := s.prefixRepo.GetByAccountID(ctx, accountID)
		if err == nil && current.Prefix == candidate {
			return &domain.PrefixDTO{Prefix: current.Prefix, Locked: current.Locked}, nil
		}
		return nil, ErrPrefixLocked
	}

	s.logger.Info("document number prefix set",
		zap.String("accountID", accountID.String()),
		zap.String("prefix", candidate),
	)
	return &domain.PrefixDTO{Prefix: candidate, Locked: false}, nil
}

// AssignSowNumber issues the next document number for an account and locks
// the prefix if one is configured. The sequence seeds from the highest number
// already assigned, so deleted proposals leave gaps instead of reissued
// numbers.
func (s *NumberingService) AssignSowNumber(ctx context.Context, accountID uuid.UUID) (int, error) {
	maxExisting, err := s.proposalRepo.MaxSowNumber(ctx, accountID)
	if err != nil {
		return 0, fmt.Errorf("failed to determine highest document number: %w", err)
	}

	number, err := s.sequenceRepo.NextSequence(ctx, accountID, maxExisting)
	if err != nil {
		return 0, fmt.Errorf("failed to assign document number: %w", err)
	}

	// First issued number freezes a configured prefix
	prefix, err := s.prefixRepo.GetByAccountID(ctx, accountID)
	if err == nil && prefix.Prefix != "" && !prefix.Locked {
		if err := s.prefixRepo.Lock(ctx, accountID); err != nil {
			return 0, fmt.Errorf("failed to lock prefix: %w", err)
		}
	}

	s.logger.Info("document number assigned",
		zap.String("accountID", accountID.String()),
		zap.Int("sowNumber", number),
	)
	return number, nil
}

// DisplayNumber renders a proposal's document number for presentation. The
// prefix and sequence concatenate directly with no separator or padding;
// proposals without a number render empty.
func (s *NumberingService) DisplayNumber(ctx context.Context, accountID uuid.UUID, sowNumber *int) (string, error) {
	if sowNumber == nil {
		return "", nil
	}

	prefix, err := s.prefixRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return strconv.Itoa(*sowNumber), nil
		}
		return "", fmt.Errorf("failed to get prefix: %w", err)
	}

	return FormatDisplayNumber(prefix.Prefix, *sowNumber), nil
}

// FormatDisplayNumber concatenates a prefix and a sequence number
func FormatDisplayNumber(prefix string, sequence int) string {
	return prefix + strconv.Itoa(sequence)
}

// validatePrefix accepts 1 to 10 ASCII digits and nothing else
func validatePrefix(prefix string) error {
	if prefix == "" || len(prefix) > maxPrefixLength {
		return ErrInvalidPrefix
	}
	for _, r := range prefix {
		if r < '0' || r > '9' {
			return ErrInvalidPrefix
		}
	}
	return nil
}
