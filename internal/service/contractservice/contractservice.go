package contractservice

import (
	"context"
	"errors"

	"github.com/GlebRadaev/jobpay/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	FindVisibleByID(ctx context.Context, contractID, profileID int) (*domain.Contract, error)
	FindActiveByProfile(ctx context.Context, profileID int) ([]domain.Contract, error)
}

type Service struct {
	contractRepo Repo
}

func New(contractRepo Repo) *Service {
	return &Service{
		contractRepo: contractRepo,
	}
}

var (
	ErrContractNotFound = errors.New("contract not found")
)

// GetContract returns the contract when the profile is one of its parties.
// A foreign contract is reported the same way as a missing one.
func (s *Service) GetContract(ctx context.Context, contractID, profileID int) (*domain.Contract, error) {
	contract, err := s.contractRepo.FindVisibleByID(ctx, contractID, profileID)
	if err != nil {
		zap.L().Error("failed to get contract", zap.Error(err))
		return nil, err
	}
	if contract == nil {
		return nil, ErrContractNotFound
	}
	return contract, nil
}

func (s *Service) ListContracts(ctx context.Context, profileID int) ([]domain.Contract, error) {
	contracts, err := s.contractRepo.FindActiveByProfile(ctx, profileID)
	if err != nil {
		zap.L().Error("failed to list contracts", zap.Error(err))
		return nil, err
	}
	return contracts, nil
}
