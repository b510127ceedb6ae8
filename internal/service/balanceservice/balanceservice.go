package balanceservice

import (
	"context"
	"errors"

	"github.com/GlebRadaev/jobpay/internal/domain"
	"github.com/GlebRadaev/jobpay/internal/pg"
	"go.uber.org/zap"
)

// depositCapRate limits a single deposit to a quarter of the client's
// outstanding unpaid jobs total.
const depositCapRate = 0.25

type ProfileRepo interface {
	GetForUpdate(ctx context.Context, id int) (*domain.Profile, error)
	UpdateBalance(ctx context.Context, id int, balance float64) (*domain.Profile, error)
}

type JobRepo interface {
	GetUnpaidTotalByClient(ctx context.Context, clientID int) (float64, error)
}

type Service struct {
	profileRepo ProfileRepo
	jobRepo     JobRepo
	txManager   pg.TXManager
}

func New(profileRepo ProfileRepo, jobRepo JobRepo, txManager pg.TXManager) *Service {
	return &Service{
		profileRepo: profileRepo,
		jobRepo:     jobRepo,
		txManager:   txManager,
	}
}

var (
	ErrDepositForbidden = errors.New("deposit to this profile is forbidden")
	ErrInvalidAmount    = errors.New("invalid deposit amount")
)

// Deposit credits the client's own balance. The cap is computed against
// the unpaid jobs total inside the same transaction that writes the
// balance, with the profile row locked, so concurrent deposits can't both
// pass the check against a stale total.
func (s *Service) Deposit(ctx context.Context, targetID, callerID int, amount float64) (*domain.Profile, error) {
	var updated *domain.Profile

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		profile, err := s.profileRepo.GetForUpdate(ctx, targetID)
		if err != nil {
			return err
		}
		if profile == nil || profile.Type != domain.ProfileTypeClient || profile.ID != callerID {
			return ErrDepositForbidden
		}

		total, err := s.jobRepo.GetUnpaidTotalByClient(ctx, profile.ID)
		if err != nil {
			return err
		}
		if amount < 0 || amount > depositCapRate*total {
			return ErrInvalidAmount
		}

		updated, err = s.profileRepo.UpdateBalance(ctx, profile.ID, profile.Balance+amount)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrDepositForbidden) && !errors.Is(err, ErrInvalidAmount) {
			zap.L().Error("failed to deposit", zap.Error(err))
		}
		return nil, err
	}
	return updated, nil
}
