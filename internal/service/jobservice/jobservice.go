package jobservice

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/jobpay/internal/domain"
	"github.com/GlebRadaev/jobpay/internal/pg"
	"go.uber.org/zap"
)

type JobRepo interface {
	FindUnpaidActive(ctx context.Context, profileID int) ([]domain.Job, error)
	FindPayableJob(ctx context.Context, jobID, clientID int) (*domain.Job, error)
	MarkPaid(ctx context.Context, jobID int, paymentDate time.Time) (*domain.Job, error)
}

type ContractRepo interface {
	GetOwners(ctx context.Context, contractID int) (clientID, contractorID int, err error)
}

type ProfileRepo interface {
	GetForUpdate(ctx context.Context, id int) (*domain.Profile, error)
	UpdateBalance(ctx context.Context, id int, balance float64) (*domain.Profile, error)
	AddToBalance(ctx context.Context, id int, amount float64) (*domain.Profile, error)
}

type Service struct {
	jobRepo      JobRepo
	contractRepo ContractRepo
	profileRepo  ProfileRepo
	txManager    pg.TXManager
}

func New(jobRepo JobRepo, contractRepo ContractRepo, profileRepo ProfileRepo, txManager pg.TXManager) *Service {
	return &Service{
		jobRepo:      jobRepo,
		contractRepo: contractRepo,
		profileRepo:  profileRepo,
		txManager:    txManager,
	}
}

var (
	ErrJobNotFound         = errors.New("job not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

func (s *Service) ListUnpaidJobs(ctx context.Context, profileID int) ([]domain.Job, error) {
	jobs, err := s.jobRepo.FindUnpaidActive(ctx, profileID)
	if err != nil {
		zap.L().Error("failed to list unpaid jobs", zap.Error(err))
		return nil, err
	}
	return jobs, nil
}

// PayJob moves the job price from the client balance to the contractor
// balance and marks the job paid. The whole read-check-write sequence runs
// in one transaction; the job row and the client profile row stay locked
// until it commits, so a concurrent payment of the same job observes
// paid = true and gets ErrJobNotFound.
func (s *Service) PayJob(ctx context.Context, jobID, clientID int) (*domain.Job, error) {
	var paidJob *domain.Job

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		job, err := s.jobRepo.FindPayableJob(ctx, jobID, clientID)
		if err != nil {
			return err
		}
		if job == nil {
			return ErrJobNotFound
		}

		client, err := s.profileRepo.GetForUpdate(ctx, clientID)
		if err != nil {
			return err
		}
		if client == nil {
			return ErrJobNotFound
		}
		if client.Balance < job.Price {
			return ErrInsufficientBalance
		}

		_, contractorID, err := s.contractRepo.GetOwners(ctx, job.ContractID)
		if err != nil {
			return err
		}

		paidJob, err = s.jobRepo.MarkPaid(ctx, job.ID, time.Now())
		if err != nil {
			return err
		}

		if _, err := s.profileRepo.UpdateBalance(ctx, client.ID, client.Balance-job.Price); err != nil {
			return err
		}
		if _, err := s.profileRepo.AddToBalance(ctx, contractorID, job.Price); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrJobNotFound) && !errors.Is(err, ErrInsufficientBalance) {
			zap.L().Error("failed to pay job", zap.Error(err))
		}
		return nil, err
	}
	return paidJob, nil
}
