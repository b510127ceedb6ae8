package jobservice

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/GlebRadaev/jobpay/internal/domain"
	"github.com/GlebRadaev/jobpay/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
	"golang.org/x/sync/errgroup"
)

func NewMock(t *testing.T) (*Service, *MockJobRepo, *MockContractRepo, *MockProfileRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	jobRepo := NewMockJobRepo(ctrl)
	contractRepo := NewMockContractRepo(ctrl)
	profileRepo := NewMockProfileRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(jobRepo, contractRepo, profileRepo, txManager)
	defer ctrl.Finish()
	return service, jobRepo, contractRepo, profileRepo, txManager
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().
		Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()
}

func TestListUnpaidJobs(t *testing.T) {
	service, jobRepo, _, _, _ := NewMock(t)

	tests := []struct {
		name         string
		profileID    int
		prepareMock  func()
		expectedJobs []domain.Job
		expectErr    bool
	}{
		{
			name:      "Returns unpaid jobs",
			profileID: 1,
			prepareMock: func() {
				jobRepo.EXPECT().FindUnpaidActive(gomock.Any(), 1).Return([]domain.Job{
					{ID: 1, ContractID: 2, Description: "work", Price: 200},
					{ID: 2, ContractID: 2, Description: "work", Price: 201},
				}, nil)
			},
			expectedJobs: []domain.Job{
				{ID: 1, ContractID: 2, Description: "work", Price: 200},
				{ID: 2, ContractID: 2, Description: "work", Price: 201},
			},
		},
		{
			name:      "Repo error",
			profileID: 1,
			prepareMock: func() {
				jobRepo.EXPECT().FindUnpaidActive(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			jobs, err := service.ListUnpaidJobs(context.Background(), tt.profileID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedJobs, jobs)
			}
		})
	}
}

func TestPayJob(t *testing.T) {
	now := time.Now()
	job := &domain.Job{ID: 7, ContractID: 2, Description: "work", Price: 200}
	paidJob := &domain.Job{ID: 7, ContractID: 2, Description: "work", Price: 200, Paid: true, PaymentDate: &now}

	tests := []struct {
		name        string
		prepareMock func(jobRepo *MockJobRepo, contractRepo *MockContractRepo, profileRepo *MockProfileRepo)
		expectedJob *domain.Job
		expectedErr error
	}{
		{
			name: "Successful payment moves price between balances",
			prepareMock: func(jobRepo *MockJobRepo, contractRepo *MockContractRepo, profileRepo *MockProfileRepo) {
				jobRepo.EXPECT().FindPayableJob(gomock.Any(), 7, 1).Return(job, nil)
				profileRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(&domain.Profile{ID: 1, Balance: 1150, Type: domain.ProfileTypeClient}, nil)
				contractRepo.EXPECT().GetOwners(gomock.Any(), 2).Return(1, 6, nil)
				jobRepo.EXPECT().MarkPaid(gomock.Any(), 7, gomock.Any()).Return(paidJob, nil)
				profileRepo.EXPECT().UpdateBalance(gomock.Any(), 1, 950.0).Return(&domain.Profile{ID: 1, Balance: 950}, nil)
				profileRepo.EXPECT().AddToBalance(gomock.Any(), 6, 200.0).Return(&domain.Profile{ID: 6, Balance: 431.11}, nil)
			},
			expectedJob: paidJob,
		},
		{
			name: "Job not payable",
			prepareMock: func(jobRepo *MockJobRepo, contractRepo *MockContractRepo, profileRepo *MockProfileRepo) {
				jobRepo.EXPECT().FindPayableJob(gomock.Any(), 7, 1).Return(nil, nil)
			},
			expectedErr: ErrJobNotFound,
		},
		{
			name: "Insufficient balance leaves everything untouched",
			prepareMock: func(jobRepo *MockJobRepo, contractRepo *MockContractRepo, profileRepo *MockProfileRepo) {
				jobRepo.EXPECT().FindPayableJob(gomock.Any(), 7, 1).Return(&domain.Job{ID: 7, ContractID: 2, Price: 1000}, nil)
				profileRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(&domain.Profile{ID: 1, Balance: 990, Type: domain.ProfileTypeClient}, nil)
			},
			expectedErr: ErrInsufficientBalance,
		},
		{
			name: "Repo error",
			prepareMock: func(jobRepo *MockJobRepo, contractRepo *MockContractRepo, profileRepo *MockProfileRepo) {
				jobRepo.EXPECT().FindPayableJob(gomock.Any(), 7, 1).Return(nil, errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, jobRepo, contractRepo, profileRepo, txManager := NewMock(t)
			passthroughTx(txManager)
			tt.prepareMock(jobRepo, contractRepo, profileRepo)

			paid, err := service.PayJob(context.Background(), 7, 1)
			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedErr.Error(), err.Error())
				assert.Nil(t, paid)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedJob, paid)
			}
		})
	}
}

// Concurrent payments of one job: only the first caller may see the job
// as payable, everyone else gets ErrJobNotFound.
func TestPayJobConcurrent(t *testing.T) {
	service, jobRepo, contractRepo, profileRepo, txManager := NewMock(t)
	passthroughTx(txManager)

	var mu sync.Mutex
	paid := false
	jobRepo.EXPECT().
		FindPayableJob(gomock.Any(), 7, 1).
		DoAndReturn(func(ctx context.Context, jobID, clientID int) (*domain.Job, error) {
			mu.Lock()
			defer mu.Unlock()
			if paid {
				return nil, nil
			}
			paid = true
			return &domain.Job{ID: 7, ContractID: 2, Price: 200}, nil
		}).
		AnyTimes()

	profileRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(&domain.Profile{ID: 1, Balance: 1150, Type: domain.ProfileTypeClient}, nil).Times(1)
	contractRepo.EXPECT().GetOwners(gomock.Any(), 2).Return(1, 6, nil).Times(1)
	jobRepo.EXPECT().MarkPaid(gomock.Any(), 7, gomock.Any()).Return(&domain.Job{ID: 7, ContractID: 2, Price: 200, Paid: true}, nil).Times(1)
	profileRepo.EXPECT().UpdateBalance(gomock.Any(), 1, 950.0).Return(&domain.Profile{ID: 1, Balance: 950}, nil).Times(1)
	profileRepo.EXPECT().AddToBalance(gomock.Any(), 6, 200.0).Return(&domain.Profile{ID: 6, Balance: 431.11}, nil).Times(1)

	const callers = 8
	var succeeded sync.Map
	var g errgroup.Group
	for i := 0; i < callers; i++ {
		i := i
		g.Go(func() error {
			_, err := service.PayJob(context.Background(), 7, 1)
			if err == nil {
				succeeded.Store(i, struct{}{})
				return nil
			}
			if errors.Is(err, ErrJobNotFound) {
				return nil
			}
			return err
		})
	}
	assert.NoError(t, g.Wait())

	successes := 0
	succeeded.Range(func(_, _ any) bool {
		successes++
		return true
	})
	assert.Equal(t, 1, successes)
}
