package service

import (
	"github.com/GlebRadaev/jobpay/internal/handlers/admin"
	"github.com/GlebRadaev/jobpay/internal/handlers/balances"
	"github.com/GlebRadaev/jobpay/internal/handlers/contracts"
	"github.com/GlebRadaev/jobpay/internal/handlers/jobs"

	"github.com/GlebRadaev/jobpay/internal/pg"
	"github.com/GlebRadaev/jobpay/internal/repo"
	balanceservice "github.com/GlebRadaev/jobpay/internal/service/balanceservice"
	contractservice "github.com/GlebRadaev/jobpay/internal/service/contractservice"
	jobservice "github.com/GlebRadaev/jobpay/internal/service/jobservice"
	reportservice "github.com/GlebRadaev/jobpay/internal/service/reportservice"
)

type Services struct {
	ContractService contracts.Service
	JobService      jobs.Service
	BalanceService  balances.Service
	ReportService   admin.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	contractService := contractservice.New(repo.Contract)
	jobService := jobservice.New(repo.Job, repo.Contract, repo.Profile, txManager)
	balanceService := balanceservice.New(repo.Profile, repo.Job, txManager)
	reportService := reportservice.New(repo.Report)

	return &Services{
		ContractService: contractService,
		JobService:      jobService,
		BalanceService:  balanceService,
		ReportService:   reportService,
	}
}
