package repo

import (
	"github.com/GlebRadaev/jobpay/internal/pg"
	contractrepo "github.com/GlebRadaev/jobpay/internal/repo/contract-repo"
	jobrepo "github.com/GlebRadaev/jobpay/internal/repo/job-repo"
	profilerepo "github.com/GlebRadaev/jobpay/internal/repo/profile-repo"
	reportrepo "github.com/GlebRadaev/jobpay/internal/repo/report-repo"
)

type Repositories struct {
	Profile  *profilerepo.Repository
	Contract *contractrepo.Repository
	Job      *jobrepo.Repository
	Report   *reportrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		Profile:  profilerepo.New(conn),
		Contract: contractrepo.New(conn),
		Job:      jobrepo.New(conn),
		Report:   reportrepo.New(conn),
	}
}
